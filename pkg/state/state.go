package state

import (
	"sync"
	"time"

	"github.com/korjavin/pantrychef/pkg/models"
)

// State represents the step a chat is in
type State string

const (
	// StateNormal is the normal state
	StateNormal State = "normal"
	// StateAddingPantry is the state when the user is sending pantry items
	StateAddingPantry State = "adding_pantry"
	// StateDraftName waits for the name of a new recipe
	StateDraftName State = "draft_name"
	// StateDraftIngredients collects "name; qty" lines for the draft
	StateDraftIngredients State = "draft_ingredients"
	// StateDraftInstructions collects instruction lines for the draft
	StateDraftInstructions State = "draft_instructions"
	// StateDraftImage waits for a photo or /skip
	StateDraftImage State = "draft_image"
)

// Expiry is how long a chat may stay idle in a non-normal state
const Expiry = 10 * time.Minute

// ChatState represents the state of a chat
type ChatState struct {
	State     State
	Timestamp time.Time
}

// Manager manages chat states and per-chat search preferences
type Manager struct {
	states map[int64]ChatState
	modes  map[int64]models.SearchMode
	mu     sync.Mutex
	now    func() time.Time
}

// New creates a new state manager
func New() *Manager {
	return &Manager{
		states: make(map[int64]ChatState),
		modes:  make(map[int64]models.SearchMode),
		now:    time.Now,
	}
}

// SetState sets the state for a chat
func (m *Manager) SetState(chatID int64, state State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if state == StateNormal {
		delete(m.states, chatID)
		return
	}
	m.states[chatID] = ChatState{
		State:     state,
		Timestamp: m.now(),
	}
}

// GetState gets the state for a chat. A state older than Expiry is
// forgotten and StateNormal is returned.
func (m *Manager) GetState(chatID int64) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.states[chatID]
	if !ok {
		return StateNormal
	}
	if m.now().Sub(state.Timestamp) > Expiry {
		delete(m.states, chatID)
		return StateNormal
	}
	return state.State
}

// Touch refreshes the timestamp of the chat's current state
func (m *Manager) Touch(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if state, ok := m.states[chatID]; ok {
		state.Timestamp = m.now()
		m.states[chatID] = state
	}
}

// ClearState clears the state for a chat
func (m *Manager) ClearState(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, chatID)
}

// SetSearchMode remembers how the chat wants recipe searches matched
func (m *Manager) SetSearchMode(chatID int64, mode models.SearchMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modes[chatID] = mode
}

// SearchMode returns the chat's search mode, SearchByName by default
func (m *Manager) SearchMode(chatID int64) models.SearchMode {
	m.mu.Lock()
	defer m.mu.Unlock()
	if mode, ok := m.modes[chatID]; ok {
		return mode
	}
	return models.SearchByName
}
