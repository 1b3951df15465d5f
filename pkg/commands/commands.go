// Package commands routes Telegram commands, callbacks and free messages to
// the kitchen and renders the replies.
package commands

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/korjavin/pantrychef/pkg/kitchen"
	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/korjavin/pantrychef/pkg/messages"
	"github.com/korjavin/pantrychef/pkg/state"
	"github.com/korjavin/pantrychef/pkg/telegram"
)

// Sender is the part of the Telegram bot the handlers talk to
type Sender interface {
	SendHTML(chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error
	SendPhoto(chatID int64, ref string, caption string) error
	AnswerCallbackQuery(callbackID string, text string) error
	FileURL(fileID string) (string, error)
}

// IngredientParser turns free text or a photo into ingredient names
type IngredientParser interface {
	ParseIngredientsFromText(ctx context.Context, text string) ([]string, error)
	ExtractIngredientsFromPhoto(ctx context.Context, photoURL string) ([]string, error)
}

// Handler holds everything the chat handlers need
type Handler struct {
	ctx     context.Context
	kitchen *kitchen.Kitchen
	states  *state.Manager
	sender  Sender
	parser  IngredientParser
	logger  *logger.Logger
}

// New creates a handler. parser may be nil, in which case free text is split
// on separators and photos cannot be imported.
func New(ctx context.Context, k *kitchen.Kitchen, states *state.Manager, sender Sender, parser IngredientParser) *Handler {
	return &Handler{
		ctx:     ctx,
		kitchen: k,
		states:  states,
		sender:  sender,
		parser:  parser,
		logger:  logger.New("commands"),
	}
}

// menu lists the commands published to Telegram clients, in order
var menu = []struct{ name, description string }{
	{"pantry", "Show the pantry"},
	{"add", "Add items to the pantry"},
	{"remove", "Remove an item from the pantry"},
	{"clear_pantry", "Empty the pantry"},
	{"recipes", "Recipes ranked by what you have"},
	{"by_name", "Search recipes by name"},
	{"by_ingredient", "Search recipes by ingredient"},
	{"recipe", "Show a recipe"},
	{"missing", "Shopping list for a recipe"},
	{"new", "Write a new recipe"},
	{"cancel", "Cancel the current step"},
	{"help", "Show help"},
}

// Menu returns the command descriptions and their display order
func Menu() (map[string]string, []string) {
	descriptions := make(map[string]string, len(menu))
	order := make([]string, 0, len(menu))
	for _, c := range menu {
		descriptions[c.name] = c.description
		order = append(order, c.name)
	}
	return descriptions, order
}

// Commands returns the command handlers keyed by command name
func (h *Handler) Commands() map[string]telegram.CommandHandler {
	return map[string]telegram.CommandHandler{
		"start":         h.help,
		"help":          h.help,
		"pantry":        h.pantry,
		"add":           h.add,
		"remove":        h.remove,
		"clear_pantry":  h.clearPantry,
		"recipes":       h.recipes,
		"by_name":       h.byName,
		"by_ingredient": h.byIngredient,
		"recipe":        h.recipe,
		"missing":       h.missing,
		"new":           h.newRecipe,
		"done":          h.done,
		"cancel":        h.cancel,
		"bold":          h.bold,
		"bullet":        h.bullet,
		"skip":          h.skip,
	}
}

// Callbacks returns the callback handlers keyed by data prefix
func (h *Handler) Callbacks() map[string]telegram.CallbackHandler {
	return map[string]telegram.CallbackHandler{
		messages.CallbackRemove: h.removeCallback,
		messages.CallbackRecipe: h.recipeCallback,
		messages.CallbackMode:   h.modeCallback,
	}
}

// Default handles plain text and photos according to the chat's state
func (h *Handler) Default(update tgbotapi.Update) {
	msg := update.Message
	if msg == nil {
		return
	}
	chatID := msg.Chat.ID

	if len(msg.Photo) > 0 {
		h.photo(msg)
		return
	}
	if msg.IsCommand() {
		h.reply(chatID, "Unknown command. Use /help to see what I can do.")
		return
	}
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	switch h.states.GetState(chatID) {
	case state.StateAddingPantry:
		h.states.Touch(chatID)
		h.addItems(chatID, text)
	case state.StateDraftName:
		h.draftName(chatID, text)
	case state.StateDraftIngredients:
		h.draftIngredients(chatID, text)
	case state.StateDraftInstructions:
		h.draftInstructions(chatID, text)
	case state.StateDraftImage:
		h.reply(chatID, "📷 Send a photo for the recipe, or /skip to use the default image.")
	default:
		h.search(chatID, text)
	}
}

func (h *Handler) reply(chatID int64, text string) {
	h.replyWithKeyboard(chatID, text, nil)
}

func (h *Handler) replyWithKeyboard(chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	if err := h.sender.SendHTML(chatID, text, keyboard); err != nil {
		h.logger.Error("Failed to send message to %d: %v", chatID, err)
	}
}

func (h *Handler) answer(callback *tgbotapi.CallbackQuery, text string) {
	if err := h.sender.AnswerCallbackQuery(callback.ID, text); err != nil {
		h.logger.Warn("Failed to answer callback %s: %v", callback.ID, err)
	}
}

func (h *Handler) help(message *tgbotapi.Message) {
	h.states.ClearState(message.Chat.ID)
	h.reply(message.Chat.ID, messages.Welcome(h.parser != nil))
}

// SplitItems splits a free-form list on commas, semicolons and newlines,
// dropping blank entries
func SplitItems(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n' || r == '\r'
	})
	items := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			items = append(items, f)
		}
	}
	return items
}

// ParseIngredientLine splits "name; qty" into its parts. A line without a
// separator is a name with no quantity.
func ParseIngredientLine(line string) (name, qty string) {
	name, qty, _ = strings.Cut(line, ";")
	return strings.TrimSpace(name), strings.TrimSpace(qty)
}
