package recipes

import (
	"sync"
	"time"
)

// IDSource hands out recipe ids derived from the creation time in
// milliseconds. Two saves within the same millisecond still get distinct,
// increasing ids; ids are not coordinated across processes.
type IDSource struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewIDSource creates an id source that never returns an id at or below floor
func NewIDSource(floor int64) *IDSource {
	return &IDSource{last: floor, now: time.Now}
}

// Next returns a fresh id
func (s *IDSource) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

// Observe raises the floor so later ids stay above id
func (s *IDSource) Observe(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id > s.last {
		s.last = id
	}
}
