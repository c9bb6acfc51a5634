package task

import "sync"

// State is a key/value bag shared by every task in a tree. All access is
// mutex-guarded so concurrent subtasks can read and write it safely.
type State struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewState returns an empty state bag.
func NewState() *State {
	return &State{values: make(map[string]any)}
}

// Set stores a value under key.
func (s *State) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Get returns the value stored under key and whether it was present.
func (s *State) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Bool returns the value under key as a bool, or false.
func (s *State) Bool(key string) bool {
	v, ok := s.Get(key)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// String returns the value under key as a string, or "".
func (s *State) String(key string) string {
	v, ok := s.Get(key)
	if !ok {
		return ""
	}
	str, _ := v.(string)
	return str
}
