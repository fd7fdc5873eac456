package reminder

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store owns the ordered in-memory list of reminders.
// Nothing is persisted; the list lives as long as the Store does.
type Store struct {
	mu        sync.Mutex
	reminders []Reminder
	logger    *zap.Logger
}

// NewStore returns an empty store. A nil logger disables logging.
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		logger: logger,
	}
}

// Add appends a new pending reminder and returns it.
// Blank text leaves the list unchanged and returns ErrEmptyText.
func (s *Store) Add(text string, date time.Time) (Reminder, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		s.logger.Debug("rejected reminder with empty text")
		return Reminder{}, ErrEmptyText
	}

	r := Reminder{
		ID:   uuid.New().String(),
		Text: text,
		Date: date,
	}

	s.mu.Lock()
	s.reminders = append(s.reminders, r)
	n := len(s.reminders)
	s.mu.Unlock()

	s.logger.Debug("reminder added", zap.String("id", r.ID), zap.Int("count", n))
	return r, nil
}

// ToggleCompletion flips IsCompleted on the reminder with the given ID.
func (s *Store) ToggleCompletion(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		s.logger.Debug("toggle on unknown reminder", zap.String("id", id))
		return ErrNotFound
	}

	s.reminders[i].IsCompleted = !s.reminders[i].IsCompleted
	s.logger.Debug("reminder toggled",
		zap.String("id", id),
		zap.Bool("completed", s.reminders[i].IsCompleted))
	return nil
}

// RemoveAt deletes the reminders at the given zero-based positions.
// All positions refer to the list as it was before the call; out-of-range
// and repeated positions are ignored. The removed reminders are returned
// in list order.
func (s *Store) RemoveAt(positions ...int) []Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[int]bool, len(positions))
	for _, p := range positions {
		if p >= 0 && p < len(s.reminders) {
			drop[p] = true
		}
	}
	if len(drop) == 0 {
		return nil
	}

	removed := make([]Reminder, 0, len(drop))
	kept := s.reminders[:0]
	for i, r := range s.reminders {
		if drop[i] {
			removed = append(removed, r)
			continue
		}
		kept = append(kept, r)
	}
	// clear the tail so dropped entries are not retained by the backing array
	for i := len(kept); i < len(s.reminders); i++ {
		s.reminders[i] = Reminder{}
	}
	s.reminders = kept

	s.logger.Debug("reminders removed",
		zap.Ints("positions", sortedKeys(drop)),
		zap.Int("count", len(s.reminders)))
	return removed
}

// Snapshot returns a copy of the current list.
func (s *Store) Snapshot() []Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out
}

// Len returns the number of reminders.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reminders)
}

// Get returns the reminder with the given ID.
func (s *Store) Get(id string) (Reminder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return Reminder{}, false
	}
	return s.reminders[i], true
}

// IndexOf returns the position of the reminder with the given ID, or -1.
func (s *Store) IndexOf(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexLocked(id)
}

func (s *Store) indexLocked(id string) int {
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			return i
		}
	}
	return -1
}

func sortedKeys(m map[int]bool) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
