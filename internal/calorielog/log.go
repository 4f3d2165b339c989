// Package calorielog is the in-memory, append-only calorie log with its two
// derived views: a rolling 7-day series and today's history.
package calorielog

import (
	"math"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is one logged food item. Entries are never modified after creation.
type Entry struct {
	ID         uuid.UUID `json:"id"`
	Food       string    `json:"food"`
	Calories   float64   `json:"calories"`
	OccurredOn DateOnly  `json:"occurred_on"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Snapshot is the pair of views recomputed from the whole log.
type Snapshot struct {
	Series  Series  `json:"series"`
	History History `json:"history"`
}

// Log owns the entry slice. The zero value is not usable; call New.
type Log struct {
	mu      sync.RWMutex
	entries []Entry
	now     func() time.Time
}

// Option configures a Log.
type Option func(*Log)

// WithClock replaces time.Now. The returned time's location decides which
// calendar day an entry belongs to.
func WithClock(now func() time.Time) Option {
	return func(l *Log) {
		l.now = now
	}
}

func New(opts ...Option) *Log {
	l := &Log{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// AddEntry validates and appends one entry, then returns it with freshly
// built views. Validation failures return a *ValidationError together with
// the unchanged views. A panic while building the entry or the views comes
// back as a *FaultError; the log is only mutated if the entry was fully
// constructed.
func (l *Log) AddEntry(food string, calories float64) (Entry, Snapshot, error) {
	if err := validate(food, calories); err != nil {
		snap, snapErr := l.Snapshot()
		if snapErr != nil {
			return Entry{}, snap, snapErr
		}
		return Entry{}, snap, err
	}

	var entry Entry
	if err := guard("build entry", func() {
		now := l.now()
		entry = Entry{
			ID:         uuid.New(),
			Food:       strings.TrimSpace(food),
			Calories:   calories,
			OccurredOn: DateOf(now),
			RecordedAt: now,
		}
	}); err != nil {
		return Entry{}, Snapshot{}, err
	}

	l.mu.Lock()
	l.entries = append(l.entries, entry)
	l.mu.Unlock()

	snap, err := l.Snapshot()
	return entry, snap, err
}

// Snapshot rebuilds both views under a single read lock so they agree.
func (l *Log) Snapshot() (Snapshot, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var snap Snapshot
	err := guard("build views", func() {
		now := l.now()
		snap.Series = BuildSevenDaySeries(l.entries, now)
		snap.History = BuildTodayHistory(l.entries, now)
	})
	return snap, err
}

// SevenDaySeries builds the chart view for the trailing week.
func (l *Log) SevenDaySeries() Series {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return BuildSevenDaySeries(l.entries, l.now())
}

// TodayHistory builds the history view for the current day.
func (l *Log) TodayHistory() History {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return BuildTodayHistory(l.entries, l.now())
}

// Entries returns a copy of every entry in insertion order.
func (l *Log) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// validate checks food before calories; the first failure wins.
func validate(food string, calories float64) error {
	if strings.TrimSpace(food) == "" {
		return &ValidationError{Field: "food", Message: FoodRequiredMessage}
	}
	if !(calories > 0) || math.IsInf(calories, 1) {
		return &ValidationError{Field: "calories", Message: CaloriesPositiveMessage}
	}
	return nil
}

// guard runs fn and converts a panic into a *FaultError.
func guard(op string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &FaultError{Op: op, Cause: r, Stack: debug.Stack()}
		}
	}()
	fn()
	return nil
}
