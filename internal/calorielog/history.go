package calorielog

import "time"

const (
	// MaxHistoryRows caps how many of today's entries the history shows.
	MaxHistoryRows = 10

	NoEntriesMessage      = "No entries yet"
	NoEntriesTodayMessage = "No entries for today"

	timeLayout = "15:04"
)

// HistoryState tells the renderer which branch of the history view applies.
type HistoryState string

const (
	HistoryEmptyLog  HistoryState = "empty_log"
	HistoryNoneToday HistoryState = "none_today"
	HistoryReady     HistoryState = "ready"
)

// HistoryRow is one line of today's table.
type HistoryRow struct {
	Time       string    `json:"time"`
	Food       string    `json:"food"`
	Calories   int       `json:"calories"`
	RecordedAt time.Time `json:"recorded_at"`
}

// History is today's view: the day's total and its most recent rows.
type History struct {
	State   HistoryState `json:"state"`
	Message string       `json:"message,omitempty"`
	Total   int          `json:"total"`
	Rows    []HistoryRow `json:"rows,omitempty"`
}

// BuildTodayHistory filters entries to now's date, totals them, and returns
// up to MaxHistoryRows of them, most recently added first.
func BuildTodayHistory(entries []Entry, now time.Time) History {
	if len(entries) == 0 {
		return History{State: HistoryEmptyLog, Message: NoEntriesMessage}
	}

	today := DateOf(now)
	var todays []Entry
	var total float64
	for _, e := range entries {
		if e.OccurredOn.Same(today) {
			todays = append(todays, e)
			total += e.Calories
		}
	}
	if len(todays) == 0 {
		return History{State: HistoryNoneToday, Message: NoEntriesTodayMessage}
	}

	n := min(len(todays), MaxHistoryRows)
	rows := make([]HistoryRow, 0, n)
	for i := len(todays) - 1; i >= len(todays)-n; i-- {
		e := todays[i]
		rows = append(rows, HistoryRow{
			Time:       e.RecordedAt.Format(timeLayout),
			Food:       e.Food,
			Calories:   roundCalories(e.Calories),
			RecordedAt: e.RecordedAt,
		})
	}

	return History{
		State: HistoryReady,
		Total: roundCalories(total),
		Rows:  rows,
	}
}
