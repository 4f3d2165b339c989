package calorielog

import (
	"math"
	"strconv"
	"time"
)

const (
	// SeriesDays is the width of the chart window, today included.
	SeriesDays = 7

	NoDataMessage = "No data yet. Start tracking your calories!"
)

// DayTotal is one bar of the chart.
type DayTotal struct {
	Date     DateOnly `json:"date"`
	Label    string   `json:"label"`
	Calories float64  `json:"calories"`
	Text     string   `json:"text"`
}

// Series is the chart view. An empty log yields Empty=true with a placeholder
// and no days, never a zero-filled week.
type Series struct {
	Empty       bool       `json:"empty"`
	Placeholder string     `json:"placeholder,omitempty"`
	Days        []DayTotal `json:"days,omitempty"`
}

// Peak returns the largest daily total, or 0 for an empty series.
func (s Series) Peak() float64 {
	var peak float64
	for _, d := range s.Days {
		peak = math.Max(peak, d.Calories)
	}
	return peak
}

// BuildSevenDaySeries sums calories per day for the seven dates ending at
// now's date, oldest first. Entries outside the window are ignored.
func BuildSevenDaySeries(entries []Entry, now time.Time) Series {
	if len(entries) == 0 {
		return Series{Empty: true, Placeholder: NoDataMessage}
	}

	today := DateOf(now)
	days := make([]DayTotal, SeriesDays)
	// Index days by date key for O(1) bucketing.
	index := make(map[string]int, SeriesDays)
	for i := 0; i < SeriesDays; i++ {
		d := today.AddDays(i - (SeriesDays - 1))
		days[i] = DayTotal{Date: d, Label: d.Label()}
		index[d.Key()] = i
	}

	for _, e := range entries {
		if i, ok := index[e.OccurredOn.Key()]; ok {
			days[i].Calories += e.Calories
		}
	}

	for i := range days {
		days[i].Text = strconv.Itoa(roundCalories(days[i].Calories))
	}

	return Series{Days: days}
}

func roundCalories(c float64) int {
	return int(math.Round(c))
}
