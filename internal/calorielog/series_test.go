package calorielog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryOn(food string, calories float64, at time.Time) Entry {
	return Entry{Food: food, Calories: calories, OccurredOn: DateOf(at), RecordedAt: at}
}

func TestBuildSevenDaySeries_EmptyLog(t *testing.T) {
	s := BuildSevenDaySeries(nil, time.Now())

	assert.True(t, s.Empty)
	assert.Equal(t, NoDataMessage, s.Placeholder)
	assert.Nil(t, s.Days, "empty log must not produce a zero-filled week")
	assert.Zero(t, s.Peak())
}

func TestBuildSevenDaySeries_WindowAndOrder(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, testZone)
	entries := []Entry{
		entryOn("Oats", 300, now),
		entryOn("Soup", 150.4, now.Add(-2*time.Hour)),
		entryOn("Pasta", 700, now.AddDate(0, 0, -1)),
		entryOn("Cake", 420, now.AddDate(0, 0, -6)), // oldest day still in window
		entryOn("Pizza", 900, now.AddDate(0, 0, -7)), // just outside
		entryOn("Curry", 650, now.AddDate(0, 0, -30)),
	}

	s := BuildSevenDaySeries(entries, now)
	require.False(t, s.Empty)
	require.Len(t, s.Days, SeriesDays)

	wantLabels := []string{"02/24", "02/25", "02/26", "02/27", "02/28", "03/01", "03/02"}
	wantTotals := []float64{420, 0, 0, 0, 0, 700, 450.4}
	wantText := []string{"420", "0", "0", "0", "0", "700", "450"}
	for i, d := range s.Days {
		assert.Equal(t, wantLabels[i], d.Label)
		assert.InDelta(t, wantTotals[i], d.Calories, 1e-9)
		assert.Equal(t, wantText[i], d.Text)
	}
	assert.Equal(t, "2026-03-02", s.Days[SeriesDays-1].Date.Key())
	assert.InDelta(t, 700, s.Peak(), 1e-9)
}

func TestBuildSevenDaySeries_OnlyOldEntries(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, testZone)
	entries := []Entry{
		entryOn("Burger", 800, now.AddDate(0, 0, -8)),
		entryOn("Fries", 400, now.AddDate(0, -2, 0)),
	}

	s := BuildSevenDaySeries(entries, now)
	assert.False(t, s.Empty)
	require.Len(t, s.Days, SeriesDays)
	for _, d := range s.Days {
		assert.Zero(t, d.Calories)
		assert.Equal(t, "0", d.Text)
	}
}

func TestBuildSevenDaySeries_RoundsText(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, testZone)
	entries := []Entry{
		entryOn("Tea", 0.6, now),
		entryOn("Biscuit", 49.2, now),
	}

	s := BuildSevenDaySeries(entries, now)
	assert.Equal(t, "50", s.Days[SeriesDays-1].Text)
}

func TestLog_SevenDaySeriesAcrossDays(t *testing.T) {
	l, clock := newTestLog()

	clock.Set(time.Date(2026, 3, 3, 19, 0, 0, 0, testZone))
	_, _, err := l.AddEntry("Ancient leftovers", 500)
	require.NoError(t, err)

	clock.Set(time.Date(2026, 3, 12, 13, 0, 0, 0, testZone))
	_, _, err = l.AddEntry("Salad", 220)
	require.NoError(t, err)

	clock.Set(time.Date(2026, 3, 14, 8, 0, 0, 0, testZone))
	s := l.SevenDaySeries()

	require.Len(t, s.Days, SeriesDays)
	assert.Equal(t, "03/08", s.Days[0].Label)
	assert.Equal(t, 220.0, s.Days[4].Calories)

	var sum float64
	for _, d := range s.Days {
		sum += d.Calories
	}
	assert.Equal(t, 220.0, sum)
}
