package calorielog

import "time"

const (
	dateLayout  = "2006-01-02"
	labelLayout = "01/02"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON. The wrapped
// time is always midnight in the location it was derived from.
type DateOnly struct{ time.Time }

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) DateOnly {
	y, m, d := t.Date()
	return DateOnly{time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

// AddDays shifts the date by n calendar days. AddDate normalizes month and
// year boundaries as well as DST transitions.
func (d DateOnly) AddDays(n int) DateOnly {
	return DateOf(d.Time.AddDate(0, 0, n))
}

// Key is the bucketing key for d, independent of location.
func (d DateOnly) Key() string {
	return d.Time.Format(dateLayout)
}

// Label is the short chart label, e.g. "03/14".
func (d DateOnly) Label() string {
	return d.Time.Format(labelLayout)
}

// Same reports whether d and o fall on the same calendar date.
func (d DateOnly) Same(o DateOnly) bool {
	return d.Key() == o.Key()
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(dateLayout) + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"`+dateLayout+`"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
