package common

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateOnly is a plain calendar date with no time component.
type DateOnly struct {
	time.Time
}

const dateLayout = "2006-01-02" // yyyy-MM-dd

// NewDateOnly keeps the calendar date of t as observed in t's location.
func NewDateOnly(t time.Time) DateOnly {
	y, m, d := t.Date()
	return DateOnly{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ParseDateOnly(s string) (DateOnly, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return DateOnly{}, fmt.Errorf("invalid date format: %v", err)
	}
	return DateOnly{Time: t}, nil
}

func (d DateOnly) String() string {
	return d.Format(dateLayout)
}

func (d DateOnly) Equal(other DateOnly) bool {
	return d.Format(dateLayout) == other.Format(dateLayout)
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	// b is a quoted string like `"2016-05-01"`
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if s == "" {
		// handle empty date gracefully
		d.Time = time.Time{}
		return nil
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date format: %v", err)
	}

	d.Time = t
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.Format(dateLayout))
}
