package helper

import (
	"fmt"
	"sort"
	"time"

	v1 "github.com/kintai-tools/kingtime-go/kingtime/v1"
	"github.com/kintai-tools/kingtime-go/kingtime/v1/common"
)

const (
	StatusNotAtWork = "not at work (yet)"
	StatusAtWork    = "🕴 at work"
	StatusOff       = "finished the work (or have a break)"
)

// SortByTime orders punches chronologically. The API does not guarantee
// time order, so every consumer sorts before reasoning about "the last
// punch of the day".
func SortByTime(records []v1.TimeRecordDTO) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Time.Before(records[j].Time.Time)
	})
}

// StatusLine derives the human-readable work state from one day's punches:
// clocking in and ending a break both mean being at work.
func StatusLine(records []v1.TimeRecordDTO) string {
	if len(records) == 0 {
		return StatusNotAtWork
	}

	sorted := make([]v1.TimeRecordDTO, len(records))
	copy(sorted, records)
	SortByTime(sorted)

	switch sorted[len(sorted)-1].Code {
	case common.CodeIn, common.CodeBreakEnd:
		return StatusAtWork
	default:
		return StatusOff
	}
}

// ParseRange interprets optional [start end] arguments; both bounds default
// to today as observed in JST.
func ParseRange(args []string, now time.Time) (start, end common.DateOnly, err error) {
	today := common.NewDateOnly(now.In(common.JST))

	switch len(args) {
	case 0:
		return today, today, nil
	case 1:
		d, err := common.ParseDateOnly(args[0])
		return d, d, err
	case 2:
		start, err = common.ParseDateOnly(args[0])
		if err != nil {
			return start, end, err
		}
		end, err = common.ParseDateOnly(args[1])
		if err != nil {
			return start, end, err
		}
		if end.Before(start.Time) {
			return start, end, fmt.Errorf("end %s is before start %s", end, start)
		}
		return start, end, nil
	default:
		return start, end, fmt.Errorf("expected at most 2 date arguments, got %d", len(args))
	}
}
