package common

import (
	"encoding/json"
	"time"
)

// JST is the fixed +09:00 offset the KingTime API expects on submitted
// timestamps. The API silently mis-parses instants written with any other
// offset, so every outgoing time is re-expressed here before formatting.
var JST = time.FixedZone("JST", 9*60*60)

// JSTTime is an instant that marshals as ISO-8601 fixed to +09:00,
// truncated to whole seconds.
type JSTTime struct {
	time.Time
}

const jstLayout = "2006-01-02T15:04:05-07:00"

func NewJSTTime(t time.Time) JSTTime {
	return JSTTime{Time: t.Truncate(time.Second).In(JST)}
}

func (j *JSTTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		j.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	j.Time = t
	return nil
}

func (j JSTTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.Time.Truncate(time.Second).In(JST).Format(jstLayout))
}
