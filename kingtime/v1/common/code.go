package common

import (
	"encoding/json"
	"fmt"
)

// Code identifies the kind of a time-record punch.
type Code int

const (
	CodeIn Code = iota + 1
	CodeOut
	CodeBreakStart
	CodeBreakEnd
)

// The API transports codes as single-digit strings, not numbers.
var codeToWire = map[Code]string{
	CodeIn:         "1",
	CodeOut:        "2",
	CodeBreakStart: "3",
	CodeBreakEnd:   "4",
}

var wireToCode = map[string]Code{
	"1": CodeIn,
	"2": CodeOut,
	"3": CodeBreakStart,
	"4": CodeBreakEnd,
}

var codeNames = map[Code]string{
	CodeIn:         "in",
	CodeOut:        "out",
	CodeBreakStart: "break-start",
	CodeBreakEnd:   "break-end",
}

// ParseCode converts a wire literal ("1".."4") into a Code.
func ParseCode(s string) (Code, error) {
	code, ok := wireToCode[s]
	if !ok {
		return 0, fmt.Errorf("unknown time record code %q", s)
	}
	return code, nil
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("code(%d)", int(c))
}

func (c Code) MarshalJSON() ([]byte, error) {
	wire, ok := codeToWire[c]
	if !ok {
		return nil, fmt.Errorf("cannot encode unknown time record code %d", int(c))
	}
	return json.Marshal(wire)
}

func (c *Code) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	code, err := ParseCode(s)
	if err != nil {
		return err
	}
	*c = code
	return nil
}
