package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeRoundTrip(t *testing.T) {
	tests := []struct {
		code Code
		wire string
	}{
		{CodeIn, `"1"`},
		{CodeOut, `"2"`},
		{CodeBreakStart, `"3"`},
		{CodeBreakEnd, `"4"`},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			b, err := json.Marshal(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.wire, string(b))

			var decoded Code
			require.NoError(t, json.Unmarshal(b, &decoded))
			assert.Equal(t, tt.code, decoded)
		})
	}
}

func TestCodeUnmarshalRejectsUnknown(t *testing.T) {
	tests := []struct {
		name string
		wire string
	}{
		{"zero", `"0"`},
		{"out of range", `"5"`},
		{"name instead of digit", `"in"`},
		{"empty", `""`},
		{"bare number", `1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Code
			err := json.Unmarshal([]byte(tt.wire), &c)
			require.Error(t, err)
			if tt.wire != `1` {
				// the offending literal is named in the error
				assert.Contains(t, err.Error(), tt.wire[1:len(tt.wire)-1])
			}
		})
	}
}

func TestCodeMarshalRejectsUnknown(t *testing.T) {
	_, err := json.Marshal(Code(9))
	require.Error(t, err)
}
