package common

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSTTimeMarshalFixedOffset(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "already JST",
			in:   time.Date(2016, 5, 1, 9, 0, 0, 0, JST),
			want: `"2016-05-01T09:00:00+09:00"`,
		},
		{
			name: "UTC instant is re-expressed at +09:00",
			in:   time.Date(2016, 5, 1, 0, 0, 0, 0, time.UTC),
			want: `"2016-05-01T09:00:00+09:00"`,
		},
		{
			name: "other offset is re-expressed at +09:00",
			in:   time.Date(2016, 4, 30, 17, 0, 0, 0, time.FixedZone("", -7*60*60)),
			want: `"2016-05-01T09:00:00+09:00"`,
		},
		{
			name: "sub-second precision is dropped",
			in:   time.Date(2016, 5, 1, 0, 0, 0, 999_000_000, time.UTC),
			want: `"2016-05-01T09:00:00+09:00"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(NewJSTTime(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(b))
		})
	}
}

func TestJSTTimeUnmarshal(t *testing.T) {
	var j JSTTime
	require.NoError(t, json.Unmarshal([]byte(`"2016-05-01T09:00:00+09:00"`), &j))
	assert.True(t, j.Time.Equal(time.Date(2016, 5, 1, 0, 0, 0, 0, time.UTC)))

	require.Error(t, json.Unmarshal([]byte(`"not a time"`), &j))
}
