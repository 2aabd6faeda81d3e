package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "valid date", value: "2026-09-15", want: true},
		{name: "leap day", value: "2024-02-29", want: true},
		{name: "impossible day", value: "2026-02-30", want: false},
		{name: "unpadded month", value: "2026-9-15", want: false},
		{name: "us format", value: "09/15/2026", want: false},
		{name: "empty", value: "", want: false},
		{name: "trailing garbage", value: "2026-09-15T00:00:00Z", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := ParseDate(tt.value)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.want, IsValidDate(tt.value))
			if tt.want {
				assert.Equal(t, tt.value, FormatDate(parsed))
			}
		})
	}
}

func TestTimestamp(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	local := time.Date(2026, 9, 15, 8, 45, 0, 0, loc)
	assert.Equal(t, "2026-09-15T12:45:00Z", Timestamp(local))
}
