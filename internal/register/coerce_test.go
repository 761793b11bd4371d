package register

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoerceDate(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   string
		wantOK bool
	}{
		{"rfc3339", "2025-06-01T10:30:00Z", "2025-06-01T10:30:00Z", true},
		{"rfc3339 offset", "2025-06-01T12:30:00+02:00", "2025-06-01T10:30:00Z", true},
		{"date only", "2025-06-01", "2025-06-01T00:00:00Z", true},
		{"no zone", "2025-06-01T10:30:00", "2025-06-01T10:30:00Z", true},
		{"uk style", "01/06/2025", "2025-06-01T00:00:00Z", true},
		{"epoch seconds", float64(1748773800), "2025-06-01T10:30:00Z", true},
		{"epoch millis", float64(1748773800000), "2025-06-01T10:30:00Z", true},
		{"timestamp object", map[string]any{"seconds": float64(1748773800), "nanos": float64(0)}, "2025-06-01T10:30:00Z", true},
		{"native time", time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC), "2025-06-01T10:30:00Z", true},
		{"garbage string", "soon", "", false},
		{"nil", nil, "", false},
		{"bool", true, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := coerceDate(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldFloat(t *testing.T) {
	f := map[string]any{
		"f":   0.25,
		"i":   int(3),
		"s":   "0.5",
		"bad": "half",
	}
	for _, tt := range []struct {
		key    string
		want   float64
		wantOK bool
	}{
		{"f", 0.25, true},
		{"i", 3, true},
		{"s", 0.5, true},
		{"bad", 0, false},
		{"missing", 0, false},
	} {
		got, ok := fieldFloat(f, tt.key)
		assert.Equal(t, tt.wantOK, ok, tt.key)
		assert.Equal(t, tt.want, got, tt.key)
	}
}

func TestFieldStringTrimsAndFallsThrough(t *testing.T) {
	f := map[string]any{"a": "  ", "b": " value ", "c": 7}
	assert.Equal(t, "value", fieldString(f, "a", "b"))
	assert.Equal(t, "", fieldString(f, "c"))
}
