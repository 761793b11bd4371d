package register

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Tolerant readers over raw field maps. Documents arrive from the store with
// whatever types the original writer used; a bad value reads as absent, it
// never fails the record.

func fieldString(f map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := f[k]; ok {
			if s, ok := v.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					return s
				}
			}
		}
	}
	return ""
}

func fieldFloat(f map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		v, ok := f[k]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n, true
		case float32:
			return float64(n), true
		case int:
			return float64(n), true
		case int64:
			return float64(n), true
		case json.Number:
			if x, err := n.Float64(); err == nil {
				return x, true
			}
		case string:
			if x, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return x, true
			}
		}
	}
	return 0, false
}

// fieldDate resolves a due date to an ISO 8601 string. Accepted inputs:
// a time.Time, a timestamp object ({seconds,nanos} map), an epoch number
// (seconds or milliseconds), or an ISO-parseable string. Anything else is
// absent, never an error.
func fieldDate(f map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := f[k]; ok {
			if s, ok := coerceDate(v); ok {
				return s
			}
		}
	}
	return ""
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
}

func coerceDate(v any) (string, bool) {
	switch d := v.(type) {
	case time.Time:
		return d.UTC().Format(time.RFC3339), true
	case string:
		s := strings.TrimSpace(d)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC().Format(time.RFC3339), true
			}
		}
	case map[string]any:
		// Timestamp objects deserialize as {seconds, nanos} maps.
		if secs, ok := fieldFloat(d, "seconds", "_seconds"); ok {
			nanos, _ := fieldFloat(d, "nanos", "_nanoseconds")
			return time.Unix(int64(secs), int64(nanos)).UTC().Format(time.RFC3339), true
		}
	case float64, float32, int, int64, json.Number:
		if epoch, ok := fieldFloat(map[string]any{"v": v}, "v"); ok && epoch > 0 {
			if epoch >= 1e12 { // milliseconds
				return time.UnixMilli(int64(epoch)).UTC().Format(time.RFC3339), true
			}
			return time.Unix(int64(epoch), 0).UTC().Format(time.RFC3339), true
		}
	}
	return "", false
}
