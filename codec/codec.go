// Package codec binds common Go types that JSON carries as strings.
package codec

import (
	"encoding/base64"
	"time"

	"github.com/reoring/ezjson"
)

// RFC3339 binds key to a timestamp. Reading accepts RFC 3339 with or without
// fractional seconds; writing normalizes to UTC with trailing zeros trimmed.
//
//	codec.RFC3339(ar, "created_at", &e.CreatedAt)
func RFC3339(ar ezjson.Archive, key string, v *time.Time) {
	ezjson.Text(ar, key, v, formatRFC3339Canonical, parseRFC3339)
}

// Duration binds key to a time.Duration in its String form ("1m30s").
func Duration(ar ezjson.Archive, key string, v *time.Duration) {
	ezjson.Text(ar, key, v, time.Duration.String, time.ParseDuration)
}

// Base64 binds key to a byte slice in standard padded base64.
func Base64(ar ezjson.Archive, key string, v *[]byte) {
	ezjson.Text(ar, key, v, base64.StdEncoding.EncodeToString, base64.StdEncoding.DecodeString)
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}
