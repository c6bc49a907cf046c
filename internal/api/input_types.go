package api

import (
	"encoding/json"
	"time"
)

// optionalDate distinguishes an absent JSON field from an explicit null or
// empty string (both of which clear the stored date).
type optionalDate struct {
	set   bool
	value *time.Time
}

func (field *optionalDate) UnmarshalJSON(data []byte) error {
	field.set = true

	raw := string(data)
	if raw == "null" || raw == `""` {
		field.value = nil
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	parsed, err := parseFlexibleDate(text)
	if err != nil {
		return err
	}
	field.value = &parsed
	return nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseFlexibleDate(text string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, text)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
