package employee

import (
	"encoding/json"
	"fmt"
	"time"
)

// dateLayouts are tried in order. Values without an offset are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date is an employee date on the wire. It accepts an RFC 3339 timestamp,
// a timestamp without offset or a bare calendar date, and always writes
// RFC 3339.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("date %q is not RFC 3339, 2006-01-02T15:04:05 or 2006-01-02", raw)
}
