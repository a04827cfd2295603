package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Timestamp wraps time.Time so that the API accepts every date encoding
// the web client actually sends: full RFC3339 timestamps, timestamps
// without a zone, and bare YYYY-MM-DD dates.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTimestamp parses s against the accepted layouts.
func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unrecognized time value %q", s)
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		ts.Time = time.Time{}
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	ts.Time = parsed.Time
	return nil
}

// Value implements driver.Valuer so gorm stores the wrapped time.
func (ts Timestamp) Value() (driver.Value, error) {
	if ts.IsZero() {
		return nil, nil
	}
	return ts.Time, nil
}

// Scan implements sql.Scanner.
func (ts *Timestamp) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		ts.Time = time.Time{}
	case time.Time:
		ts.Time = v
	case []byte:
		parsed, err := ParseTimestamp(string(v))
		if err != nil {
			return err
		}
		ts.Time = parsed.Time
	case string:
		parsed, err := ParseTimestamp(v)
		if err != nil {
			return err
		}
		ts.Time = parsed.Time
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", value)
	}
	return nil
}
