package utils

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// CustomDate stores a calendar day without a time component.
type CustomDate struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) CustomDate {
	return CustomDate{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar day.
func Today() CustomDate {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// === JSON: accepts and emits "YYYY-MM-DD" ===
func (d *CustomDate) UnmarshalJSON(data []byte) error {
	if string(data) == `null` {
		*d = CustomDate{time.Time{}}
		return nil
	}

	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	t, err := time.Parse("2006-01-02", str)
	if err != nil {
		return fmt.Errorf("invalid date format: %s", str)
	}
	*d = CustomDate{t}
	return nil
}

func (d CustomDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// === DB ===
func (d CustomDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time.Format("2006-01-02"), nil
}

func (d *CustomDate) Scan(value interface{}) error {
	if value == nil {
		*d = CustomDate{time.Time{}}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*d = CustomDate{v}
		return nil
	case string:
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return fmt.Errorf("cannot parse date string: %v", err)
		}
		*d = CustomDate{t}
		return nil
	case []byte:
		t, err := time.Parse("2006-01-02", string(v))
		if err != nil {
			return fmt.Errorf("cannot parse date bytes: %v", err)
		}
		*d = CustomDate{t}
		return nil
	default:
		return fmt.Errorf("unsupported scan type for CustomDate: %T", value)
	}
}

// === Helpers ===
func (d CustomDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

func (d CustomDate) AddDays(n int) CustomDate {
	return CustomDate{d.Time.AddDate(0, 0, n)}
}

func (d CustomDate) Before(other CustomDate) bool {
	return d.Time.Before(other.Time)
}

func (d CustomDate) After(other CustomDate) bool {
	return d.Time.After(other.Time)
}

func (d CustomDate) Equal(other CustomDate) bool {
	return d.Time.Equal(other.Time)
}

// DaysUntil counts whole days from d up to end. Negative when end is
// earlier than d.
func (d CustomDate) DaysUntil(end CustomDate) int {
	return int(end.Time.Sub(d.Time).Hours() / 24)
}

// DatesUntil lists every day in [d, end), matching the half-open range a
// stay occupies: the checkout day itself is never included.
func (d CustomDate) DatesUntil(end CustomDate) []CustomDate {
	var dates []CustomDate
	for cur := d; cur.Before(end); cur = cur.AddDays(1) {
		dates = append(dates, cur)
	}
	return dates
}
