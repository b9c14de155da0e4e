package utils

import (
	"time"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

// ParseDate converts a "YYYY-MM-DD" string, already validated at the
// binding layer, into a date column value.
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}
