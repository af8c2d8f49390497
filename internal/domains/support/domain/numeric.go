package domain

import (
	"database/sql/driver"
	"fmt"
	"strconv"
)

// NullNumeric reads numeric columns that the external store may hold as
// numbers, strings, or NULL. Values that cannot be parsed are treated as
// absent rather than failing the scan.
type NullNumeric struct {
	Float64 float64
	Valid   bool
}

// Numeric returns a valid NullNumeric holding v.
func Numeric(v float64) NullNumeric {
	return NullNumeric{Float64: v, Valid: true}
}

// Scan implements sql.Scanner.
func (n *NullNumeric) Scan(value any) error {
	n.Float64, n.Valid = 0, false
	switch v := value.(type) {
	case nil:
	case float64:
		n.Float64, n.Valid = v, true
	case int64:
		n.Float64, n.Valid = float64(v), true
	case []byte:
		n.parse(string(v))
	case string:
		n.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into NullNumeric", value)
	}
	return nil
}

func (n *NullNumeric) parse(s string) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return
	}
	n.Float64, n.Valid = f, true
}

// Value implements driver.Valuer.
func (n NullNumeric) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Float64, nil
}
