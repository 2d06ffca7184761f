package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// AdjustmentType represents the direction of a stock adjustment line
type AdjustmentType int

const (
	AdjustmentTypeExcess AdjustmentType = 0
	AdjustmentTypeShort  AdjustmentType = 1
)

func (t AdjustmentType) String() string {
	names := [...]string{"Excess", "Short"}
	if int(t) < 0 || int(t) >= len(names) {
		return "Excess"
	}
	return names[t]
}

// IsValid reports whether the adjustment type is recognized.
func (t AdjustmentType) IsValid() bool {
	return t == AdjustmentTypeExcess || t == AdjustmentTypeShort
}

func (t AdjustmentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *AdjustmentType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = AdjustmentType(i)
		return nil
	}
	switch str {
	case "Excess", "excess":
		*t = AdjustmentTypeExcess
	case "Short", "short":
		*t = AdjustmentTypeShort
	}
	return nil
}

func (t AdjustmentType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *AdjustmentType) Scan(value interface{}) error {
	if value == nil {
		*t = AdjustmentTypeExcess
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = AdjustmentType(v)
	case int:
		*t = AdjustmentType(v)
	}
	return nil
}
