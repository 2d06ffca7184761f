package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// VatStatus represents whether an item attracts VAT
type VatStatus int

const (
	VatStatusVatable VatStatus = 0
	VatStatusExempt  VatStatus = 1
)

func (s VatStatus) String() string {
	names := [...]string{"Vatable", "Exempt"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Vatable"
	}
	return names[s]
}

func (s VatStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *VatStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = VatStatus(i)
		return nil
	}
	switch str {
	case "Vatable", "vatable":
		*s = VatStatusVatable
	case "Exempt", "exempt", "vatExempt":
		*s = VatStatusExempt
	}
	return nil
}

func (s VatStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *VatStatus) Scan(value interface{}) error {
	if value == nil {
		*s = VatStatusVatable
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = VatStatus(v)
	case int:
		*s = VatStatus(v)
	}
	return nil
}
