package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// VatMode represents how a voucher treats VAT across its line items.
// Vatable vouchers must carry only vatable lines, Exempt vouchers only exempt
// lines; All allows a mix and bypasses both checks.
type VatMode int

const (
	VatModeVatable VatMode = 0
	VatModeExempt  VatMode = 1
	VatModeAll     VatMode = 2
)

func (m VatMode) String() string {
	names := [...]string{"Vatable", "Exempt", "All"}
	if int(m) < 0 || int(m) >= len(names) {
		return "Vatable"
	}
	return names[m]
}

// IsValid reports whether the mode is one of the recognized VAT modes.
func (m VatMode) IsValid() bool {
	switch m {
	case VatModeVatable, VatModeExempt, VatModeAll:
		return true
	}
	return false
}

func (m VatMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *VatMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		mode := VatMode(i)
		if !mode.IsValid() {
			return fmt.Errorf("invalid VAT mode: %d", i)
		}
		*m = mode
		return nil
	}
	switch str {
	case "Vatable", "vatable":
		*m = VatModeVatable
	case "Exempt", "exempt":
		*m = VatModeExempt
	case "All", "all":
		*m = VatModeAll
	default:
		return fmt.Errorf("invalid VAT mode: %q", str)
	}
	return nil
}

func (m VatMode) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *VatMode) Scan(value interface{}) error {
	if value == nil {
		*m = VatModeVatable
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = VatMode(v)
	case int:
		*m = VatMode(v)
	}
	return nil
}
