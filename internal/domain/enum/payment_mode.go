package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMode represents how a voucher is settled
type PaymentMode int

const (
	PaymentModeCash   PaymentMode = 0
	PaymentModeBank   PaymentMode = 1
	PaymentModeCheque PaymentMode = 2
	PaymentModeCredit PaymentMode = 3
)

func (m PaymentMode) String() string {
	names := [...]string{"Cash", "Bank", "Cheque", "Credit"}
	if int(m) < 0 || int(m) >= len(names) {
		return "Cash"
	}
	return names[m]
}

// IsValid reports whether the mode is one of the allowed settlement modes.
func (m PaymentMode) IsValid() bool {
	return m >= PaymentModeCash && m <= PaymentModeCredit
}

// IsImmediate reports whether the mode moves money now (cash/bank/cheque) as
// opposed to booking a receivable or payable.
func (m PaymentMode) IsImmediate() bool {
	return m == PaymentModeCash || m == PaymentModeBank || m == PaymentModeCheque
}

func (m PaymentMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMode(i)
		return nil
	}
	switch str {
	case "Cash", "cash":
		*m = PaymentModeCash
	case "Bank", "bank":
		*m = PaymentModeBank
	case "Cheque", "cheque":
		*m = PaymentModeCheque
	case "Credit", "credit":
		*m = PaymentModeCredit
	}
	return nil
}

func (m PaymentMode) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMode) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentModeCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMode(v)
	case int:
		*m = PaymentMode(v)
	}
	return nil
}
