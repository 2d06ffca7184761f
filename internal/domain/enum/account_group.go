package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// AccountGroup classifies a ledger account. It is descriptive only: running
// balances are stored with a uniform +debit/-credit sign regardless of group.
type AccountGroup int

const (
	AccountGroupCash     AccountGroup = 0
	AccountGroupBank     AccountGroup = 1
	AccountGroupParty    AccountGroup = 2
	AccountGroupSales    AccountGroup = 3
	AccountGroupPurchase AccountGroup = 4
	AccountGroupTax      AccountGroup = 5
	AccountGroupRoundOff AccountGroup = 6
	AccountGroupExpense  AccountGroup = 7
	AccountGroupIncome   AccountGroup = 8
	AccountGroupCapital  AccountGroup = 9
)

func (g AccountGroup) String() string {
	names := [...]string{
		"Cash", "Bank", "Party", "Sales", "Purchase",
		"Tax", "RoundOff", "Expense", "Income", "Capital",
	}
	if int(g) < 0 || int(g) >= len(names) {
		return "Party"
	}
	return names[g]
}

func (g AccountGroup) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

func (g *AccountGroup) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*g = AccountGroup(i)
		return nil
	}
	switch str {
	case "Cash", "cash":
		*g = AccountGroupCash
	case "Bank", "bank":
		*g = AccountGroupBank
	case "Party", "party":
		*g = AccountGroupParty
	case "Sales", "sales":
		*g = AccountGroupSales
	case "Purchase", "purchase":
		*g = AccountGroupPurchase
	case "Tax", "tax":
		*g = AccountGroupTax
	case "RoundOff", "roundOff", "roundoff":
		*g = AccountGroupRoundOff
	case "Expense", "expense":
		*g = AccountGroupExpense
	case "Income", "income":
		*g = AccountGroupIncome
	case "Capital", "capital":
		*g = AccountGroupCapital
	}
	return nil
}

func (g AccountGroup) Value() (driver.Value, error) {
	return int64(g), nil
}

func (g *AccountGroup) Scan(value interface{}) error {
	if value == nil {
		*g = AccountGroupParty
		return nil
	}
	switch v := value.(type) {
	case int64:
		*g = AccountGroup(v)
	case int:
		*g = AccountGroup(v)
	}
	return nil
}
