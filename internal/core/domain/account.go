package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType distinguishes savings from checking accounts.
type AccountType string

const (
	Savings  AccountType = "S"
	Checking AccountType = "C"
)

// Account represents a customer's bank account. Balance is the persisted
// running balance and must always equal the signed sum of the account's
// transaction history.
type Account struct {
	AccountNumber int             `json:"accountNumber"` // Primary Key, 4 digits
	AccountType   AccountType     `json:"accountType"`
	CustomerID    int             `json:"customerID"` // FK -> customers.customer_id
	Balance       decimal.Decimal `json:"balance"`
	AuditFields
}
