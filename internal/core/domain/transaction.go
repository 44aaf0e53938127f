package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind is the single-character ledger record type.
type TransactionKind string

const (
	Deposit     TransactionKind = "D"
	Withdrawal  TransactionKind = "W"
	Transfer    TransactionKind = "T"
	ServiceFee  TransactionKind = "S"
	BillPayment TransactionKind = "B"
)

// Valid reports whether k is one of the known transaction kinds.
func (k TransactionKind) Valid() bool {
	switch k {
	case Deposit, Withdrawal, Transfer, ServiceFee, BillPayment:
		return true
	}
	return false
}

// Transaction is a single immutable ledger record belonging to exactly one
// account. DestinationAccountNumber is set only on the source-side leg of a
// transfer; the destination-side leg does not point back.
type Transaction struct {
	TransactionID            string          `json:"transactionID"` // UUID
	AccountNumber            int             `json:"accountNumber"` // FK -> accounts.account_number
	Kind                     TransactionKind `json:"kind"`
	Amount                   decimal.Decimal `json:"amount"` // Always positive
	Comment                  string          `json:"comment"`
	DestinationAccountNumber *int            `json:"destinationAccountNumber,omitempty"`
	TransactionTimeUTC       time.Time       `json:"transactionTimeUtc"`
}

// IsChargeable reports whether the record counts toward the service-fee
// threshold: a withdrawal, or the source-side leg of a transfer. Fee records
// and destination-side transfer legs never count.
func (t Transaction) IsChargeable() bool {
	if t.Kind == Withdrawal {
		return true
	}
	return t.Kind == Transfer && t.DestinationAccountNumber != nil
}
