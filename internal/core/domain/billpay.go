package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SchedulePeriod is the recurrence of a scheduled bill payment.
type SchedulePeriod string

const (
	OnceOff SchedulePeriod = "O"
	Monthly SchedulePeriod = "M"
)

// Valid reports whether p is a known schedule period.
func (p SchedulePeriod) Valid() bool {
	return p == OnceOff || p == Monthly
}

// BillPay is scheduled-payment metadata referencing an account and a payee.
// Only the data shape is managed here; no execution engine runs these.
type BillPay struct {
	BillPayID       int             `json:"billPayID"` // Primary Key
	AccountNumber   int             `json:"accountNumber"`
	PayeeID         int             `json:"payeeID"`
	Amount          decimal.Decimal `json:"amount"` // Always positive
	ScheduleTimeUTC time.Time       `json:"scheduleTimeUtc"`
	Period          SchedulePeriod  `json:"period"`
	AuditFields
}
