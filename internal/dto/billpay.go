package dto

import (
	"time"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ScheduleBillPayRequest defines the data needed to schedule a bill payment.
type ScheduleBillPayRequest struct {
	AccountNumber   int                   `json:"accountNumber" binding:"required"`
	PayeeID         int                   `json:"payeeID" binding:"required"`
	Amount          decimal.Decimal       `json:"amount" binding:"required"`
	ScheduleTimeUTC time.Time             `json:"scheduleTimeUtc" binding:"required"`
	Period          domain.SchedulePeriod `json:"period" binding:"required,oneof=O M"`
}

// BillPayResponse defines the data returned for a scheduled payment.
type BillPayResponse struct {
	BillPayID       int                   `json:"billPayID"`
	AccountNumber   int                   `json:"accountNumber"`
	PayeeID         int                   `json:"payeeID"`
	Amount          decimal.Decimal       `json:"amount"`
	ScheduleTimeUTC time.Time             `json:"scheduleTimeUtc"`
	Period          domain.SchedulePeriod `json:"period"`
}

// ToBillPayResponse converts a domain.BillPay to BillPayResponse.
func ToBillPayResponse(b *domain.BillPay) BillPayResponse {
	return BillPayResponse{
		BillPayID:       b.BillPayID,
		AccountNumber:   b.AccountNumber,
		PayeeID:         b.PayeeID,
		Amount:          b.Amount,
		ScheduleTimeUTC: b.ScheduleTimeUTC,
		Period:          b.Period,
	}
}

// ToListBillPaysResponse converts a slice of domain.BillPay.
func ToListBillPaysResponse(billPays []domain.BillPay) []BillPayResponse {
	res := make([]BillPayResponse, len(billPays))
	for i, b := range billPays {
		res[i] = ToBillPayResponse(&b)
	}
	return res
}

// PayeeResponse defines the data returned for a payee.
type PayeeResponse struct {
	PayeeID  int    `json:"payeeID"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	PostCode string `json:"postCode"`
	Phone    string `json:"phone"`
}

// ToPayeeResponse converts a domain.Payee to PayeeResponse.
func ToPayeeResponse(p *domain.Payee) PayeeResponse {
	return PayeeResponse{
		PayeeID:  p.PayeeID,
		Name:     p.Name,
		Address:  p.Address,
		City:     p.City,
		State:    p.State,
		PostCode: p.PostCode,
		Phone:    p.Phone,
	}
}

// ToListPayeesResponse converts a slice of domain.Payee.
func ToListPayeesResponse(payees []domain.Payee) []PayeeResponse {
	res := make([]PayeeResponse, len(payees))
	for i, p := range payees {
		res[i] = ToPayeeResponse(&p)
	}
	return res
}
