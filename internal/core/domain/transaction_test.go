package domain_test

import (
	"testing"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestTransaction_IsChargeable(t *testing.T) {
	tests := []struct {
		name string
		txn  domain.Transaction
		want bool
	}{
		{
			name: "withdrawal counts",
			txn:  domain.Transaction{Kind: domain.Withdrawal},
			want: true,
		},
		{
			name: "source-side transfer leg counts",
			txn:  domain.Transaction{Kind: domain.Transfer, DestinationAccountNumber: intPtr(4200)},
			want: true,
		},
		{
			name: "destination-side transfer leg does not count",
			txn:  domain.Transaction{Kind: domain.Transfer},
			want: false,
		},
		{
			name: "deposit does not count",
			txn:  domain.Transaction{Kind: domain.Deposit},
			want: false,
		},
		{
			name: "service fee does not count",
			txn:  domain.Transaction{Kind: domain.ServiceFee},
			want: false,
		},
		{
			name: "bill payment does not count",
			txn:  domain.Transaction{Kind: domain.BillPayment},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.txn.IsChargeable())
		})
	}
}

func TestTransactionKind_Valid(t *testing.T) {
	for _, kind := range []domain.TransactionKind{domain.Deposit, domain.Withdrawal, domain.Transfer, domain.ServiceFee, domain.BillPayment} {
		assert.True(t, kind.Valid(), string(kind))
	}
	assert.False(t, domain.TransactionKind("X").Valid())
	assert.False(t, domain.TransactionKind("").Valid())
}
