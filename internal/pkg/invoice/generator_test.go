package invoice

import (
	"testing"
	"time"

	"agegate-admin-be/internal/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testTransaction(invoiceNumber *string) *entity.TransactionListItem {
	return &entity.TransactionListItem{
		WalletTransaction: entity.WalletTransaction{
			Id:            uuid.New(),
			CompanyId:     uuid.New(),
			Type:          entity.TransactionTypeCredit,
			Amount:        decimal.RequireFromString("1210.00"),
			Status:        entity.TransactionStatusCompleted,
			Description:   "Credit top-up",
			InvoiceNumber: invoiceNumber,
			CreatedAt:     time.Now(),
		},
		CompanyName: "Test Company s.r.o.",
	}
}

func TestBuildRequiresInvoiceNumber(t *testing.T) {
	g := NewGenerator()

	_, err := g.Build(testTransaction(nil), SupplierDetails{}, Options{VatRate: decimal.NewFromInt(21), DueDays: 14})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no invoice number")
}

func TestBuildProducesWorkbook(t *testing.T) {
	g := NewGenerator()
	number := "2026/00042"

	supplier := SupplierDetails{
		Name:        "AgeGate s.r.o.",
		Address:     "Prague",
		Ico:         "12345678",
		Dic:         "CZ12345678",
		BankAccount: "123456789/0100",
	}

	buf, err := g.Build(testTransaction(&number), supplier, Options{VatRate: decimal.NewFromInt(21), DueDays: 14})

	assert.NoError(t, err)
	assert.NotNil(t, buf)
	assert.Greater(t, buf.Len(), 0)
}
