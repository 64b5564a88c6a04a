package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func tx(txType TransactionType, status TransactionStatus, amount string) *WalletTransaction {
	return &WalletTransaction{
		Type:   txType,
		Status: status,
		Amount: decimal.RequireFromString(amount),
	}
}

func TestFoldBalance(t *testing.T) {
	txs := []*WalletTransaction{
		tx(TransactionTypeCredit, TransactionStatusCompleted, "100.50"),
		tx(TransactionTypeDebit, TransactionStatusCompleted, "30.25"),
		tx(TransactionTypeCredit, TransactionStatusPending, "999"),
		tx(TransactionTypeDebit, TransactionStatusFailed, "999"),
	}

	assert.True(t, FoldBalance(txs).Equal(decimal.RequireFromString("70.25")))
}

func TestFoldBalanceEmpty(t *testing.T) {
	assert.True(t, FoldBalance(nil).IsZero())
}

func TestFoldBalanceCanGoNegative(t *testing.T) {
	txs := []*WalletTransaction{
		tx(TransactionTypeCredit, TransactionStatusCompleted, "10"),
		tx(TransactionTypeDebit, TransactionStatusCompleted, "25"),
	}

	assert.True(t, FoldBalance(txs).Equal(decimal.NewFromInt(-15)))
}
