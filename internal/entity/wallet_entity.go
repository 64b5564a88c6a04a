package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string
type TransactionStatus string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"

	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

type WalletTransaction struct {
	Id            uuid.UUID
	CompanyId     uuid.UUID
	Type          TransactionType
	Amount        decimal.Decimal
	Status        TransactionStatus
	Description   string
	InvoiceNumber *string
	CreatedAt     time.Time
}

// TransactionListItem joins the company name for the transactions view.
type TransactionListItem struct {
	WalletTransaction
	CompanyName string
}

// FoldBalance derives a company balance as the signed sum over its
// completed transactions: credits add, debits subtract. Pending and
// failed transactions do not count.
func FoldBalance(txs []*WalletTransaction) decimal.Decimal {
	balance := decimal.Zero
	for _, tx := range txs {
		if tx.Status != TransactionStatusCompleted {
			continue
		}
		switch tx.Type {
		case TransactionTypeCredit:
			balance = balance.Add(tx.Amount)
		case TransactionTypeDebit:
			balance = balance.Sub(tx.Amount)
		}
	}
	return balance
}
