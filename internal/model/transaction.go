package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxType is the direction of a transaction relative to the wallet.
type TxType string

const (
	TypeCredit TxType = "credit"
	TypeDebit  TxType = "debit"
)

// TxStatus is the settlement state of a transaction. There is no
// asynchronous settlement, so every transaction is created completed.
type TxStatus string

const (
	StatusCompleted TxStatus = "completed"
	StatusPending   TxStatus = "pending"
	StatusFailed    TxStatus = "failed"
)

// Category classifies a transaction for filtering and display.
type Category string

const (
	CategoryDeposit    Category = "deposit"
	CategoryWithdrawal Category = "withdrawal"
	CategoryTransfer   Category = "transfer"
	CategoryLoan       Category = "loan"
	CategorySavings    Category = "savings"
	CategoryBills      Category = "bills"
	CategoryShopping   Category = "shopping"
)

// Categories lists every valid transaction category.
var Categories = []Category{
	CategoryDeposit,
	CategoryWithdrawal,
	CategoryTransfer,
	CategoryLoan,
	CategorySavings,
	CategoryBills,
	CategoryShopping,
}

// ValidCategory reports whether c is a known category.
func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Transaction is an immutable record of one balance-affecting event.
// Amount is always positive; Type carries the direction.
type Transaction struct {
	ID          string
	Amount      decimal.Decimal
	Date        time.Time
	Type        TxType
	Description string
	Status      TxStatus
	Reference   string
	Recipient   string
	Sender      string
	Category    Category
}
