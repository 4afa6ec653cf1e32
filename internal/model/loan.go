package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus is the review state of a loan application.
type LoanStatus string

const (
	LoanPending  LoanStatus = "pending"
	LoanApproved LoanStatus = "approved"
	LoanRejected LoanStatus = "rejected"
)

// LoanApplication is one row in the loan application history.
type LoanApplication struct {
	ID         string          `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	TermMonths int             `json:"term_months"`
	Purpose    string          `json:"purpose"`
	Status     LoanStatus      `json:"status"`
	AppliedAt  time.Time       `json:"applied_at"`
}
