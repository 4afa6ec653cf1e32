package ledger

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/workwealth/workwealth/internal/model"
	"github.com/workwealth/workwealth/internal/ref"
)

// ErrInvalidAmount is returned when a mutation is called with a
// non-positive amount.
var ErrInvalidAmount = errors.New("amount must be greater than zero")

// ErrInsufficientFunds is returned when a debit would take the balance
// below zero. The balance and history are left untouched.
var ErrInsufficientFunds = errors.New("insufficient balance")

// Store persists the ledger's consistency unit: the balance and the
// transaction history. Append must commit the transaction and the new
// balance as one atomic step.
type Store interface {
	Balance() (decimal.Decimal, error)
	// Transactions returns the full history, most-recent-first.
	Transactions() ([]model.Transaction, error)
	Append(tx model.Transaction, newBalance decimal.Decimal) error
	// Reset replaces all ledger state. Used by wallet init and tests.
	Reset(balance decimal.Decimal) error
}

// Notifier receives a notification after each successful mutation.
type Notifier interface {
	TransactionPosted(tx model.Transaction)
}

// Service is the single source of truth for the wallet balance and
// transaction history. Mutations are serialized by a mutex and the funds
// check runs inside the critical section, so rapid repeated debits cannot
// overdraw the balance.
type Service struct {
	mu       sync.Mutex
	store    Store
	notifier Notifier

	now   func() time.Time
	newID func() string
}

// Option configures a Service.
type Option func(*Service)

// WithNotifier wires a Notifier that is told about every posted transaction.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithClock overrides the transaction timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a ledger Service over a Store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Balance returns the current wallet balance.
func (s *Service) Balance() (decimal.Decimal, error) {
	return s.store.Balance()
}

// Transactions returns the full history, most-recent-first.
func (s *Service) Transactions() ([]model.Transaction, error) {
	return s.store.Transactions()
}

// TransactionsByCategory returns the history filtered to one category,
// most-recent-first.
func (s *Service) TransactionsByCategory(c model.Category) ([]model.Transaction, error) {
	all, err := s.store.Transactions()
	if err != nil {
		return nil, err
	}
	var out []model.Transaction
	for _, tx := range all {
		if tx.Category == c {
			out = append(out, tx)
		}
	}
	return out, nil
}

// Deposit credits the wallet and records a deposit transaction.
func (s *Service) Deposit(amount decimal.Decimal, description string) (model.Transaction, error) {
	if description == "" {
		description = "Wallet deposit"
	}
	return s.credit(amount, model.CategoryDeposit, description, "")
}

// Withdraw debits the wallet and records a withdrawal transaction.
// Fails with ErrInsufficientFunds if amount exceeds the balance.
func (s *Service) Withdraw(amount decimal.Decimal, description string) (model.Transaction, error) {
	if description == "" {
		description = "Cash withdrawal"
	}
	return s.debit(amount, model.CategoryWithdrawal, description, "")
}

// Transfer debits the wallet and records a transfer to recipient.
func (s *Service) Transfer(amount decimal.Decimal, recipient string) (model.Transaction, error) {
	if strings.TrimSpace(recipient) == "" {
		return model.Transaction{}, errors.New("transfer recipient is required")
	}
	return s.debit(amount, model.CategoryTransfer, "Transfer to "+recipient, recipient)
}

// PayBill debits the wallet and records a bill payment. The recipient is
// derived from the first word of the description.
func (s *Service) PayBill(amount decimal.Decimal, description string) (model.Transaction, error) {
	if strings.TrimSpace(description) == "" {
		return model.Transaction{}, errors.New("bill description is required")
	}
	recipient := strings.Fields(description)[0]
	return s.debit(amount, model.CategoryBills, description, recipient)
}

// CreditLoan credits the wallet with a disbursed loan principal.
func (s *Service) CreditLoan(amount decimal.Decimal, description string) (model.Transaction, error) {
	if description == "" {
		description = "Loan disbursement"
	}
	return s.credit(amount, model.CategoryLoan, description, "WorkWealth Loans")
}

// Reset replaces all ledger state with an empty history and the given
// opening balance.
func (s *Service) Reset(balance decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if balance.IsNegative() {
		return fmt.Errorf("opening balance cannot be negative")
	}
	return s.store.Reset(balance)
}

func (s *Service) credit(amount decimal.Decimal, category model.Category, description, sender string) (model.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return model.Transaction{}, ErrInvalidAmount
	}

	s.mu.Lock()
	balance, err := s.store.Balance()
	if err != nil {
		s.mu.Unlock()
		return model.Transaction{}, err
	}

	tx := s.newTransaction(amount, model.TypeCredit, category, description)
	tx.Sender = sender
	if err := s.store.Append(tx, balance.Add(amount)); err != nil {
		s.mu.Unlock()
		return model.Transaction{}, fmt.Errorf("recording %s: %w", category, err)
	}
	s.mu.Unlock()

	s.notify(tx)
	return tx, nil
}

func (s *Service) debit(amount decimal.Decimal, category model.Category, description, recipient string) (model.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return model.Transaction{}, ErrInvalidAmount
	}

	s.mu.Lock()
	balance, err := s.store.Balance()
	if err != nil {
		s.mu.Unlock()
		return model.Transaction{}, err
	}
	if amount.GreaterThan(balance) {
		s.mu.Unlock()
		return model.Transaction{}, ErrInsufficientFunds
	}

	tx := s.newTransaction(amount, model.TypeDebit, category, description)
	tx.Recipient = recipient
	if err := s.store.Append(tx, balance.Sub(amount)); err != nil {
		s.mu.Unlock()
		return model.Transaction{}, fmt.Errorf("recording %s: %w", category, err)
	}
	s.mu.Unlock()

	s.notify(tx)
	return tx, nil
}

func (s *Service) newTransaction(amount decimal.Decimal, txType model.TxType, category model.Category, description string) model.Transaction {
	return model.Transaction{
		ID:          s.newID(),
		Amount:      amount,
		Date:        s.now(),
		Type:        txType,
		Description: description,
		Status:      model.StatusCompleted,
		Reference:   ref.New(category),
		Category:    category,
	}
}

func (s *Service) notify(tx model.Transaction) {
	if s.notifier != nil {
		s.notifier.TransactionPosted(tx)
	}
}
