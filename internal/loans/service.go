package loans

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/workwealth/workwealth/internal/model"
)

// applicationsFile is the loan history file inside the wallet data dir.
const applicationsFile = "loan-applications.json"

// ErrNotFound is returned when a loan application ID does not exist.
var ErrNotFound = errors.New("loan application not found")

// ErrNotPending is returned when a decision is applied to an application
// that is no longer pending.
var ErrNotPending = errors.New("loan application is not pending")

// CreditLedger disburses approved principals into the wallet.
type CreditLedger interface {
	CreditLoan(amount decimal.Decimal, description string) (model.Transaction, error)
}

// Notifier announces loan decisions.
type Notifier interface {
	AddWithAction(title, message string, nType model.NotificationType, actionLabel, actionTarget string) (model.Notification, error)
}

// Service manages the loan application history.
type Service struct {
	dataDir  string
	ledger   CreditLedger
	notifier Notifier

	now   func() time.Time
	newID func() string
}

// NewService creates a loan Service. notifier may be nil.
func NewService(dataDir string, ledger CreditLedger, notifier Notifier) *Service {
	return &Service{
		dataDir:  dataDir,
		ledger:   ledger,
		notifier: notifier,
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}
}

// Apply records a new pending loan application.
func (s *Service) Apply(amount decimal.Decimal, termMonths int, purpose string) (model.LoanApplication, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return model.LoanApplication{}, fmt.Errorf("loan amount must be greater than zero")
	}
	if termMonths < 1 || termMonths > 24 {
		return model.LoanApplication{}, fmt.Errorf("loan term must be between 1 and 24 months")
	}
	if purpose == "" {
		return model.LoanApplication{}, fmt.Errorf("loan purpose is required")
	}

	apps, err := s.load()
	if err != nil {
		return model.LoanApplication{}, err
	}

	app := model.LoanApplication{
		ID:         s.newID(),
		Amount:     amount,
		TermMonths: termMonths,
		Purpose:    purpose,
		Status:     model.LoanPending,
		AppliedAt:  s.now(),
	}
	apps = append([]model.LoanApplication{app}, apps...)
	if err := s.save(apps); err != nil {
		return model.LoanApplication{}, err
	}
	return app, nil
}

// List returns all applications, most-recent-first.
func (s *Service) List() ([]model.LoanApplication, error) {
	return s.load()
}

// Approve marks a pending application approved and disburses the
// principal into the wallet.
func (s *Service) Approve(id string) (model.LoanApplication, error) {
	app, err := s.decide(id, model.LoanApproved)
	if err != nil {
		return model.LoanApplication{}, err
	}

	desc := fmt.Sprintf("Loan disbursement (%d months, %s)", app.TermMonths, app.Purpose)
	if _, err := s.ledger.CreditLoan(app.Amount, desc); err != nil {
		return model.LoanApplication{}, fmt.Errorf("disbursing loan: %w", err)
	}

	if s.notifier != nil {
		_, _ = s.notifier.AddWithAction(
			"Loan approved",
			fmt.Sprintf("Your loan for %q was approved and disbursed to your wallet.", app.Purpose),
			model.NotificationLoan,
			"View loan", "loan",
		)
	}
	return app, nil
}

// Reject marks a pending application rejected.
func (s *Service) Reject(id string) (model.LoanApplication, error) {
	app, err := s.decide(id, model.LoanRejected)
	if err != nil {
		return model.LoanApplication{}, err
	}
	if s.notifier != nil {
		_, _ = s.notifier.AddWithAction(
			"Loan rejected",
			fmt.Sprintf("Your loan application for %q was not approved this time.", app.Purpose),
			model.NotificationLoan,
			"View loan", "loan",
		)
	}
	return app, nil
}

func (s *Service) decide(id string, status model.LoanStatus) (model.LoanApplication, error) {
	apps, err := s.load()
	if err != nil {
		return model.LoanApplication{}, err
	}
	for i := range apps {
		if apps[i].ID != id {
			continue
		}
		if apps[i].Status != model.LoanPending {
			return model.LoanApplication{}, ErrNotPending
		}
		apps[i].Status = status
		if err := s.save(apps); err != nil {
			return model.LoanApplication{}, err
		}
		return apps[i], nil
	}
	return model.LoanApplication{}, ErrNotFound
}

func (s *Service) path() string {
	return filepath.Join(s.dataDir, applicationsFile)
}

func (s *Service) load() ([]model.LoanApplication, error) {
	data, err := os.ReadFile(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading loan applications: %w", err)
	}
	var apps []model.LoanApplication
	if err := json.Unmarshal(data, &apps); err != nil {
		return nil, fmt.Errorf("parsing loan applications: %w", err)
	}
	return apps, nil
}

func (s *Service) save(apps []model.LoanApplication) error {
	data, err := json.MarshalIndent(apps, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling loan applications: %w", err)
	}
	if err := os.WriteFile(s.path(), data, 0o644); err != nil {
		return fmt.Errorf("writing loan applications: %w", err)
	}
	return nil
}
