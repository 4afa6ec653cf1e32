package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/workwealth/workwealth/internal/activitylog"
	"github.com/workwealth/workwealth/internal/billers"
	"github.com/workwealth/workwealth/internal/config"
	"github.com/workwealth/workwealth/internal/gitops"
	"github.com/workwealth/workwealth/internal/ledger"
	"github.com/workwealth/workwealth/internal/loans"
	"github.com/workwealth/workwealth/internal/money"
	"github.com/workwealth/workwealth/internal/notify"
	"github.com/workwealth/workwealth/internal/session"
	"github.com/workwealth/workwealth/internal/storage"
)

// envDataDir overrides the wallet data dir location.
const envDataDir = "WORKWEALTH_DATA_DIR"

// ErrNotInitialized is returned when a command runs before `workwealth init`.
var ErrNotInitialized = errors.New("wallet not initialized, run `workwealth init` first")

// ErrNotLoggedIn is returned when a command requires an authenticated session.
var ErrNotLoggedIn = errors.New("not logged in, run `workwealth login` first")

// App wires the services a command needs over one wallet data dir.
type App struct {
	DataDir       string
	Config        *config.Config
	Sessions      *session.Store
	Ledger        *ledger.Service
	Notifications *notify.Center
	Loans         *loans.Service
	Billers       *billers.Registry
	Fmt           *money.Formatter
}

// defaultDataDir resolves the wallet data dir: flag value, then env, then
// ~/.workwealth.
func defaultDataDir(flagValue string) (string, error) {
	if flagValue != "" {
		return filepath.Abs(flagValue)
	}
	if env := os.Getenv(envDataDir); env != "" {
		return filepath.Abs(env)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home dir: %w", err)
	}
	return filepath.Join(home, ".workwealth"), nil
}

// openApp loads the config and opens the wallet database under dataDir.
func openApp(dataDir string) (*App, error) {
	cfgPath := filepath.Join(dataDir, config.FileName)
	cfg, err := config.Load(cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotInitialized
	}
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(filepath.Join(dataDir, "wallet.db"))
	if err != nil {
		return nil, err
	}

	fmtr := money.NewFormatter(cfg.Wallet.Locale, cfg.Wallet.Currency)
	center := notify.NewCenter(db.NotificationStore(), notify.WithFormatter(fmtr))
	led := ledger.NewService(db.LedgerStore(), ledger.WithNotifier(center))

	return &App{
		DataDir:       dataDir,
		Config:        cfg,
		Sessions:      session.NewStore(dataDir),
		Ledger:        led,
		Notifications: center,
		Loans:         loans.NewService(dataDir, led, center),
		Billers:       billers.DefaultRegistry(),
		Fmt:           fmtr,
	}, nil
}

// requireAuth loads the session and fails unless a login token is present.
func (a *App) requireAuth() (*session.Session, error) {
	sess, err := a.Sessions.Load()
	if err != nil {
		return nil, err
	}
	if !sess.IsAuthenticated() {
		return nil, ErrNotLoggedIn
	}
	return sess, nil
}

// recordActivity appends one activity-log entry and auto-commits the data
// dir. Both are best-effort; a failure never rolls back the mutation it
// describes.
func (a *App) recordActivity(actor, action, details, reference string) {
	entry := activitylog.Entry{
		Timestamp: time.Now(),
		Actor:     actor,
		Action:    action,
		Details:   details,
		Reference: reference,
	}
	if err := activitylog.Append(a.DataDir, []activitylog.Entry{entry}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write activity log: %v\n", err)
	}
	if _, err := gitops.AutoCommit(a.DataDir, a.Config.Git, "wallet: "+action); err != nil {
		fmt.Fprintf(os.Stderr, "warning: auto-commit failed: %v\n", err)
	}
}
