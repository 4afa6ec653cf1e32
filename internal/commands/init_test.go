package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workwealth/workwealth/internal/config"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "workwealth-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "workwealth")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/workwealth")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runWallet(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	full := append([]string{"--data-dir", dir}, args...)
	cmd := exec.Command(binaryPath, full...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// initWallet creates a wallet with the simulated delay zeroed so tests
// run fast.
func initWallet(t *testing.T, dir, name, openingBalance string) {
	t.Helper()
	_, err := runWallet(t, dir, "init", "--name", name, "--opening-balance", openingBalance)
	require.NoError(t, err)

	cfgPath := filepath.Join(dir, config.FileName)
	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	cfg.Wallet.SimulatedDelayMS = 0
	require.NoError(t, config.Save(cfgPath, cfg))
}

func TestInit_CreatesWallet(t *testing.T) {
	dir := t.TempDir()
	out, err := runWallet(t, dir, "init", "--name", "Amina Yusuf", "--opening-balance", "125,000")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Initialized WorkWealth wallet for Amina Yusuf")

	data, err := os.ReadFile(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Amina Yusuf")

	_, err = os.Stat(filepath.Join(dir, "wallet.db"))
	require.NoError(t, err, "wallet database should exist")
}

func TestInit_Twice(t *testing.T) {
	dir := t.TempDir()
	_, err := runWallet(t, dir, "init", "--name", "Amina")
	require.NoError(t, err)

	out, err := runWallet(t, dir, "init", "--name", "Amina")
	require.Error(t, err)
	assert.Contains(t, out, "already initialized")
}

func TestInit_NegativeOpeningBalance(t *testing.T) {
	dir := t.TempDir()
	out, err := runWallet(t, dir, "init", "--name", "Amina", "--opening-balance", "-100")
	require.Error(t, err)
	assert.Contains(t, out, "cannot be negative")
}

func TestCommands_RequireInit(t *testing.T) {
	dir := t.TempDir()
	out, err := runWallet(t, dir, "dashboard")
	require.Error(t, err)
	assert.Contains(t, out, "not initialized")
}

func TestCommands_RequireLogin(t *testing.T) {
	dir := t.TempDir()
	initWallet(t, dir, "Amina", "1000")

	out, err := runWallet(t, dir, "deposit", "--amount", "500")
	require.Error(t, err)
	assert.Contains(t, out, "not logged in")
}
