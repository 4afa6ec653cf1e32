package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workwealth/workwealth/internal/config"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()
	err := Init(dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git directory should exist")
}

func TestIsRepo(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsRepo(dir), "empty dir should not be a repo")

	require.NoError(t, Init(dir))
	assert.True(t, IsRepo(dir), "initialized dir should be a repo")
}

func TestCommitAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	// Create a file to commit.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.yaml"), []byte("auth_token: x\n"), 0o644))

	hash, err := CommitAll(dir, "wallet: record deposit", "WorkWealth", "wallet@workwealth.app")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Verify commit message.
	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "wallet: record deposit")

	// Verify author.
	authorLog := exec.Command("git", "log", "--format=%an <%ae>", "-1")
	authorLog.Dir = dir
	out, err = authorLog.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "WorkWealth <wallet@workwealth.app>")
}

func TestAutoCommit_DisabledIsNoOp(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	hash, err := AutoCommit(dir, config.GitConfig{AutoCommit: false}, "wallet: noop")
	require.NoError(t, err)
	assert.Empty(t, hash)
}

func TestAutoCommit_NonRepoIsNoOp(t *testing.T) {
	hash, err := AutoCommit(t.TempDir(), config.GitConfig{AutoCommit: true}, "wallet: noop")
	require.NoError(t, err)
	assert.Empty(t, hash)
}

func TestAutoCommit_Enabled(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wallet.db"), []byte("x"), 0o644))

	git := config.GitConfig{AutoCommit: true, AuthorName: "WorkWealth", AuthorEmail: "wallet@workwealth.app"}
	hash, err := AutoCommit(dir, git, "wallet: record transfer")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
}
