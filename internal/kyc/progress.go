package kyc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// progressFile is the wizard progress file inside the wallet data dir.
const progressFile = "kyc-progress.yaml"

type snapshot struct {
	State      State   `yaml:"state"`
	IDDocument string  `yaml:"id_document,omitempty"`
	Details    Details `yaml:"details,omitempty"`
}

// Save writes the wizard's progress to the data dir so a later run can
// resume mid-flow.
func Save(dataDir string, w *Wizard) error {
	snap := snapshot{
		State:      w.state,
		IDDocument: w.idDocument,
		Details:    w.details,
	}
	data, err := yaml.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("marshaling wizard progress: %w", err)
	}
	path := filepath.Join(dataDir, progressFile)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing wizard progress: %w", err)
	}
	return nil
}

// Load restores wizard progress from the data dir. A missing file yields
// a fresh wizard.
func Load(dataDir string) (*Wizard, error) {
	path := filepath.Join(dataDir, progressFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewWizard(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading wizard progress: %w", err)
	}

	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing wizard progress: %w", err)
	}

	switch snap.State {
	case StateUploadID, StateVerificationDetails, StateReviewSubmit, StateSubmitted:
	default:
		return nil, fmt.Errorf("unknown wizard state %q", snap.State)
	}

	return &Wizard{
		state:      snap.State,
		idDocument: snap.IDDocument,
		details:    snap.Details,
	}, nil
}

// Discard removes saved wizard progress.
func Discard(dataDir string) error {
	err := os.Remove(filepath.Join(dataDir, progressFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing wizard progress: %w", err)
	}
	return nil
}
