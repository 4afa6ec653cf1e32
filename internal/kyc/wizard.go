package kyc

import (
	"errors"
	"fmt"
	"strings"
)

// State is one step of the verification wizard.
type State string

const (
	StateUploadID            State = "upload-id"
	StateVerificationDetails State = "verification-details"
	StateReviewSubmit        State = "review-submit"
	StateSubmitted           State = "submitted"
)

// ErrInvalidTransition is returned when an operation is not allowed from
// the wizard's current state.
var ErrInvalidTransition = errors.New("invalid wizard transition")

// Details are the identity details collected in the second step.
type Details struct {
	FullName    string `yaml:"full_name"`
	DateOfBirth string `yaml:"date_of_birth"` // "YYYY-MM-DD"
	IDNumber    string `yaml:"id_number"`
}

func (d Details) validate() error {
	if strings.TrimSpace(d.FullName) == "" {
		return fmt.Errorf("full name is required")
	}
	if strings.TrimSpace(d.DateOfBirth) == "" {
		return fmt.Errorf("date of birth is required")
	}
	if strings.TrimSpace(d.IDNumber) == "" {
		return fmt.Errorf("ID number is required")
	}
	return nil
}

// Wizard is the linear identity-verification flow:
// UploadID -> VerificationDetails -> ReviewSubmit -> Submitted.
// Back is allowed from the second and third steps; Submitted is terminal.
type Wizard struct {
	state      State
	idDocument string
	details    Details
}

// NewWizard creates a wizard at the first step.
func NewWizard() *Wizard {
	return &Wizard{state: StateUploadID}
}

// State returns the current step.
func (w *Wizard) State() State { return w.state }

// IDDocument returns the attached ID document path, if any.
func (w *Wizard) IDDocument() string { return w.idDocument }

// Details returns the collected identity details.
func (w *Wizard) Details() Details { return w.details }

// AttachID records the uploaded ID document and advances to the details
// step. Allowed only from the first step.
func (w *Wizard) AttachID(document string) error {
	if w.state != StateUploadID {
		return fmt.Errorf("%w: cannot attach ID in state %s", ErrInvalidTransition, w.state)
	}
	if strings.TrimSpace(document) == "" {
		return fmt.Errorf("ID document is required")
	}
	w.idDocument = document
	w.state = StateVerificationDetails
	return nil
}

// SetDetails records the identity details and advances to review.
// Allowed only from the details step.
func (w *Wizard) SetDetails(d Details) error {
	if w.state != StateVerificationDetails {
		return fmt.Errorf("%w: cannot set details in state %s", ErrInvalidTransition, w.state)
	}
	if err := d.validate(); err != nil {
		return err
	}
	w.details = d
	w.state = StateReviewSubmit
	return nil
}

// Back returns to the previous step. Allowed from the details and review
// steps only.
func (w *Wizard) Back() error {
	switch w.state {
	case StateVerificationDetails:
		w.state = StateUploadID
	case StateReviewSubmit:
		w.state = StateVerificationDetails
	default:
		return fmt.Errorf("%w: cannot go back from state %s", ErrInvalidTransition, w.state)
	}
	return nil
}

// Submit finalizes the wizard. Allowed only from the review step;
// Submitted is terminal.
func (w *Wizard) Submit() error {
	if w.state != StateReviewSubmit {
		return fmt.Errorf("%w: cannot submit in state %s", ErrInvalidTransition, w.state)
	}
	w.state = StateSubmitted
	return nil
}
