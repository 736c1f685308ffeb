package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrRunIDIsNotConstructed indicates a zero-value RunID.
var ErrRunIDIsNotConstructed = errs.NewValueIsRequiredError("run ID must be created via NewRunID or RunIDFromString")

// RunID identifies one triage run. It wraps github.com/google/uuid and is immutable.
//
// Example usage:
//
//	id := kernel.NewRunID()
//	logger.Info("run started", "run_id", id.String())
type RunID struct {
	id uuid.UUID
}

// NewRunID generates a new random (version 4) RunID.
func NewRunID() RunID {
	return RunID{id: uuid.New()}
}

// RunIDFromString parses a RunID from its canonical string form, for example
// when an operator asks the status server for a specific run.
func RunIDFromString(s string) (RunID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return RunID{}, fmt.Errorf("invalid run ID format: %w", err)
	}

	runID := RunID{id: id}
	if err = runID.Validate(); err != nil {
		return RunID{}, err
	}
	return runID, nil
}

// String returns the canonical uuid form.
func (r RunID) String() string {
	return r.id.String()
}

// IsEqual compares two run IDs.
func (r RunID) IsEqual(other RunID) bool {
	return r.id == other.id
}

// MarshalText lets RunID appear as a plain string in JSON reports.
func (r RunID) MarshalText() ([]byte, error) {
	return []byte(r.id.String()), nil
}

// UnmarshalText parses a canonical uuid into r.
func (r *RunID) UnmarshalText(text []byte) error {
	id, err := RunIDFromString(string(text))
	if err != nil {
		return err
	}
	*r = id
	return nil
}

// Validate returns ErrRunIDIsNotConstructed for the nil UUID.
func (r RunID) Validate() error {
	if r.id == uuid.Nil {
		return ErrRunIDIsNotConstructed
	}
	return nil
}
