// Package errors defines the typed error kinds the engine propagates, per
// the failure taxonomy in the specification: validation errors and
// no-valid-target/cannot-apply results are routed back to the player as a
// status line, not-found and state-invariant violations are fatal and must
// terminate the host's game loop.
package errors

import "fmt"

// Fatal is implemented by error kinds the host must treat as unrecoverable:
// the core has detected it cannot continue without risking corrupted state.
type Fatal interface {
	error
	Fatal() bool
}

// ValidationError represents an illegal player action or an out-of-range
// selection. The action is ignored and state is left unchanged.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Reason)
}

// NoValidTargetsError means a resolver found zero candidates for a required
// target. The effect that requested the target is skipped; this is not
// surfaced to players as an error.
type NoValidTargetsError struct {
	EffectType string
}

func (e *NoValidTargetsError) Error() string {
	return fmt.Sprintf("no valid targets for effect %q", e.EffectType)
}

// CannotApplyError means a handler's can_apply precondition failed. The
// effect is skipped, same as NoValidTargetsError.
type CannotApplyError struct {
	EffectType string
	Reason     string
}

func (e *CannotApplyError) Error() string {
	return fmt.Sprintf("cannot apply effect %q: %s", e.EffectType, e.Reason)
}

// NotFoundError represents an unknown template id in the card repository.
// Treated as a programming error in card data: fatal to the host.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %q not found", e.Resource, e.ID)
}

func (e *NotFoundError) Fatal() bool { return true }

// StateInvariantViolationError marks state the core must never produce:
// duplicate instance ids, a selection response with no pending slot to
// match, and similar. Fatal; the host must terminate the game.
type StateInvariantViolationError struct {
	Invariant string
}

func (e *StateInvariantViolationError) Error() string {
	return fmt.Sprintf("state invariant violated: %s", e.Invariant)
}

func (e *StateInvariantViolationError) Fatal() bool { return true }

// PendingSelectionMismatchError means an arrived selection response does not
// satisfy the pending slot's criteria. Treated as a validation error: the
// response is rejected and the slot is left in place for a retry.
type PendingSelectionMismatchError struct {
	Reason string
}

func (e *PendingSelectionMismatchError) Error() string {
	return fmt.Sprintf("pending selection mismatch: %s", e.Reason)
}
