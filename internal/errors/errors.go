package errors

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// UnresolvedPatternError is returned when a post's service role carries no
// usable shift pattern. Fatal to generation for that post; batch runs skip
// the post and report it.
type UnresolvedPatternError struct {
	PostID uuid.UUID
}

func (e *UnresolvedPatternError) Error() string {
	return fmt.Sprintf("post %s has no resolvable shift pattern", e.PostID)
}

// Is enables errors.Is() comparison regardless of the post id
func (e *UnresolvedPatternError) Is(target error) bool {
	_, ok := target.(*UnresolvedPatternError)
	return ok
}

// Entity Not Found Errors
var (
	ErrClientNotFound          = &NotFoundError{Entity: "client"}
	ErrInstallationNotFound    = &NotFoundError{Entity: "installation"}
	ErrServiceRoleNotFound     = &NotFoundError{Entity: "service role"}
	ErrGuardNotFound           = &NotFoundError{Entity: "guard"}
	ErrOperationalPostNotFound = &NotFoundError{Entity: "operational post"}
	ErrEntryNotFound           = &NotFoundError{Entity: "schedule entry"}
	ErrPendingCoverageNotFound = &NotFoundError{Entity: "pending coverage"}
	ErrAssignmentNotFound      = &NotFoundError{Entity: "assignment"}
)

// Already Exists Errors
var (
	ErrClientExists      = &AlreadyExistsError{Entity: "client", Context: "with this name"}
	ErrServiceRoleExists = &AlreadyExistsError{Entity: "service role", Context: "with this name"}
)

// Scheduling Errors
var (
	// ErrUnresolvedPattern matches any UnresolvedPatternError via errors.Is.
	ErrUnresolvedPattern = &UnresolvedPatternError{}

	// ErrNoScheduleForDate is returned when an action references a
	// (post, date) cell that was never generated. The cell is reported,
	// never silently created.
	ErrNoScheduleForDate = errors.New("no schedule entry exists for this post and date")

	// ErrDuplicateBind signals an optimistic-concurrency conflict: the
	// pending coverage was no longer in state pending at bind time.
	// Retry-safe; the caller should re-fetch or treat it as handled.
	ErrDuplicateBind = errors.New("pending coverage was already bound by a concurrent run")

	// ErrNoEligibleCandidate is a reportable outcome, not a failure: the
	// pending coverage stays pending and requires manual assignment.
	ErrNoEligibleCandidate = errors.New("no eligible candidate for pending coverage")

	ErrGuardAlreadyAssigned = errors.New("guard already holds an active assignment")
	ErrCoverageTerminal     = errors.New("pending coverage is in a terminal state")
	ErrAssignmentNotActive  = errors.New("assignment is not active")
	ErrInvalidMonth         = errors.New("month must be between 1 and 12")
	ErrInvalidOutcome       = errors.New("invalid attendance outcome")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsUnresolvedPattern checks if an error is an UnresolvedPatternError
func IsUnresolvedPattern(err error) bool {
	var patternErr *UnresolvedPatternError
	return errors.As(err, &patternErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewUnresolvedPatternError creates an UnresolvedPatternError for a post
func NewUnresolvedPatternError(postID uuid.UUID) error {
	return &UnresolvedPatternError{PostID: postID}
}
