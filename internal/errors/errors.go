package errors

import (
	"errors"
	"fmt"
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
	Context string // Additional context like "with this domain"
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

// TenantNotActiveError is returned by the gate when the tenant is unknown or
// not in the active lifecycle state.
type TenantNotActiveError struct {
	Status string
}

func (e *TenantNotActiveError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("tenant is not active (status: %s)", e.Status)
	}
	return "tenant is not active"
}

// Is matches any TenantNotActiveError regardless of the embedded status
func (e *TenantNotActiveError) Is(target error) bool {
	_, ok := target.(*TenantNotActiveError)
	return ok
}

// UnknownModuleError is returned when a module id is absent from the catalog
type UnknownModuleError struct {
	ModuleID string
}

func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("unknown module: %s", e.ModuleID)
}

func (e *UnknownModuleError) Is(target error) bool {
	_, ok := target.(*UnknownModuleError)
	return ok
}

// LicenseMissingError is returned when a module in the requested dependency
// closure has no valid enabled license. ModuleID names the first unsatisfied
// module in closure order.
type LicenseMissingError struct {
	ModuleID string
}

func (e *LicenseMissingError) Error() string {
	return fmt.Sprintf("no valid license for module: %s", e.ModuleID)
}

func (e *LicenseMissingError) Is(target error) bool {
	_, ok := target.(*LicenseMissingError)
	return ok
}

// QuotaExceededError is returned when an operation would push usage past a
// hard limit for the named resource kind.
type QuotaExceededError struct {
	Resource string
	Limit    int64
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded for resource %s (limit %d)", e.Resource, e.Limit)
}

func (e *QuotaExceededError) Is(target error) bool {
	_, ok := target.(*QuotaExceededError)
	return ok
}

// ConflictError represents an optimistic-concurrency version mismatch.
// Callers should retry the administrative operation.
type ConflictError struct {
	Entity string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("concurrent update conflict on %s, retry the operation", e.Entity)
}

func (e *ConflictError) Is(target error) bool {
	_, ok := target.(*ConflictError)
	return ok
}

// ProvisioningFailedError is returned when tenant creation could not be
// completed and the partial tenant was rolled back.
type ProvisioningFailedError struct {
	TenantName string
	Cause      error
}

func (e *ProvisioningFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provisioning of tenant %s failed: %v", e.TenantName, e.Cause)
	}
	return fmt.Sprintf("provisioning of tenant %s failed", e.TenantName)
}

func (e *ProvisioningFailedError) Unwrap() error {
	return e.Cause
}

func (e *ProvisioningFailedError) Is(target error) bool {
	_, ok := target.(*ProvisioningFailedError)
	return ok
}

// ConfigurationError represents configuration-related errors such as a
// cyclic module catalog. These indicate a deployment defect, never a normal
// access decision.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

func (e *ConfigurationError) Is(target error) bool {
	_, ok := target.(*ConfigurationError)
	return ok
}

// InvalidTransitionError is returned by lifecycle operations when the
// requested state change is not permitted from the current state.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid tenant state transition: %s -> %s", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	_, ok := target.(*InvalidTransitionError)
	return ok
}

// Entity Not Found Errors
var (
	ErrTenantNotFound  = &NotFoundError{Entity: "tenant"}
	ErrLicenseNotFound = &NotFoundError{Entity: "module license"}
)

// Already Exists Errors
var (
	ErrTenantExists = &AlreadyExistsError{Entity: "tenant", Context: "with this name or domain"}
)

// Gate and lifecycle errors
var (
	ErrTenantNotActive = &TenantNotActiveError{}
	ErrTenantArchived  = errors.New("tenant is archived")
	ErrConflict        = &ConflictError{Entity: "tenant"}
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

// IsTenantNotActive checks if an error is a TenantNotActiveError
func IsTenantNotActive(err error) bool {
	var notActiveErr *TenantNotActiveError
	return errors.As(err, &notActiveErr)
}

// IsUnknownModule checks if an error is an UnknownModuleError
func IsUnknownModule(err error) bool {
	var unknownErr *UnknownModuleError
	return errors.As(err, &unknownErr)
}

// IsLicenseMissing checks if an error is a LicenseMissingError
func IsLicenseMissing(err error) bool {
	var missingErr *LicenseMissingError
	return errors.As(err, &missingErr)
}

// IsQuotaExceeded checks if an error is a QuotaExceededError
func IsQuotaExceeded(err error) bool {
	var quotaErr *QuotaExceededError
	return errors.As(err, &quotaErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsProvisioningFailed checks if an error is a ProvisioningFailedError
func IsProvisioningFailed(err error) bool {
	var provErr *ProvisioningFailedError
	return errors.As(err, &provErr)
}

// IsInvalidTransition checks if an error is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var transErr *InvalidTransitionError
	return errors.As(err, &transErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewTenantNotActiveError creates a TenantNotActiveError carrying the
// tenant's current status for diagnosability
func NewTenantNotActiveError(status string) error {
	return &TenantNotActiveError{Status: status}
}

// NewUnknownModuleError creates an UnknownModuleError for the given module id
func NewUnknownModuleError(moduleID string) error {
	return &UnknownModuleError{ModuleID: moduleID}
}

// NewLicenseMissingError creates a LicenseMissingError naming the first
// unsatisfied module
func NewLicenseMissingError(moduleID string) error {
	return &LicenseMissingError{ModuleID: moduleID}
}

// NewQuotaExceededError creates a QuotaExceededError for a resource kind
func NewQuotaExceededError(resource string, limit int64) error {
	return &QuotaExceededError{Resource: resource, Limit: limit}
}

// NewConflictError creates a ConflictError for a custom entity
func NewConflictError(entity string) error {
	return &ConflictError{Entity: entity}
}

// NewProvisioningFailedError wraps the cause of a failed tenant creation
func NewProvisioningFailedError(tenantName string, cause error) error {
	return &ProvisioningFailedError{TenantName: tenantName, Cause: cause}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewInvalidTransitionError creates an InvalidTransitionError
func NewInvalidTransitionError(from, to string) error {
	return &InvalidTransitionError{From: from, To: to}
}
