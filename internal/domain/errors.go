package domain

import "errors"

// Typed failure values returned by the ledger services. Handlers map them to
// HTTP status codes; none are retried internally.
var (
	// Not found.
	ErrProjectNotFound    = errors.New("Project not found")
	ErrBatchNotFound      = errors.New("Batch not found")
	ErrRetirementNotFound = errors.New("Retirement record not found")
	ErrVerifierNotFound   = errors.New("Verifier not found")
	ErrAccountNotFound    = errors.New("Account not found")

	// Unauthorized.
	ErrNotAdmin              = errors.New("Caller is not an admin")
	ErrNotOwner              = errors.New("Caller is not the project owner")
	ErrNotAuthorizedVerifier = errors.New("Caller is not an active verifier")
	ErrSelfAuthorization     = errors.New("Verifier cannot be authorized by itself")

	// Invalid input.
	ErrEmptyField       = errors.New("Required field is empty")
	ErrInvalidCategory  = errors.New("Unsupported project category")
	ErrInvalidDateRange = errors.New("Project start must be before end")
	ErrInvalidPeriod    = errors.New("Verification period start must not be after end")
	ErrZeroCredits      = errors.New("Credits issued must be positive")
	ErrInvalidQuantity  = errors.New("Quantity must be positive")
	ErrInvalidPrice     = errors.New("Unit price must be positive")
	ErrInvalidVintage   = errors.New("Vintage year is below the accepted floor")
	ErrEmptyReason      = errors.New("Retirement reason is required")
	ErrEmptyURL         = errors.New("URL is required")
	ErrSelfBeneficiary  = errors.New("Beneficiary must differ from the retiring account")

	// State conflict.
	ErrProjectNotPending     = errors.New("Project is not pending verification")
	ErrProjectNotVerified    = errors.New("Project is not verified")
	ErrProjectInactive       = errors.New("Project is not active")
	ErrBatchNotAvailable     = errors.New("Batch is not available for purchase")
	ErrInsufficientCredits   = errors.New("Insufficient available credits")
	ErrInsufficientRemaining = errors.New("Insufficient credits remaining in batch")
	ErrNoHolding             = errors.New("No holding for this project and vintage")
	ErrInsufficientBalance   = errors.New("Insufficient credit balance")
	ErrCertificateAlreadySet = errors.New("Certificate already issued")

	// Payment.
	ErrPaymentFailed     = errors.New("Payment failed")
	ErrInsufficientFunds = errors.New("Insufficient funds")
)
