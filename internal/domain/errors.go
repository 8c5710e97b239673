package domain

import (
	"errors"
	"fmt"
)

// Error categories. Every ledger failure wraps exactly one of these so callers can
// classify it with errors.Is.
var (
	// ErrPreconditionViolation is returned when an instruction's inputs or the current state forbid it
	ErrPreconditionViolation = errors.New("precondition violation")

	// ErrAuthorizationFailure is returned when the caller does not match the required owner or authority
	ErrAuthorizationFailure = errors.New("authorization failure")

	// ErrInsufficientInventory is returned when a purchase asks for more units than remain
	ErrInsufficientInventory = errors.New("insufficient inventory")

	// ErrInsufficientFunds is returned when a balance cannot cover the requested movement
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrArithmeticOverflow is returned when an amount computation exceeds 64 bits
	ErrArithmeticOverflow = errors.New("arithmetic overflow")

	// ErrNotFound is returned when a referenced record does not exist
	ErrNotFound = errors.New("not found")
)

// Precondition violations
var (
	ErrPlatformAlreadyInitialized = fmt.Errorf("%w: platform already initialized", ErrPreconditionViolation)
	ErrFeeBpsOutOfRange           = fmt.Errorf("%w: fee_bps must be between 0 and %d", ErrPreconditionViolation, MaxFeeBps)
	ErrInvalidQuantity            = fmt.Errorf("%w: quantity must be at least 1", ErrPreconditionViolation)
	ErrInventoryTooLarge          = fmt.Errorf("%w: inventory must be at most %d", ErrPreconditionViolation, MaxUnitCount)
	ErrInvalidAmount              = fmt.Errorf("%w: amount must be greater than zero", ErrPreconditionViolation)
	ErrInvalidAddress             = fmt.Errorf("%w: invalid address", ErrPreconditionViolation)
	ErrInvalidContentHash         = fmt.Errorf("%w: content hash must be 32 bytes", ErrPreconditionViolation)
	ErrDesignerAlreadyRegistered  = fmt.Errorf("%w: designer already registered", ErrPreconditionViolation)
	ErrStaleHolding               = fmt.Errorf("%w: supplied holder balance or supply does not match the token ledger", ErrPreconditionViolation)
	ErrRevenueClaimTooHigh        = fmt.Errorf("%w: claimed revenue exceeds revenue deposited into escrow", ErrPreconditionViolation)
	ErrSelfTransfer               = fmt.Errorf("%w: sender and recipient are the same", ErrPreconditionViolation)
	ErrEmptyUpdate                = fmt.Errorf("%w: nothing to update", ErrPreconditionViolation)
	ErrInvalidDisplayName         = fmt.Errorf("%w: display name must be 1-%d characters", ErrPreconditionViolation, MaxDisplayNameLength)
	ErrBioURITooLong              = fmt.Errorf("%w: bio uri must be at most %d characters", ErrPreconditionViolation, MaxBioURILength)
)

// Authorization failures
var (
	ErrNotPlatformAuthority = fmt.Errorf("%w: caller is not the platform authority", ErrAuthorizationFailure)
	ErrNotDesignOwner       = fmt.Errorf("%w: caller does not own the design", ErrAuthorizationFailure)
	ErrNotRegisteredDesign  = fmt.Errorf("%w: caller is not a registered designer", ErrAuthorizationFailure)
	ErrMissingCaller        = fmt.Errorf("%w: caller identity is required", ErrAuthorizationFailure)
)

// Lookup failures
var (
	ErrPlatformNotInitialized = fmt.Errorf("%w: platform not initialized", ErrNotFound)
	ErrDesignerNotFound       = fmt.Errorf("%w: designer", ErrNotFound)
	ErrDesignNotFound         = fmt.Errorf("%w: design", ErrNotFound)
	ErrEscrowNotFound         = fmt.Errorf("%w: escrow account", ErrNotFound)
	ErrMintNotFound           = fmt.Errorf("%w: token mint", ErrNotFound)
)
