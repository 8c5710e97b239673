package dto

import (
	"fmt"
	"unicode/utf8"

	apierrors "github.com/RackSavant/sistachat-sub000/internal/api/shared/errors"
	"github.com/RackSavant/sistachat-sub000/internal/domain"
)

// InitializePlatformRequest represents the request body for initializing the platform.
// The authenticated caller becomes the platform authority.
type InitializePlatformRequest struct {
	Treasury string  `json:"treasury"`
	FeeBps   *uint16 `json:"fee_bps"`
}

// Validate validates the request body
func (r *InitializePlatformRequest) Validate() error {
	// Validate: treasury must be a valid address
	if _, err := domain.ParseAddress(r.Treasury); err != nil {
		return apierrors.NewValidationError(fmt.Sprintf("invalid treasury: %s", r.Treasury))
	}

	// Validate: fee must be provided and at most 100%
	if r.FeeBps == nil {
		return apierrors.NewValidationError("fee_bps is required")
	}
	if *r.FeeBps > domain.MaxFeeBps {
		return apierrors.NewValidationError(fmt.Sprintf("fee_bps must be between 0 and %d", domain.MaxFeeBps))
	}

	return nil
}

// UpdatePlatformRequest represents the request body for changing the fee or the treasury
type UpdatePlatformRequest struct {
	FeeBps   *uint16 `json:"fee_bps,omitempty"`
	Treasury *string `json:"treasury,omitempty"`
}

// Validate validates the request body
func (r *UpdatePlatformRequest) Validate() error {
	if r.FeeBps == nil && r.Treasury == nil {
		return apierrors.NewValidationError("at least one of fee_bps or treasury is required")
	}
	if r.FeeBps != nil && *r.FeeBps > domain.MaxFeeBps {
		return apierrors.NewValidationError(fmt.Sprintf("fee_bps must be between 0 and %d", domain.MaxFeeBps))
	}
	if r.Treasury != nil {
		if _, err := domain.ParseAddress(*r.Treasury); err != nil {
			return apierrors.NewValidationError(fmt.Sprintf("invalid treasury: %s", *r.Treasury))
		}
	}
	return nil
}

// WithdrawFeeRequest represents the request body for withdrawing fees from the treasury
type WithdrawFeeRequest struct {
	Destination string        `json:"destination"`
	Amount      domain.Amount `json:"amount"`
}

// Validate validates the request body
func (r *WithdrawFeeRequest) Validate() error {
	if _, err := domain.ParseAddress(r.Destination); err != nil {
		return apierrors.NewValidationError(fmt.Sprintf("invalid destination: %s", r.Destination))
	}
	if r.Amount.IsZero() {
		return apierrors.NewValidationError("amount must be greater than zero")
	}
	return nil
}

// FundAccountRequest represents the request body for crediting a settlement account
type FundAccountRequest struct {
	Amount domain.Amount `json:"amount"`
}

// Validate validates the request body
func (r *FundAccountRequest) Validate() error {
	if r.Amount.IsZero() {
		return apierrors.NewValidationError("amount must be greater than zero")
	}
	return nil
}

// RegisterDesignerRequest represents the request body for registering the caller as a designer
type RegisterDesignerRequest struct {
	DisplayName string `json:"display_name"`
	BioURI      string `json:"bio_uri"`
}

// Validate validates the request body
func (r *RegisterDesignerRequest) Validate() error {
	// Validate: display name length in characters
	n := utf8.RuneCountInString(r.DisplayName)
	if n == 0 || n > domain.MaxDisplayNameLength {
		return apierrors.NewValidationError(fmt.Sprintf("display_name must be 1-%d characters", domain.MaxDisplayNameLength))
	}

	// Validate: bio uri length
	if utf8.RuneCountInString(r.BioURI) > domain.MaxBioURILength {
		return apierrors.NewValidationError(fmt.Sprintf("bio_uri must be at most %d characters", domain.MaxBioURILength))
	}

	return nil
}

// UploadDesignRequest represents the request body for listing a new design
type UploadDesignRequest struct {
	ContentHash  string        `json:"content_hash"`
	PricePerUnit domain.Amount `json:"price_per_unit"`
	Inventory    uint64        `json:"inventory"`
}

// Validate validates the request body
func (r *UploadDesignRequest) Validate() error {
	if r.ContentHash == "" {
		return apierrors.NewValidationError("content_hash is required")
	}
	if _, err := domain.ParseContentHash(r.ContentHash); err != nil {
		return apierrors.NewValidationError("content_hash must be a 0x-prefixed 32-byte hex string")
	}
	return nil
}

// UpdatePriceRequest represents the request body for repricing a design
type UpdatePriceRequest struct {
	PricePerUnit domain.Amount `json:"price_per_unit"`
}

// BuyRequest represents the request body for purchasing design units
type BuyRequest struct {
	Quantity uint64 `json:"quantity"`
}

// Validate validates the request body
func (r *BuyRequest) Validate() error {
	if r.Quantity == 0 {
		return apierrors.NewValidationError("quantity must be at least 1")
	}
	return nil
}

// DistributeRequest represents the request body for paying a holder from a design's escrow.
// Omitted amounts are read from the ledger.
type DistributeRequest struct {
	Holder              string        `json:"holder"`
	ClaimedTotalRevenue domain.Amount `json:"claimed_total_revenue,omitempty"`
	HolderBalance       domain.Amount `json:"holder_balance,omitempty"`
	TotalSupply         domain.Amount `json:"total_supply,omitempty"`
}

// Validate validates the request body
func (r *DistributeRequest) Validate() error {
	if _, err := domain.ParseAddress(r.Holder); err != nil {
		return apierrors.NewValidationError(fmt.Sprintf("invalid holder: %s", r.Holder))
	}
	return nil
}

// TransferSharesRequest represents the request body for sending designer token units
type TransferSharesRequest struct {
	To     string        `json:"to"`
	Amount domain.Amount `json:"amount"`
}

// Validate validates the request body
func (r *TransferSharesRequest) Validate() error {
	if _, err := domain.ParseAddress(r.To); err != nil {
		return apierrors.NewValidationError(fmt.Sprintf("invalid recipient: %s", r.To))
	}
	if r.Amount.IsZero() {
		return apierrors.NewValidationError("amount must be greater than zero")
	}
	return nil
}
