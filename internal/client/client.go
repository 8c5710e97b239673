package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/RackSavant/sistachat-sub000/internal/adapter"
	"github.com/RackSavant/sistachat-sub000/internal/api/shared/dto"
	apierrors "github.com/RackSavant/sistachat-sub000/internal/api/shared/errors"
	"github.com/RackSavant/sistachat-sub000/internal/derive"
	"github.com/RackSavant/sistachat-sub000/internal/domain"
)

// Config holds the client configuration
type Config struct {
	// BaseURL is the ledger API root, e.g. https://ledger.example.com
	BaseURL string
	// ProgramID is the program id addresses are derived from; it must match the server's
	ProgramID string
	// Timeout bounds a single HTTP request
	Timeout time.Duration
	// RetryMaxElapsed bounds the retries of a read
	RetryMaxElapsed time.Duration
}

// Client is a stateless façade over the ledger API.
// Every address is derived locally so callers only deal with wallets and sequence indexes.
type Client struct {
	http    adapter.HTTPClient
	baseURL string
	deriver *derive.Deriver
	token   string
}

// New creates an anonymous client. Use WithToken to sign mutations.
func New(cfg Config, httpClient adapter.HTTPClient) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	programID := cfg.ProgramID
	if programID == "" {
		programID = derive.DefaultProgramID
	}
	deriver, err := derive.New(programID)
	if err != nil {
		return nil, err
	}

	if httpClient == nil {
		httpClient = adapter.NewHTTPClient(cfg.Timeout, cfg.RetryMaxElapsed)
	}

	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		deriver: deriver,
	}, nil
}

// WithToken returns a copy of the client that authenticates as the wallet in the JWT subject
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// Deriver returns the address deriver the client uses
func (c *Client) Deriver() *derive.Deriver {
	return c.deriver
}

// Error is a failed API call. It unwraps to the ledger error category of its code,
// so errors.Is(err, domain.ErrInsufficientFunds) works on the client side.
type Error struct {
	StatusCode int
	APIError   apierrors.APIError
	category   error
}

func (e *Error) Error() string {
	if e.APIError.Details != "" {
		return fmt.Sprintf("%s (%d): %s: %s", e.APIError.Code, e.StatusCode, e.APIError.Message, e.APIError.Details)
	}
	return fmt.Sprintf("%s (%d): %s", e.APIError.Code, e.StatusCode, e.APIError.Message)
}

func (e *Error) Unwrap() error {
	return e.category
}

// categoryOf maps an API error code back to the ledger error category
func categoryOf(code apierrors.ErrorCode) error {
	switch code {
	case apierrors.ErrCodeBadRequest, apierrors.ErrCodeValidationFailed:
		return domain.ErrPreconditionViolation
	case apierrors.ErrCodeUnauthorized, apierrors.ErrCodeForbidden:
		return domain.ErrAuthorizationFailure
	case apierrors.ErrCodeNotFound:
		return domain.ErrNotFound
	case apierrors.ErrCodeInsufficientInventory:
		return domain.ErrInsufficientInventory
	case apierrors.ErrCodeInsufficientFunds:
		return domain.ErrInsufficientFunds
	case apierrors.ErrCodeArithmeticOverflow:
		return domain.ErrArithmeticOverflow
	default:
		return nil
	}
}

// decodeError turns an HTTP status error into an *Error; other errors pass through
func decodeError(err error) error {
	var statusErr *adapter.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}

	var body struct {
		Error apierrors.APIError `json:"error"`
	}
	if jsonErr := json.Unmarshal(statusErr.Body, &body); jsonErr != nil || body.Error.Code == "" {
		body.Error = apierrors.APIError{
			Code:    apierrors.ErrCodeInternalError,
			Message: http.StatusText(statusErr.StatusCode),
			Details: string(statusErr.Body),
		}
	}

	return &Error{
		StatusCode: statusErr.StatusCode,
		APIError:   body.Error,
		category:   categoryOf(body.Error.Code),
	}
}

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + "/api/v1" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// get reads a resource; a 404 yields found=false without error
func (c *Client) get(ctx context.Context, path string, query url.Values, result interface{}) (bool, error) {
	if err := c.http.Get(ctx, c.url(path, query), result); err != nil {
		err = decodeError(err)
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// send submits a mutation once, signed by the client's token
func (c *Client) send(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var headers map[string]string
	if c.token != "" {
		headers = map[string]string{"Authorization": "Bearer " + c.token}
	}
	return decodeError(c.http.Do(ctx, method, c.url(path, nil), headers, body, result))
}

// InitializePlatform creates the platform ledger; the signing wallet becomes the authority
func (c *Client) InitializePlatform(ctx context.Context, treasury domain.Address, feeBps uint16) (*dto.PlatformResponse, error) {
	var resp dto.PlatformResponse
	req := dto.InitializePlatformRequest{Treasury: treasury.String(), FeeBps: &feeBps}
	if err := c.send(ctx, http.MethodPost, "/platform", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdatePlatform changes the fee rate or the treasury; nil fields are left unchanged
func (c *Client) UpdatePlatform(ctx context.Context, feeBps *uint16, treasury *domain.Address) (*dto.PlatformResponse, error) {
	req := dto.UpdatePlatformRequest{FeeBps: feeBps}
	if treasury != nil {
		t := treasury.String()
		req.Treasury = &t
	}

	var resp dto.PlatformResponse
	if err := c.send(ctx, http.MethodPatch, "/platform", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// WithdrawFee moves fees from the treasury to destination
func (c *Client) WithdrawFee(ctx context.Context, destination domain.Address, amount domain.Amount) (*dto.AccountResponse, error) {
	var resp dto.AccountResponse
	req := dto.WithdrawFeeRequest{Destination: destination.String(), Amount: amount}
	if err := c.send(ctx, http.MethodPost, "/platform/withdrawals", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Fund credits a settlement account
func (c *Client) Fund(ctx context.Context, account domain.Address, amount domain.Amount) (*dto.AccountResponse, error) {
	var resp dto.AccountResponse
	if err := c.send(ctx, http.MethodPost, "/accounts/"+account.String()+"/deposits", dto.FundAccountRequest{Amount: amount}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegisterDesigner registers the signing wallet as a designer
func (c *Client) RegisterDesigner(ctx context.Context, displayName, bioURI string) (*dto.DesignerRegistrationResponse, error) {
	var resp dto.DesignerRegistrationResponse
	req := dto.RegisterDesignerRequest{DisplayName: displayName, BioURI: bioURI}
	if err := c.send(ctx, http.MethodPost, "/designers", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UploadDesign lists a new design owned by the signing wallet
func (c *Client) UploadDesign(ctx context.Context, contentHash domain.ContentHash, price domain.Amount, inventory uint64) (*dto.DesignResponse, error) {
	var resp dto.DesignResponse
	req := dto.UploadDesignRequest{ContentHash: contentHash.Hex(), PricePerUnit: price, Inventory: inventory}
	if err := c.send(ctx, http.MethodPost, "/designs", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdatePrice reprices the owner's design at seq
func (c *Client) UpdatePrice(ctx context.Context, owner domain.Address, seq uint64, price domain.Amount) (*dto.DesignResponse, error) {
	design, err := c.deriver.Design(owner, seq)
	if err != nil {
		return nil, err
	}

	var resp dto.DesignResponse
	if err := c.send(ctx, http.MethodPatch, "/designs/"+design.String()+"/price", dto.UpdatePriceRequest{PricePerUnit: price}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Buy purchases quantity units of designOwner's design at seq for the signing wallet
func (c *Client) Buy(ctx context.Context, designOwner domain.Address, seq uint64, quantity uint64) (*dto.PurchaseResponse, error) {
	design, err := c.deriver.Design(designOwner, seq)
	if err != nil {
		return nil, err
	}

	var resp dto.PurchaseResponse
	if err := c.send(ctx, http.MethodPost, "/designs/"+design.String()+"/purchases", dto.BuyRequest{Quantity: quantity}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DistributeToHolder pays holder their share of designOwner's design at seq.
// The revenue and balance claims are read from the ledger right before submitting.
func (c *Client) DistributeToHolder(ctx context.Context, designOwner domain.Address, seq uint64, holder domain.Address) (*dto.DistributionResponse, error) {
	design, err := c.deriver.Design(designOwner, seq)
	if err != nil {
		return nil, err
	}

	escrow, err := c.GetEscrow(ctx, designOwner, seq)
	if err != nil {
		return nil, err
	}
	if escrow == nil {
		return nil, domain.ErrDesignNotFound
	}

	holding, err := c.GetHolding(ctx, designOwner, holder)
	if err != nil {
		return nil, err
	}

	req := dto.DistributeRequest{
		Holder:              holder.String(),
		ClaimedTotalRevenue: escrow.TotalDeposited.Raw,
		HolderBalance:       holding.Balance.Raw,
		TotalSupply:         domain.TokenTotalSupply,
	}

	var resp dto.DistributionResponse
	if err := c.send(ctx, http.MethodPost, "/designs/"+design.String()+"/distributions", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TransferShares sends amount units of designerOwner's token from the signing wallet to to
func (c *Client) TransferShares(ctx context.Context, designerOwner domain.Address, to domain.Address, amount domain.Amount) (*dto.TransferResponse, error) {
	mint, err := c.deriver.DesignerMint(designerOwner)
	if err != nil {
		return nil, err
	}

	var resp dto.TransferResponse
	req := dto.TransferSharesRequest{To: to.String(), Amount: amount}
	if err := c.send(ctx, http.MethodPost, "/mints/"+mint.String()+"/transfers", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPlatform retrieves the platform ledger, nil when not initialized
func (c *Client) GetPlatform(ctx context.Context) (*dto.PlatformResponse, error) {
	var resp dto.PlatformResponse
	found, err := c.get(ctx, "/platform", nil, &resp)
	if err != nil || !found {
		return nil, err
	}
	return &resp, nil
}

// GetAccount retrieves a settlement account balance
func (c *Client) GetAccount(ctx context.Context, account domain.Address) (*dto.AccountResponse, error) {
	var resp dto.AccountResponse
	if _, err := c.get(ctx, "/accounts/"+account.String(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetDesigner retrieves a designer profile, nil when the wallet is not registered
func (c *Client) GetDesigner(ctx context.Context, owner domain.Address) (*dto.DesignerResponse, error) {
	var resp dto.DesignerResponse
	found, err := c.get(ctx, "/designers/"+owner.String(), nil, &resp)
	if err != nil || !found {
		return nil, err
	}
	return &resp, nil
}

// ListDesigns retrieves a page of the owner's designs
func (c *Client) ListDesigns(ctx context.Context, owner domain.Address, limit int, offset uint64) (*dto.DesignListResponse, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	query.Set("offset", strconv.FormatUint(offset, 10))

	var resp dto.DesignListResponse
	if _, err := c.get(ctx, "/designers/"+owner.String()+"/designs", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetDesign retrieves the owner's design at seq, nil when it does not exist
func (c *Client) GetDesign(ctx context.Context, owner domain.Address, seq uint64) (*dto.DesignResponse, error) {
	design, err := c.deriver.Design(owner, seq)
	if err != nil {
		return nil, err
	}

	var resp dto.DesignResponse
	found, err := c.get(ctx, "/designs/"+design.String(), nil, &resp)
	if err != nil || !found {
		return nil, err
	}
	return &resp, nil
}

// GetEscrow retrieves the escrow of the owner's design at seq, nil when it does not exist
func (c *Client) GetEscrow(ctx context.Context, owner domain.Address, seq uint64) (*dto.EscrowResponse, error) {
	design, err := c.deriver.Design(owner, seq)
	if err != nil {
		return nil, err
	}

	var resp dto.EscrowResponse
	found, err := c.get(ctx, "/designs/"+design.String()+"/escrow", nil, &resp)
	if err != nil || !found {
		return nil, err
	}
	return &resp, nil
}

// GetHolding retrieves holder's balance of designerOwner's token
func (c *Client) GetHolding(ctx context.Context, designerOwner domain.Address, holder domain.Address) (*dto.HoldingResponse, error) {
	mint, err := c.deriver.DesignerMint(designerOwner)
	if err != nil {
		return nil, err
	}

	var resp dto.HoldingResponse
	if _, err := c.get(ctx, "/mints/"+mint.String()+"/holdings/"+holder.String(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListHoldings retrieves a page of the holders of designerOwner's token
func (c *Client) ListHoldings(ctx context.Context, designerOwner domain.Address, limit int, offset uint64) (*dto.HoldingListResponse, error) {
	mint, err := c.deriver.DesignerMint(designerOwner)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	query.Set("offset", strconv.FormatUint(offset, 10))

	var resp dto.HoldingListResponse
	if _, err := c.get(ctx, "/mints/"+mint.String()+"/holdings", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetJournal retrieves journal entries after anchor, optionally limited to subjects
func (c *Client) GetJournal(ctx context.Context, subjects []domain.Address, anchor *uint64, limit int) (*dto.JournalListResponse, error) {
	query := url.Values{}
	for _, s := range subjects {
		query.Add("subject", s.String())
	}
	if anchor != nil {
		query.Set("anchor", strconv.FormatUint(*anchor, 10))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var resp dto.JournalListResponse
	if _, err := c.get(ctx, "/journal", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
