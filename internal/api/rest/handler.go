package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RackSavant/sistachat-sub000/internal/api/middleware"
	"github.com/RackSavant/sistachat-sub000/internal/api/shared/constants"
	"github.com/RackSavant/sistachat-sub000/internal/api/shared/dto"
	"github.com/RackSavant/sistachat-sub000/internal/api/shared/executor"
	"github.com/RackSavant/sistachat-sub000/internal/domain"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// InitializePlatform creates the platform ledger with the caller as authority
	// POST /api/v1/platform
	InitializePlatform(c *gin.Context)

	// GetPlatform retrieves the platform ledger
	// GET /api/v1/platform
	GetPlatform(c *gin.Context)

	// UpdatePlatform changes the fee rate or the treasury (authority only)
	// PATCH /api/v1/platform
	UpdatePlatform(c *gin.Context)

	// WithdrawFee moves collected fees out of the treasury (authority only)
	// POST /api/v1/platform/withdrawals
	WithdrawFee(c *gin.Context)

	// FundAccount credits a settlement account (authority only)
	// POST /api/v1/accounts/:address/deposits
	FundAccount(c *gin.Context)

	// GetAccount retrieves a settlement account balance
	// GET /api/v1/accounts/:address
	GetAccount(c *gin.Context)

	// RegisterDesigner registers the caller as a designer
	// POST /api/v1/designers
	RegisterDesigner(c *gin.Context)

	// GetDesigner retrieves a designer profile by wallet
	// GET /api/v1/designers/:owner
	GetDesigner(c *gin.Context)

	// ListDesigns retrieves a designer's designs
	// GET /api/v1/designers/:owner/designs?limit=<limit>&offset=<offset>
	ListDesigns(c *gin.Context)

	// UploadDesign lists a new design owned by the caller
	// POST /api/v1/designs
	UploadDesign(c *gin.Context)

	// GetDesign retrieves a design with its escrow
	// GET /api/v1/designs/:address
	GetDesign(c *gin.Context)

	// UpdatePrice reprices a design (design owner only)
	// PATCH /api/v1/designs/:address/price
	UpdatePrice(c *gin.Context)

	// Buy purchases design units for the caller
	// POST /api/v1/designs/:address/purchases
	Buy(c *gin.Context)

	// GetEscrow retrieves a design's escrow
	// GET /api/v1/designs/:address/escrow
	GetEscrow(c *gin.Context)

	// DistributeToHolder pays a holder from a design's escrow; anyone may trigger it
	// POST /api/v1/designs/:address/distributions
	DistributeToHolder(c *gin.Context)

	// TransferShares sends designer token units from the caller
	// POST /api/v1/mints/:address/transfers
	TransferShares(c *gin.Context)

	// ListHoldings retrieves the holders of a designer token
	// GET /api/v1/mints/:address/holdings?limit=<limit>&offset=<offset>
	ListHoldings(c *gin.Context)

	// GetHolding retrieves one holder's balance
	// GET /api/v1/mints/:address/holdings/:holder
	GetHolding(c *gin.Context)

	// GetJournal retrieves journal entries in cursor order
	// GET /api/v1/journal?subject=<address1>,<address2>&instruction=<name>&anchor=<cursor>&limit=<limit>
	GetJournal(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// validator is implemented by request bodies that validate themselves
type validator interface {
	Validate() error
}

// bindJSON decodes and validates a request body, responding on failure
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return false
	}
	if v, ok := req.(validator); ok {
		if err := v.Validate(); err != nil {
			respondError(c, err, "Invalid request body")
			return false
		}
	}
	return true
}

// caller returns the authenticated wallet, responding 401 when there is none
func caller(c *gin.Context) (domain.Address, bool) {
	addr, ok := middleware.CallerFromContext(c)
	if !ok {
		respondUnauthorized(c, "Caller identity required")
		return "", false
	}
	return addr, true
}

// InitializePlatform creates the platform ledger with the caller as authority
func (h *handler) InitializePlatform(c *gin.Context) {
	authority, ok := caller(c)
	if !ok {
		return
	}

	var req dto.InitializePlatformRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := h.executor.InitializePlatform(c.Request.Context(), authority, &req)
	if err != nil {
		respondError(c, err, "Failed to initialize platform")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetPlatform retrieves the platform ledger
func (h *handler) GetPlatform(c *gin.Context) {
	response, err := h.executor.GetPlatform(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get platform")
		return
	}

	if response == nil {
		respondNotFound(c, "Platform not initialized")
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdatePlatform changes the fee rate or the treasury
func (h *handler) UpdatePlatform(c *gin.Context) {
	authority, ok := caller(c)
	if !ok {
		return
	}

	var req dto.UpdatePlatformRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := h.executor.UpdatePlatform(c.Request.Context(), authority, &req)
	if err != nil {
		respondError(c, err, "Failed to update platform")
		return
	}

	c.JSON(http.StatusOK, response)
}

// WithdrawFee moves collected fees out of the treasury
func (h *handler) WithdrawFee(c *gin.Context) {
	authority, ok := caller(c)
	if !ok {
		return
	}

	var req dto.WithdrawFeeRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := h.executor.WithdrawFee(c.Request.Context(), authority, &req)
	if err != nil {
		respondError(c, err, "Failed to withdraw fee")
		return
	}

	c.JSON(http.StatusOK, response)
}

// FundAccount credits a settlement account
func (h *handler) FundAccount(c *gin.Context) {
	authority, ok := caller(c)
	if !ok {
		return
	}

	var req dto.FundAccountRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := h.executor.FundAccount(c.Request.Context(), authority, c.Param("address"), &req)
	if err != nil {
		respondError(c, err, "Failed to fund account")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetAccount retrieves a settlement account balance
func (h *handler) GetAccount(c *gin.Context) {
	response, err := h.executor.GetAccount(c.Request.Context(), c.Param("address"))
	if err != nil {
		respondError(c, err, "Failed to get account")
		return
	}

	c.JSON(http.StatusOK, response)
}

// RegisterDesigner registers the caller as a designer
func (h *handler) RegisterDesigner(c *gin.Context) {
	owner, ok := caller(c)
	if !ok {
		return
	}

	var req dto.RegisterDesignerRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := h.executor.RegisterDesigner(c.Request.Context(), owner, &req)
	if err != nil {
		respondError(c, err, "Failed to register designer")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetDesigner retrieves a designer profile by wallet
func (h *handler) GetDesigner(c *gin.Context) {
	response, err := h.executor.GetDesigner(c.Request.Context(), c.Param("owner"))
	if err != nil {
		respondError(c, err, "Failed to get designer")
		return
	}

	if response == nil {
		respondNotFound(c, "Designer not found")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListDesigns retrieves a designer's designs
func (h *handler) ListDesigns(c *gin.Context) {
	queryParams, err := ParsePageQuery(c, constants.DEFAULT_DESIGNS_LIMIT)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListDesigns(c.Request.Context(), c.Param("owner"), &queryParams.Limit, &queryParams.Offset)
	if err != nil {
		respondError(c, err, "Failed to list designs")
		return
	}

	c.JSON(http.StatusOK, response)
}

// UploadDesign lists a new design owned by the caller
func (h *handler) UploadDesign(c *gin.Context) {
	owner, ok := caller(c)
	if !ok {
		return
	}

	var req dto.UploadDesignRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := h.executor.UploadDesign(c.Request.Context(), owner, &req)
	if err != nil {
		respondError(c, err, "Failed to upload design")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetDesign retrieves a design with its escrow
func (h *handler) GetDesign(c *gin.Context) {
	response, err := h.executor.GetDesign(c.Request.Context(), c.Param("address"))
	if err != nil {
		respondError(c, err, "Failed to get design")
		return
	}

	if response == nil {
		respondNotFound(c, "Design not found")
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdatePrice reprices a design
func (h *handler) UpdatePrice(c *gin.Context) {
	owner, ok := caller(c)
	if !ok {
		return
	}

	var req dto.UpdatePriceRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := h.executor.UpdatePrice(c.Request.Context(), owner, c.Param("address"), &req)
	if err != nil {
		respondError(c, err, "Failed to update price")
		return
	}

	c.JSON(http.StatusOK, response)
}

// Buy purchases design units for the caller
func (h *handler) Buy(c *gin.Context) {
	buyer, ok := caller(c)
	if !ok {
		return
	}

	var req dto.BuyRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := h.executor.Buy(c.Request.Context(), buyer, c.Param("address"), &req)
	if err != nil {
		respondError(c, err, "Failed to buy design")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetEscrow retrieves a design's escrow
func (h *handler) GetEscrow(c *gin.Context) {
	response, err := h.executor.GetEscrow(c.Request.Context(), c.Param("address"))
	if err != nil {
		respondError(c, err, "Failed to get escrow")
		return
	}

	if response == nil {
		respondNotFound(c, "Escrow not found")
		return
	}

	c.JSON(http.StatusOK, response)
}

// DistributeToHolder pays a holder from a design's escrow.
// The caller is recorded when the request is authenticated but is not required.
func (h *handler) DistributeToHolder(c *gin.Context) {
	var req dto.DistributeRequest
	if !bindJSON(c, &req) {
		return
	}

	var actor *domain.Address
	if addr, ok := middleware.CallerFromContext(c); ok {
		actor = &addr
	}

	response, err := h.executor.DistributeToHolder(c.Request.Context(), actor, c.Param("address"), &req)
	if err != nil {
		respondError(c, err, "Failed to distribute")
		return
	}

	c.JSON(http.StatusOK, response)
}

// TransferShares sends designer token units from the caller
func (h *handler) TransferShares(c *gin.Context) {
	from, ok := caller(c)
	if !ok {
		return
	}

	var req dto.TransferSharesRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := h.executor.TransferShares(c.Request.Context(), from, c.Param("address"), &req)
	if err != nil {
		respondError(c, err, "Failed to transfer shares")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListHoldings retrieves the holders of a designer token
func (h *handler) ListHoldings(c *gin.Context) {
	queryParams, err := ParsePageQuery(c, constants.DEFAULT_HOLDINGS_LIMIT)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListHoldings(c.Request.Context(), c.Param("address"), &queryParams.Limit, &queryParams.Offset)
	if err != nil {
		respondError(c, err, "Failed to list holdings")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetHolding retrieves one holder's balance
func (h *handler) GetHolding(c *gin.Context) {
	response, err := h.executor.GetHolding(c.Request.Context(), c.Param("address"), c.Param("holder"))
	if err != nil {
		respondError(c, err, "Failed to get holding")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetJournal retrieves journal entries in cursor order
func (h *handler) GetJournal(c *gin.Context) {
	// Parse query parameters
	queryParams, err := ParseGetJournalQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	// Validate query parameters
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetJournal(
		c.Request.Context(),
		queryParams.Subjects,
		queryParams.Instructions,
		queryParams.Anchor,
		&queryParams.Limit,
	)
	if err != nil {
		respondError(c, err, "Failed to get journal")
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "designer-ledger-api",
	})
}
