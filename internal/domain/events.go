package domain

import (
	"encoding/json"
	"time"
)

// Instruction names the ledger operation that produced a journal entry
type Instruction string

const (
	InstructionInitializePlatform Instruction = "initialize_platform"
	InstructionUpdatePlatform     Instruction = "update_platform"
	InstructionFundAccount        Instruction = "fund_account"
	InstructionWithdrawFee        Instruction = "withdraw_fee"
	InstructionRegisterDesigner   Instruction = "register_designer"
	InstructionTransferShares     Instruction = "transfer_shares"
	InstructionUploadDesign       Instruction = "upload_design"
	InstructionUpdatePrice        Instruction = "update_price"
	InstructionBuy                Instruction = "buy"
	InstructionDistributeToHolder Instruction = "distribute_to_holder"
)

// IsValidInstruction checks if an instruction is known
func IsValidInstruction(i Instruction) bool {
	switch i {
	case InstructionInitializePlatform, InstructionUpdatePlatform, InstructionFundAccount,
		InstructionWithdrawFee, InstructionRegisterDesigner, InstructionTransferShares,
		InstructionUploadDesign, InstructionUpdatePrice, InstructionBuy, InstructionDistributeToHolder:
		return true
	}
	return false
}

// LedgerEvent is a committed journal entry in the form published to NATS
type LedgerEvent struct {
	EventID     string          `json:"event_id"`    // ULID, also used as the broker dedup id
	Cursor      uint64          `json:"cursor"`      // position in the journal
	Instruction Instruction     `json:"instruction"` // e.g. "buy"
	Subject     Address         `json:"subject"`     // primary account touched (design, platform, mint...)
	Actor       *Address        `json:"actor"`       // caller, nil for unauthenticated instructions
	Meta        json.RawMessage `json:"meta"`        // instruction specific payload
	CreatedAt   time.Time       `json:"created_at"`  // insert time
}

// PlatformInitialized is the journal payload of initialize_platform
type PlatformInitialized struct {
	Authority Address `json:"authority"`
	Treasury  Address `json:"treasury"`
	FeeBps    uint16  `json:"fee_bps"`
}

// PlatformUpdated is the journal payload of update_platform
type PlatformUpdated struct {
	FeeBps   uint16  `json:"fee_bps"`
	Treasury Address `json:"treasury"`
}

// AccountFunded is the journal payload of fund_account
type AccountFunded struct {
	Account Address `json:"account"`
	Amount  Amount  `json:"amount"`
	Balance Amount  `json:"balance"`
}

// FeeWithdrawn is the journal payload of withdraw_fee
type FeeWithdrawn struct {
	Treasury    Address `json:"treasury"`
	Destination Address `json:"destination"`
	Amount      Amount  `json:"amount"`
}

// DesignerRegistered is the journal payload of register_designer
type DesignerRegistered struct {
	Owner          Address `json:"owner"`
	Mint           Address `json:"mint"`
	Pool           Address `json:"pool"`
	DesignerAmount Amount  `json:"designer_amount"`
	PoolAmount     Amount  `json:"pool_amount"`
}

// SharesTransferred is the journal payload of transfer_shares
type SharesTransferred struct {
	Mint      Address `json:"mint"`
	From      Address `json:"from"`
	To        Address `json:"to"`
	Amount    Amount  `json:"amount"`
	DebtMoved Amount  `json:"debt_moved"`
}

// DesignUploaded is the journal payload of upload_design
type DesignUploaded struct {
	Owner         Address     `json:"owner"`
	SequenceIndex uint64      `json:"sequence_index"`
	ContentHash   ContentHash `json:"content_hash"`
	PricePerUnit  Amount      `json:"price_per_unit"`
	Inventory     uint64      `json:"inventory"`
	Escrow        Address     `json:"escrow"`
}

// PriceUpdated is the journal payload of update_price
type PriceUpdated struct {
	OldPrice Amount `json:"old_price"`
	NewPrice Amount `json:"new_price"`
}

// PurchaseEvent is the journal payload of buy. FeeAmount + NetAmount == Quantity * UnitPrice.
type PurchaseEvent struct {
	Buyer     Address `json:"buyer"`
	Quantity  uint64  `json:"quantity"`
	UnitPrice Amount  `json:"unit_price"`
	FeeAmount Amount  `json:"fee_amount"`
	NetAmount Amount  `json:"net_amount"`
}

// DistributionPaid is the journal payload of distribute_to_holder
type DistributionPaid struct {
	Holder        Address `json:"holder"`
	Revenue       Amount  `json:"revenue"`
	HolderBalance Amount  `json:"holder_balance"`
	TotalSupply   Amount  `json:"total_supply"`
	Entitlement   Amount  `json:"entitlement"`
	Payout        Amount  `json:"payout"`
}
