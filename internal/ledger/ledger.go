package ledger

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/RackSavant/sistachat-sub000/internal/domain"
	"github.com/RackSavant/sistachat-sub000/internal/logger"
	"github.com/RackSavant/sistachat-sub000/internal/store"
	"github.com/RackSavant/sistachat-sub000/internal/store/schema"
)

// holdingsPageSize is the number of holders paid per page by DistributeAll
const holdingsPageSize = 100

// DistributionSummary is the outcome of paying every holder of a design
type DistributionSummary struct {
	Design       domain.Address
	HoldersSeen  int
	HoldersPaid  int
	TotalPaid    domain.Amount
	EscrowBefore domain.Amount
	EscrowAfter  domain.Amount
}

// Ledger validates and executes ledger instructions.
// Every mutating call is executed atomically by the underlying store.
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger
type Ledger interface {
	// InitializePlatform creates the platform ledger
	InitializePlatform(ctx context.Context, input store.InitializePlatformInput) (*schema.PlatformLedger, error)
	// UpdatePlatform changes the fee rate or treasury destination
	UpdatePlatform(ctx context.Context, input store.UpdatePlatformInput) (*schema.PlatformLedger, error)
	// FundAccount credits a settlement account
	FundAccount(ctx context.Context, input store.FundAccountInput) (*schema.Account, error)
	// WithdrawFee moves collected fees out of the treasury
	WithdrawFee(ctx context.Context, input store.WithdrawFeeInput) (*schema.Account, error)

	// RegisterDesigner registers a designer and mints their token
	RegisterDesigner(ctx context.Context, input store.RegisterDesignerInput) (*store.RegisterDesignerResult, error)
	// TransferShares moves designer token units between holders
	TransferShares(ctx context.Context, input store.TransferSharesInput) (*store.TransferSharesResult, error)

	// UploadDesign lists a new design
	UploadDesign(ctx context.Context, input store.UploadDesignInput) (*store.UploadDesignResult, error)
	// UpdatePrice reprices a design
	UpdatePrice(ctx context.Context, input store.UpdatePriceInput) (*schema.DesignCatalogEntry, error)
	// Buy purchases design units
	Buy(ctx context.Context, input store.BuyInput) (*store.BuyResult, error)

	// DistributeToHolder pays one holder what a design's escrow still owes them
	DistributeToHolder(ctx context.Context, input store.DistributeInput) (*store.DistributionResult, error)
	// DistributeAll pays every current holder of the designer's token what a design's escrow owes them
	DistributeAll(ctx context.Context, design domain.Address, caller *domain.Address) (*DistributionSummary, error)
}

type ledger struct {
	store store.Store
}

// New creates a ledger backed by the given store
func New(store store.Store) Ledger {
	return &ledger{store: store}
}

func requireAddresses(addresses ...domain.Address) error {
	for _, a := range addresses {
		if !a.Valid() {
			return fmt.Errorf("%w: %q", domain.ErrInvalidAddress, a)
		}
	}
	return nil
}

// logResult logs the outcome of an instruction; failures that are the caller's fault are warnings
func logResult(log *zap.Logger, err error, fields ...zap.Field) {
	if err == nil {
		log.Info("Instruction executed", fields...)
		return
	}

	fields = append(fields, zap.Error(err))
	switch {
	case errors.Is(err, domain.ErrPreconditionViolation),
		errors.Is(err, domain.ErrAuthorizationFailure),
		errors.Is(err, domain.ErrInsufficientInventory),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrArithmeticOverflow),
		errors.Is(err, domain.ErrNotFound):
		log.Warn("Instruction rejected", fields...)
	default:
		log.Error("Instruction failed", fields...)
	}
}

func (l *ledger) InitializePlatform(ctx context.Context, input store.InitializePlatformInput) (*schema.PlatformLedger, error) {
	log := logger.FromInstruction(ctx, logger.InstructionInfo{
		Instruction: string(domain.InstructionInitializePlatform),
		Actor:       input.Authority.String(),
	})

	if err := requireAddresses(input.Authority, input.Treasury); err != nil {
		return nil, err
	}
	if input.FeeBps > domain.MaxFeeBps {
		return nil, domain.ErrFeeBpsOutOfRange
	}

	platform, err := l.store.InitializePlatform(ctx, input)
	logResult(log, err, zap.Uint16("fee_bps", input.FeeBps), zap.String("treasury", input.Treasury.String()))
	return platform, err
}

func (l *ledger) UpdatePlatform(ctx context.Context, input store.UpdatePlatformInput) (*schema.PlatformLedger, error) {
	log := logger.FromInstruction(ctx, logger.InstructionInfo{
		Instruction: string(domain.InstructionUpdatePlatform),
		Actor:       input.Authority.String(),
	})

	if err := requireAddresses(input.Authority); err != nil {
		return nil, err
	}
	if input.Treasury != nil {
		if err := requireAddresses(*input.Treasury); err != nil {
			return nil, err
		}
	}

	platform, err := l.store.UpdatePlatform(ctx, input)
	logResult(log, err)
	return platform, err
}

func (l *ledger) FundAccount(ctx context.Context, input store.FundAccountInput) (*schema.Account, error) {
	log := logger.FromInstruction(ctx, logger.InstructionInfo{
		Instruction: string(domain.InstructionFundAccount),
		Subject:     input.Account.String(),
		Actor:       input.Authority.String(),
	})

	if err := requireAddresses(input.Authority, input.Account); err != nil {
		return nil, err
	}
	if input.Amount.IsZero() {
		return nil, domain.ErrInvalidAmount
	}

	account, err := l.store.FundAccount(ctx, input)
	logResult(log, err, zap.Stringer("amount", input.Amount))
	return account, err
}

func (l *ledger) WithdrawFee(ctx context.Context, input store.WithdrawFeeInput) (*schema.Account, error) {
	log := logger.FromInstruction(ctx, logger.InstructionInfo{
		Instruction: string(domain.InstructionWithdrawFee),
		Subject:     input.Destination.String(),
		Actor:       input.Authority.String(),
	})

	if err := requireAddresses(input.Authority, input.Destination); err != nil {
		return nil, err
	}
	if input.Amount.IsZero() {
		return nil, domain.ErrInvalidAmount
	}

	treasury, err := l.store.WithdrawFee(ctx, input)
	logResult(log, err, zap.Stringer("amount", input.Amount))
	return treasury, err
}

func (l *ledger) RegisterDesigner(ctx context.Context, input store.RegisterDesignerInput) (*store.RegisterDesignerResult, error) {
	log := logger.FromInstruction(ctx, logger.InstructionInfo{
		Instruction: string(domain.InstructionRegisterDesigner),
		Actor:       input.Owner.String(),
	})

	if err := requireAddresses(input.Owner); err != nil {
		return nil, err
	}

	result, err := l.store.RegisterDesigner(ctx, input)
	if err == nil {
		logResult(log, nil,
			zap.String("designer", result.Designer.Address.String()),
			zap.String("mint", result.Mint.Address.String()))
		return result, nil
	}
	logResult(log, err)
	return nil, err
}

func (l *ledger) TransferShares(ctx context.Context, input store.TransferSharesInput) (*store.TransferSharesResult, error) {
	log := logger.FromInstruction(ctx, logger.InstructionInfo{
		Instruction: string(domain.InstructionTransferShares),
		Subject:     input.Mint.String(),
		Actor:       input.From.String(),
	})

	if err := requireAddresses(input.Mint, input.From, input.To); err != nil {
		return nil, err
	}
	if input.Amount.IsZero() {
		return nil, domain.ErrInvalidAmount
	}
	if input.From == input.To {
		return nil, domain.ErrSelfTransfer
	}

	result, err := l.store.TransferShares(ctx, input)
	if err == nil {
		logResult(log, nil, zap.String("to", input.To.String()), zap.Stringer("amount", input.Amount), zap.Stringer("debt_moved", result.DebtMoved))
		return result, nil
	}
	logResult(log, err, zap.String("to", input.To.String()))
	return nil, err
}

func (l *ledger) UploadDesign(ctx context.Context, input store.UploadDesignInput) (*store.UploadDesignResult, error) {
	log := logger.FromInstruction(ctx, logger.InstructionInfo{
		Instruction: string(domain.InstructionUploadDesign),
		Actor:       input.Owner.String(),
	})

	if err := requireAddresses(input.Owner); err != nil {
		return nil, err
	}

	result, err := l.store.UploadDesign(ctx, input)
	if err == nil {
		logResult(log, nil,
			zap.String("design", result.Design.Address.String()),
			zap.Uint64("sequence_index", result.Design.SequenceIndex))
		return result, nil
	}
	logResult(log, err)
	return nil, err
}

func (l *ledger) UpdatePrice(ctx context.Context, input store.UpdatePriceInput) (*schema.DesignCatalogEntry, error) {
	log := logger.FromInstruction(ctx, logger.InstructionInfo{
		Instruction: string(domain.InstructionUpdatePrice),
		Subject:     input.Design.String(),
		Actor:       input.Owner.String(),
	})

	if err := requireAddresses(input.Owner, input.Design); err != nil {
		return nil, err
	}

	design, err := l.store.UpdatePrice(ctx, input)
	logResult(log, err, zap.Stringer("price", input.NewPrice))
	return design, err
}

func (l *ledger) Buy(ctx context.Context, input store.BuyInput) (*store.BuyResult, error) {
	log := logger.FromInstruction(ctx, logger.InstructionInfo{
		Instruction: string(domain.InstructionBuy),
		Subject:     input.Design.String(),
		Actor:       input.Buyer.String(),
	})

	if err := requireAddresses(input.Buyer, input.Design); err != nil {
		return nil, err
	}
	if input.Quantity == 0 {
		return nil, domain.ErrInvalidQuantity
	}

	result, err := l.store.Buy(ctx, input)
	if err == nil {
		logResult(log, nil,
			zap.Uint64("quantity", input.Quantity),
			zap.Stringer("total", result.Settlement.Total),
			zap.Stringer("fee", result.Settlement.Fee))
		return result, nil
	}
	logResult(log, err, zap.Uint64("quantity", input.Quantity))
	return nil, err
}

func (l *ledger) DistributeToHolder(ctx context.Context, input store.DistributeInput) (*store.DistributionResult, error) {
	info := logger.InstructionInfo{
		Instruction: string(domain.InstructionDistributeToHolder),
		Subject:     input.Design.String(),
	}
	if input.Caller != nil {
		info.Actor = input.Caller.String()
	}
	log := logger.FromInstruction(ctx, info)

	if err := requireAddresses(input.Design, input.Holder); err != nil {
		return nil, err
	}

	result, err := l.store.DistributeToHolder(ctx, input)
	if err != nil {
		logResult(log, err, zap.String("holder", input.Holder.String()))
		return nil, err
	}

	if result.Payout.IsZero() {
		log.Debug("Nothing to distribute", zap.String("holder", input.Holder.String()))
	} else {
		logResult(log, nil, zap.String("holder", input.Holder.String()), zap.Stringer("payout", result.Payout))
	}
	return result, nil
}

// DistributeAll walks the holders of the designer's mint and pays each of them.
// It stops early once the escrow is empty.
func (l *ledger) DistributeAll(ctx context.Context, design domain.Address, caller *domain.Address) (*DistributionSummary, error) {
	if err := requireAddresses(design); err != nil {
		return nil, err
	}

	entry, err := l.store.GetDesign(ctx, design)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrDesignNotFound
	}
	designer, err := l.store.GetDesignerByAddress(ctx, entry.DesignerAddress)
	if err != nil {
		return nil, err
	}
	if designer == nil {
		return nil, domain.ErrDesignerNotFound
	}
	escrow, err := l.store.GetEscrowByDesign(ctx, design)
	if err != nil {
		return nil, err
	}
	if escrow == nil {
		return nil, domain.ErrEscrowNotFound
	}

	summary := &DistributionSummary{
		Design:       design,
		EscrowBefore: escrow.Balance,
		EscrowAfter:  escrow.Balance,
	}

	var offset uint64
	for summary.EscrowAfter > 0 {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		holdings, total, err := l.store.ListHoldings(ctx, designer.MintAddress, holdingsPageSize, offset)
		if err != nil {
			return summary, err
		}

		for _, holding := range holdings {
			summary.HoldersSeen++
			result, err := l.DistributeToHolder(ctx, store.DistributeInput{
				Caller: caller,
				Design: design,
				Holder: holding.HolderAddress,
			})
			if err != nil {
				return summary, err
			}
			if result.Payout > 0 {
				summary.HoldersPaid++
				summary.TotalPaid += result.Payout
			}
			if result.Escrow != nil {
				summary.EscrowAfter = result.Escrow.Balance
			}
			if summary.EscrowAfter == 0 {
				break
			}
		}

		offset += uint64(len(holdings))
		if len(holdings) == 0 || offset >= total {
			break
		}
	}

	return summary, nil
}
