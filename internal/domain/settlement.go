package domain

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Settlement is the split of a purchase between the platform treasury and the design escrow
type Settlement struct {
	Total Amount `json:"total"`
	Fee   Amount `json:"fee"`
	Net   Amount `json:"net"`
}

// ComputeSettlement prices a purchase of quantity units at unitPrice and splits it by feeBps.
// total = quantity * unitPrice must fit in 64 bits; fee is floored and net takes the remainder
// so fee + net == total always holds.
func ComputeSettlement(quantity uint64, unitPrice Amount, feeBps uint16) (Settlement, error) {
	if quantity == 0 {
		return Settlement{}, ErrInvalidQuantity
	}
	if feeBps > MaxFeeBps {
		return Settlement{}, ErrFeeBpsOutOfRange
	}

	hi, total := bits.Mul64(quantity, uint64(unitPrice))
	if hi != 0 {
		return Settlement{}, fmt.Errorf("%w: %d units at price %d", ErrArithmeticOverflow, quantity, unitPrice)
	}

	fee, err := mulDiv(total, uint64(feeBps), BpsDenominator)
	if err != nil {
		return Settlement{}, err
	}

	return Settlement{
		Total: Amount(total),
		Fee:   Amount(fee),
		Net:   Amount(total - fee),
	}, nil
}

// SplitSupply divides a freshly minted supply between the designer and the platform pool.
// The pool share is computed by subtraction so the two always sum to supply.
func SplitSupply(supply Amount) (designer Amount, pool Amount) {
	// supply * 9000 cannot exceed 128 bits and the quotient is at most supply
	d, _ := mulDiv(uint64(supply), DesignerShareBps, BpsDenominator)
	return Amount(d), supply - Amount(d)
}

// ComputeEntitlement returns floor(revenue * holderBalance / totalSupply)
func ComputeEntitlement(revenue, holderBalance, totalSupply Amount) (Amount, error) {
	if totalSupply == 0 {
		return 0, fmt.Errorf("%w: total supply is zero", ErrPreconditionViolation)
	}
	if holderBalance > totalSupply {
		return 0, fmt.Errorf("%w: holder balance %d exceeds supply %d", ErrPreconditionViolation, holderBalance, totalSupply)
	}
	v, err := mulDiv(uint64(revenue), uint64(holderBalance), uint64(totalSupply))
	if err != nil {
		return 0, err
	}
	return Amount(v), nil
}

// ComputePayout returns what remains due to a holder, capped by what the escrow holds
func ComputePayout(entitlement, alreadyPaid, escrowBalance Amount) Amount {
	due, ok := entitlement.CheckedSub(alreadyPaid)
	if !ok {
		return 0
	}
	if due > escrowBalance {
		return escrowBalance
	}
	return due
}

// ClaimDebtShare returns the part of a holder's paid-out claim that travels with amount shares
// out of a balance of holderBalance, floor(paid * amount / holderBalance).
func ClaimDebtShare(paid, amount, holderBalance Amount) Amount {
	if holderBalance == 0 || paid == 0 {
		return 0
	}
	if amount >= holderBalance {
		return paid
	}
	// amount < holderBalance so the quotient is below paid
	v, _ := mulDiv(uint64(paid), uint64(amount), uint64(holderBalance))
	return Amount(v)
}

// AddUnits adds to a unit counter, failing once the sum passes MaxUnitCount
func AddUnits(count, n uint64) (uint64, error) {
	if n > MaxUnitCount || count > MaxUnitCount-n {
		return 0, fmt.Errorf("%w: unit counter %d + %d", ErrArithmeticOverflow, count, n)
	}
	return count + n, nil
}

// mulDiv computes floor(a * b / d) with a 128-bit intermediate
func mulDiv(a, b, d uint64) (uint64, error) {
	if d == 0 {
		return 0, fmt.Errorf("%w: division by zero", ErrArithmeticOverflow)
	}
	product := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	q := product.Quo(product, new(big.Int).SetUint64(d))
	if !q.IsUint64() {
		return 0, fmt.Errorf("%w: %d * %d / %d", ErrArithmeticOverflow, a, b, d)
	}
	return q.Uint64(), nil
}
