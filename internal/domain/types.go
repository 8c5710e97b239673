package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

// Address is a base58 encoded 32-byte ledger address (wallet or derived account)
type Address string

// ParseAddress validates a base58 address and returns it in canonical form
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidAddress
	}
	pk, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidAddress, s)
	}
	return Address(pk.String()), nil
}

// AddressFromPublicKey converts a solana public key into an Address
func AddressFromPublicKey(pk solana.PublicKey) Address {
	return Address(pk.String())
}

// PublicKey returns the 32-byte public key behind the address
func (a Address) PublicKey() (solana.PublicKey, error) {
	pk, err := solana.PublicKeyFromBase58(string(a))
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: %s", ErrInvalidAddress, a)
	}
	return pk, nil
}

func (a Address) String() string {
	return string(a)
}

// Valid checks if the address decodes to a 32-byte key
func (a Address) Valid() bool {
	_, err := a.PublicKey()
	return err == nil
}

// Amount is an unsigned quantity in the smallest unit of a token or of the settlement currency.
// It is stored as numeric(20,0) and serialized in JSON as a decimal string so that values above
// 2^53 survive JavaScript clients.
type Amount uint64

// ParseAmount parses a base-10 unsigned integer string
func ParseAmount(s string) (Amount, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid amount %q", ErrPreconditionViolation, s)
	}
	return Amount(v), nil
}

func (a Amount) Uint64() uint64 {
	return uint64(a)
}

func (a Amount) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

// IsZero reports whether the amount is zero
func (a Amount) IsZero() bool {
	return a == 0
}

// CheckedAdd returns a+b or ErrArithmeticOverflow
func (a Amount) CheckedAdd(b Amount) (Amount, error) {
	sum, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: %d + %d", ErrArithmeticOverflow, a, b)
	}
	return Amount(sum), nil
}

// CheckedSub returns a-b and false when b is greater than a
func (a Amount) CheckedSub(b Amount) (Amount, bool) {
	diff, borrow := bits.Sub64(uint64(a), uint64(b), 0)
	if borrow != 0 {
		return 0, false
	}
	return Amount(diff), true
}

// Decimal renders the amount in whole units for the given number of decimals
func (a Amount) Decimal(decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(a)), -decimals)
}

// Value implements driver.Valuer
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan implements sql.Scanner
func (a *Amount) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*a = 0
		return nil
	case int64:
		if v < 0 {
			return fmt.Errorf("negative amount: %d", v)
		}
		*a = Amount(v)
		return nil
	case []byte:
		return a.scanString(string(v))
	case string:
		return a.scanString(v)
	default:
		return fmt.Errorf("unsupported amount type: %T", src)
	}
}

func (a *Amount) scanString(s string) error {
	// numeric columns may come back with a trailing fractional part
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("failed to scan amount %q: %w", s, err)
	}
	*a = Amount(v)
	return nil
}

// MarshalJSON encodes the amount as a quoted decimal string
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts either a quoted decimal string or a bare JSON number
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid amount %s", ErrPreconditionViolation, string(data))
	}
	*a = Amount(v)
	return nil
}

// ContentHash is the 32-byte digest identifying a design's artwork
type ContentHash = common.Hash

// ParseContentHash decodes a 0x-prefixed hex string into a 32-byte content hash
func ParseContentHash(s string) (ContentHash, error) {
	b, err := hexutil.Decode(strings.TrimSpace(s))
	if err != nil {
		return ContentHash{}, fmt.Errorf("%w: %v", ErrInvalidContentHash, err)
	}
	if len(b) != common.HashLength {
		return ContentHash{}, ErrInvalidContentHash
	}
	return common.BytesToHash(b), nil
}

// DesignState is the sale state of a design derived from its inventory
type DesignState string

const (
	DesignStateListed        DesignState = "listed"
	DesignStatePartiallySold DesignState = "partially_sold"
	DesignStateSoldOut       DesignState = "sold_out"
)

// DesignStateOf derives the sale state from the remaining and initial inventory.
// A design listed with zero inventory is sold out from the start.
func DesignStateOf(inventory, initialInventory uint64) DesignState {
	switch {
	case inventory == 0:
		return DesignStateSoldOut
	case inventory < initialInventory:
		return DesignStatePartiallySold
	default:
		return DesignStateListed
	}
}
