package derive

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/RackSavant/sistachat-sub000/internal/domain"
)

// DefaultProgramID is the program id used when none is configured
const DefaultProgramID = "5KTz5iaLEUFEKSWqAHZhmZoB7rtYoxSN72HxvXraXwyo"

// Deriver computes deterministic storage addresses from a namespace tag and the owning inputs.
// Addresses are program derived addresses of the configured program id, so the same inputs map to
// the same address on every node and in every client.
type Deriver struct {
	programID solana.PublicKey
}

// New creates a deriver for the given program id
func New(programID string) (*Deriver, error) {
	pk, err := solana.PublicKeyFromBase58(programID)
	if err != nil {
		return nil, fmt.Errorf("invalid program id %q: %w", programID, err)
	}
	return &Deriver{programID: pk}, nil
}

// MustNew is like New but panics on an invalid program id
func MustNew(programID string) *Deriver {
	d, err := New(programID)
	if err != nil {
		panic(err)
	}
	return d
}

// ProgramID returns the program id the deriver is bound to
func (d *Deriver) ProgramID() domain.Address {
	return domain.AddressFromPublicKey(d.programID)
}

// Platform derives the singleton platform ledger address
func (d *Deriver) Platform() (domain.Address, error) {
	return d.derive(domain.NamespacePlatform)
}

// DesignerProfile derives the registry address of a designer
func (d *Deriver) DesignerProfile(owner domain.Address) (domain.Address, error) {
	return d.derive(domain.NamespaceDesignerProfile, owner)
}

// DesignerMint derives the token mint address of a designer
func (d *Deriver) DesignerMint(owner domain.Address) (domain.Address, error) {
	return d.derive(domain.NamespaceDesignerMint, owner)
}

// Design derives the catalog entry address of a designer's design at sequenceIndex
func (d *Deriver) Design(owner domain.Address, sequenceIndex uint64) (domain.Address, error) {
	return d.derive(domain.NamespaceDesignMeta, owner, sequenceIndex)
}

// Escrow derives the escrow account address of a design
func (d *Deriver) Escrow(design domain.Address) (domain.Address, error) {
	return d.derive(domain.NamespaceEscrow, design)
}

// PlatformPool derives the holder address receiving the platform's allocation of a mint
func (d *Deriver) PlatformPool(mint domain.Address) (domain.Address, error) {
	return d.derive(domain.NamespacePlatformPool, mint)
}

// derive builds the seed list [tag, inputs...] and finds the program address.
// Addresses contribute their 32 raw bytes and integers their little-endian u64 encoding.
func (d *Deriver) derive(tag string, inputs ...interface{}) (domain.Address, error) {
	seeds := make([][]byte, 0, len(inputs)+1)
	seeds = append(seeds, []byte(tag))

	for _, in := range inputs {
		switch v := in.(type) {
		case domain.Address:
			pk, err := v.PublicKey()
			if err != nil {
				return "", err
			}
			seeds = append(seeds, pk.Bytes())
		case uint64:
			buf := make([]byte, 8)
			binary.LittleEndian.PutUint64(buf, v)
			seeds = append(seeds, buf)
		default:
			return "", fmt.Errorf("unsupported seed type %T", in)
		}
	}

	addr, _, err := solana.FindProgramAddress(seeds, d.programID)
	if err != nil {
		return "", fmt.Errorf("failed to derive %s address: %w", tag, err)
	}

	return domain.AddressFromPublicKey(addr), nil
}
