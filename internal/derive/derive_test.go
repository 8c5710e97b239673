package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RackSavant/sistachat-sub000/internal/domain"
)

const (
	designerA domain.Address = "6HCmRbdv88G4zYEXSnCwXX8M6hDv5dvEpvajeh1LvLLD"
	designerB domain.Address = "7zv5e4docsDiNmb5ia4nXQ4nFzEVFR2sr6SNRwNohZbf"
)

func TestNew(t *testing.T) {
	d, err := New(DefaultProgramID)
	require.NoError(t, err)
	assert.Equal(t, domain.Address(DefaultProgramID), d.ProgramID())

	_, err = New("not a key")
	assert.Error(t, err)

	assert.Panics(t, func() { MustNew("") })
}

func TestDeriver_Deterministic(t *testing.T) {
	d1 := MustNew(DefaultProgramID)
	d2 := MustNew(DefaultProgramID)

	p1, err := d1.Platform()
	require.NoError(t, err)
	p2, err := d2.Platform()
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
	assert.True(t, p1.Valid())

	// call order must not matter
	b1, err := d2.Design(designerB, 3)
	require.NoError(t, err)
	a1, err := d2.Design(designerA, 0)
	require.NoError(t, err)
	a2, err := d1.Design(designerA, 0)
	require.NoError(t, err)
	b2, err := d1.Design(designerB, 3)
	require.NoError(t, err)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
}

func TestDeriver_CollisionFree(t *testing.T) {
	d := MustNew(DefaultProgramID)
	seen := make(map[domain.Address]string)

	record := func(name string, addr domain.Address, err error) {
		require.NoError(t, err)
		if prev, ok := seen[addr]; ok {
			t.Fatalf("%s collides with %s at %s", name, prev, addr)
		}
		seen[addr] = name
	}

	addr, err := d.Platform()
	record("platform", addr, err)

	for _, owner := range []domain.Address{designerA, designerB} {
		addr, err = d.DesignerProfile(owner)
		record("profile/"+owner.String(), addr, err)

		mint, err := d.DesignerMint(owner)
		record("mint/"+owner.String(), mint, err)

		addr, err = d.PlatformPool(mint)
		record("pool/"+owner.String(), addr, err)

		for seq := uint64(0); seq < 5; seq++ {
			design, err := d.Design(owner, seq)
			record("design/"+owner.String()+"/"+domain.Amount(seq).String(), design, err)

			addr, err = d.Escrow(design)
			record("escrow/"+design.String(), addr, err)
		}
	}

	assert.Len(t, seen, 1+2*(3+5*2))
}

func TestDeriver_ProgramIDScopesAddresses(t *testing.T) {
	d1 := MustNew(DefaultProgramID)
	d2 := MustNew("11111111111111111111111111111111")

	p1, err := d1.Platform()
	require.NoError(t, err)
	p2, err := d2.Platform()
	require.NoError(t, err)
	assert.NotEqual(t, p1, p2)
}

func TestDeriver_InvalidOwner(t *testing.T) {
	d := MustNew(DefaultProgramID)

	_, err := d.DesignerProfile("bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)

	_, err = d.Design("", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}
