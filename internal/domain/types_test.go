package domain

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Address
		wantErr  bool
	}{
		{
			name:     "system program",
			input:    "11111111111111111111111111111111",
			expected: "11111111111111111111111111111111",
		},
		{
			name:     "trims whitespace",
			input:    "  TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA ",
			expected: "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "not base58",
			input:   "0x0000000000000000000000000000000000000000",
			wantErr: true,
		},
		{
			name:    "too short",
			input:   "abc",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseAddress(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPreconditionViolation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
			assert.True(t, result.Valid())
		})
	}
}

func TestAmount_CheckedArithmetic(t *testing.T) {
	sum, err := Amount(40).CheckedAdd(2)
	require.NoError(t, err)
	assert.Equal(t, Amount(42), sum)

	_, err = Amount(math.MaxUint64).CheckedAdd(1)
	assert.ErrorIs(t, err, ErrArithmeticOverflow)

	diff, ok := Amount(42).CheckedSub(2)
	assert.True(t, ok)
	assert.Equal(t, Amount(40), diff)

	_, ok = Amount(1).CheckedSub(2)
	assert.False(t, ok)
}

func TestAmount_JSON(t *testing.T) {
	b, err := json.Marshal(Amount(math.MaxUint64))
	require.NoError(t, err)
	assert.Equal(t, `"18446744073709551615"`, string(b))

	var a Amount
	require.NoError(t, json.Unmarshal([]byte(`"18446744073709551615"`), &a))
	assert.Equal(t, Amount(math.MaxUint64), a)

	require.NoError(t, json.Unmarshal([]byte(`1500`), &a))
	assert.Equal(t, Amount(1500), a)

	assert.Error(t, json.Unmarshal([]byte(`"-1"`), &a))
	assert.Error(t, json.Unmarshal([]byte(`"1.5"`), &a))
}

func TestAmount_Scan(t *testing.T) {
	tests := []struct {
		name     string
		src      interface{}
		expected Amount
		wantErr  bool
	}{
		{name: "nil", src: nil, expected: 0},
		{name: "int64", src: int64(12), expected: 12},
		{name: "bytes", src: []byte("18446744073709551615"), expected: Amount(math.MaxUint64)},
		{name: "string with scale", src: "900000000000.0", expected: 900_000_000_000},
		{name: "negative", src: int64(-1), wantErr: true},
		{name: "garbage", src: "abc", wantErr: true},
		{name: "unsupported", src: 1.5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			err := a.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, a)
		})
	}

	v, err := Amount(7).Value()
	require.NoError(t, err)
	assert.Equal(t, "7", v)
}

func TestAmount_Decimal(t *testing.T) {
	assert.Equal(t, "900000", Amount(900_000_000_000).Decimal(TokenDecimals).String())
	assert.Equal(t, "0.1", Amount(100_000_000).Decimal(SettlementDecimals).String())
	assert.Equal(t, "0", Amount(0).Decimal(SettlementDecimals).String())
}

func TestParseContentHash(t *testing.T) {
	valid := "0x" + "ab" + strings.Repeat("00", 31)

	h, err := ParseContentHash(valid)
	require.NoError(t, err)
	assert.Equal(t, byte(0xab), h[0])
	assert.Equal(t, valid, h.Hex())

	_, err = ParseContentHash("0xabcd")
	assert.ErrorIs(t, err, ErrPreconditionViolation)

	_, err = ParseContentHash("not-hex")
	assert.ErrorIs(t, err, ErrPreconditionViolation)
}

func TestDesignStateOf(t *testing.T) {
	assert.Equal(t, DesignStateListed, DesignStateOf(10, 10))
	assert.Equal(t, DesignStatePartiallySold, DesignStateOf(3, 10))
	assert.Equal(t, DesignStateSoldOut, DesignStateOf(0, 10))
	assert.Equal(t, DesignStateSoldOut, DesignStateOf(0, 0))
}

func TestIsValidInstruction(t *testing.T) {
	assert.True(t, IsValidInstruction(InstructionBuy))
	assert.True(t, IsValidInstruction(InstructionDistributeToHolder))
	assert.False(t, IsValidInstruction(Instruction("mint_more")))
}
