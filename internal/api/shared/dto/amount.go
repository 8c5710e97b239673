package dto

import "github.com/RackSavant/sistachat-sub000/internal/domain"

// AmountResponse renders an integer amount in smallest units next to its decimal value
type AmountResponse struct {
	Raw      domain.Amount `json:"raw"`
	Display  string        `json:"display"`
	Decimals int32         `json:"decimals"`
}

// SettlementAmount renders an amount of the settlement currency
func SettlementAmount(a domain.Amount) AmountResponse {
	return AmountResponse{
		Raw:      a,
		Display:  a.Decimal(domain.SettlementDecimals).String(),
		Decimals: domain.SettlementDecimals,
	}
}

// TokenAmount renders an amount of a designer token
func TokenAmount(a domain.Amount) AmountResponse {
	return AmountResponse{
		Raw:      a,
		Display:  a.Decimal(domain.TokenDecimals).String(),
		Decimals: domain.TokenDecimals,
	}
}
