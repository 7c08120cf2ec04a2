// Package shipping estimates flat-rate delivery costs from a destination
// postal code (an 8-digit Brazilian CEP) and the number of items shipped.
package shipping

import (
	"errors"
	"strings"
)

var (
	ErrInvalidPostalCode = errors.New("postal code must be 8 digits")
	ErrNoRateForRegion   = errors.New("no shipping rate configured for region")
	ErrInvalidItemCount  = errors.New("item count must be positive")
)

// RegionRate is one row of the rate table. Digits lists the leading CEP
// digits the region serves.
type RegionRate struct {
	Region   string  `yaml:"region" json:"region"`
	Digits   string  `yaml:"digits" json:"digits"`
	BaseCost float64 `yaml:"base_cost" json:"base_cost"`
	PerItem  float64 `yaml:"per_item" json:"per_item"`
	ETADays  int     `yaml:"eta_days" json:"eta_days"`
}

// Quote is a shipping estimate for one destination.
type Quote struct {
	Region  string  `json:"region"`
	Cost    float64 `json:"cost"`
	ETADays int     `json:"eta_days"`
}

// Estimator resolves quotes against a fixed rate table. The region comes
// from the first digit of the CEP.
type Estimator struct {
	byDigit map[byte]RegionRate
}

func NewEstimator(rates []RegionRate) *Estimator {
	e := &Estimator{byDigit: make(map[byte]RegionRate)}
	for _, rate := range rates {
		for i := 0; i < len(rate.Digits); i++ {
			e.byDigit[rate.Digits[i]] = rate
		}
	}
	return e
}

// DefaultRates is the rate table used when the config does not provide one.
// CEP leading digits follow the national allocation.
func DefaultRates() []RegionRate {
	return []RegionRate{
		{Region: "São Paulo", Digits: "01", BaseCost: 9.90, PerItem: 1.50, ETADays: 2},
		{Region: "Rio de Janeiro / Espírito Santo", Digits: "2", BaseCost: 12.90, PerItem: 1.80, ETADays: 3},
		{Region: "Minas Gerais", Digits: "3", BaseCost: 12.90, PerItem: 1.80, ETADays: 3},
		{Region: "Nordeste", Digits: "456", BaseCost: 19.90, PerItem: 2.50, ETADays: 7},
		{Region: "Centro-Oeste / Norte", Digits: "7", BaseCost: 22.90, PerItem: 2.90, ETADays: 9},
		{Region: "Sul", Digits: "89", BaseCost: 14.90, PerItem: 2.00, ETADays: 4},
	}
}

// Quote estimates cost and delivery time for items units sent to postalCode.
func (e *Estimator) Quote(postalCode string, items int) (*Quote, error) {
	if items <= 0 {
		return nil, ErrInvalidItemCount
	}
	cep, err := normalizeCEP(postalCode)
	if err != nil {
		return nil, err
	}
	rate, ok := e.byDigit[cep[0]]
	if !ok {
		return nil, ErrNoRateForRegion
	}
	return &Quote{
		Region:  rate.Region,
		Cost:    rate.BaseCost + rate.PerItem*float64(items),
		ETADays: rate.ETADays,
	}, nil
}

func normalizeCEP(postalCode string) (string, error) {
	cep := strings.ReplaceAll(strings.TrimSpace(postalCode), "-", "")
	if len(cep) != 8 {
		return "", ErrInvalidPostalCode
	}
	for i := 0; i < len(cep); i++ {
		if cep[i] < '0' || cep[i] > '9' {
			return "", ErrInvalidPostalCode
		}
	}
	return cep, nil
}
