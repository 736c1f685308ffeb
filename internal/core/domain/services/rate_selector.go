package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
)

var (
	// ErrNoRatesFound is returned when no carrier produced a quote.
	// The accompanying Selection still carries the per-carrier attempts.
	ErrNoRatesFound = errors.New("no rates found")

	// ErrNoCarriers is returned when the selector is configured without carriers.
	ErrNoCarriers = errors.New("no carriers configured")
)

// RuleCheapest names the fallback used when no preference rule matches.
const RuleCheapest = "cheapest"

// Destination restricts a preference rule to domestic or international shipments.
type Destination string

const (
	AnyDestination Destination = ""
	Domestic       Destination = "domestic"
	International  Destination = "international"
)

// PreferenceRule is one entry of the service preference table.
//
// A rule applies when every condition holds: the order carries RequiresTag (when set),
// the destination matches, the weight is positive (when RequiresWeight), and the weight is
// below MaxWeightOz (when set). An applicable rule picks the cheapest quote whose service
// code, service name or carrier code contains one of Keywords, case-insensitively.
type PreferenceRule struct {
	Name           string
	Keywords       []string
	RequiresTag    order.TagID
	Destination    Destination
	RequiresWeight bool
	MaxWeightOz    float64
}

func (r PreferenceRule) applies(o *order.Order, domestic bool, weightOz float64) bool {
	if r.RequiresTag != 0 && !o.HasTag(r.RequiresTag) {
		return false
	}
	switch r.Destination {
	case Domestic:
		if !domestic {
			return false
		}
	case International:
		if domestic {
			return false
		}
	case AnyDestination:
	}
	if r.RequiresWeight && weightOz <= 0 {
		return false
	}
	if r.MaxWeightOz > 0 && weightOz >= r.MaxWeightOz {
		return false
	}
	return true
}

func (r PreferenceRule) matches(q shipment.Quote) bool {
	fields := []string{
		strings.ToLower(q.ServiceCode),
		strings.ToLower(q.ServiceName),
		strings.ToLower(q.CarrierCode),
	}
	for _, k := range r.Keywords {
		k = strings.ToLower(k)
		for _, f := range fields {
			if strings.Contains(f, k) {
				return true
			}
		}
	}
	return false
}

// RateConfig configures the RateSelector.
type RateConfig struct {
	Carriers          []string
	DefaultFromPostal string
	DefaultCountry    string
	DefaultWeight     kernel.Weight
	DefaultDimensions kernel.Dimensions
	Confirmation      shipment.Confirmation
	DomesticCountries []string
	Rules             []PreferenceRule
}

// CarrierAttempt records one carrier's rating call.
type CarrierAttempt struct {
	Carrier string
	Quotes  int
	Err     error
}

// Selection is the outcome of rate shopping.
type Selection struct {
	Quote      shipment.Quote
	Rule       string
	Descriptor shipment.Descriptor
	Domestic   bool
	Attempts   []CarrierAttempt
}

// FailedCarriers lists the carriers whose rating call failed.
func (s Selection) FailedCarriers() []string {
	var out []string
	for _, a := range s.Attempts {
		if a.Err != nil {
			out = append(out, a.Carrier)
		}
	}
	return out
}

// RateSelector chooses a carrier and service for an order.
//
// It rates the order's package once per configured carrier, pools every quote, sorts the
// pool by shipment cost (stable, so equal prices keep discovery order), then walks the
// preference rules in order. The first rule that applies and matches a quote wins;
// otherwise the cheapest quote is taken.
//
// A carrier call failing never aborts the others. Only an empty pool is an error.
type RateSelector struct {
	rates ports.RateClient
	cfg   RateConfig
}

// NewRateSelector validates cfg and returns a selector backed by rates.
func NewRateSelector(rates ports.RateClient, cfg RateConfig) (RateSelector, error) {
	if rates == nil {
		return RateSelector{}, errors.New("rate client is required")
	}
	if len(cfg.Carriers) == 0 {
		return RateSelector{}, ErrNoCarriers
	}
	if err := errors.Join(cfg.DefaultWeight.Validate(), cfg.DefaultDimensions.Validate()); err != nil {
		return RateSelector{}, fmt.Errorf("rate defaults: %w", err)
	}
	if cfg.Confirmation == "" {
		cfg.Confirmation = shipment.ConfirmationNone
	}
	return RateSelector{rates: rates, cfg: cfg}, nil
}

// Describe builds the rating descriptor for o, without a carrier.
func (s RateSelector) Describe(o *order.Order) shipment.Descriptor {
	to := o.ShipTo()

	d := shipment.Descriptor{
		FromPostalCode: o.ShipFromPostal(),
		ToCountry:      strings.ToUpper(strings.TrimSpace(to.Country)),
		ToState:        strings.TrimSpace(to.State),
		ToPostalCode:   strings.TrimSpace(to.PostalCode),
		Residential:    to.Residential != nil && *to.Residential,
		Weight:         s.cfg.DefaultWeight,
		Dimensions:     s.cfg.DefaultDimensions,
		Confirmation:   s.cfg.Confirmation,
	}
	if d.FromPostalCode == "" {
		d.FromPostalCode = s.cfg.DefaultFromPostal
	}
	if d.ToCountry == "" {
		d.ToCountry = s.cfg.DefaultCountry
	}
	if w, ok := o.Weight(); ok {
		d.Weight = w
	}
	if dims, ok := o.Dimensions(); ok {
		d.Dimensions = dims
	}
	return d
}

// SelectRate rate-shops o. It returns ErrNoRatesFound when every carrier failed or
// returned nothing, and the context's error when ctx ended during shopping.
func (s RateSelector) SelectRate(ctx context.Context, o *order.Order) (Selection, error) {
	base := s.Describe(o)
	sel := Selection{
		Descriptor: base,
		Domestic:   slices.ContainsFunc(s.cfg.DomesticCountries, func(c string) bool { return strings.EqualFold(c, base.ToCountry) }),
		Attempts:   make([]CarrierAttempt, 0, len(s.cfg.Carriers)),
	}

	var pool []shipment.Quote
	for _, carrier := range s.cfg.Carriers {
		quotes, err := s.rates.GetRates(ctx, base.WithCarrier(carrier))
		sel.Attempts = append(sel.Attempts, CarrierAttempt{Carrier: carrier, Quotes: len(quotes), Err: err})
		if err != nil {
			continue
		}
		pool = append(pool, quotes...)
	}

	if err := ctx.Err(); err != nil && len(pool) == 0 {
		return sel, err
	}
	if len(pool) == 0 {
		return sel, ErrNoRatesFound
	}

	slices.SortStableFunc(pool, func(a, b shipment.Quote) int {
		switch {
		case a.ShipmentCost < b.ShipmentCost:
			return -1
		case a.ShipmentCost > b.ShipmentCost:
			return 1
		}
		return 0
	})

	weightOz := base.Weight.Ounces()
	for _, rule := range s.cfg.Rules {
		if !rule.applies(o, sel.Domestic, weightOz) {
			continue
		}
		// pool is sorted, so the first match is the cheapest one.
		if i := slices.IndexFunc(pool, rule.matches); i >= 0 {
			sel.Quote = pool[i]
			sel.Rule = rule.Name
			return sel, nil
		}
	}

	sel.Quote = pool[0]
	sel.Rule = RuleCheapest
	return sel, nil
}
