package policy

import (
	"strings"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/services"
)

func (p Policy) ClassifierConfig() services.ClassifierConfig {
	return services.ClassifierConfig{
		EdgeCaseTag:           p.Tags.EdgeCase,
		ProcessedTag:          p.Tags.Processed,
		PriorityTag:           p.Tags.Priority,
		NewSKUs:               p.Classifier.NewSKUs,
		NoLocationPlaceholder: p.Classifier.NoLocationPlaceholder,
	}
}

// PackagingConfig upper-cases the SKU weight keys.
func (p Policy) PackagingConfig() services.PackagingConfig {
	weights := make(map[string]float64, len(p.Packaging.SKUWeightsOz))
	for sku, oz := range p.Packaging.SKUWeightsOz {
		weights[strings.ToUpper(strings.TrimSpace(sku))] = oz
	}
	boxes := make([]services.BoxProfile, 0, len(p.Packaging.Boxes))
	for _, b := range p.Packaging.Boxes {
		boxes = append(boxes, services.BoxProfile{
			Name:     b.Name,
			Length:   b.Length,
			Width:    b.Width,
			Height:   b.Height,
			MaxItems: b.MaxItems,
		})
	}
	return services.PackagingConfig{
		SKUWeightsOz:     weights,
		DefaultWeightOz:  p.Packaging.DefaultWeightOz,
		Boxes:            boxes,
		LargeSKUPrefixes: p.Packaging.LargeSKUPrefixes,
		LargeSKUs:        p.Packaging.LargeSKUs,
	}
}

// RateConfig fails when the default package cannot be built.
func (p Policy) RateConfig() (services.RateConfig, error) {
	weight, err := kernel.NewWeight(p.Rates.DefaultWeightOz, kernel.Ounces)
	if err != nil {
		return services.RateConfig{}, err
	}
	d := p.Rates.DefaultDimensions
	dims, err := kernel.NewDimensions(d.Length, d.Width, d.Height, kernel.Inches)
	if err != nil {
		return services.RateConfig{}, err
	}

	rules := make([]services.PreferenceRule, 0, len(p.Rates.Rules))
	for _, r := range p.Rates.Rules {
		tag := r.RequiresTag
		if r.RequiresExpeditedTag {
			tag = p.Tags.Expedited
		}
		rules = append(rules, services.PreferenceRule{
			Name:           r.Name,
			Keywords:       r.Keywords,
			RequiresTag:    tag,
			Destination:    services.Destination(r.Destination),
			RequiresWeight: r.RequiresWeight,
			MaxWeightOz:    r.MaxWeightOz,
		})
	}

	return services.RateConfig{
		Carriers:          p.Rates.Carriers,
		DefaultFromPostal: p.Rates.DefaultFromPostal,
		DefaultCountry:    p.Rates.DefaultCountry,
		DefaultWeight:     weight,
		DefaultDimensions: dims,
		Confirmation:      shipment.Confirmation(p.Rates.Confirmation),
		DomesticCountries: p.Rates.DomesticCountries,
		Rules:             rules,
	}, nil
}

func (p Policy) BillingAccounts() map[string]shipment.BillingAccount {
	return p.Billing
}

func (p Policy) BatchTaggerConfig() services.BatchTaggerConfig {
	cfg := services.BatchTaggerConfig{
		SKURules:         make([]services.SKURule, 0, len(p.Batch.SKURules)),
		ProductNameRules: make([]services.ProductNameRule, 0, len(p.Batch.ProductNameRules)),
	}
	for _, r := range p.Batch.SKURules {
		cfg.SKURules = append(cfg.SKURules, services.SKURule{
			Tag:         r.Tag,
			Markers:     r.Markers,
			MinQuantity: r.MinQuantity,
			MaxQuantity: r.MaxQuantity,
		})
	}
	for _, r := range p.Batch.ProductNameRules {
		cfg.ProductNameRules = append(cfg.ProductNameRules, services.ProductNameRule{Tag: r.Tag, Markers: r.Markers})
	}
	return cfg
}

func (p Policy) SplitConfig() services.SplitConfig {
	return services.SplitConfig{SplitTag: p.Tags.SplitShipment, NoteMarker: p.Split.NoteMarker}
}

func (p Policy) TriageTags() commands.TriageTags {
	return commands.TriageTags{
		EdgeCase:  p.Tags.EdgeCase,
		Processed: p.Tags.Processed,
		Excluded:  p.Tags.Excluded,
		Names:     p.Tags.Names,
	}
}

// SplitTagName returns the configured name of the split tag.
func (p Policy) SplitTagName() string {
	return p.TriageTags().Name(p.Tags.SplitShipment)
}
