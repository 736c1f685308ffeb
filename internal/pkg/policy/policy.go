// Package policy loads the business rules of triage: tag numbers, packaging tables,
// carrier preferences, billing accounts and batch rules. Defaults are embedded; an
// operator file overrides them.
package policy

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"os"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"

	"gopkg.in/yaml.v3"
)

//go:embed default_policy.yaml
var defaultPolicyData []byte

// Tags names the platform tags triage reads and writes.
type Tags struct {
	EdgeCase      order.TagID            `yaml:"edge_case"`
	Processed     order.TagID            `yaml:"processed"`
	Priority      order.TagID            `yaml:"priority"`
	Expedited     order.TagID            `yaml:"expedited"`
	SplitShipment order.TagID            `yaml:"split_shipment"`
	Excluded      []order.TagID          `yaml:"excluded"`
	Names         map[order.TagID]string `yaml:"names"`
}

type Classifier struct {
	NewSKUs               []string `yaml:"new_skus"`
	NoLocationPlaceholder string   `yaml:"no_location_placeholder"`
}

type Box struct {
	Name     string  `yaml:"name"`
	Length   float64 `yaml:"length"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	MaxItems int     `yaml:"max_items"`
}

type Packaging struct {
	DefaultWeightOz  float64            `yaml:"default_weight_oz"`
	SKUWeightsOz     map[string]float64 `yaml:"sku_weights_oz"`
	Boxes            []Box              `yaml:"boxes"`
	LargeSKUPrefixes []string           `yaml:"large_sku_prefixes"`
	LargeSKUs        []string           `yaml:"large_skus"`
}

type Size struct {
	Length float64 `yaml:"length"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Rule is one entry of the carrier service preference table, tried in order.
// RequiresExpeditedTag gates the rule on tags.expedited; RequiresTag names any other tag.
type Rule struct {
	Name                 string      `yaml:"name"`
	Keywords             []string    `yaml:"keywords"`
	RequiresTag          order.TagID `yaml:"requires_tag,omitempty"`
	RequiresExpeditedTag bool        `yaml:"requires_expedited_tag,omitempty"`
	Destination          string      `yaml:"destination,omitempty"`
	RequiresWeight       bool        `yaml:"requires_weight,omitempty"`
	MaxWeightOz          float64     `yaml:"max_weight_oz,omitempty"`
}

type Rates struct {
	Carriers          []string `yaml:"carriers"`
	DefaultFromPostal string   `yaml:"default_from_postal"`
	DefaultCountry    string   `yaml:"default_country"`
	DefaultWeightOz   float64  `yaml:"default_weight_oz"`
	DefaultDimensions Size     `yaml:"default_dimensions"`
	Confirmation      string   `yaml:"confirmation"`
	DomesticCountries []string `yaml:"domestic_countries"`
	Rules             []Rule   `yaml:"rules"`
}

type SKURule struct {
	Tag         order.TagID `yaml:"tag"`
	Markers     []string    `yaml:"markers"`
	MinQuantity int         `yaml:"min_quantity,omitempty"`
	MaxQuantity int         `yaml:"max_quantity,omitempty"`
}

type ProductNameRule struct {
	Tag     order.TagID `yaml:"tag"`
	Markers []string    `yaml:"markers"`
}

type Batch struct {
	SKURules         []SKURule         `yaml:"sku_rules"`
	ProductNameRules []ProductNameRule `yaml:"product_name_rules"`
}

type Split struct {
	NoteMarker string `yaml:"note_marker"`
}

// Policy represents the effective ruleset.
type Policy struct {
	Tags       Tags                               `yaml:"tags"`
	Classifier Classifier                         `yaml:"classifier"`
	Packaging  Packaging                          `yaml:"packaging"`
	Rates      Rates                              `yaml:"rates"`
	Billing    map[string]shipment.BillingAccount `yaml:"billing"`
	Batch      Batch                              `yaml:"batch"`
	Split      Split                              `yaml:"split"`
}

// Default returns the embedded policy.
func Default() (Policy, error) {
	p, err := parse(defaultPolicyData)
	if err != nil {
		return Policy{}, fmt.Errorf("parse default policy: %w", err)
	}
	return p, nil
}

// Load returns the effective policy, merging defaults with the file at path. An empty
// path yields the defaults; a path that does not exist is an error.
func Load(path string) (Policy, error) {
	base, err := Default()
	if err != nil {
		return Policy{}, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Policy{}, fmt.Errorf("read policy: %w", err)
		}
		override, err := parse(data)
		if err != nil {
			return Policy{}, fmt.Errorf("parse policy %s: %w", path, err)
		}
		merge(&base, override)
	}

	if err := base.Validate(); err != nil {
		return Policy{}, err
	}
	return base, nil
}

func parse(data []byte) (Policy, error) {
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Policy{}, err
	}
	return p, nil
}

func merge(base *Policy, override Policy) {
	setIfNonZero(&base.Tags.EdgeCase, override.Tags.EdgeCase)
	setIfNonZero(&base.Tags.Processed, override.Tags.Processed)
	setIfNonZero(&base.Tags.Priority, override.Tags.Priority)
	setIfNonZero(&base.Tags.Expedited, override.Tags.Expedited)
	setIfNonZero(&base.Tags.SplitShipment, override.Tags.SplitShipment)
	setIfNonEmpty(&base.Tags.Excluded, override.Tags.Excluded)
	base.Tags.Names = mergeMaps(base.Tags.Names, override.Tags.Names)

	setIfNonEmpty(&base.Classifier.NewSKUs, override.Classifier.NewSKUs)
	setIfNonZero(&base.Classifier.NoLocationPlaceholder, override.Classifier.NoLocationPlaceholder)

	setIfNonZero(&base.Packaging.DefaultWeightOz, override.Packaging.DefaultWeightOz)
	base.Packaging.SKUWeightsOz = mergeMaps(base.Packaging.SKUWeightsOz, override.Packaging.SKUWeightsOz)
	setIfNonEmpty(&base.Packaging.Boxes, override.Packaging.Boxes)
	setIfNonEmpty(&base.Packaging.LargeSKUPrefixes, override.Packaging.LargeSKUPrefixes)
	setIfNonEmpty(&base.Packaging.LargeSKUs, override.Packaging.LargeSKUs)

	setIfNonEmpty(&base.Rates.Carriers, override.Rates.Carriers)
	setIfNonZero(&base.Rates.DefaultFromPostal, override.Rates.DefaultFromPostal)
	setIfNonZero(&base.Rates.DefaultCountry, override.Rates.DefaultCountry)
	setIfNonZero(&base.Rates.DefaultWeightOz, override.Rates.DefaultWeightOz)
	setIfNonZero(&base.Rates.DefaultDimensions, override.Rates.DefaultDimensions)
	setIfNonZero(&base.Rates.Confirmation, override.Rates.Confirmation)
	setIfNonEmpty(&base.Rates.DomesticCountries, override.Rates.DomesticCountries)
	setIfNonEmpty(&base.Rates.Rules, override.Rates.Rules)

	base.Billing = mergeMaps(base.Billing, override.Billing)

	setIfNonEmpty(&base.Batch.SKURules, override.Batch.SKURules)
	setIfNonEmpty(&base.Batch.ProductNameRules, override.Batch.ProductNameRules)

	setIfNonZero(&base.Split.NoteMarker, override.Split.NoteMarker)
}

func setIfNonZero[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}

func setIfNonEmpty[T any](dst *[]T, v []T) {
	if len(v) > 0 {
		*dst = v
	}
}

func mergeMaps[K comparable, V any](base, override map[K]V) map[K]V {
	if base == nil {
		base = make(map[K]V, len(override))
	}
	maps.Copy(base, override)
	return base
}

// Validate checks that the policy can drive a run.
func (p Policy) Validate() error {
	var errList []error
	required := []struct {
		name string
		tag  order.TagID
	}{
		{"tags.edge_case", p.Tags.EdgeCase},
		{"tags.processed", p.Tags.Processed},
		{"tags.priority", p.Tags.Priority},
		{"tags.split_shipment", p.Tags.SplitShipment},
	}
	for _, r := range required {
		if err := r.tag.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("%s: %w", r.name, err))
		}
	}
	if p.Tags.EdgeCase == p.Tags.Processed && p.Tags.EdgeCase != 0 {
		errList = append(errList, errors.New("tags.edge_case and tags.processed must differ"))
	}
	if len(p.Packaging.Boxes) == 0 {
		errList = append(errList, errors.New("packaging.boxes must not be empty"))
	}
	if len(p.Rates.Carriers) == 0 {
		errList = append(errList, errors.New("rates.carriers must not be empty"))
	}
	for i, r := range p.Rates.Rules {
		switch r.Destination {
		case "", "domestic", "international":
		default:
			errList = append(errList, fmt.Errorf("rates.rules[%d]: unknown destination %q", i, r.Destination))
		}
		if len(r.Keywords) == 0 {
			errList = append(errList, fmt.Errorf("rates.rules[%d]: keywords must not be empty", i))
		}
		if r.RequiresExpeditedTag && r.RequiresTag != 0 {
			errList = append(errList, fmt.Errorf("rates.rules[%d]: requires_tag and requires_expedited_tag are exclusive", i))
		}
		if r.RequiresExpeditedTag && p.Tags.Expedited == 0 {
			errList = append(errList, fmt.Errorf("rates.rules[%d]: requires_expedited_tag needs tags.expedited", i))
		}
	}
	for carrier, acct := range p.Billing {
		if acct.AccountNumber == "" {
			errList = append(errList, fmt.Errorf("billing.%s: account_number is required", carrier))
		}
	}
	return errors.Join(errList...)
}

// ToYAML renders the policy to YAML.
func (p Policy) ToYAML() (string, error) {
	out, err := yaml.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DefaultYAML returns the embedded default policy YAML.
func DefaultYAML() string {
	return string(defaultPolicyData)
}
