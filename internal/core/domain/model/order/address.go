package order

import (
	"slices"
	"strings"
)

// Address is a ship-to address. Residential is nil when the platform has not validated it.
type Address struct {
	Name        string
	Company     string
	Street1     string
	Street2     string
	Street3     string
	City        string
	State       string
	PostalCode  string
	Country     string
	Phone       string
	Residential *bool
}

// Key returns a comparable form of the address. Two orders with the same key ship to
// the same place. Comparison ignores case and surrounding whitespace.
func (a Address) Key() string {
	parts := []string{a.Name, a.Company, a.Street1, a.Street2, a.Street3, a.City, a.State, a.PostalCode, a.Country}
	for i, p := range parts {
		parts[i] = strings.ToUpper(strings.TrimSpace(p))
	}
	return strings.Join(parts, "|")
}

// IsDomestic reports whether the address country is one of domestic (case-insensitive).
// An empty country is treated as fallback.
func (a Address) IsDomestic(domestic []string, fallback string) bool {
	country := strings.ToUpper(strings.TrimSpace(a.Country))
	if country == "" {
		country = strings.ToUpper(fallback)
	}
	return slices.ContainsFunc(domestic, func(d string) bool {
		return strings.EqualFold(d, country)
	})
}
