// Package catalog holds the read-only reference data triage looks up: products and stores.
package catalog

import "strings"

// Product is one catalog product.
type Product struct {
	SKU  string `json:"sku"`
	Name string `json:"name"`
}

// Store is one sales channel configured on the shipping platform.
type Store struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Marketplace string `json:"marketplace,omitempty"`
	Active      bool   `json:"active"`
}

// Products indexes products by upper-cased SKU.
type Products map[string]Product

// NewProducts indexes list. Later duplicates win.
func NewProducts(list []Product) Products {
	out := make(Products, len(list))
	for _, p := range list {
		if p.SKU == "" {
			continue
		}
		out[strings.ToUpper(p.SKU)] = p
	}
	return out
}

// NameOf returns the product name for sku, or "" when the SKU is unknown.
func (p Products) NameOf(sku string) string {
	return p[strings.ToUpper(strings.TrimSpace(sku))].Name
}
