package shipstation

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/ports"
)

const productsPageSize = 500

var (
	_ ports.ProductCatalog = (*Catalog)(nil)
	_ ports.StoreDirectory = (*Catalog)(nil)
)

// Catalog reads products and stores.
type Catalog struct {
	client *Client
}

func NewCatalog(client *Client) *Catalog {
	return &Catalog{client: client}
}

// ListProducts fetches every page of the product list.
func (c *Catalog) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("pageSize", strconv.Itoa(productsPageSize))
		params.Set("page", strconv.Itoa(page))

		var resp productsPageDTO
		if err := c.client.do(ctx, "list products", http.MethodGet, "/products", params, nil, &resp); err != nil {
			return nil, err
		}
		for _, p := range resp.Products {
			products = append(products, p.toDomain())
		}
		if page >= resp.Pages {
			break
		}
	}
	return products, nil
}

func (c *Catalog) ListStores(ctx context.Context) ([]catalog.Store, error) {
	var resp []storeDTO
	if err := c.client.do(ctx, "list stores", http.MethodGet, "/stores", nil, nil, &resp); err != nil {
		return nil, err
	}
	stores := make([]catalog.Store, 0, len(resp))
	for _, s := range resp {
		stores = append(stores, s.toDomain())
	}
	return stores, nil
}
