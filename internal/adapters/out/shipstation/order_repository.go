package shipstation

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository reads orders from the platform.
type OrderRepository struct {
	client *Client
}

func NewOrderRepository(client *Client) *OrderRepository {
	return &OrderRepository{client: client}
}

// ListOrders fetches every page of orders matching q. Records that cannot be mapped
// are skipped with a warning so one corrupt order does not hide the rest of the store.
func (r *OrderRepository) ListOrders(ctx context.Context, q ports.OrderQuery) ([]*order.Order, error) {
	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = ports.DefaultPageSize
	}

	var orders []*order.Order
	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("pageSize", strconv.Itoa(pageSize))
		params.Set("page", strconv.Itoa(page))
		if q.StoreID > 0 {
			params.Set("storeId", strconv.FormatInt(q.StoreID, 10))
		}
		if q.Status != "" {
			params.Set("orderStatus", string(q.Status))
		}

		var resp ordersPageDTO
		if err := r.client.do(ctx, "list orders", http.MethodGet, "/orders", params, nil, &resp); err != nil {
			return nil, err
		}

		for _, dto := range resp.Orders {
			o, err := dto.toDomain()
			if err != nil {
				r.client.logger.Warn("skipping unreadable order", "order_id", dto.OrderID, "error", err)
				continue
			}
			orders = append(orders, o)
		}

		if page >= resp.Pages {
			break
		}
	}
	return orders, nil
}

// Get fetches one order. A 404 is reported as errs.ObjectNotFoundError.
func (r *OrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	var dto OrderDTO
	path := "/orders/" + strconv.FormatInt(int64(id), 10)
	if err := r.client.do(ctx, "get order", http.MethodGet, path, nil, nil, &dto); err != nil {
		var callErr *errs.RemoteCallError
		if errors.As(err, &callErr) && callErr.StatusCode == http.StatusNotFound {
			return nil, errs.NewObjectNotFoundErrorWithCause("order", id, err)
		}
		return nil, err
	}
	return dto.toDomain()
}
