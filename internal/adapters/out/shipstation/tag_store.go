package shipstation

import (
	"context"
	"net/http"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

var _ ports.TagStore = (*TagStore)(nil)

// TagStore adds and removes order tags through the platform's tag endpoints.
type TagStore struct {
	client *Client
}

func NewTagStore(client *Client) *TagStore {
	return &TagStore{client: client}
}

func (s *TagStore) AddTag(ctx context.Context, id order.ID, tag order.TagID) error {
	body := tagRequestDTO{OrderID: int64(id), TagID: int64(tag)}
	return s.client.do(ctx, "add tag", http.MethodPost, "/orders/addtag", nil, body, nil)
}

func (s *TagStore) RemoveTag(ctx context.Context, id order.ID, tag order.TagID) error {
	body := tagRequestDTO{OrderID: int64(id), TagID: int64(tag)}
	return s.client.do(ctx, "remove tag", http.MethodPost, "/orders/removetag", nil, body, nil)
}
