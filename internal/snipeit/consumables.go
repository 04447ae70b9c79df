package snipeit

import (
	"context"
	"net/http"
	"strconv"
)

// ConsumablesService operates on /consumables.
type ConsumablesService struct {
	client *Client
}

// Create creates a consumable from the given sparse field map.
func (s *ConsumablesService) Create(ctx context.Context, fields map[string]any) (*Consumable, error) {
	var c Consumable
	if err := s.client.do(ctx, http.MethodPost, "/consumables", nil, fields, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Get retrieves a consumable by ID.
func (s *ConsumablesService) Get(ctx context.Context, id int) (*Consumable, error) {
	var c Consumable
	if err := s.client.do(ctx, http.MethodGet, "/consumables/"+strconv.Itoa(id), nil, nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// List retrieves a page of consumables.
func (s *ConsumablesService) List(ctx context.Context, opts ListOptions) ([]Consumable, error) {
	var p page[Consumable]
	if err := s.client.do(ctx, http.MethodGet, "/consumables", listQuery(opts), nil, &p); err != nil {
		return nil, err
	}
	return p.Rows, nil
}

// Patch applies a sparse update to a consumable.
func (s *ConsumablesService) Patch(ctx context.Context, id int, fields map[string]any) (*Consumable, error) {
	var c Consumable
	if err := s.client.do(ctx, http.MethodPatch, "/consumables/"+strconv.Itoa(id), nil, fields, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete removes a consumable.
func (s *ConsumablesService) Delete(ctx context.Context, id int) error {
	return s.client.do(ctx, http.MethodDelete, "/consumables/"+strconv.Itoa(id), nil, nil, nil)
}
