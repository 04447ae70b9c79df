package inventory

import (
	"context"

	"github.com/snipeops/snipeit-mcp/internal/snipeit"
)

// ConsumablesRequest is the input to the manage_consumables dispatcher.
type ConsumablesRequest struct {
	Action       string            `json:"action" validate:"required,oneof=create get list update delete"`
	ConsumableID int               `json:"consumable_id"`
	Data         *ConsumableFields `json:"consumable_data"`
	Limit        int               `json:"limit"`
	Offset       int               `json:"offset"`
	Search       string            `json:"search"`
	Sort         string            `json:"sort"`
	Order        string            `json:"order" validate:"omitempty,oneof=asc desc"`
}

type (
	ConsumableCreateResult struct {
		Envelope
		Consumable *ConsumableSummary `json:"consumable"`
	}
	ConsumableGetResult struct {
		Envelope
		Consumable *ConsumableDetail `json:"consumable"`
	}
	ConsumableListResult struct {
		Envelope
		Count       int                 `json:"count"`
		Consumables []ConsumableSummary `json:"consumables"`
	}
	ConsumableUpdateResult struct {
		Envelope
		Consumable *ConsumableSummary `json:"consumable"`
	}
	ConsumableDeleteResult struct {
		Envelope
		ConsumableID int    `json:"consumable_id"`
		Message      string `json:"message"`
	}
)

// ManageConsumables dispatches consumable CRUD.
func (s *Service) ManageConsumables(ctx context.Context, req ConsumablesRequest) (out any) {
	logger := s.logger("manage_consumables", req.Action)
	defer func() {
		if env, panicked := recovered(logger, recover()); panicked {
			out = env
		}
	}()

	res, err := s.manageConsumables(ctx, req)
	if err != nil {
		return mapError(logger, "Consumable", err)
	}
	return res
}

func (s *Service) manageConsumables(ctx context.Context, req ConsumablesRequest) (any, error) {
	if err := s.checkValues(req); err != nil {
		return nil, err
	}
	if err := validateConsumablesRequest(req); err != nil {
		return nil, err
	}

	client, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer client.Close()
	consumables := client.Consumables()

	switch req.Action {
	case "create":
		c, err := consumables.Create(ctx, req.Data.payload())
		if err != nil {
			return nil, err
		}
		return ConsumableCreateResult{Envelope: ok("create"), Consumable: consumableSummary(c)}, nil

	case "get":
		c, err := consumables.Get(ctx, req.ConsumableID)
		if err != nil {
			return nil, err
		}
		return ConsumableGetResult{Envelope: ok("get"), Consumable: consumableDetail(c)}, nil

	case "list":
		rows, err := consumables.List(ctx, snipeit.ListOptions{
			Limit:  req.Limit,
			Offset: req.Offset,
			Search: req.Search,
			Sort:   req.Sort,
			Order:  req.Order,
		})
		if err != nil {
			return nil, err
		}
		out := make([]ConsumableSummary, 0, len(rows))
		for i := range rows {
			out = append(out, consumableRow(&rows[i]))
		}
		return ConsumableListResult{Envelope: ok("list"), Count: len(out), Consumables: out}, nil

	case "update":
		c, err := consumables.Patch(ctx, req.ConsumableID, req.Data.payload())
		if err != nil {
			return nil, err
		}
		return ConsumableUpdateResult{Envelope: ok("update"), Consumable: consumableSummary(c)}, nil

	default: // delete
		if err := consumables.Delete(ctx, req.ConsumableID); err != nil {
			return nil, err
		}
		return ConsumableDeleteResult{
			Envelope:     ok("delete"),
			ConsumableID: req.ConsumableID,
			Message:      "Consumable deleted successfully",
		}, nil
	}
}

func validateConsumablesRequest(req ConsumablesRequest) error {
	switch req.Action {
	case "create":
		if req.Data == nil {
			return argErrorf("consumable_data is required for create action")
		}
		// Qty may legitimately be zero; it only has to be supplied.
		if req.Data.Name == nil || *req.Data.Name == "" ||
			req.Data.Qty == nil ||
			!present(req.Data.CategoryID) {
			return argErrorf("name, qty, and category_id are required to create a consumable")
		}
	case "get":
		if req.ConsumableID == 0 {
			return argErrorf("consumable_id is required for get action")
		}
	case "update":
		if req.ConsumableID == 0 {
			return argErrorf("consumable_id is required for update action")
		}
		if req.Data == nil {
			return argErrorf("consumable_data is required for update action")
		}
	case "delete":
		if req.ConsumableID == 0 {
			return argErrorf("consumable_id is required for delete action")
		}
	}
	return nil
}
