package inventory

import (
	"context"
	"fmt"

	"github.com/snipeops/snipeit-mcp/internal/snipeit"
)

// OperationsRequest is the input to the asset_operations dispatcher.
type OperationsRequest struct {
	Action   string          `json:"action" validate:"required,oneof=checkout checkin audit restore"`
	AssetID  int             `json:"asset_id"`
	Checkout *CheckoutFields `json:"checkout_data"`
	Checkin  *CheckinFields  `json:"checkin_data"`
	Audit    *AuditFields    `json:"audit_data"`
}

// OperationResult is returned by every state-transition action. The message
// is part of the contract: it names the action performed and, for checkout,
// the destination type and ID.
type OperationResult struct {
	Envelope
	AssetID int              `json:"asset_id"`
	Message string           `json:"message"`
	Asset   *TransitionAsset `json:"asset"`
}

// AssetOperations dispatches the state transitions: each resolves the asset
// first, then performs exactly one transition call on it.
func (s *Service) AssetOperations(ctx context.Context, req OperationsRequest) (out any) {
	logger := s.logger("asset_operations", req.Action)
	defer func() {
		if env, panicked := recovered(logger, recover()); panicked {
			out = env
		}
	}()

	res, err := s.assetOperations(ctx, req)
	if err != nil {
		return mapError(logger, "Asset", err)
	}
	return res
}

func (s *Service) assetOperations(ctx context.Context, req OperationsRequest) (any, error) {
	if err := s.checkValues(req); err != nil {
		return nil, err
	}
	if err := validateOperationsRequest(req); err != nil {
		return nil, err
	}

	client, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer client.Close()
	assets := client.Assets()

	if _, err := assets.Get(ctx, req.AssetID); err != nil {
		return nil, err
	}

	var (
		updated *snipeit.Asset
		message string
	)
	switch req.Action {
	case "checkout":
		updated, err = assets.Checkout(ctx, req.AssetID, req.Checkout.payload())
		message = fmt.Sprintf("Asset checked out to %s %d", req.Checkout.CheckoutToType, req.Checkout.AssignedToID)
	case "checkin":
		updated, err = assets.Checkin(ctx, req.AssetID, req.Checkin.payload())
		message = "Asset checked in successfully"
	case "audit":
		updated, err = assets.Audit(ctx, req.AssetID, req.Audit.payload())
		message = "Asset audited successfully"
	default: // restore
		updated, err = assets.Restore(ctx, req.AssetID)
		message = "Asset restored successfully"
	}
	if err != nil {
		return nil, err
	}

	return OperationResult{
		Envelope: ok(req.Action),
		AssetID:  req.AssetID,
		Message:  message,
		Asset:    transitionAsset(updated, req.Action == "checkout"),
	}, nil
}

func validateOperationsRequest(req OperationsRequest) error {
	if req.AssetID == 0 {
		return argErrorf("asset_id is required for %s action", req.Action)
	}
	if req.Action == "checkout" {
		if req.Checkout == nil {
			return argErrorf("checkout_data is required for checkout action")
		}
		if req.Checkout.CheckoutToType == "" {
			return argErrorf("checkout_to_type is required for checkout action")
		}
		if req.Checkout.AssignedToID == 0 {
			return argErrorf("assigned_to_id is required for checkout action")
		}
	}
	return nil
}
