package inventory

import (
	"context"
	"encoding/json"
)

// MaintenanceRequest is the input to the asset_maintenance dispatcher.
// Create is the only supported action.
type MaintenanceRequest struct {
	Action  string             `json:"action" validate:"required,oneof=create"`
	AssetID int                `json:"asset_id"`
	Data    *MaintenanceFields `json:"maintenance_data"`
}

// MaintenanceResult wraps the created record, passed through unvalidated.
type MaintenanceResult struct {
	Envelope
	AssetID     int             `json:"asset_id"`
	Message     string          `json:"message"`
	Maintenance json.RawMessage `json:"maintenance"`
}

// AssetMaintenance creates a maintenance record for an asset.
func (s *Service) AssetMaintenance(ctx context.Context, req MaintenanceRequest) (out any) {
	logger := s.logger("asset_maintenance", req.Action)
	defer func() {
		if env, panicked := recovered(logger, recover()); panicked {
			out = env
		}
	}()

	res, err := s.assetMaintenance(ctx, req)
	if err != nil {
		return mapError(logger, "Asset", err)
	}
	return res
}

func (s *Service) assetMaintenance(ctx context.Context, req MaintenanceRequest) (any, error) {
	if err := s.checkValues(req); err != nil {
		return nil, err
	}
	if err := validateMaintenanceRequest(req); err != nil {
		return nil, err
	}

	client, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	record, err := client.Assets().CreateMaintenance(ctx, req.Data.payload(req.AssetID))
	if err != nil {
		return nil, err
	}
	return MaintenanceResult{
		Envelope:    ok("create"),
		AssetID:     req.AssetID,
		Message:     "Maintenance record created successfully",
		Maintenance: record,
	}, nil
}

func validateMaintenanceRequest(req MaintenanceRequest) error {
	if req.AssetID == 0 {
		return argErrorf("asset_id is required for create action")
	}
	if req.Data == nil {
		return argErrorf("maintenance_data is required for create action")
	}
	switch {
	case req.Data.AssetImprovement == "":
		return argErrorf("asset_improvement is required to create a maintenance record")
	case req.Data.SupplierID == 0:
		return argErrorf("supplier_id is required to create a maintenance record")
	case req.Data.Title == "":
		return argErrorf("title is required to create a maintenance record")
	}
	return nil
}
