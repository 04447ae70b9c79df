package inventory

import (
	"context"

	"github.com/snipeops/snipeit-mcp/internal/snipeit"
)

// AssetsRequest is the input to the manage_assets dispatcher. Zero-valued
// identifiers mean "not supplied".
type AssetsRequest struct {
	Action   string       `json:"action" validate:"required,oneof=create get list update delete"`
	AssetID  int          `json:"asset_id"`
	AssetTag string       `json:"asset_tag"`
	Serial   string       `json:"serial"`
	Data     *AssetFields `json:"asset_data"`
	Limit    int          `json:"limit"`
	Offset   int          `json:"offset"`
	Search   string       `json:"search"`
	Sort     string       `json:"sort"`
	Order    string       `json:"order" validate:"omitempty,oneof=asc desc"`
}

// Per-action result shapes. Each embeds the Envelope so the wire form is
// always {success, action?, ...data, error?}.
type (
	AssetCreateResult struct {
		Envelope
		Asset *AssetSummary `json:"asset"`
	}
	AssetGetResult struct {
		Envelope
		Asset *AssetDetail `json:"asset"`
	}
	AssetListResult struct {
		Envelope
		Count  int            `json:"count"`
		Assets []AssetSummary `json:"assets"`
	}
	AssetUpdateResult struct {
		Envelope
		Asset *AssetSummary `json:"asset"`
	}
	AssetDeleteResult struct {
		Envelope
		AssetID int    `json:"asset_id"`
		Message string `json:"message"`
	}
)

// ManageAssets dispatches asset CRUD. The returned value is always one of
// the result shapes above on success, or a bare failure Envelope.
func (s *Service) ManageAssets(ctx context.Context, req AssetsRequest) (out any) {
	logger := s.logger("manage_assets", req.Action)
	defer func() {
		if env, panicked := recovered(logger, recover()); panicked {
			out = env
		}
	}()

	res, err := s.manageAssets(ctx, req)
	if err != nil {
		return mapError(logger, "Asset", err)
	}
	return res
}

func (s *Service) manageAssets(ctx context.Context, req AssetsRequest) (any, error) {
	if err := s.checkValues(req); err != nil {
		return nil, err
	}
	if err := validateAssetsRequest(req); err != nil {
		return nil, err
	}

	client, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer client.Close()
	assets := client.Assets()

	switch req.Action {
	case "create":
		a, err := assets.Create(ctx, req.Data.payload())
		if err != nil {
			return nil, err
		}
		return AssetCreateResult{Envelope: ok("create"), Asset: assetSummary(a)}, nil

	case "get":
		var a *snipeit.Asset
		// Tag takes priority over serial, serial over ID, when several
		// identifiers are supplied.
		switch {
		case req.AssetTag != "":
			a, err = assets.GetByTag(ctx, req.AssetTag)
		case req.Serial != "":
			a, err = assets.GetBySerial(ctx, req.Serial)
		default:
			a, err = assets.Get(ctx, req.AssetID)
		}
		if err != nil {
			return nil, err
		}
		return AssetGetResult{Envelope: ok("get"), Asset: assetDetail(a)}, nil

	case "list":
		rows, err := assets.List(ctx, snipeit.ListOptions{
			Limit:  req.Limit,
			Offset: req.Offset,
			Search: req.Search,
			Sort:   req.Sort,
			Order:  req.Order,
		})
		if err != nil {
			return nil, err
		}
		out := make([]AssetSummary, 0, len(rows))
		for i := range rows {
			out = append(out, assetRow(&rows[i]))
		}
		return AssetListResult{Envelope: ok("list"), Count: len(out), Assets: out}, nil

	case "update":
		a, err := assets.Patch(ctx, req.AssetID, req.Data.payload())
		if err != nil {
			return nil, err
		}
		return AssetUpdateResult{Envelope: ok("update"), Asset: assetSummary(a)}, nil

	default: // delete
		if err := assets.Delete(ctx, req.AssetID); err != nil {
			return nil, err
		}
		return AssetDeleteResult{
			Envelope: ok("delete"),
			AssetID:  req.AssetID,
			Message:  "Asset deleted successfully",
		}, nil
	}
}

// validateAssetsRequest enforces the per-action required fields before any
// collaborator call.
func validateAssetsRequest(req AssetsRequest) error {
	switch req.Action {
	case "create":
		if req.Data == nil {
			return argErrorf("asset_data is required for create action")
		}
		if !present(req.Data.StatusID) || !present(req.Data.ModelID) {
			return argErrorf("status_id and model_id are required to create an asset")
		}
	case "get":
		if req.AssetTag == "" && req.Serial == "" && req.AssetID == 0 {
			return argErrorf("One of asset_id, asset_tag, or serial is required for get action")
		}
	case "update":
		if req.AssetID == 0 {
			return argErrorf("asset_id is required for update action")
		}
		if req.Data == nil {
			return argErrorf("asset_data is required for update action")
		}
	case "delete":
		if req.AssetID == 0 {
			return argErrorf("asset_id is required for delete action")
		}
	}
	return nil
}

// present reports whether an optional foreign key was supplied with a
// usable (non-zero) value.
func present(v *int) bool {
	return v != nil && *v != 0
}
