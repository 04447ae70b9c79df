package inventory

import (
	"context"
	"encoding/json"
)

// LicensesRequest is the input to the asset_licenses dispatcher.
type LicensesRequest struct {
	AssetID int `json:"asset_id"`
}

// LicensesResult wraps the license listing, passed through unvalidated. An
// empty listing is a valid result.
type LicensesResult struct {
	Envelope
	AssetID  int             `json:"asset_id"`
	Licenses json.RawMessage `json:"licenses"`
}

// AssetLicenses lists the licenses checked out to an asset. Read-only.
func (s *Service) AssetLicenses(ctx context.Context, req LicensesRequest) (out any) {
	logger := s.logger("asset_licenses", "")
	defer func() {
		if env, panicked := recovered(logger, recover()); panicked {
			out = env
		}
	}()

	res, err := s.assetLicenses(ctx, req)
	if err != nil {
		return mapError(logger, "Asset", err)
	}
	return res
}

func (s *Service) assetLicenses(ctx context.Context, req LicensesRequest) (any, error) {
	if req.AssetID == 0 {
		return nil, argErrorf("asset_id is required")
	}

	client, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	licenses, err := client.Assets().Licenses(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	return LicensesResult{
		Envelope: Envelope{Success: true},
		AssetID:  req.AssetID,
		Licenses: licenses,
	}, nil
}
