package inventory

import "context"

// DefaultLabelPath is where the rendered label PDF is written when the
// caller does not choose a path.
const DefaultLabelPath = "/tmp/asset_labels.pdf"

// LabelsRequest is the input to the asset_labels dispatcher. At least one of
// AssetIDs or AssetTags must be non-empty; IDs are resolved to assets before
// generation, tags pass through as-is.
type LabelsRequest struct {
	AssetIDs  []int    `json:"asset_ids"`
	AssetTags []string `json:"asset_tags"`
	SavePath  string   `json:"save_path"`
}

// LabelsResult reports where the label document was saved.
type LabelsResult struct {
	Envelope
	SavedTo string `json:"saved_to"`
	Message string `json:"message"`
}

// AssetLabels renders a printable label document for the given assets.
func (s *Service) AssetLabels(ctx context.Context, req LabelsRequest) (out any) {
	logger := s.logger("asset_labels", "generate_labels")
	defer func() {
		if env, panicked := recovered(logger, recover()); panicked {
			out = env
		}
	}()

	res, err := s.assetLabels(ctx, req)
	if err != nil {
		return mapError(logger, "Asset", err)
	}
	return res
}

func (s *Service) assetLabels(ctx context.Context, req LabelsRequest) (any, error) {
	if len(req.AssetIDs) == 0 && len(req.AssetTags) == 0 {
		return nil, argErrorf("Either asset_ids or asset_tags must be provided")
	}
	if req.SavePath == "" {
		req.SavePath = DefaultLabelPath
	}

	client, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer client.Close()
	assets := client.Assets()

	tags := req.AssetTags
	if len(req.AssetIDs) > 0 {
		// Resolve every ID before generating anything so a missing asset
		// fails the whole request up front.
		tags = make([]string, 0, len(req.AssetIDs))
		for _, id := range req.AssetIDs {
			a, err := assets.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			if a.AssetTag != nil {
				tags = append(tags, *a.AssetTag)
			}
		}
	}

	saved, err := assets.Labels(ctx, req.SavePath, tags)
	if err != nil {
		return nil, err
	}
	return LabelsResult{
		Envelope: ok("generate_labels"),
		SavedTo:  saved,
		Message:  "Labels generated and saved to " + saved,
	}, nil
}
