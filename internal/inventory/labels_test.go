package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipeops/snipeit-mcp/internal/snipeit"
)

func TestAssetLabelsFromTags(t *testing.T) {
	svc, fc := newTestService()

	out := svc.AssetLabels(context.Background(), LabelsRequest{
		AssetTags: []string{"TAG-1", "TAG-2"},
		SavePath:  "/tmp/labels.pdf",
	})

	res, ok := out.(LabelsResult)
	require.True(t, ok, "got %T", out)
	assert.True(t, res.Success)
	assert.Equal(t, "generate_labels", res.Action)
	assert.Equal(t, "/tmp/labels.pdf", res.SavedTo)
	assert.Equal(t, "Labels generated and saved to /tmp/labels.pdf", res.Message)

	// Tags pass through untouched, with no lookups.
	assert.Equal(t, []string{"TAG-1", "TAG-2"}, fc.assets.labelsTags)
	assert.Empty(t, fc.assets.lookups)
}

func TestAssetLabelsDefaultPath(t *testing.T) {
	svc, fc := newTestService()

	out := svc.AssetLabels(context.Background(), LabelsRequest{AssetTags: []string{"TAG-1"}})

	res, ok := out.(LabelsResult)
	require.True(t, ok, "got %T", out)
	assert.Equal(t, DefaultLabelPath, res.SavedTo)
	assert.Equal(t, DefaultLabelPath, fc.assets.labelsPath)
}

func TestAssetLabelsResolvesIDs(t *testing.T) {
	svc, fc := newTestService()
	fc.assets.asset = &snipeit.Asset{ID: 1, AssetTag: strp("TAG-1")}

	out := svc.AssetLabels(context.Background(), LabelsRequest{AssetIDs: []int{1, 1}})

	res, ok := out.(LabelsResult)
	require.True(t, ok, "got %T", out)
	assert.True(t, res.Success)
	assert.Equal(t, []int{1, 1}, fc.assets.gotIDs)
	assert.Equal(t, []string{"TAG-1", "TAG-1"}, fc.assets.labelsTags)
}

func TestAssetLabelsFailFastOnMissingID(t *testing.T) {
	svc, fc := newTestService()
	fc.assets.getErrs = map[int]error{2: &snipeit.NotFoundError{Resource: "asset", Message: "asset 2"}}

	out := svc.AssetLabels(context.Background(), LabelsRequest{AssetIDs: []int{1, 2, 3}})

	env := failure(t, out)
	assert.Equal(t, "Asset not found: asset 2", env.Error)
	// Resolution stops at the missing asset and nothing is generated.
	assert.Equal(t, []int{1, 2}, fc.assets.gotIDs)
	assert.Zero(t, fc.assets.labelsCalls)
}

func TestAssetLabelsRequiresIdentifiers(t *testing.T) {
	svc, fc := newTestService()

	out := svc.AssetLabels(context.Background(), LabelsRequest{SavePath: "/tmp/labels.pdf"})

	env := failure(t, out)
	assert.Equal(t, "Either asset_ids or asset_tags must be provided", env.Error)
	assert.Zero(t, fc.calls())
}
