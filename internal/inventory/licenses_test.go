package inventory

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetLicenses(t *testing.T) {
	svc, fc := newTestService()
	fc.assets.licensesResult = json.RawMessage(`[{"id":9,"name":"Office"}]`)

	out := svc.AssetLicenses(context.Background(), LicensesRequest{AssetID: 5})

	res, ok := out.(LicensesResult)
	require.True(t, ok, "got %T", out)
	assert.True(t, res.Success)
	assert.Empty(t, res.Action, "licenses tool has no action discriminator")
	assert.Equal(t, 5, res.AssetID)
	assert.JSONEq(t, `[{"id":9,"name":"Office"}]`, string(res.Licenses))
	assert.Equal(t, 5, fc.assets.licensesID)
}

func TestAssetLicensesRequiresAssetID(t *testing.T) {
	svc, fc := newTestService()

	out := svc.AssetLicenses(context.Background(), LicensesRequest{})

	env := failure(t, out)
	assert.Equal(t, "asset_id is required", env.Error)
	assert.Zero(t, fc.calls())
}
