package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipeops/snipeit-mcp/internal/inventory"
	"github.com/snipeops/snipeit-mcp/internal/snipeit"
)

func testService() *inventory.Service {
	factory := func() (inventory.Client, error) {
		return nil, &snipeit.Error{Message: "not configured"}
	}
	return inventory.NewService(factory, nil)
}

func TestNewServerRegistersTools(t *testing.T) {
	s := NewServer(testService(), "test")
	require.NotNil(t, s)
	require.NotNil(t, s.server)
}

func TestHandlersReturnEnvelopeNotProtocolError(t *testing.T) {
	s := NewServer(testService(), "test")

	// A failed dispatch is data, not an MCP error: the envelope travels in
	// the result and the protocol error stays nil.
	res, out, err := s.handleManageAssets(context.Background(), nil, ManageAssetsArgs{Action: "list"})
	require.NoError(t, err)
	assert.Nil(t, res)

	env, ok := out.(inventory.Envelope)
	require.True(t, ok, "got %T", out)
	assert.False(t, env.Success)
	assert.Equal(t, "Snipe-IT error: not configured", env.Error)
}

func TestHandlerValidationShortCircuits(t *testing.T) {
	s := NewServer(testService(), "test")

	_, out, err := s.handleAssetLicenses(context.Background(), nil, AssetLicensesArgs{})
	require.NoError(t, err)
	env, ok := out.(inventory.Envelope)
	require.True(t, ok, "got %T", out)
	assert.Equal(t, "asset_id is required", env.Error)
}

func TestIntOr(t *testing.T) {
	assert.Equal(t, 50, intOr(nil, 50))
	v := 10
	assert.Equal(t, 10, intOr(&v, 50))
	zero := 0
	assert.Equal(t, 0, intOr(&zero, 50), "an explicit zero is not the default")
}
