package inventory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipeops/snipeit-mcp/internal/snipeit"
)

func TestMapError(t *testing.T) {
	logger := log.New(io.Discard)

	tests := []struct {
		name   string
		entity string
		err    error
		want   string
	}{
		{
			name:   "local validation verbatim",
			entity: "Asset",
			err:    argErrorf("asset_id is required for get action"),
			want:   "asset_id is required for get action",
		},
		{
			name:   "not found with entity noun",
			entity: "Asset",
			err:    &snipeit.NotFoundError{Resource: "asset", Message: "asset 9"},
			want:   "Asset not found: asset 9",
		},
		{
			name:   "not found without entity noun",
			entity: "",
			err:    &snipeit.NotFoundError{Resource: "file", Message: "file 9"},
			want:   "Not found: file 9",
		},
		{
			name:   "authentication",
			entity: "Asset",
			err:    &snipeit.AuthenticationError{Message: "bad token"},
			want:   "Authentication failed: bad token",
		},
		{
			name:   "validation",
			entity: "Asset",
			err:    &snipeit.ValidationError{Message: "asset_tag taken"},
			want:   "Validation error: asset_tag taken",
		},
		{
			name:   "service",
			entity: "Asset",
			err:    &snipeit.Error{StatusCode: 503, Message: "service unavailable"},
			want:   "Snipe-IT error: HTTP 503: service unavailable",
		},
		{
			name:   "wrapped taxonomy error still classified",
			entity: "Asset",
			err:    fmt.Errorf("resolve asset: %w", &snipeit.NotFoundError{Resource: "asset", Message: "asset 9"}),
			want:   "Asset not found: resolve asset: asset 9",
		},
		{
			name:   "anything else is unexpected",
			entity: "Asset",
			err:    errors.New("broken pipe"),
			want:   "Unexpected error: broken pipe",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := mapError(logger, tt.entity, tt.err)
			assert.False(t, env.Success)
			assert.Equal(t, tt.want, env.Error)
		})
	}
}

func TestRecovered(t *testing.T) {
	logger := log.New(io.Discard)

	env, panicked := recovered(logger, nil)
	assert.False(t, panicked)
	assert.Empty(t, env.Error)

	env, panicked = recovered(logger, "nil map write")
	assert.True(t, panicked)
	assert.False(t, env.Success)
	assert.Equal(t, "Unexpected error: nil map write", env.Error)
}

func TestDispatcherContainsPanic(t *testing.T) {
	svc := NewService(func() (Client, error) {
		panic("factory exploded")
	}, nil)

	out := svc.ManageAssets(context.Background(), AssetsRequest{Action: "list"})

	env, ok := out.(Envelope)
	require.True(t, ok, "got %T", out)
	assert.False(t, env.Success)
	assert.Equal(t, "Unexpected error: factory exploded", env.Error)
}
