package inventory

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetMaintenanceCreate(t *testing.T) {
	svc, fc := newTestService()
	fc.assets.maintResult = json.RawMessage(`{"id":55,"title":"screen swap"}`)

	out := svc.AssetMaintenance(context.Background(), MaintenanceRequest{
		Action:  "create",
		AssetID: 5,
		Data: &MaintenanceFields{
			AssetImprovement: "repair",
			SupplierID:       2,
			Title:            "screen swap",
			Cost:             floatp(129.99),
		},
	})

	res, ok := out.(MaintenanceResult)
	require.True(t, ok, "got %T", out)
	assert.True(t, res.Success)
	assert.Equal(t, "create", res.Action)
	assert.Equal(t, 5, res.AssetID)
	assert.Equal(t, "Maintenance record created successfully", res.Message)
	assert.JSONEq(t, `{"id":55,"title":"screen swap"}`, string(res.Maintenance))

	assert.Equal(t, map[string]any{
		"asset_id":          5,
		"asset_improvement": "repair",
		"supplier_id":       2,
		"title":             "screen swap",
		"cost":              129.99,
	}, fc.assets.maintWith)
}

func TestAssetMaintenanceValidation(t *testing.T) {
	valid := MaintenanceFields{AssetImprovement: "repair", SupplierID: 2, Title: "screen swap"}

	tests := []struct {
		name string
		req  MaintenanceRequest
		want string
	}{
		{
			name: "missing asset id",
			req:  MaintenanceRequest{Action: "create", Data: &valid},
			want: "asset_id is required for create action",
		},
		{
			name: "missing data",
			req:  MaintenanceRequest{Action: "create", AssetID: 5},
			want: "maintenance_data is required for create action",
		},
		{
			name: "missing improvement type",
			req:  MaintenanceRequest{Action: "create", AssetID: 5, Data: &MaintenanceFields{SupplierID: 2, Title: "t"}},
			want: "asset_improvement is required to create a maintenance record",
		},
		{
			name: "missing supplier",
			req:  MaintenanceRequest{Action: "create", AssetID: 5, Data: &MaintenanceFields{AssetImprovement: "repair", Title: "t"}},
			want: "supplier_id is required to create a maintenance record",
		},
		{
			name: "missing title",
			req:  MaintenanceRequest{Action: "create", AssetID: 5, Data: &MaintenanceFields{AssetImprovement: "repair", SupplierID: 2}},
			want: "title is required to create a maintenance record",
		},
		{
			name: "unsupported action",
			req:  MaintenanceRequest{Action: "delete", AssetID: 5, Data: &valid},
			want: "action must be one of create",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, fc := newTestService()
			out := svc.AssetMaintenance(context.Background(), tt.req)
			env := failure(t, out)
			assert.Equal(t, tt.want, env.Error)
			assert.Zero(t, fc.calls())
		})
	}
}
