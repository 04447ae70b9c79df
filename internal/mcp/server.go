// Package mcp exposes the inventory dispatchers as MCP tools over stdio.
// The registry is orthogonal to the dispatch logic: each handler only maps
// the wire arguments onto a dispatcher request and hands back the envelope.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/snipeops/snipeit-mcp/internal/inventory"
)

const (
	defaultLimit  = 50
	defaultOffset = 0
)

// Server wraps the MCP server with the inventory dispatch service.
type Server struct {
	inv    *inventory.Service
	server *mcp.Server
}

// NewServer creates the Snipe-IT MCP server.
func NewServer(inv *inventory.Service, version string) *Server {
	s := &Server{inv: inv}

	impl := &mcp.Implementation{
		Name:    "snipeit-mcp",
		Version: version,
	}

	s.server = mcp.NewServer(impl, nil)
	s.registerTools()

	return s
}

// Run starts the MCP server on stdio.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func boolp(v bool) *bool { return &v }

// registerTools adds all inventory tools to the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "manage_assets",
		Description: "Manage Snipe-IT assets with CRUD operations: create (requires asset_data with " +
			"status_id and model_id), get (by asset_id, asset_tag, or serial), list (with pagination " +
			"and filtering), update (requires asset_id and asset_data), delete (requires asset_id).",
		Annotations: &mcp.ToolAnnotations{
			DestructiveHint: boolp(true),
		},
	}, s.handleManageAssets)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "asset_operations",
		Description: "Perform state operations on assets: checkout (to a user, location, or another " +
			"asset), checkin (back to inventory), audit (mark as audited), restore (un-delete a " +
			"soft-deleted asset).",
		Annotations: &mcp.ToolAnnotations{
			DestructiveHint: boolp(false),
		},
	}, s.handleAssetOperations)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "asset_files",
		Description: "Manage file attachments for assets: upload one or more files, list attached " +
			"files, download a file to a local path, or delete a file.",
		Annotations: &mcp.ToolAnnotations{
			DestructiveHint: boolp(true),
		},
	}, s.handleAssetFiles)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "asset_labels",
		Description: "Generate printable labels for assets. Provide either asset_ids or asset_tags; " +
			"the labels are saved as a PDF at save_path.",
		Annotations: &mcp.ToolAnnotations{
			DestructiveHint: boolp(false),
		},
	}, s.handleAssetLabels)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "asset_maintenance",
		Description: "Manage maintenance records for assets. Currently supports create: record a " +
			"maintenance/improvement entry against an asset.",
		Annotations: &mcp.ToolAnnotations{
			DestructiveHint: boolp(false),
		},
	}, s.handleAssetMaintenance)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "asset_licenses",
		Description: "Get all licenses checked out to an asset.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:   true,
			IdempotentHint: true,
		},
	}, s.handleAssetLicenses)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "manage_consumables",
		Description: "Manage Snipe-IT consumables with CRUD operations: create (requires " +
			"consumable_data with name, qty, and category_id), get, list, update, delete.",
		Annotations: &mcp.ToolAnnotations{
			DestructiveHint: boolp(true),
		},
	}, s.handleManageConsumables)
}

// ManageAssetsArgs defines the input for manage_assets.
type ManageAssetsArgs struct {
	Action    string                 `json:"action" jsonschema:"The action to perform on assets: create, get, list, update, or delete"`
	AssetID   int                    `json:"asset_id,omitempty" jsonschema:"Asset ID (required for get, update, delete)"`
	AssetTag  string                 `json:"asset_tag,omitempty" jsonschema:"Asset tag (alternative to asset_id for get)"`
	Serial    string                 `json:"serial,omitempty" jsonschema:"Serial number (alternative to asset_id for get)"`
	AssetData *inventory.AssetFields `json:"asset_data,omitempty" jsonschema:"Asset data (required for create, optional for update)"`
	Limit     *int                   `json:"limit,omitempty" jsonschema:"Number of results to return (for list action, default 50)"`
	Offset    *int                   `json:"offset,omitempty" jsonschema:"Number of results to skip (for list action)"`
	Search    string                 `json:"search,omitempty" jsonschema:"Search query (for list action)"`
	Sort      string                 `json:"sort,omitempty" jsonschema:"Field to sort by (for list action)"`
	Order     string                 `json:"order,omitempty" jsonschema:"Sort order: asc or desc (for list action)"`
}

func (s *Server) handleManageAssets(ctx context.Context, req *mcp.CallToolRequest, args ManageAssetsArgs) (*mcp.CallToolResult, any, error) {
	out := s.inv.ManageAssets(ctx, inventory.AssetsRequest{
		Action:   args.Action,
		AssetID:  args.AssetID,
		AssetTag: args.AssetTag,
		Serial:   args.Serial,
		Data:     args.AssetData,
		Limit:    intOr(args.Limit, defaultLimit),
		Offset:   intOr(args.Offset, defaultOffset),
		Search:   args.Search,
		Sort:     args.Sort,
		Order:    args.Order,
	})
	return nil, out, nil
}

// AssetOperationsArgs defines the input for asset_operations.
type AssetOperationsArgs struct {
	Action       string                    `json:"action" jsonschema:"The operation to perform: checkout, checkin, audit, or restore"`
	AssetID      int                       `json:"asset_id" jsonschema:"Asset ID"`
	CheckoutData *inventory.CheckoutFields `json:"checkout_data,omitempty" jsonschema:"Checkout details (required for checkout action)"`
	CheckinData  *inventory.CheckinFields  `json:"checkin_data,omitempty" jsonschema:"Checkin details (optional for checkin action)"`
	AuditData    *inventory.AuditFields    `json:"audit_data,omitempty" jsonschema:"Audit details (optional for audit action)"`
}

func (s *Server) handleAssetOperations(ctx context.Context, req *mcp.CallToolRequest, args AssetOperationsArgs) (*mcp.CallToolResult, any, error) {
	out := s.inv.AssetOperations(ctx, inventory.OperationsRequest{
		Action:   args.Action,
		AssetID:  args.AssetID,
		Checkout: args.CheckoutData,
		Checkin:  args.CheckinData,
		Audit:    args.AuditData,
	})
	return nil, out, nil
}

// AssetFilesArgs defines the input for asset_files.
type AssetFilesArgs struct {
	Action    string   `json:"action" jsonschema:"The file operation to perform: upload, list, download, or delete"`
	AssetID   int      `json:"asset_id" jsonschema:"Asset ID"`
	FilePaths []string `json:"file_paths,omitempty" jsonschema:"List of file paths to upload (for upload action)"`
	Notes     string   `json:"notes,omitempty" jsonschema:"Notes for uploaded files (for upload action)"`
	FileID    int      `json:"file_id,omitempty" jsonschema:"File ID (required for download and delete actions)"`
	SavePath  string   `json:"save_path,omitempty" jsonschema:"Path to save downloaded file (for download action)"`
}

func (s *Server) handleAssetFiles(ctx context.Context, req *mcp.CallToolRequest, args AssetFilesArgs) (*mcp.CallToolResult, any, error) {
	out := s.inv.AssetFiles(ctx, inventory.FilesRequest{
		Action:    args.Action,
		AssetID:   args.AssetID,
		FilePaths: args.FilePaths,
		Notes:     args.Notes,
		FileID:    args.FileID,
		SavePath:  args.SavePath,
	})
	return nil, out, nil
}

// AssetLabelsArgs defines the input for asset_labels.
type AssetLabelsArgs struct {
	AssetIDs  []int    `json:"asset_ids,omitempty" jsonschema:"List of asset IDs to generate labels for"`
	AssetTags []string `json:"asset_tags,omitempty" jsonschema:"List of asset tags to generate labels for"`
	SavePath  string   `json:"save_path,omitempty" jsonschema:"Path where the PDF labels file should be saved (default /tmp/asset_labels.pdf)"`
}

func (s *Server) handleAssetLabels(ctx context.Context, req *mcp.CallToolRequest, args AssetLabelsArgs) (*mcp.CallToolResult, any, error) {
	out := s.inv.AssetLabels(ctx, inventory.LabelsRequest{
		AssetIDs:  args.AssetIDs,
		AssetTags: args.AssetTags,
		SavePath:  args.SavePath,
	})
	return nil, out, nil
}

// AssetMaintenanceArgs defines the input for asset_maintenance.
type AssetMaintenanceArgs struct {
	Action          string                       `json:"action" jsonschema:"The maintenance operation to perform (currently only create)"`
	AssetID         int                          `json:"asset_id" jsonschema:"Asset ID"`
	MaintenanceData *inventory.MaintenanceFields `json:"maintenance_data" jsonschema:"Maintenance record data (required for create action)"`
}

func (s *Server) handleAssetMaintenance(ctx context.Context, req *mcp.CallToolRequest, args AssetMaintenanceArgs) (*mcp.CallToolResult, any, error) {
	out := s.inv.AssetMaintenance(ctx, inventory.MaintenanceRequest{
		Action:  args.Action,
		AssetID: args.AssetID,
		Data:    args.MaintenanceData,
	})
	return nil, out, nil
}

// AssetLicensesArgs defines the input for asset_licenses.
type AssetLicensesArgs struct {
	AssetID int `json:"asset_id" jsonschema:"Asset ID"`
}

func (s *Server) handleAssetLicenses(ctx context.Context, req *mcp.CallToolRequest, args AssetLicensesArgs) (*mcp.CallToolResult, any, error) {
	out := s.inv.AssetLicenses(ctx, inventory.LicensesRequest{AssetID: args.AssetID})
	return nil, out, nil
}

// ManageConsumablesArgs defines the input for manage_consumables.
type ManageConsumablesArgs struct {
	Action         string                      `json:"action" jsonschema:"The action to perform on consumables: create, get, list, update, or delete"`
	ConsumableID   int                         `json:"consumable_id,omitempty" jsonschema:"Consumable ID (required for get, update, delete)"`
	ConsumableData *inventory.ConsumableFields `json:"consumable_data,omitempty" jsonschema:"Consumable data (required for create, optional for update)"`
	Limit          *int                        `json:"limit,omitempty" jsonschema:"Number of results to return (for list action, default 50)"`
	Offset         *int                        `json:"offset,omitempty" jsonschema:"Number of results to skip (for list action)"`
	Search         string                      `json:"search,omitempty" jsonschema:"Search query (for list action)"`
	Sort           string                      `json:"sort,omitempty" jsonschema:"Field to sort by (for list action)"`
	Order          string                      `json:"order,omitempty" jsonschema:"Sort order: asc or desc (for list action)"`
}

func (s *Server) handleManageConsumables(ctx context.Context, req *mcp.CallToolRequest, args ManageConsumablesArgs) (*mcp.CallToolResult, any, error) {
	out := s.inv.ManageConsumables(ctx, inventory.ConsumablesRequest{
		Action:       args.Action,
		ConsumableID: args.ConsumableID,
		Data:         args.ConsumableData,
		Limit:        intOr(args.Limit, defaultLimit),
		Offset:       intOr(args.Offset, defaultOffset),
		Search:       args.Search,
		Sort:         args.Sort,
		Order:        args.Order,
	})
	return nil, out, nil
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
