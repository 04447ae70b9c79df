package inventory

import (
	"context"
	"encoding/json"

	"github.com/snipeops/snipeit-mcp/internal/snipeit"
)

// Client is the inventory connection a dispatcher acquires at the start of a
// call and closes on every exit path. *snipeit.Client satisfies this shape
// through a thin adapter at the composition root; tests supply doubles.
type Client interface {
	Assets() AssetsAPI
	Consumables() ConsumablesAPI
	Close() error
}

// ClientFactory builds a Client per dispatcher call. It is injected at
// process start; when the service is unconfigured it returns a
// *snipeit.Error so the failure surfaces through the normal taxonomy.
type ClientFactory func() (Client, error)

// AssetsAPI is the asset-scoped collaborator surface.
type AssetsAPI interface {
	Create(ctx context.Context, fields map[string]any) (*snipeit.Asset, error)
	Get(ctx context.Context, id int) (*snipeit.Asset, error)
	GetByTag(ctx context.Context, tag string) (*snipeit.Asset, error)
	GetBySerial(ctx context.Context, serial string) (*snipeit.Asset, error)
	List(ctx context.Context, opts snipeit.ListOptions) ([]snipeit.Asset, error)
	Patch(ctx context.Context, id int, fields map[string]any) (*snipeit.Asset, error)
	Delete(ctx context.Context, id int) error

	Checkout(ctx context.Context, id int, fields map[string]any) (*snipeit.Asset, error)
	Checkin(ctx context.Context, id int, fields map[string]any) (*snipeit.Asset, error)
	Audit(ctx context.Context, id int, fields map[string]any) (*snipeit.Asset, error)
	Restore(ctx context.Context, id int) (*snipeit.Asset, error)

	UploadFiles(ctx context.Context, id int, paths []string, notes string) (json.RawMessage, error)
	ListFiles(ctx context.Context, id int) (json.RawMessage, error)
	DownloadFile(ctx context.Context, id, fileID int, savePath string) (string, error)
	DeleteFile(ctx context.Context, id, fileID int) error

	Labels(ctx context.Context, savePath string, tags []string) (string, error)
	CreateMaintenance(ctx context.Context, fields map[string]any) (json.RawMessage, error)
	Licenses(ctx context.Context, id int) (json.RawMessage, error)
}

// ConsumablesAPI is the consumable-scoped collaborator surface.
type ConsumablesAPI interface {
	Create(ctx context.Context, fields map[string]any) (*snipeit.Consumable, error)
	Get(ctx context.Context, id int) (*snipeit.Consumable, error)
	List(ctx context.Context, opts snipeit.ListOptions) ([]snipeit.Consumable, error)
	Patch(ctx context.Context, id int, fields map[string]any) (*snipeit.Consumable, error)
	Delete(ctx context.Context, id int) error
}
