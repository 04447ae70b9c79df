package inventory

import (
	"context"
	"encoding/json"

	"github.com/snipeops/snipeit-mcp/internal/snipeit"
)

// fakeClient is a scripted collaborator double. Every sub-client call is
// counted so tests can assert that validation failures make zero calls.
type fakeClient struct {
	assets      *fakeAssets
	consumables *fakeConsumables
	closed      int
}

func newFakeClient() *fakeClient {
	return &fakeClient{assets: &fakeAssets{}, consumables: &fakeConsumables{}}
}

func (f *fakeClient) Assets() AssetsAPI           { return f.assets }
func (f *fakeClient) Consumables() ConsumablesAPI { return f.consumables }
func (f *fakeClient) Close() error                { f.closed++; return nil }

func (f *fakeClient) factory() ClientFactory {
	return func() (Client, error) { return f, nil }
}

func (f *fakeClient) calls() int { return f.assets.calls + f.consumables.calls }

type fakeAssets struct {
	calls int

	// scripted returns
	asset          *snipeit.Asset
	listRows       []snipeit.Asset
	err            error         // returned by every method when set
	getErrs        map[int]error // per-ID Get failures
	uploadResult   json.RawMessage
	filesResult    json.RawMessage
	maintResult    json.RawMessage
	licensesResult json.RawMessage

	// recorded inputs
	lookups      []string // sequence of lookup kinds: "tag", "serial", "id"
	gotIDs       []int
	createdWith  map[string]any
	patchedID    int
	patchedWith  []map[string]any
	listOpts     snipeit.ListOptions
	deletedID    int
	checkoutID   int
	checkoutWith map[string]any
	checkinID    int
	checkinWith  map[string]any
	auditID      int
	auditWith    map[string]any
	restoredID   int
	uploadID     int
	uploadPaths  []string
	uploadNotes  string
	downloadID   int
	downloadFID  int
	downloadPath string
	deletedFID   int
	labelsPath   string
	labelsTags   []string
	labelsCalls  int
	maintWith    map[string]any
	licensesID   int
}

func (f *fakeAssets) result() *snipeit.Asset {
	if f.asset != nil {
		return f.asset
	}
	return &snipeit.Asset{ID: 1}
}

func (f *fakeAssets) Create(_ context.Context, fields map[string]any) (*snipeit.Asset, error) {
	f.calls++
	f.createdWith = fields
	if f.err != nil {
		return nil, f.err
	}
	return f.result(), nil
}

func (f *fakeAssets) Get(_ context.Context, id int) (*snipeit.Asset, error) {
	f.calls++
	f.lookups = append(f.lookups, "id")
	f.gotIDs = append(f.gotIDs, id)
	if err, ok := f.getErrs[id]; ok {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.result(), nil
}

func (f *fakeAssets) GetByTag(_ context.Context, tag string) (*snipeit.Asset, error) {
	f.calls++
	f.lookups = append(f.lookups, "tag")
	if f.err != nil {
		return nil, f.err
	}
	return f.result(), nil
}

func (f *fakeAssets) GetBySerial(_ context.Context, serial string) (*snipeit.Asset, error) {
	f.calls++
	f.lookups = append(f.lookups, "serial")
	if f.err != nil {
		return nil, f.err
	}
	return f.result(), nil
}

func (f *fakeAssets) List(_ context.Context, opts snipeit.ListOptions) ([]snipeit.Asset, error) {
	f.calls++
	f.listOpts = opts
	if f.err != nil {
		return nil, f.err
	}
	return f.listRows, nil
}

func (f *fakeAssets) Patch(_ context.Context, id int, fields map[string]any) (*snipeit.Asset, error) {
	f.calls++
	f.patchedID = id
	f.patchedWith = append(f.patchedWith, fields)
	if f.err != nil {
		return nil, f.err
	}
	return f.result(), nil
}

func (f *fakeAssets) Delete(_ context.Context, id int) error {
	f.calls++
	f.deletedID = id
	return f.err
}

func (f *fakeAssets) Checkout(_ context.Context, id int, fields map[string]any) (*snipeit.Asset, error) {
	f.calls++
	f.checkoutID = id
	f.checkoutWith = fields
	if f.err != nil {
		return nil, f.err
	}
	return f.result(), nil
}

func (f *fakeAssets) Checkin(_ context.Context, id int, fields map[string]any) (*snipeit.Asset, error) {
	f.calls++
	f.checkinID = id
	f.checkinWith = fields
	if f.err != nil {
		return nil, f.err
	}
	return f.result(), nil
}

func (f *fakeAssets) Audit(_ context.Context, id int, fields map[string]any) (*snipeit.Asset, error) {
	f.calls++
	f.auditID = id
	f.auditWith = fields
	if f.err != nil {
		return nil, f.err
	}
	return f.result(), nil
}

func (f *fakeAssets) Restore(_ context.Context, id int) (*snipeit.Asset, error) {
	f.calls++
	f.restoredID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.result(), nil
}

func (f *fakeAssets) UploadFiles(_ context.Context, id int, paths []string, notes string) (json.RawMessage, error) {
	f.calls++
	f.uploadID = id
	f.uploadPaths = paths
	f.uploadNotes = notes
	if f.err != nil {
		return nil, f.err
	}
	return f.uploadResult, nil
}

func (f *fakeAssets) ListFiles(_ context.Context, id int) (json.RawMessage, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.filesResult, nil
}

func (f *fakeAssets) DownloadFile(_ context.Context, id, fileID int, savePath string) (string, error) {
	f.calls++
	f.downloadID = id
	f.downloadFID = fileID
	f.downloadPath = savePath
	if f.err != nil {
		return "", f.err
	}
	return savePath, nil
}

func (f *fakeAssets) DeleteFile(_ context.Context, id, fileID int) error {
	f.calls++
	f.deletedFID = fileID
	return f.err
}

func (f *fakeAssets) Labels(_ context.Context, savePath string, tags []string) (string, error) {
	f.calls++
	f.labelsCalls++
	f.labelsPath = savePath
	f.labelsTags = tags
	if f.err != nil {
		return "", f.err
	}
	return savePath, nil
}

func (f *fakeAssets) CreateMaintenance(_ context.Context, fields map[string]any) (json.RawMessage, error) {
	f.calls++
	f.maintWith = fields
	if f.err != nil {
		return nil, f.err
	}
	return f.maintResult, nil
}

func (f *fakeAssets) Licenses(_ context.Context, id int) (json.RawMessage, error) {
	f.calls++
	f.licensesID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.licensesResult, nil
}

type fakeConsumables struct {
	calls int

	consumable *snipeit.Consumable
	listRows   []snipeit.Consumable
	err        error

	createdWith map[string]any
	gotID       int
	listOpts    snipeit.ListOptions
	patchedID   int
	patchedWith []map[string]any
	deletedID   int
}

func (f *fakeConsumables) result() *snipeit.Consumable {
	if f.consumable != nil {
		return f.consumable
	}
	return &snipeit.Consumable{ID: 1}
}

func (f *fakeConsumables) Create(_ context.Context, fields map[string]any) (*snipeit.Consumable, error) {
	f.calls++
	f.createdWith = fields
	if f.err != nil {
		return nil, f.err
	}
	return f.result(), nil
}

func (f *fakeConsumables) Get(_ context.Context, id int) (*snipeit.Consumable, error) {
	f.calls++
	f.gotID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.result(), nil
}

func (f *fakeConsumables) List(_ context.Context, opts snipeit.ListOptions) ([]snipeit.Consumable, error) {
	f.calls++
	f.listOpts = opts
	if f.err != nil {
		return nil, f.err
	}
	return f.listRows, nil
}

func (f *fakeConsumables) Patch(_ context.Context, id int, fields map[string]any) (*snipeit.Consumable, error) {
	f.calls++
	f.patchedID = id
	f.patchedWith = append(f.patchedWith, fields)
	if f.err != nil {
		return nil, f.err
	}
	return f.result(), nil
}

func (f *fakeConsumables) Delete(_ context.Context, id int) error {
	f.calls++
	f.deletedID = id
	return f.err
}
