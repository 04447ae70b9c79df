package snipeit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
)

// AssetsService operates on /hardware.
type AssetsService struct {
	client *Client
}

// Create creates an asset from the given sparse field map.
func (s *AssetsService) Create(ctx context.Context, fields map[string]any) (*Asset, error) {
	var a Asset
	if err := s.client.do(ctx, http.MethodPost, "/hardware", nil, fields, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Get retrieves an asset by its numeric ID.
func (s *AssetsService) Get(ctx context.Context, id int) (*Asset, error) {
	var a Asset
	if err := s.client.do(ctx, http.MethodGet, "/hardware/"+strconv.Itoa(id), nil, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByTag retrieves an asset by its asset tag.
func (s *AssetsService) GetByTag(ctx context.Context, tag string) (*Asset, error) {
	var a Asset
	if err := s.client.do(ctx, http.MethodGet, "/hardware/bytag/"+url.PathEscape(tag), nil, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetBySerial retrieves an asset by serial number. The API returns a result
// page for this route; the first row wins.
func (s *AssetsService) GetBySerial(ctx context.Context, serial string) (*Asset, error) {
	var p page[Asset]
	if err := s.client.do(ctx, http.MethodGet, "/hardware/byserial/"+url.PathEscape(serial), nil, nil, &p); err != nil {
		return nil, err
	}
	if len(p.Rows) == 0 {
		return nil, &NotFoundError{Resource: "hardware", Message: fmt.Sprintf("no asset with serial %q", serial)}
	}
	return &p.Rows[0], nil
}

// List retrieves a page of assets.
func (s *AssetsService) List(ctx context.Context, opts ListOptions) ([]Asset, error) {
	var p page[Asset]
	if err := s.client.do(ctx, http.MethodGet, "/hardware", listQuery(opts), nil, &p); err != nil {
		return nil, err
	}
	return p.Rows, nil
}

// Patch applies a sparse update to an asset.
func (s *AssetsService) Patch(ctx context.Context, id int, fields map[string]any) (*Asset, error) {
	var a Asset
	if err := s.client.do(ctx, http.MethodPatch, "/hardware/"+strconv.Itoa(id), nil, fields, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Delete removes an asset.
func (s *AssetsService) Delete(ctx context.Context, id int) error {
	return s.client.do(ctx, http.MethodDelete, "/hardware/"+strconv.Itoa(id), nil, nil, nil)
}

// Checkout checks an asset out to a user, location, or another asset.
// The fields map carries checkout_to_type and assigned_to_id plus any
// optional fields; the API wants the target under a type-specific key.
func (s *AssetsService) Checkout(ctx context.Context, id int, fields map[string]any) (*Asset, error) {
	body := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	if target, ok := body["assigned_to_id"]; ok {
		delete(body, "assigned_to_id")
		switch body["checkout_to_type"] {
		case "asset":
			body["assigned_asset"] = target
		case "location":
			body["assigned_location"] = target
		default:
			body["assigned_user"] = target
		}
	}
	if err := s.client.do(ctx, http.MethodPost, "/hardware/"+strconv.Itoa(id)+"/checkout", nil, body, nil); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Checkin returns a checked-out asset to inventory.
func (s *AssetsService) Checkin(ctx context.Context, id int, fields map[string]any) (*Asset, error) {
	if err := s.client.do(ctx, http.MethodPost, "/hardware/"+strconv.Itoa(id)+"/checkin", nil, fields, nil); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Audit records an audit for an asset. The audit route is keyed by asset
// tag, so the asset is resolved first.
func (s *AssetsService) Audit(ctx context.Context, id int, fields map[string]any) (*Asset, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	body := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	if a.AssetTag != nil {
		body["asset_tag"] = *a.AssetTag
	}
	if err := s.client.do(ctx, http.MethodPost, "/hardware/audit", nil, body, nil); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Restore un-deletes a soft-deleted asset.
func (s *AssetsService) Restore(ctx context.Context, id int) (*Asset, error) {
	if err := s.client.do(ctx, http.MethodPost, "/hardware/"+strconv.Itoa(id)+"/restore", nil, nil, nil); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// UploadFiles attaches local files to an asset and returns the raw upload
// acknowledgment.
func (s *AssetsService) UploadFiles(ctx context.Context, id int, paths []string, notes string) (json.RawMessage, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, &Error{Message: fmt.Sprintf("open %s: %v", p, err)}
		}
		part, err := w.CreateFormFile("file[]", filepath.Base(p))
		if err == nil {
			_, err = io.Copy(part, f)
		}
		f.Close()
		if err != nil {
			return nil, &Error{Message: fmt.Sprintf("stage %s: %v", p, err)}
		}
	}
	if notes != "" {
		if err := w.WriteField("notes", notes); err != nil {
			return nil, &Error{Message: err.Error()}
		}
	}
	if err := w.Close(); err != nil {
		return nil, &Error{Message: err.Error()}
	}

	u := s.client.baseURL + apiBase + "/hardware/" + strconv.Itoa(id) + "/files"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, &buf)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+s.client.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := s.client.httpc.Do(req)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("read response: %v", err)}
	}
	if err := statusError(resp.StatusCode, raw); err != nil {
		return nil, err
	}
	var probe apiResponse
	if err := json.Unmarshal(raw, &probe); err == nil && probe.Status == "error" {
		return nil, envelopeError(probe.Messages)
	}
	return json.RawMessage(raw), nil
}

// ListFiles lists the files attached to an asset. The listing shape is not
// validated; it is passed through as-is.
func (s *AssetsService) ListFiles(ctx context.Context, id int) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.client.do(ctx, http.MethodGet, "/hardware/"+strconv.Itoa(id)+"/files", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DownloadFile saves an attached file to savePath and returns the path.
func (s *AssetsService) DownloadFile(ctx context.Context, id, fileID int, savePath string) (string, error) {
	raw, err := s.client.download(ctx, http.MethodGet, fmt.Sprintf("/hardware/%d/files/%d", id, fileID), nil)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(savePath, raw, 0o644); err != nil {
		return "", &Error{Message: fmt.Sprintf("save file: %v", err)}
	}
	return savePath, nil
}

// DeleteFile removes a file attached to an asset.
func (s *AssetsService) DeleteFile(ctx context.Context, id, fileID int) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/hardware/%d/files/%d", id, fileID), nil, nil, nil)
}

// Labels renders a printable label PDF for the given asset tags and saves it
// to savePath, returning the path.
func (s *AssetsService) Labels(ctx context.Context, savePath string, tags []string) (string, error) {
	raw, err := s.client.download(ctx, http.MethodPost, "/hardware/labels", map[string]any{"asset_tags": tags})
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(savePath, raw, 0o644); err != nil {
		return "", &Error{Message: fmt.Sprintf("save labels: %v", err)}
	}
	return savePath, nil
}

// CreateMaintenance records a maintenance entry. The created record is
// passed through unvalidated.
func (s *AssetsService) CreateMaintenance(ctx context.Context, fields map[string]any) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.client.do(ctx, http.MethodPost, "/maintenances", nil, fields, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Licenses lists the licenses checked out to an asset, passed through
// unvalidated.
func (s *AssetsService) Licenses(ctx context.Context, id int) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.client.do(ctx, http.MethodGet, "/hardware/"+strconv.Itoa(id)+"/licenses", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// listQuery renders ListOptions as URL parameters. Limit and offset are
// always sent; filters only when non-empty.
func listQuery(opts ListOptions) url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(opts.Limit))
	q.Set("offset", strconv.Itoa(opts.Offset))
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	if opts.Sort != "" {
		q.Set("sort", opts.Sort)
	}
	if opts.Order != "" {
		q.Set("order", opts.Order)
	}
	return q
}
