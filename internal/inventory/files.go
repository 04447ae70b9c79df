package inventory

import (
	"context"
	"encoding/json"
	"fmt"
)

// FilesRequest is the input to the asset_files dispatcher.
type FilesRequest struct {
	Action    string   `json:"action" validate:"required,oneof=upload list download delete"`
	AssetID   int      `json:"asset_id"`
	FilePaths []string `json:"file_paths"`
	Notes     string   `json:"notes"`
	FileID    int      `json:"file_id"`
	SavePath  string   `json:"save_path"`
}

type (
	FileUploadResult struct {
		Envelope
		AssetID int             `json:"asset_id"`
		Message string          `json:"message"`
		Result  json.RawMessage `json:"result"` // unvalidated external shape
	}
	FileListResult struct {
		Envelope
		AssetID int             `json:"asset_id"`
		Files   json.RawMessage `json:"files"` // unvalidated external shape
	}
	FileDownloadResult struct {
		Envelope
		AssetID int    `json:"asset_id"`
		FileID  int    `json:"file_id"`
		SavedTo string `json:"saved_to"`
		Message string `json:"message"`
	}
	FileDeleteResult struct {
		Envelope
		AssetID int    `json:"asset_id"`
		FileID  int    `json:"file_id"`
		Message string `json:"message"`
	}
)

// AssetFiles dispatches file-attachment operations against an asset. The
// not-found prefix here is the bare "Not found:" because the missing thing
// may be the asset or the file.
func (s *Service) AssetFiles(ctx context.Context, req FilesRequest) (out any) {
	logger := s.logger("asset_files", req.Action)
	defer func() {
		if env, panicked := recovered(logger, recover()); panicked {
			out = env
		}
	}()

	res, err := s.assetFiles(ctx, req)
	if err != nil {
		return mapError(logger, "", err)
	}
	return res
}

func (s *Service) assetFiles(ctx context.Context, req FilesRequest) (any, error) {
	if err := s.checkValues(req); err != nil {
		return nil, err
	}
	if err := validateFilesRequest(req); err != nil {
		return nil, err
	}

	client, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer client.Close()
	assets := client.Assets()

	switch req.Action {
	case "upload":
		result, err := assets.UploadFiles(ctx, req.AssetID, req.FilePaths, req.Notes)
		if err != nil {
			return nil, err
		}
		return FileUploadResult{
			Envelope: ok("upload"),
			AssetID:  req.AssetID,
			Message:  fmt.Sprintf("Uploaded %d file(s) successfully", len(req.FilePaths)),
			Result:   result,
		}, nil

	case "list":
		files, err := assets.ListFiles(ctx, req.AssetID)
		if err != nil {
			return nil, err
		}
		return FileListResult{Envelope: ok("list"), AssetID: req.AssetID, Files: files}, nil

	case "download":
		saved, err := assets.DownloadFile(ctx, req.AssetID, req.FileID, req.SavePath)
		if err != nil {
			return nil, err
		}
		return FileDownloadResult{
			Envelope: ok("download"),
			AssetID:  req.AssetID,
			FileID:   req.FileID,
			SavedTo:  saved,
			Message:  "File downloaded to " + saved,
		}, nil

	default: // delete
		if err := assets.DeleteFile(ctx, req.AssetID, req.FileID); err != nil {
			return nil, err
		}
		return FileDeleteResult{
			Envelope: ok("delete"),
			AssetID:  req.AssetID,
			FileID:   req.FileID,
			Message:  "File deleted successfully",
		}, nil
	}
}

func validateFilesRequest(req FilesRequest) error {
	if req.AssetID == 0 {
		return argErrorf("asset_id is required for %s action", req.Action)
	}
	switch req.Action {
	case "upload":
		if len(req.FilePaths) == 0 {
			return argErrorf("file_paths is required for upload action")
		}
	case "download":
		if req.FileID == 0 {
			return argErrorf("file_id is required for download action")
		}
		if req.SavePath == "" {
			return argErrorf("save_path is required for download action")
		}
	case "delete":
		if req.FileID == 0 {
			return argErrorf("file_id is required for delete action")
		}
	}
	return nil
}
