package services

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"gorent/pkg/storage"

	"github.com/google/uuid"
)

// FileUpload is an in-memory file received from a multipart request.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// VehicleDocumentSet carries the files attached to a vehicle create or
// edit. On edit, nil means "keep the existing document"; a non-nil
// entry replaces it. An empty Images slice likewise keeps the current
// image set.
type VehicleDocumentSet struct {
	Images    []*FileUpload
	RC        *FileUpload
	Insurance *FileUpload
	Pollution *FileUpload
}

// UserDocumentSet carries the identity documents a user uploads for
// verification. nil entries are left untouched.
type UserDocumentSet struct {
	GovID          *FileUpload
	DrivingLicense *FileUpload
}

// uploadFile pushes one file through the blob-storage provider and
// returns the public URL. Only the URL is ever stored.
func uploadFile(ctx context.Context, provider storage.Provider, folder string, file *FileUpload) (string, error) {
	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), path.Ext(file.Name))

	resp, err := provider.Upload(ctx, &storage.UploadRequest{
		Key:         key,
		Reader:      bytes.NewReader(file.Data),
		ContentType: file.ContentType,
		Size:        int64(len(file.Data)),
	})
	if err != nil {
		return "", &UploadError{Err: err}
	}

	return resp.URL, nil
}
