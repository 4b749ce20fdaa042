package storageclient

import (
	"encoding/base64"
)

// FileResponse is the outcome of an operation together with a
// human-readable explanation.
type FileResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// StorageFileResponse is the result of Fetch.
//
// RawData and Base64Content always encode the same bytes.
type StorageFileResponse struct {
	FileResponse
	FileName      string `json:"fileName,omitempty"`
	ContentType   string `json:"contentType,omitempty"`
	Base64Content string `json:"base64Content,omitempty"`
	RawData       []byte `json:"-"`
}

// Response messages.
const (
	MsgFileNotFoundOnDisk = "file not found on disk"
	MsgContainerNotFound  = "container not found"
	MsgFileNotFound       = "file not found"
	MsgFileFound          = "file found"
	MsgFileDeleted        = "file deleted"
)

func notFound(msg string) *StorageFileResponse {
	return &StorageFileResponse{FileResponse: FileResponse{Status: false, Message: msg}}
}

func found(name, contentType string, data []byte) *StorageFileResponse {
	return &StorageFileResponse{
		FileResponse:  FileResponse{Status: true, Message: MsgFileFound},
		FileName:      name,
		ContentType:   contentType,
		Base64Content: base64.StdEncoding.EncodeToString(data),
		RawData:       data,
	}
}

// Decode returns the bytes of Base64Content.
func (r *StorageFileResponse) Decode() ([]byte, error) {
	return base64.StdEncoding.DecodeString(r.Base64Content)
}
