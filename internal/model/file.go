package model

import "time"

// FileRecord is the metadata the file backend keeps per uploaded file. The
// wire names mirror the backend's Mongo documents, `_id` included.
type FileRecord struct {
	ID               string    `json:"_id"`
	OriginalFilename string    `json:"original_filename"`
	FileType         string    `json:"file_type"` // extension without the dot: jpg, png, pdf, ...
	FileSize         int64     `json:"file_size"` // bytes
	Description      string    `json:"description,omitempty"`
	UserID           string    `json:"user_id,omitempty"`
	UploadTime       time.Time `json:"upload_time"`
}
