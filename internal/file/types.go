package file

import "io"

// UploadInput describes one file to send to the file backend. Size is the
// total content length in bytes and is checked against the upload policy
// before any bytes move.
type UploadInput struct {
	Filename    string
	Size        int64
	Description string
	Content     io.Reader
}
