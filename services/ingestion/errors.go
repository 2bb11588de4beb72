package ingestion

import "errors"

// Hard failures. Everything else found in an upload degrades into skipped
// rows or a best-effort tier instead of an error.
var (
	ErrEmptyUpload         = errors.New("upload is empty")
	ErrUploadTooLarge      = errors.New("upload exceeds the maximum size")
	ErrUnreadableContainer = errors.New("unreadable archive or compressed container")
	ErrNoTextPayload       = errors.New("archive holds no .txt or .csv payload")
)
