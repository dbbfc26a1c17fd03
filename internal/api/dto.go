package api

// FileEntry is one file crossing the API boundary, in either direction.
type FileEntry struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	Bytes   int    `json:"bytes,omitempty"`
}

type PackRequest struct {
	Files []FileEntry `json:"files"`
}

type UnpackResponse struct {
	ID    string      `json:"id"`
	Files []FileEntry `json:"files"`
}

type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
}
