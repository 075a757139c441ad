package rest

import (
	"io/fs"
	"net/http"
)

// ErrorResponse is the JSON body returned for client and server errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// NewStaticHandler serves embedded static assets (stylesheets and the like)
// under the given URL prefix.
func NewStaticHandler(prefix string, fsys fs.FS) http.Handler {
	return http.StripPrefix(prefix, http.FileServer(http.FS(fsys)))
}
