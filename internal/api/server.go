// Package api exposes pack and unpack over HTTP so other tools can bundle
// files without shelling out to the CLI.
package api

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/samcharles93/txtpack/internal/logger"
	"github.com/samcharles93/txtpack/pkg/bundle"
)

type Server struct {
	cfg bundle.Config
	log logger.Logger
}

func NewServer(cfg bundle.Config, log logger.Logger) *Server {
	if log == nil {
		log = logger.Default()
	}
	return &Server{cfg: cfg, log: log}
}

func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/pack", s.handlePack)
	e.POST("/v1/unpack", s.handleUnpack)
	e.GET("/v1/healthz", s.handleHealth)
}

// handlePack bundles the uploaded files and responds with the delimited
// stream as text/plain.
func (s *Server) handlePack(c *echo.Context) error {
	req, err := decodeJSON[PackRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error(), "")
	}
	if len(req.Files) == 0 {
		return writeBadRequest(c, "no files to pack", "no_files_found")
	}

	files := make([]bundle.File, 0, len(req.Files))
	for _, f := range req.Files {
		if f.Name == "" {
			return writeBadRequest(c, "file entry missing name", "")
		}
		files = append(files, bundle.File{Name: f.Name, Data: []byte(f.Content)})
	}

	out := bundle.Pack(files, s.cfg)
	s.log.Debug("packed bundle", "files", len(files), "bytes", len(out))

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, echo.MIMETextPlainCharsetUTF8)
	res.WriteHeader(http.StatusOK)
	_, err = res.Write(out)
	return err
}

// handleUnpack parses a bundle from the request body and responds with the
// recovered records as JSON.
func (s *Server) handleUnpack(c *echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error(), "failed_to_read_input")
	}
	if len(body) == 0 {
		return writeBadRequest(c, "request body is empty", "no_input_content_to_unpack")
	}

	recs := bundle.Unpack(body, s.cfg)
	if len(recs) == 0 {
		return writeBadRequest(c, "no valid file delimiters found", "no_valid_file_delimiters_found")
	}

	resp := UnpackResponse{ID: "bundle-" + uuid.NewString()}
	for _, r := range recs {
		resp.Files = append(resp.Files, FileEntry{
			Name:    r.Name,
			Content: r.Content,
			Bytes:   len(r.Content),
		})
	}
	s.log.Debug("unpacked bundle", "id", resp.ID, "files", len(resp.Files))

	return writeJSON(c, http.StatusOK, resp)
}

func (s *Server) handleHealth(c *echo.Context) error {
	return writeJSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
