// Package api serves decoded calculator files over HTTP. It is a thin
// inspection surface on top of the ti83f codec: callers upload raw
// container bytes and get the decoded structure back as JSON. Nothing
// is persisted.
package api

import (
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/calctools/tivar/internal/logger"
	"github.com/calctools/tivar/pkg/ti83f"
)

// maxUpload bounds request bodies. Containers are at most a 16-bit
// entry region plus framing, so this is generous.
const maxUpload = 1 << 20

type Server struct {
	log logger.Logger
}

func NewServer(log logger.Logger) *Server {
	if log == nil {
		log = logger.Default()
	}
	return &Server{log: log}
}

func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/files", s.handleDecodeFile)
	e.GET("/v1/health", s.handleHealth)
}

func (s *Server) handleDecodeFile(c *echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxUpload+1))
	if err != nil {
		return writeBadRequest(c, "reading request body: "+err.Error(), "bad_request")
	}
	if len(body) > maxUpload {
		return writeError(c, http.StatusRequestEntityTooLarge, "file exceeds upload limit", "too_large")
	}

	f, err := ti83f.Decode(body)
	if err != nil {
		s.log.Warn("decode rejected", "kind", errorKind(err), "size", len(body))
		return writeBadRequest(c, err.Error(), errorKind(err))
	}

	id := "file_" + uuid.NewString()
	doc := DocumentFile(id, f)
	s.log.Info("decoded container", "id", id, "format", doc.Format, "entries", len(doc.Entries))
	return writeJSON(c, http.StatusOK, doc)
}

func (s *Server) handleHealth(c *echo.Context) error {
	return writeJSON(c, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON marshals through goccy/go-json rather than the echo default.
func writeJSON(c *echo.Context, status int, v any) error {
	buf, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Blob(status, echo.MIMEApplicationJSON, buf)
}
