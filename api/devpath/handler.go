// Package devpath exposes a small gin HTTP surface around the devpath
// decoder for interactive inspection of device path byte streams. All
// network I/O lives here, never in the decoder package itself.
package devpath

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/bmcpi/efidevpath/internal/devpath"
	"github.com/bmcpi/efidevpath/internal/metrics"
	"github.com/ccoveille/go-safecast"
	"github.com/gin-gonic/gin"
	"github.com/go-logr/logr"
)

// maxBodyBytes bounds a decode request body; device path byte streams are
// firmware-variable-sized, never megabytes.
const maxBodyBytes = 64 * 1024

// Register wires the decode routes onto r.
func Register(r gin.IRouter, log logr.Logger) {
	h := &handler{log: log}
	r.POST("/v1/decode/node", h.decodeNode)
	r.POST("/v1/decode/path", h.decodePath)
	r.POST("/v1/decode/paths", h.decodePaths)
}

type handler struct {
	log logr.Logger
}

type decodeRequest struct {
	Hex    string `json:"hex"`
	Base64 string `json:"base64"`
}

func (req decodeRequest) bytes() ([]byte, error) {
	switch {
	case req.Hex != "":
		return hex.DecodeString(req.Hex)
	case req.Base64 != "":
		return base64.StdEncoding.DecodeString(req.Base64)
	default:
		return nil, errors.New("one of hex or base64 is required")
	}
}

func (h *handler) decodeNode(c *gin.Context) {
	h.run(c, "node", func(b []byte) (any, error) { return devpath.DecodeNode(b) })
}

func (h *handler) decodePath(c *gin.Context) {
	h.run(c, "path", func(b []byte) (any, error) { return devpath.DecodePath(b) })
}

func (h *handler) decodePaths(c *gin.Context) {
	h.run(c, "paths", func(b []byte) (any, error) { return devpath.DecodePaths(b) })
}

func (h *handler) run(c *gin.Context, operation string, decode func([]byte) (any, error)) {
	length, err := safecast.ToInt(c.Request.ContentLength)
	if err == nil && length > maxBodyBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "body too large"})
		return
	}

	var req decodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data, err := req.bytes()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	value, err := decode(data)
	elapsed := time.Since(start)

	if err != nil {
		var derr *devpath.Error
		if errors.As(err, &derr) {
			metrics.Observe(operation, derr.Kind.String(), elapsed)
			h.log.Info("decode rejected", "operation", operation, "kind", derr.Kind.String(), "error", derr.Error())
			c.JSON(http.StatusBadRequest, gin.H{"error": derr.Error(), "kind": derr.Kind.String()})
			return
		}
		metrics.Observe(operation, "error", elapsed)
		h.log.Error(err, "decode failed unexpectedly", "operation", operation)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.Observe(operation, "ok", elapsed)
	c.JSON(http.StatusOK, gin.H{"result": value})
}
