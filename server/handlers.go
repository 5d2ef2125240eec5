package server

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/ksuid"

	"github.com/chaos-io/rembg"
	"github.com/chaos-io/rembg/util"
)

const jpegQuality = 95

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"model":  s.remover.Model().Name,
	})
}

// handleRemove accepts a multipart "image" field plus optional
// "threshold", "binary" and "format" fields, and responds with the
// composited image (format=png|jpeg) or the standalone mask
// (format=mask).
func (s *Server) handleRemove(c *gin.Context) {
	id := ksuid.New().String()

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image field", "id": id})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "id": id})
		return
	}
	defer func() {
		_ = file.Close()
	}()

	img, _, err := image.Decode(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "undecodable image: " + err.Error(), "id": id})
		return
	}

	opts := rembg.DefaultOptions()
	if v := c.PostForm("threshold"); v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad threshold: " + v, "id": id})
			return
		}
		opts = opts.WithThreshold(threshold)
	}
	if v := c.PostForm("binary"); v != "" {
		binary, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad binary flag: " + v, "id": id})
			return
		}
		opts = opts.WithBinary(binary)
	}

	result, err := s.remover.RemoveBackground(c.Request.Context(), img, opts)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, rembg.ErrInvalidImage), errors.Is(err, rembg.ErrInvalidThreshold):
			status = http.StatusBadRequest
		case errors.Is(err, rembg.ErrInference), errors.Is(err, rembg.ErrModelOutputShapeMismatch):
			status = http.StatusBadGateway
		}
		s.log.Error("remove failed", "id", id, "error", err)
		c.JSON(status, gin.H{"error": err.Error(), "id": id})
		return
	}

	format := c.DefaultPostForm("format", "png")
	var buf bytes.Buffer
	var contentType, ext string
	switch format {
	case "png":
		err = png.Encode(&buf, result.Image)
		contentType, ext = "image/png", ".png"
	case "jpg", "jpeg":
		err = jpeg.Encode(&buf, util.FlattenOnWhite(result.Image), &jpeg.Options{Quality: jpegQuality})
		contentType, ext = "image/jpeg", ".jpg"
	case "mask":
		err = png.Encode(&buf, result.Mask)
		contentType, ext = "image/png", "_mask.png"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown format: " + format, "id": id})
		return
	}
	if err != nil {
		s.log.Error("encode failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "id": id})
		return
	}

	if s.cfg.OutputDir != "" {
		path := filepath.Join(s.cfg.OutputDir, id+ext)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			s.log.Warn("persist result", "id", id, "error", err)
		}
	}

	s.log.Info("removed background", "id", id,
		"size", result.Image.Bounds().Max, "binary", opts.Binary, "format", format)

	c.Header("X-Request-ID", id)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
