// README: Route handlers (text, upload and camera surfaces of the extract->lookup pipeline).
package handlers

import (
	"context"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"akshar/internal/route"
	"akshar/internal/service"
)

// maxImageBytes caps uploaded and captured images at 8 MiB.
const maxImageBytes = 8 << 20

type Processor interface {
	Process(ctx context.Context, in route.RawInput) (route.Result, error)
}

type Translator interface {
	Translate(ctx context.Context, text, language string) (string, error)
}

type RouteHandler struct {
	pipeline   Processor
	translator Translator
	timeout    time.Duration
}

func NewRouteHandler(pipeline Processor, translator Translator, timeout time.Duration) *RouteHandler {
	return &RouteHandler{pipeline: pipeline, translator: translator, timeout: timeout}
}

type textRouteReq struct {
	Query    string `json:"query"`
	Language string `json:"language"`
}

type routeResponse struct {
	Result               route.Result `json:"result"`
	Directions           string       `json:"directions"`
	Language             string       `json:"language,omitempty"`
	TranslatedDirections string       `json:"translated_directions,omitempty"`
}

// FromText handles POST /api/routes/text.
func (h *RouteHandler) FromText(c *gin.Context) {
	var req textRouteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		writeError(c, http.StatusBadRequest, "missing query")
		return
	}

	h.process(c, route.TextInput(req.Query), req.Language)
}

// FromUpload handles POST /api/routes/image (multipart field "image").
func (h *RouteHandler) FromUpload(c *gin.Context) {
	h.fromImage(c)
}

// FromCamera handles POST /api/routes/camera. Captured frames arrive as the
// same multipart payload as uploads.
func (h *RouteHandler) FromCamera(c *gin.Context) {
	h.fromImage(c)
}

func (h *RouteHandler) fromImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		writeError(c, http.StatusBadRequest, "missing image")
		return
	}
	if file.Size > maxImageBytes {
		writeError(c, http.StatusBadRequest, "image too large")
		return
	}

	data, err := readUpload(file)
	if err != nil {
		writeError(c, http.StatusBadRequest, "unreadable image")
		return
	}

	h.process(c, route.ImageInput(data, imageFormat(file)), c.PostForm("language"))
}

func (h *RouteHandler) process(c *gin.Context, in route.RawInput, language string) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	result, err := h.pipeline.Process(ctx, in)
	if err != nil {
		writeRouteError(c, err)
		return
	}

	resp := routeResponse{Result: result, Directions: service.FormatResult(result)}
	if language != "" && !strings.EqualFold(language, "english") {
		translated, err := h.translator.Translate(ctx, resp.Directions, language)
		if err != nil {
			// Translation failures degrade to the English directions.
			log.Printf("translate to %s failed: %v", language, err)
		} else {
			resp.Language = language
			resp.TranslatedDirections = translated
		}
	}

	writeJSON(c, http.StatusOK, resp)
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxImageBytes))
}

func imageFormat(file *multipart.FileHeader) string {
	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".webp":
		return "webp"
	default:
		return "png"
	}
}
