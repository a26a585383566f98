package importer

import (
	"bytes"
	"strings"

	"seed-manager/core/ingest"
	"seed-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for imports.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// LoadResponse is the body of a successful import.
type LoadResponse struct {
	Format  ingest.Format    `json:"format"`
	Count   int              `json:"count"`
	Keys    []string         `json:"keys"`
	Records ingest.RecordSet `json:"records"`
}

// ErrorResponse is the body of a failed import.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// RegisterRoutes registers the import routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/import")
	group.Get("/formats", h.HandleFormats)
	group.Get("/objects", h.HandleListObjects)
	group.Post("/:format", h.HandleUpload)
	group.Post("/:format/object", h.HandleObject)
}

// HandleFormats lists the registered formats.
// @Summary List Formats
// @Description Lists the registered import formats and whether one file may hold several collections.
// @Tags import
// @Produce json
// @Success 200 {array} FormatInfo
// @Router /import/formats [get]
func (h *Handler) HandleFormats(c *fiber.Ctx) error {
	return c.JSON(h.service.Formats())
}

// HandleListObjects lists importable objects in the bucket.
// @Summary List Importable Objects
// @Description Lists bucket objects whose extension names a registered format.
// @Tags import
// @Produce json
// @Param prefix query string false "Key prefix"
// @Success 200 {array} storage.Importable
// @Failure 503 {object} ErrorResponse "Storage not configured"
// @Router /import/objects [get]
func (h *Handler) HandleListObjects(c *fiber.Ctx) error {
	items, err := h.service.ListObjects(c.Context(), c.Query("prefix"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(items)
}

// HandleUpload loads an uploaded file.
// @Summary Import Upload
// @Description Parses the multipart "file" field, or the raw request body, as the given format.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param format path string true "Format (json, csv, xlsx)"
// @Param file formData file false "Source file"
// @Success 200 {object} LoadResponse
// @Failure 400 {object} ErrorResponse "Missing or unreadable input"
// @Failure 415 {object} ErrorResponse "Unsupported format"
// @Failure 422 {object} ErrorResponse "Malformed input"
// @Router /import/{format} [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	format := ingest.ParseFormat(c.Params("format"))

	// Multipart requests only carry a source in the "file" part; anything
	// else is a raw body.
	var in ingest.Input
	if isMultipart(c) {
		if fh, err := c.FormFile("file"); err == nil {
			f, err := fh.Open()
			if err != nil {
				return h.fail(c, &ingest.Error{Kind: ingest.KindSourceUnreadable, Format: format, Source: fh.Filename, Err: err})
			}
			defer f.Close()
			in = ingest.FromReader(f)
		}
	} else if body := c.Body(); len(body) > 0 {
		in = ingest.FromReader(bytes.NewReader(body))
	}

	records, err := h.service.Load(format, in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(newLoadResponse(format, records))
}

// HandleObject loads an object from the bucket.
// @Summary Import Object
// @Description Downloads an object from the configured bucket and parses it as the given format.
// @Tags import
// @Produce json
// @Param format path string true "Format (json, csv, xlsx)"
// @Param key query string true "Object key"
// @Success 200 {object} LoadResponse
// @Failure 400 {object} ErrorResponse "Missing key or unreadable object"
// @Failure 415 {object} ErrorResponse "Unsupported format"
// @Failure 422 {object} ErrorResponse "Malformed input"
// @Failure 503 {object} ErrorResponse "Storage not configured"
// @Router /import/{format}/object [post]
func (h *Handler) HandleObject(c *fiber.Ctx) error {
	format := ingest.ParseFormat(c.Params("format"))

	records, err := h.service.LoadObject(c.Context(), format, c.Query("key"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(newLoadResponse(format, records))
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		logger.WithRayID(h.logger, c).Error("Import request failed", zap.Error(err))
	}
	return c.Status(status).JSON(ErrorResponse{
		Error: err.Error(),
		Kind:  ingest.KindOf(err).String(),
	})
}

func newLoadResponse(format ingest.Format, records ingest.RecordSet) LoadResponse {
	if records == nil {
		records = ingest.RecordSet{}
	}
	return LoadResponse{
		Format:  format,
		Count:   len(records),
		Keys:    records.Keys(),
		Records: records,
	}
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEMultipartForm)
}
