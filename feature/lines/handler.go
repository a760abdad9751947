package lines

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"

	"line-checker/core/document"
	"line-checker/core/logger"
	"line-checker/core/reconcile"
	"line-checker/core/storage"
	"line-checker/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for line checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the line check routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/lines")
	group.Post("/check", h.HandleCheck)
	group.Post("/plan", h.HandlePlan)
	group.Post("/fix", h.HandleFix)
	group.Get("/bucket", h.HandleBucket)
}

// HandleCheck checks one or more uploaded documents.
// @Summary Check Documents
// @Description Checks uploaded documents for missing and duplicate line markers.
// @Tags lines
// @Accept mpfd
// @Produce json
// @Param files formData file true "Documents to check"
// @Success 200 {object} map[string]interface{} "Batch Report"
// @Failure 400 {object} map[string]string "No document uploaded"
// @Router /lines/check [post]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	files, err := formFiles(c, "files")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	uploads := make([]Upload, len(files))
	for i, fh := range files {
		uploads[i] = multipartUpload(fh)
	}

	items := h.service.CheckBatch(c.Context(), uploads)
	l.Info("Documents checked", zap.Int("count", len(items)))

	return c.JSON(fiber.Map{
		"status":  "checked",
		"summary": Summarize(items),
		"reports": items,
	})
}

// HandlePlan returns the fix plan for one uploaded document.
// @Summary Plan Fix
// @Description Returns the analysis and the renumbering a fix would apply.
// @Tags lines
// @Accept mpfd
// @Produce json
// @Param file formData file true "Document"
// @Param missing query boolean false "Fill missing lines (default true)"
// @Param duplicates query boolean false "Renumber duplicate lines (default true)"
// @Success 200 {object} reconcile.ReconcilePlan "Plan"
// @Failure 422 {object} map[string]string "Unreadable document"
// @Router /lines/plan [post]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	name, data, err := readSingle(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	plan, err := h.service.PlanDocument(name, data, fixOptions(c))
	if err != nil {
		l.Warn("Plan failed", zap.String("file", name), zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(plan)
}

// HandleFix returns the rewritten document.
// @Summary Fix Document
// @Description Rewrites the document with placeholders for missing lines and renumbered duplicates.
// @Tags lines
// @Accept mpfd
// @Produce application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param file formData file true "Document"
// @Param missing query boolean false "Fill missing lines (default true)"
// @Param duplicates query boolean false "Renumber duplicate lines (default true)"
// @Success 200 {file} file "Fixed document"
// @Failure 422 {object} map[string]string "Unreadable document"
// @Router /lines/fix [post]
func (h *Handler) HandleFix(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	name, data, err := readSingle(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.service.FixDocument(name, data, fixOptions(c))
	if err != nil {
		l.Warn("Fix failed", zap.String("file", name), zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Document fixed",
		zap.String("file", name),
		zap.Int("placeholders", result.Plan.Summary.PlaceholdersInserted),
		zap.Int("renumbered", result.Plan.Summary.Renumbered),
	)

	c.Attachment(result.OutputName)
	c.Set(fiber.HeaderContentType, document.MIMEType)
	c.Set("X-Lines-Total", strconv.Itoa(result.Plan.Summary.TotalLines))
	c.Set("X-Lines-Placeholders", strconv.Itoa(result.Plan.Summary.PlaceholdersInserted))
	c.Set("X-Lines-Renumbered", strconv.Itoa(result.Plan.Summary.Renumbered))
	return c.Send(result.Document)
}

// HandleBucket checks, and optionally fixes, the documents stored in the bucket.
// @Summary Check Bucket Documents
// @Description Checks every document under a prefix of the storage bucket. Optionally uploads fixed copies.
// @Tags lines
// @Produce json
// @Param prefix query string false "Object prefix"
// @Param fix query boolean false "Upload fixed copies"
// @Param missing query boolean false "Fill missing lines (default true)"
// @Param duplicates query boolean false "Renumber duplicate lines (default true)"
// @Success 200 {object} map[string]interface{} "Batch Report"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /lines/bucket [get]
func (h *Handler) HandleBucket(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	prefix := c.Query("prefix")
	fix := utils.ToBool(c.Query("fix"))

	var (
		items []BatchItem
		err   error
	)
	if fix {
		items, err = h.service.FixBucket(c.Context(), prefix, fixOptions(c))
	} else {
		items, err = h.service.CheckBucket(c.Context(), prefix)
	}
	if err != nil {
		l.Error("Bucket check failed", zap.String("prefix", prefix), zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	status := "checked"
	if fix {
		status = "fixed"
	}
	return c.JSON(fiber.Map{
		"status":  status,
		"summary": Summarize(items),
		"reports": items,
	})
}

func fixOptions(c *fiber.Ctx) reconcile.Options {
	return reconcile.Options{
		FixMissing:    utils.ToBool(c.Query("missing", "true")),
		FixDuplicates: utils.ToBool(c.Query("duplicates", "true")),
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, document.ErrInvalidDocument), errors.Is(err, document.ErrMissingBody):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, storage.ErrDisabled):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func formFiles(c *fiber.Ctx, field string) ([]*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("expected a multipart form: %w", err)
	}
	files := form.File[field]
	if len(files) == 0 {
		files = form.File["file"]
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no document uploaded in field %q", field)
	}
	return files, nil
}

func readSingle(c *fiber.Ctx) (string, []byte, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", nil, fmt.Errorf("no document uploaded in field %q", "file")
	}
	data, err := readFileHeader(fh)
	if err != nil {
		return "", nil, err
	}
	return fh.Filename, data, nil
}

func multipartUpload(fh *multipart.FileHeader) Upload {
	return Upload{
		Name: fh.Filename,
		Load: func(context.Context) ([]byte, error) { return readFileHeader(fh) },
	}
}

func readFileHeader(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload %s: %w", fh.Filename, err)
	}
	return data, nil
}
