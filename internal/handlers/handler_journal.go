package handlers

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wayfarerhq/wayfarer_backend/internal/apperrors"
	portssvc "github.com/wayfarerhq/wayfarer_backend/internal/core/ports/services"
	"github.com/wayfarerhq/wayfarer_backend/internal/dto"
	"github.com/wayfarerhq/wayfarer_backend/internal/middleware"
)

// journalHandler handles HTTP requests related to journals and their photos.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

// registerJournalRoutes registers all journal-related routes.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	tripJournals := rg.Group("/trips/:tripID/journals")
	{
		tripJournals.POST("", h.addJournal)
		tripJournals.GET("", h.listJournals)
	}

	journals := rg.Group("/journals")
	{
		journals.PUT("/:journalID", h.editJournal)
		journals.DELETE("/:journalID", h.deleteJournal)
	}
}

// collectPhotos opens every file in the "photos" multipart field. Captions
// come from the parallel "captions" field, matched by index. The returned
// closers must be called once the uploads are consumed.
func collectPhotos(form *multipart.Form) ([]dto.PhotoUpload, []func(), error) {
	files := form.File["photos"]
	captions := form.Value["captions"]

	photos := make([]dto.PhotoUpload, 0, len(files))
	closers := make([]func(), 0, len(files))
	for i, fh := range files {
		f, err := fh.Open()
		if err != nil {
			for _, closeFn := range closers {
				closeFn()
			}
			return nil, nil, err
		}
		caption := ""
		if i < len(captions) {
			caption = captions[i]
		}
		photos = append(photos, dto.PhotoUpload{Filename: fh.Filename, Caption: caption, Content: f})
		closers = append(closers, func() { f.Close() })
	}
	return photos, closers, nil
}

// addJournal godoc
// @Summary Add a journal entry to a trip
// @Description Creates a journal entry with an optional comment and photos (multipart form, fields "comment", "photos", "captions"). The journal is committed before photos are stored; photo failures are reported per file and never abort the journal.
// @Tags journals
// @Accept multipart/form-data
// @Produce json
// @Param tripID path string true "Trip ID"
// @Param comment formData string false "Journal comment"
// @Param photos formData file false "Photos"
// @Success 201 {object} dto.CreateJournalResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{tripID}/journals [post]
func (h *journalHandler) addJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	username, ok := middleware.GetUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid multipart form: " + err.Error()})
		return
	}

	comment := c.PostForm("comment")
	photos, closers, err := collectPhotos(form)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read uploaded files"})
		return
	}
	defer func() {
		for _, closeFn := range closers {
			closeFn()
		}
	}()

	journal, failed, err := h.journalService.AddJournal(c.Request.Context(), username, c.Param("tripID"), comment, photos)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
			return
		}
		logger.Error("Failed to add journal", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to add journal"})
		return
	}

	c.JSON(http.StatusCreated, dto.CreateJournalResponse{Journal: dto.ToJournalResponse(journal), Failed: failed})
}

// editJournal godoc
// @Summary Edit a journal entry
// @Description Updates the comment and appends new photos (multipart form). Existing images are never removed here.
// @Tags journals
// @Accept multipart/form-data
// @Produce json
// @Param journalID path string true "Journal ID"
// @Param comment formData string false "New comment"
// @Param photos formData file false "Additional photos"
// @Success 200 {object} dto.CreateJournalResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Journal not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /journals/{journalID} [put]
func (h *journalHandler) editJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	username, ok := middleware.GetUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid multipart form: " + err.Error()})
		return
	}

	var newComment *string
	if values, exists := form.Value["comment"]; exists && len(values) > 0 {
		newComment = &values[0]
	}

	photos, closers, err := collectPhotos(form)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read uploaded files"})
		return
	}
	defer func() {
		for _, closeFn := range closers {
			closeFn()
		}
	}()

	journal, failed, err := h.journalService.EditJournal(c.Request.Context(), username, c.Param("journalID"), newComment, photos)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Journal not found"})
			return
		}
		logger.Error("Failed to edit journal", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to edit journal"})
		return
	}

	c.JSON(http.StatusOK, dto.CreateJournalResponse{Journal: dto.ToJournalResponse(journal), Failed: failed})
}

// deleteJournal godoc
// @Summary Delete a journal entry
// @Description Deletes the journal and its image links in one transaction; images with no remaining references are removed from storage.
// @Tags journals
// @Produce json
// @Param journalID path string true "Journal ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Journal not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /journals/{journalID} [delete]
func (h *journalHandler) deleteJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	username, ok := middleware.GetUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.journalService.DeleteJournal(c.Request.Context(), username, c.Param("journalID")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Journal not found"})
			return
		}
		logger.Error("Failed to delete journal", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete journal"})
		return
	}

	c.Status(http.StatusNoContent)
}

// listJournals godoc
// @Summary List the journals of one trip
// @Description Returns the trip's journals with their images in upload order.
// @Tags journals
// @Produce json
// @Param tripID path string true "Trip ID"
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{tripID}/journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	username, ok := middleware.GetUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	journals, err := h.journalService.ListJournals(c.Request.Context(), username, c.Param("tripID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
			return
		}
		logger.Error("Failed to list journals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list journals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListJournalsResponse(journals))
}
