package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mealpicker/backend/internal/middleware"
	"github.com/mealpicker/backend/internal/service"
)

// UploadHandler exposes the upload broker: signing direct S3 uploads and
// deleting previously uploaded images.
type UploadHandler struct {
	uploadService service.IUploadService
	rateLimiter   *middleware.RateLimiter
	logger        zerolog.Logger
}

// NewUploadHandler creates a new upload handler. rateLimiter may be nil when
// Redis is not configured.
func NewUploadHandler(uploadService service.IUploadService, rateLimiter *middleware.RateLimiter, logger zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		rateLimiter:   rateLimiter,
		logger:        logger.With().Str("handler", "upload").Logger(),
	}
}

// RegisterRoutes registers the signing and image routes
func (h *UploadHandler) RegisterRoutes(router *gin.RouterGroup) {
	sign := router.Group("/sign-s3")
	if h.rateLimiter != nil {
		sign.Use(h.rateLimiter.RateLimitMiddleware())
	}
	sign.GET("", h.SignS3)

	router.DELETE("/images", h.DeleteImage)
}

// SignS3 issues a presigned upload URL for the named file. The client PUTs
// the bytes directly against the returned URL; the server never sees them.
func (h *UploadHandler) SignS3(c *gin.Context) {
	fileName := c.Query("file-name")
	fileType := c.Query("file-type")

	signed, err := h.uploadService.SignUpload(c.Request.Context(), fileName, fileType)
	if err != nil {
		h.logger.Error().Err(err).Str("file", fileName).Msg("failed to sign upload request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error while signing upload request"})
		return
	}

	c.JSON(http.StatusOK, signed)
}

// DeleteImage removes the object behind a public image URL. URLs outside
// the recognized bucket domains are ignored without error.
func (h *UploadHandler) DeleteImage(c *gin.Context) {
	imgURL := c.Query("img_url")
	if imgURL == "" {
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.uploadService.DeleteImage(c.Request.Context(), imgURL); err != nil {
		h.logger.Error().Err(err).Str("url", imgURL).Msg("failed to delete image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete image"})
		return
	}

	c.Status(http.StatusNoContent)
}
