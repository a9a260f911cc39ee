package handlers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dapurkita/backoffice/internal/config"
	"github.com/dapurkita/backoffice/internal/dto"
	"github.com/dapurkita/backoffice/internal/services"
	"github.com/dapurkita/backoffice/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxImageSize = 10 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/heic": true,
}

type StorageHandler struct {
	cleanup *services.CleanupService
	store   storage.ObjectStore
	cfg     *config.Config
}

func NewStorageHandler(cleanup *services.CleanupService, store storage.ObjectStore, cfg *config.Config) *StorageHandler {
	return &StorageHandler{cleanup: cleanup, store: store, cfg: cfg}
}

// CleanupPreview handles GET /storage/cleanup - dry run, nothing deleted.
func (h *StorageHandler) CleanupPreview(c *fiber.Ctx) error {
	preview, err := h.cleanup.Preview(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(preview)
}

// CleanupRun handles POST /storage/cleanup - deletes orphaned files.
func (h *StorageHandler) CleanupRun(c *fiber.Ctx) error {
	result, err := h.cleanup.Cleanup(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(result)
}

func (h *StorageHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.cleanup.Status(c.Context(), h.cfg.S3Bucket))
}

// Upload handles POST /upload - multipart images, responds with public URLs.
func (h *StorageHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Multipart form is required",
		})
	}

	files := form.File["images"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "At least one image file is required",
		})
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		if file.Size > maxImageSize {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Image size must be less than 10MB",
			})
		}
		contentType := file.Header.Get("Content-Type")
		if !allowedImageTypes[contentType] {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid image format. Only JPEG, PNG, WEBP, and HEIC are allowed",
			})
		}

		src, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to read image",
			})
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if ext == "" {
			ext = ".jpg"
		}
		// Time plus randomness keeps filenames collision-free without locking.
		key := fmt.Sprintf("%s/%d-%s%s",
			h.cfg.StoragePrefix, time.Now().UnixMilli(), uuid.New().String()[:8], ext)

		url, err := h.store.Upload(c.Context(), key, src, contentType)
		src.Close()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to upload image",
			})
		}
		urls = append(urls, url)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{URLs: urls})
}
