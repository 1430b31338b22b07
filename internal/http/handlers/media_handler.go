package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/h2non/filetype"

	"github.com/ignatzorin/homeservices-portal/internal/logger"
	"github.com/ignatzorin/homeservices-portal/internal/models"
	"github.com/ignatzorin/homeservices-portal/internal/storage"
)

// Разрешённые типы файлов для загрузки
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Разрешённые расширения файлов
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Каталоги для изображений
var uploadFolders = map[string]bool{
	"services":   true,
	"categories": true,
}

// MediaHandler загружает изображения услуг и категорий.
type MediaHandler struct {
	storage       *storage.MediaStorage
	publicBaseURL string
}

// NewMediaHandler создаёт новый хэндлер.
func NewMediaHandler(storage *storage.MediaStorage, publicBaseURL string) *MediaHandler {
	return &MediaHandler{storage: storage, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

// Upload обрабатывает POST /admin/uploads.
func (h *MediaHandler) Upload(c *gin.Context) {
	folder := c.DefaultPostForm("folder", "services")
	if !uploadFolders[folder] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown upload folder"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	if file.Size == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is empty"})
		return
	}
	if file.Size > h.storage.MaxUploadBytes() {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File is too large"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Unsupported file format. Allowed: %s", strings.Join(sortedKeys(allowedExtensions), ", ")),
		})
		return
	}

	src, err := file.Open()
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer src.Close()

	// Читаем первые 512 байт для проверки магических байтов
	buffer := make([]byte, 512)
	n, err := src.Read(buffer)
	if err != nil && err != io.EOF {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read file"})
		return
	}

	kind, err := filetype.Match(buffer[:n])
	if err != nil || kind == filetype.Unknown || !allowedMimeTypes[kind.MIME.Value] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only JPEG, PNG, GIF and WebP images are allowed"})
		return
	}

	// Расширение должно соответствовать содержимому; .jpg и .jpeg равнозначны
	expectedExt := "." + kind.Extension
	if ext != expectedExt && !(ext == ".jpeg" && expectedExt == ".jpg") && !(ext == ".jpg" && expectedExt == ".jpeg") {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File extension (%s) does not match its content (%s)", ext, expectedExt),
		})
		return
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		_ = c.Error(err)
		return
	}

	relativePath, size, err := h.storage.Save(c.Request.Context(), folder, expectedExt, src)
	if err != nil {
		_ = c.Error(err)
		return
	}

	logger.With("media").WithField("path", relativePath).WithField("size", size).Info("изображение загружено")

	c.JSON(http.StatusCreated, models.Upload{
		Path:        relativePath,
		URL:         h.publicBaseURL + "/media/" + relativePath,
		ContentType: kind.MIME.Value,
		Size:        size,
	})
}

// Delete обрабатывает POST /admin/uploads/delete (path — относительный путь из Upload).
func (h *MediaHandler) Delete(c *gin.Context) {
	relativePath := strings.TrimSpace(c.PostForm("path"))
	if relativePath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Path is required"})
		return
	}

	if err := h.storage.Delete(c.Request.Context(), relativePath); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
