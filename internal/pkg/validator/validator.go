package validator

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/glucoin/glucoin-ai/internal/config"
	"github.com/glucoin/glucoin-ai/internal/entity"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Validator checks uploads and request bodies against the API contract.
type Validator struct {
	cfg config.FileUploadConfig
}

func NewValidator(cfg config.FileUploadConfig) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateImageUpload validates a single image upload.
func (v *Validator) ValidateImageUpload(file *multipart.FileHeader) error {
	if file == nil {
		return fmt.Errorf("%w: file", entity.ErrMissingField)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return fmt.Errorf("%w: %s (allowed: jpg, jpeg, png)", entity.ErrInvalidExtension, ext)
	}

	if file.Size > v.cfg.MaxFileSize {
		return fmt.Errorf("%w: file '%s' is %d bytes (max %d)", entity.ErrFileTooLarge, file.Filename, file.Size, v.cfg.MaxFileSize)
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != "" &&
		!strings.HasPrefix(contentType, "image/") &&
		contentType != "application/octet-stream" {
		return fmt.Errorf("%w: content type '%s'", entity.ErrNotAnImage, contentType)
	}

	return nil
}

// MaxUploadSize is passed to ParseMultipartForm by the handlers.
func (v *Validator) MaxUploadSize() int64 {
	return v.cfg.MaxUploadSize
}

// ValidateChat validates a chat request.
func (v *Validator) ValidateChat(req *entity.ChatRequest) error {
	if strings.TrimSpace(req.Message) == "" {
		return fmt.Errorf("%w: message", entity.ErrMissingField)
	}
	return nil
}
