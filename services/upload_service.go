package services

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/portfolio-api/logger"
)

const sniffLen = 3072

// UploadError is a rejected upload that the client can fix
type UploadError struct {
	Message string
}

func (e *UploadError) Error() string {
	return e.Message
}

var (
	ErrNoFile       = &UploadError{Message: "Please upload a file"}
	ErrNotImage     = &UploadError{Message: "Please upload an image file"}
	ErrImageTooBig  = &UploadError{Message: "Please upload an image less than 1MB"}
	ErrUploadFailed = errors.New("problem with file upload")
)

// ImageUpload describes a received file
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UploadImage stores an image for a project and points the project at it.
// A nil upload means the request carried no file.
func (s *ProjectService) UploadImage(ctx context.Context, id string, upload *ImageUpload) (string, error) {
	project, err := s.GetProject(ctx, id)
	if err != nil {
		return "", err
	}
	if upload == nil || upload.Content == nil {
		return "", ErrNoFile
	}

	content := bufio.NewReaderSize(upload.Content, sniffLen)
	head, _ := content.Peek(sniffLen)
	mime := upload.ContentType
	if mime == "" || strings.HasPrefix(mime, "application/octet-stream") {
		mime = detectMIME(head)
	}
	if !strings.HasPrefix(mime, "image") {
		return "", ErrNotImage
	}
	if upload.Size > s.maxImage {
		return "", ErrImageTooBig
	}

	name := fmt.Sprintf("project_%s%s", project.ID, imageExtension(upload.Filename, head))
	if err := s.images.Save(name, content); err != nil {
		logger.FromContext(ctx).Error("Image upload failed", "project", project.ID, "error", err)
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if err := s.projects.UpdateImage(ctx, project.ID, name); err != nil {
		return "", err
	}
	return name, nil
}

// detectMIME tries the stdlib sniffer first and falls back to mimetype
func detectMIME(head []byte) string {
	if len(head) == 0 {
		return "application/octet-stream"
	}
	mt := http.DetectContentType(head)
	if mt != "application/octet-stream" {
		return mt
	}
	return mimetype.Detect(head).String()
}

func imageExtension(filename string, head []byte) string {
	if ext := filepath.Ext(filepath.Base(filename)); ext != "" {
		return ext
	}
	if len(head) == 0 {
		return ""
	}
	return mimetype.Detect(head).Extension()
}
