package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"content-manager-api/internal/application/ports"
	"content-manager-api/internal/domain/attachment"
)

// formFiles extracts the uploaded file sections of a multipart request.
// Requests without a multipart body simply carry no uploads.
func formFiles(c *gin.Context) ports.UploadPayload {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File
}

// formString reports a text field as set-or-absent, so updates can tell an
// omitted field from an empty one.
func formString(c *gin.Context, key string) *string {
	if v, ok := c.GetPostForm(key); ok {
		return &v
	}
	return nil
}

// attachmentStatus maps attachment lifecycle failures to HTTP statuses.
// Returns 0 when the error is not attachment-related.
func attachmentStatus(err error) (int, string) {
	switch {
	case errors.Is(err, attachment.ErrUnsupportedMediaType),
		errors.Is(err, attachment.ErrFileTooLarge),
		errors.Is(err, attachment.ErrTooManyFiles):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, attachment.ErrUploadFailed):
		return http.StatusInternalServerError, "media upload failed"
	}
	return 0, ""
}
