package api

import (
	"errors"
	"log/slog"
	"net/http"

	"elite-drive/internal/handler/httperr"
	"elite-drive/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	msgMissingFields     = "Missing required fields"
	msgInvalidRequest    = "Invalid request format"
	msgInvalidIdentifier = "Invalid identifier"
	msgInvalidInput      = "Invalid input"
	msgSlotNotAvailable  = "Slot not available"
	msgInternal          = "Internal server error"
)

// respondError maps use case errors onto the HTTP error envelope.
func respondError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrMissingField):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgMissingFields, nil)
	case errs.Is(err, errs.ErrInvalidIdentifier):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidIdentifier, nil)
	case errs.Is(err, errs.ErrInvalidInput):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidInput, nil)
	case errs.Is(err, errs.ErrSlotNotAvailable):
		httperr.AbortWithError(c, http.StatusConflict, err, msgSlotNotAvailable, nil)
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 8),
		)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
	}
}

// bindJSON binds the body and writes the 400 response itself on failure.
// Failed `required` rules are reported as missing fields, listed in detail.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		missing := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			missing = append(missing, fe.Field())
		}
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrMissingField), msgMissingFields, gin.H{"fields": missing})
		return false
	}

	httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidInput), msgInvalidRequest, nil)
	return false
}
