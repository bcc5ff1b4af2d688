package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps the service error taxonomy onto HTTP codes:
// invalid input 400, unknown id 404, schema violation 502 (the upstream model
// produced an unusable document), provider unavailable 503.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrFeedbackNotFound):
		RespondError(c, http.StatusNotFound, "Feedback not found")
	case errors.Is(err, ErrInvalidRating),
		errors.Is(err, ErrEmptyComment),
		errors.Is(err, ErrEmptyUserID),
		errors.Is(err, ErrUnknownCategory),
		errors.Is(err, ErrInvalidTimestamp):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrSchemaValidation):
		log.Warn().Err(err).Str("trace_id", traceID(c)).Msg("ai response failed schema validation")
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrAnalysisUnavailable):
		RespondError(c, http.StatusServiceUnavailable, "AI analysis is currently unavailable")
	case errors.Is(err, ErrDatabaseError):
		log.Error().Err(err).Str("trace_id", traceID(c)).Msg("database error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Error().Err(err).Str("trace_id", traceID(c)).Msg("unhandled service error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
