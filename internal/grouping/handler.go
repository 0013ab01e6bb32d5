package grouping

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/aevon-lab/groupby/groupby"
	coreagg "github.com/aevon-lab/groupby/internal/core/aggregation"
	httperr "github.com/aevon-lab/groupby/internal/core/errors"
	"github.com/aevon-lab/groupby/internal/records"
	"github.com/gin-gonic/gin"
)

const (
	msgReadBodyFailed    = "Failed to read request body"
	msgInvalidJSON       = "Invalid JSON body"
	msgRuleNotFound      = "Grouping rule not found"
	msgInvalidRule       = "Invalid grouping rule"
	msgAggregationFailed = "Records could not be grouped"
	msgInternal          = "Failed to group records"
)

// groupingError carries the structured HTTP error shape from a helper back to the handler.
type groupingError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *groupingError) Error() string {
	return e.message
}

// HandleGroupByRule handles POST /v1/groupby/:rule. The body is a JSON array of records.
func (s *Service) HandleGroupByRule(c *gin.Context) {
	requestID := s.newRequestID()
	ruleName := c.Param("rule")

	body, gerr := s.readBody(c)
	if gerr != nil {
		writeError(c, gerr)
		return
	}

	recs, err := records.Decode(body, records.FormatJSON)
	if err != nil {
		slog.Warn("Invalid records body received", "error", err, "request_id", requestID, "payload_size", len(body))
		writeError(c, &groupingError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
			details:    err.Error(),
		})
		return
	}

	res, err := s.EvaluateRule(c.Request.Context(), ruleName, recs)
	if err != nil {
		writeError(c, toGroupingError(err, requestID))
		return
	}

	slog.Info("Grouped records",
		"request_id", requestID,
		"rule", res.Rule,
		"operator", res.Operator,
		"records", res.RecordCount,
		"groups", len(res.Groups))

	c.Header("X-Request-ID", requestID)
	c.JSON(http.StatusOK, GroupByResponse{RequestID: requestID, Result: *res})
}

// HandleGroupByAdHoc handles POST /v1/groupby with an inline rule.
func (s *Service) HandleGroupByAdHoc(c *gin.Context) {
	requestID := s.newRequestID()

	body, gerr := s.readBody(c)
	if gerr != nil {
		writeError(c, gerr)
		return
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var req AdHocRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("Invalid JSON body received", "error", err, "request_id", requestID, "payload_size", len(body))
		writeError(c, &groupingError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
			details:    err.Error(),
		})
		return
	}

	res, err := s.EvaluateAdHoc(req)
	if err != nil {
		writeError(c, toGroupingError(err, requestID))
		return
	}

	slog.Info("Grouped records",
		"request_id", requestID,
		"rule", res.Rule,
		"operator", res.Operator,
		"records", res.RecordCount,
		"groups", len(res.Groups))

	c.Header("X-Request-ID", requestID)
	c.JSON(http.StatusOK, GroupByResponse{RequestID: requestID, Result: *res})
}

// HandleListRules handles GET /v1/rules. Query parameter operator filters the list.
func (s *Service) HandleListRules(c *gin.Context) {
	rules, err := s.ListRules(c.Request.Context(), c.Query("operator"))
	if err != nil {
		slog.Error("Failed to list rules", "error", err)
		writeError(c, &groupingError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    "Failed to list rules",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

// readBody reads the request body, enforcing the configured size limit.
func (s *Service) readBody(c *gin.Context) ([]byte, *groupingError) {
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	body, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		return nil, &groupingError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(body)) > maxBytes {
		slog.Warn("Request body exceeds maximum size", "size", len(body), "max", maxBytes)
		return nil, &groupingError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpPayloadTooLargeError,
			message:    "Request body exceeds maximum allowed size",
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}
	return body, nil
}

func toGroupingError(err error, requestID string) *groupingError {
	switch {
	case errors.Is(err, coreagg.ErrRuleNotFound):
		slog.Info("Unknown rule requested", "error", err, "request_id", requestID)
		return &groupingError{
			statusCode: http.StatusNotFound,
			errorType:  httperr.HttpRuleNotFoundError,
			message:    msgRuleNotFound,
			details:    err.Error(),
		}
	case errors.Is(err, coreagg.ErrInvalidRule), errors.Is(err, coreagg.ErrUnknownOperator):
		slog.Warn("Invalid rule", "error", err, "request_id", requestID)
		return &groupingError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidRuleError,
			message:    msgInvalidRule,
			details:    err.Error(),
		}
	case errors.Is(err, coreagg.ErrShape),
		errors.Is(err, coreagg.ErrOperator),
		errors.Is(err, coreagg.ErrMissingField),
		errors.Is(err, coreagg.ErrUnhashableKey):
		details := map[string]interface{}{"error": err.Error()}
		var cbErr *groupby.CallbackError
		if errors.As(err, &cbErr) {
			details["record_index"] = cbErr.Index
			details["stage"] = cbErr.Stage
		}
		slog.Warn("Records could not be grouped", "error", err, "request_id", requestID)
		return &groupingError{
			statusCode: http.StatusUnprocessableEntity,
			errorType:  httperr.HttpAggregationError,
			message:    msgAggregationFailed,
			details:    details,
		}
	}

	slog.Error("Failed to group records", "error", err, "request_id", requestID)
	return &groupingError{
		statusCode: http.StatusInternalServerError,
		errorType:  httperr.HttpInternalError,
		message:    msgInternal,
	}
}

// writeError serializes a groupingError as the JSON HTTP response.
func writeError(c *gin.Context, err *groupingError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
