package response

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"collateral-loan-program/pkg/apperror"

	"github.com/google/uuid"
)

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	ErrorCode   string `json:"error_code"`
	Message     string `json:"message"`
	ProgramCode uint32 `json:"program_code"`
	RequestID   string `json:"request_id"`
	Timestamp   string `json:"timestamp"`
}

var now = time.Now

// OK writes data wrapped in a success envelope as one JSON line.
func OK(w io.Writer, requestID string, data interface{}) error {
	return write(w, SuccessResponse{
		Data:      data,
		RequestID: orNewID(requestID),
		Timestamp: now().UTC().Format(time.RFC3339),
	})
}

// Error writes err as an error envelope. An *apperror.AppError keeps its
// code; anything else is reported as SYS_000.
func Error(w io.Writer, requestID string, err error) error {
	resp := ErrorResponse{
		ErrorCode:   "SYS_000",
		Message:     "Internal error",
		ProgramCode: apperror.ProgramCodeInternal,
		RequestID:   orNewID(requestID),
		Timestamp:   now().UTC().Format(time.RFC3339),
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		resp.ErrorCode = appErr.Code
		resp.Message = appErr.Message
		resp.ProgramCode = appErr.ProgramCode
	}
	return write(w, resp)
}

func write(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func orNewID(id string) string {
	if id != "" {
		return id
	}
	return uuid.New().String()
}
