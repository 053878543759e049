package apperror

import (
	"errors"
	"fmt"
)

// AppError is a structured error that the host runtime surfaces to the caller.
type AppError struct {
	Code        string `json:"error_code"`
	Message     string `json:"message"`
	ProgramCode uint32 `json:"program_code"` // Custom error code reported to the host
	Err         error  `json:"-"`            // Wrapped internal error (not part of the program result)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, programCode uint32) *AppError {
	return &AppError{
		Code:        code,
		Message:     message,
		ProgramCode: programCode,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, programCode uint32, err error) *AppError {
	return &AppError{
		Code:        code,
		Message:     message,
		ProgramCode: programCode,
		Err:         err,
	}
}

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// Is reports whether err carries an AppError with the given code.
func Is(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}

// Host-visible program error codes. Values are part of the program ABI.
const (
	ProgramCodeDecode            uint32 = 1
	ProgramCodeFormat            uint32 = 2
	ProgramCodeInsufficientFunds uint32 = 3
	ProgramCodeArithmetic        uint32 = 4
	ProgramCodeEntrypoint        uint32 = 5
	ProgramCodeHost              uint32 = 6
	ProgramCodeInternal          uint32 = 7
)

// ---- Instruction Decoding (DEC) ----

func ErrTruncated(field string) *AppError {
	return New("DEC_001", fmt.Sprintf("Instruction truncated reading %s", field), ProgramCodeDecode)
}

func ErrUnknownTag(tag uint8) *AppError {
	return New("DEC_002", fmt.Sprintf("Unknown instruction tag %d", tag), ProgramCodeDecode)
}

func ErrMalformedField(field string, err error) *AppError {
	return Wrap("DEC_003", fmt.Sprintf("Malformed field %s", field), ProgramCodeDecode, err)
}

func ErrTrailingBytes(n int) *AppError {
	return New("DEC_004", fmt.Sprintf("Instruction has %d unread trailing bytes", n), ProgramCodeDecode)
}

// ---- Embedded Transaction Format (FMT) ----

func ErrInvalidTransaction(err error) *AppError {
	return Wrap("FMT_001", "Invalid embedded transaction", ProgramCodeFormat, err)
}

func ErrTransactionTrailingBytes(n int) *AppError {
	return New("FMT_002", fmt.Sprintf("Embedded transaction has %d unread trailing bytes", n), ProgramCodeFormat)
}

// ---- Settlement Business Logic (PAY) ----

func ErrInsufficientFunds() *AppError {
	return New("PAY_001", "Insufficient balance to cover payment and fees", ProgramCodeInsufficientFunds)
}

// ---- Arithmetic Faults (ARI) ----

func ErrOverflow(op string) *AppError {
	return New("ARI_001", fmt.Sprintf("Arithmetic overflow in %s", op), ProgramCodeArithmetic)
}

func ErrUnderflow(op string) *AppError {
	return New("ARI_002", fmt.Sprintf("Arithmetic underflow in %s", op), ProgramCodeArithmetic)
}

// ---- Entrypoint (ENT) ----

func ErrReentrantInvocation() *AppError {
	return New("ENT_001", "Program invoked re-entrantly", ProgramCodeEntrypoint)
}

func ErrNoProgram() *AppError {
	return New("ENT_002", "No program registered at the entrypoint", ProgramCodeEntrypoint)
}

// ---- Host Runtime (HOST) ----

func ErrSlotNotFound(ref string) *AppError {
	return New("HOST_001", fmt.Sprintf("Storage slot %s not found", ref), ProgramCodeHost)
}

func ErrDuplicateSlot(ref string) *AppError {
	return New("HOST_002", fmt.Sprintf("Storage slot %s referenced more than once", ref), ProgramCodeHost)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal error", ProgramCodeInternal, err)
}

func ErrStorage(err error) *AppError {
	return Wrap("SYS_002", "Slot storage failure", ProgramCodeInternal, err)
}
