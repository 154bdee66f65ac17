package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category independently of its message.
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Command line errors
	ErrUsage         ErrorCode = "USAGE"
	ErrFlagConflict  ErrorCode = "FLAG_CONFLICT"
	ErrTargetInvalid ErrorCode = "TARGET_INVALID"

	// Candidate search errors
	ErrSearchFailed ErrorCode = "SEARCH_FAILED"

	// Link errors
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrSymlinkExists ErrorCode = "SYMLINK_EXISTS"
	ErrSymlinkRemove ErrorCode = "SYMLINK_REMOVE"

	// Flood errors
	ErrSyslogWrite  ErrorCode = "SYSLOG_WRITE"
	ErrWordlistRead ErrorCode = "WORDLIST_READ"
)

// Process exit statuses returned by ExitCode.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitFlagConflict = 2
	ExitSearchFailed = 3
)

// SysknifeError is a coded error carrying optional structured details.
type SysknifeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *SysknifeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *SysknifeError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a SysknifeError with the same code.
func (e *SysknifeError) Is(target error) bool {
	var other *SysknifeError
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// WithDetail attaches a key/value pair and returns the receiver.
func (e *SysknifeError) WithDetail(key string, value interface{}) *SysknifeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

func New(code ErrorCode, message string) *SysknifeError {
	return &SysknifeError{Code: code, Message: message, Details: make(map[string]interface{})}
}

func Newf(code ErrorCode, format string, args ...interface{}) *SysknifeError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap returns nil when err is nil so it can be used in return statements.
func Wrap(err error, code ErrorCode, message string) *SysknifeError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SysknifeError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// IsErrorCode checks whether any error in the chain carries code.
func IsErrorCode(err error, code ErrorCode) bool {
	return GetErrorCode(err) == code
}

// GetErrorCode returns the outermost code in the chain, or ErrUnknown.
func GetErrorCode(err error) ErrorCode {
	var se *SysknifeError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrUnknown
}

// ExitCode maps an error to the process exit status the CLI reports.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch GetErrorCode(err) {
	case ErrFlagConflict:
		return ExitFlagConflict
	case ErrSearchFailed:
		return ExitSearchFailed
	default:
		return ExitFailure
	}
}
