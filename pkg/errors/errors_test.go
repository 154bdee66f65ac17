// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, code lookup and exit code mapping

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/sysknife/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{"usage", errors.ErrUsage, "require at least one directory", "[USAGE] require at least one directory"},
		{"target", errors.ErrTargetInvalid, "not writable", "[TARGET_INVALID] not writable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)
			assert.Equal(t, tt.code, err.Code)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidInput, "bad count %d", -3)
	assert.Equal(t, "bad count -3", err.Message)
}

func TestWrap(t *testing.T) {
	base := stderrors.New("exit status 1")

	err := errors.Wrap(base, errors.ErrSearchFailed, "find failed")
	require.NotNil(t, err)
	assert.Equal(t, "[SEARCH_FAILED] find failed: exit status 1", err.Error())
	assert.True(t, stderrors.Is(err, base))

	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "nothing"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "nothing %d", 1))
}

func TestIs(t *testing.T) {
	a := errors.New(errors.ErrSymlinkExists, "a")
	b := errors.New(errors.ErrSymlinkExists, "b")
	c := errors.New(errors.ErrSymlinkCreate, "c")

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, c))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrTargetInvalid, "bad target").
		WithDetail("path", "/tmp/x")
	assert.Equal(t, "/tmp/x", err.Details["path"])

	bare := &errors.SysknifeError{Code: errors.ErrInternal}
	bare.WithDetail("k", 1)
	assert.Equal(t, 1, bare.Details["k"])
}

func TestGetErrorCode(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", errors.New(errors.ErrWordlistRead, "inner"))

	assert.Equal(t, errors.ErrWordlistRead, errors.GetErrorCode(wrapped))
	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrWordlistRead))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, errors.ExitOK},
		{"usage", errors.New(errors.ErrUsage, "x"), errors.ExitFailure},
		{"target", errors.New(errors.ErrTargetInvalid, "x"), errors.ExitFailure},
		{"conflict", errors.New(errors.ErrFlagConflict, "x"), errors.ExitFlagConflict},
		{"search", errors.Wrap(stderrors.New("boom"), errors.ErrSearchFailed, "x"), errors.ExitSearchFailed},
		{"plain", stderrors.New("boom"), errors.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.ExitCode(tt.err))
		})
	}
}
