package errors_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/dirmark/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestIOError(t *testing.T) {
	t.Run("with path", func(t *testing.T) {
		err := pkgerrors.NewIOError("list", "/tmp/missing", fs.ErrNotExist)
		assert.Equal(t, "IO error during list of /tmp/missing: file does not exist", err.Error())
	})

	t.Run("without path", func(t *testing.T) {
		err := &pkgerrors.IOError{Operation: "write", Message: "broken pipe"}
		assert.Equal(t, "IO error during write: broken pipe", err.Error())
	})

	t.Run("unwraps to underlying error", func(t *testing.T) {
		underlying := fs.ErrPermission
		err := pkgerrors.WrapIO("list", ".", underlying)
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrPermission))

		var ioErr *pkgerrors.IOError
		require.True(t, errors.As(err, &ioErr))
		assert.Equal(t, "list", ioErr.Operation)
		assert.Equal(t, ".", ioErr.Path)
	})

	t.Run("wrap nil returns nil", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapIO("list", ".", nil))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "log-level",
			Message: "unknown level",
		}
		assert.Equal(t, "validation failed for field log-level: unknown level", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("dir", "", "cannot be empty")
		assert.Equal(t, "validation failed for field dir: cannot be empty", err.Error())
	})
}

func TestConfigError(t *testing.T) {
	t.Run("with component", func(t *testing.T) {
		err := pkgerrors.NewConfigError("app", "bad config file", nil)
		assert.Equal(t, "configuration error in app: bad config file", err.Error())
	})

	t.Run("unwraps", func(t *testing.T) {
		underlying := pkgerrors.New("boom")
		err := pkgerrors.WrapConfig("app", underlying)
		assert.True(t, errors.Is(err, underlying))
	})

	t.Run("wrap nil returns nil", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapConfig("app", nil))
	})
}
