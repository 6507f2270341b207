package gen

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStubError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := NewStubError(StubMain, "stubs/create.entity.main.stub", fs.ErrNotExist)

		assert.Contains(t, err.Error(), "eav: stub error")
		assert.Contains(t, err.Error(), "for create.entity.main.stub")
		assert.Contains(t, err.Error(), "path: stubs/create.entity.main.stub")
		assert.Contains(t, err.Error(), "file does not exist")
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		err := NewStubError(StubEntity, "", fs.ErrNotExist)

		assert.Equal(t, fs.ErrNotExist, err.Unwrap())
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("Is matches ErrStubNotFound", func(t *testing.T) {
		err := NewStubError(StubEntity, "", nil)
		assert.True(t, errors.Is(err, ErrStubNotFound))
		assert.False(t, errors.Is(err, ErrWriteFailed))
	})

	t.Run("IsStubError helper", func(t *testing.T) {
		assert.True(t, IsStubError(NewStubError(StubMain, "", nil)))
		assert.False(t, IsStubError(errors.New("other")))
	})
}

func TestWriteError(t *testing.T) {
	t.Run("Error message with cause", func(t *testing.T) {
		err := NewWriteError("/tmp/x.go", errors.New("disk full"))
		assert.Equal(t, "eav: write /tmp/x.go: disk full", err.Error())
	})

	t.Run("Error message without cause", func(t *testing.T) {
		err := &WriteError{Path: "/tmp/x.go"}
		assert.Equal(t, "eav: write /tmp/x.go", err.Error())
	})

	t.Run("Is matches ErrWriteFailed", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := NewWriteError("/tmp/x.go", cause)

		assert.True(t, errors.Is(err, ErrWriteFailed))
		assert.True(t, errors.Is(err, cause))
		assert.True(t, IsWriteError(err))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := NewConfigError("Extension", "go", "must start with a dot")

		assert.Contains(t, err.Error(), "eav: config error")
		assert.Contains(t, err.Error(), "Extension")
		assert.Contains(t, err.Error(), "go")
		assert.Contains(t, err.Error(), "must start with a dot")
	})

	t.Run("Error message without value", func(t *testing.T) {
		err := NewConfigError("Stubs", nil, "cannot be nil")
		assert.Equal(t, `eav: config error for "Stubs": cannot be nil`, err.Error())
	})

	t.Run("Is matches ErrMissingConfig", func(t *testing.T) {
		err := NewConfigError("Stubs", nil, "cannot be nil")
		assert.True(t, errors.Is(err, ErrMissingConfig))
		assert.True(t, IsConfigError(err))
	})
}

func TestGenerationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("expected declaration")
		err := NewGenerationError("format", "x.go", "invalid Go source", cause)

		assert.Contains(t, err.Error(), "eav: generation error")
		assert.Contains(t, err.Error(), "in phase format")
		assert.Contains(t, err.Error(), "(file: x.go)")
		assert.Contains(t, err.Error(), "invalid Go source")
		assert.Contains(t, err.Error(), "expected declaration")
	})

	t.Run("Unwrap and Is", func(t *testing.T) {
		cause := errors.New("root cause")
		err := NewGenerationError("main", "", "", cause)

		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, ErrGenerationFailed))
		assert.True(t, IsGenerationError(err))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := NewValidationError("name", "bad name", "not an identifier")
		assert.Equal(t, `eav: validation error on name "bad name": not an identifier`, err.Error())
	})

	t.Run("Is matches ErrValidationFailed", func(t *testing.T) {
		err := NewValidationError("name", "", "empty")
		assert.True(t, errors.Is(err, ErrValidationFailed))
		assert.True(t, IsValidationError(err))
		assert.False(t, IsValidationError(errors.New("other")))
	})
}
