package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrEnvMissing, "MM_LINE_NUMBER must be set")

	assert.Equal(t, ErrEnvMissing, err.Code)
	assert.Equal(t, "[ENV_MISSING] MM_LINE_NUMBER must be set", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrRootInvalid, "not a directory: %s", "/tmp/nope")

	assert.Equal(t, "[ROOT_INVALID] not a directory: /tmp/nope", err.Error())
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := Wrap(cause, ErrTargetWrite, "failed to write target")

	assert.Equal(t, ErrTargetWrite, err.Code)
	assert.Contains(t, err.Error(), "permission denied")
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrTargetWrite, "no-op"))
	assert.Nil(t, Wrapf(nil, ErrTargetWrite, "no-op %d", 1))
}

func TestIsMatchesOnCode(t *testing.T) {
	err := Newf(ErrConfigWrite, "failed to write %s", "/home/user/.texttemplate_config")

	assert.True(t, stderrors.Is(err, New(ErrConfigWrite, "")))
	assert.False(t, stderrors.Is(err, New(ErrTargetWrite, "")))
}

func TestGetCode(t *testing.T) {
	err := New(ErrSettingsParse, "bad toml")
	wrapped := fmt.Errorf("outer: %w", err)

	assert.Equal(t, ErrSettingsParse, GetCode(err))
	assert.Equal(t, ErrSettingsParse, GetCode(wrapped))
	assert.Equal(t, ErrUnknown, GetCode(fmt.Errorf("plain")))
}

func TestIsCode(t *testing.T) {
	err := Wrap(fmt.Errorf("io"), ErrTargetRead, "failed to read target")

	require.Error(t, err)
	assert.True(t, IsCode(err, ErrTargetRead))
	assert.False(t, IsCode(err, ErrTargetWrite))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrTemplateRead, "failed to read template").
		WithDetail("path", "/templates/greeting.txt")

	assert.Equal(t, "/templates/greeting.txt", err.Details["path"])
}
