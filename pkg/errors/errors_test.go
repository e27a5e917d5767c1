// Test Type: Unit Test
// Description: Tests for the errors package - structured errors with stable codes

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotskills/skillhook/pkg/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrConfigLoad, "cannot read rules file")
	assert.Equal(t, "[CONFIG_LOAD] cannot read rules file", err.Error())
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	assert.False(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := errors.Wrap(cause, errors.ErrFileAccess, "reading skills dir")

	assert.Contains(t, err.Error(), "FILE_ACCESS")
	assert.Contains(t, err.Error(), "permission denied")
	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, errors.ErrFileAccess, errors.GetErrorCode(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "ignored"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "ignored %d", 1))
}

func TestWithDetail(t *testing.T) {
	err := errors.Newf(errors.ErrRulePattern, "bad pattern in skill %q", "backend").
		WithDetail("pattern", "([unclosed")

	require.Contains(t, err.Details, "pattern")
	assert.Equal(t, "([unclosed", err.Details["pattern"])
}

func TestGetErrorCodeForeignError(t *testing.T) {
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain")))
}

func TestIsMatchesByCode(t *testing.T) {
	err := errors.Wrapf(fmt.Errorf("inner"), errors.ErrConfigParse, "outer")
	target := errors.New(errors.ErrConfigParse, "any message")
	assert.True(t, stderrors.Is(err, target))
}
