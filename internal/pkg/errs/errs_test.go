//go:build unit

package errs_test

import (
	"testing"

	"offer-console/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapNilPassesThrough(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "context"))
}

func TestMark(t *testing.T) {
	sentinel := errs.New("sentinel")

	marked := errs.Mark(errs.New("underlying"), sentinel)
	assert.ErrorIs(t, marked, sentinel)
	assert.Equal(t, "underlying", marked.Error(), "marking keeps the original message")

	assert.ErrorIs(t, errs.Mark(nil, sentinel), sentinel)
}

func TestExtractStackLines(t *testing.T) {
	err := errs.Wrap(errs.New("boom"), "submit")

	lines := errs.ExtractStackLines(err, 3)
	require.NotEmpty(t, lines)
	assert.Equal(t, "submit: boom", lines[0])
	assert.LessOrEqual(t, len(lines), 3)

	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
