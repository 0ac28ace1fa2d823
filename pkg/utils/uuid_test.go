package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBatchID(t *testing.T) {
	id, err := GenerateBatchID()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, "IMP-"))
	assert.Len(t, id, len("IMP-")+12)

	other, err := GenerateBatchID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}
