package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults(14))
	assert.True(t, Loaded(Prompt))
	assert.True(t, Loaded(Debug))
	assert.NotNil(t, Prompt.Get())
}

func TestLoadFontInvalid(t *testing.T) {
	err := LoadFont("broken", []byte("nope"))
	assert.Error(t, err)
	assert.False(t, Loaded("broken"))
}

func TestGetMissingPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
