package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesDefineAllNames(t *testing.T) {
	require.NoError(t, LoadStylesFromData(embeddedStyles))
	for _, name := range Names {
		_, ok := registry[name]
		assert.True(t, ok, "style %s missing from styles.yaml", name)
	}
}

func TestGetStyleUnknownIsPlain(t *testing.T) {
	assert.Equal(t, "text", GetStyle("NoSuchStyle").Render("text"))
}

func TestLoadStylesFromDataRejectsBadYAML(t *testing.T) {
	err := LoadStylesFromData([]byte("colors: [unterminated"))
	assert.Error(t, err)
	// restore for other tests
	require.NoError(t, LoadStylesFromData(embeddedStyles))
}

func TestBuildStyleBold(t *testing.T) {
	style := buildStyle(StyleDef{Bold: true, Foreground: "missing"}, nil)
	assert.True(t, style.GetBold())
}
