package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "esc")
}

func TestDefaultKeyMap_ForceQuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.ForceQuit.Keys()
	assert.Contains(t, keys, "ctrl+c")
}

func TestDefaultKeyMap_ToggleAnalysisBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.ToggleAnalysis.Keys()
	assert.Contains(t, keys, "tab")
}

func TestDefaultKeyMap_ClearBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Clear.Keys()
	assert.Contains(t, keys, "ctrl+u")
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()

	assert.Len(t, bindings, 3)
	assert.Equal(t, km.ToggleAnalysis, bindings[0])
	assert.Equal(t, km.Clear, bindings[1])
	assert.Equal(t, km.Quit, bindings[2])
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.FullHelp()

	assert.Len(t, bindings, 2)    // 2 groups
	assert.Len(t, bindings[0], 2) // ToggleAnalysis, Clear
	assert.Len(t, bindings[1], 2) // Quit, ForceQuit
}

func TestMatches_True(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("esc", km.Quit))
	assert.True(t, Matches("ctrl+c", km.ForceQuit))
	assert.True(t, Matches("tab", km.ToggleAnalysis))
	assert.True(t, Matches("ctrl+u", km.Clear))
}

func TestMatches_False(t *testing.T) {
	km := DefaultKeyMap()

	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("a", km.ToggleAnalysis))
	assert.False(t, Matches("ctrl+c", km.Clear))
}

func TestBindings_HaveHelp(t *testing.T) {
	km := DefaultKeyMap()

	testCases := []struct {
		name    string
		binding key.Binding
	}{
		{"Quit", km.Quit},
		{"ForceQuit", km.ForceQuit},
		{"ToggleAnalysis", km.ToggleAnalysis},
		{"Clear", km.Clear},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			help := tc.binding.Help()
			assert.NotEmpty(t, help.Key, "binding should have help key")
		})
	}
}
