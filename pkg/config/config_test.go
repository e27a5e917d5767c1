// Test Type: Unit Test
// Description: Tests for the config package - layered settings loading

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotskills/skillhook/pkg/config"
	"github.com/dotskills/skillhook/pkg/paths"
	"github.com/dotskills/skillhook/pkg/testutil"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv(paths.EnvConfigDir, t.TempDir())
		p, err := paths.New(t.TempDir())
		require.NoError(t, err)

		settings, err := config.Load(p)
		require.NoError(t, err)

		assert.Equal(t, 10, settings.Matching.MaxSuggestions)
		assert.Equal(t, "auto", settings.Output.Color)
		assert.Equal(t, "text", settings.Output.Format)
		assert.Equal(t, 300, settings.Watch.DebounceMs)
		assert.Empty(t, settings.Paths.RulesFile)
	})

	t.Run("project_overrides_user", func(t *testing.T) {
		userDir := t.TempDir()
		projectDir := t.TempDir()
		t.Setenv(paths.EnvConfigDir, userDir)

		testutil.WriteFile(t, userDir, "skillhook.toml", `
[matching]
max_suggestions = 3

[output]
color = "never"
`)
		testutil.WriteFile(t, projectDir, ".skillhook.toml", `
[matching]
max_suggestions = 5
`)

		p, err := paths.New(projectDir)
		require.NoError(t, err)

		settings, err := config.Load(p)
		require.NoError(t, err)

		assert.Equal(t, 5, settings.Matching.MaxSuggestions)
		assert.Equal(t, "never", settings.Output.Color)
		assert.Equal(t, "text", settings.Output.Format)
	})

	t.Run("invalid_toml_is_config_error", func(t *testing.T) {
		projectDir := t.TempDir()
		t.Setenv(paths.EnvConfigDir, t.TempDir())
		testutil.WriteFile(t, projectDir, ".skillhook.toml", "not [valid toml")

		p, err := paths.New(projectDir)
		require.NoError(t, err)

		_, err = config.Load(p)
		assert.Error(t, err)
	})
}
