// Test Type: Unit Test
// Description: Tests for the rules package - file loading, discovery, layering

package rules_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	skerrors "github.com/dotskills/skillhook/pkg/errors"
	"github.com/dotskills/skillhook/pkg/paths"
	"github.com/dotskills/skillhook/pkg/rules"
	"github.com/dotskills/skillhook/pkg/testutil"
)

func TestLoad(t *testing.T) {
	t.Run("reads_and_parses", func(t *testing.T) {
		dir := t.TempDir()
		path := testutil.WriteFile(t, dir, "skill-rules.json",
			`{"version": "1.0", "skills": {"a": {"type": "domain", "priority": "high"}}}`)

		doc, err := rules.Load(path)
		require.NoError(t, err)
		assert.Len(t, doc.Skills, 1)
	})

	t.Run("missing_file_is_config_load_error", func(t *testing.T) {
		_, err := rules.Load(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.True(t, skerrors.IsErrorCode(err, skerrors.ErrConfigLoad))
	})

	t.Run("invalid_document_is_config_error", func(t *testing.T) {
		dir := t.TempDir()
		path := testutil.WriteFile(t, dir, "skill-rules.json", `not json at all`)

		_, err := rules.Load(path)
		require.Error(t, err)
		assert.True(t, skerrors.IsErrorCode(err, skerrors.ErrConfigParse))
	})
}

func TestMerge(t *testing.T) {
	user, err := rules.ParseDocument([]byte(`{
		"version": "1.0",
		"skills": {
			"shared": {"type": "domain", "priority": "low"},
			"user-only": {"type": "domain", "priority": "medium"}
		}
	}`))
	require.NoError(t, err)

	project, err := rules.ParseDocument([]byte(`{
		"version": "2.0",
		"skills": {
			"project-only": {"type": "domain", "priority": "high"},
			"shared": {"type": "guardrail", "priority": "high"}
		}
	}`))
	require.NoError(t, err)

	t.Run("project_wins_per_skill", func(t *testing.T) {
		merged := rules.Merge(user, project)

		require.Len(t, merged.Skills, 3)
		assert.Equal(t, "project-only", merged.Skills[0].ID)
		assert.Equal(t, "shared", merged.Skills[1].ID)
		assert.Equal(t, "user-only", merged.Skills[2].ID)

		shared, ok := merged.Lookup("shared")
		require.True(t, ok)
		assert.Equal(t, "guardrail", string(shared.Type))
		assert.Equal(t, "2.0", merged.Version)
	})

	t.Run("nil_layers", func(t *testing.T) {
		assert.Len(t, rules.Merge(nil, project).Skills, 2)
		assert.Len(t, rules.Merge(user, nil).Skills, 2)
		assert.Empty(t, rules.Merge(nil, nil).Skills)
	})
}

func TestLoadLayered(t *testing.T) {
	projectDir := t.TempDir()
	userDir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, userDir)

	testutil.WriteFile(t, projectDir, ".claude/skill-rules.json",
		`{"version": "1.0", "skills": {"proj": {"type": "domain", "priority": "high"}}}`)
	testutil.WriteFile(t, userDir, "skill-rules.json",
		`{"version": "1.0", "skills": {"usr": {"type": "domain", "priority": "low"}}}`)

	p, err := paths.New(projectDir)
	require.NoError(t, err)

	doc, layerErrs := rules.LoadLayered(p)
	require.Empty(t, layerErrs)
	require.Len(t, doc.Skills, 2)
	assert.Equal(t, "proj", doc.Skills[0].ID)
	assert.Equal(t, "usr", doc.Skills[1].ID)
}

func TestLoadLayered_BrokenLayerDoesNotPoisonOther(t *testing.T) {
	projectDir := t.TempDir()
	userDir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, userDir)

	testutil.WriteFile(t, projectDir, ".claude/skill-rules.json", `broken{`)
	testutil.WriteFile(t, userDir, "skill-rules.json",
		`{"version": "1.0", "skills": {"usr": {"type": "domain", "priority": "low"}}}`)

	p, err := paths.New(projectDir)
	require.NoError(t, err)

	doc, layerErrs := rules.LoadLayered(p)
	require.Len(t, layerErrs, 1)
	require.Len(t, doc.Skills, 1)
	assert.Equal(t, "usr", doc.Skills[0].ID)
}
