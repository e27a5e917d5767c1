// Test Type: Unit Test
// Description: Tests for the rules package - starter document generation

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotskills/skillhook/pkg/rules"
	"github.com/dotskills/skillhook/pkg/testutil"
)

func TestStarter(t *testing.T) {
	t.Run("go_project", func(t *testing.T) {
		dir := t.TempDir()
		testutil.WriteFile(t, dir, "go.mod", "module example.com/demo\n")

		doc := rules.Starter(dir)

		_, hasGo := doc.Lookup("go-dev-guidelines")
		assert.True(t, hasGo)
		_, hasGuard := doc.Lookup("secrets-handling")
		assert.True(t, hasGuard)
		_, hasNode := doc.Lookup("backend-dev-guidelines")
		assert.False(t, hasNode)
	})

	t.Run("react_project", func(t *testing.T) {
		dir := t.TempDir()
		testutil.WriteFile(t, dir, "package.json", "{}")
		testutil.WriteFile(t, dir, "tsconfig.json", "{}")
		testutil.WriteFile(t, dir, "src/components/App.tsx", "export const App = () => null\n")

		doc := rules.Starter(dir)

		_, hasNode := doc.Lookup("backend-dev-guidelines")
		assert.True(t, hasNode)
		_, hasReact := doc.Lookup("frontend-dev-guidelines")
		assert.True(t, hasReact)
	})

	t.Run("empty_project_still_gets_guardrails", func(t *testing.T) {
		doc := rules.Starter(t.TempDir())
		require.Len(t, doc.Skills, 1)
		assert.Equal(t, "secrets-handling", doc.Skills[0].ID)
	})

	t.Run("generated_document_compiles_cleanly", func(t *testing.T) {
		dir := t.TempDir()
		testutil.WriteFile(t, dir, "go.mod", "module example.com/demo\n")

		doc := rules.Starter(dir)
		_, ruleErrs := rules.Compile(doc)
		assert.Empty(t, ruleErrs)
	})
}
