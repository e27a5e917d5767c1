// Test Type: Unit Test
// Description: Tests for the rules package - pattern compilation and failure isolation

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	skerrors "github.com/dotskills/skillhook/pkg/errors"
	"github.com/dotskills/skillhook/pkg/rules"
)

func TestCompile(t *testing.T) {
	t.Run("keywords_lowercased_and_trimmed", func(t *testing.T) {
		doc, err := rules.ParseDocument([]byte(`{
			"skills": {
				"s": {"type": "domain", "priority": "high",
					"promptTriggers": {"keywords": ["  Route ", "CONTROLLER", ""]}}
			}
		}`))
		require.NoError(t, err)

		rs, ruleErrs := rules.Compile(doc)
		require.Empty(t, ruleErrs)
		require.Equal(t, 1, rs.Len())
		assert.Equal(t, []string{"route", "controller"}, rs.Rules()[0].Keywords)
	})

	t.Run("bad_intent_pattern_disables_rule", func(t *testing.T) {
		doc, err := rules.ParseDocument([]byte(`{
			"skills": {
				"bad": {"type": "domain", "priority": "high",
					"promptTriggers": {"intentPatterns": ["(unclosed"]}},
				"good": {"type": "domain", "priority": "low",
					"promptTriggers": {"keywords": ["ok"]}}
			}
		}`))
		require.NoError(t, err)

		rs, ruleErrs := rules.Compile(doc)

		require.Len(t, ruleErrs, 1)
		assert.Equal(t, "bad", ruleErrs[0].SkillID)
		assert.Equal(t, "(unclosed", ruleErrs[0].Pattern)
		assert.True(t, skerrors.IsErrorCode(ruleErrs[0].Err, skerrors.ErrRulePattern))

		require.Equal(t, 1, rs.Len())
		assert.Equal(t, "good", rs.Rules()[0].ID)
	})

	t.Run("bad_glob_disables_rule", func(t *testing.T) {
		doc, err := rules.ParseDocument([]byte(`{
			"skills": {
				"bad": {"type": "domain", "priority": "high",
					"fileTriggers": {"pathPatterns": ["src/[unclosed"]}}
			}
		}`))
		require.NoError(t, err)

		rs, ruleErrs := rules.Compile(doc)

		require.Len(t, ruleErrs, 1)
		assert.True(t, skerrors.IsErrorCode(ruleErrs[0].Err, skerrors.ErrRuleGlob))
		assert.True(t, rs.IsEmpty())
	})

	t.Run("bad_content_pattern_disables_rule", func(t *testing.T) {
		doc, err := rules.ParseDocument([]byte(`{
			"skills": {
				"bad": {"type": "domain", "priority": "high",
					"fileTriggers": {"pathPatterns": ["**/*.go"], "contentPatterns": ["*invalid"]}}
			}
		}`))
		require.NoError(t, err)

		rs, ruleErrs := rules.Compile(doc)
		require.Len(t, ruleErrs, 1)
		assert.True(t, rs.IsEmpty())
	})

	t.Run("order_index_assigned", func(t *testing.T) {
		doc, err := rules.ParseDocument([]byte(`{
			"skills": {
				"first": {"type": "domain", "priority": "low"},
				"second": {"type": "domain", "priority": "low"}
			}
		}`))
		require.NoError(t, err)

		rs, _ := rules.Compile(doc)
		require.Equal(t, 2, rs.Len())
		assert.Equal(t, 0, rs.Rules()[0].Order)
		assert.Equal(t, 1, rs.Rules()[1].Order)
	})

	t.Run("nil_document", func(t *testing.T) {
		rs, ruleErrs := rules.Compile(nil)
		assert.True(t, rs.IsEmpty())
		assert.Empty(t, ruleErrs)
	})
}
