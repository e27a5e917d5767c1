// Test Type: Unit Test
// Description: Tests for the rules package - order-preserving document encoding

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotskills/skillhook/pkg/rules"
)

func TestDocumentEncode_RoundTrip(t *testing.T) {
	src := `{
		"version": "1.0",
		"description": "round trip",
		"skills": {
			"zeta": {"type": "domain", "priority": "low",
				"promptTriggers": {"keywords": ["z"]}},
			"alpha": {"type": "guardrail", "priority": "high",
				"fileTriggers": {"pathPatterns": ["**/*.go"]}}
		}
	}`

	doc, err := rules.ParseDocument([]byte(src))
	require.NoError(t, err)

	encoded, err := doc.Encode()
	require.NoError(t, err)

	reparsed, err := rules.ParseDocument(encoded)
	require.NoError(t, err)

	assert.Equal(t, doc.Version, reparsed.Version)
	assert.Equal(t, doc.Description, reparsed.Description)
	require.Len(t, reparsed.Skills, 2)
	assert.Equal(t, "zeta", reparsed.Skills[0].ID)
	assert.Equal(t, "alpha", reparsed.Skills[1].ID)
	assert.Equal(t, doc.Skills[1].Rule, reparsed.Skills[1].Rule)
}
