// Package testutil provides small helpers shared by skillhook tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dotskills/skillhook/pkg/rules"
)

// WriteFile writes content to dir/name, creating parent directories,
// and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// CompileRules parses and compiles a rules document from a JSON
// string, failing the test on structural errors. Rule-level pattern
// errors are returned for assertion.
func CompileRules(t *testing.T, doc string) (*rules.RuleSet, []rules.RuleError) {
	t.Helper()
	parsed, err := rules.ParseDocument([]byte(doc))
	if err != nil {
		t.Fatalf("parse rules document: %v", err)
	}
	rs, ruleErrs := rules.Compile(parsed)
	return rs, ruleErrs
}
