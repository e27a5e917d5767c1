// Package output renders match results for humans (styled text) and
// for machines (JSON).
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dotskills/skillhook/pkg/rules"
	"github.com/dotskills/skillhook/pkg/skills"
	"github.com/dotskills/skillhook/pkg/style"
	"github.com/dotskills/skillhook/pkg/types"
)

// RenderText writes a human-readable suggestion list. Skill documents,
// when available, contribute their descriptions.
func RenderText(w io.Writer, matches []types.SkillMatch, docs []skills.Skill) {
	if len(matches) == 0 {
		fmt.Fprintln(w, style.MutedStyle.Render("No skills matched."))
		return
	}

	byName := make(map[string]skills.Skill, len(docs))
	for _, d := range docs {
		byName[d.Name] = d
	}

	fmt.Fprintln(w, style.TitleStyle.Render("Suggested skills"))
	for _, m := range matches {
		line := fmt.Sprintf("  %s %s %s",
			priorityBadge(m.Priority),
			style.SkillStyle.Render(m.SkillID),
			style.MutedStyle.Render("("+string(m.Trigger)+")"))
		fmt.Fprintln(w, line)
		if d, ok := byName[m.SkillID]; ok && d.Description != "" {
			fmt.Fprintln(w, "      "+style.MutedStyle.Render(d.Description))
		}
	}
}

// RenderJSON writes the match list as a JSON array.
func RenderJSON(w io.Writer, matches []types.SkillMatch) error {
	if matches == nil {
		matches = []types.SkillMatch{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(matches)
}

// RenderRuleErrors writes pattern compile failures to w, one per line.
func RenderRuleErrors(w io.Writer, ruleErrs []rules.RuleError) {
	for _, re := range ruleErrs {
		fmt.Fprintf(w, "%s %s\n",
			style.WarningStyle.Render("rule error:"),
			re.Error())
	}
}

func priorityBadge(p types.Priority) string {
	tag := strings.ToUpper(string(p))
	if tag == "" {
		tag = "NONE"
	}
	badge := fmt.Sprintf("[%-6s]", tag)
	switch p {
	case types.PriorityHigh:
		return style.PriorityHighStyle.Render(badge)
	case types.PriorityMedium:
		return style.PriorityMediumStyle.Render(badge)
	default:
		return style.PriorityLowStyle.Render(badge)
	}
}
