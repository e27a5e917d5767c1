package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotskills/skillhook/pkg/output"
	"github.com/dotskills/skillhook/pkg/skills"
	"github.com/dotskills/skillhook/pkg/style"
)

func newListCmd(rulesFile, root *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(*rulesFile, *root)
		},
	}
}

func runList(rulesFile, root string) error {
	ctx, err := newCmdContext(rulesFile, root)
	if err != nil {
		return err
	}

	docs := skills.LoadAll(ctx.Paths)
	byName := make(map[string]skills.Skill, len(docs))
	for _, d := range docs {
		byName[d.Name] = d
	}

	if ctx.RuleSet.IsEmpty() && len(ctx.RuleErrs) == 0 {
		fmt.Println(style.MutedStyle.Render("No rules configured."))
		return nil
	}

	fmt.Println(style.TitleStyle.Render("Skill rules"))
	for _, rule := range ctx.RuleSet.Rules() {
		var triggers []string
		if rule.HasPromptTriggers() {
			triggers = append(triggers, fmt.Sprintf("%d keywords, %d intents",
				len(rule.Keywords), len(rule.IntentPatterns)))
		}
		if rule.HasFileTriggers() {
			triggers = append(triggers, fmt.Sprintf("%d paths, %d contents",
				len(rule.PathPatterns), len(rule.ContentPatterns)))
		}
		if len(triggers) == 0 {
			triggers = append(triggers, "no triggers")
		}

		fmt.Printf("  %s %s  %s\n",
			style.SkillStyle.Render(rule.ID),
			style.MutedStyle.Render("["+string(rule.Rule.Priority)+" "+string(rule.Rule.Type)+"]"),
			style.MutedStyle.Render(strings.Join(triggers, "; ")))

		if d, ok := byName[rule.ID]; ok {
			fmt.Println("      " + style.MutedStyle.Render(d.FilePath))
		} else {
			fmt.Println("      " + style.WarningStyle.Render("no skill document found"))
		}
	}

	output.RenderRuleErrors(os.Stderr, ctx.RuleErrs)
	return nil
}
