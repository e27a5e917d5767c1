package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotskills/skillhook/pkg/output"
	"github.com/dotskills/skillhook/pkg/skills"
	"github.com/dotskills/skillhook/pkg/style"
)

func newValidateCmd(rulesFile, root *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: MsgValidateShort,
		Long:  MsgValidateLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(*rulesFile, *root)
		},
	}
}

func runValidate(rulesFile, root string) error {
	ctx, err := newCmdContext(rulesFile, root)
	if err != nil {
		return err
	}

	// Structural errors are the only hard failures: a document that
	// cannot be parsed at all means the whole configuration is broken.
	for _, e := range ctx.LoadErrs {
		fmt.Fprintf(os.Stderr, "%s %v\n", style.ErrorStyle.Render("error:"), e)
	}

	output.RenderRuleErrors(os.Stderr, ctx.RuleErrs)

	docs := skills.LoadAll(ctx.Paths)
	byName := make(map[string]bool, len(docs))
	for _, d := range docs {
		byName[d.Name] = true
	}

	var warnings int
	for _, rule := range ctx.RuleSet.Rules() {
		if !rule.Rule.HasTriggers() {
			fmt.Fprintf(os.Stderr, "%s skill %q declares no triggers and will never match\n",
				style.WarningStyle.Render("warning:"), rule.ID)
			warnings++
		}
		if !byName[rule.ID] {
			fmt.Fprintf(os.Stderr, "%s skill %q has no skill document\n",
				style.WarningStyle.Render("warning:"), rule.ID)
			warnings++
		}
	}
	warnings += len(ctx.RuleErrs)

	if len(ctx.LoadErrs) > 0 {
		return fmt.Errorf("rules document is invalid")
	}

	if warnings == 0 {
		fmt.Printf("%s %d rules, no problems found\n",
			style.SuccessStyle.Render("ok:"), ctx.RuleSet.Len())
	} else {
		fmt.Printf("%d rules, %d warnings\n", ctx.RuleSet.Len(), warnings)
	}
	return nil
}
