package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotskills/skillhook/pkg/hookio"
	"github.com/dotskills/skillhook/pkg/matcher"
	"github.com/dotskills/skillhook/pkg/output"
	"github.com/dotskills/skillhook/pkg/skills"
	"github.com/dotskills/skillhook/pkg/types"
)

func newCheckCmd(rulesFile, root *string) *cobra.Command {
	var (
		prompt   string
		filePath string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: MsgCheckShort,
		Long:  MsgCheckLong,
		Args:  cobra.NoArgs,
		Example: `  skillhook check --prompt "How do I add a new route handler?"
  skillhook check --file src/components/Form.tsx
  skillhook check --file src/api/users.ts --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (prompt == "") == (filePath == "") {
				return fmt.Errorf("exactly one of --prompt or --file is required")
			}
			return runCheck(*rulesFile, *root, prompt, filePath, asJSON)
		},
	}

	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "Prompt text to evaluate")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "File path to evaluate")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit matches as JSON")

	return cmd
}

func runCheck(rulesFile, root, prompt, filePath string, asJSON bool) error {
	ctx, err := newCmdContext(rulesFile, root)
	if err != nil {
		return err
	}

	var event types.Event
	if prompt != "" {
		event = types.PromptEvent{Text: prompt}
	} else {
		ev := types.FileEvent{Path: filePath}
		if content, err := hookio.ReadFileCapped(filePath); err == nil {
			ev = ev.WithContent(content)
		}
		event = ev
	}

	matches := matcher.Evaluate(ctx.RuleSet, event)
	matches = matches[:ctx.capMatches(len(matches))]

	if asJSON || ctx.Settings.Output.Format == "json" {
		return output.RenderJSON(os.Stdout, matches)
	}

	output.RenderRuleErrors(os.Stderr, ctx.RuleErrs)
	output.RenderText(os.Stdout, matches, skills.LoadAll(ctx.Paths))
	return nil
}
