package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dotskills/skillhook/pkg/hookio"
	"github.com/dotskills/skillhook/pkg/logging"
	"github.com/dotskills/skillhook/pkg/matcher"
	"github.com/dotskills/skillhook/pkg/skills"
)

func newHookCmd(rulesFile, root *string) *cobra.Command {
	return &cobra.Command{
		Use:   "hook",
		Short: MsgHookShort,
		Long:  MsgHookLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHook(*rulesFile, *root)
		},
	}
}

// runHook is the host adapter entry point. It never returns a non-nil
// error for matching problems: a hook failure would surface to the end
// user as a broken assistant, and suggestions are not worth that.
func runHook(rulesFile, root string) error {
	logger := logging.GetLogger("cmd.hook")

	payload, err := hookio.ReadPayload(os.Stdin)
	if err != nil {
		logger.Warn().Err(err).Msg("Unreadable hook payload, exiting silently")
		return nil
	}

	if root == "" && payload.CWD != "" {
		root = payload.CWD
	}

	ctx, err := newCmdContext(rulesFile, root)
	if err != nil {
		logger.Warn().Err(err).Msg("Cannot initialize, exiting silently")
		return nil
	}

	event, ok := payload.Event(hookio.ReadFileCapped)
	if !ok {
		return nil
	}

	matches := matcher.Evaluate(ctx.RuleSet, event)
	matches = matches[:ctx.capMatches(len(matches))]
	if len(matches) == 0 {
		return nil
	}

	docs := skills.LoadAll(ctx.Paths)
	return hookio.WriteResponse(os.Stdout, payload.HookEventName, matches, docs)
}
