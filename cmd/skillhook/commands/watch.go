package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dotskills/skillhook/pkg/matcher"
	"github.com/dotskills/skillhook/pkg/output"
	"github.com/dotskills/skillhook/pkg/skills"
	"github.com/dotskills/skillhook/pkg/style"
	"github.com/dotskills/skillhook/pkg/types"
	"github.com/dotskills/skillhook/pkg/watch"
)

func newWatchCmd(rulesFile, root *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [dir]",
		Short: MsgWatchShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			return runWatch(*rulesFile, *root, dir)
		},
	}
}

func runWatch(rulesFile, root, dir string) error {
	ctx, err := newCmdContext(rulesFile, root)
	if err != nil {
		return err
	}
	if dir == "" {
		dir = ctx.Paths.ProjectRoot()
	}

	if ctx.RuleSet.IsEmpty() {
		return fmt.Errorf("no rules configured, nothing to watch for")
	}

	docs := skills.LoadAll(ctx.Paths)
	debounce := time.Duration(ctx.Settings.Watch.DebounceMs) * time.Millisecond

	w := watch.New(dir, debounce, func(event types.FileEvent) {
		matches := matcher.Evaluate(ctx.RuleSet, event)
		matches = matches[:ctx.capMatches(len(matches))]
		if len(matches) == 0 {
			return
		}
		fmt.Printf("\n%s %s\n", style.MutedStyle.Render("changed:"), event.Path)
		output.RenderText(os.Stdout, matches, docs)
	})

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Run(runCtx); err != nil && runCtx.Err() == nil {
		return err
	}
	return nil
}
