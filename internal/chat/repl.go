package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/madmaxieee/azchat/internal"
	"github.com/madmaxieee/azchat/internal/cache"
	"github.com/madmaxieee/azchat/internal/ui"
	"github.com/peterh/liner"
)

// Run drives the interactive loop until an exit command, ctrl-C, or EOF.
// A failed turn is reported and the loop keeps accepting input; only
// startup-phase failures terminate the process.
func Run(ctx context.Context, session *Session, officialName, deployment string) error {
	fmt.Println(ui.SessionBanner(officialName, deployment))

	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer line.Close()

	cache.LoadHistory(line)
	defer cache.SaveHistory(line)

	for {
		fmt.Println()
		input, err := line.Prompt(ui.UserPrompt())
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Println()
			fmt.Println(ui.Info("Ending chat session. Goodbye!"))
			return nil
		}
		if err != nil {
			return err
		}

		if strings.TrimSpace(input) == "" {
			continue
		}
		if IsExitCommand(input) {
			fmt.Println(ui.Info("Ending chat session. Goodbye!"))
			return nil
		}
		line.AppendHistory(input)

		spinner := internal.NewSpinner()
		spinner.Start("Thinking...")
		reply, elapsed, err := session.Ask(ctx, input)
		spinner.Stop()

		if err != nil {
			fmt.Fprintf(os.Stderr, "\n%s %v\n", ui.ErrorLabel(), err)
			fmt.Fprintln(os.Stderr, ui.Info("Try again or type 'exit' to quit."))
			continue
		}

		fmt.Println()
		fmt.Println(ui.AssistantLabel(elapsed))
		fmt.Print(ui.Markdown(reply))
	}
}
