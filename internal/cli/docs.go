package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"todo-cli/internal/docs"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

type docsTopicsPayload struct {
	Topics []string `json:"topics"`
}

func (p docsTopicsPayload) RenderText(w io.Writer) error {
	for _, t := range p.Topics {
		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
	}
	return nil
}

type docsBodyPayload struct {
	Topic    string `json:"topic"`
	Markdown string `json:"markdown"`

	raw bool
}

func (p docsBodyPayload) RenderText(w io.Writer) error {
	if !p.raw {
		if out, err := renderMarkdown(p.Markdown); err == nil {
			_, err = fmt.Fprint(w, out)
			return err
		}
		// Fall back to the raw markdown when the terminal renderer fails.
	}
	_, err := fmt.Fprint(w, p.Markdown)
	return err
}

func renderMarkdown(body string) (string, error) {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		return "", fmt.Errorf("color disabled")
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	return r.Render(body)
}

func newDocsCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, docsTopicsPayload{Topics: docs.Topics()})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown docs topic: %q (run `todo docs` to list topics)", topic))
			}
			return writeOut(cmd, app, docsBodyPayload{Topic: topic, Markdown: body, raw: raw})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the raw markdown without terminal styling")

	return cmd
}
