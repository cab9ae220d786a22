package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/quillhq/quill/internal/config"
	"github.com/quillhq/quill/internal/core"
	"github.com/quillhq/quill/internal/service/assistant"
	"github.com/quillhq/quill/internal/service/ui"
	"github.com/quillhq/quill/pkg/log"
)

// Prompter wraps a readline instance. It serves both as the REPL input and
// as the blocking operator input during clarification rounds.
type Prompter struct {
	rl *readline.Instance
}

func NewPrompter(runtimePath string) (*Prompter, error) {
	if err := os.MkdirAll(runtimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     filepath.Join(runtimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &Prompter{rl: rl}, nil
}

func (p *Prompter) ReadLine(prompt string) (string, error) {
	p.rl.SetPrompt(prompt)
	defer p.rl.SetPrompt(">>> ")

	line, err := p.rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) Stdout() io.Writer {
	return p.rl.Stdout()
}

func (p *Prompter) Close() error {
	return p.rl.Close()
}

// REPL is the interactive chat transport: each line runs the full assistant
// flow, slash-prefixed lines go to the command router.
type REPL struct {
	cfg       *config.AppConfig
	assistant *assistant.Assistant
	router    core.CmdRouter
	prompter  *Prompter
	raw       bool
}

func NewREPL(cfg *config.AppConfig, as *assistant.Assistant, router core.CmdRouter, prompter *Prompter, raw bool) *REPL {
	return &REPL{
		cfg:       cfg,
		assistant: as,
		router:    router,
		prompter:  prompter,
		raw:       raw,
	}
}

func (r *REPL) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("chat started, type 'exit' to quit")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.prompter.ReadLine(">>> ")
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		if out, handled := r.router.Execute(ctx, line); handled {
			fmt.Fprintln(r.prompter.Stdout(), out)
			continue
		}

		reply, err := r.assistant.Ask(ctx, line, assistant.Options{
			Model:       r.cfg.Model,
			Temperature: r.cfg.Temperature,
			MaxTokens:   r.cfg.MaxTokens,
		})
		if err != nil {
			logger.Error().Err(err).Msg("interaction failed")
			fmt.Fprintf(r.prompter.Stdout(), "Error: %v\n", err)
			continue
		}

		ui.PrintCompletion(r.prompter.Stdout(), reply, r.raw)
	}
}

func (r *REPL) Shutdown(ctx context.Context) error {
	return r.prompter.Close()
}
