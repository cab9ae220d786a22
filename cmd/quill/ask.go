package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/quillhq/quill/internal/config"
	"github.com/quillhq/quill/internal/service/assistant"
	"github.com/quillhq/quill/internal/service/state"
	"github.com/quillhq/quill/internal/service/ui"
	"github.com/quillhq/quill/internal/transport/cli"
	"github.com/quillhq/quill/pkg/log"
	"github.com/spf13/cobra"
)

var (
	askPrompt      string
	askFile        string
	askModel       string
	askTemperature float64
	askMaxTokens   int
	askRaw         bool
	askNoMemory    bool
)

var askCmd = &cobra.Command{
	Use:          "ask",
	Short:        "Ask a one-off question",
	Long:         `Runs one full interaction: the question is answered with background from past interactions, clarifying questions are asked on ambiguous prompts, and the result is stored.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		logger := log.FromCtx(ctx)

		prompt := askPrompt
		if askFile != "" {
			content, notice, err := loadPromptFile(askFile)
			if err != nil {
				return err
			}
			if notice != "" {
				fmt.Println(notice)
				return nil
			}
			prompt = content
		}
		prompt = strings.TrimSpace(prompt)
		if prompt == "" {
			return fmt.Errorf("no prompt given, use --prompt or --file")
		}

		if err := validateModel(askModel); err != nil {
			return err
		}

		prompter, err := cli.NewPrompter(config.GetRuntimePath())
		if err != nil {
			return err
		}
		defer prompter.Close()

		d, err := newDeps(ctx, prompter)
		if err != nil {
			return err
		}
		defer d.Close()

		reply, err := d.assistant.Ask(ctx, prompt, assistant.Options{
			Model:       askModel,
			Temperature: askTemperature,
			MaxTokens:   askMaxTokens,
			NoMemory:    askNoMemory,
		})
		if err != nil {
			logger.Error().Err(err).Msg("interaction failed")
			return err
		}

		ui.PrintCompletion(os.Stdout, reply, askRaw)
		return nil
	},
}

// loadPromptFile reads the prompt text from path. A missing file is not an
// error: the returned notice is shown to the operator and nothing is sent.
func loadPromptFile(path string) (string, string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Sprintf("The file %q does not exist, doing nothing.", path), nil
		}
		return "", "", err
	}
	return string(content), "", nil
}

func validateModel(model string) error {
	for _, known := range state.KnownModels {
		if model == known {
			return nil
		}
	}
	return fmt.Errorf("unknown model %q, expected one of %v", model, state.KnownModels)
}

func init() {
	askCmd.Flags().StringVarP(&askPrompt, "prompt", "p", "", "the prompt to answer")
	askCmd.Flags().StringVarP(&askFile, "file", "f", "", "read the prompt from a file")
	askCmd.Flags().StringVarP(&askModel, "model", "m", "text-davinci-003", "completion model")
	askCmd.Flags().Float64VarP(&askTemperature, "temperature", "t", 0.9, "sampling temperature")
	askCmd.Flags().IntVarP(&askMaxTokens, "tokens", "o", 1000, "maximum tokens in the reply")
	askCmd.Flags().BoolVar(&askRaw, "raw", false, "print the reply without markdown rendering")
	askCmd.Flags().BoolVar(&askNoMemory, "no-memory", false, "answer without background and without storing the interaction")

	rootCmd.AddCommand(askCmd)
}
