// Package dialog drives the bounded clarification exchange between the
// operator and the model before an answer is accepted as final.
package dialog

import (
	"context"
	"fmt"

	"github.com/quillhq/quill/internal/core"
	"github.com/quillhq/quill/internal/service/memory"
	"github.com/quillhq/quill/pkg/log"
	"github.com/quillhq/quill/pkg/parse"
)

// maxClarifyRounds caps the loop so a chatty classifier cannot run up the
// bill: at most 4 rounds of two model calls each. The 4th round's reply is
// accepted as final even if the classifier would flag it as another
// question; delivering an answer beats endless clarification.
const maxClarifyRounds = 4

const (
	classifyFinalAnswer = 2
	classifierTemp      = 0.2
	classifierMaxTokens = 8
)

type loopState int

const (
	stateAwaitingModelReply loopState = iota
	stateClassifying
	stateAwaitingUserInput
	stateDone
)

// InputReader blocks for one line of operator input.
type InputReader interface {
	ReadLine(prompt string) (string, error)
}

// Params are the sampling parameters of the main interaction, chosen by the
// caller. The classifier always runs on its own model with low creativity.
type Params struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

type Loop struct {
	client          core.CompletionClient
	input           InputReader
	classifierModel string
}

func NewLoop(client core.CompletionClient, input InputReader, classifierModel string) *Loop {
	return &Loop{
		client:          client,
		input:           input,
		classifierModel: classifierModel,
	}
}

// Run conducts the clarification dialogue starting from prompt. It returns
// the accumulated prompt text (original plus any clarifying answers) and the
// last main model reply. At least one reply/classify cycle always happens,
// even for an unambiguous prompt.
func (l *Loop) Run(ctx context.Context, prompt string, p Params) (string, core.Completion, error) {
	logger := log.FromCtx(ctx)

	var lastReply core.Completion
	rounds := 0

	for state := stateAwaitingModelReply; state != stateDone; {
		switch state {
		case stateAwaitingModelReply:
			reply, err := l.client.Complete(ctx, core.CompletionRequest{
				Prompt:      prompt + memory.ClarifySuffix,
				Model:       p.Model,
				Temperature: p.Temperature,
				MaxTokens:   p.MaxTokens,
			})
			if err != nil {
				return "", core.Completion{}, fmt.Errorf("model reply: %w", err)
			}
			lastReply = reply
			state = stateClassifying

		case stateClassifying:
			classification, err := l.classify(ctx, lastReply.Text)
			if err != nil {
				return "", core.Completion{}, fmt.Errorf("classification: %w", err)
			}
			if classification == 1 {
				state = stateAwaitingUserInput
			} else {
				state = stateDone
			}

		case stateAwaitingUserInput:
			answer, err := l.input.ReadLine("clarify> ")
			if err != nil {
				return "", core.Completion{}, fmt.Errorf("operator input: %w", err)
			}
			prompt = prompt + "\n" + answer

			rounds++
			if rounds >= maxClarifyRounds {
				logger.Info().Int("rounds", rounds).Msg("clarification cap reached, accepting last reply")
				state = stateDone
			} else {
				state = stateAwaitingModelReply
			}
		}
	}

	return prompt, lastReply, nil
}

// classify asks the highest-capability model whether the reply is a question
// back to the operator (1) or a final answer (2). A reply with no parsable
// number counts as a final answer so unparseable classifier output can never
// wedge the loop.
func (l *Loop) classify(ctx context.Context, replyText string) (int, error) {
	resp, err := l.client.Complete(ctx, core.CompletionRequest{
		Prompt:      memory.ClassifyPrompt + replyText,
		Model:       l.classifierModel,
		Temperature: classifierTemp,
		MaxTokens:   classifierMaxTokens,
	})
	if err != nil {
		return 0, err
	}

	classification, ok := parse.LeadingInt(resp.Text)
	if !ok {
		log.FromCtx(ctx).Debug().Str("reply", resp.Text).Msg("classifier reply had no number, treating as final answer")
		return classifyFinalAnswer, nil
	}
	return classification, nil
}
