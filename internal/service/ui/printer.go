package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/quillhq/quill/internal/core"
	"github.com/quillhq/quill/pkg/conv"
)

// PrintCompletion writes the reply followed by a rule and the finish reason.
func PrintCompletion(w io.Writer, reply core.Completion, raw bool) {
	text := strings.TrimSpace(reply.Text)
	if !raw {
		text = strings.TrimSpace(conv.MarkdownToText([]byte(text)))
	}

	fmt.Fprintln(w, text)
	fmt.Fprintln(w, RuleStyle.Render(strings.Repeat("-", 20)))
	fmt.Fprintln(w, FinishStyle.Render(fmt.Sprintf("The message ended due to %s.", reply.FinishReason)))
}
