package launcher

import (
	"bufio"
	"fmt"
	"io"
)

// DefaultPrompt is what the terminal shows before the launcher exits.
const DefaultPrompt = "Press Enter to close..."

// WaitForEnter prints the prompt and blocks for one line of input. The
// line's content is discarded; EOF counts as acknowledgement so a piped
// stdin cannot hang the launcher. Callers defer this around the launch so
// the terminal stays open after a crash no matter which path ran.
func WaitForEnter(in io.Reader, out io.Writer, prompt string) {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	fmt.Fprintln(out, prompt)
	r := bufio.NewReader(in)
	_, _ = r.ReadString('\n')
}
