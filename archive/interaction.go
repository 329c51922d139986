package archive

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Confirmer asks the user a yes/no question and returns their response.
type Confirmer interface {
	Confirm(question string) bool
}

// StdinConfirmer is the standard Confirmer that prompts on stdout and reads
// the answer from stdin.
type StdinConfirmer struct {
	Reader io.Reader
	Writer io.Writer
}

// NewStdinConfirmer creates a StdinConfirmer bound to os.Stdin/os.Stdout.
func NewStdinConfirmer() *StdinConfirmer {
	return &StdinConfirmer{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// Confirm prompts with question and returns true when the answer starts
// with "y" or "Y". Read errors count as a refusal.
func (c *StdinConfirmer) Confirm(question string) bool {
	fmt.Fprintf(c.Writer, "%s (y/n): ", question)

	answer, err := bufio.NewReader(c.Reader).ReadString('\n')
	if err != nil {
		return false
	}

	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y")
}

// StdinIsTerminal reports whether stdin is attached to an interactive
// terminal. The low-disk-space prompt is only shown when it is.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
