package program

import (
	"fmt"
	"io"

	"github.com/coregx/tagrewrite/tagstring"
)

// Write re-serializes p to out, one rule per line, using
// tagstring.Format's delimiter-choice algorithm for both pattern and
// replacement. Line numbers are not reproduced; they are diagnostics
// metadata, not program syntax.
func (p *Program) Write(out io.Writer) error {
	for _, r := range p.rules {
		tagstring.Format(out, r.Pattern, 0)
		io.WriteString(out, " -> ")
		tagstring.Format(out, r.Replacement, 0)
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}
	return nil
}
