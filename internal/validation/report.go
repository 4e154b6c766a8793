package validation

import (
	"fmt"
	"strings"
)

// FormatReport renders a deterministic textual summary: a pass/fail
// header with counts, then one block per severity in the fixed order
// ERROR, WARNING, INFO. Empty blocks are omitted and validator
// registration order is preserved within each block.
func FormatReport(r Result) string {
	var b strings.Builder

	errs := len(r.bySeverity(Error))
	warns := len(r.bySeverity(Warning))
	infos := len(r.bySeverity(Info))

	if r.IsValid {
		b.WriteString("Publishing configuration is valid")
	} else {
		b.WriteString("Publishing configuration is invalid")
	}
	fmt.Fprintf(&b, " (%d error(s), %d warning(s), %d info)\n", errs, warns, infos)

	for _, severity := range []Severity{Error, Warning, Info} {
		group := r.bySeverity(severity)
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", severity)
		for _, v := range group {
			fmt.Fprintf(&b, "  %s: %s\n", v.Code, v.Message)
			if v.Suggestion != "" {
				fmt.Fprintf(&b, "    suggestion: %s\n", v.Suggestion)
			}
			if v.FixCommand != "" {
				fmt.Fprintf(&b, "    fix: %s\n", v.FixCommand)
			}
			if v.DocURL != "" {
				fmt.Fprintf(&b, "    docs: %s\n", v.DocURL)
			}
		}
	}

	return b.String()
}
