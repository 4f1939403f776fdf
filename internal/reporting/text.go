package reporting

import (
	"fmt"
	"io"
	"strings"

	"github.com/rwx-research/hookcheck/internal/errors"
)

var sections = []struct {
	state State
	title string
}{
	{StateFailed, "Failed"},
	{StateErrored, "Could not run"},
	{StateSkipped, "Skipped"},
	{StatePassed, "Passed"},
}

// WriteTextSummary writes a human-readable summary of a hook run. If configured, the output of failed checks is
// included, indented below the name of the check.
func WriteTextSummary(w io.Writer, hook string, results []Result, cfg Configuration) error {
	var buf strings.Builder

	summary := Summarize(results)
	fmt.Fprintf(
		&buf,
		"hookcheck ran %d %s for %q: %d passed, %d failed, %d could not run, %d skipped.\n",
		summary.Total,
		pluralize(summary.Total, "check", "checks"),
		hook,
		summary.Passed,
		summary.Failed,
		summary.Errored,
		summary.Skipped,
	)

	for _, section := range sections {
		matching := make([]Result, 0)
		for _, result := range results {
			if result.State() == section.state {
				matching = append(matching, result)
			}
		}

		if len(matching) == 0 {
			continue
		}

		fmt.Fprintf(&buf, "\n%s (%d):\n", section.title, len(matching))

		for _, result := range matching {
			switch section.state {
			case StateFailed:
				fmt.Fprintf(&buf, "- %s (exit code %d)\n", result.Name, result.Outcome.ExitCode)
				if cfg.IncludeOutput {
					writeIndented(&buf, result.Outcome.Output)
				}
			case StateErrored:
				fmt.Fprintf(&buf, "- %s: %s\n", result.Name, errorMessage(result.Err))
			default:
				fmt.Fprintf(&buf, "- %s\n", result.Name)
			}
		}
	}

	if _, err := io.WriteString(w, buf.String()); err != nil {
		return errors.NewSystemError("unable to write summary: %s", err)
	}

	return nil
}

func writeIndented(buf *strings.Builder, output string) {
	output = strings.TrimRight(output, "\n")
	if output == "" {
		return
	}

	for _, line := range strings.Split(output, "\n") {
		if line == "" {
			buf.WriteString("\n")
			continue
		}

		buf.WriteString("    ")
		buf.WriteString(line)
		buf.WriteString("\n")
	}
}

func pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}

	return plural
}
