package reporting

// Configuration tunes how reports are rendered
type Configuration struct {
	// IncludeOutput adds the output of failed checks to the text summary. It is usually disabled when that output was
	// already streamed to the terminal.
	IncludeOutput bool
}
