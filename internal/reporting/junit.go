package reporting

import (
	"encoding/xml"
	"io"

	"github.com/rwx-research/hookcheck/internal/errors"
)

type junitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	TestSuites []junitTestSuite `xml:"testsuite"`
}

type junitTestSuite struct {
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Errors    int             `xml:"errors,attr"`
	Skipped   int             `xml:"skipped,attr"`
	Time      float64         `xml:"time,attr"`
	TestCases []junitTestCase `xml:"testcase"`
}

type junitTestCase struct {
	Name      string        `xml:"name,attr"`
	ClassName string        `xml:"classname,attr"`
	Time      float64       `xml:"time,attr"`
	Failure   *junitMessage `xml:"failure,omitempty"`
	Error     *junitMessage `xml:"error,omitempty"`
	Skipped   *junitMessage `xml:"skipped,omitempty"`
	SystemOut string        `xml:"system-out,omitempty"`
}

type junitMessage struct {
	Message string `xml:"message,attr,omitempty"`
}

// WriteJUnitSummary writes the results of a hook run as a JUnit XML document. Each check is a test case within a
// single test suite named after the hook.
func WriteJUnitSummary(w io.Writer, hook string, results []Result) error {
	summary := Summarize(results)

	suite := junitTestSuite{
		Name:      hook,
		Tests:     summary.Total,
		Failures:  summary.Failed,
		Errors:    summary.Errored,
		Skipped:   summary.Skipped,
		TestCases: make([]junitTestCase, 0, len(results)),
	}

	for _, result := range results {
		testCase := junitTestCase{
			Name:      result.Name,
			ClassName: hook,
			Time:      result.Duration.Seconds(),
			SystemOut: result.Outcome.Output,
		}

		switch result.State() {
		case StateFailed:
			testCase.Failure = &junitMessage{Message: "check exited with a non-zero exit code"}
		case StateErrored:
			testCase.Error = &junitMessage{Message: errorMessage(result.Err)}
		case StateSkipped:
			testCase.Skipped = &junitMessage{}
		case StatePassed:
		}

		suite.Time += testCase.Time
		suite.TestCases = append(suite.TestCases, testCase)
	}

	if _, err := io.WriteString(w, "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n"); err != nil {
		return errors.WithStack(err)
	}

	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")

	if err := encoder.Encode(junitTestSuites{TestSuites: []junitTestSuite{suite}}); err != nil {
		return errors.WithStack(err)
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
