package report

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"suiterun/internal/domain"
)

type junitTestSuites struct {
	XMLName  xml.Name         `xml:"testsuites"`
	Name     string           `xml:"name,attr"`
	Tests    int              `xml:"tests,attr"`
	Failures int              `xml:"failures,attr"`
	Time     string           `xml:"time,attr"`
	Suites   []junitTestSuite `xml:"testsuite"`
}

type junitTestSuite struct {
	Name     string          `xml:"name,attr"`
	Tests    int             `xml:"tests,attr"`
	Failures int             `xml:"failures,attr"`
	Time     string          `xml:"time,attr"`
	Cases    []junitTestCase `xml:"testcase"`
}

type junitTestCase struct {
	ClassName string        `xml:"classname,attr"`
	Name      string        `xml:"name,attr"`
	Time      string        `xml:"time,attr"`
	Failure   *junitFailure `xml:"failure,omitempty"`
}

type junitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:",chardata"`
}

// WriteJUnit writes results as a JUnit XML document, one testsuite per suite
// and iteration.
func WriteJUnit(w io.Writer, results []*domain.RunResult) error {
	doc := junitTestSuites{Name: "suiterun"}
	var total time.Duration

	for _, run := range results {
		total += run.Duration
		for _, sr := range run.Suites {
			js := junitTestSuite{Name: sr.Name}
			if len(results) > 1 {
				js.Name = fmt.Sprintf("%s (iteration %d)", sr.Name, run.Iteration)
			}

			var suiteTime time.Duration
			for _, tr := range sr.Tests() {
				suiteTime += tr.Duration
				js.Cases = append(js.Cases, toJUnitCase(tr))
				js.Tests++
				if !tr.Passed() {
					js.Failures++
				}
			}
			js.Time = seconds(suiteTime)

			doc.Tests += js.Tests
			doc.Failures += js.Failures
			doc.Suites = append(doc.Suites, js)
		}
	}
	doc.Time = seconds(total)

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode junit: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteJUnitFile writes the JUnit report to path, creating parent directories
func WriteJUnitFile(path string, results []*domain.RunResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create junit dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create junit file: %w", err)
	}
	if err := WriteJUnit(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func toJUnitCase(tr domain.TestResult) junitTestCase {
	jc := junitTestCase{
		ClassName: tr.Path.Suite + "." + tr.Path.Case,
		Name:      tr.Path.Test,
		Time:      seconds(tr.Duration),
	}
	if tr.Passed() {
		return jc
	}

	f := toFailure(tr)
	kind := "AssertionFailure"
	if tr.Panic != "" {
		kind = "Panic"
	}
	var body strings.Builder
	for _, a := range tr.Assertions {
		if a.Passed {
			continue
		}
		if a.File != "" {
			fmt.Fprintf(&body, "%s:%d: ", a.File, a.Line)
		}
		body.WriteString(a.Message)
		body.WriteString("\n")
	}
	jc.Failure = &junitFailure{
		Message: firstLine(f.Message),
		Type:    kind,
		Body:    body.String(),
	}
	return jc
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}
