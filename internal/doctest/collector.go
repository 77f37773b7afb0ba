package doctest

import "fmt"

// ProgramName is the leading token of a harness argument vector.
const ProgramName = "mddoctest"

// TestCase is one example extracted from a document.
type TestCase struct {
	Name        string   // "<file> - <section> (line N)"
	File        string   // source document
	Line        int      // 1-based line of the opening fence
	Section     string   // nearest preceding heading, "" if none
	Code        string   // example source as written
	Libs        []string // module directories available to the example
	Ignore      bool
	NoRun       bool
	ShouldPanic bool
	CompileFail bool
	WantOutput  string // expected stdout when HasOutput
	HasOutput   bool
}

// Collector accumulates the examples of one document.
type Collector struct {
	File  string
	Libs  []string
	Tests []TestCase
}

// NewCollector creates a collector for file with the given library paths.
func NewCollector(file string, libs []string) *Collector {
	return &Collector{File: file, Libs: libs}
}

// Add stamps each test with the collector's file, name and libraries and
// appends it, preserving order.
func (c *Collector) Add(tests ...TestCase) {
	for _, tc := range tests {
		tc.File = c.File
		tc.Libs = c.Libs
		tc.Name = testName(c.File, tc.Section, tc.Line)
		c.Tests = append(c.Tests, tc)
	}
}

func testName(file, section string, line int) string {
	if section == "" {
		return fmt.Sprintf("%s (line %d)", file, line)
	}
	return fmt.Sprintf("%s - %s (line %d)", file, section, line)
}
