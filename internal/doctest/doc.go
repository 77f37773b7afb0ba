// Package doctest extracts Go examples from Markdown documents and runs them
// like a test binary.
//
// Extract finds fenced blocks tagged "go" and reads their attributes
// (ignore, no_run, should_panic, compile_fail) and trailing "// Output:"
// comment. A Collector names the examples after their document, section
// and line. Harness.Main parses test-binary style arguments, runs the
// selection through a Runner in parallel, and prints a report ending in a
// "test result:" line. GoRunner builds each example as its own temporary
// module, with library directories made visible through a go.work file.
package doctest
