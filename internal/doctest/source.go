package doctest

import (
	"regexp"
	"strings"
)

var (
	packageClause = regexp.MustCompile(`(?m)^\s*package\s+\w+`)
	mainFunc      = regexp.MustCompile(`(?m)^func\s+main\s*\(\s*\)`)
)

// BuildSource turns an example into a compilable main.go.
//
// Code with its own package clause is used as is. Otherwise it becomes
// package main: leading import declarations stay at file level and, unless
// the code declares func main itself, the rest becomes the body of main.
func BuildSource(code string) string {
	if packageClause.MatchString(code) {
		return code
	}

	imports, rest := splitImports(code)

	var b strings.Builder
	b.WriteString("package main\n\n")
	if imports != "" {
		b.WriteString(imports)
		b.WriteString("\n")
	}
	if mainFunc.MatchString(rest) {
		b.WriteString(rest)
		return b.String()
	}

	b.WriteString("func main() {\n")
	b.WriteString(rest)
	if rest != "" && !strings.HasSuffix(rest, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// splitImports separates the leading import declarations (with any blank or
// comment lines among them) from the rest of the code.
func splitImports(code string) (imports, rest string) {
	lines := strings.SplitAfter(code, "\n")

	i := 0
	lastImport := -1
	inBlock := false
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		switch {
		case inBlock:
			if line == ")" {
				inBlock = false
				lastImport = i
			}
		case line == "" || strings.HasPrefix(line, "//"):
			// allowed between imports
		case strings.HasPrefix(line, "import ("):
			if strings.HasSuffix(line, ")") {
				lastImport = i
			} else {
				inBlock = true
			}
		case strings.HasPrefix(line, "import "):
			lastImport = i
		default:
			return strings.Join(lines[:lastImport+1], ""), strings.Join(lines[lastImport+1:], "")
		}
	}
	if inBlock {
		// Unterminated block: leave everything to the compiler.
		return "", code
	}
	return strings.Join(lines[:lastImport+1], ""), strings.Join(lines[lastImport+1:], "")
}
