// Package headings checks markdown files for heading level jumps.
//
// A jump is a heading whose level exceeds the previous heading's level by
// more than one step, e.g. an H1 followed directly by an H3. Decreasing
// levels, equal levels, and single-step increases are always fine, and the
// first heading of a document is never flagged.
package headings

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultRoot is the documentation tree scanned when Config.Root is empty.
const DefaultRoot = "docs"

// Config controls the check.
type Config struct {
	// Root is the directory scanned recursively for markdown files.
	Root string
}

// Issue describes a single heading level jump.
type Issue struct {
	From  int
	To    int
	Title string
}

func (i Issue) String() string {
	return fmt.Sprintf("Heading level jump: H%d to H%d - '%s'", i.From, i.To, i.Title)
}

// Finding ties an issue to the file it was found in.
type Finding struct {
	Path  string
	Issue Issue
}

// Result aggregates findings across one run.
type Result struct {
	Findings []Finding
}

var headingPattern = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)

// Run walks cfg.Root and checks every markdown file in document order.
// Traversal and decoding failures abort the run; only level jumps are
// collected as findings.
func Run(cfg Config) (*Result, error) {
	root := cfg.Root
	if root == "" {
		root = DefaultRoot
	}

	res := &Result{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		content, err := readText(path)
		if err != nil {
			return err
		}

		for _, issue := range Check(content) {
			res.Findings = append(res.Findings, Finding{Path: filepath.ToSlash(path), Issue: issue})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Check extracts the ordered heading sequence from content and reports level
// jumps. The previous level is updated after every heading whether or not it
// was flagged, so each heading can produce at most one issue.
func Check(content string) []Issue {
	var issues []Issue

	prev := 0
	for _, m := range headingPattern.FindAllStringSubmatch(content, -1) {
		level := len(m[1])
		if prev > 0 && level > prev+1 {
			issues = append(issues, Issue{From: prev, To: level, Title: m[2]})
		}
		prev = level
	}

	return issues
}

// OK reports whether the run produced no findings.
func (r *Result) OK() bool {
	return len(r.Findings) == 0
}

// Report writes the pass/fail summary for the run.
func (r *Result) Report(w io.Writer) {
	if r.OK() {
		fmt.Fprintln(w, "✅ All heading hierarchies are correct")
		return
	}

	fmt.Fprintln(w, "❌ Heading hierarchy issues found:")
	for _, f := range r.Findings {
		fmt.Fprintf(w, "  - %s: %s\n", f.Path, f.Issue)
	}
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", &decodeError{path: path}
	}
	return string(data), nil
}

// decodeError marks a file that cannot be read as UTF-8 text. The gate
// treats it as fatal rather than as a finding.
type decodeError struct {
	path string
}

func (e *decodeError) Error() string {
	return fmt.Sprintf("cannot decode %s as UTF-8 text", e.path)
}
