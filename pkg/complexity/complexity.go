// Package complexity scores markdown files on structural density.
//
// The score is a weighted sum of heading, link, fenced-code, and list-item
// counts. It is a line-oriented heuristic, not a markdown parser: the link
// pattern also matches image syntax and bracket-paren pairs inside code
// fences, and an odd number of fence markers miscounts via the integer
// division. Files whose score exceeds the threshold are flagged.
package complexity

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

const (
	// DefaultRoot is the documentation tree scanned when Config.Root is empty.
	DefaultRoot = "docs"
	// DefaultThreshold is the score above which a file is flagged.
	DefaultThreshold = 50
)

// Config controls the analysis.
type Config struct {
	// Root is the directory scanned recursively for markdown files.
	Root string
	// Threshold overrides DefaultThreshold when non-zero.
	Threshold float64
}

// Metrics holds the raw structural counts for one file and the derived score.
type Metrics struct {
	Headings       int
	Links          int
	CodeBlockPairs int
	ListItems      int
	Score          float64
}

// FileMetrics ties a file's metrics to its path.
type FileMetrics struct {
	Path string
	Metrics
}

// Result aggregates per-file metrics across one run.
type Result struct {
	Files     []FileMetrics
	Threshold float64
}

var (
	headingPattern  = regexp.MustCompile(`(?m)^#{1,6}`)
	linkPattern     = regexp.MustCompile(`\[.*?\]\(.*?\)`)
	listItemPattern = regexp.MustCompile(`(?m)^\s*[-*+]\s`)
)

// Run walks cfg.Root and analyzes every markdown file. Traversal and
// decoding failures abort the run.
func Run(cfg Config) (*Result, error) {
	root := cfg.Root
	if root == "" {
		root = DefaultRoot
	}
	threshold := cfg.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}

	res := &Result{Threshold: threshold}
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

		res.Files = append(res.Files, FileMetrics{
			Path:    filepath.ToSlash(path),
			Metrics: Analyze(content),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Analyze computes the structural counts and score for a file's full text.
// Fence markers are assumed paired; three markers count as one pair.
func Analyze(content string) Metrics {
	m := Metrics{
		Headings:       len(headingPattern.FindAllString(content, -1)),
		Links:          len(linkPattern.FindAllString(content, -1)),
		CodeBlockPairs: strings.Count(content, "```") / 2,
		ListItems:      len(listItemPattern.FindAllString(content, -1)),
	}
	m.Score = float64(m.Headings) + float64(m.Links)*0.5 + float64(m.CodeBlockPairs)*2 + float64(m.ListItems)*0.3
	return m
}

// Flagged returns the files whose score strictly exceeds the threshold, in
// walk order.
func (r *Result) Flagged() []FileMetrics {
	var flagged []FileMetrics
	for _, f := range r.Files {
		if f.Score > r.Threshold {
			flagged = append(flagged, f)
		}
	}
	return flagged
}

// OK reports whether no file exceeded the threshold.
func (r *Result) OK() bool {
	return len(r.Flagged()) == 0
}

// Report writes the pass/fail summary for the run.
func (r *Result) Report(w io.Writer) {
	flagged := r.Flagged()
	if len(flagged) == 0 {
		fmt.Fprintln(w, "✅ All files have reasonable complexity")
		return
	}

	fmt.Fprintln(w, "❌ High complexity files detected:")
	for _, f := range flagged {
		fmt.Fprintf(w, "  - %s: complexity=%.1f\n", f.Path, f.Score)
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
