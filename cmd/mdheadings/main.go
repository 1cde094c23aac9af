// Command mdheadings gates CI on markdown heading hierarchy.
//
// It scans docs/ recursively and fails when a heading jumps more than one
// level past the heading before it (e.g. an H1 followed by an H3).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dkoosis/docgate/pkg/headings"
)

func main() {
	root := flag.String("root", headings.DefaultRoot, "documentation root to scan")
	flag.Parse()

	res, err := headings.Run(headings.Config{Root: *root})
	if err != nil {
		fmt.Fprintf(os.Stderr, "mdheadings: %v\n", err)
		os.Exit(1)
	}

	res.Report(os.Stdout)
	if !res.OK() {
		os.Exit(1)
	}
}
