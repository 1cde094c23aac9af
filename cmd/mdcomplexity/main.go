// Command mdcomplexity gates CI on markdown structural complexity.
//
// It scans docs/ recursively, scores each file on heading, link, code-block,
// and list-item density, and fails when any file scores above the fixed
// threshold.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dkoosis/docgate/pkg/complexity"
)

func main() {
	root := flag.String("root", complexity.DefaultRoot, "documentation root to scan")
	flag.Parse()

	res, err := complexity.Run(complexity.Config{Root: *root})
	if err != nil {
		fmt.Fprintf(os.Stderr, "mdcomplexity: %v\n", err)
		os.Exit(1)
	}

	res.Report(os.Stdout)
	if !res.OK() {
		os.Exit(1)
	}
}
