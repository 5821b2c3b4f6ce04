// SPDX-License-Identifier: MIT

// Command transformdemo prints transform.Walkthrough: a table on a terminal,
// JSON otherwise (or with -json).
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/katalvlaran/mtx4/transform"
)

func main() {
	asJSON := flag.Bool("json", false, "always print JSON")
	prec := flag.Int("prec", 4, "decimal places in table output")
	flag.Parse()

	r, err := transform.Walkthrough()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pretty := !*asJSON && term.IsTerminal(int(os.Stdout.Fd()))
	if pretty {
		err = renderTable(os.Stdout, r, *prec)
	} else {
		err = renderJSON(os.Stdout, r)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
