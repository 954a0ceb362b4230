// Command wikitable converts between wiki page tables and record files.
//
//	wikitable parse -in page.xml -out people.yaml
//	wikitable build -in people.csv -out page.xml
//	wikitable headers -in page.html
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tsawler/wikitable/internal/app"
)

func main() {
	err := app.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, app.ErrUsage):
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "wikitable: %v\n", err)
		os.Exit(1)
	}
}
