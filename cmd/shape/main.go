// Command shape groups and transposes tabular records read from CSV, JSON
// or YAML files.
//
//	shape transpose --group decade --merge character=appearances data.csv
//	shape group --keys decade,character data.json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "shape: %v\n", err)
		os.Exit(1)
	}
}
