// Command pouty prints colorized, prefixed console messages, mirrors them to
// a timestamped log file, raises desktop notifications, and drives an AnyBar
// menubar indicator over UDP.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
