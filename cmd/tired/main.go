package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
)

func main() {
	// Set UTF-8 as fallback encoding so non-ASCII names still display
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if err := newRootCmd(runBrowser).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tired: %v\n", err)
		os.Exit(1)
	}
}
