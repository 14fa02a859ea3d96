// Command statcardctl renders stat cards from flags or YAML card files,
// as HTML fragments or as boxes for the terminal.
//
// Usage:
//
//	statcardctl render --title Revenue --value 1200 --trend up --trend-value 8%
//	statcardctl render --title Errors --value 3 --variant destructive --icon alert --format term
//	statcardctl file cards.yaml --format term --width 36
//	statcardctl icons
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
