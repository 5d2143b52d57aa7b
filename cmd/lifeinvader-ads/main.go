// Package main is the entry point for the lifeinvader-ads server.
package main

import (
	"os"

	"github.com/donaldgifford/lifeinvader-ads/cmd/lifeinvader-ads/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
