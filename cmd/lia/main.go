// Package main is the entry point for the lia CLI client.
package main

import (
	"github.com/donaldgifford/lifeinvader-ads/cmd/lia/cmd"
)

func main() {
	cmd.Execute()
}
