// Package main is the entry point for the mldraft CLI tool, which scrapes
// mahjong league game results and computes draft-team standings.
package main

import "github.com/hsato/go-mleague-draft/cmd"

func main() {
	cmd.Execute()
}
