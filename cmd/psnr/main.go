// Package main provides the CLI entry point for psnr.
package main

import (
	"os"

	"github.com/five82/yuvpsnr/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args, os.Stdout, os.Stderr, os.LookupEnv))
}
