package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/lazysetup/cmd/lazysetup"
	"github.com/arthur-debert/lazysetup/internal/version"
)

func main() {
	rootCmd := lazysetup.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "LAZYSETUP",
		Section: "1",
		Source:  "lazysetup " + version.Version,
		Manual:  "lazysetup manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
