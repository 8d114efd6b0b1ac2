// Command grep is the CLI collaborator described in spec.md §6: it reads
// a pattern and one or more input sources and prints the lines the
// regular-expression engine in the top-level grep package matches.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

// cli is the flat flag set spec.md §6 fixes: `grep -E <pattern>` reads one
// line from stdin, `grep -E <pattern> <file>...` searches files, and
// `grep -r -E <pattern> <dir>` walks a directory recursively.
var cli struct {
	Extended  string   `short:"E" required:"" placeholder:"PATTERN" help:"Pattern to match, using this tool's restricted regular-expression dialect."`
	Recursive bool     `short:"r" help:"Treat the sole path argument as a directory and search it recursively."`
	Verbose   bool     `short:"v" help:"Lower the diagnostic log level from warn to debug."`
	Paths     []string `arg:"" optional:"" name:"path" help:"Files to search, or (with -r) a single directory."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("grep"),
		kong.Description("A small grep-like utility backed by a from-scratch regular-expression engine."),
		kong.UsageOnError(),
	)

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if cli.Verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	matched, err := run(cli.Extended, cli.Recursive, cli.Paths, os.Stdin, os.Stdout, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "grep:", err)
		os.Exit(1)
	}
	if !matched {
		os.Exit(1)
	}
}
