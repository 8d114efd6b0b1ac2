package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/corelang/grep"
)

// run implements the three invocation shapes of spec.md §6. It returns
// matched=true if any input line matched anywhere, which main.go maps to
// the process exit code.
func run(pattern string, recursive bool, paths []string, stdin io.Reader, stdout io.Writer, log *logrus.Logger) (bool, error) {
	compiled, err := grep.Compile(pattern)
	if err != nil {
		return false, err
	}

	if recursive {
		if len(paths) != 1 {
			return false, fmt.Errorf("-r requires exactly one directory argument, got %d", len(paths))
		}
		files, err := walkDir(paths[0])
		if err != nil {
			return false, err
		}
		return grepFiles(compiled, files, stdout, log), nil
	}

	if len(paths) == 0 {
		return matchStdin(compiled, stdin), nil
	}

	return grepFiles(compiled, paths, stdout, log), nil
}

// matchStdin reads exactly one line from stdin and reports whether it
// matches. It never prints the line, matching the single-line contract
// of spec.md §6.
func matchStdin(compiled *grep.Compiled, stdin io.Reader) bool {
	reader := bufio.NewReader(stdin)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSuffix(line, "\n")
	return compiled.Matches(line)
}

// grepFiles prints every matching line from every file, prefixed with
// "<filename>:" when more than one file is in play (spec.md §6). It logs
// and skips files it cannot open rather than aborting the whole run,
// matching the original's per-file error recovery.
func grepFiles(compiled *grep.Compiled, files []string, stdout io.Writer, log *logrus.Logger) bool {
	prefix := len(files) > 1
	matched := false

	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			log.WithError(err).Warnf("skipping %s: cannot open", path)
			continue
		}

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := scanner.Text()
			if !compiled.Matches(line) {
				continue
			}
			matched = true
			if prefix {
				fmt.Fprintf(stdout, "%s:%s\n", path, line)
			} else {
				fmt.Fprintln(stdout, line)
			}
		}
		if err := scanner.Err(); err != nil {
			log.WithError(err).Warnf("error reading %s", path)
		}
		f.Close()
	}

	return matched
}
