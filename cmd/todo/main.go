package main

import (
	"os"
	"strings"

	"todo-cli/internal/cli"
)

func isItemNumber(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func rewriteDirectDoneArgs(argv []string) []string {
	// Convenience: `todo 9 11` works like `todo done 9 11`.
	//
	// Cobra treats the first non-flag token as a subcommand, so we rewrite argv
	// before parsing. Users often pass persistent flags first (e.g.
	// `todo --list work 9`), so we must find the first positional token, not
	// just argv[1].
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--list":   true,
		"--format": true,
	}
	boolFlags := map[string]bool{
		"--pretty":  true,
		"--verbose": true,
		"-v":        true,
	}

	insertDone := func(at int) []string {
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:at]...)
		out = append(out, "done")
		out = append(out, argv[at:]...)
		return out
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isItemNumber(argv[i+1]) {
				return insertDone(i + 1)
			}
			return argv
		}

		if strings.HasPrefix(a, "-") {
			// --flag=value form
			if strings.Contains(a, "=") {
				continue
			}
			if boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++ // skip value if present
				continue
			}
			continue
		}

		// First positional token.
		if isItemNumber(a) {
			return insertDone(i)
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteDirectDoneArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
