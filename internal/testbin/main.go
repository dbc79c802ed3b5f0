// Command testbin is a fake finder fixture for testing the fzf library
// without an interactive terminal. Like fzf it consumes stdin until EOF
// and prints a "selection" on stdout; which one is directed by
// environment variables.
//
// Behavior, checked in order:
//   - a --version argument prints a fixed version line and exits, before
//     any stdin handling, the way fzf does
//   - FAKEFZF_NO_READ=1: exit 130 without touching stdin, so writers
//     see a broken pipe
//   - FAKEFZF_CANCEL=1: print nothing, exit 130 (fzf's SIGINT code)
//   - FAKEFZF_PRINT_ARGS=1: print argv joined by the unit separator, exit 0
//   - FAKEFZF_ECHO_INPUT=1: print stdin verbatim, exit 0
//   - FAKEFZF_PICK=n: print the nth line read (1-based), exit 0;
//     out of range prints nothing and exits 1 (fzf's no-match code)
//   - default: behave like FAKEFZF_PICK=1
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Println("0.40.0 (testbin)")
		return
	}

	if os.Getenv("FAKEFZF_NO_READ") == "1" {
		os.Exit(130)
	}

	input, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		fmt.Fprintf(os.Stderr, "testbin: reading stdin: %v\n", err)
		os.Exit(2)
	}

	switch {
	case os.Getenv("FAKEFZF_CANCEL") == "1":
		os.Exit(130)

	case os.Getenv("FAKEFZF_PRINT_ARGS") == "1":
		fmt.Println(strings.Join(os.Args[1:], "\x1f"))

	case os.Getenv("FAKEFZF_ECHO_INPUT") == "1":
		os.Stdout.Write(input)

	default:
		pick := 1
		if pickStr := os.Getenv("FAKEFZF_PICK"); pickStr != "" {
			n, parseErr := strconv.Atoi(pickStr)
			if parseErr != nil {
				fmt.Fprintf(os.Stderr, "testbin: invalid FAKEFZF_PICK %q\n", pickStr)
				os.Exit(2)
			}
			pick = n
		}

		lines := strings.Split(strings.TrimSuffix(string(input), "\n"), "\n")
		if len(input) == 0 || pick < 1 || pick > len(lines) {
			os.Exit(1)
		}
		fmt.Println(lines[pick-1])
	}
}
