// Package fzfcli provides low-level finder subprocess control: spawning
// with piped stdin/stdout, line writes, exit capture, and binary version
// probing. It is internal to the fzf package.
package fzfcli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Session owns a running finder process and the write end of its stdin
// pipe. It is created by Start and consumed exactly once by Wait.
type Session struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout bytes.Buffer
}

// Start spawns the finder binary with the given arguments. Stdin and
// stdout are piped; stderr is inherited so the finder can draw its
// interface on the terminal. On failure no Session is returned and
// nothing is left running.
func Start(bin string, args []string) (*Session, error) {
	cmd := exec.Command(bin, args...)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, &Error{Op: "start", Args: args, Err: err}
	}

	s := &Session{cmd: cmd, stdin: stdin}
	cmd.Stdout = &s.stdout

	if err := cmd.Start(); err != nil {
		stdin.Close()
		return nil, &Error{Op: "start", Args: args, Err: err}
	}

	return s, nil
}

// WriteLine writes one line to the finder's stdin. The line must already
// be newline-terminated by the caller. The write blocks under ordinary
// pipe backpressure until the finder drains its input buffer.
func (s *Session) WriteLine(line string) error {
	if _, err := io.WriteString(s.stdin, line); err != nil {
		return &Error{Op: "write", Err: err}
	}
	return nil
}

// Wait closes the finder's stdin, blocks until the process exits, and
// returns everything it wrote to stdout along with its exit code. A
// non-zero exit is not an error here; only a failure of the underlying
// wait call is.
func (s *Session) Wait() (stdout []byte, exitCode int, err error) {
	// EOF on stdin lets a finder that is still reading input finish up.
	_ = s.stdin.Close()

	waitErr := s.cmd.Wait()

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return s.stdout.Bytes(), exitErr.ExitCode(), nil
	}
	if waitErr != nil {
		return nil, 0, &Error{Op: "wait", Err: waitErr}
	}
	return s.stdout.Bytes(), 0, nil
}

// Error represents a finder subprocess failure.
type Error struct {
	Op   string
	Args []string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fzf %s failed: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Version runs "<bin> --version" and returns the version string
// (e.g. "0.44.1").
func Version(bin string) (string, error) {
	cmd := exec.Command(bin, "--version")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("fzf --version failed: %v (stderr: %s)", err, strings.TrimSpace(stderr.String()))
	}

	// Output is like "0.44.1 (d579e33)".
	output := strings.TrimSpace(stdout.String())
	version, _, _ := strings.Cut(output, " ")
	return version, nil
}
