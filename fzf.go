package fzf

import (
	"errors"
	"os"
	"strings"

	"github.com/marcusbenn/go-fzf/internal/fzfcli"
)

// binEnv overrides the finder binary when the Config carries the default.
const binEnv = "GOFZF_BIN"

var (
	// ErrNotStarted is returned when an item is pushed or output is
	// awaited before Start has been called.
	ErrNotStarted = errors.New("fzf: not started")

	// ErrFinished is returned when a session is used after Output has
	// consumed it.
	ErrFinished = errors.New("fzf: session finished")

	// ErrNoSelection is returned by Output when the finder exited
	// without the user picking anything. It is an expected outcome,
	// distinct from a spawn or write failure.
	ErrNoSelection = errors.New("fzf: no selection")
)

// Session states. The only transitions are Start (unstarted → running)
// and Output (running → finished).
type state int

const (
	stateUnstarted state = iota
	stateRunning
	stateFinished
)

// Fzf drives one finder invocation: Start spawns the process, AddItem
// streams candidates into it (before or after the user starts typing),
// and Output blocks until the process exits and returns the selection.
//
// An Fzf is single-use and not safe for concurrent use; the process
// handle and stdin pipe live in the session, never in the Config.
type Fzf struct {
	cfg   Config
	sess  *fzfcli.Session
	state state
}

// New returns an unstarted Fzf bound to the given Config.
func New(cfg Config) *Fzf {
	if cfg.bin == "" {
		// Zero Config rather than a built one; fall back to defaults.
		cfg = defaultConfig()
	}
	return &Fzf{cfg: cfg}
}

// Default returns an unstarted Fzf with every option at its default,
// equivalent to running fzf with no arguments.
func Default() *Fzf {
	return New(NewBuilder().Build())
}

// Start spawns the finder with the Config's argument list and piped
// stdin/stdout. On failure the error is returned immediately and the
// session remains unstarted; no partial state is kept.
func (f *Fzf) Start() error {
	switch f.state {
	case stateRunning:
		return errors.New("fzf: already started")
	case stateFinished:
		return ErrFinished
	}

	sess, err := fzfcli.Start(f.resolveBin(), f.cfg.Args())
	if err != nil {
		return err
	}

	f.sess = sess
	f.state = stateRunning
	return nil
}

// resolveBin determines the finder binary by checking, in order:
// 1. an explicit Builder.Bin value
// 2. the GOFZF_BIN environment variable
// 3. "fzf", resolved via $PATH by the OS
func (f *Fzf) resolveBin() string {
	if f.cfg.bin != defaultBin {
		return f.cfg.bin
	}
	if envBin := os.Getenv(binEnv); envBin != "" {
		return envBin
	}
	return f.cfg.bin
}

// AddItem pushes one selectable item to the finder. The item is trimmed
// of surrounding whitespace and written with exactly one trailing
// newline, so items never double up on line terminators. Calling AddItem
// before Start or after Output is a contract violation and fails with
// ErrNotStarted or ErrFinished; nothing is ever dropped silently.
func (f *Fzf) AddItem(item string) error {
	switch f.state {
	case stateUnstarted:
		return ErrNotStarted
	case stateFinished:
		return ErrFinished
	}
	return f.sess.WriteLine(strings.TrimSpace(item) + "\n")
}

// AddItems pushes items one by one, stopping at the first failure.
func (f *Fzf) AddItems(items []string) error {
	for _, item := range items {
		if err := f.AddItem(item); err != nil {
			return err
		}
	}
	return nil
}

// Output blocks until the finder exits, then returns the user's
// selection with surrounding whitespace trimmed. Stdout is decoded
// permissively: invalid byte sequences are replaced, never fatal.
//
// A finder that exits without producing output (the user cancelled, or
// nothing matched) yields ErrNoSelection. A failure of the underlying
// process wait is reported as its own error so callers keep the
// diagnostic distinction.
//
// Output consumes the session: it closes the finder's stdin as part of
// teardown, and afterwards the Fzf is finished for good.
func (f *Fzf) Output() (string, error) {
	switch f.state {
	case stateUnstarted:
		return "", ErrNotStarted
	case stateFinished:
		return "", ErrFinished
	}

	sess := f.sess
	f.sess = nil
	f.state = stateFinished

	stdout, exitCode, err := sess.Wait()
	if err != nil {
		return "", err
	}

	selection := strings.TrimSpace(strings.ToValidUTF8(string(stdout), "�"))
	if exitCode != 0 && selection == "" {
		return "", ErrNoSelection
	}
	return selection, nil
}

// RunWithOutput starts a finder with the given Config, pushes the items,
// and blocks until the user decides. The boolean is false whenever no
// selection was made, whether the user cancelled or the finder could not
// be spawned or written to.
func RunWithOutput(cfg Config, items []string) (string, bool) {
	f := New(cfg)
	if err := f.Start(); err != nil {
		return "", false
	}
	if err := f.AddItems(items); err != nil {
		// The finder may already be gone; reap it before giving up.
		_, _ = f.Output()
		return "", false
	}
	selection, err := f.Output()
	if err != nil {
		return "", false
	}
	return selection, true
}

// Version reports the version of the given finder binary, e.g. "0.44.1".
// An empty bin probes the same binary Start would use. This library was
// written against fzf v0.40.0; programs depending on newer flags via
// CustomArgs can gate on the reported version.
func Version(bin string) (string, error) {
	if bin == "" {
		if envBin := os.Getenv(binEnv); envBin != "" {
			bin = envBin
		} else {
			bin = defaultBin
		}
	}
	return fzfcli.Version(bin)
}
