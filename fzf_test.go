package fzf_test

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fzf "github.com/marcusbenn/go-fzf"
)

var testBinary string

func TestMain(m *testing.M) {
	// Build the fake finder fixture binary.
	dir, err := os.MkdirTemp("", "gofzf-testbin-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1)
	}
	defer os.RemoveAll(dir)

	binPath := filepath.Join(dir, "testbin")
	cmd := exec.Command("go", "build", "-o", binPath, "./internal/testbin")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build testbin: %v\n", err)
		os.Exit(1)
	}

	testBinary = binPath
	os.Exit(m.Run())
}

func newTestFinder() *fzf.Fzf {
	return fzf.New(fzf.NewBuilder().Bin(testBinary).Build())
}

func TestAddItemBeforeStart(t *testing.T) {
	t.Parallel()

	f := newTestFinder()
	assert.ErrorIs(t, f.AddItem("red"), fzf.ErrNotStarted)
	assert.ErrorIs(t, f.AddItems([]string{"red"}), fzf.ErrNotStarted)

	_, err := f.Output()
	assert.ErrorIs(t, err, fzf.ErrNotStarted)
}

func TestStartNonexistentBinary(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "no-such-finder")
	f := fzf.New(fzf.NewBuilder().Bin(missing).Build())

	require.Error(t, f.Start())

	// A failed spawn leaves the session unstarted, not half-running.
	assert.ErrorIs(t, f.AddItem("red"), fzf.ErrNotStarted)
}

func TestSelectFirstItem(t *testing.T) {
	t.Parallel()

	f := newTestFinder()
	require.NoError(t, f.Start())
	require.NoError(t, f.AddItems([]string{"red", "green", "blue"}))

	selection, err := f.Output()
	require.NoError(t, err)
	assert.Equal(t, "red", selection)
}

func TestSelectNthItem(t *testing.T) {
	t.Setenv("FAKEFZF_PICK", "3")

	f := newTestFinder()
	require.NoError(t, f.Start())
	require.NoError(t, f.AddItems([]string{"red", "green", "blue"}))

	selection, err := f.Output()
	require.NoError(t, err)
	assert.Equal(t, "blue", selection)
}

func TestItemsTrimmedAndNewlineTerminated(t *testing.T) {
	t.Setenv("FAKEFZF_ECHO_INPUT", "1")

	f := newTestFinder()
	require.NoError(t, f.Start())
	require.NoError(t, f.AddItems([]string{"red", "green "}))

	// The fixture echoes its stdin verbatim. Exactly one line per item:
	// the trailing space is trimmed and no newline doubles up.
	echoed, err := f.Output()
	require.NoError(t, err)
	assert.Equal(t, "red\ngreen", echoed)
}

func TestItemsAfterStart(t *testing.T) {
	t.Parallel()

	// Items may arrive while the finder is already running.
	f := newTestFinder()
	require.NoError(t, f.Start())

	require.NoError(t, f.AddItem("early"))
	require.NoError(t, f.AddItem("late "))

	selection, err := f.Output()
	require.NoError(t, err)
	assert.Equal(t, "early", selection)
}

func TestCancellationIsNoSelection(t *testing.T) {
	t.Setenv("FAKEFZF_CANCEL", "1")

	f := newTestFinder()
	require.NoError(t, f.Start())
	require.NoError(t, f.AddItem("red"))

	_, err := f.Output()
	assert.ErrorIs(t, err, fzf.ErrNoSelection)
}

func TestNoMatchIsNoSelection(t *testing.T) {
	t.Parallel()

	// No items at all: the fixture exits 1 with empty output, like fzf
	// when nothing matched.
	f := newTestFinder()
	require.NoError(t, f.Start())

	_, err := f.Output()
	assert.ErrorIs(t, err, fzf.ErrNoSelection)
}

func TestEmptySelectionIsNotCancellation(t *testing.T) {
	t.Setenv("FAKEFZF_ECHO_INPUT", "1")

	// Exit 0 with blank output means the user picked an empty
	// placeholder, which is a selection, not a cancellation.
	f := newTestFinder()
	require.NoError(t, f.Start())
	require.NoError(t, f.AddItem(""))

	selection, err := f.Output()
	require.NoError(t, err)
	assert.Equal(t, "", selection)
}

func TestWriteToExitedFinderFails(t *testing.T) {
	t.Setenv("FAKEFZF_NO_READ", "1")

	f := newTestFinder()
	require.NoError(t, f.Start())

	// The fixture exits without reading stdin. Once it is gone the pipe
	// is broken and the push must fail loudly, never drop data.
	var err error
	for i := 0; i < 200; i++ {
		if err = f.AddItem("red"); err != nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.Error(t, err)

	_, outErr := f.Output()
	assert.ErrorIs(t, outErr, fzf.ErrNoSelection)
}

func TestOutputConsumesSession(t *testing.T) {
	t.Parallel()

	f := newTestFinder()
	require.NoError(t, f.Start())
	require.NoError(t, f.AddItem("red"))

	_, err := f.Output()
	require.NoError(t, err)

	assert.ErrorIs(t, f.AddItem("green"), fzf.ErrFinished)
	_, err = f.Output()
	assert.ErrorIs(t, err, fzf.ErrFinished)
	assert.ErrorIs(t, f.Start(), fzf.ErrFinished)
}

func TestStartTwice(t *testing.T) {
	t.Parallel()

	f := newTestFinder()
	require.NoError(t, f.Start())
	assert.Error(t, f.Start())

	require.NoError(t, f.AddItem("red"))
	_, err := f.Output()
	require.NoError(t, err)
}

func TestConfigArgsReachTheFinder(t *testing.T) {
	t.Setenv("FAKEFZF_PRINT_ARGS", "1")

	cfg := fzf.NewBuilder().
		Bin(testBinary).
		Layout(fzf.LayoutReverse).
		Border(fzf.BorderRounded).
		BorderLabel("Favourite Colour").
		Header("Pick one").
		HeaderFirst(true).
		CustomArgs("--height=10").
		Build()

	f := fzf.New(cfg)
	require.NoError(t, f.Start())

	printed, err := f.Output()
	require.NoError(t, err)

	// The fixture prints its argv joined by the unit separator, so the
	// finder received exactly the mapped argument list.
	assert.Equal(t, strings.Join(cfg.Args(), "\x1f"), printed)
}

func TestOutputDecodesPermissively(t *testing.T) {
	t.Setenv("FAKEFZF_ECHO_INPUT", "1")

	f := newTestFinder()
	require.NoError(t, f.Start())
	require.NoError(t, f.AddItem("r\xffd"))

	selection, err := f.Output()
	require.NoError(t, err)
	assert.Equal(t, "r�d", selection)
}

func TestRunWithOutput(t *testing.T) {
	t.Parallel()

	selection, ok := fzf.RunWithOutput(
		fzf.NewBuilder().Bin(testBinary).Build(),
		[]string{"red", "green", "blue"},
	)
	require.True(t, ok)
	assert.Equal(t, "red", selection)
}

func TestRunWithOutputCancelled(t *testing.T) {
	t.Setenv("FAKEFZF_CANCEL", "1")

	_, ok := fzf.RunWithOutput(
		fzf.NewBuilder().Bin(testBinary).Build(),
		[]string{"red"},
	)
	assert.False(t, ok)
}

func TestRunWithOutputSpawnFailure(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "no-such-finder")
	_, ok := fzf.RunWithOutput(fzf.NewBuilder().Bin(missing).Build(), []string{"red"})
	assert.False(t, ok)
}

func TestBinEnvOverride(t *testing.T) {
	t.Setenv("GOFZF_BIN", testBinary)

	// Default config resolves the binary through GOFZF_BIN.
	f := fzf.Default()
	require.NoError(t, f.Start())
	require.NoError(t, f.AddItem("red"))

	selection, err := f.Output()
	require.NoError(t, err)
	assert.Equal(t, "red", selection)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	version, err := fzf.Version(testBinary)
	require.NoError(t, err)
	assert.Equal(t, "0.40.0", version)
}
