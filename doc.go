// Package fzf integrates the fzf fuzzy finder into Go programs.
//
// fzf runs as a subprocess: this package builds its argument list from a
// typed configuration, spawns it with piped stdin/stdout, streams
// selectable items into it, and returns the user's selection once the
// process exits. The end user must have fzf installed; see Requirements.
//
// # Quick Start
//
//	colours := []string{"red", "orange", "yellow", "green", "blue", "indigo", "violet"}
//
//	f := fzf.Default()
//	if err := f.Start(); err != nil {
//		log.Fatal(err)
//	}
//	if err := f.AddItems(colours); err != nil {
//		log.Fatal(err)
//	}
//	selection, err := f.Output()
//
// Output blocks until the user picks an item or quits. A quit yields
// [ErrNoSelection] rather than a real failure. For the common
// pick-from-a-fixed-list case, [RunWithOutput] wraps all three calls:
//
//	selection, ok := fzf.RunWithOutput(fzf.NewBuilder().Build(), colours)
//
// # Configuration
//
// [Builder] exposes one chaining setter per supported fzf flag and an
// infallible Build; every option has a default, so the zero builder is
// already a valid invocation:
//
//	cfg := fzf.NewBuilder().
//		Layout(fzf.LayoutReverse).
//		Border(fzf.BorderRounded).
//		BorderLabel("Favourite Colour").
//		Color(fzf.ColorBw).
//		Header("Pick your favourite colour").
//		HeaderFirst(true).
//		Build()
//
// Enumerated options (scheme, layout, border, color theme) are closed
// sets, so a configuration can never render a token fzf rejects. Flags
// this package does not model are passed through verbatim:
//
//	cfg := fzf.NewBuilder().CustomArgs("--height=10").Build()
//
// # Session Lifecycle
//
// An [Fzf] moves through exactly three states: unstarted, running,
// finished. Start spawns the process, AddItem and AddItems are valid only
// while it runs, and Output consumes the session. There is no restart and
// no respawn; build a new Fzf for a new invocation.
//
// Items may be pushed at any point after Start, including while the user
// is already typing. This supports late-arriving data: results from a
// slow API can stream into an already-open finder one AddItem at a time.
//
// # Requirements
//
//   - Go 1.24+
//   - fzf 0.40.0+ on the search path
//
// The finder binary is resolved in this order:
//
//   - [Builder.Bin]
//   - GOFZF_BIN
//   - PATH lookup for fzf
//
// [Version] reports what the resolved binary identifies as, for programs
// that depend on newer fzf flags.
package fzf
