package fzf

import "strconv"

// Args renders the Config as the argument list passed to fzf. The mapping
// is pure and order-stable: identical Configs always yield identical
// sequences, so an invocation can be logged or replayed.
//
// Value-bearing options always emit a --name=value token, defaults
// included; --header is the exception and is omitted when the header text
// is empty. Boolean options emit a bare --name token only when true.
// Custom args come last, verbatim, in caller order.
func (c Config) Args() []string {
	var args []string

	addIf := func(flag string, value bool) {
		if value {
			args = append(args, flag)
		}
	}

	// Search
	args = append(args, "--scheme="+c.scheme.String())
	addIf("--literal", c.literal)
	addIf("--track", c.track)
	addIf("--tac", c.tac)
	addIf("--disabled", c.disabled)

	// Interface
	addIf("--no-mouse", c.noMouse)
	addIf("--cycle", c.cycle)
	addIf("--keep-right", c.keepRight)
	addIf("--no-hscroll", c.noHScroll)
	addIf("--filepath-word", c.filepathWord)

	// Layout
	args = append(args, "--layout="+c.layout.String())
	args = append(args, "--border="+c.border.String())
	args = append(args, "--border-label="+c.borderLabel)
	addIf("--no-separator", c.noSeparator)
	addIf("--no-scrollbar", c.noScrollbar)
	args = append(args, "--prompt="+c.prompt)
	args = append(args, "--pointer="+c.pointer)
	if c.header != "" {
		args = append(args, "--header="+c.header)
	}
	addIf("--header-first", c.headerFirst)

	// Display
	addIf("--ansi", c.ansi)
	args = append(args, "--tabstop="+strconv.Itoa(c.tabstop))
	args = append(args, "--color="+c.color.String())
	addIf("--no-bold", c.noBold)

	args = append(args, c.customArgs...)

	return args
}
