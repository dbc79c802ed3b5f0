package fzf

const (
	defaultBin     = "fzf"
	defaultPrompt  = "> "
	defaultPointer = ">"
	defaultTabstop = 8
)

// Config is an immutable snapshot of finder options, produced by
// Builder.Build. The zero Builder produces a Config that runs fzf with
// its stock appearance; every field has a total default, so a Config is
// always constructible without explicit input.
type Config struct {
	bin        string
	customArgs []string

	// Search
	scheme   Scheme
	literal  bool
	track    bool
	tac      bool
	disabled bool

	// Interface
	noMouse      bool
	cycle        bool
	keepRight    bool
	noHScroll    bool
	filepathWord bool

	// Layout
	layout      Layout
	border      Border
	borderLabel string
	noSeparator bool
	noScrollbar bool
	prompt      string
	pointer     string
	header      string
	headerFirst bool

	// Display
	ansi    bool
	tabstop int
	color   Color
	noBold  bool
}

// Builder accumulates finder options. Setters store the value and return
// the builder for chaining; Build produces the Config snapshot and cannot
// fail.
type Builder struct {
	cfg Config
}

// NewBuilder returns a Builder holding every option at its default.
func NewBuilder() *Builder {
	return &Builder{cfg: defaultConfig()}
}

func defaultConfig() Config {
	return Config{
		bin:     defaultBin,
		prompt:  defaultPrompt,
		pointer: defaultPointer,
		tabstop: defaultTabstop,
	}
}

// Bin overrides the finder binary. The default is "fzf", resolved via
// $PATH at Start time. The GOFZF_BIN environment variable takes
// precedence over the default but not over an explicit Bin call.
func (b *Builder) Bin(path string) *Builder {
	b.cfg.bin = path
	return b
}

// CustomArgs appends raw arguments for flags this library does not model.
// They are passed to fzf verbatim, after all generated arguments.
func (b *Builder) CustomArgs(args ...string) *Builder {
	b.cfg.customArgs = append(b.cfg.customArgs, args...)
	return b
}

// Scheme sets the scoring scheme.
func (b *Builder) Scheme(s Scheme) *Builder {
	b.cfg.scheme = s
	return b
}

// Literal disables normalization of latin script letters before matching.
func (b *Builder) Literal(v bool) *Builder {
	b.cfg.literal = v
	return b
}

// Track keeps the current selection when the result list is updated.
func (b *Builder) Track(v bool) *Builder {
	b.cfg.track = v
	return b
}

// Tac reverses the order of the input.
func (b *Builder) Tac(v bool) *Builder {
	b.cfg.tac = v
	return b
}

// Disabled turns off searching, leaving fzf as a plain selector.
func (b *Builder) Disabled(v bool) *Builder {
	b.cfg.disabled = v
	return b
}

// NoMouse disables mouse support.
func (b *Builder) NoMouse(v bool) *Builder {
	b.cfg.noMouse = v
	return b
}

// Cycle enables cyclic scrolling through the list.
func (b *Builder) Cycle(v bool) *Builder {
	b.cfg.cycle = v
	return b
}

// KeepRight keeps the right end of the line visible on overflow.
func (b *Builder) KeepRight(v bool) *Builder {
	b.cfg.keepRight = v
	return b
}

// NoHScroll disables horizontal scrolling.
func (b *Builder) NoHScroll(v bool) *Builder {
	b.cfg.noHScroll = v
	return b
}

// FilepathWord makes word-wise movements respect path separators.
func (b *Builder) FilepathWord(v bool) *Builder {
	b.cfg.filepathWord = v
	return b
}

// Layout sets the finder layout.
func (b *Builder) Layout(l Layout) *Builder {
	b.cfg.layout = l
	return b
}

// Border sets the border style drawn around the finder.
func (b *Builder) Border(style Border) *Builder {
	b.cfg.border = style
	return b
}

// BorderLabel sets the label printed on the border. Without a border the
// label is not visible.
func (b *Builder) BorderLabel(label string) *Builder {
	b.cfg.borderLabel = label
	return b
}

// NoSeparator hides the info line separator.
func (b *Builder) NoSeparator(v bool) *Builder {
	b.cfg.noSeparator = v
	return b
}

// NoScrollbar hides the scrollbar.
func (b *Builder) NoScrollbar(v bool) *Builder {
	b.cfg.noScrollbar = v
	return b
}

// Prompt sets the input prompt (default "> ").
func (b *Builder) Prompt(prompt string) *Builder {
	b.cfg.prompt = prompt
	return b
}

// Pointer sets the pointer to the current line (default ">").
func (b *Builder) Pointer(pointer string) *Builder {
	b.cfg.pointer = pointer
	return b
}

// Header sets the header text. An empty header emits no --header flag.
func (b *Builder) Header(header string) *Builder {
	b.cfg.header = header
	return b
}

// HeaderFirst prints the header before the prompt line.
func (b *Builder) HeaderFirst(v bool) *Builder {
	b.cfg.headerFirst = v
	return b
}

// Ansi enables processing of ANSI color codes in items.
func (b *Builder) Ansi(v bool) *Builder {
	b.cfg.ansi = v
	return b
}

// Tabstop sets the number of spaces rendered for a tab (default 8).
func (b *Builder) Tabstop(n int) *Builder {
	b.cfg.tabstop = n
	return b
}

// Color sets the base color theme.
func (b *Builder) Color(c Color) *Builder {
	b.cfg.color = c
	return b
}

// NoBold disables bold text.
func (b *Builder) NoBold(v bool) *Builder {
	b.cfg.noBold = v
	return b
}

// Build returns the Config snapshot. It is infallible: every field has a
// default, so the zero Builder already describes a valid invocation.
// Later Builder mutations do not affect a previously built Config.
func (b *Builder) Build() Config {
	cfg := b.cfg
	if len(b.cfg.customArgs) > 0 {
		cfg.customArgs = make([]string, len(b.cfg.customArgs))
		copy(cfg.customArgs, b.cfg.customArgs)
	}
	return cfg
}

// Bin returns the configured finder binary.
func (c Config) Bin() string {
	return c.bin
}
