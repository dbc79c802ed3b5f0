package fzf

// Scheme selects the scoring scheme fzf uses to rank matches.
type Scheme int

const (
	SchemeDefault Scheme = iota
	SchemePath
	SchemeHistory
)

// String returns the token fzf expects for --scheme.
func (s Scheme) String() string {
	switch s {
	case SchemePath:
		return "path"
	case SchemeHistory:
		return "history"
	default:
		return "default"
	}
}

// ParseScheme maps a scheme token back to its Scheme value.
// Unrecognized tokens map to SchemeDefault.
func ParseScheme(s string) Scheme {
	switch s {
	case "path":
		return SchemePath
	case "history":
		return SchemeHistory
	default:
		return SchemeDefault
	}
}

// Layout selects how fzf arranges the prompt and the candidate list.
type Layout int

const (
	LayoutDefault Layout = iota
	LayoutReverse
	LayoutReverseList
)

// String returns the token fzf expects for --layout.
func (l Layout) String() string {
	switch l {
	case LayoutReverse:
		return "reverse"
	case LayoutReverseList:
		return "reverse-list"
	default:
		return "default"
	}
}

// ParseLayout maps a layout token back to its Layout value.
// Unrecognized tokens map to LayoutDefault.
func ParseLayout(s string) Layout {
	switch s {
	case "reverse":
		return LayoutReverse
	case "reverse-list":
		return LayoutReverseList
	default:
		return LayoutDefault
	}
}

// Border selects the border drawn around the finder.
type Border int

const (
	BorderNone Border = iota
	BorderRounded
	BorderSharp
	BorderBold
	BorderDouble
	BorderHorizontal
	BorderVertical
	BorderTop
	BorderBottom
	BorderLeft
	BorderRight
)

// String returns the token fzf expects for --border.
func (b Border) String() string {
	switch b {
	case BorderRounded:
		return "rounded"
	case BorderSharp:
		return "sharp"
	case BorderBold:
		return "bold"
	case BorderDouble:
		return "double"
	case BorderHorizontal:
		return "horizontal"
	case BorderVertical:
		return "vertical"
	case BorderTop:
		return "top"
	case BorderBottom:
		return "bottom"
	case BorderLeft:
		return "left"
	case BorderRight:
		return "right"
	default:
		return "none"
	}
}

// ParseBorder maps a border token back to its Border value.
// Unrecognized tokens map to BorderNone.
func ParseBorder(s string) Border {
	switch s {
	case "rounded":
		return BorderRounded
	case "sharp":
		return BorderSharp
	case "bold":
		return BorderBold
	case "double":
		return BorderDouble
	case "horizontal":
		return BorderHorizontal
	case "vertical":
		return BorderVertical
	case "top":
		return BorderTop
	case "bottom":
		return BorderBottom
	case "left":
		return BorderLeft
	case "right":
		return BorderRight
	default:
		return BorderNone
	}
}

// Color selects the base color theme.
type Color int

const (
	ColorDark Color = iota
	ColorLight
	ColorSixteen
	ColorBw
)

// String returns the token fzf expects for --color.
func (c Color) String() string {
	switch c {
	case ColorLight:
		return "light"
	case ColorSixteen:
		return "16"
	case ColorBw:
		return "bw"
	default:
		return "dark"
	}
}

// ParseColor maps a color token back to its Color value.
// Unrecognized tokens map to ColorDark.
func ParseColor(s string) Color {
	switch s {
	case "light":
		return ColorLight
	case "16":
		return ColorSixteen
	case "bw":
		return ColorBw
	default:
		return ColorDark
	}
}
