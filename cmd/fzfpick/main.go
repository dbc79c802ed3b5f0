// Command fzfpick selects one item from a list with fzf and prints the
// selection. Items come from arguments, a YAML list file, or stdin.
//
//	fzfpick red orange yellow green blue indigo violet
//	fzfpick --items colours.yaml --border rounded --layout reverse
//	ls | fzfpick --header "Pick a file"
//
// Exit status is 1 when the user cancels without picking anything.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"pkt.systems/psi"
	"pkt.systems/pslog"

	fzf "github.com/marcusbenn/go-fzf"
)

var errCancelled = errors.New("cancelled")

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)

	root := newRootCmd()
	root.SetArgs(os.Args[1:])

	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errCancelled) {
			pslog.Ctx(ctx).With("err", err).Error("fzfpick failed")
		}
		return 1
	}
	return 0
}

type pickOptions struct {
	itemsFile   string
	layout      string
	border      string
	borderLabel string
	header      string
	headerFirst bool
	theme       string
	prompt      string
	pointer     string
	cycle       bool
	height      string
	bin         string
	plain       bool
}

func newRootCmd() *cobra.Command {
	opts := &pickOptions{}

	cmd := &cobra.Command{
		Use:           "fzfpick [item ...]",
		Short:         "Pick one item from a list with fzf",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.itemsFile, "items", "f", "", "YAML file holding the item list")
	cmd.Flags().StringVar(&opts.layout, "layout", "default", "finder layout (default|reverse|reverse-list)")
	cmd.Flags().StringVar(&opts.border, "border", "none", "border style (rounded|sharp|bold|double|...)")
	cmd.Flags().StringVar(&opts.borderLabel, "border-label", "", "label printed on the border")
	cmd.Flags().StringVar(&opts.header, "header", "", "header text shown above the list")
	cmd.Flags().BoolVar(&opts.headerFirst, "header-first", false, "print the header before the prompt line")
	cmd.Flags().StringVar(&opts.theme, "theme", "dark", "color theme (dark|light|16|bw)")
	cmd.Flags().StringVar(&opts.prompt, "prompt", "", "input prompt")
	cmd.Flags().StringVar(&opts.pointer, "pointer", "", "pointer to the current line")
	cmd.Flags().BoolVar(&opts.cycle, "cycle", false, "enable cyclic scroll")
	cmd.Flags().StringVar(&opts.height, "height", "", "finder height, passed through to fzf")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print the bare selection without styling")
	cmd.PersistentFlags().StringVar(&opts.bin, "bin", "", "path to the fzf binary")

	cmd.AddCommand(newVersionCmd(opts))

	return cmd
}

func newVersionCmd(opts *pickOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of the fzf binary in use",
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := fzf.Version(opts.bin)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "fzf %s\n", version)
			return err
		},
	}
}

var selectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))

func runPick(cmd *cobra.Command, opts *pickOptions, args []string) error {
	items, fileHeader, err := loadItems(args, opts.itemsFile, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if opts.header == "" {
		opts.header = fileHeader
	}

	selection, ok := fzf.RunWithOutput(opts.config(), items)
	if !ok {
		return errCancelled
	}

	if opts.plain {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), selection)
	} else {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), selectionStyle.Render(selection))
	}
	return err
}

// config maps the flag values onto a finder Config. Enum flags go
// through the permissive parsers, so an unknown token means the default
// appearance rather than a usage error.
func (o *pickOptions) config() fzf.Config {
	b := fzf.NewBuilder().
		Layout(fzf.ParseLayout(o.layout)).
		Border(fzf.ParseBorder(o.border)).
		BorderLabel(o.borderLabel).
		Header(o.header).
		HeaderFirst(o.headerFirst).
		Color(fzf.ParseColor(o.theme)).
		Cycle(o.cycle)

	if o.prompt != "" {
		b.Prompt(o.prompt)
	}
	if o.pointer != "" {
		b.Pointer(o.pointer)
	}
	if o.height != "" {
		b.CustomArgs("--height=" + o.height)
	}
	if o.bin != "" {
		b.Bin(o.bin)
	}

	return b.Build()
}
