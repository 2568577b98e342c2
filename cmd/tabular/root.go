package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bjaus/tabular"
	"github.com/bjaus/tabular/internal/logger"
)

// errNoInput is returned when neither a file nor piped stdin is available.
var errNoInput = errors.New("no input: pass a file or pipe data on stdin")

// cliSettings holds the global flags.
type cliSettings struct {
	logLevel  int8
	logFormat string
	logFile   string

	// closeLog closes the --log-file once the command has run.
	closeLog func() error
}

func newRootCmd() *cobra.Command {
	s := &cliSettings{}
	cmd := &cobra.Command{
		Use:   "tabular",
		Short: "Classify, convert, and render tabular data",
		Long: "tabular reads JSON, YAML, TOML, or CSV and writes it as aligned text, framed\n" +
			"tables, CSV, Markdown, HTML, JSON, or YAML.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := logger.ValidateFormat(s.logFormat); err != nil {
				return err
			}
			lgr, err := s.logger()
			if err != nil {
				return err
			}
			lgr = logger.WithValues(lgr, logger.CommandKey, cmd.CommandPath())
			cmd.SetContext(logger.WithLogger(cmd.Context(), lgr))
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if s.closeLog == nil {
				return nil
			}
			return s.closeLog()
		},
	}
	flags := cmd.PersistentFlags()
	flags.Int8Var(&s.logLevel, "log-level", 0, "zap log level; -1 enables debug output")
	flags.StringVar(&s.logFormat, "log-format", logger.FormatJSON, "log encoding: json or console")
	flags.StringVar(&s.logFile, "log-file", "", "append logs to this file instead of stderr")

	cmd.AddCommand(newRenderCmd(), newCSVCmd(), newAlignCSVCmd())
	return cmd
}

// logger returns the process logger on stderr, or a logger appending to
// --log-file when one is given.
func (s *cliSettings) logger() (*logr.Logger, error) {
	if s.logFile == "" {
		return logger.Get(s.logLevel, s.logFormat), nil
	}
	f, err := os.OpenFile(s.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", s.logFile, err)
	}
	s.closeLog = f.Close
	lgr := logger.New(f, s.logLevel, s.logFormat)
	return &lgr, nil
}

// renderFlags are the layout options shared by commands that draw text.
type renderFlags struct {
	align     string
	leftFirst bool
	charWidth bool
	border    string
}

func (f *renderFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.align, "align", "left", "cell alignment: left, center, or right")
	fs.BoolVar(&f.leftFirst, "left-first", false, "always left-align the first column")
	fs.BoolVar(&f.charWidth, "char-width", false, "measure cells in characters instead of terminal columns")
	fs.StringVar(&f.border, "border", "rounded", "table border: rounded, ascii, heavy, double, or none")
}

func (f *renderFlags) apply(o *tabular.Options) error {
	align, err := tabular.ParseAlignment(f.align)
	if err != nil {
		return err
	}
	border, err := tabular.ParseBorder(f.border)
	if err != nil {
		return err
	}
	o.Alignment = align
	o.LeftAlignFirstColumn = f.leftFirst
	o.CharWidth = f.charWidth
	o.Border = border
	return nil
}

// csvFlags are the dialect options of the CSV commands.
type csvFlags struct {
	delimiter string
	quote     string
	escape    string
	noHeader  bool
}

func (f *csvFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.delimiter, "delimiter", "d", ",", `field delimiter; "\t" or "tab" for tabs`)
	fs.StringVar(&f.quote, "quote", `"`, "quote character")
	fs.StringVar(&f.escape, "escape", `\`, "escape character inside quotes; same as --quote for doubled quotes")
	fs.BoolVar(&f.noHeader, "no-header", false, "treat the first record as data")
}

func (f *csvFlags) apply(o *tabular.Options) error {
	var err error
	if o.Delimiter, err = parseRune("delimiter", f.delimiter); err != nil {
		return err
	}
	if o.Quote, err = parseRune("quote", f.quote); err != nil {
		return err
	}
	if o.Escape, err = parseRune("escape", f.escape); err != nil {
		return err
	}
	o.OmitHeader = f.noHeader
	return nil
}

// parseRune accepts exactly one character, plus the spellings "\t" and "tab".
func parseRune(name, s string) (rune, error) {
	switch s {
	case `\t`, "tab":
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: --%s must be a single character, got %q", tabular.ErrArgument, name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// baseOptions returns library options that log through the command's logger.
func baseOptions(cmd *cobra.Command) (tabular.Options, logr.Logger) {
	lgr := *logger.FromContext(cmd.Context())
	opts := tabular.DefaultOptions()
	opts.Logger = lgr
	return opts, lgr
}

// readInput reads the named file, or stdin when no file is given. A
// terminal on stdin means nothing was piped in.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return data, nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, errNoInput
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}
	return data, nil
}
