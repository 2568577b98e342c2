package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/tabular"
)

func newRenderCmd() *cobra.Command {
	var (
		format string
		rf     renderFlags
	)
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render JSON, YAML, or TOML data in a tabular format",
		Example: "  tabular render people.yaml\n" +
			"  tabular render people.json --format table --border ascii\n" +
			"  cat scores.toml | tabular render --format markdown --align right --left-first",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := tabular.ParseFormat(format)
			if err != nil {
				return err
			}
			opts, lgr := baseOptions(cmd)
			if err := rf.apply(&opts); err != nil {
				return err
			}
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			v, err := tabular.Load(data)
			if err != nil {
				return err
			}
			lgr.V(1).Info("loaded input", "bytes", len(data), "shape", tabular.Classify(v).String(), "format", f.String())
			return tabular.Write(cmd.OutOrStdout(), f, v, opts)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&format, "format", "f", string(tabular.Aligned), "output format: "+formatList())
	rf.register(fs)
	return cmd
}

func formatList() string {
	names := make([]string, 0, len(tabular.Formats()))
	for _, f := range tabular.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

func newAlignCSVCmd() *cobra.Command {
	var (
		rf renderFlags
		cf csvFlags
	)
	cmd := &cobra.Command{
		Use:   "align-csv [file]",
		Short: "Align delimited text into columns",
		Long: "align-csv decodes delimited text record by record, without header handling,\n" +
			"and pads every field to its column's width.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _ := baseOptions(cmd)
			if err := rf.apply(&opts); err != nil {
				return err
			}
			if err := cf.apply(&opts); err != nil {
				return err
			}
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out, err := tabular.RenderAlignedCSV(string(data), opts)
			if err != nil {
				return err
			}
			if out == "" {
				return nil
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	fs := cmd.Flags()
	rf.register(fs)
	cf.register(fs)
	return cmd
}
