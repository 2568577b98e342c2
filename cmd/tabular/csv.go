package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/bjaus/tabular"
)

func newCSVCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Encode and decode delimited text",
	}
	cmd.AddCommand(newCSVEncodeCmd(), newCSVDecodeCmd())
	return cmd
}

func newCSVEncodeCmd() *cobra.Command {
	var cf csvFlags
	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode JSON, YAML, or TOML data as CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _ := baseOptions(cmd)
			if err := cf.apply(&opts); err != nil {
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
			return tabular.WriteCSV(cmd.OutOrStdout(), v, opts)
		},
	}
	cf.register(cmd.Flags())
	return cmd
}

func newCSVDecodeCmd() *cobra.Command {
	var cf csvFlags
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode CSV and print it as JSON",
		Long: "decode reads the first record as the header and prints one JSON object per\n" +
			"record. Records whose field count differs from the header are dropped; run\n" +
			"with --log-level -1 to see which. With --no-header every record is printed\n" +
			"as a JSON array of strings.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, lgr := baseOptions(cmd)
			if err := cf.apply(&opts); err != nil {
				return err
			}
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if cf.noHeader {
				records, err := tabular.DecodeCSVRecords(string(data), opts)
				if err != nil {
					return err
				}
				if records == nil {
					records = [][]string{}
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(records)
			}
			decoded, err := tabular.DecodeCSV(string(data), opts)
			if err != nil {
				return err
			}
			cols := decoded.Flatten()
			lgr.V(1).Info("decoded csv", "headers", len(decoded.Headers), "columns", len(cols), "rows", cols.Len())
			return tabular.Write(cmd.OutOrStdout(), tabular.JSON, cols, opts)
		},
	}
	cf.register(cmd.Flags())
	return cmd
}
