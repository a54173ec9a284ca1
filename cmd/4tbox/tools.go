package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/4tbox/toolbox/internal/csvjson"
	"github.com/4tbox/toolbox/internal/linediff"
)

func diffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diff LEFT RIGHT",
		Short: "Compare two files line by line",
		Long: `Compare two files line by line.

Lines are compared by position: line N of LEFT against line N of RIGHT.
Use "-" for either file to read it from stdin.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			right, err := readInput(cmd, args[1])
			if err != nil {
				return err
			}
			records := linediff.Compute(left, right)
			return writeDiff(cmd.OutOrStdout(), records, linediff.Summarize(left, right, records))
		},
	}
}

func writeDiff(w io.Writer, records []linediff.Record, sum linediff.Summary) error {
	for _, r := range records {
		var err error
		n := r.Index + 1
		switch r.Status {
		case linediff.StatusSame:
			_, err = fmt.Fprintf(w, "  %4d  %s\n", n, *r.Left)
		case linediff.StatusAdded:
			_, err = fmt.Fprintf(w, "+ %4d  %s\n", n, *r.Right)
		case linediff.StatusRemoved:
			_, err = fmt.Fprintf(w, "- %4d  %s\n", n, *r.Left)
		case linediff.StatusChanged:
			_, err = fmt.Fprintf(w, "- %4d  %s\n+ %4d  %s\n", n, *r.Left, n, *r.Right)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n%d same, %d changed, %d added, %d removed (%d/%d lines)\n",
		sum.Same, sum.Changed, sum.Added, sum.Removed, sum.LeftLines, sum.RightLines)
	return err
}

func csvToJSONCommand() *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   "csv2json [FILE]",
		Short: "Convert CSV to a JSON array of objects",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, fileArg(args))
			if err != nil {
				return err
			}
			out, err := csvjson.Marshal(csvjson.ToJSON(in), pretty)
			if err != nil {
				return fmt.Errorf("encode JSON: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the output")
	return cmd
}

func jsonToCSVCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "json2csv [FILE]",
		Short: "Convert a JSON array of objects to CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, fileArg(args))
			if err != nil {
				return err
			}
			out, err := csvjson.ToCSV(in)
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
}

func fileArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

// readInput reads path, or the command's stdin when path is "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}
