package cmd

import (
	"encoding/csv"
	"fmt"
)

func writeCSVHeader(writer *csv.Writer, headers []string) error {
	if err := writer.Write(headers); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write CSV headers")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return err
	}
	return nil
}

func writeCSVRow(writer *csv.Writer, row []string) error {
	if err := writer.Write(row); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write CSV row")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return err
	}
	return nil
}
