package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/nhle/deepdetect/internal/theme"
)

var deliveriesLimit int

// deliveriesCmd prints the delivery journal.
var deliveriesCmd = &cobra.Command{
	Use:   "deliveries",
	Short: "Show recent forum relay attempts",
	Args:  cobra.NoArgs,
	RunE:  runDeliveries,
}

func init() {
	deliveriesCmd.Flags().IntVarP(&deliveriesLimit, "limit", "n", 20, "number of deliveries to show")
}

func runDeliveries(cmd *cobra.Command, args []string) error {
	journal := openJournal()
	if journal == nil {
		return errors.New("delivery journal unavailable, see the log for details")
	}
	defer journal.Close()

	ctx := cmd.Context()
	rows, err := journal.RecentDeliveries(ctx, deliveriesLimit)
	if err != nil {
		return err
	}
	counts, err := journal.DeliveryCounts(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(rows) == 0 {
		fmt.Fprintln(out, "No deliveries recorded yet.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.ColorBorder)).
		Headers("WHEN", "STATUS", "BACKEND", "CATEGORY", "SUBJECT", "ERROR")
	for _, d := range rows {
		t.Row(humanize.Time(d.CreatedAt), d.Status, d.Backend, d.Category, d.Subject, d.Error)
	}
	fmt.Fprintln(out, t.Render())

	statuses := make([]string, 0, len(counts))
	for s := range counts {
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)
	for _, s := range statuses {
		fmt.Fprintf(out, "%s: %s\n", s, humanize.Comma(int64(counts[s])))
	}
	return nil
}
