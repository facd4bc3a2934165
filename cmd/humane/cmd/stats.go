package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/wexinc/humane/internal/config"
	"github.com/wexinc/humane/internal/habit"
	"github.com/wexinc/humane/internal/nav"
	"github.com/wexinc/humane/internal/tui/styles"
)

// categoryStatJSON is the --json form of one category row.
type categoryStatJSON struct {
	Category          string `json:"category"`
	HabitCount        int    `json:"habitCount"`
	TotalWeeklyTarget int    `json:"totalWeeklyTarget"`
}

type statsJSON struct {
	Path       string             `json:"path"`
	Habits     int                `json:"habits"`
	Entries    int                `json:"entries"`
	Categories []categoryStatJSON `json:"categories"`
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats [backup-file.json]",
		Short: "Print per-category statistics without starting the browser",
		Long: `Print the category table of a backup: how many habits each category
holds and the sum of their weekly targets.

The backup is resolved the same way as for the browser.

Examples:
  humane stats backup.json          # Table output
  humane stats backup.json --json   # JSON output`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			closeLog := setupLogging(cmd, cfg, opts)
			defer closeLog()

			data, err := loadBackup(cfg, args)
			if err != nil {
				return err
			}

			if asJSON {
				return writeStatsJSON(cmd, data)
			}
			writeStatsTable(cmd, data, cfg.UI.CapitalizeCategories)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print statistics as JSON")
	return cmd
}

func writeStatsJSON(cmd *cobra.Command, data *habit.Data) error {
	summary := data.Summary()
	out := statsJSON{
		Path:       data.Path(),
		Habits:     summary.Habits,
		Entries:    summary.Entries,
		Categories: []categoryStatJSON{},
	}
	for _, st := range data.CategoryStats() {
		out.Categories = append(out.Categories, categoryStatJSON(st))
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeStatsTable(cmd *cobra.Command, data *habit.Data, capitalize bool) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.BorderColor)).
		Headers("Category", "Habits", "Weekly Target").
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.Foreground(styles.Secondary).Bold(true)
			}
			if col > 0 {
				return s.Align(lipgloss.Right)
			}
			return s
		})

	for _, st := range data.CategoryStats() {
		name := st.Category
		if capitalize {
			name = nav.Capitalize(name)
		}
		t.Row(name, strconv.Itoa(st.HabitCount), strconv.Itoa(st.TotalWeeklyTarget))
	}

	summary := data.Summary()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, t.Render())
	fmt.Fprintf(out, "%d habits, %d entries, %d categories\n",
		summary.Habits, summary.Entries, summary.Categories)
}
