package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rubenboadana/WoffuAutomatizer/internal/filter"
	"github.com/rubenboadana/WoffuAutomatizer/internal/model"
)

var diariesAll bool

var diariesCmd = &cobra.Command{
	Use:   "diaries",
	Short: "List diary days for the selected month",
	Long: `diaries prints the attendance diary for the selected month. Days that
would be filled by the fill command are marked with an asterisk.`,
	Args: cobra.NoArgs,
	RunE: runDiaries,
}

func init() {
	diariesCmd.Flags().IntVarP(&flagYear, "year", "y", 0, "Year to list (default: current)")
	diariesCmd.Flags().IntVarP(&flagMonth, "month", "m", 0, "Month to list, 1-12 (default: current)")
	diariesCmd.Flags().BoolVar(&diariesAll, "all", false, "List every diary record instead of one month")
}

func runDiaries(cmd *cobra.Command, args []string) error {
	now := time.Now()

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	userID, err := client.ResolveUserID(cmd.Context())
	if err != nil {
		return err
	}

	var diaries []model.DiaryEntry
	if diariesAll {
		diaries, err = client.UserDiaries(cmd.Context(), userID)
		if err != nil {
			return err
		}
	} else {
		year, month, err := resolveMonth(now)
		if err != nil {
			return err
		}
		diaries, err = client.MonthlyDiaries(cmd.Context(), userID, year, month)
		if err != nil {
			return err
		}
	}

	if len(diaries) == 0 {
		fmt.Println("No diary entries found.")
		return nil
	}

	actionable := map[string]bool{}
	for _, e := range filter.Actionable(diaries, now) {
		actionable[e.Date] = true
	}

	printDiaries(diaries, actionable)
	fmt.Printf("\n%d days, %d to fill\n", len(diaries), len(actionable))
	return nil
}

func printDiaries(diaries []model.DiaryEntry, actionable map[string]bool) {
	for _, e := range diaries {
		mark := " "
		if actionable[e.Date] {
			mark = "*"
		}
		fmt.Printf("%s %s  in: %-18s out: %-8s %s\n",
			mark, e.Date, strOrDash(e.In), strOrDash(e.Out), dayKind(e))
	}
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func dayKind(e model.DiaryEntry) string {
	switch {
	case e.IsHoliday != nil && *e.IsHoliday:
		return "holiday"
	case e.IsWeekend != nil && *e.IsWeekend:
		return "weekend"
	default:
		return ""
	}
}
