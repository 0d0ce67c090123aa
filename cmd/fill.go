package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rubenboadana/WoffuAutomatizer/internal/fill"
	"github.com/rubenboadana/WoffuAutomatizer/internal/httpfile"
	"github.com/rubenboadana/WoffuAutomatizer/internal/render"
)

var (
	fillTemplate  string
	fillOutputDir string
	flagYear      int
	flagMonth     int
	fillExecute   bool
	fillDelay     time.Duration
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Generate fill-in requests for unclocked flexible days",
	Args:  cobra.NoArgs,
	RunE:  runFill,
}

func init() {
	fillCmd.Flags().StringVar(&fillTemplate, "template", "template.http", "Path to the HTTP request template file")
	fillCmd.Flags().StringVarP(&fillOutputDir, "output-dir", "o", "", "Directory for generated request files (default: requests/woffu_requests_<timestamp>)")
	fillCmd.Flags().IntVarP(&flagYear, "year", "y", 0, "Year to check (default: current)")
	fillCmd.Flags().IntVarP(&flagMonth, "month", "m", 0, "Month to check, 1-12 (default: current)")
	fillCmd.Flags().BoolVarP(&fillExecute, "execute", "e", false, "Execute the generated requests")
	fillCmd.Flags().DurationVar(&fillDelay, "delay", time.Second, "Pause between executed requests")
}

// resolveMonth applies the current date for unset year/month flags.
func resolveMonth(now time.Time) (int, time.Month, error) {
	if flagMonth < 0 || flagMonth > 12 {
		return 0, 0, fmt.Errorf("invalid --month value %d", flagMonth)
	}
	year, month := flagYear, time.Month(flagMonth)
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}
	return year, month, nil
}

func runFill(cmd *cobra.Command, args []string) error {
	now := time.Now()

	year, month, err := resolveMonth(now)
	if err != nil {
		return err
	}

	// Config supplies defaults for flags the user did not set.
	if !cmd.Flags().Changed("template") && appConfig.Fill.Template != "" {
		fillTemplate = appConfig.Fill.Template
	}
	if !cmd.Flags().Changed("delay") && appConfig.Fill.DelaySeconds > 0 {
		fillDelay = time.Duration(appConfig.Fill.DelaySeconds) * time.Second
	}
	outputDir := fillOutputDir
	if outputDir == "" {
		outputDir = render.TimestampedDir(appConfig.Fill.OutputDir, now)
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}
	executor := httpfile.NewExecutor(newDispatchClient(), logger)
	runner := fill.NewRunner(client, executor, logger)

	res, err := runner.Run(cmd.Context(), fill.Options{
		Year:         year,
		Month:        month,
		TemplatePath: fillTemplate,
		OutputDir:    outputDir,
		Execute:      fillExecute,
		Delay:        fillDelay,
	})
	if err != nil {
		return err
	}

	fmt.Println("Summary:")
	fmt.Printf("  User ID: %d\n", res.UserID)
	fmt.Printf("  Month: %d-%02d\n", year, int(month))
	fmt.Printf("  Diary days: %d\n", res.TotalDays)
	fmt.Printf("  Flexible days to fill: %d\n", res.Actionable)

	if res.Actionable == 0 {
		fmt.Println("Nothing to do.")
		return nil
	}

	fmt.Printf("  Request files created: %d\n", len(res.Created))
	fmt.Printf("  Output directory: %s\n", res.OutputDir)

	if fillExecute {
		fmt.Printf("  Executed: %d/%d succeeded\n", res.Succeeded, len(res.Executions))
		if res.Failed > 0 {
			fmt.Printf("  Failed: %d/%d\n", res.Failed, len(res.Executions))
		}
	}
	return nil
}
