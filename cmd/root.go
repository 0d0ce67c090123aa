package cmd

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rubenboadana/WoffuAutomatizer/internal/config"
	"github.com/rubenboadana/WoffuAutomatizer/internal/woffu"
)

var (
	flagToken    string
	flagVerbose  bool
	flagDebug    bool
	flagInsecure bool

	logger    *zap.Logger
	appConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:   "woffu",
	Short: "WoffuAutomatizer – fill in flexible-schedule days on Woffu",
	Long: `WoffuAutomatizer detects unfilled flexible-schedule attendance days in
your Woffu diary and generates (optionally executes) one fill-in HTTP
request per day from a template file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogger(); err != nil {
			return err
		}
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		appConfig = cfg
		if cfg.Fill.InsecureSkipVerify {
			flagInsecure = true
		}
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger() error {
	cfg := zap.NewProductionConfig()
	switch {
	case flagDebug:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case flagVerbose:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	logger = l.With(zap.String("run_id", uuid.NewString()))
	return nil
}

// newAPIClient builds the Woffu client from the persistent flags.
func newAPIClient() (*woffu.Client, error) {
	return woffu.NewClient(flagToken, flagInsecure, logger)
}

// newDispatchClient builds the HTTP client used to execute rendered request
// files. It shares the TLS policy of the API client but not its credential:
// rendered requests carry their own Authorization header.
func newDispatchClient() *http.Client {
	c := &http.Client{Timeout: 30 * time.Second}
	if flagInsecure {
		c.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return c
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagToken, "token", "t", "", "JWT bearer token for Woffu API authentication")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable info-level logging")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagInsecure, "insecure-skip-verify", false, "Disable TLS certificate verification (only for deployments behind a trusted proxy)")
	_ = rootCmd.MarkPersistentFlagRequired("token")

	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(diariesCmd)
	rootCmd.AddCommand(usersCmd)
}
