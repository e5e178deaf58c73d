package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmoraes/futjournal/config"
	"github.com/dmoraes/futjournal/internal/logger"
	"github.com/dmoraes/futjournal/store"
)

var rootCmd = &cobra.Command{
	Use:   "futjournal",
	Short: "A personal journal and risk dashboard for futures trading",
	Long: `Futjournal is a personal trading journal for futures contracts (WIN, WDO, ...).

It provides tools for:
  - Logging trades with contract type, quantity and realized result
  - Performance statistics: win rate, profit factor, streaks, averages
  - Risk metrics: VaR, Sharpe ratio, beta, volatility, drawdown
  - Correlation analysis across contract types
  - Risk-limit checks against configured capital targets
  - Text and CSV reports`,
}

var (
	cfgPath string
	dbPath  string
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "path to SQLite journal DB (overrides config)")
}

func initLogging() {
	logger.Init(loadConfig().Logging.Level)
}

// loadConfig returns the configured settings, falling back to defaults when
// no --config was given. A broken config file is fatal.
func loadConfig() *config.Config {
	if cfgPath == "" {
		return config.Default()
	}
	cfg, err := config.LoadFromFile(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "futjournal: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openStore opens the trade store selected by flags and config.
func openStore(cfg *config.Config) (store.Store, error) {
	path := cfg.Store.DBPath
	if dbPath != "" {
		path = dbPath
	}
	if cfg.Store.Type == "memory" && dbPath == "" {
		return store.NewMemory(), nil
	}
	s, err := store.NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return s, nil
}
