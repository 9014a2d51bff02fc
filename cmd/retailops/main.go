// Package main provides the retailops CLI: schema bootstrap, sample-data
// seeding, the named retail operations, reporting, bulk import/export, and
// an interactive numbered menu over the same entry points.
package main

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vinayagam-m-certainti/retailops/internal/store"
	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

var (
	// flagConfigFile is set by the --config flag.
	flagConfigFile string

	// flagDBPath overrides the configured database path.
	flagDBPath string

	// db is the open store, initialized before any data command runs.
	db *store.Store
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "retailops",
	Short: "retailops is a retail-operations data store",
	Long: `retailops manages a retail-operations database: stores, employees,
customers, suppliers, products, orders and payments, with stock-consistency
enforcement on order lines, an audit trail of employee deletions, and
hierarchy/pivot/sales reporting over the same data.`,
	PersistentPreRunE:  openStore,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return closeStore() },
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "config file (default: ./.retailops.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "database file (overrides config)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(customerCmd)
	rootCmd.AddCommand(stockCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(payCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(menuCmd)
}

// openStore loads config and opens the database. A connection failure here
// aborts the whole invocation with a non-zero exit; every later failure is
// reported per operation and leaves the exit status at zero.
func openStore(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := loadConfig(flagConfigFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}

	s, err := store.Open(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	// Bootstrap is idempotent, so every invocation can run it.
	if err := s.Setup(); err != nil {
		s.Close()
		return fmt.Errorf("bootstrap schema: %w", err)
	}

	db = s
	return nil
}

func closeStore() error {
	if db != nil {
		return db.Close()
	}
	return nil
}

// runOp executes a named operation and applies the error policy: a
// connection failure propagates and fails the process, anything else is
// logged with its operation context and swallowed so independent
// operations (and the surrounding menu loop) keep going.
func runOp(name string, fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}
	if errors.Is(err, types.ErrConnection) {
		return err
	}
	log.WithField("operation", name).Error(err)
	fmt.Printf("%s failed: %v\n", name, err)
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("retailops v0.1.0")
	},
}
