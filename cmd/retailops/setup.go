// Schema bootstrap and sample-data seeding commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup [tables|indexes|views|all]",
	Short: "Create tables, indexes, and views (idempotent)",
	Long: `Bootstrap the schema. Safe to invoke repeatedly: existing objects are
left untouched. With no argument, everything is created.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"tables", "indexes", "views", "all"},
	RunE: func(cmd *cobra.Command, args []string) error {
		target := "all"
		if len(args) == 1 {
			target = args[0]
		}
		return runOp("setup "+target, func() error {
			var err error
			switch target {
			case "tables":
				err = db.CreateTables()
			case "indexes":
				err = db.CreateIndexes()
			case "views":
				err = db.CreateViews()
			default:
				err = db.Setup()
			}
			if err != nil {
				return err
			}
			fmt.Printf("schema setup (%s) complete\n", target)
			return nil
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample dataset (no-op if data exists)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp("seed", func() error {
			if err := db.Seed(); err != nil {
				return err
			}
			fmt.Println("sample data seeded")
			return nil
		})
	},
}
