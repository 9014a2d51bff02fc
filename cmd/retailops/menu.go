// Interactive numbered menu over the same entry points as the
// subcommands. Each choice prints a success or failure summary and
// returns to the menu; only a lost connection ends the loop with an
// error.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// menuEntry is one numbered operation of the interactive menu.
type menuEntry struct {
	label string
	run   func(in *bufio.Reader) error
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive numbered menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(bufio.NewReader(os.Stdin))
	},
}

// prompt reads one trimmed line after printing a label.
func prompt(in *bufio.Reader, label string) string {
	fmt.Printf("%s: ", label)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptInt(in *bufio.Reader, label string) (int, error) {
	v, err := strconv.Atoi(prompt(in, label))
	if err != nil {
		return 0, fmt.Errorf("not a number")
	}
	return v, nil
}

func menuEntries() []menuEntry {
	return []menuEntry{
		{"Create tables", func(in *bufio.Reader) error { return setupCmd.RunE(setupCmd, []string{"tables"}) }},
		{"Create indexes", func(in *bufio.Reader) error { return setupCmd.RunE(setupCmd, []string{"indexes"}) }},
		{"Create views", func(in *bufio.Reader) error { return setupCmd.RunE(setupCmd, []string{"views"}) }},
		{"Seed sample data", func(in *bufio.Reader) error { return seedCmd.RunE(seedCmd, nil) }},
		{"Bulk import from file", func(in *bufio.Reader) error {
			path := prompt(in, "file path")
			entity := prompt(in, "target entity")
			return importCmd.RunE(importCmd, []string{path, entity})
		}},
		{"Hierarchy report", func(in *bufio.Reader) error { return reportHierarchyCmd.RunE(reportHierarchyCmd, nil) }},
		{"Pivot report", func(in *bufio.Reader) error { return reportPivotCmd.RunE(reportPivotCmd, nil) }},
		{"Monthly sales report", func(in *bufio.Reader) error {
			year, err := promptInt(in, "year")
			if err != nil {
				return err
			}
			month, err := promptInt(in, "month (1-12)")
			if err != nil {
				return err
			}
			reportYear, reportMonth = year, month
			return reportSalesCmd.RunE(reportSalesCmd, nil)
		}},
		{"Join demonstrations", func(in *bufio.Reader) error { return demoJoinsCmd.RunE(demoJoinsCmd, nil) }},
		{"Set-combination demonstrations", func(in *bufio.Reader) error { return demoSetsCmd.RunE(demoSetsCmd, nil) }},
		{"Update demonstrations", func(in *bufio.Reader) error { return demoUpdatesCmd.RunE(demoUpdatesCmd, nil) }},
		{"Deletion demonstrations", func(in *bufio.Reader) error { return demoDeletesCmd.RunE(demoDeletesCmd, nil) }},
		{"Procedure demonstrations", func(in *bufio.Reader) error { return demoProcsCmd.RunE(demoProcsCmd, nil) }},
		{"Audit trail", func(in *bufio.Reader) error { return auditListCmd.RunE(auditListCmd, nil) }},
		{"Export data", func(in *bufio.Reader) error {
			entity := prompt(in, "entity (customers/products/employees/stores)")
			exportFormat = prompt(in, "format (csv/xlsx)")
			exportOut = prompt(in, "output file (empty for default)")
			return exportCmd.RunE(exportCmd, []string{entity})
		}},
	}
}

func runMenu(in *bufio.Reader) error {
	entries := menuEntries()
	for {
		fmt.Println()
		for i, e := range entries {
			fmt.Printf("%2d. %s\n", i+1, e.label)
		}
		fmt.Println(" 0. Exit")

		choice := prompt(in, "choice")
		if choice == "0" || choice == "" {
			return nil
		}
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(entries) {
			fmt.Printf("invalid choice %q\n", choice)
			continue
		}
		// Entry points report their own failures; an error escaping here
		// means the storage connection is gone.
		if err := entries[n-1].run(in); err != nil {
			return err
		}
	}
}
