package main

import (
	"recap/pkg/pacer"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// courtsCommand constructs the 'courts' subcommand that prints the supported
// court table.
func courtsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courts",
		Short: "Prints every supported court with its abbreviation",
		RunE: func(cmd *cobra.Command, args []string) error {
			appellateOnly, _ := cmd.Flags().GetBool("appellate")

			tableData := pterm.TableData{
				{"Code", "Abbreviation", "Canonical", "Appellate"},
			}
			for _, code := range pacer.Courts() {
				appellate := pacer.IsAppellateCourt(code)
				if appellateOnly && !appellate {
					continue
				}
				abbreviation, _ := pacer.CourtAbbreviation(code)
				tableData = append(tableData, []string{
					code,
					abbreviation,
					pacer.CanonicalCourt(code),
					strconv.FormatBool(appellate),
				})
			}

			return pterm.DefaultTable.WithHasHeader().WithData(tableData).WithWriter(cmd.OutOrStdout()).Render()
		},
	}

	cmd.Flags().Bool("appellate", false, "Only list courts of appeals")

	return cmd
}
