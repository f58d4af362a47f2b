package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/WJZ-P/CommitCraft/pkg/render/iso/material"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso/tooltip"
)

// tiersCommand creates the tiers command, which prints the rarity legend.
func (c *CLI) tiersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "Show the rarity tiers and the counts that reach them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writeTiers(cmd.OutOrStdout())
			return nil
		},
	}
}

// tierCounts describes the contribution counts mapped to tier t.
func tierCounts(t material.Tier) string {
	switch {
	case t == 0:
		return "0"
	case t < 10:
		return fmt.Sprint(int(t))
	case t == 10:
		return "10-19"
	default:
		return "20+"
	}
}

func writeTiers(w io.Writer) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, material.MaxTier+1)
	for t := material.Tier(0); t <= material.MaxTier; t++ {
		info := tooltip.TierInfoOf(t)
		rows = append(rows, []string{fmt.Sprint(int(t)), tierCounts(t), info.Name, info.Flavor})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Tier", "Count", "Name", "Flavor").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return headerStyle.Padding(0, 1)
			case col == 2:
				color := tooltip.TierInfoOf(material.Tier(row)).Color
				return base.Foreground(lipgloss.Color(color)).Bold(true)
			case col == 3:
				return base.Foreground(colorGray)
			}
			return base
		})

	fmt.Fprintln(w, tbl.Render())
}
