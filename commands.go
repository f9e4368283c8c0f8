package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tir2sum-maker/motor-prep-analyzer/internal/analysis"
	"github.com/tir2sum-maker/motor-prep-analyzer/internal/importer"
	"github.com/tir2sum-maker/motor-prep-analyzer/internal/tui"
)

func tuiCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive squad browser (default)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(*opts)
		},
	}
}

func listCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List players with their maturity category and overall rating",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(*opts, false)
			if err != nil {
				return err
			}
			defer e.closer()

			roster, err := e.roster.ListPlayers(cmd.Context())
			if err != nil {
				return err
			}
			if len(roster) == 0 {
				fmt.Println("No players yet. Import a roster with: motorprep import squad.yaml")
				return nil
			}

			format := tui.NewFormat(e.cfg.Display)
			rows := make([][]string, 0, len(roster))
			for _, pr := range roster {
				r := pr.Results
				rows = append(rows, []string{
					pr.Player.ID,
					pr.Player.FullName(),
					orDash(pr.Player.Position),
					format.Number(pr.Player.CalendarAge),
					format.Optional(r.BiologicalAge, ""),
					orDash(r.MaturityCategory),
					r.OverallRating,
				})
			}
			fmt.Println(tui.RenderTable(
				[]string{"ID", "NAME", "POSITION", "AGE", "BIO AGE", "MATURITY", "RATING"}, rows))
			return nil
		},
	}
}

func reportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "report [player-id]",
		Short: "Print a player's full report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(*opts, false)
			if err != nil {
				return err
			}
			defer e.closer()

			rep, err := e.roster.GetReport(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Println(tui.RenderReport(rep, tui.NewFormat(e.cfg.Display)))
			return nil
		},
	}
}

func importCmd(opts *options) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import [roster.yaml]",
		Short: "Add or update players from a YAML roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			players, err := importer.LoadRoster(args[0])
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Printf("%s: %d players OK\n", args[0], len(players))
				return nil
			}

			e, err := setup(*opts, false)
			if err != nil {
				return err
			}
			defer e.closer()

			stats, err := e.roster.ImportPlayers(cmd.Context(), players)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d players (%d added, %d updated)\n", len(stats.IDs), stats.Added, stats.Updated)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the roster without storing it")
	return cmd
}

func deleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [player-id]",
		Short: "Remove a player from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(*opts, false)
			if err != nil {
				return err
			}
			defer e.closer()

			if err := e.roster.DeletePlayer(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}

func squadCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "squad",
		Short: "Summarise test results across the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(*opts, false)
			if err != nil {
				return err
			}
			defer e.closer()

			summary, err := e.roster.SquadSummary(cmd.Context())
			if err != nil {
				return err
			}

			format := tui.NewFormat(e.cfg.Display)
			fmt.Printf("Players: %d\n", summary.Players)
			fmt.Printf("Average availability: %s\n", format.WithUnit(summary.AvgAvailability, "%"))
			fmt.Println(tui.RenderSquadTests(*summary))

			var rows [][]string
			for _, rating := range []string{
				analysis.RatingMuchAbove,
				analysis.RatingAbove,
				analysis.RatingAverage,
				analysis.RatingBelow,
				analysis.RatingMuchBelow,
			} {
				rows = append(rows, []string{rating, strconv.Itoa(summary.ByRating[rating])})
			}
			fmt.Println(tui.RenderTable([]string{"RATING", "PLAYERS"}, rows))
			return nil
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
