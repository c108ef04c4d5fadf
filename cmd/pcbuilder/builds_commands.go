package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"pcbuilder/internal/models"
	"pcbuilder/pkg/client"
)

func newBuildsCommand(ctx *commandContext) *cobra.Command {
	builds := &cobra.Command{
		Use:   "builds",
		Short: "Manage your saved builds",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your builds, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(api *client.Client) error {
				items, err := api.ListBuilds(cmd.Context())
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, items)
				}
				if len(items) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No saved builds")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderBuildList(items, false))
				return nil
			})
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one build",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(api *client.Client) error {
				build, err := api.GetBuild(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, build)
				}
				printBuild(cmd, build)
				return nil
			})
		},
	}

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one build",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(api *client.Client) error {
				if err := api.DeleteBuild(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Build deleted")
				return nil
			})
		},
	}

	var output string
	export := &cobra.Command{
		Use:   "export <id>",
		Short: "Write a build as JSON to a file or stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(api *client.Client) error {
				build, err := api.GetBuild(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if output == "" || output == "-" {
					return writeJSON(cmd, build)
				}
				data, err := json.MarshalIndent(build, "", "  ")
				if err != nil {
					return err
				}
				if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", build.BuildName, output)
				return nil
			})
		},
	}
	export.Flags().StringVarP(&output, "output", "o", "", "Destination file (stdout when omitted)")

	builds.AddCommand(list, show, remove, export)
	return builds
}

// renderBuildList prints one row per build. withOwner adds the owner column
// used by admin listings.
func renderBuildList(items []models.Build, withOwner bool) string {
	cols := []column{
		textCol("ID"), textCol("Name"), textCol("Use case"),
		numCol("Parts"), numCol("Total"), textCol("Saved"),
	}
	if withOwner {
		cols = append(cols, textCol("Owner"))
	}

	rows := make([][]string, 0, len(items))
	for _, b := range items {
		row := []string{
			b.ID,
			b.BuildName,
			b.UseCase,
			strconv.Itoa(len(b.Components)),
			formatRupees(float64(b.TotalCost)),
			b.CreatedAt.Local().Format("2006-01-02 15:04"),
		}
		if withOwner {
			owner := "(deleted)"
			if b.Owner != nil {
				owner = b.Owner.Email
			}
			row = append(row, owner)
		}
		rows = append(rows, row)
	}
	return renderTable(cols, rows)
}

func printBuild(cmd *cobra.Command, b *models.Build) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	fmt.Fprintln(out, paint(colorize, ansiBold, b.BuildName))
	fmt.Fprintln(out, b.Summary)
	fmt.Fprintln(out, renderComponents(b.Components, float64(b.TotalCost)))
	if b.CompatibilityNotes != "" {
		fmt.Fprintln(out, paint(colorize, ansiCyan, "Compatibility"))
		fmt.Fprintln(out, b.CompatibilityNotes)
	}
	for _, r := range b.YoutubeReviews {
		fmt.Fprintf(out, "  %s: %s\n    https://www.youtube.com/watch?v=%s\n", r.Component, r.Title, r.VideoID)
	}
}
