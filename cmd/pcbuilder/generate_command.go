package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pcbuilder/internal/buildgen"
	"pcbuilder/internal/models"
	"pcbuilder/pkg/client"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var (
		req         buildgen.Request
		budget      string
		peripherals []string
		save        bool
		buildName   string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Ask the AI for a build recommendation",
		Example: `  pcbuilder generate --budget 80000 --use-case Gaming --resolution 1440p
  pcbuilder generate --budget "₹1,20,000" --use-case "Video Editing" --gpu-brand NVIDIA --peripherals Monitor --save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := models.ParseAmount(budget)
			if err != nil {
				return fmt.Errorf("invalid budget %q", budget)
			}
			req.Budget = models.Amount(amount)
			req.Peripherals = peripherals

			return ctx.withClient(func(api *client.Client) error {
				if save && !api.LoggedIn() {
					return client.ErrNotLoggedIn
				}

				rec, err := api.Generate(cmd.Context(), req)
				if err != nil {
					return err
				}

				var saved *models.Build
				if save {
					saved, err = api.SaveBuild(cmd.Context(), client.BuildFromRecommendation(buildName, req.UseCase, rec))
					if err != nil {
						return err
					}
				}

				if ctx.jsonOutput() {
					if saved != nil {
						return writeJSON(cmd, saved)
					}
					return writeJSON(cmd, rec)
				}
				printRecommendation(cmd, rec)
				if saved != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "\nSaved as %q (%s)\n", saved.BuildName, saved.ID)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&budget, "budget", "", "Budget in rupees, e.g. 80000 or ₹80,000")
	cmd.Flags().StringVar(&req.UseCase, "use-case", "", "Primary use case, e.g. Gaming")
	cmd.Flags().StringVar(&req.CPUBrand, "cpu-brand", buildgen.NoPreference, "Preferred CPU brand")
	cmd.Flags().StringVar(&req.GPUBrand, "gpu-brand", buildgen.NoPreference, "Preferred GPU brand")
	cmd.Flags().StringVar(&req.Resolution, "resolution", "", "Target resolution, e.g. 1080p")
	cmd.Flags().StringSliceVar(&peripherals, "peripherals", nil, "Peripherals to include (Monitor, Keyboard, Mouse)")
	cmd.Flags().BoolVar(&save, "save", false, "Save the recommendation to your account")
	cmd.Flags().StringVar(&buildName, "name", "", "Build name when saving")
	_ = cmd.MarkFlagRequired("budget")
	_ = cmd.MarkFlagRequired("use-case")
	return cmd
}

func printRecommendation(cmd *cobra.Command, rec *buildgen.Recommendation) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	fmt.Fprintln(out, paint(colorize, ansiBold, rec.Summary))
	fmt.Fprintln(out, renderComponents(rec.Components, float64(rec.TotalCost)))

	if notes := strings.TrimSpace(rec.CompatibilityNotes); notes != "" {
		fmt.Fprintln(out, paint(colorize, ansiCyan, "Compatibility"))
		fmt.Fprintln(out, notes)
	}
	if len(rec.YoutubeReviews) > 0 {
		fmt.Fprintln(out, paint(colorize, ansiCyan, "Video reviews"))
		for _, r := range rec.YoutubeReviews {
			fmt.Fprintf(out, "  %s: %s\n    https://www.youtube.com/watch?v=%s\n", r.Component, r.Title, r.VideoID)
		}
	}
}

func renderComponents(components []models.Component, total float64) string {
	rows := make([][]string, 0, len(components)+1)
	for _, c := range components {
		rows = append(rows, []string{c.Type, c.Name, c.Specs, formatRupees(float64(c.Price))})
	}
	rows = append(rows, []string{"", "Total", "", formatRupees(total)})
	cols := []column{textCol("Type"), textCol("Component"), textCol("Specs"), numCol("Price")}
	return renderTable(cols, rows)
}
