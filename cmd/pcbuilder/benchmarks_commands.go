package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pcbuilder/internal/models"
	"pcbuilder/pkg/client"
)

const chartWidth = 40

func newBenchmarksCommand(ctx *commandContext) *cobra.Command {
	benchmarks := &cobra.Command{
		Use:     "benchmarks",
		Aliases: []string{"bench"},
		Short:   "Browse and compare component benchmarks",
	}

	var filter client.BenchmarkFilter
	list := &cobra.Command{
		Use:   "list",
		Short: "List benchmarks",
		Example: `  pcbuilder benchmarks list --type CPU --sort scores.multiCore:desc --limit 5
  pcbuilder benchmarks list --type GPU --brand NVIDIA`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(api *client.Client) error {
				items, err := api.ListBenchmarks(cmd.Context(), filter)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, items)
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderBenchmarks(items))
				return nil
			})
		},
	}
	list.Flags().StringVar(&filter.ComponentType, "type", "", "Component type (CPU, GPU, Cooler, RAM, SSD, HDD)")
	list.Flags().StringVar(&filter.Brand, "brand", "", "Brand")
	list.Flags().StringVar(&filter.Sort, "sort", "", "Sort field, e.g. price or scores.gaming:desc")
	list.Flags().IntVar(&filter.Limit, "limit", 0, "Maximum results (server default 10, max 100)")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one benchmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(api *client.Client) error {
				b, err := api.GetBenchmark(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, b)
				}
				fields := [][2]string{
					{"Name", b.Name},
					{"Brand", b.Brand},
					{"Type", string(b.ComponentType)},
					{"Year", strconv.Itoa(b.Year)},
					{"Price", formatRupees(b.Price)},
				}
				for _, metric := range models.MetricNames(b.ComponentType) {
					fields = append(fields, [2]string{metric, scoreCell(b.Scores, metric)})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderFields("Field", fields))
				return nil
			})
		},
	}

	compare := &cobra.Command{
		Use:   "compare <id> <id> [id...]",
		Short: "Compare benchmarks of one component type side by side",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(api *client.Client) error {
				items, err := api.CompareBenchmarks(cmd.Context(), args)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, items)
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderComparison(items))
				return nil
			})
		},
	}

	types := &cobra.Command{
		Use:   "types",
		Short: "List component types with benchmarks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(api *client.Client) error {
				items, err := api.ComponentTypes(cmd.Context())
				if err != nil {
					return err
				}
				return printList(cmd, ctx, items)
			})
		},
	}

	brands := &cobra.Command{
		Use:   "brands <componentType>",
		Short: "List brands for a component type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(api *client.Client) error {
				items, err := api.Brands(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printList(cmd, ctx, items)
			})
		},
	}

	var metric string
	chart := &cobra.Command{
		Use:   "chart <id> <id> [id...]",
		Short: "Draw a bar chart of one metric across compared benchmarks",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(api *client.Client) error {
				items, err := api.CompareBenchmarks(cmd.Context(), args)
				if err != nil {
					return err
				}
				name := metric
				if name == "" {
					names := models.MetricNames(items[0].ComponentType)
					if len(names) == 0 {
						return errors.New("no metrics for this component type")
					}
					name = names[0]
				}
				out, err := renderChart(items, name, shouldColorize(cmd.OutOrStdout()))
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	chart.Flags().StringVar(&metric, "metric", "", "Metric to chart (defaults to the first metric of the type)")

	benchmarks.AddCommand(list, show, compare, types, brands, chart)
	return benchmarks
}

func renderBenchmarks(items []models.Benchmark) string {
	rows := make([][]string, 0, len(items))
	for _, b := range items {
		var scores []string
		for _, metric := range models.MetricNames(b.ComponentType) {
			scores = append(scores, metric+"="+scoreCell(b.Scores, metric))
		}
		rows = append(rows, []string{
			b.ID, string(b.ComponentType), b.Brand, b.Name,
			strconv.Itoa(b.Year), formatRupees(b.Price), strings.Join(scores, " "),
		})
	}
	cols := []column{
		textCol("ID"), textCol("Type"), textCol("Brand"), textCol("Name"),
		numCol("Year"), numCol("Price"), textCol("Scores"),
	}
	return renderTable(cols, rows)
}

// renderComparison puts one benchmark per column and one metric per row.
func renderComparison(items []models.Benchmark) string {
	if len(items) == 0 {
		return ""
	}
	cols := []column{textCol("Metric")}
	for _, b := range items {
		cols = append(cols, numCol(b.Name))
	}

	priceRow := []string{"price"}
	yearRow := []string{"year"}
	for _, b := range items {
		priceRow = append(priceRow, formatRupees(b.Price))
		yearRow = append(yearRow, strconv.Itoa(b.Year))
	}
	rows := [][]string{priceRow, yearRow}
	for _, metric := range models.MetricNames(items[0].ComponentType) {
		row := []string{metric}
		for _, b := range items {
			row = append(row, scoreCell(b.Scores, metric))
		}
		rows = append(rows, row)
	}
	return renderTable(cols, rows)
}

func renderChart(items []models.Benchmark, metric string, colorize bool) (string, error) {
	maxValue := 0.0
	values := make([]float64, len(items))
	for i, b := range items {
		v, ok := b.Scores.Value(metric)
		if !ok {
			return "", fmt.Errorf("%s has no %s score", b.Name, metric)
		}
		values[i] = v
		maxValue = math.Max(maxValue, v)
	}

	labelWidth := 0
	for _, b := range items {
		labelWidth = max(labelWidth, len(b.Name))
	}

	var sb strings.Builder
	fmt.Fprintln(&sb, paint(colorize, ansiBold, metric))
	for i, b := range items {
		n := 0
		if maxValue > 0 {
			n = int(math.Round(values[i] / maxValue * chartWidth))
		}
		bar := paint(colorize, ansiGreen, strings.Repeat("█", n))
		fmt.Fprintf(&sb, "%-*s %s %s\n", labelWidth, b.Name, bar, strconv.FormatFloat(values[i], 'f', -1, 64))
	}
	return sb.String(), nil
}

func printList(cmd *cobra.Command, ctx *commandContext, items []string) error {
	if ctx.jsonOutput() {
		return writeJSON(cmd, items)
	}
	for _, item := range items {
		fmt.Fprintln(cmd.OutOrStdout(), item)
	}
	return nil
}
