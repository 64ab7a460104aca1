package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scrollfeed/scrollfeed/internal/pagination"
)

// newListCmd creates the non-interactive listing command. Unlike
// browse, list fetches the full feed up front and slices it with the
// standard pagination flags.
func newListCmd() *cobra.Command {
	var (
		flags    feedFlags
		sortExpr string
		output   string
	)
	params := pagination.NewParams()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List feed items without the interactive browser",
		Example: `  # First 10 items
  scrollfeed list --limit 10

  # Third page of 25, labels descending
  scrollfeed list --page 3 --page-size 25 --sort label:desc

  # Machine-readable output
  scrollfeed list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, flags, *params, sortExpr, output)
		},
	}

	cmd.Flags().IntVar(&flags.total, "total", 0, "total items in the demo feed (0 = config default)")
	cmd.Flags().IntVar(&params.Limit, "limit", pagination.DefaultLimit, "maximum results (offset-based mode)")
	cmd.Flags().IntVar(&params.Offset, "offset", pagination.DefaultOffset, "results to skip (offset-based mode)")
	cmd.Flags().IntVar(&params.Page, "page", 0, "1-based page number (page-based mode)")
	cmd.Flags().IntVar(&params.PageSize, "page-size", 0, "results per page (page-based mode)")
	cmd.Flags().StringVar(&sortExpr, "sort", "", "sort by 'field' or 'field:order' (fields: index, label, id)")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table, json, or ndjson")

	return cmd
}

func runList(cmd *cobra.Command, flags feedFlags, params pagination.Params, sortExpr, output string) error {
	if err := params.Validate(); err != nil {
		return err
	}

	sorter := pagination.NewItemSorter()
	sortField, sortOrder := "", pagination.SortOrderAsc
	if sortExpr != "" {
		var err error
		sortField, sortOrder, err = pagination.ParseSort(sortExpr)
		if err != nil {
			return err
		}
		if !sorter.IsValidField(sortField) {
			return fmt.Errorf("invalid sort field %q (valid: %v)", sortField, sorter.ValidFields())
		}
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	flags.latencyMS = 0
	flags.failPage = -1
	flags.applyTo(cfg)

	source, err := buildSource(cfg, flags)
	if err != nil {
		return err
	}

	items, err := collectAllItems(cmd.Context(), source)
	if err != nil {
		return err
	}

	if sortField != "" {
		items = sorter.Sort(items, sortField, sortOrder)
	}

	total := len(items)
	paged := pagination.Apply(params, items)

	if err := renderItems(cmd.OutOrStdout(), output, paged); err != nil {
		return err
	}

	if params.IsPageBased() && output == outputTable {
		meta := pagination.NewMeta(params, total)
		cmd.Println(englishPrinter.Sprintf(
			"Page %d of %d (%d items total)",
			meta.CurrentPage, meta.TotalPages, meta.TotalItems,
		))
	}

	return nil
}
