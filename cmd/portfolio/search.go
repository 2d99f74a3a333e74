package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"portfolio.dev/internal/content"
	"portfolio.dev/internal/models"
	"portfolio.dev/internal/services"
)

var searchCategory string

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Filter experience and projects the way the site does",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := services.NewContentStore(cmd.Context(), cfg.Content.DataPath, models.Theme(cfg.Site.Theme), logger.Named("content"))
		if err != nil {
			return fmt.Errorf("failed to load content: %w", err)
		}

		criteria := content.Criteria{Category: content.ParseCategory(searchCategory)}
		if len(args) > 0 {
			criteria.Query = args[0]
		}
		if !criteria.Category.Known() {
			logger.Warn("unknown category, nothing will match")
		}

		res := services.Search(services.NewExperienceService(store), services.NewProjectService(store), criteria)
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Experience (%d)\n", len(res.Experience))
		for _, e := range res.Experience {
			fmt.Fprintf(out, "  %s, %s  [%s]\n", e.Role, e.Company, strings.Join(e.Skills, ", "))
		}
		fmt.Fprintf(out, "Projects (%d)\n", len(res.Projects))
		for _, p := range res.Projects {
			fmt.Fprintf(out, "  %s  [%s]\n", p.Title, strings.Join(p.TagList, ", "))
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchCategory, "category", "all", "Category id: all, frontend, backend, ai, cloud, embedded")
}
