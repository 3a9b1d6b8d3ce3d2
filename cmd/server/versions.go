package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Atlas00000/sharevoices/internal/domain"
	"github.com/Atlas00000/sharevoices/internal/repository"
)

func newVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions <article-id>",
		Short: "Print the version history of an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			pool, err := openPostgres(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			versions, err := repository.NewPostgresVersionRepository(pool).List(ctx, args[0])
			if err != nil {
				return err
			}
			if len(versions) == 0 {
				return fmt.Errorf("article %s: %w", args[0], domain.ErrNotFound)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Version", "Title", "Changed", "Created By", "Created"})
			for _, v := range versions {
				t.AppendRow(table.Row{v.Version, v.Title, changedFields(v.Changes), v.CreatedBy, v.CreatedAt.Format(time.DateTime)})
			}
			t.Render()
			return nil
		},
	}
}

func changedFields(changes []domain.Change) string {
	if len(changes) == 0 {
		return "-"
	}
	fields := make([]string, 0, len(changes))
	for _, c := range changes {
		fields = append(fields, c.Field)
	}
	return strings.Join(fields, ", ")
}
