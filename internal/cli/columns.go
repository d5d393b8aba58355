package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/validation"
	"taskdesk/pkg/apierrors"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Manage board columns",
}

var columnsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List columns in display order",
	RunE:  runColumnsList,
}

var columnsAddCmd = &cobra.Command{
	Use:     "add",
	Short:   "Add a column with the default title",
	PreRunE: requireAdmin,
	RunE:    runColumnsAdd,
}

var columnsRenameCmd = &cobra.Command{
	Use:     "rename [column-id] [title]",
	Short:   "Rename a column",
	Args:    cobra.MinimumNArgs(2),
	PreRunE: requireAdmin,
	RunE:    runColumnsRename,
}

var columnsRmCmd = &cobra.Command{
	Use:     "rm [column-id]",
	Short:   "Delete a column",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireAdmin,
	RunE:    runColumnsRm,
}

func init() {
	columnsCmd.AddCommand(columnsListCmd)
	columnsCmd.AddCommand(columnsAddCmd)
	columnsCmd.AddCommand(columnsRenameCmd)
	columnsCmd.AddCommand(columnsRmCmd)
}

// requireAdmin loads the current user and rejects non administrators.
func requireAdmin(cmd *cobra.Command, args []string) error {
	if _, err := app.Auth.WhoAmI(cmd.Context()); err != nil {
		return err
	}
	return app.Auth.RequireAdmin()
}

func runColumnsList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := app.Columns.FetchAll(ctx); err != nil {
		return failed(apierrors.MsgFailFetchBoard, err)
	}
	if err := app.Tasks.FetchAll(ctx); err != nil {
		return failed(apierrors.MsgFailFetchBoard, err)
	}

	counts := make(map[uint64]int)
	for _, task := range app.Tasks.Tasks() {
		if task.ColumnID != nil {
			counts[*task.ColumnID]++
		}
	}
	return renderColumns(cmd.OutOrStdout(), app.Columns.Columns(), counts)
}

func runColumnsAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := app.Columns.FetchAll(ctx); err != nil {
		return failed(apierrors.MsgFailFetchBoard, err)
	}
	column, err := app.Columns.Create(ctx)
	if err != nil {
		return failed(apierrors.MsgFailColumn, err)
	}
	return renderColumns(cmd.OutOrStdout(), []domain.Column{column}, nil)
}

func runColumnsRename(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	title := strings.Join(args[1:], " ")
	if err := validation.Check("title", title, validation.RuleRequired); err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := app.Columns.FetchAll(ctx); err != nil {
		return failed(apierrors.MsgFailFetchBoard, err)
	}
	column, ok := app.Columns.ByID(id)
	if !ok {
		return domain.ErrColumnNotFound
	}
	column.Title = strings.TrimSpace(title)

	updated, _, err := app.Columns.Update(ctx, column)
	if err != nil {
		return failed(apierrors.MsgFailColumn, err)
	}
	return renderColumns(cmd.OutOrStdout(), []domain.Column{updated}, nil)
}

func runColumnsRm(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if err := app.Columns.FetchAll(ctx); err != nil {
		return failed(apierrors.MsgFailFetchBoard, err)
	}
	removed, err := app.Columns.Delete(ctx, id)
	if err != nil {
		return failed(apierrors.MsgFailColumn, err)
	}
	if !removed {
		return domain.ErrColumnNotFound
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted column #%d\n", id)
	return nil
}
