package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"taskdesk/internal/core/domain"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// taskRow is the printable form of a task.
type taskRow struct {
	ID         uint64   `json:"id" yaml:"id"`
	Title      string   `json:"title" yaml:"title"`
	Column     string   `json:"column" yaml:"column"`
	SortOrder  int      `json:"sort_order" yaml:"sort_order"`
	User       string   `json:"user,omitempty" yaml:"user,omitempty"`
	Status     string   `json:"status,omitempty" yaml:"status,omitempty"`
	TimeStatus string   `json:"time_status,omitempty" yaml:"time_status,omitempty"`
	DueDate    string   `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	Tags       []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

func toTaskRows(tasks []domain.Task) []taskRow {
	rows := make([]taskRow, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, toTaskRow(task))
	}
	return rows
}

func toTaskRow(task domain.Task) taskRow {
	row := taskRow{
		ID:         task.ID,
		Title:      task.Title,
		Column:     columnName(task.ColumnID),
		SortOrder:  task.SortOrder,
		Status:     task.Status,
		TimeStatus: string(task.TimeStatus),
		DueDate:    task.DueDate,
		Tags:       task.TagList(),
	}
	if task.UserID != nil {
		row.User = userName(*task.UserID)
	}
	return row
}

func columnName(id *uint64) string {
	if id == nil {
		return "backlog"
	}
	if app != nil {
		if column, ok := app.Columns.ByID(*id); ok {
			return column.Title
		}
	}
	return fmt.Sprintf("#%d", *id)
}

func userName(id uint64) string {
	if app != nil {
		if user, ok := app.Users.UserByID(id); ok {
			return user.Name
		}
	}
	return fmt.Sprintf("#%d", id)
}

// render writes v in the selected format. table is produced by the supplied
// function.
func render(w io.Writer, v any, table func(*tabwriter.Writer)) error {
	switch strings.ToLower(outputFormat) {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case formatTable, "":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		table(tw)
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
}

func renderTasks(w io.Writer, tasks []domain.Task) error {
	rows := toTaskRows(tasks)
	return render(w, rows, func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "ID\tTITLE\tCOLUMN\tORDER\tUSER\tSTATUS\tDUE")
		for _, row := range rows {
			status := strings.TrimSpace(row.Status + " " + row.TimeStatus)
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\t%s\n",
				row.ID, row.Title, row.Column, row.SortOrder, row.User, status, row.DueDate)
		}
	})
}

type columnRow struct {
	ID    uint64 `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Order int    `json:"order" yaml:"order"`
	Tasks int    `json:"tasks" yaml:"tasks"`
}

func renderColumns(w io.Writer, columns []domain.Column, counts map[uint64]int) error {
	rows := make([]columnRow, 0, len(columns))
	for _, column := range columns {
		rows = append(rows, columnRow{ID: column.ID, Title: column.Title, Order: column.Order, Tasks: counts[column.ID]})
	}
	return render(w, rows, func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "ID\tTITLE\tORDER\tTASKS")
		for _, row := range rows {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", row.ID, row.Title, row.Order, row.Tasks)
		}
	})
}
