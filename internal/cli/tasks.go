package cli

import (
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/validation"
	"taskdesk/pkg/apierrors"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List and change board tasks",
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks matching the filters",
	RunE:  runTasksList,
}

var tasksShowCmd = &cobra.Command{
	Use:   "show [task-id]",
	Short: "Show a task with its checklist and owner",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksShow,
}

var tasksAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a task at the end of its column",
	RunE:  runTasksAdd,
}

var tasksEditCmd = &cobra.Command{
	Use:   "edit [task-id]",
	Short: "Change task fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksEdit,
}

var tasksMoveCmd = &cobra.Command{
	Use:   "move [task-id]",
	Short: "Move a task to a column, before another task or to the end",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksMove,
}

var tasksRmCmd = &cobra.Command{
	Use:   "rm [task-id]",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksRm,
}

func init() {
	tasksCmd.AddCommand(tasksListCmd)
	tasksCmd.AddCommand(tasksShowCmd)
	tasksCmd.AddCommand(tasksAddCmd)
	tasksCmd.AddCommand(tasksEditCmd)
	tasksCmd.AddCommand(tasksMoveCmd)
	tasksCmd.AddCommand(tasksRmCmd)

	tasksListCmd.Flags().String("search", "", "Case-insensitive title search")
	tasksListCmd.Flags().StringSlice("user", nil, "Only tasks of these user ids")
	tasksListCmd.Flags().StringSlice("status", nil, "Only tasks with these statuses (green, orange, red, time, alert)")
	tasksListCmd.Flags().Uint64("column", 0, "Only tasks of this column")
	tasksListCmd.Flags().Bool("backlog", false, "Only tasks without a column")

	addTaskFieldFlags(tasksAddCmd.Flags())
	addTaskFieldFlags(tasksEditCmd.Flags())

	tasksMoveCmd.Flags().Uint64("column", 0, "Destination column")
	tasksMoveCmd.Flags().Bool("backlog", false, "Move to the backlog")
	tasksMoveCmd.Flags().Uint64("before", 0, "Place before this task; appends when omitted")
}

func addTaskFieldFlags(flags *pflag.FlagSet) {
	flags.String("title", "", "Task title")
	flags.String("description", "", "Task description")
	flags.String("due", "", "Due date (2006-01-02 or RFC3339)")
	flags.Uint64("column", 0, "Column id")
	flags.Uint64("user", 0, "Owning user id")
	flags.Int("status-id", 0, "Priority: 1 green, 2 orange, 3 red")
	flags.StringSlice("tag", nil, "Tag, repeatable")
	flags.String("url", "", "Link")
}

func parseID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func optionalUint64(flags *pflag.FlagSet, name string) *uint64 {
	if !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetUint64(name)
	return &v
}

func runTasksList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := app.LoadBoard(ctx); err != nil {
		return failed(apierrors.MsgFailFetchBoard, err)
	}

	flags := cmd.Flags()
	if search, _ := flags.GetString("search"); search != "" {
		if err := app.Filters.Apply(domain.FilterSearch, search); err != nil {
			return err
		}
	}
	users, _ := flags.GetStringSlice("user")
	for _, raw := range users {
		id, err := parseID(raw)
		if err != nil {
			return err
		}
		if err := app.Filters.Apply(domain.FilterUsers, id); err != nil {
			return err
		}
	}
	statuses, _ := flags.GetStringSlice("status")
	for _, label := range statuses {
		if err := app.Filters.Apply(domain.FilterStatuses, label); err != nil {
			return err
		}
	}

	var tasks []domain.Task
	backlog, _ := flags.GetBool("backlog")
	switch column := optionalUint64(flags, "column"); {
	case backlog:
		tasks = app.Tasks.Backlog()
	case column != nil:
		if _, ok := app.Columns.ByID(*column); !ok {
			return domain.ErrColumnNotFound
		}
		tasks = app.Tasks.ByColumn(*column)
	default:
		tasks = app.Tasks.Filtered()
	}
	return renderTasks(cmd.OutOrStdout(), tasks)
}

func runTasksShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := app.LoadBoard(cmd.Context()); err != nil {
		return failed(apierrors.MsgFailFetchBoard, err)
	}

	view, ok := app.Tasks.View(id)
	if !ok {
		return domain.ErrTaskNotFound
	}

	type tickRow struct {
		Text string `json:"text" yaml:"text"`
		Done bool   `json:"done" yaml:"done"`
	}
	out := struct {
		taskRow     `yaml:",inline"`
		Description string    `json:"description,omitempty" yaml:"description,omitempty"`
		URL         string    `json:"url,omitempty" yaml:"url,omitempty"`
		Ticks       []tickRow `json:"ticks,omitempty" yaml:"ticks,omitempty"`
	}{
		taskRow:     toTaskRow(view.Task),
		Description: view.Description,
		URL:         view.URL,
	}
	if view.User != nil {
		out.User = view.User.Name
	}
	for _, tick := range view.Ticks {
		out.Ticks = append(out.Ticks, tickRow{Text: tick.Text, Done: tick.Done})
	}

	return render(cmd.OutOrStdout(), out, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "#%d\t%s\n", out.ID, out.Title)
		fmt.Fprintf(tw, "Column:\t%s\n", out.Column)
		fmt.Fprintf(tw, "Owner:\t%s\n", out.User)
		fmt.Fprintf(tw, "Status:\t%s %s\n", out.Status, out.TimeStatus)
		fmt.Fprintf(tw, "Due:\t%s\n", out.DueDate)
		if out.Description != "" {
			fmt.Fprintf(tw, "Description:\t%s\n", out.Description)
		}
		if out.URL != "" {
			fmt.Fprintf(tw, "Link:\t%s\n", out.URL)
		}
		for _, tick := range out.Ticks {
			mark := " "
			if tick.Done {
				mark = "x"
			}
			fmt.Fprintf(tw, "  [%s]\t%s\n", mark, tick.Text)
		}
	})
}

func runTasksAdd(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	payload := validation.TaskPayload{
		ColumnID: optionalUint64(flags, "column"),
		UserID:   optionalUint64(flags, "user"),
	}
	payload.Title, _ = flags.GetString("title")
	payload.Description, _ = flags.GetString("description")
	payload.DueDate, _ = flags.GetString("due")
	payload.URL, _ = flags.GetString("url")
	payload.Tags, _ = flags.GetStringSlice("tag")
	if flags.Changed("status-id") {
		v, _ := flags.GetInt("status-id")
		payload.StatusID = &v
	}

	input, err := validation.BuildCreateTaskInput(payload)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := app.LoadBoard(ctx); err != nil {
		return failed(apierrors.MsgFailFetchBoard, err)
	}
	if input.ColumnID != nil {
		if _, ok := app.Columns.ByID(*input.ColumnID); !ok {
			return domain.ErrColumnNotFound
		}
	}

	task, err := app.Tasks.Create(ctx, input)
	if err != nil {
		return failed(apierrors.MsgFailCreateTask, err)
	}
	return renderTasks(cmd.OutOrStdout(), []domain.Task{task})
}

func runTasksEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if err := app.LoadBoard(ctx); err != nil {
		return failed(apierrors.MsgFailFetchBoard, err)
	}
	task, ok := app.Tasks.ByID(id)
	if !ok {
		return domain.ErrTaskNotFound
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		title, _ := flags.GetString("title")
		if err := validation.Check("title", title, validation.RuleRequired); err != nil {
			return err
		}
		task.Title = title
	}
	if flags.Changed("description") {
		task.Description, _ = flags.GetString("description")
	}
	if flags.Changed("due") {
		due, _ := flags.GetString("due")
		if _, ok := domain.ParseDueDate(due); due != "" && !ok {
			return validation.ErrInvalidTaskPayload
		}
		task.DueDate = due
	}
	if flags.Changed("column") {
		task.ColumnID = optionalUint64(flags, "column")
	}
	if flags.Changed("user") {
		task.UserID = optionalUint64(flags, "user")
	}
	if flags.Changed("status-id") {
		v, _ := flags.GetInt("status-id")
		if domain.StatusLabel(&v) == "" {
			return validation.ErrInvalidTaskPayload
		}
		task.StatusID = &v
	}
	if flags.Changed("tag") {
		tags, _ := flags.GetStringSlice("tag")
		task.Tags = domain.JoinTags(tags)
	}
	if flags.Changed("url") {
		url, _ := flags.GetString("url")
		if err := validation.Check("url", url, validation.RuleURL); err != nil {
			return err
		}
		task.URL = url
	}

	updated, applied, err := app.Tasks.Update(ctx, task)
	if err != nil {
		return failed(apierrors.MsgFailUpdateTask, err)
	}
	if !applied {
		return domain.ErrTaskNotFound
	}
	return renderTasks(cmd.OutOrStdout(), []domain.Task{updated})
}

func runTasksMove(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if err := app.LoadBoard(ctx); err != nil {
		return failed(apierrors.MsgFailFetchBoard, err)
	}

	active, ok := app.Tasks.ByID(id)
	if !ok {
		return domain.ErrTaskNotFound
	}

	flags := cmd.Flags()
	backlog, _ := flags.GetBool("backlog")
	columnID := active.ColumnID
	switch {
	case backlog:
		columnID = nil
	case flags.Changed("column"):
		columnID = optionalUint64(flags, "column")
		if _, ok := app.Columns.ByID(*columnID); !ok {
			return domain.ErrColumnNotFound
		}
	}

	var toTask *domain.Task
	if before := optionalUint64(flags, "before"); before != nil {
		target, ok := app.Tasks.ByID(*before)
		if !ok {
			return domain.ErrTaskNotFound
		}
		toTask = &target
	}

	result := app.Tasks.Move(ctx, active, toTask, columnID)
	fmt.Fprintln(cmd.OutOrStdout(), batchSummary(len(result.Updated), len(result.Skipped), len(result.Failed), app.Config.Language))
	if len(result.Failed) > 0 {
		errs := make([]error, 0, len(result.Failed))
		for _, f := range result.Failed {
			errs = append(errs, f.Err)
		}
		return failed(apierrors.MsgFailMoveTask, errors.Join(errs...))
	}
	return nil
}

func runTasksRm(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if err := app.Tasks.FetchAll(ctx); err != nil {
		return failed(apierrors.MsgFailFetchBoard, err)
	}
	removed, err := app.Tasks.Delete(ctx, id)
	if err != nil {
		return failed(apierrors.MsgFailDeleteTask, err)
	}
	if !removed {
		return domain.ErrTaskNotFound
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", id)
	return nil
}
