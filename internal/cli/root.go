package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose      bool
	outputFormat string
	rootCmd      *cobra.Command
	app          *App
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "desk",
		Short: "desk - kanban board client",
		Long: `desk works with a kanban board server: columns, ordered tasks, filters
and the signed-in session.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			app, err = NewApp(verbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				app.Close()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", formatTable, "Output format: table, json or yaml")
}

// Execute runs the root command
func Execute(version string) error {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(columnsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd.Version = version
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		lang := "en"
		if app != nil {
			lang = app.Config.Language
			app.Close()
		}
		zap.L().Debug("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error:", describeError(err, lang))
		return err
	}
	return nil
}
