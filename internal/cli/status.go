package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	httpadapter "taskdesk/internal/adapter/http"
	"taskdesk/pkg/apierrors"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check that the board server is reachable",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	report := app.Client.CheckHealth(cmd.Context())
	if err := render(cmd.OutOrStdout(), report, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "Server:\t%s\n", report.BaseURL)
		fmt.Fprintf(tw, "Status:\t%s\n", report.Status)
		fmt.Fprintf(tw, "Latency:\t%s\n", report.Latency)
	}); err != nil {
		return err
	}
	if report.Status != httpadapter.StatusOk {
		return fmt.Errorf("%s: %s", apierrors.GetTransErrorMsg(apierrors.MsgServerUnavailable, app.Config.Language), report.Error)
	}
	return nil
}
