package main

import (
	"github.com/spf13/cobra"

	v1 "hrmslite.com/hrms/hrms/v1"
	"hrmslite.com/hrms/config"
	"hrmslite.com/hrms/roster"
)

type app struct {
	apiBase string
	token   string
	service roster.Service
}

func newRootCmd(cfg config.Client) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "hrmsctl",
		Short:         "Manage the HRMS Lite employee roster",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.service == nil {
				a.service = roster.NewClientService(v1.NewHrmsClient(a.apiBase, a.token))
			}
		},
	}
	root.PersistentFlags().StringVar(&a.apiBase, "api", cfg.BaseURL(), "backend base URL")
	root.PersistentFlags().StringVar(&a.token, "token", cfg.APIToken, "bearer token sent to the backend")

	root.AddCommand(
		a.listCmd(),
		a.createCmd(),
		a.deleteCmd(),
		a.markCmd(),
		a.historyCmd(),
		a.importCmd(),
		a.exportCmd(),
		secretCmd(),
	)
	return root
}
