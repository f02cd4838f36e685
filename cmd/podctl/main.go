package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"pod-tracker-service/internal/app/delivery/cli"
	"pod-tracker-service/internal/app/services/shared/podclient"
	"pod-tracker-service/internal/pkg/dto/requests"
	"pod-tracker-service/internal/pkg/utils"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

type options struct {
	baseURL string
	timeout time.Duration
	retries int
	verbose bool
}

func main() {
	godotenv.Load()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)

	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "podctl",
		Short:         "Track post-operative days of surgical patients",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", utils.GetEnvString("POD_API_BASE_URL", podclient.DefaultBaseURL), "API base URL")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", podclient.DefaultTimeout, "per request timeout")
	rootCmd.PersistentFlags().IntVar(&opts.retries, "retries", 2, "retries for read requests")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log request diagnostics")

	console := func() *cli.Console {
		client := podclient.NewPatientClient(podclient.Config{
			BaseURL:  opts.baseURL,
			Timeout:  opts.timeout,
			RetryMax: opts.retries,
			Logger:   log,
		})
		return cli.NewConsole(client, os.Stdin, os.Stdout, log, opts.baseURL)
	}

	rootCmd.AddCommand(listCmd(console))
	rootCmd.AddCommand(getCmd(console))
	rootCmd.AddCommand(addCmd(console))
	rootCmd.AddCommand(updateCmd(console))
	rootCmd.AddCommand(deleteCmd(console))
	rootCmd.AddCommand(versionCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.WithError(err).Debug("command failed")
		stop()
		os.Exit(1)
	}
}

func listCmd(console func() *cli.Console) *cobra.Command {
	var (
		watch    bool
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List patients, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				return console().Watch(cmd.Context(), interval)
			}
			return console().List(cmd.Context())
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep refreshing the list")
	cmd.Flags().DurationVar(&interval, "interval", cli.DefaultRefreshInterval, "refresh interval with --watch")
	return cmd
}

func getCmd(console func() *cli.Console) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return console().Show(cmd.Context(), args[0])
		},
	}
}

func patientFlags(cmd *cobra.Command, request *requests.CreatePatient) {
	cmd.Flags().StringVar(&request.Name, "name", "", "patient name")
	cmd.Flags().StringVar(&request.MRN, "mrn", "", "medical record number")
	cmd.Flags().StringVar(&request.SurgeryType, "surgery-type", "", "surgery type")
	cmd.Flags().StringVar(&request.OTDate, "ot-date", "", "operative date, YYYY-MM-DD")
	cmd.Flags().StringVar(&request.Surgeon, "surgeon", "", "surgeon")
	cmd.Flags().StringVar(&request.Unit, "unit", "", "unit or ward")
}

func addCmd(console func() *cli.Console) *cobra.Command {
	request := requests.CreatePatient{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a patient, prompting for anything required that is not given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return console().Add(cmd.Context(), request)
		},
	}
	patientFlags(cmd, &request)
	return cmd
}

func updateCmd(console func() *cli.Console) *cobra.Command {
	values := requests.CreatePatient{}
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the given fields of a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := func(flag string, value string) *string {
				if !cmd.Flags().Changed(flag) {
					return nil
				}
				return &value
			}
			request := &requests.UpdatePatient{
				Name:        changed("name", values.Name),
				MRN:         changed("mrn", values.MRN),
				SurgeryType: changed("surgery-type", values.SurgeryType),
				OTDate:      changed("ot-date", values.OTDate),
				Surgeon:     changed("surgeon", values.Surgeon),
				Unit:        changed("unit", values.Unit),
			}
			return console().Update(cmd.Context(), args[0], request)
		},
	}
	patientFlags(cmd, &values)
	return cmd
}

func deleteCmd(console func() *cli.Console) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return console().Delete(cmd.Context(), args[0], yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "Tag: %s\n", Tag)
		},
	}
}
