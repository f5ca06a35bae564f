package cli

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/callibrity/person-workshop/internal/config"
	"github.com/callibrity/person-workshop/internal/logger"
	"github.com/callibrity/person-workshop/internal/version"
)

var (
	cfg       *config.ClientEnvironment
	appLogger *slog.Logger
	client    *Client
)

var rootCmd = &cobra.Command{
	Use:               "person-client",
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	Short:             "Person API client",
	Long:              `person-client calls the person API configured by PERSON_API_URL (and PERSON_API_TOKEN when the API requires a bearer token)`,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.NewClientConfig()
		if err != nil {
			log.Printf("failed to load configuration: %v", err.Error())
			return err
		}

		appLogger = logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), "dev")
		client = NewClient(cfg.APIURL, cfg.APIToken, cfg.Timeout)

		appLogger.Debug("client configured",
			slog.String("PERSON_API_URL", cfg.APIURL),
			slog.Bool("token_set", cfg.APIToken != ""),
		)
		return nil
	},
}

func Execute() {
	v := version.Get()
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
}
