package main

import (
	"github.com/ethanbaker/states-api/pkg/sdk"
	"github.com/spf13/cobra"
)

const (
	exitUserError = 1
)

// options holds global flag values and the client built from them
type options struct {
	configFile string
	baseURL    string
	apiKey     string
	json       bool

	client *sdk.Client
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "statesctl",
		Short:         "statesctl queries US state data and manages fun facts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			opts.client = sdk.NewClient(cfg.GetString(cfgKeyBaseURL), cfg.GetString(cfgKeyAPIKey))
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "path to a YAML config file")
	flags.StringVar(&opts.baseURL, "base-url", "", "API base URL (default "+defaultBaseURL+")")
	flags.StringVar(&opts.apiKey, "api-key", "", "API key sent with fun fact edits")
	flags.BoolVar(&opts.json, "json", false, "output as JSON")

	cmd.AddCommand(
		newListCmd(opts),
		newGetCmd(opts),
		newFunFactCmd(opts),
		newAttrCmd(opts),
		newAddCmd(opts),
		newUpdateCmd(opts),
		newDeleteCmd(opts),
	)

	return cmd
}
