/*
Copyright © 2025 madmaxieee
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/madmaxieee/azchat/internal/chat"
	"github.com/madmaxieee/azchat/internal/client"
	"github.com/madmaxieee/azchat/internal/config"
	"github.com/madmaxieee/azchat/internal/registry"
	"github.com/madmaxieee/azchat/internal/ui"
	"github.com/madmaxieee/azchat/internal/utils"
	"github.com/spf13/cobra"
)

type Flags struct {
	ConfigFilePath string
	Model          string
	ListModels     bool
}

var flags Flags

var rootCmd = &cobra.Command{
	Use:   "azchat",
	Short: "Chat with Azure OpenAI deployments from the terminal",
	Long: `A command-line chat client for Azure OpenAI.

Credentials come from ` + config.EndpointEnv + ` and ` + config.APIKeyEnv + `
(or a .env file in the working directory).

Examples:
  azchat -m gpt-4.1        chat with the gpt-4.1 deployment
  azchat --models          show the model documentation table
  azchat check             test connectivity and model availability`,

	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		if flags.ListModels {
			fmt.Print(ui.RenderModelTable(registry.Entries()))
			return nil
		}

		cfg, err := config.Load(flags.ConfigFilePath)
		if err != nil {
			return err
		}

		model := flags.Model
		if model == "" {
			model = utils.DefaultString(cfg.DefaultModel, "")
		}
		if model == "" {
			return cmd.Help()
		}

		return runChat(cmd.Context(), cfg, model)
	},
}

func runChat(ctx context.Context, cfg *config.Config, model string) error {
	// the registry shapes the request, the service decides what is live;
	// both must know the deployment before a session starts
	entry, err := registry.Lookup(model)
	if err != nil {
		return err
	}

	cli, err := client.New(cfg, entry)
	if err != nil {
		return err
	}

	if err := cli.VerifyDeployment(ctx); err != nil {
		return err
	}

	session := chat.NewSession(cli, utils.DefaultString(cfg.SystemPrompt, ""), cfg.RequestTimeout())
	return chat.Run(ctx, session, entry.OfficialName, entry.Deployment)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flags.ConfigFilePath, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/azchat/config.toml)")
	rootCmd.Flags().StringVarP(&flags.Model, "model", "m", "", "deployment to chat with")
	rootCmd.Flags().BoolVarP(&flags.ListModels, "models", "l", false, "show the model documentation table and exit")
}
