package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/madmaxieee/azchat/internal/chat"
	"github.com/madmaxieee/azchat/internal/client"
	"github.com/madmaxieee/azchat/internal/config"
	"github.com/madmaxieee/azchat/internal/registry"
	"github.com/madmaxieee/azchat/internal/ui"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Test the connection to Azure OpenAI and verify model availability",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(flags.ConfigFilePath)
	if err != nil {
		return err
	}

	// any registered entry works for listing; deployments are enumerated
	// independently of which one the client is pinned to
	listEntry, err := registry.Lookup(registry.Preferred[0])
	if err != nil {
		return err
	}
	cli, err := client.New(cfg, listEntry)
	if err != nil {
		return err
	}

	fmt.Printf("Connecting to Azure OpenAI endpoint: %s\n", *cfg.Endpoint)
	fmt.Println("\nAttempting to list available deployments...")

	available, err := cli.ListDeployments(ctx)
	if err != nil {
		return err
	}
	fmt.Println(ui.OK("Successfully connected to Azure OpenAI API"))

	fmt.Println("\nAvailable deployments:")
	live := make(map[string]bool, len(available))
	for _, id := range available {
		fmt.Printf("- %s\n", id)
		live[id] = true
	}

	fmt.Println()
	testModel := ""
	for _, name := range registry.Preferred {
		if live[name] {
			fmt.Println(ui.OK(fmt.Sprintf("Expected deployment %q is available", name)))
			if testModel == "" {
				testModel = name
			}
		} else {
			fmt.Println(ui.Fail(fmt.Sprintf("Expected deployment %q was NOT found", name)))
		}
	}

	if testModel == "" {
		fmt.Println(ui.Info("\nNo expected deployments were found. Skipping completion test."))
		return nil
	}

	entry, err := registry.Lookup(testModel)
	if err != nil {
		return err
	}
	testClient, err := client.New(cfg, entry)
	if err != nil {
		return err
	}

	fmt.Printf("\nTesting completion with deployment: %s\n", testModel)

	reqCtx := ctx
	if timeout := cfg.RequestTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	reply, err := testClient.Complete(reqCtx, []chat.Message{
		{Role: chat.RoleSystem, Content: "You are a helpful assistant."},
		{Role: chat.RoleUser, Content: "Hello, this is a test message. Please respond with a short greeting."},
	})
	if err != nil {
		return fmt.Errorf("completion test failed: %w", err)
	}

	fmt.Println(ui.OK(fmt.Sprintf("Successfully received response in %.2f seconds", time.Since(start).Seconds())))
	fmt.Printf("Response: %s\n", reply)
	return nil
}
