// Package client wraps the OpenAI SDK configured for an Azure endpoint.
// Each client is pinned to one deployment, because Azure ties the API
// version to the deployment being addressed.
package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/madmaxieee/azchat/internal/chat"
	"github.com/madmaxieee/azchat/internal/config"
	"github.com/madmaxieee/azchat/internal/registry"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/azure"
	"github.com/openai/openai-go/v3/packages/param"
)

// matches the original client's sampling temperature
const defaultTemperature = 0.7

type Client struct {
	*openai.Client
	entry registry.ModelEntry
}

// New builds a client for one deployment. The API version always comes
// from the registry entry, never from a global constant. Configuration is
// validated here so missing credentials fail before any network call.
func New(cfg *config.Config, entry registry.ModelEntry) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := openai.NewClient(
		azure.WithEndpoint(strings.TrimSuffix(*cfg.Endpoint, "/"), entry.APIVersion),
		azure.WithAPIKey(cfg.APIKey),
	)
	return &Client{
		Client: &client,
		entry:  entry,
	}, nil
}

func (c *Client) Entry() registry.ModelEntry {
	return c.entry
}

// Complete sends the full transcript and returns the assistant's reply.
// Implements chat.Completer.
func (c *Client) Complete(ctx context.Context, messages []chat.Message) (string, error) {
	params := BuildParams(c.entry, messages)
	resp, err := c.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("deployment %s returned no choices", c.entry.Deployment)
	}
	return resp.Choices[0].Message.Content, nil
}

// BuildParams constructs the request for one turn. The output cap is set
// through the entry's token param so the field name matches what the model
// family expects.
func BuildParams(entry registry.ModelEntry, messages []chat.Message) openai.ChatCompletionNewParams {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case chat.RoleSystem:
			msgs = append(msgs, openai.SystemMessage(m.Content))
		case chat.RoleAssistant:
			msgs = append(msgs, openai.ChatCompletionMessageParamOfAssistant(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(entry.Deployment),
		Messages:    msgs,
		Temperature: param.NewOpt(defaultTemperature),
	}
	entry.TokenParam.Apply(&params, int64(entry.MaxOutputTokens))
	return params
}

// ListDeployments asks the service which deployments are live.
func (c *Client) ListDeployments(ctx context.Context) ([]string, error) {
	page, err := c.Models.List(ctx)
	if err != nil {
		return nil, &ConnectivityError{Op: "listing deployments", Err: err}
	}
	ids := make([]string, 0, len(page.Data))
	for _, m := range page.Data {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// VerifyDeployment confirms this client's deployment is live on the remote
// service. The registry knows how to shape requests for a deployment; only
// the service knows whether it is actually deployed, so both checks are
// needed before a session starts.
func (c *Client) VerifyDeployment(ctx context.Context) error {
	available, err := c.ListDeployments(ctx)
	if err != nil {
		return err
	}
	for _, id := range available {
		if id == c.entry.Deployment {
			return nil
		}
	}
	return &DeploymentNotFoundError{Deployment: c.entry.Deployment, Available: available}
}
