package client

import (
	"errors"
	"testing"

	"github.com/madmaxieee/azchat/internal/chat"
	"github.com/madmaxieee/azchat/internal/config"
	"github.com/madmaxieee/azchat/internal/registry"
	"github.com/madmaxieee/azchat/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MissingCredentials(t *testing.T) {
	entry, err := registry.Lookup("gpt-4o")
	require.NoError(t, err)

	cfg := &config.Config{ConfigFile: &config.ConfigFile{
		Endpoint: utils.StringPtr("https://example.openai.azure.com/"),
	}}
	_, err = New(cfg, entry)
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)

	cfg = &config.Config{ConfigFile: &config.ConfigFile{}, APIKey: "k"}
	_, err = New(cfg, entry)
	assert.ErrorIs(t, err, config.ErrMissingEndpoint)
}

func TestBuildParams_TokenParamIndirection(t *testing.T) {
	messages := []chat.Message{
		{Role: chat.RoleSystem, Content: "You are a helpful assistant."},
		{Role: chat.RoleUser, Content: "hello"},
	}

	entry, err := registry.Lookup("gpt-4o")
	require.NoError(t, err)
	params := BuildParams(entry, messages)
	assert.True(t, params.MaxTokens.Valid())
	assert.Equal(t, int64(entry.MaxOutputTokens), params.MaxTokens.Value)
	assert.False(t, params.MaxCompletionTokens.Valid())

	entry, err = registry.Lookup("o4-mini")
	require.NoError(t, err)
	params = BuildParams(entry, messages)
	assert.True(t, params.MaxCompletionTokens.Valid())
	assert.Equal(t, int64(entry.MaxOutputTokens), params.MaxCompletionTokens.Value)
	assert.False(t, params.MaxTokens.Valid())
}

func TestBuildParams_FullTranscript(t *testing.T) {
	messages := []chat.Message{
		{Role: chat.RoleSystem, Content: "sys"},
		{Role: chat.RoleUser, Content: "q1"},
		{Role: chat.RoleAssistant, Content: "a1"},
		{Role: chat.RoleUser, Content: "q2"},
	}
	entry, err := registry.Lookup("gpt-4.1")
	require.NoError(t, err)

	params := BuildParams(entry, messages)
	require.Len(t, params.Messages, 4)
	assert.NotNil(t, params.Messages[0].OfSystem)
	assert.NotNil(t, params.Messages[1].OfUser)
	assert.NotNil(t, params.Messages[2].OfAssistant)
	assert.NotNil(t, params.Messages[3].OfUser)
	assert.Equal(t, "gpt-4.1", string(params.Model))
}

func TestDeploymentNotFoundError_ListsAvailable(t *testing.T) {
	err := &DeploymentNotFoundError{
		Deployment: "gpt-imaginary",
		Available:  []string{"gpt-4.1", "o4-mini"},
	}
	msg := err.Error()
	assert.Contains(t, msg, "gpt-imaginary")
	assert.Contains(t, msg, "gpt-4.1")
	assert.Contains(t, msg, "o4-mini")

	empty := &DeploymentNotFoundError{Deployment: "x"}
	assert.Contains(t, empty.Error(), "no deployments")
}

func TestConnectivityError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := &ConnectivityError{Op: "listing deployments", Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "listing deployments")
}
