// Package registry holds the static metadata for the Azure OpenAI
// deployments this tool knows how to talk to. The remote service is
// authoritative on which deployments exist; this table is authoritative on
// how to shape requests for them.
package registry

import (
	"fmt"
	"sort"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/packages/param"
)

// TokenParam names the request field a model family expects for capping
// output length. Azure rejects requests that use the wrong field, so the
// value must always come from the matched ModelEntry.
type TokenParam string

const (
	TokenParamMaxTokens           TokenParam = "max_tokens"
	TokenParamMaxCompletionTokens TokenParam = "max_completion_tokens"
)

func (p TokenParam) Valid() bool {
	switch p {
	case TokenParamMaxTokens, TokenParamMaxCompletionTokens:
		return true
	}
	return false
}

// Apply sets the output-token cap on params using the field this model
// family expects. Exactly one of the two fields is populated.
func (p TokenParam) Apply(params *openai.ChatCompletionNewParams, limit int64) {
	switch p {
	case TokenParamMaxCompletionTokens:
		params.MaxCompletionTokens = param.NewOpt(limit)
	default:
		params.MaxTokens = param.NewOpt(limit)
	}
}

// ModelEntry describes one deployment: its official model name, the API
// version the deployment requires, context and output limits, and
// capability flags surfaced in the docs table.
type ModelEntry struct {
	Deployment        string
	OfficialName      string
	APIVersion        string
	ContextWindow     int
	MaxOutputTokens   int
	TokenParam        TokenParam
	SupportsVision    bool
	SupportsFunctions bool
	DocsURL           string
}

// ModelDocsURL points at the published model reference.
const ModelDocsURL = "https://learn.microsoft.com/azure/ai-services/openai/concepts/models"

// Preferred lists deployments in order of preference; the check command
// reports on these and picks the first live one for its test completion.
var Preferred = []string{"gpt-4.1", "gpt-4.1-nano", "o4-mini", "gpt-4o", "gpt-35-turbo"}

var models = map[string]ModelEntry{
	"gpt-4.1": {
		Deployment:        "gpt-4.1",
		OfficialName:      "GPT-4.1",
		APIVersion:        "2024-12-01-preview",
		ContextWindow:     1047576,
		MaxOutputTokens:   32768,
		TokenParam:        TokenParamMaxTokens,
		SupportsVision:    true,
		SupportsFunctions: true,
		DocsURL:           ModelDocsURL,
	},
	"gpt-4.1-nano": {
		Deployment:        "gpt-4.1-nano",
		OfficialName:      "GPT-4.1 nano",
		APIVersion:        "2024-12-01-preview",
		ContextWindow:     1047576,
		MaxOutputTokens:   32768,
		TokenParam:        TokenParamMaxTokens,
		SupportsVision:    true,
		SupportsFunctions: true,
		DocsURL:           ModelDocsURL,
	},
	// o-series reasoning models reject max_tokens outright.
	"o4-mini": {
		Deployment:        "o4-mini",
		OfficialName:      "o4-mini",
		APIVersion:        "2024-12-01-preview",
		ContextWindow:     200000,
		MaxOutputTokens:   100000,
		TokenParam:        TokenParamMaxCompletionTokens,
		SupportsVision:    true,
		SupportsFunctions: true,
		DocsURL:           ModelDocsURL,
	},
	"gpt-4o": {
		Deployment:        "gpt-4o",
		OfficialName:      "GPT-4o",
		APIVersion:        "2024-08-01-preview",
		ContextWindow:     128000,
		MaxOutputTokens:   16384,
		TokenParam:        TokenParamMaxTokens,
		SupportsVision:    true,
		SupportsFunctions: true,
		DocsURL:           ModelDocsURL,
	},
	"gpt-35-turbo": {
		Deployment:        "gpt-35-turbo",
		OfficialName:      "GPT-3.5 Turbo",
		APIVersion:        "2023-12-01-preview",
		ContextWindow:     16385,
		MaxOutputTokens:   4096,
		TokenParam:        TokenParamMaxTokens,
		SupportsVision:    false,
		SupportsFunctions: true,
		DocsURL:           ModelDocsURL,
	},
}

// Lookup resolves a deployment identifier to its entry.
func Lookup(deployment string) (ModelEntry, error) {
	entry, ok := models[deployment]
	if !ok {
		return ModelEntry{}, fmt.Errorf("deployment %q is not in the model registry (known: %v)", deployment, Deployments())
	}
	return entry, nil
}

// Deployments returns the registered deployment identifiers, sorted.
func Deployments() []string {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns all entries sorted by deployment identifier.
func Entries() []ModelEntry {
	entries := make([]ModelEntry, 0, len(models))
	for _, name := range Deployments() {
		entries = append(entries, models[name])
	}
	return entries
}
