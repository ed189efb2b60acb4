// Package configbuilder turns provider/model configuration into a populated
// llm.Registry.
package configbuilder

import (
	"fmt"
	"strings"

	"github.com/juggajay/siteproof-v2-sub000/internal/config"
	"github.com/juggajay/siteproof-v2-sub000/internal/llm"
	"github.com/juggajay/siteproof-v2-sub000/internal/llm/providers/anthropic"
	"github.com/juggajay/siteproof-v2-sub000/internal/llm/providers/openai"
)

// BuildRegistryFromConfig constructs providers and model routes from config.
// The registry is verified to resolve a default model before it is returned.
func BuildRegistryFromConfig(cfg *config.Config) (*llm.Registry, error) {
	reg := llm.NewRegistry()

	for name, pc := range cfg.Providers {
		provider, err := buildProvider(name, pc)
		if err != nil {
			return nil, err
		}
		reg.RegisterProvider(name, provider)
	}

	for name, mc := range cfg.Models {
		reg.RegisterModel(name, llm.ModelRoute{
			Provider:    mc.Provider,
			Model:       mc.Model,
			Temperature: mc.Temperature,
			MaxTokens:   mc.MaxTokens,
		}, mc.Default)
	}

	if _, _, err := reg.Resolve(""); err != nil {
		return nil, fmt.Errorf("no usable default model: %w", err)
	}

	return reg, nil
}

func buildProvider(name string, cfg config.ProviderConfig) (llm.Provider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Type)) {
	case "anthropic":
		return anthropic.NewProvider(name, cfg.BaseURL, cfg.APIKey, cfg.Timeout), nil
	case "openai", "openrouter", "custom":
		// all three speak the OpenAI-compatible completions protocol
		return openai.NewProvider(name, cfg.BaseURL, cfg.APIKey, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown provider type %q for provider %s", cfg.Type, name)
	}
}
