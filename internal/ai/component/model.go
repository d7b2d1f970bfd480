package component

import (
	"context"
	"fmt"

	arkext "github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"promptgen/internal/config"
)

const (
	defaultArkBaseURL = "https://ark.cn-beijing.volces.com/api/v3"
	defaultArkModel   = "doubao-seed-1-6-flash-250615"
)

// NewChatModel 创建 ChatModel
// 支持多种 Provider: openai, azure, ark
func NewChatModel(ctx context.Context, cfg *config.AIConfig) (model.BaseChatModel, error) {
	switch cfg.Provider {
	case "openai", "":
		return newOpenAIChatModel(ctx, cfg)
	case "azure":
		return newAzureChatModel(ctx, cfg)
	case "ark":
		return newArkChatModel(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", cfg.Provider)
	}
}

// newOpenAIChatModel 创建 OpenAI ChatModel（也用于兼容 OpenAI 协议的服务）
func newOpenAIChatModel(ctx context.Context, cfg *config.AIConfig) (model.BaseChatModel, error) {
	modelCfg := &openai.ChatModelConfig{
		Model:   cfg.Model,
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	}
	applyOpenAIOptions(modelCfg, cfg.Options)

	return openai.NewChatModel(ctx, modelCfg)
}

// newAzureChatModel 创建 Azure OpenAI ChatModel
func newAzureChatModel(ctx context.Context, cfg *config.AIConfig) (model.BaseChatModel, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("azure provider requires ai.base_url")
	}
	modelCfg := &openai.ChatModelConfig{
		Model:   cfg.Model,
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		ByAzure: true,
		Timeout: cfg.Timeout,
	}
	applyOpenAIOptions(modelCfg, cfg.Options)

	return openai.NewChatModel(ctx, modelCfg)
}

func applyOpenAIOptions(modelCfg *openai.ChatModelConfig, opts config.AIOptionsConfig) {
	if opts.Temperature > 0 {
		temp := float32(opts.Temperature)
		modelCfg.Temperature = &temp
	}
	if opts.MaxTokens > 0 {
		maxTokens := opts.MaxTokens
		modelCfg.MaxTokens = &maxTokens
	}
	if opts.TopP > 0 {
		topP := float32(opts.TopP)
		modelCfg.TopP = &topP
	}
}

// newArkChatModel 创建 Ark ChatModel（火山方舟）
func newArkChatModel(ctx context.Context, cfg *config.AIConfig) (model.BaseChatModel, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultArkBaseURL
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = defaultArkModel
	}

	modelCfg := &arkext.ChatModelConfig{
		Model:   modelName,
		APIKey:  cfg.APIKey,
		BaseURL: baseURL,
	}
	if cfg.Timeout > 0 {
		timeout := cfg.Timeout
		modelCfg.Timeout = &timeout
	}

	if cfg.Options.Temperature > 0 {
		temp := float32(cfg.Options.Temperature)
		modelCfg.Temperature = &temp
	}
	if cfg.Options.MaxTokens > 0 {
		maxTokens := cfg.Options.MaxTokens
		modelCfg.MaxTokens = &maxTokens
	}
	if cfg.Options.TopP > 0 {
		topP := float32(cfg.Options.TopP)
		modelCfg.TopP = &topP
	}

	return arkext.NewChatModel(ctx, modelCfg)
}
