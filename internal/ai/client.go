package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	"promptgen/internal/ai/component"
	"promptgen/internal/config"
)

// ChatClient 大模型文本补全能力
// 提交一轮用户输入，阻塞直到拿到完整回答；不涉及多轮对话、工具调用和流式输出
type ChatClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrEmptyResponse 模型返回了空内容，会触发重试；重试用尽后 Generate 返回空字符串
var ErrEmptyResponse = errors.New("empty response from chat model")

// EinoClient 基于 Eino ChatModel 的 ChatClient 实现
// 重试策略在这里统一处理，上层服务只关心一次调用的结果
type EinoClient struct {
	chatModel model.BaseChatModel
	retryOpts []retry.Option
}

// NewClient 根据配置创建 ChatModel 并封装为 EinoClient
func NewClient(ctx context.Context, cfg *config.AIConfig) (*EinoClient, error) {
	if cfg.APIKey == "" {
		log.Warn().Str("provider", cfg.Provider).Msg("AI API key not configured, requests will likely fail")
	}

	chatModel, err := component.NewChatModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	return NewEinoClient(chatModel, cfg.Retry), nil
}

// NewEinoClient 使用已有的 ChatModel 创建客户端
func NewEinoClient(chatModel model.BaseChatModel, retryCfg config.RetryConfig) *EinoClient {
	return &EinoClient{
		chatModel: chatModel,
		retryOpts: retryOptions(retryCfg),
	}
}

func retryOptions(cfg config.RetryConfig) []retry.Option {
	attempts := cfg.Attempts
	if attempts == 0 {
		attempts = 1
	}

	opts := []retry.Option{
		retry.Attempts(attempts),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Err(err).Uint("attempt", n+1).Msg("chat model call failed, retrying")
		}),
	}
	if cfg.Delay > 0 {
		opts = append(opts, retry.Delay(cfg.Delay))
	}
	if cfg.MaxDelay > 0 {
		opts = append(opts, retry.MaxDelay(cfg.MaxDelay))
	}
	return opts
}

// Generate 以单条用户消息调用模型并返回完整文本
// 模型始终返回空内容时不视为失败，返回 "" 和 nil
func (c *EinoClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.chatModel == nil {
		return "", errors.New("chatModel is required")
	}

	messages := []*schema.Message{
		schema.UserMessage(prompt),
	}

	var content string
	err := retry.Do(func() error {
		resp, err := c.chatModel.Generate(ctx, messages)
		if err != nil {
			return err
		}
		if resp == nil || resp.Content == "" {
			return ErrEmptyResponse
		}
		content = resp.Content
		return nil
	}, append([]retry.Option{retry.Context(ctx)}, c.retryOpts...)...)
	if errors.Is(err, ErrEmptyResponse) {
		// 空回答交给上层解析，由解析器给出兜底结果
		log.Warn().Msg("chat model returned empty content after all attempts")
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	return content, nil
}
