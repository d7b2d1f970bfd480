package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"promptgen/internal/ai"
	"promptgen/internal/model"
	"promptgen/internal/pkg/ctxutil"
	"promptgen/internal/pkg/llmparse"
	"promptgen/internal/pkg/metrics"
	"promptgen/internal/prompt"
)

// PromptService 提示词生成服务
// 职责: 构建提示词 -> 调用模型 -> 解析模型回答；不保存任何状态
type PromptService struct {
	client  ai.ChatClient
	metrics *metrics.Metrics
}

// NewPromptService 创建提示词生成服务，m 为 nil 时不记录指标
func NewPromptService(client ai.ChatClient, m *metrics.Metrics) *PromptService {
	return &PromptService{
		client:  client,
		metrics: m,
	}
}

// StreamEvent 流式生成的单个事件，Result 与 Err 只会有一个非空
type StreamEvent struct {
	Result *model.PromptGenerationResponse
	Err    error
}

// Generate 一次性生成关键意图、初版提示词和最终提示词
// 模型调用失败会返回错误；解析失败不会报错，而是返回占位结果
func (s *PromptService) Generate(ctx context.Context, req *model.PromptGenerationRequest) (*model.PromptGenerationResponse, error) {
	logger := s.logger(ctx, prompt.OpComplete)
	logger.Info().Str("input", req.InputPrompt).Msg("generating complete prompt")

	text, err := s.call(ctx, logger, prompt.OpComplete, prompt.Params{
		Description: req.InputPrompt,
		Language:    req.Language,
	})
	if err != nil {
		return nil, err
	}

	parsed := llmparse.ParseFields(text)
	s.metrics.ObserveParse("fields", string(parsed.Source))
	if parsed.Source == llmparse.SourcePlaceholder {
		logger.Warn().Str("response", text).Msg("model response has no JSON object, using placeholders")
	}

	logger.Info().Str("source", string(parsed.Source)).Msg("complete prompt generated")

	return &model.PromptGenerationResponse{
		KeyIntent:     parsed.Fields.KeyIntent,
		InitialPrompt: parsed.Fields.InitialPrompt,
		FinalPrompt:   parsed.Fields.FinalPrompt,
	}, nil
}

// GenerateStream 以单事件流的形式返回 Generate 的结果
// 通道中恰好有一个事件（结果或错误），随后关闭。通道带一个缓冲，调用方提前
// 放弃读取也不会阻塞后台 goroutine；ctx 取消会中断模型调用。
func (s *PromptService) GenerateStream(ctx context.Context, req *model.PromptGenerationRequest) <-chan StreamEvent {
	ch := make(chan StreamEvent, 1)

	go func() {
		defer close(ch)
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Msg("stream generation panicked")
				ch <- StreamEvent{Err: fmt.Errorf("panic: %v", r)}
			}
		}()

		result, err := s.Generate(ctx, req)
		if err != nil {
			ch <- StreamEvent{Err: err}
			return
		}
		ch <- StreamEvent{Result: result}
	}()

	return ch
}

// ThinkingPoints 生成关键指令点列表
func (s *PromptService) ThinkingPoints(ctx context.Context, req *model.ThinkingPointsRequest) ([]string, error) {
	return s.generateList(ctx, prompt.OpThinkingPoints, prompt.Params{
		Description: req.Description,
		Language:    req.Language,
	})
}

// SystemPrompt 根据需求和关键指令点生成系统提示词，直接返回模型原文
func (s *PromptService) SystemPrompt(ctx context.Context, req *model.SystemPromptRequest) (string, error) {
	logger := s.logger(ctx, prompt.OpSystemPrompt)
	return s.call(ctx, logger, prompt.OpSystemPrompt, prompt.Params{
		Description:    req.Description,
		Language:       req.Language,
		ThinkingPoints: req.ThinkingPoints,
	})
}

// OptimizationAdvice 生成提示词优化建议列表
func (s *PromptService) OptimizationAdvice(ctx context.Context, req *model.OptimizationAdviceRequest) ([]string, error) {
	return s.generateList(ctx, prompt.OpOptimizationAdvice, prompt.Params{
		Prompt:     req.PromptToAnalyze,
		PromptType: req.PromptType,
		Language:   req.Language,
	})
}

// ApplyOptimization 将优化建议应用到原始提示词，直接返回模型原文
func (s *PromptService) ApplyOptimization(ctx context.Context, req *model.ApplyOptimizationRequest) (string, error) {
	logger := s.logger(ctx, prompt.OpApplyOptimization)
	return s.call(ctx, logger, prompt.OpApplyOptimization, prompt.Params{
		Prompt:     req.OriginalPrompt,
		Advice:     req.Advice,
		PromptType: req.PromptType,
		Language:   req.Language,
	})
}

func (s *PromptService) generateList(ctx context.Context, op prompt.Operation, p prompt.Params) ([]string, error) {
	logger := s.logger(ctx, op)

	text, err := s.call(ctx, logger, op, p)
	if err != nil {
		return nil, err
	}

	parsed := llmparse.ParseList(text)
	s.metrics.ObserveParse("list", string(parsed.Source))
	if parsed.Source == llmparse.SourceRaw {
		logger.Warn().Str("response", text).Msg("could not parse list response, using raw content")
	}

	logger.Info().
		Int("items", len(parsed.Items)).
		Str("source", string(parsed.Source)).
		Msg("list generated")

	return parsed.Items, nil
}

// call 构建提示词并调用一次模型
func (s *PromptService) call(ctx context.Context, logger zerolog.Logger, op prompt.Operation, p prompt.Params) (string, error) {
	if p.Language == "" {
		p.Language = prompt.LanguageZH
	}
	if p.PromptType == "" {
		p.PromptType = prompt.PromptTypeSystem
	}

	text, err := prompt.Build(op, p)
	if err != nil {
		return "", err
	}

	start := time.Now()
	resp, err := s.client.Generate(ctx, text)
	elapsed := time.Since(start)
	s.metrics.ObserveLLMCall(string(op), elapsed, err)
	if err != nil {
		logger.Error().Err(err).Dur("latency", elapsed).Msg("chat model call failed")
		return "", fmt.Errorf("call chat model: %w", err)
	}

	logger.Debug().
		Dur("latency", elapsed).
		Int("response_len", len(resp)).
		Msg("chat model responded")

	return resp, nil
}

func (s *PromptService) logger(ctx context.Context, op prompt.Operation) zerolog.Logger {
	lc := log.With().Str("operation", string(op))
	if id, ok := ctxutil.GetRequestID(ctx); ok {
		lc = lc.Str("request_id", id)
	}
	return lc.Logger()
}
