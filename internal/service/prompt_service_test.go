package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	"promptgen/internal/ai"
	"promptgen/internal/config"
	"promptgen/internal/model"
	"promptgen/internal/pkg/llmparse"
	"promptgen/internal/pkg/metrics"
)

func replyWith(text string) *ai.MockClient {
	return ai.NewMockClient(func(context.Context, string) (string, error) {
		return text, nil
	})
}

func failWith(err error) *ai.MockClient {
	return ai.NewMockClient(func(context.Context, string) (string, error) {
		return "", err
	})
}

// emptyChatModel 总是返回空内容的 ChatModel
type emptyChatModel struct {
	calls int
}

func (m *emptyChatModel) Generate(_ context.Context, _ []*schema.Message, _ ...einomodel.Option) (*schema.Message, error) {
	m.calls++
	return schema.AssistantMessage("", nil), nil
}

func (m *emptyChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not supported")
}

func newService(client ai.ChatClient) *PromptService {
	return NewPromptService(client, metrics.MustNew(prometheus.NewRegistry()))
}

func TestPromptService_Generate(t *testing.T) {
	Convey("PromptService.Generate 生成完整提示词", t, func() {
		ctx := context.Background()
		req := &model.PromptGenerationRequest{InputPrompt: "Write a travel assistant"}

		Convey("模型返回合法 JSON 时原样返回三个字段", func() {
			client := replyWith(`{"keyIntent":"I","initialPrompt":"P1","finalPrompt":"P2"}`)
			result, err := newService(client).Generate(ctx, req)

			So(err, ShouldBeNil)
			So(*result, ShouldResemble, model.PromptGenerationResponse{KeyIntent: "I", InitialPrompt: "P1", FinalPrompt: "P2"})
			So(client.Calls(), ShouldEqual, 1)
			So(client.Prompts()[0], ShouldContainSubstring, "用户需求：Write a travel assistant")
		})

		Convey("模型返回无法解析的文本时使用占位结果", func() {
			result, err := newService(replyWith("I cannot help with that")).Generate(ctx, req)

			So(err, ShouldBeNil)
			So(result.KeyIntent, ShouldEqual, llmparse.PlaceholderKeyIntent)
			So(result.InitialPrompt, ShouldEqual, llmparse.PlaceholderInitialPrompt)
			So(result.FinalPrompt, ShouldEqual, llmparse.PlaceholderFinalPrompt)
		})

		Convey("模型调用失败时返回包装后的错误", func() {
			boom := errors.New("connection refused")
			_, err := newService(failWith(boom)).Generate(ctx, req)

			So(err, ShouldNotBeNil)
			So(errors.Is(err, boom), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "connection refused")
		})

		Convey("未指定语言时使用中文", func() {
			client := replyWith("{}")
			_, err := newService(client).Generate(ctx, req)
			So(err, ShouldBeNil)
			So(client.Prompts()[0], ShouldContainSubstring, "请用中文回答")
		})

		Convey("不记录指标也能工作", func() {
			svc := NewPromptService(replyWith("{}"), nil)
			_, err := svc.Generate(ctx, req)
			So(err, ShouldBeNil)
		})
	})
}

func TestPromptService_GenerateStream(t *testing.T) {
	Convey("PromptService.GenerateStream 只发送一个事件后关闭", t, func() {
		ctx := context.Background()
		req := &model.PromptGenerationRequest{InputPrompt: "x"}

		Convey("成功时发送结果", func() {
			ch := newService(replyWith(`{"keyIntent":"I","initialPrompt":"P1","finalPrompt":"P2"}`)).GenerateStream(ctx, req)

			var events []StreamEvent
			for ev := range ch {
				events = append(events, ev)
			}
			So(len(events), ShouldEqual, 1)
			So(events[0].Err, ShouldBeNil)
			So(events[0].Result.FinalPrompt, ShouldEqual, "P2")
		})

		Convey("失败时只发送错误", func() {
			ch := newService(failWith(errors.New("quota exceeded"))).GenerateStream(ctx, req)

			var events []StreamEvent
			for ev := range ch {
				events = append(events, ev)
			}
			So(len(events), ShouldEqual, 1)
			So(events[0].Result, ShouldBeNil)
			So(events[0].Err.Error(), ShouldContainSubstring, "quota exceeded")
		})

		Convey("模型 panic 时转换为错误事件", func() {
			client := ai.NewMockClient(func(context.Context, string) (string, error) {
				panic("unexpected")
			})
			ch := newService(client).GenerateStream(ctx, req)

			ev, ok := <-ch
			So(ok, ShouldBeTrue)
			So(ev.Err, ShouldNotBeNil)
			_, ok = <-ch
			So(ok, ShouldBeFalse)
		})

		Convey("调用方不读取时后台 goroutine 也能结束", func() {
			cctx, cancel := context.WithCancel(ctx)
			client := ai.NewMockClient(func(ctx context.Context, _ string) (string, error) {
				<-ctx.Done()
				return "", ctx.Err()
			})
			ch := newService(client).GenerateStream(cctx, req)
			cancel()

			ev := <-ch
			So(errors.Is(ev.Err, context.Canceled), ShouldBeTrue)
		})
	})
}

func TestPromptService_Lists(t *testing.T) {
	Convey("列表类操作", t, func() {
		ctx := context.Background()

		Convey("关键指令点按 JSON 数组解析", func() {
			client := replyWith(`["明确角色", "限定格式"]`)
			points, err := newService(client).ThinkingPoints(ctx, &model.ThinkingPointsRequest{
				Description: "旅行助手",
				Language:    "en",
			})
			So(err, ShouldBeNil)
			So(points, ShouldResemble, []string{"明确角色", "限定格式"})
			So(client.Prompts()[0], ShouldContainSubstring, "Please answer in English")
		})

		Convey("优化建议按编号列表解析", func() {
			client := replyWith("1. 增加示例\n2. 明确输出格式")
			advice, err := newService(client).OptimizationAdvice(ctx, &model.OptimizationAdviceRequest{
				PromptToAnalyze: "你是助手",
				PromptType:      "user",
			})
			So(err, ShouldBeNil)
			So(advice, ShouldResemble, []string{"增加示例", "明确输出格式"})
			So(client.Prompts()[0], ShouldContainSubstring, "用户提示词")
		})

		Convey("无法解析时返回原文", func() {
			advice, err := newService(replyWith("   ")).OptimizationAdvice(ctx, &model.OptimizationAdviceRequest{PromptToAnalyze: "p"})
			So(err, ShouldBeNil)
			So(advice, ShouldResemble, []string{"   "})
		})

		Convey("调用失败", func() {
			_, err := newService(failWith(errors.New("boom"))).ThinkingPoints(ctx, &model.ThinkingPointsRequest{Description: "d"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestPromptService_TextOperations(t *testing.T) {
	Convey("文本类操作直接返回模型原文", t, func() {
		ctx := context.Background()

		Convey("系统提示词包含有序的关键指令", func() {
			client := replyWith("你是一名旅行助手")
			text, err := newService(client).SystemPrompt(ctx, &model.SystemPromptRequest{
				Description:    "旅行助手",
				ThinkingPoints: []string{"B", "A"},
			})
			So(err, ShouldBeNil)
			So(text, ShouldEqual, "你是一名旅行助手")
			So(client.Prompts()[0], ShouldContainSubstring, "B\nA")
		})

		Convey("应用优化建议", func() {
			client := replyWith("优化后的提示词")
			text, err := newService(client).ApplyOptimization(ctx, &model.ApplyOptimizationRequest{
				OriginalPrompt: "原始",
				Advice:         []string{"建议一", "建议二"},
			})
			So(err, ShouldBeNil)
			So(text, ShouldEqual, "优化后的提示词")
			p := client.Prompts()[0]
			So(strings.Index(p, "建议一"), ShouldBeLessThan, strings.Index(p, "建议二"))
		})

		Convey("调用失败", func() {
			_, err := newService(failWith(errors.New("boom"))).ApplyOptimization(ctx, &model.ApplyOptimizationRequest{OriginalPrompt: "p"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestPromptService_EmptyModelReply(t *testing.T) {
	Convey("模型回答为空时走解析兜底而不是报错", t, func() {
		ctx := context.Background()
		chatModel := &emptyChatModel{}
		svc := newService(ai.NewEinoClient(chatModel, config.RetryConfig{Attempts: 1}))

		Convey("完整生成返回占位结果", func() {
			result, err := svc.Generate(ctx, &model.PromptGenerationRequest{InputPrompt: "Write a travel assistant"})
			So(err, ShouldBeNil)
			fields := llmparse.PlaceholderFields()
			So(*result, ShouldResemble, model.PromptGenerationResponse{
				KeyIntent:     fields.KeyIntent,
				InitialPrompt: fields.InitialPrompt,
				FinalPrompt:   fields.FinalPrompt,
			})
			So(chatModel.calls, ShouldEqual, 1)
		})

		Convey("关键指令点返回原文", func() {
			points, err := svc.ThinkingPoints(ctx, &model.ThinkingPointsRequest{Description: "旅行助手"})
			So(err, ShouldBeNil)
			So(points, ShouldResemble, []string{""})
		})

		Convey("流式生成发送占位结果", func() {
			ev := <-svc.GenerateStream(ctx, &model.PromptGenerationRequest{InputPrompt: "x"})
			So(ev.Err, ShouldBeNil)
			So(ev.Result.FinalPrompt, ShouldEqual, llmparse.PlaceholderFinalPrompt)
		})
	})
}
