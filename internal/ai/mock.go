package ai

import (
	"context"
	"strings"
	"sync"
)

// ProviderMock 本地联调用的模拟 Provider，不访问任何外部服务
const ProviderMock = "mock"

// MockClient ChatClient 的模拟实现（用于单测和本地联调）
type MockClient struct {
	mu      sync.Mutex
	fn      func(ctx context.Context, prompt string) (string, error)
	prompts []string
}

// NewMockClient 创建模拟客户端，fn 为空时使用默认的固定回答
func NewMockClient(fn func(ctx context.Context, prompt string) (string, error)) *MockClient {
	if fn == nil {
		fn = defaultMockResponse
	}
	return &MockClient{fn: fn}
}

// Generate 记录提示词并返回 fn 的结果
func (m *MockClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()
	return m.fn(ctx, prompt)
}

// Calls 返回调用次数
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// Prompts 返回收到的所有提示词
func (m *MockClient) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

func defaultMockResponse(_ context.Context, prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, `"keyIntent"`):
		return `{"keyIntent":"模拟关键意图","initialPrompt":"模拟初版提示词","finalPrompt":"模拟最终提示词"}`, nil
	case strings.Contains(prompt, "JSON数组"):
		return `["模拟条目1", "模拟条目2"]`, nil
	default:
		return "模拟生成的提示词", nil
	}
}
