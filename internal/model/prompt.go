package model

// PromptGenerationRequest 完整提示词生成请求
type PromptGenerationRequest struct {
	InputPrompt string `json:"inputPrompt" binding:"required,notblank"` // 提示词需求描述（必填）
	Language    string `json:"language,omitempty"`                      // 回答语言：zh/en，默认 zh
}

// PromptGenerationResponse 完整提示词生成结果
type PromptGenerationResponse struct {
	KeyIntent     string `json:"keyIntent"`     // 关键意图信息
	InitialPrompt string `json:"initialPrompt"` // 初版提示词
	FinalPrompt   string `json:"finalPrompt"`   // 最终提示词
}

// ThinkingPointsRequest 关键指令点生成请求
type ThinkingPointsRequest struct {
	Description string `json:"description" binding:"required,notblank"` // 需求描述（必填）
	Language    string `json:"language,omitempty"`                      // zh/en
}

// SystemPromptRequest 系统提示词生成请求
type SystemPromptRequest struct {
	Description    string   `json:"description" binding:"required,notblank"` // 需求描述（必填）
	Language       string   `json:"language,omitempty"`                      // zh/en
	ThinkingPoints []string `json:"thinkingPoints,omitempty"`                // 关键指令点（有序）
}

// OptimizationAdviceRequest 优化建议生成请求
type OptimizationAdviceRequest struct {
	PromptToAnalyze string `json:"promptToAnalyze" binding:"required,notblank"` // 待分析的提示词（必填）
	PromptType      string `json:"promptType,omitempty"`                        // system/user，默认 system
	Language        string `json:"language,omitempty"`                          // zh/en
}

// ApplyOptimizationRequest 应用优化建议请求
type ApplyOptimizationRequest struct {
	OriginalPrompt string   `json:"originalPrompt" binding:"required,notblank"` // 原始提示词（必填）
	Advice         []string `json:"advice,omitempty"`                           // 优化建议（有序）
	PromptType     string   `json:"promptType,omitempty"`                       // system/user
	Language       string   `json:"language,omitempty"`                         // zh/en
}
