package prompt

import (
	"errors"
	"fmt"
	"strings"
)

// Operation 提示词生成操作
type Operation string

const (
	OpThinkingPoints     Operation = "thinking_points"
	OpSystemPrompt       Operation = "system_prompt"
	OpOptimizationAdvice Operation = "optimization_advice"
	OpApplyOptimization  Operation = "apply_optimization"
	OpComplete           Operation = "complete"
)

const (
	LanguageZH = "zh"
	LanguageEN = "en"

	PromptTypeSystem = "system"
	PromptTypeUser   = "user"
)

const (
	instructionZH = "请用中文回答"
	instructionEN = "Please answer in English"

	labelSystemPrompt = "系统提示词"
	labelUserPrompt   = "用户提示词"
)

// ErrUnknownOperation 未知的生成操作
var ErrUnknownOperation = errors.New("unknown prompt operation")

// Params 构建提示词的参数，不同操作使用其中的不同字段
type Params struct {
	Description    string   // 用户需求描述（thinking_points / system_prompt / complete）
	Language       string   // zh | en，其他值按中文处理
	PromptType     string   // system | user，其他值按系统提示词处理
	ThinkingPoints []string // 关键指令点
	Prompt         string   // 待分析或待优化的提示词
	Advice         []string // 优化建议
}

// Build 根据操作类型构建提示词
func Build(op Operation, p Params) (string, error) {
	switch op {
	case OpThinkingPoints:
		return ThinkingPoints(p.Description, p.Language), nil
	case OpSystemPrompt:
		return SystemPrompt(p.Description, p.Language, p.ThinkingPoints), nil
	case OpOptimizationAdvice:
		return OptimizationAdvice(p.Prompt, p.PromptType, p.Language), nil
	case OpApplyOptimization:
		return ApplyOptimization(p.Prompt, p.Advice, p.PromptType, p.Language), nil
	case OpComplete:
		return Complete(p.Description, p.Language), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
}

// LanguageInstruction 返回回答语言要求，只有 en 使用英文
func LanguageInstruction(language string) string {
	if strings.EqualFold(language, LanguageEN) {
		return instructionEN
	}
	return instructionZH
}

// PromptTypeLabel 返回提示词类型名称
func PromptTypeLabel(promptType string) string {
	if strings.EqualFold(promptType, PromptTypeUser) {
		return labelUserPrompt
	}
	return labelSystemPrompt
}

// ThinkingPoints 关键指令点生成提示词
func ThinkingPoints(description, language string) string {
	return fmt.Sprintf(
		"你是一个专业的提示词工程师。请分析用户的需求，提取生成高质量系统提示词的关键指令点。\n\n"+
			"用户需求描述：\n%s\n\n"+
			"%s\n\n"+
			"请返回一个包含关键指令点的列表，每个指令点应该是一个独立的、具体的建议，用于指导系统提示词的生成。"+
			"请将结果以JSON数组格式返回，例如：[\"指令1\", \"指令2\", \"指令3\"]",
		description, LanguageInstruction(language),
	)
}

// SystemPrompt 系统提示词生成提示词
func SystemPrompt(description, language string, thinkingPoints []string) string {
	return fmt.Sprintf(
		"你是一个专业的提示词工程师。请根据用户的需求和关键指令点，生成一个高质量的系统提示词。\n\n"+
			"用户需求描述：\n%s\n\n"+
			"关键指令点：\n%s\n\n"+
			"%s\n\n"+
			"请返回生成的系统提示词，不要包含任何其他解释或标记。",
		description, strings.Join(thinkingPoints, "\n"), LanguageInstruction(language),
	)
}

// OptimizationAdvice 优化建议生成提示词
func OptimizationAdvice(promptToAnalyze, promptType, language string) string {
	return fmt.Sprintf(
		"你是一个专业的提示词工程师。请分析给定的%s，提供优化建议。\n\n"+
			"待分析的提示词：\n%s\n\n"+
			"%s\n\n"+
			"请返回一个包含优化建议的列表，每个建议应该是一个独立的、具体的改进点。"+
			"请将结果以JSON数组格式返回，例如：[\"建议1\", \"建议2\", \"建议3\"]",
		PromptTypeLabel(promptType), promptToAnalyze, LanguageInstruction(language),
	)
}

// ApplyOptimization 应用优化建议提示词
func ApplyOptimization(originalPrompt string, advice []string, promptType, language string) string {
	return fmt.Sprintf(
		"你是一个专业的提示词工程师。请将给定的优化建议应用到原始的%s中，生成优化后的提示词。\n\n"+
			"原始提示词：\n%s\n\n"+
			"优化建议：\n%s\n\n"+
			"%s\n\n"+
			"请返回应用优化建议后的提示词，不要包含任何其他解释或标记。",
		PromptTypeLabel(promptType), originalPrompt, strings.Join(advice, "\n"), LanguageInstruction(language),
	)
}

// Complete 一次性生成关键意图、初版和最终提示词
func Complete(inputPrompt, language string) string {
	return fmt.Sprintf(
		"你是一个专业的提示词工程师。请按照以下步骤生成高质量的提示词：\n\n"+
			"1. 首先分析用户的需求，提取关键意图信息\n"+
			"2. 基于关键意图为用户生成一个初版提示词\n"+
			"3. 对初版提示词进行优化，生成最终的高质量提示词\n\n"+
			"%s\n\n"+
			"请严格按照以下JSON格式返回结果，不要包含任何其他内容：\n"+
			"{\n"+
			"    \"keyIntent\": \"关键意图信息\",\n"+
			"    \"initialPrompt\": \"初版提示词\",\n"+
			"    \"finalPrompt\": \"最终提示词\"\n"+
			"}\n\n"+
			"用户需求：%s",
		LanguageInstruction(language), inputPrompt,
	)
}
