// Package llmparse 从大模型返回的自由文本中提取结构化数据
//
// 所有解析函数都不会返回错误或 panic：解析失败时降级为兜底值
// （原文单元素列表、空列表或占位三元组）。
package llmparse

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// Source 标识解析结果来自哪条解析路径（用于日志和指标）
type Source string

const (
	SourceJSON        Source = "json"        // 标准 JSON 解码（含 jsonrepair 修复）
	SourceQuoted      Source = "quoted"      // 双引号片段扫描
	SourceSplit       Source = "split"       // 逗号切分
	SourceLines       Source = "lines"       // 按行解析
	SourceRaw         Source = "raw"         // 原文兜底
	SourceFields      Source = "fields"      // 字段正则提取
	SourcePlaceholder Source = "placeholder" // 占位兜底
)

// 结构化结果的占位默认值
const (
	PlaceholderKeyIntent     = "从用户需求中提取的关键意图信息"
	PlaceholderInitialPrompt = "基于用户需求生成的初版提示词"
	PlaceholderFinalPrompt   = "经过优化的最终提示词"
)

var (
	quotedPattern     = regexp.MustCompile(`"([^"]*)"`)
	commaPattern      = regexp.MustCompile(`,\s*`)
	listMarkerPattern = regexp.MustCompile(`^(?:\d+\.\s*|[-*]\s*)`)

	keyIntentPattern     = fieldPattern("keyIntent")
	initialPromptPattern = fieldPattern("initialPrompt")
	finalPromptPattern   = fieldPattern("finalPrompt")
)

// fieldPattern 匹配 "name": "value"，value 中不能包含双引号
func fieldPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`"` + name + `"\s*:\s*"([^"]+)"`)
}

// ListResult 列表解析结果
type ListResult struct {
	Items  []string
	Source Source
}

// Fields 结构化提示词字段
type Fields struct {
	KeyIntent     string
	InitialPrompt string
	FinalPrompt   string
}

// FieldsResult 结构化解析结果
type FieldsResult struct {
	Fields Fields
	Source Source
}

// PlaceholderFields 返回占位三元组
func PlaceholderFields() Fields {
	return Fields{
		KeyIntent:     PlaceholderKeyIntent,
		InitialPrompt: PlaceholderInitialPrompt,
		FinalPrompt:   PlaceholderFinalPrompt,
	}
}

// ExtractBracketed 提取从第一个 open 到最后一个 close 之间（含两端）的子串
// 注意：不做括号配对，多个或嵌套的数组/对象会被合并成一段
func ExtractBracketed(text string, open, close byte) (string, bool) {
	start := strings.IndexByte(text, open)
	if start < 0 {
		return "", false
	}
	end := strings.LastIndexByte(text, close)
	if end < start {
		return "", false
	}
	return text[start : end+1], true
}

// ParseStringArray 将类 JSON 数组文本解析为字符串列表，失败时返回空列表
func ParseStringArray(jsonLike string) []string {
	items, _ := parseStringArray(jsonLike)
	return items
}

func parseStringArray(jsonLike string) (items []string, source Source) {
	defer func() {
		if r := recover(); r != nil {
			items, source = []string{}, SourceRaw
		}
	}()

	if decoded, ok := decodeStringArray(jsonLike); ok {
		return decoded, SourceJSON
	}

	body := strings.TrimSpace(jsonLike)
	body = strings.TrimPrefix(body, "[")
	body = strings.TrimSuffix(body, "]")

	if quoted := parseQuoted(body); len(quoted) > 0 {
		return quoted, SourceQuoted
	}
	return parseSplit(body), SourceSplit
}

// decodeStringArray 先按标准 JSON 解码，失败后用 jsonrepair 修复再解码一次
func decodeStringArray(s string) ([]string, bool) {
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err == nil && out != nil {
		return out, true
	}
	repaired, err := jsonrepair.JSONRepair(s)
	if err != nil {
		return nil, false
	}
	out = nil
	if err := json.Unmarshal([]byte(repaired), &out); err != nil || out == nil {
		return nil, false
	}
	return out, true
}

// parseQuoted 收集所有双引号片段
// 片段内部不能出现双引号，因此 \" 会把片段截断在反斜杠处
func parseQuoted(body string) []string {
	matches := quotedPattern.FindAllStringSubmatch(body, -1)
	result := make([]string, 0, len(matches))
	for _, m := range matches {
		result = append(result, unescapeQuotes(m[1]))
	}
	return result
}

func parseSplit(body string) []string {
	result := make([]string, 0)
	for _, item := range commaPattern.Split(body, -1) {
		item = strings.TrimSpace(item)
		if len(item) >= 2 && strings.HasPrefix(item, `"`) && strings.HasSuffix(item, `"`) {
			item = item[1 : len(item)-1]
		}
		item = unescapeQuotes(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

// ParseListResponse 将模型返回的文本解析为有序列表
func ParseListResponse(raw string) []string {
	return ParseList(raw).Items
}

// ParseList 解析列表响应并返回解析路径
// 1. 存在 [...] 时按数组解析（结果可能为空）
// 2. 否则按行解析，去掉 "1." / "-" / "*" 等编号前缀
// 3. 按行解析为空或出现异常时返回只含原文的列表
func ParseList(raw string) (result ListResult) {
	defer func() {
		if r := recover(); r != nil {
			result = ListResult{Items: []string{raw}, Source: SourceRaw}
		}
	}()

	if arr, ok := ExtractBracketed(raw, '[', ']'); ok && arr != "" {
		items, source := parseStringArray(arr)
		return ListResult{Items: items, Source: source}
	}

	lines := parseLines(raw)
	if len(lines) == 0 {
		return ListResult{Items: []string{raw}, Source: SourceRaw}
	}
	return ListResult{Items: lines, Source: SourceLines}
}

func parseLines(raw string) []string {
	result := make([]string, 0)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(listMarkerPattern.ReplaceAllString(line, ""))
		if line != "" {
			result = append(result, line)
		}
	}
	return result
}

// ParseStructuredFields 提取 keyIntent / initialPrompt / finalPrompt
func ParseStructuredFields(raw string) Fields {
	return ParseFields(raw).Fields
}

// ParseFields 解析结构化响应并返回解析路径
// 找不到 {...} 或出现异常时整体返回占位三元组；部分字段缺失时不做补齐
func ParseFields(raw string) (result FieldsResult) {
	defer func() {
		if r := recover(); r != nil {
			result = FieldsResult{Fields: PlaceholderFields(), Source: SourcePlaceholder}
		}
	}()

	obj, ok := ExtractBracketed(raw, '{', '}')
	if !ok || obj == "" {
		return FieldsResult{Fields: PlaceholderFields(), Source: SourcePlaceholder}
	}

	if fields, ok := decodeFields(obj); ok {
		return FieldsResult{Fields: fields, Source: SourceJSON}
	}
	return FieldsResult{Fields: matchFields(obj), Source: SourceFields}
}

type fieldsJSON struct {
	KeyIntent     string `json:"keyIntent"`
	InitialPrompt string `json:"initialPrompt"`
	FinalPrompt   string `json:"finalPrompt"`
}

func decodeFields(s string) (Fields, bool) {
	var out fieldsJSON
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		repaired, rerr := jsonrepair.JSONRepair(s)
		if rerr != nil {
			return Fields{}, false
		}
		out = fieldsJSON{}
		if err := json.Unmarshal([]byte(repaired), &out); err != nil {
			return Fields{}, false
		}
	}
	return Fields(out), true
}

// matchFields 正则提取字段值，值内的 \" 会截断（正则不允许值中出现双引号）
func matchFields(obj string) Fields {
	return Fields{
		KeyIntent:     matchField(keyIntentPattern, obj),
		InitialPrompt: matchField(initialPromptPattern, obj),
		FinalPrompt:   matchField(finalPromptPattern, obj),
	}
}

func matchField(p *regexp.Regexp, obj string) string {
	m := p.FindStringSubmatch(obj)
	if len(m) < 2 {
		return ""
	}
	return unescapeQuotes(m[1])
}

func unescapeQuotes(s string) string {
	return strings.ReplaceAll(s, `\"`, `"`)
}
