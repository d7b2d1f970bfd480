package prompt

import (
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLanguageInstruction(t *testing.T) {
	Convey("语言选择只认 en", t, func() {
		So(LanguageInstruction("en"), ShouldEqual, instructionEN)
		So(LanguageInstruction("EN"), ShouldEqual, instructionEN)
		So(LanguageInstruction("zh"), ShouldEqual, instructionZH)
		So(LanguageInstruction(""), ShouldEqual, instructionZH)
		So(LanguageInstruction("fr"), ShouldEqual, instructionZH)
	})
}

func TestPromptTypeLabel(t *testing.T) {
	Convey("提示词类型只认 user", t, func() {
		So(PromptTypeLabel("user"), ShouldEqual, labelUserPrompt)
		So(PromptTypeLabel("User"), ShouldEqual, labelUserPrompt)
		So(PromptTypeLabel("system"), ShouldEqual, labelSystemPrompt)
		So(PromptTypeLabel(""), ShouldEqual, labelSystemPrompt)
	})
}

func TestBuild(t *testing.T) {
	Convey("Build 渲染各操作的提示词", t, func() {
		Convey("关键指令点", func() {
			s, err := Build(OpThinkingPoints, Params{Description: "写一个旅行助手", Language: "en"})
			So(err, ShouldBeNil)
			So(s, ShouldContainSubstring, "写一个旅行助手")
			So(s, ShouldContainSubstring, instructionEN)
			So(s, ShouldNotContainSubstring, instructionZH)
		})

		Convey("未指定语言时使用中文", func() {
			s, err := Build(OpThinkingPoints, Params{Description: "d"})
			So(err, ShouldBeNil)
			So(s, ShouldContainSubstring, instructionZH)
		})

		Convey("系统提示词保留关键指令顺序", func() {
			s, err := Build(OpSystemPrompt, Params{
				Description:    "d",
				ThinkingPoints: []string{"第三", "第一", "第二"},
			})
			So(err, ShouldBeNil)
			So(s, ShouldContainSubstring, "关键指令点：\n第三\n第一\n第二\n\n")
		})

		Convey("优化建议使用用户提示词标签", func() {
			s, err := Build(OpOptimizationAdvice, Params{Prompt: "原始内容", PromptType: "user"})
			So(err, ShouldBeNil)
			So(s, ShouldContainSubstring, "请分析给定的用户提示词")
			So(s, ShouldContainSubstring, "原始内容")
		})

		Convey("应用优化保留建议顺序", func() {
			s, err := Build(OpApplyOptimization, Params{
				Prompt:   "原始内容",
				Advice:   []string{"b", "a"},
				Language: "en",
			})
			So(err, ShouldBeNil)
			So(s, ShouldContainSubstring, "原始的系统提示词")
			So(s, ShouldContainSubstring, "优化建议：\nb\na\n\n")
			So(strings.Index(s, "原始内容"), ShouldBeLessThan, strings.Index(s, "优化建议："))
		})

		Convey("空建议列表得到空块", func() {
			s := ApplyOptimization("p", nil, "", "")
			So(s, ShouldContainSubstring, "优化建议：\n\n\n")
		})

		Convey("完整流程包含用户需求和 JSON 格式要求", func() {
			s, err := Build(OpComplete, Params{Description: "Write a travel assistant"})
			So(err, ShouldBeNil)
			So(s, ShouldEndWith, "用户需求：Write a travel assistant")
			So(s, ShouldContainSubstring, `"keyIntent"`)
			So(s, ShouldContainSubstring, instructionZH)
		})

		Convey("用户输入不做转义", func() {
			s := ThinkingPoints("%s {x} \"q\"", "")
			So(s, ShouldContainSubstring, "%s {x} \"q\"")
		})

		Convey("未知操作", func() {
			_, err := Build(Operation("unknown"), Params{})
			So(errors.Is(err, ErrUnknownOperation), ShouldBeTrue)
		})
	})
}
