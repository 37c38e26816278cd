package narrative

import (
	"strings"

	"slidesmith/internal/core"
)

// projectKind selects the template family used by the section
// generators. Detection is lexical: tokens in the repository name and
// description choose a specialized family, otherwise the generic one.
type projectKind string

const (
	kindAPI       projectKind = "api"
	kindDashboard projectKind = "dashboard"
	kindLearning  projectKind = "learning"
	kindCLI       projectKind = "cli"
	kindBot       projectKind = "bot"
	kindLibrary   projectKind = "library"
	kindGeneric   projectKind = "generic"
)

// kindTokens are checked in order; the first family with a matching
// token wins, so more specific families come first.
var kindTokens = []struct {
	kind   projectKind
	tokens []string
}{
	{kindLearning, []string{"toeic", "learn", "study", "quiz", "flashcard", "vocab", "exam"}},
	{kindDashboard, []string{"dashboard", "admin", "analytics", "monitor", "metrics"}},
	{kindBot, []string{"bot", "agent", "assistant", "chat"}},
	{kindAPI, []string{"api", "backend", "server", "rest", "graphql", "service"}},
	{kindCLI, []string{"cli", "tool", "command", "terminal"}},
	{kindLibrary, []string{"lib", "sdk", "framework", "plugin", "package"}},
}

func detectKind(meta *core.RepositoryMetadata, hints *Hints) projectKind {
	haystack := strings.ToLower(meta.Name + " " + meta.Description)
	if hints != nil && hints.Purpose != "" {
		haystack += " " + strings.ToLower(hints.Purpose)
	}
	for _, entry := range kindTokens {
		for _, token := range entry.tokens {
			if strings.Contains(haystack, token) {
				return entry.kind
			}
		}
	}
	return kindGeneric
}

// kindPhrases describe what each family of project does, used to fill
// template slots. Families without a translation fall back to ja.
var kindPhrases = map[projectKind]map[core.Language]string{
	kindAPI: {
		core.LangJA: "外部に機能を提供するAPIサービス",
		core.LangEN: "an API service exposing functionality to other systems",
		core.LangZH: "向外部系统提供功能的 API 服务",
	},
	kindDashboard: {
		core.LangJA: "データを可視化するダッシュボード",
		core.LangEN: "a dashboard that turns raw data into something you can see",
		core.LangZH: "将数据可视化的仪表盘",
	},
	kindLearning: {
		core.LangJA: "学習を支援するアプリケーション",
		core.LangEN: "an application that helps people learn",
	},
	kindCLI: {
		core.LangJA: "開発者の作業を自動化するコマンドラインツール",
		core.LangEN: "a command-line tool that automates developer work",
		core.LangZH: "为开发者自动化工作的命令行工具",
	},
	kindBot: {
		core.LangJA: "対話型のボット",
		core.LangEN: "a conversational bot",
		core.LangZH: "一个对话式机器人",
	},
	kindLibrary: {
		core.LangJA: "他のプロジェクトから再利用できるライブラリ",
		core.LangEN: "a library built to be reused by other projects",
		core.LangZH: "可被其他项目复用的程序库",
	},
	kindGeneric: {
		core.LangJA: "実際の課題を解決するソフトウェア",
		core.LangEN: "software built to solve a real problem",
		core.LangZH: "为解决实际问题而构建的软件",
	},
}

func kindPhrase(kind projectKind, lang core.Language) string {
	phrases, ok := kindPhrases[kind]
	if !ok {
		phrases = kindPhrases[kindGeneric]
	}
	if phrase, ok := phrases[lang]; ok && phrase != "" {
		return phrase
	}
	// Missing translations fall back to the default language.
	return phrases[core.LangJA]
}
