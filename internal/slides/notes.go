package slides

import (
	"fmt"

	"slidesmith/internal/core"
)

// deckText holds the assembler's localized strings: skeleton slide
// titles, chart titles, and the per-purpose speaker note templates.
type deckText struct {
	lang               core.Language
	titles             map[purpose]string
	notes              map[purpose]string // arg: repository full name
	resultNote         string             // args: star count, commit count
	chartContent       string
	conclusionContent  string // arg: repository full name
	languageChartTitle string
	metricsChartTitle  string
}

var deckLocales = map[core.Language]deckText{
	core.LangJA: {
		lang: core.LangJA,
		titles: map[purpose]string{
			purposeChart:          "言語構成",
			purposeIntro:          "はじめに",
			purposeMethods:        "手法",
			purposeImplementation: "実装",
			purposeResults:        "結果",
			purposeAnalysis:       "分析",
			purposeDiscussion:     "考察",
			purposeConclusion:     "まとめ",
		},
		notes: map[purpose]string{
			purposeTitle:          "%s の紹介から始めます。聴衆と目線を合わせましょう。",
			purposeWhy:            "%s が生まれた背景を、自分の言葉で語ってください。",
			purposeProblem:        "%s が向き合う課題を具体的な場面で説明します。",
			purposeApproach:       "%s の設計判断を、なぜそうしたのかを添えて紹介します。",
			purposeChart:          "%s の言語構成をグラフで示し、技術選定の話につなげます。",
			purposeNext:           "%s の今後の計画を共有し、協力を呼びかけましょう。",
			purposeIntro:          "%s の概要と取り組む課題をまとめて導入します。",
			purposeMethods:        "%s で採用した手法を順序立てて説明します。",
			purposeImplementation: "%s の実装の要点をコードを指しながら説明します。",
			purposeAnalysis:       "%s の数値を分析し、傾向を読み解きます。",
			purposeDiscussion:     "%s の結果から言えること、言えないことを整理します。",
			purposeConclusion:     "%s のまとめです。いちばん伝えたい一文で締めくくりましょう。",
		},
		resultNote:         "数字を順に示します。スター %d、コミット %d。勢いを伝えましょう。",
		chartContent:       "リポジトリを構成する言語の内訳です。",
		conclusionContent:  "%s の歩みはまだ続きます。ご清聴ありがとうございました。",
		languageChartTitle: "言語構成比",
		metricsChartTitle:  "リポジトリ指標",
	},
	core.LangEN: {
		lang: core.LangEN,
		titles: map[purpose]string{
			purposeChart:          "Language Breakdown",
			purposeIntro:          "Introduction",
			purposeMethods:        "Methods",
			purposeImplementation: "Implementation",
			purposeResults:        "Results",
			purposeAnalysis:       "Analysis",
			purposeDiscussion:     "Discussion",
			purposeConclusion:     "Conclusion",
		},
		notes: map[purpose]string{
			purposeTitle:          "Open by introducing %s and setting shared context with the audience.",
			purposeWhy:            "Tell the origin story of %s in your own words.",
			purposeProblem:        "Ground the problem %s tackles in a concrete everyday scene.",
			purposeApproach:       "Walk through the design decisions behind %s and why they were made.",
			purposeChart:          "Show the language breakdown of %s and segue into tooling choices.",
			purposeNext:           "Share the roadmap for %s and invite people to contribute.",
			purposeIntro:          "Introduce %s and the problem space in one breath.",
			purposeMethods:        "Explain the methods used in %s step by step.",
			purposeImplementation: "Point at the code while covering the key implementation choices in %s.",
			purposeAnalysis:       "Interpret the numbers behind %s and what trend they suggest.",
			purposeDiscussion:     "Be explicit about what the results of %s do and do not show.",
			purposeConclusion:     "Close %s with the single sentence you most want remembered.",
		},
		resultNote:         "Run through the numbers: %d stars, %d commits. Let the momentum land.",
		chartContent:       "How the repository breaks down by language.",
		conclusionContent:  "The story of %s is still being written. Thank you.",
		languageChartTitle: "Language Share",
		metricsChartTitle:  "Repository Metrics",
	},
	core.LangZH: {
		lang: core.LangZH,
		titles: map[purpose]string{
			purposeChart:          "语言构成",
			purposeIntro:          "引言",
			purposeMethods:        "方法",
			purposeImplementation: "实现",
			purposeResults:        "结果",
			purposeAnalysis:       "分析",
			purposeDiscussion:     "讨论",
			purposeConclusion:     "总结",
		},
		notes: map[purpose]string{
			purposeTitle:          "开场介绍 %s，先和听众建立共同的背景。",
			purposeWhy:            "用自己的话讲述 %s 诞生的故事。",
			purposeProblem:        "用一个具体场景说明 %s 要解决的问题。",
			purposeApproach:       "介绍 %s 的设计决策，并说明背后的原因。",
			purposeChart:          "展示 %s 的语言构成，过渡到技术选型话题。",
			purposeNext:           "分享 %s 的路线图，邀请大家参与。",
			purposeIntro:          "一口气介绍 %s 及其问题领域。",
			purposeMethods:        "按步骤讲解 %s 采用的方法。",
			purposeImplementation: "对照代码讲解 %s 的关键实现。",
			purposeAnalysis:       "解读 %s 背后的数字和趋势。",
			purposeDiscussion:     "明确 %s 的结果能说明什么、不能说明什么。",
			purposeConclusion:     "用一句最想让人记住的话为 %s 收尾。",
		},
		resultNote:         "依次展示数字：%d 个星标、%d 次提交。让势头说话。",
		chartContent:       "仓库的语言构成一览。",
		conclusionContent:  "%s 的故事仍在继续。谢谢大家。",
		languageChartTitle: "语言占比",
		metricsChartTitle:  "仓库指标",
	},
}

// deckTextFor resolves the deck locale, defaulting to ja for anything
// unrecognized so titles and notes are never empty.
func deckTextFor(lang core.Language) deckText {
	if txt, ok := deckLocales[lang]; ok {
		return txt
	}
	return deckLocales[core.LangJA]
}

// speakerNotes renders the note for a slide purpose. Every template
// interpolates the repository name or a metric, so notes are never
// empty regardless of how sparse the metadata is.
func speakerNotes(p purpose, meta *core.RepositoryMetadata, txt deckText) string {
	if p == purposeResult || p == purposeResults {
		return fmt.Sprintf(txt.resultNote, meta.Stars, len(meta.Commits))
	}
	return fmt.Sprintf(txt.notes[p], meta.FullName())
}
