package narrative

import "slidesmith/internal/core"

// localeText holds every localized string the section generators need.
// Format slots are positional and documented per field; keep the arg
// order in sync with generator.go.
type localeText struct {
	whyTitle      string
	problemTitle  string
	approachTitle string
	resultTitle   string
	nextTitle     string

	whyWithDesc string // args: full name, description
	whyGeneric  string // args: full name, kind phrase

	problemContent string // args: kind phrase
	problemSparse  string // args: full name

	approachContent      string // args: architecture label, primary language
	approachGeneric      string // args: architecture label
	approachFrameworks   string // args: joined framework list
	approachNoFrameworks string

	resultContent string // args: full name, maturity phrase
	nextContent   string // args: full name

	starsBullet   string // arg: star count
	forksBullet   string // arg: fork count
	commitsBullet string // arg: commit count
	filesBullet   string // arg: file count
	langBullet    string // arg: primary language
	archBullet    string // arg: architecture label

	noTestsBullet       string
	thinDocsBullet      string
	manyLangsBullet     string
	keepShippingBullet  string
	addTestsBullet      string
	writeDocsBullet     string
	growCommunityBullet string

	hookDerived string // arg: description
	hooks       []string

	complexity map[core.ComplexityTier]string
	maturity   map[core.MaturityTier]string
}

var locales = map[core.Language]localeText{
	core.LangJA: {
		whyTitle:      "なぜ作ったのか",
		problemTitle:  "解決したい課題",
		approachTitle: "アプローチ",
		resultTitle:   "成果",
		nextTitle:     "これから",

		whyWithDesc: "%s は「%s」という思いから生まれました。",
		whyGeneric:  "%s は、%sとして開発されました。",

		problemContent: "%sには、使う人の手間を減らし、確実に動き続けるという課題がつきまといます。このプロジェクトはその課題に正面から取り組んでいます。",
		problemSparse:  "%s が取り組む課題の詳細は公開情報からは限られていますが、リポジトリの構成からその方向性が読み取れます。",

		approachContent:      "設計は %s を軸に、主要言語 %s で実装されています。",
		approachGeneric:      "設計は %s を軸に構成されています。",
		approachFrameworks:   "技術スタックには %s を採用しています。",
		approachNoFrameworks: "外部フレームワークに頼らない、素朴で見通しのよい構成です。",

		resultContent: "%s は現在、%sの段階にあります。数字がその歩みを物語ります。",
		nextContent:   "%s の次の一歩は、いまある土台をさらに固めることです。",

		starsBullet:   "GitHub スター数: %d",
		forksBullet:   "フォーク数: %d",
		commitsBullet: "コミット数: %d",
		filesBullet:   "ファイル数: %d",
		langBullet:    "主要言語: %s",
		archBullet:    "アーキテクチャ: %s",

		noTestsBullet:       "自動テストが見当たらない",
		thinDocsBullet:      "ドキュメントが少ない",
		manyLangsBullet:     "言語が多く保守コストが高い",
		keepShippingBullet:  "継続的なリリースを続ける",
		addTestsBullet:      "自動テストを整備する",
		writeDocsBullet:     "ドキュメントを充実させる",
		growCommunityBullet: "コミュニティを育てる",

		hookDerived: "もし「%s」が当たり前になったら、何が変わるでしょうか？",
		hooks: []string{
			"このツールが生まれた背景を想像できますか？",
			"毎日の開発で、いちばん時間を奪われているのは何でしょうか？",
			"良いソフトウェアは、どこから始まると思いますか？",
		},

		complexity: map[core.ComplexityTier]string{
			core.ComplexityLow:    "小さく保たれた構成",
			core.ComplexityMedium: "ほどよい規模の構成",
			core.ComplexityHigh:   "大規模で複雑な構成",
		},
		maturity: map[core.MaturityTier]string{
			core.MaturityEarly:      "立ち上げ期",
			core.MaturityDeveloping: "成長期",
			core.MaturityMature:     "成熟期",
		},
	},
	core.LangEN: {
		whyTitle:      "Why This Exists",
		problemTitle:  "The Problem",
		approachTitle: "The Approach",
		resultTitle:   "Where It Stands",
		nextTitle:     "What Comes Next",

		whyWithDesc: "%s started with a simple idea: %s.",
		whyGeneric:  "%s was built as %s.",

		problemContent: "Building %s means fighting two constant battles: saving its users time, and staying reliable while doing it. This project takes both head on.",
		problemSparse:  "Public information about the problem %s tackles is thin, but the shape of the repository tells its own story.",

		approachContent:      "The design leans on a %s structure, implemented primarily in %s.",
		approachGeneric:      "The design leans on a %s structure.",
		approachFrameworks:   "The stack brings in %s.",
		approachNoFrameworks: "It deliberately keeps the stack lean, with little reliance on external frameworks.",

		resultContent: "Today %s is in its %s. The numbers trace the journey.",
		nextContent:   "The next step for %s is consolidating the foundation it already has.",

		starsBullet:   "GitHub stars: %d",
		forksBullet:   "Forks: %d",
		commitsBullet: "Commits: %d",
		filesBullet:   "Files: %d",
		langBullet:    "Primary language: %s",
		archBullet:    "Architecture: %s",

		noTestsBullet:       "No automated tests detected",
		thinDocsBullet:      "Documentation is thin",
		manyLangsBullet:     "Many languages raise maintenance cost",
		keepShippingBullet:  "Keep shipping regularly",
		addTestsBullet:      "Build out automated tests",
		writeDocsBullet:     "Invest in documentation",
		growCommunityBullet: "Grow the community",

		hookDerived: "What if \"%s\" were something you never had to think about?",
		hooks: []string{
			"Can you picture the itch that started this project?",
			"What steals the most time from your day as a developer?",
			"Where does good software actually begin?",
		},

		complexity: map[core.ComplexityTier]string{
			core.ComplexityLow:    "deliberately small codebase",
			core.ComplexityMedium: "moderately sized codebase",
			core.ComplexityHigh:   "large, complex codebase",
		},
		maturity: map[core.MaturityTier]string{
			core.MaturityEarly:      "early days",
			core.MaturityDeveloping: "growth phase",
			core.MaturityMature:     "mature phase",
		},
	},
	core.LangZH: {
		whyTitle:      "为什么要做这个",
		problemTitle:  "要解决的问题",
		approachTitle: "实现思路",
		resultTitle:   "目前的成果",
		nextTitle:     "下一步",

		whyWithDesc: "%s 源于一个朴素的想法：%s。",
		whyGeneric:  "%s 是%s。",

		problemContent: "做%s，意味着要同时面对两件事：为使用者节省时间，并且稳定可靠地运行。这个项目正面迎向这两个挑战。",
		problemSparse:  "关于 %s 要解决的问题，公开信息有限，但仓库本身的结构已经说明了方向。",

		approachContent:      "整体设计以 %s 为骨架，主要使用 %s 实现。",
		approachGeneric:      "整体设计以 %s 为骨架。",
		approachFrameworks:   "技术栈包括 %s。",
		approachNoFrameworks: "项目刻意保持精简，几乎不依赖外部框架。",

		resultContent: "如今 %s 正处于%s。下面的数字记录了它的轨迹。",
		nextContent:   "%s 的下一步，是把已有的基础夯得更实。",

		starsBullet:   "GitHub 星标数: %d",
		forksBullet:   "Fork 数: %d",
		commitsBullet: "提交数: %d",
		filesBullet:   "文件数: %d",
		langBullet:    "主要语言: %s",
		archBullet:    "架构: %s",

		noTestsBullet:       "未发现自动化测试",
		thinDocsBullet:      "文档较少",
		manyLangsBullet:     "语言种类多，维护成本高",
		keepShippingBullet:  "保持持续发布",
		addTestsBullet:      "补齐自动化测试",
		writeDocsBullet:     "完善文档",
		growCommunityBullet: "壮大社区",

		hookDerived: "如果“%s”变得理所当然，会发生什么？",
		hooks: []string{
			"你能想象这个项目诞生时的那个痛点吗？",
			"在日常开发中，最消耗你时间的是什么？",
			"好的软件，究竟从哪里开始？",
		},

		complexity: map[core.ComplexityTier]string{
			core.ComplexityLow:    "小而精的代码库",
			core.ComplexityMedium: "中等规模的代码库",
			core.ComplexityHigh:   "庞大而复杂的代码库",
		},
		maturity: map[core.MaturityTier]string{
			core.MaturityEarly:      "起步阶段",
			core.MaturityDeveloping: "成长阶段",
			core.MaturityMature:     "成熟阶段",
		},
	},
}

// textFor returns the locale table for lang, falling back to the
// default language (ja) for anything unrecognized.
func textFor(lang core.Language) localeText {
	if txt, ok := locales[lang]; ok {
		return txt
	}
	return locales[core.LangJA]
}
