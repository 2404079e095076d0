package parser

import (
	"sort"
	"strings"
)

// SkillEntry 一个规范技能名及其全部小写文本变体
type SkillEntry struct {
	Canonical string
	Variants  []string
}

// SkillTaxonomy 静态技能表：规范名 -> 文本变体集合
// 构建后只读，可在所有解析之间无锁共享
type SkillTaxonomy struct {
	entries []SkillEntry
}

// defaultSkillEntries 内置技能表
// 规范名统一存小写，输出时再做Title Case规范化
var defaultSkillEntries = []SkillEntry{
	// 编程语言
	{"python", []string{"python"}},
	{"java", []string{"java"}},
	{"javascript", []string{"javascript", "java script"}},
	{"typescript", []string{"typescript"}},
	{"c++", []string{"c++", "cpp"}},
	{"c#", []string{"c#", "csharp"}},
	{"go", []string{"golang", "go lang"}},
	{"rust", []string{"rust"}},
	{"ruby", []string{"ruby"}},
	{"php", []string{"php"}},
	{"swift", []string{"swift"}},
	{"kotlin", []string{"kotlin"}},
	{"scala", []string{"scala"}},
	{"r", []string{"r programming"}},
	{"sql", []string{"sql"}},
	{"html", []string{"html", "html5"}},
	{"css", []string{"css", "css3"}},
	// Web框架
	{"react", []string{"react", "reactjs", "react.js"}},
	{"angular", []string{"angular", "angularjs", "angular.js"}},
	{"vue", []string{"vue", "vuejs", "vue.js"}},
	{"node.js", []string{"node.js", "nodejs", "node js"}},
	{"express", []string{"express.js", "expressjs"}},
	{"django", []string{"django"}},
	{"flask", []string{"flask"}},
	{"fastapi", []string{"fastapi"}},
	{"spring", []string{"spring boot", "springboot", "spring framework"}},
	{"graphql", []string{"graphql"}},
	{"rest", []string{"rest api", "restful", "rest apis"}},
	// 数据库
	{"mongodb", []string{"mongodb", "mongo"}},
	{"postgresql", []string{"postgresql", "postgres"}},
	{"mysql", []string{"mysql"}},
	{"sqlite", []string{"sqlite"}},
	{"redis", []string{"redis"}},
	{"elasticsearch", []string{"elasticsearch", "elastic search"}},
	{"kafka", []string{"kafka", "apache kafka"}},
	// 云与DevOps
	{"aws", []string{"aws", "amazon web services"}},
	{"azure", []string{"azure", "microsoft azure"}},
	{"gcp", []string{"gcp", "google cloud"}},
	{"docker", []string{"docker"}},
	{"kubernetes", []string{"kubernetes", "k8s"}},
	{"terraform", []string{"terraform"}},
	{"jenkins", []string{"jenkins"}},
	{"ci/cd", []string{"ci/cd", "cicd", "ci cd"}},
	{"git", []string{"git", "github", "gitlab"}},
	{"linux", []string{"linux", "unix"}},
	// 机器学习
	{"machine learning", []string{"machine learning"}},
	{"deep learning", []string{"deep learning"}},
	{"nlp", []string{"nlp", "natural language processing"}},
	{"computer vision", []string{"computer vision"}},
	{"tensorflow", []string{"tensorflow"}},
	{"pytorch", []string{"pytorch"}},
	{"pandas", []string{"pandas"}},
	{"numpy", []string{"numpy"}},
	// 方法论与工具
	{"agile", []string{"agile"}},
	{"scrum", []string{"scrum"}},
	{"jira", []string{"jira"}},
}

// NewSkillTaxonomy 构建技能表，extra中的条目与内置表合并
// 同名条目的变体取并集；变体统一转为小写
func NewSkillTaxonomy(extra map[string][]string) *SkillTaxonomy {
	index := make(map[string]int, len(defaultSkillEntries))
	entries := make([]SkillEntry, len(defaultSkillEntries))
	for i, e := range defaultSkillEntries {
		variants := append([]string(nil), e.Variants...)
		entries[i] = SkillEntry{Canonical: e.Canonical, Variants: variants}
		index[e.Canonical] = i
	}

	names := make([]string, 0, len(extra))
	for name := range extra {
		names = append(names, name)
	}
	sort.Strings(names) // 保证合并顺序确定

	for _, name := range names {
		canonical := strings.ToLower(strings.TrimSpace(name))
		if canonical == "" {
			continue
		}
		var variants []string
		for _, v := range extra[name] {
			v = strings.ToLower(strings.TrimSpace(v))
			if v != "" {
				variants = append(variants, v)
			}
		}
		if len(variants) == 0 {
			variants = []string{canonical}
		}
		if i, ok := index[canonical]; ok {
			entries[i].Variants = append(entries[i].Variants, variants...)
			continue
		}
		index[canonical] = len(entries)
		entries = append(entries, SkillEntry{Canonical: canonical, Variants: variants})
	}

	return &SkillTaxonomy{entries: entries}
}

// Entries 返回全部技能条目（只读视图）
func (t *SkillTaxonomy) Entries() []SkillEntry {
	return t.entries
}
