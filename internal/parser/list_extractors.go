package parser

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"resume-parser-go/internal/types"
)

// 列表类章节的截断上限
const (
	maxProjectNameLen = 100
	maxProjectDescLen = 500
	maxTechnologies   = 10
	defaultMaxItems   = 10
)

var (
	// 括号里的技术栈，如 "(Go, Redis | Docker)"
	parentheticalRe = regexp.MustCompile(`\(([^)]*)\)`)

	// 量化成果线索："30%"、"+15"、"3x"及影响类动词
	quantifiableRe = regexp.MustCompile(`(?i)%|\+|\b\d+(?:\.\d+)?x\b|\bimproved\b|\bincreased\b|\breduced\b|\bachieved\b`)

	// 领导力关键词
	leadershipRe = regexp.MustCompile(`(?i)\b(?:president|vice[- ]president|founder|co[- ]founder|captain|lead(?:er)?|head|mentor|organi[sz]er|coordinator|chair(?:person)?|director|treasurer|secretary)\b`)
)

// splitItems 把章节正文切成条目：要点行各成一条，空行分隔的块各成一条
// 非要点的后续行并入当前条目
func splitItems(text string) []string {
	var items []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			items = append(items, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flush()
		case bulletPrefixRe.MatchString(trimmed):
			flush()
			current = append(current, trimmed)
		default:
			current = append(current, trimmed)
		}
	}
	flush()
	return items
}

// ProjectExtractor 从项目章节提取项目条目
type ProjectExtractor struct {
	taxonomy   *SkillTaxonomy
	titleCaser cases.Caser
}

// NewProjectExtractor 创建项目提取器，技能表用于扫描条目正文里的技术词
func NewProjectExtractor(taxonomy *SkillTaxonomy) *ProjectExtractor {
	if taxonomy == nil {
		taxonomy = NewSkillTaxonomy(nil)
	}
	return &ProjectExtractor{
		taxonomy:   taxonomy,
		titleCaser: cases.Title(language.English),
	}
}

// Extract 逐条解析项目
func (p *ProjectExtractor) Extract(text string) []types.ProjectEntry {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var projects []types.ProjectEntry
	for _, item := range splitItems(text) {
		lines := strings.Split(item, "\n")
		name := bulletPrefixRe.ReplaceAllString(strings.TrimSpace(lines[0]), "")
		// 项目名不含括号里的技术注记
		name = strings.TrimSpace(parentheticalRe.ReplaceAllString(name, ""))
		if name == "" {
			continue
		}
		name = truncate(name, maxProjectNameLen)

		projects = append(projects, types.ProjectEntry{
			Name:         name,
			Technologies: p.technologies(item),
			Description:  p.description(lines),
		})
	}
	return projects
}

// technologies 合并两路来源：括号内逗号/竖线分隔的词 + 技能表扫描
func (p *ProjectExtractor) technologies(item string) []string {
	var techs []string
	seen := make(map[string]bool)
	add := func(t string) {
		t = strings.TrimSpace(t)
		key := strings.ToLower(t)
		if t == "" || seen[key] || len(techs) >= maxTechnologies {
			return
		}
		seen[key] = true
		techs = append(techs, t)
	}

	for _, m := range parentheticalRe.FindAllStringSubmatch(item, -1) {
		for _, part := range strings.FieldsFunc(m[1], func(r rune) bool { return r == ',' || r == '|' }) {
			add(part)
		}
	}

	// 技能表命中的条目同技能提取器一样输出Title Case规范名
	lower := strings.ToLower(item)
	for _, entry := range p.taxonomy.Entries() {
		for _, variant := range entry.Variants {
			if strings.Contains(lower, variant) {
				add(p.titleCaser.String(entry.Canonical))
				break
			}
		}
	}
	return techs
}

// description 首行之外的内容，剥掉括号注记后拼接
func (p *ProjectExtractor) description(lines []string) string {
	if len(lines) < 2 {
		return ""
	}
	var parts []string
	for _, line := range lines[1:] {
		line = parentheticalRe.ReplaceAllString(line, "")
		line = bulletPrefixRe.ReplaceAllString(strings.TrimSpace(line), "")
		if line != "" {
			parts = append(parts, line)
		}
	}
	return truncate(strings.Join(parts, " "), maxProjectDescLen)
}

// AchievementExtractor 提取成就列表，量化条目排前
type AchievementExtractor struct {
	maxItems int
}

// NewAchievementExtractor 创建成就提取器，maxItems<=0时取默认上限
func NewAchievementExtractor(maxItems int) *AchievementExtractor {
	if maxItems <= 0 {
		maxItems = defaultMaxItems
	}
	return &AchievementExtractor{maxItems: maxItems}
}

// Extract 切条、按量化线索稳定重排、截断
// 重排只改变顺序，不增删条目；截断是硬上限
func (a *AchievementExtractor) Extract(text string) []string {
	return reorderAndCap(text, a.maxItems, func(item string) int {
		if quantifiableRe.MatchString(item) {
			return 0
		}
		return 1
	})
}

// ExtracurricularExtractor 提取课外活动列表，领导类条目排前
type ExtracurricularExtractor struct {
	maxItems int
}

// NewExtracurricularExtractor 创建课外活动提取器
func NewExtracurricularExtractor(maxItems int) *ExtracurricularExtractor {
	if maxItems <= 0 {
		maxItems = defaultMaxItems
	}
	return &ExtracurricularExtractor{maxItems: maxItems}
}

// Extract 切条、按领导力关键词稳定重排、截断
func (e *ExtracurricularExtractor) Extract(text string) []string {
	return reorderAndCap(text, e.maxItems, func(item string) int {
		if leadershipRe.MatchString(item) {
			return 0
		}
		return 1
	})
}

// reorderAndCap 公共流程：切条 → 去要点前缀 → 按优先级稳定排序 → 截断
// 稳定排序保证同优先级条目维持原文顺序，结果可复现
func reorderAndCap(text string, maxItems int, priority func(string) int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var items []string
	for _, item := range splitItems(text) {
		item = bulletPrefixRe.ReplaceAllString(strings.TrimSpace(item), "")
		item = strings.Join(strings.Fields(item), " ")
		if item != "" {
			items = append(items, item)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return priority(items[i]) < priority(items[j])
	})

	if len(items) > maxItems {
		items = items[:maxItems]
	}
	return items
}

// truncate 按字符截断到上限并去掉尾部空白
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max]))
}
