package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/types"
)

// sectionPattern 一个章节类型及其标题识别正则
type sectionPattern struct {
	sectionType types.SectionType
	re          *regexp.Regexp
}

// 默认的章节标题正则表
// 逐行匹配，标题行允许尾随冒号；顺序即优先级，先匹配的类型占用该行
var defaultSectionRegexMap = []struct {
	sectionType types.SectionType
	pattern     string
}{
	{types.SectionExtracurricular, `(?im)^(?:EXTRA[- ]?CURRICULAR(?:\s+ACTIVITIES)?|ACTIVITIES|VOLUNTEER(?:ING|\s+WORK)?|LEADERSHIP(?:\s+ACTIVITIES)?)\s*:?\s*$`},
	{types.SectionExperience, `(?im)^(?:WORK\s+EXPERIENCE|PROFESSIONAL\s+EXPERIENCE|EMPLOYMENT(?:\s+HISTORY)?|WORK\s+HISTORY|EXPERIENCE|INTERNSHIPS?)\s*:?\s*$`},
	{types.SectionSkills, `(?im)^(?:TECHNICAL\s+SKILLS|CORE\s+COMPETENCIES|SKILLS(?:\s*&\s*ABILITIES)?|TECHNOLOGIES|TECH\s+STACK)\s*:?\s*$`},
	{types.SectionEducation, `(?im)^(?:EDUCATION(?:AL\s+BACKGROUND)?|ACADEMIC\s+BACKGROUND|QUALIFICATIONS)\s*:?\s*$`},
	{types.SectionProjects, `(?im)^(?:(?:PERSONAL|ACADEMIC|KEY)\s+PROJECTS|PROJECTS?)\s*:?\s*$`},
	{types.SectionAchievements, `(?im)^(?:ACHIEVEMENTS|ACCOMPLISHMENTS|AWARDS(?:\s*&\s*HONORS)?|HONORS)\s*:?\s*$`},
}

// SectionSegmenter 将清洗后的简历全文切分为命名章节
type SectionSegmenter struct {
	patterns []sectionPattern
	policy   string
}

// NewSectionSegmenter 构建分段器，可用配置中的自定义正则覆盖默认表
func NewSectionSegmenter(cfg *config.ParserConfig) (*SectionSegmenter, error) {
	policy := config.DuplicatePolicyKeepLast
	custom := map[string]string{}
	if cfg != nil {
		if cfg.DuplicateSectionPolicy != "" {
			policy = cfg.DuplicateSectionPolicy
		}
		custom = cfg.CustomSectionRegex
	}

	seg := &SectionSegmenter{policy: policy}
	for _, entry := range defaultSectionRegexMap {
		pattern := entry.pattern
		if override, ok := custom[string(entry.sectionType)]; ok {
			pattern = override
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("编译章节正则表达式错误 %s: %w", entry.sectionType, err)
		}
		seg.patterns = append(seg.patterns, sectionPattern{sectionType: entry.sectionType, re: re})
	}
	return seg, nil
}

// headerMatch 一次标题命中：位置区间与所属类型
type headerMatch struct {
	start, end  int
	sectionType types.SectionType
	title       string
}

// Segment 扫描全文中的所有章节标题，按位置切分正文
// 没有任何标题命中时返回空映射，调用方退回整篇扫描
func (s *SectionSegmenter) Segment(text string) map[types.SectionType]*types.Section {
	var matches []headerMatch
	claimed := make(map[int]bool) // 已被更高优先级类型占用的标题起始位置

	for _, p := range s.patterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			if claimed[loc[0]] {
				continue
			}
			claimed[loc[0]] = true
			matches = append(matches, headerMatch{
				start:       loc[0],
				end:         loc[1],
				sectionType: p.sectionType,
				title:       strings.TrimSpace(text[loc[0]:loc[1]]),
			})
		}
	}

	result := make(map[types.SectionType]*types.Section)
	if len(matches) == 0 {
		return result
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].start < matches[j].start })

	for i, m := range matches {
		bodyEnd := len(text)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1].start
		}
		body := strings.TrimSpace(text[m.end:bodyEnd])

		existing, dup := result[m.sectionType]
		switch {
		case !dup:
			result[m.sectionType] = &types.Section{Type: m.sectionType, Title: m.title, Content: body}
		case s.policy == config.DuplicatePolicyKeepFirst:
			// 保留第一次出现，丢弃本次
		case s.policy == config.DuplicatePolicyMergeAll:
			existing.Content = existing.Content + "\n\n" + body
		default: // keep_last
			result[m.sectionType] = &types.Section{Type: m.sectionType, Title: m.title, Content: body}
		}
	}
	return result
}

// sectionContent 取出指定章节正文，不存在时返回空串
func sectionContent(sections map[types.SectionType]*types.Section, t types.SectionType) string {
	if sec, ok := sections[t]; ok {
		return sec.Content
	}
	return ""
}
