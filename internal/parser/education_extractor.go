package parser

import (
	"regexp"
	"strconv"
	"strings"

	"resume-parser-go/internal/types"
)

// degreePattern 一个学位族的识别正则，捕获组1为尾随的专业短语（可选）
type degreePattern struct {
	family string
	re     *regexp.Regexp
}

// 学位族正则，按本科/硕士/博士/专科顺序尝试
var degreePatterns = []degreePattern{
	{"Bachelor", regexp.MustCompile(`(?i)\b(?:bachelor(?:'s)?(?:\s+(?:of|degree))?(?:\s+(?:science|arts|engineering|technology|commerce))?|b\.?\s?(?:sc|s|a|e|eng|tech|com))\b\.?(?:\s+(?:of\s+|in\s+)([A-Za-z][A-Za-z&/ ]{2,50}))?`)},
	{"Master", regexp.MustCompile(`(?i)\b(?:master(?:'s)?(?:\s+(?:of|degree))?(?:\s+(?:science|arts|engineering|technology|business\s+administration))?|m\.?\s?(?:sc|s|a|eng|tech|ba)|mba)\b\.?(?:\s+(?:of\s+|in\s+)([A-Za-z][A-Za-z&/ ]{2,50}))?`)},
	{"Doctorate", regexp.MustCompile(`(?i)\b(?:ph\.?\s?d|doctorate|doctor\s+of\s+philosophy)\b\.?(?:\s+(?:of\s+|in\s+)([A-Za-z][A-Za-z&/ ]{2,50}))?`)},
	{"Associate", regexp.MustCompile(`(?i)\b(?:associate(?:'s)?(?:\s+degree)?|a\.?\s?(?:a|s))\b\.?(?:\s+(?:of\s+|in\s+)([A-Za-z][A-Za-z&/ ]{2,50}))?`)},
}

var (
	// 以University/College/Institute/School结尾（可带of短语）的机构名
	institutionRe = regexp.MustCompile(`(?i)\b([A-Z][\w .,&'-]{0,60}?(?:university|college|institute|school)(?:\s+of\s+[A-Z][\w ]{1,40})?)`)

	// 毕业年份，限定[1900,2099]
	gradYearRe = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

	// 空行块分隔
	blankBlockRe = regexp.MustCompile(`\n\s*\n`)
)

// EducationExtractor 从教育章节提取学历条目
type EducationExtractor struct{}

// NewEducationExtractor 创建教育经历提取器
func NewEducationExtractor() *EducationExtractor {
	return &EducationExtractor{}
}

// Extract 逐块解析教育经历
// 学位与院校均未命中的块不产出条目；命中其一的块用占位值补齐其余字段
func (e *EducationExtractor) Extract(text string) []types.EducationEntry {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var entries []types.EducationEntry
	for _, block := range splitBlocks(text) {
		degree, field := matchDegree(block)
		institution := matchInstitution(block)

		// 年份只是辅助信号，单独出现不足以构成学历条目
		if degree == "" && institution == "" {
			continue
		}

		entry := types.EducationEntry{
			Degree:      degree,
			Field:       field,
			Institution: institution,
		}
		if entry.Degree == "" {
			entry.Degree = types.PlaceholderDegree
		}
		if entry.Field == "" {
			entry.Field = types.PlaceholderField
		}
		if entry.Institution == "" {
			entry.Institution = types.PlaceholderInstitution
		}
		if m := gradYearRe.FindString(block); m != "" {
			if year, err := strconv.Atoi(m); err == nil {
				entry.Year = year
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// matchDegree 按学位族顺序匹配，返回学位短语与专业短语
func matchDegree(block string) (degree, field string) {
	for _, p := range degreePatterns {
		m := p.re.FindStringSubmatch(block)
		if m == nil {
			continue
		}
		degree = strings.TrimSpace(m[0])
		if len(m) > 1 {
			field = strings.TrimSpace(m[1])
		}
		return degree, field
	}
	return "", ""
}

// matchInstitution 匹配院校名称
func matchInstitution(block string) string {
	m := institutionRe.FindStringSubmatch(block)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// splitBlocks 按空行把章节正文切成块
func splitBlocks(text string) []string {
	var blocks []string
	for _, block := range blankBlockRe.Split(text, -1) {
		if strings.TrimSpace(block) != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}
