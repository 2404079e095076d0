package parser

import (
	"regexp"
	"strings"
)

// 页码与样板行识别模式
var (
	// "Page 3"、"Page 3 of 12"、"Page 3 / 12" 之类的页脚行
	pageNumberLineRe = regexp.MustCompile(`(?i)^page\s+\d+(\s*(?:of|/)\s*\d+)?$`)

	// 独立的纯数字行（通常是页码）
	bareNumberLineRe = regexp.MustCompile(`^\d{1,3}$`)

	// 行内的 "Page N (of M)" 残留
	inlinePageRe = regexp.MustCompile(`(?i)\bpage\s+\d+\s+of\s+\d+\b`)

	// 水平空白折叠
	spaceRunRe = regexp.MustCompile(`[ \t]+`)
)

// 整行等于这些词时视为文档样板，直接丢弃
var boilerplateLines = map[string]struct{}{
	"resume":           {},
	"cv":               {},
	"curriculum vitae": {},
	"confidential":     {},
}

// CleanText 对原始文本做确定性的规范化清洗
// 幂等：CleanText(CleanText(x)) == CleanText(x)
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = inlinePageRe.ReplaceAllString(text, "")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(spaceRunRe.ReplaceAllString(line, " "))

		if pageNumberLineRe.MatchString(line) || bareNumberLineRe.MatchString(line) {
			line = ""
		}
		if _, ok := boilerplateLines[strings.ToLower(line)]; ok && line != "" {
			line = ""
		}
		cleaned = append(cleaned, line)
	}

	// 3个及以上连续空行压缩为1个
	out := make([]string, 0, len(cleaned))
	blankRun := 0
	for _, line := range cleaned {
		if line == "" {
			blankRun++
			continue
		}
		if blankRun > 0 {
			if blankRun >= 3 {
				blankRun = 1
			}
			if len(out) > 0 {
				for i := 0; i < blankRun; i++ {
					out = append(out, "")
				}
			}
			blankRun = 0
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}
