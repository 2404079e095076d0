package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"resume-parser-go/internal/types"
)

// 日期与区间识别模式
var (
	monthNames = `jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?`

	// 含4位年份、月份名或"present"的行视为日期行
	dateLineRe = regexp.MustCompile(`(?i)\b(?:(?:19|20)\d{2}|present|` + monthNames + `)\b`)

	rangeSep = `\s*(?:-|–|—|~|to|till|until)\s*`

	// 形状1: "Month Year - Month Year|Present"
	rangeMonthYearRe = regexp.MustCompile(`(?i)\b(` + monthNames + `)\.?\s+((?:19|20)\d{2})` + rangeSep + `(?:(` + monthNames + `)\.?\s+((?:19|20)\d{2})|(present|current|now))`)

	// 形状2: "Year - Year|Present"
	// 空捕获组用于对齐三种形状的组布局：1/2=起点，3/4=终点，5=present
	rangeYearRe = regexp.MustCompile(`(?i)\b((?:19|20)\d{2})()` + rangeSep + `(?:((?:19|20)\d{2})()|(present|current|now))\b`)

	// 形状3: "Mon YY - Mon YY|Present"（两位年份，可带撇号）
	rangeMonYYRe = regexp.MustCompile(`(?i)\b(` + monthNames + `)\.?\s*'?(\d{2})` + rangeSep + `(?:(` + monthNames + `)\.?\s*'?(\d{2})|(present|current|now))\b`)

	// 实习判定：整词匹配
	internshipRe = regexp.MustCompile(`(?i)\b(?:intern|internship|internships)\b`)

	// 要点行前缀
	bulletPrefixRe = regexp.MustCompile(`^[-•*–▪>]+\s*`)

	// 公司名常见后缀词；"software"、"tech"之类在职位名中太常见，不计入
	orgKeywordRe = regexp.MustCompile(`(?i)\b(?:inc|corp|corporation|ltd|llc|company|technologies|labs|solutions|systems|group)\.?\b`)
)

// 月份名到月序数的映射，键为前三个字母
var monthIndex = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// 一年平均天数，含闰年
const daysPerYear = 365.25

// ExperienceExtractor 从工作经历章节解析岗位列表并计算经验年数
type ExperienceExtractor struct {
	now func() time.Time // "present"解析成的当前时间，测试中可注入
}

// NewExperienceExtractor 创建工作经历提取器
func NewExperienceExtractor() *ExperienceExtractor {
	return &ExperienceExtractor{now: time.Now}
}

// WithClock 覆盖当前时间来源，保证测试可复现
func (e *ExperienceExtractor) WithClock(now func() time.Time) *ExperienceExtractor {
	if now != nil {
		e.now = now
	}
	return e
}

// Extract 解析工作经历章节
// 没有任何岗位时返回 {Years: 0, Roles: nil}，这定义了零经验候选人而非解析失败
func (e *ExperienceExtractor) Extract(text string) types.ExperienceSummary {
	var summary types.ExperienceSummary
	if strings.TrimSpace(text) == "" {
		return summary
	}

	for _, block := range splitBlocks(text) {
		role, ok := e.parseRoleBlock(block)
		if !ok {
			continue
		}
		summary.Roles = append(summary.Roles, role)
		if role.IsInternship {
			// 实习经历按半权重计入总年数
			summary.Years += 0.5 * role.Years
		} else {
			summary.Years += role.Years
		}
	}
	if summary.Years < 0 {
		summary.Years = 0
	}
	return summary
}

// parseRoleBlock 解析单个岗位块；块内没有日期行时不产出岗位
func (e *ExperienceExtractor) parseRoleBlock(block string) (types.Role, bool) {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return types.Role{}, false
	}

	dateIdx := -1
	for i, line := range lines {
		if dateLineRe.MatchString(line) {
			dateIdx = i
			break
		}
	}
	if dateIdx < 0 {
		return types.Role{}, false
	}

	role := types.Role{
		Duration:     lines[dateIdx],
		IsInternship: internshipRe.MatchString(block),
		Years:        e.YearsFromText(block),
	}

	// 日期行上一行当作职位，再上一行当作公司；
	// 哪一行更像机构名就把它当公司
	var title, company string
	if dateIdx >= 1 {
		title = lines[dateIdx-1]
	}
	if dateIdx >= 2 {
		company = lines[dateIdx-2]
	}
	if company == "" && title != "" && looksLikeOrganization(title) {
		title, company = "", title
	} else if title != "" && company != "" &&
		looksLikeOrganization(title) && !looksLikeOrganization(company) {
		title, company = company, title
	}
	role.Title = title
	role.Company = company

	// 其余要点行拼接为描述
	var descParts []string
	for i, line := range lines {
		if i == dateIdx || line == title || line == company {
			continue
		}
		if bulletPrefixRe.MatchString(line) {
			descParts = append(descParts, bulletPrefixRe.ReplaceAllString(line, ""))
		}
	}
	role.Description = strings.Join(descParts, " ")
	return role, true
}

// looksLikeOrganization 判断一行是否像机构名
func looksLikeOrganization(line string) bool {
	return orgKeywordRe.MatchString(line)
}

// YearsFromText 扫描文本中的全部日期区间并累加年数
// 三种区间形状按序匹配，命中的片段被掩掉避免重复计数；负区间按0处理
func (e *ExperienceExtractor) YearsFromText(text string) float64 {
	now := e.now()
	total := 0.0

	type rangeShape struct {
		re      *regexp.Regexp
		monthly bool // 端点是否带月份
	}
	shapes := []rangeShape{
		{rangeMonthYearRe, true},
		{rangeYearRe, false},
		{rangeMonYYRe, true},
	}

	remaining := text
	for _, shape := range shapes {
		matches := shape.re.FindAllStringSubmatchIndex(remaining, -1)
		if len(matches) == 0 {
			continue
		}
		masked := []byte(remaining)
		for _, loc := range matches {
			m := extractSubmatches(remaining, loc)
			start, okS := e.parseEndpoint(m[1]+" "+m[2], now)
			var end time.Time
			var okE bool
			if m[5] != "" {
				end, okE = now, true
			} else {
				end, okE = e.parseEndpoint(m[3]+" "+m[4], now)
			}
			if okS && okE {
				total += yearsBetween(start, end)
			}
			// 掩掉已命中的片段
			for i := loc[0]; i < loc[1]; i++ {
				masked[i] = ' '
			}
		}
		remaining = string(masked)
	}
	return total
}

// extractSubmatches 取出1..5号捕获组文本，缺失的为空串
func extractSubmatches(s string, loc []int) [6]string {
	var out [6]string
	for g := 1; g <= 5; g++ {
		if 2*g+1 < len(loc) && loc[2*g] >= 0 {
			out[g] = s[loc[2*g]:loc[2*g+1]]
		}
	}
	return out
}

// parseEndpoint 宽松解析单个日期端点
// 支持 "present"、"月份名 年份"、纯年份、两位年份；都失败时交给模糊日期解析器
func (e *ExperienceExtractor) parseEndpoint(raw string, now time.Time) (time.Time, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.Trim(s, "'.")
	switch s {
	case "present", "current", "now":
		return now, true
	case "":
		return time.Time{}, false
	}

	fields := strings.Fields(s)
	if len(fields) == 2 {
		if month, ok := monthIndex[prefix3(fields[0])]; ok {
			if year, ok := parseYearToken(fields[1]); ok {
				return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
			}
		}
	}
	if len(fields) == 1 {
		if year, ok := parseYearToken(fields[0]); ok {
			return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true
		}
	}

	// 模糊兜底："June 2020"之外的其他写法
	if t, err := dateparse.ParseAny(raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// parseYearToken 解析4位或2位年份；2位年份以30为界分配世纪
func parseYearToken(s string) (int, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "'")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	switch {
	case n >= 1900 && n <= 2099:
		return n, true
	case n >= 0 && n < 30:
		return 2000 + n, true
	case n >= 30 && n < 100:
		return 1900 + n, true
	default:
		return 0, false
	}
}

// prefix3 月份名前三个字母
func prefix3(s string) string {
	if len(s) > 3 {
		return s[:3]
	}
	return s
}

// yearsBetween 端点间隔换算为年，倒置区间按0处理
func yearsBetween(start, end time.Time) float64 {
	days := end.Sub(start).Hours() / 24
	years := days / daysPerYear
	if years < 0 {
		return 0
	}
	return years
}
