package parser

import (
	"regexp"
	"strings"

	prose "github.com/jdkato/prose/v2"

	"resume-parser-go/internal/types"
)

// 联系方式识别模式
var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// 北美式号码，容忍分隔符与可选国家码
	phoneRe = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	// 标题行里出现这些词的不作为姓名候选
	nameStopwords = []string{"resume", "cv", "curriculum"}
)

// 姓名兜底识别时只看文档开头这么多字符
const nameEntityScanLimit = 500

// ContactExtractor 从全文提取姓名、邮箱、电话
// 任何输入下都不返回错误，识别不到就用占位值/空值
type ContactExtractor struct{}

// NewContactExtractor 创建联系方式提取器
func NewContactExtractor() *ContactExtractor {
	return &ContactExtractor{}
}

// ExtractName 提取候选人姓名
// 优先取前20行中第一条长度在(3,50)且不含简历标题词的行；
// 找不到时退回命名实体识别，在开头片段内找PERSON实体；再失败返回占位值
func (c *ContactExtractor) ExtractName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 20 {
		lines = lines[:20]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) <= 3 || len(line) >= 50 {
			continue
		}
		lower := strings.ToLower(line)
		skip := false
		for _, stop := range nameStopwords {
			if strings.Contains(lower, stop) {
				skip = true
				break
			}
		}
		if !skip {
			return line
		}
	}

	if name := c.nameFromEntities(text); name != "" {
		return name
	}
	return types.UnknownName
}

// nameFromEntities 在文档开头片段内做NER，取第一个PERSON实体
func (c *ContactExtractor) nameFromEntities(text string) string {
	head := text
	if len(head) > nameEntityScanLimit {
		head = head[:nameEntityScanLimit]
	}
	doc, err := prose.NewDocument(head, prose.WithExtraction(true))
	if err != nil {
		return ""
	}
	for _, ent := range doc.Entities() {
		if ent.Label == "PERSON" {
			return strings.TrimSpace(ent.Text)
		}
	}
	return ""
}

// ExtractEmail 提取第一个邮箱地址，没有则返回空串
func (c *ContactExtractor) ExtractEmail(text string) string {
	return emailRe.FindString(text)
}

// ExtractPhone 提取第一个电话号码，没有则返回空串
func (c *ContactExtractor) ExtractPhone(text string) string {
	return phoneRe.FindString(text)
}
