package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/agext/levenshtein"
	prose "github.com/jdkato/prose/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// 技能段落里常见的引导语，先剥掉再匹配
var skillFillerPhrases = []string{
	"proficient in",
	"experienced with",
	"experienced in",
	"familiar with",
	"knowledge of",
	"working knowledge of",
	"expertise in",
	"skilled in",
}

// token切分用的分隔符：逗号、竖线、项目符号、分号、换行
var skillTokenSplitRe = regexp.MustCompile(`[,|;•·▪\n\t]+|(?:\s-\s)`)

// 模糊比较前去掉token首尾的标点
var tokenTrimRe = regexp.MustCompile(`^[^a-z0-9#+]+|[^a-z0-9#+]+$`)

// SkillExtractor 基于技能表的多策略技能提取器
// 召回优先：子串、模糊、词性三种策略的结果取并集，不输出置信度
type SkillExtractor struct {
	taxonomy       *SkillTaxonomy
	fuzzyThreshold float64
	levParams      *levenshtein.Params
	titleCaser     cases.Caser
}

// NewSkillExtractor 创建技能提取器
// threshold<=0 时使用默认阈值0.85
func NewSkillExtractor(taxonomy *SkillTaxonomy, threshold float64) *SkillExtractor {
	if taxonomy == nil {
		taxonomy = NewSkillTaxonomy(nil)
	}
	if threshold <= 0 {
		threshold = 0.85
	}
	return &SkillExtractor{
		taxonomy:       taxonomy,
		fuzzyThreshold: threshold,
		levParams:      levenshtein.NewParams(),
		titleCaser:     cases.Title(language.English),
	}
}

// Extract 从技能段落（或全文）中提取规范化技能列表
// 返回Title Case、去重且排序后的技能名
func (s *SkillExtractor) Extract(text string) []string {
	lower := strings.ToLower(text)
	for _, filler := range skillFillerPhrases {
		lower = strings.ReplaceAll(lower, filler, " ")
	}

	found := make(map[string]bool)

	// 策略1：逐变体子串扫描
	for _, entry := range s.taxonomy.Entries() {
		for _, variant := range entry.Variants {
			if strings.Contains(lower, variant) {
				found[entry.Canonical] = true
				break
			}
		}
	}

	// 策略2：对未命中的条目做归一化编辑距离模糊匹配
	tokens := s.tokenize(lower)
	for _, entry := range s.taxonomy.Entries() {
		if found[entry.Canonical] {
			continue
		}
		if s.fuzzyMatch(entry, tokens) {
			found[entry.Canonical] = true
		}
	}

	// 策略3：分隔符切分后保留名词性短token，与变体做精确比对
	for _, token := range s.nounTokens(text) {
		for _, entry := range s.taxonomy.Entries() {
			if found[entry.Canonical] {
				continue
			}
			for _, variant := range entry.Variants {
				if token == variant {
					found[entry.Canonical] = true
					break
				}
			}
		}
	}

	result := make([]string, 0, len(found))
	for canonical := range found {
		result = append(result, s.titleCaser.String(canonical))
	}
	sort.Strings(result)
	return result
}

// fuzzyMatch 任一变体与任一token的相似度达到阈值即视为命中
func (s *SkillExtractor) fuzzyMatch(entry SkillEntry, tokens []string) bool {
	for _, variant := range entry.Variants {
		if len(variant) < 3 {
			// 过短的变体模糊匹配噪音太大
			continue
		}
		for _, token := range tokens {
			if len(token) < 3 {
				continue
			}
			if levenshtein.Similarity(variant, token, s.levParams) >= s.fuzzyThreshold {
				return true
			}
		}
	}
	return false
}

// tokenize 按分隔符与空白切分并清理token
func (s *SkillExtractor) tokenize(lower string) []string {
	var tokens []string
	for _, chunk := range skillTokenSplitRe.Split(lower, -1) {
		for _, tok := range strings.Fields(chunk) {
			tok = tokenTrimRe.ReplaceAllString(tok, "")
			if tok != "" {
				tokens = append(tokens, tok)
			}
		}
	}
	return tokens
}

// nounTokens 用词性标注保留名词性token，返回小写形式
// 覆盖散落在叙述句中、不带分隔符的技能词
func (s *SkillExtractor) nounTokens(text string) []string {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false), prose.WithSegmentation(false))
	if err != nil {
		return nil
	}
	var tokens []string
	for _, tok := range doc.Tokens() {
		if !strings.HasPrefix(tok.Tag, "NN") {
			continue
		}
		t := strings.ToLower(strings.TrimSpace(tok.Text))
		t = tokenTrimRe.ReplaceAllString(t, "")
		if len(t) >= 2 && len(t) <= 30 {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
