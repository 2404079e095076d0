package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newSkillExtractor() *SkillExtractor {
	return NewSkillExtractor(NewSkillTaxonomy(nil), 0.85)
}

// TestSkillVariantCanonicalization 大小写与变体都归一到同一个规范名
func TestSkillVariantCanonicalization(t *testing.T) {
	s := newSkillExtractor()
	skills := s.Extract("Built frontends with ReactJS, react.js and React")

	count := 0
	for _, skill := range skills {
		if skill == "React" {
			count++
		}
	}
	assert.Equal(t, 1, count, "React只应出现一次: %v", skills)
}

// TestSkillTitleCaseOutput 输出统一为Title Case
func TestSkillTitleCaseOutput(t *testing.T) {
	s := newSkillExtractor()
	skills := s.Extract("python, aws, docker")
	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "Aws")
	assert.Contains(t, skills, "Docker")
}

// TestSkillFillerStripping 引导语剥离后仍能命中
func TestSkillFillerStripping(t *testing.T) {
	s := newSkillExtractor()
	skills := s.Extract("Proficient in Python; familiar with Kubernetes")
	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "Kubernetes")
}

// TestSkillFuzzyMatch 轻微拼写错误靠相似度兜底命中
func TestSkillFuzzyMatch(t *testing.T) {
	s := newSkillExtractor()
	// "Kubernets" 与 "kubernetes" 相似度 0.9
	skills := s.Extract("orchestration with Kubernets")
	assert.Contains(t, skills, "Kubernetes")

	// 相似度低于阈值时不得命中
	skills = s.Extract("some random prose")
	assert.NotContains(t, skills, "Kubernetes")
}

// TestSkillSortedDeduplicated 结果有序且无重复
func TestSkillSortedDeduplicated(t *testing.T) {
	s := newSkillExtractor()
	skills := s.Extract("docker, aws, python, docker, aws")
	assert.IsIncreasing(t, skills)

	seen := map[string]bool{}
	for _, skill := range skills {
		assert.False(t, seen[skill], "重复技能: %s", skill)
		seen[skill] = true
	}
}

// TestSkillEmptyInput 空输入返回空列表
func TestSkillEmptyInput(t *testing.T) {
	s := newSkillExtractor()
	assert.Empty(t, s.Extract(""))
}

// TestSkillTaxonomyExtraEntries 配置追加的条目参与匹配
func TestSkillTaxonomyExtraEntries(t *testing.T) {
	taxonomy := NewSkillTaxonomy(map[string][]string{
		"zig": {"zig", "ziglang"},
	})
	s := NewSkillExtractor(taxonomy, 0.85)
	skills := s.Extract("systems programming in ziglang")
	assert.Contains(t, skills, "Zig")
}
