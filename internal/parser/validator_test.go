package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-parser-go/internal/types"
)

// fullResume 各字段齐全、不触发任何警告的记录
func fullResume() *types.ParsedResume {
	return &types.ParsedResume{
		Contact: types.ContactInfo{Name: "Jane Doe", Email: "jane@example.com", Phone: "555-123-4567"},
		Skills:  []string{"Go", "Python", "Sql"},
		Experience: types.ExperienceSummary{
			Years: 3.5,
			Roles: []types.Role{{Title: "Engineer", Company: "Acme Corp", Years: 3.5}},
		},
		Education: []types.EducationEntry{{Degree: "BSc", Institution: "State University"}},
		Projects:  []types.ProjectEntry{{Name: "Chat App"}},
	}
}

// TestValidateCompleteRecord 完整记录零警告
func TestValidateCompleteRecord(t *testing.T) {
	assert.Empty(t, Validate(fullResume()))
}

// TestValidateMissingContact 联系方式缺失逐项告警
func TestValidateMissingContact(t *testing.T) {
	r := fullResume()
	r.Contact = types.ContactInfo{Name: types.UnknownName}
	warnings := Validate(r)

	assert.Contains(t, warnings, "missing candidate name")
	assert.Contains(t, warnings, "missing email address")
	assert.Contains(t, warnings, "missing phone number")
}

// TestValidateSkillThreshold 技能数低于3条时提示
func TestValidateSkillThreshold(t *testing.T) {
	r := fullResume()
	r.Skills = []string{"Go"}
	assert.Contains(t, Validate(r), "only 1 skill(s) detected")

	r.Skills = nil
	assert.Contains(t, Validate(r), "no skills detected")
}

// TestValidateFresherVsAnomaly 零年数的两种情形要区分
func TestValidateFresherVsAnomaly(t *testing.T) {
	// 零年数+零岗位是fresher，不是异常
	r := fullResume()
	r.Experience = types.ExperienceSummary{}
	assert.Contains(t, Validate(r), "no professional experience detected (fresher)")

	// 有岗位却算不出年数才是异常
	r.Experience = types.ExperienceSummary{Roles: []types.Role{{Title: "Engineer"}}}
	assert.Contains(t, Validate(r), "found 1 role(s) but computed zero experience years")
}

// TestValidateNoEducation 无学历条目提示
func TestValidateNoEducation(t *testing.T) {
	r := fullResume()
	r.Education = nil
	assert.Contains(t, Validate(r), "no education entries found")
}

// TestValidateCriticalAggregate 全部可抽取字段为空时追加CRITICAL警告
func TestValidateCriticalAggregate(t *testing.T) {
	r := &types.ParsedResume{}
	warnings := Validate(r)

	var critical bool
	for _, w := range warnings {
		if strings.HasPrefix(w, "CRITICAL:") {
			critical = true
		}
	}
	assert.True(t, critical)

	// 只要有一类内容就不触发CRITICAL
	r.Projects = []types.ProjectEntry{{Name: "Something"}}
	for _, w := range Validate(r) {
		assert.False(t, strings.HasPrefix(w, "CRITICAL:"))
	}
}

// TestValidateNeverErrors 校验是纯函数，空记录也不会panic
func TestValidateNeverErrors(t *testing.T) {
	assert.NotPanics(t, func() { Validate(&types.ParsedResume{}) })
}
