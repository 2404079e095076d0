package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试统一使用固定时钟，保证"Present"解析可复现
var testNow = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

func newExperienceExtractor() *ExperienceExtractor {
	return NewExperienceExtractor().WithClock(func() time.Time { return testNow })
}

// TestYearsFromMonthYearRange "Month Year - Month Year" 形状
func TestYearsFromMonthYearRange(t *testing.T) {
	e := newExperienceExtractor()
	assert.InDelta(t, 2.0, e.YearsFromText("Jan 2020 - Jan 2022"), 0.01)
	assert.InDelta(t, 0.5, e.YearsFromText("January 2021 to July 2021"), 0.02)
}

// TestYearsFromYearRange "Year - Year" 形状
func TestYearsFromYearRange(t *testing.T) {
	e := newExperienceExtractor()
	assert.InDelta(t, 2.0, e.YearsFromText("2019 - 2021"), 0.01)
	assert.InDelta(t, 4.0, e.YearsFromText("worked from 2018 - 2022 at Acme"), 0.01)
}

// TestYearsFromShortYearRange "Mon YY - Mon YY" 形状
func TestYearsFromShortYearRange(t *testing.T) {
	e := newExperienceExtractor()
	assert.InDelta(t, 2.0, e.YearsFromText("Mar '20 - Mar '22"), 0.01)
	assert.InDelta(t, 1.0, e.YearsFromText("Jun 19 - Jun 20"), 0.01)
}

// TestYearsPresentEndpoint "Present"解析为当前时间
func TestYearsPresentEndpoint(t *testing.T) {
	e := newExperienceExtractor()
	// 2022-06-01 到固定时钟 2024-06-01 正好2年
	assert.InDelta(t, 2.0, e.YearsFromText("Jun 2022 - Present"), 0.01)
	assert.InDelta(t, 2.0, e.YearsFromText("Jun 2022 - current"), 0.01)
}

// TestYearsNeverNegative 倒置区间按0处理，总和单调不减
func TestYearsNeverNegative(t *testing.T) {
	e := newExperienceExtractor()
	assert.Equal(t, 0.0, e.YearsFromText("Jan 2022 - Jan 2020"))
	assert.Equal(t, 0.0, e.YearsFromText("no dates at all"))
	assert.GreaterOrEqual(t, e.YearsFromText("2021 - 2019\n2019 - 2021"), 0.0)
}

// TestYearsMultipleRangesSummed 多个区间求和，且同一片段不被重复计数
func TestYearsMultipleRangesSummed(t *testing.T) {
	e := newExperienceExtractor()
	text := "Jan 2018 - Jan 2020\n2021 - 2022"
	assert.InDelta(t, 3.0, e.YearsFromText(text), 0.02)
}

const engineerBlock = `Software Engineer
Acme Corp
Jan 2020 - Jan 2022
- Built APIs
- Led migrations`

// TestExtractSingleRole 单个岗位块的完整解析
func TestExtractSingleRole(t *testing.T) {
	e := newExperienceExtractor()
	summary := e.Extract(engineerBlock)

	require.Len(t, summary.Roles, 1)
	role := summary.Roles[0]
	assert.Equal(t, "Software Engineer", role.Title)
	assert.Equal(t, "Acme Corp", role.Company)
	assert.Equal(t, "Jan 2020 - Jan 2022", role.Duration)
	assert.Contains(t, role.Description, "Built APIs")
	assert.Contains(t, role.Description, "Led migrations")
	assert.False(t, role.IsInternship)
	assert.InDelta(t, 2.0, summary.Years, 0.01)
}

// TestInternshipHalfWeight 实习年数按半权重计入总数
func TestInternshipHalfWeight(t *testing.T) {
	e := newExperienceExtractor()
	summary := e.Extract("Software Intern\nAcme Corp\nJun 2020 - Jun 2022")

	require.Len(t, summary.Roles, 1)
	assert.True(t, summary.Roles[0].IsInternship)
	assert.InDelta(t, 2.0, summary.Roles[0].Years, 0.01)
	assert.InDelta(t, 1.0, summary.Years, 0.01)
}

// TestInternshipWholeWordOnly "intern"必须整词出现才算实习
func TestInternshipWholeWordOnly(t *testing.T) {
	e := newExperienceExtractor()
	summary := e.Extract("International Sales Manager\nGlobex Inc\n2019 - 2021")
	require.Len(t, summary.Roles, 1)
	assert.False(t, summary.Roles[0].IsInternship)
}

// TestExtractMultipleRoles 空行分隔多个岗位块
func TestExtractMultipleRoles(t *testing.T) {
	e := newExperienceExtractor()
	text := engineerBlock + "\n\nData Analyst\nGlobex Inc\n2017 - 2019\n- Dashboards"
	summary := e.Extract(text)

	require.Len(t, summary.Roles, 2)
	assert.InDelta(t, 4.0, summary.Years, 0.02)
}

// TestExtractNoRoles 无岗位定义零经验候选人，不是解析失败
func TestExtractNoRoles(t *testing.T) {
	e := newExperienceExtractor()
	summary := e.Extract("")
	assert.Zero(t, summary.Years)
	assert.Empty(t, summary.Roles)

	summary = e.Extract("some text without any dates")
	assert.Zero(t, summary.Years)
	assert.Empty(t, summary.Roles)
}

// TestIsFresher fresher判定的三种情形
func TestIsFresher(t *testing.T) {
	e := newExperienceExtractor()

	// 零年数
	assert.True(t, e.Extract("").IsFresher())

	// 全部为实习，即使年数非零
	internOnly := e.Extract("Intern\nAcme Corp\nJan 2020 - Jan 2022")
	assert.Positive(t, internOnly.Years)
	assert.True(t, internOnly.IsFresher())

	// 存在正式工作经历
	assert.False(t, e.Extract(engineerBlock).IsFresher())
}

// TestRoleOrgPreference 更像机构名的行被当作公司
func TestRoleOrgPreference(t *testing.T) {
	e := newExperienceExtractor()
	// 日期行上一行是机构名时，职位与公司互换
	summary := e.Extract("Senior Developer\nInitech Technologies\n2018 - 2020")
	require.Len(t, summary.Roles, 1)
	assert.Equal(t, "Initech Technologies", summary.Roles[0].Company)
	assert.Equal(t, "Senior Developer", summary.Roles[0].Title)
}
