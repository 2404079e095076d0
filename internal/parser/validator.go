package parser

import (
	"fmt"

	"resume-parser-go/internal/types"
)

// Validate 检查组装完成的简历记录，返回非阻塞警告列表
// 纯函数，任何输入下都不报错；警告只作提示，不影响记录本身
func Validate(r *types.ParsedResume) []string {
	var warnings []string

	if r.Contact.Name == "" || r.Contact.Name == types.UnknownName {
		warnings = append(warnings, "missing candidate name")
	}
	if r.Contact.Email == "" {
		warnings = append(warnings, "missing email address")
	}
	if r.Contact.Phone == "" {
		warnings = append(warnings, "missing phone number")
	}

	switch {
	case len(r.Skills) == 0:
		warnings = append(warnings, "no skills detected")
	case len(r.Skills) < 3:
		warnings = append(warnings, fmt.Sprintf("only %d skill(s) detected", len(r.Skills)))
	}

	// 零年数+零岗位是正常的fresher画像；有岗位却算不出年数才值得关注
	if r.Experience.Years == 0 {
		if len(r.Experience.Roles) == 0 {
			warnings = append(warnings, "no professional experience detected (fresher)")
		} else {
			warnings = append(warnings, fmt.Sprintf("found %d role(s) but computed zero experience years", len(r.Experience.Roles)))
		}
	}

	if len(r.Education) == 0 {
		warnings = append(warnings, "no education entries found")
	}

	// 所有可抽取字段全空，更可能是输入损坏而不是简历本身稀疏
	if len(r.Skills) == 0 && len(r.Experience.Roles) == 0 &&
		len(r.Education) == 0 && len(r.Projects) == 0 {
		warnings = append(warnings, "CRITICAL: no extractable content found (skills, experience, education, projects all empty); input may be corrupt or unsupported")
	}

	return warnings
}
