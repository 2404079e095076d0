package types

import (
	"path/filepath"
	"strings"
)

// DocumentType 支持的文档类型（封闭集合）
// 新增格式必须在这里显式登记，ParseDocumentType 会做穷举判断
type DocumentType string

const (
	// DocumentTypePDF PDF文档
	DocumentTypePDF DocumentType = "pdf"
	// DocumentTypeText 纯文本文档
	DocumentTypeText DocumentType = "text"
)

// ParseDocumentType 根据文件扩展名判断文档类型
// 返回 false 表示扩展名不在支持集合内
func ParseDocumentType(path string) (DocumentType, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return DocumentTypePDF, true
	case ".txt", ".text":
		return DocumentTypeText, true
	default:
		return "", false
	}
}

// SectionType 表示简历章节类型
type SectionType string

const (
	// SectionSkills 技能章节
	SectionSkills SectionType = "SKILLS"
	// SectionExperience 工作经历章节
	SectionExperience SectionType = "EXPERIENCE"
	// SectionEducation 教育经历章节
	SectionEducation SectionType = "EDUCATION"
	// SectionProjects 项目经历章节
	SectionProjects SectionType = "PROJECTS"
	// SectionAchievements 获奖经历章节
	SectionAchievements SectionType = "ACHIEVEMENTS"
	// SectionExtracurricular 课外活动章节
	SectionExtracurricular SectionType = "EXTRACURRICULAR"
)

// Section 简历章节结构
type Section struct {
	Type    SectionType // 章节类型
	Title   string      // 实际匹配到的章节标题行
	Content string      // 章节正文
}

// UnknownName 姓名未识别时使用的占位值
const UnknownName = "Unknown"

// ContactInfo 候选人联系方式
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Role 一段工作或实习经历
type Role struct {
	Title        string  `json:"title"`
	Company      string  `json:"company"`
	Duration     string  `json:"duration"`    // 原始日期行，未解析
	Description  string  `json:"description"` // 由要点行拼接而成
	IsInternship bool    `json:"is_internship"`
	Years        float64 `json:"years"` // 该段经历解析出的年数（未加权）
}

// ExperienceSummary 工作经历汇总
// Years = Σ(非实习年数) + 0.5 × Σ(实习年数)，恒不为负
type ExperienceSummary struct {
	Years float64 `json:"years"`
	Roles []Role  `json:"roles"`
}

// IsFresher 判断是否为应届/无正式工作经验候选人
// 总年数为零，或所有经历均为实习时，一律视为 fresher
func (e ExperienceSummary) IsFresher() bool {
	if e.Years == 0 {
		return true
	}
	if len(e.Roles) == 0 {
		return false
	}
	for _, r := range e.Roles {
		if !r.IsInternship {
			return false
		}
	}
	return true
}

// 教育条目缺失字段的占位值
const (
	PlaceholderDegree      = "Degree"
	PlaceholderField       = "Field of study"
	PlaceholderInstitution = "Institution"
)

// EducationEntry 一条教育经历
// 学位或院校至少有一项为非占位值，否则该条目不应存在
type EducationEntry struct {
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	Year        int    `json:"year,omitempty"`
}

// ProjectEntry 一条项目经历
type ProjectEntry struct {
	Name         string   `json:"name"`                   // 最长100字符
	Technologies []string `json:"technologies,omitempty"` // 去重后最多10项
	Description  string   `json:"description,omitempty"`  // 最长500字符
}

// ParsedResume 一次解析产出的完整结构化简历
// 组装完成后不再修改，整体交给外部协作方（存储、匹配打分）
type ParsedResume struct {
	ResumeID        string            `json:"resume_id"`
	Contact         ContactInfo       `json:"contact"`
	Skills          []string          `json:"skills"` // 规范化技能名，已排序去重
	Experience      ExperienceSummary `json:"experience"`
	Education       []EducationEntry  `json:"education"`
	Projects        []ProjectEntry    `json:"projects"`
	Achievements    []string          `json:"achievements"`
	Extracurricular []string          `json:"extracurricular"`
	RawText         string            `json:"raw_text,omitempty"` // 清洗后的全文
	Warnings        []string          `json:"warnings,omitempty"` // 校验器产出的非阻塞警告
}

// RedactedName 匿名化后姓名的占位值
const RedactedName = "[REDACTED]"

// Anonymize 返回脱敏副本：姓名替换为占位值，邮箱/电话清空，原文移除
// 用于下游打分子系统构造提示词，避免身份信息参与评估
func (r *ParsedResume) Anonymize() *ParsedResume {
	out := *r
	out.Contact = ContactInfo{Name: RedactedName}
	out.RawText = ""

	// 切片做浅拷贝即可，元素本身不会被修改
	out.Skills = append([]string(nil), r.Skills...)
	out.Experience.Roles = append([]Role(nil), r.Experience.Roles...)
	out.Education = append([]EducationEntry(nil), r.Education...)
	out.Projects = append([]ProjectEntry(nil), r.Projects...)
	out.Achievements = append([]string(nil), r.Achievements...)
	out.Extracurricular = append([]string(nil), r.Extracurricular...)
	out.Warnings = append([]string(nil), r.Warnings...)
	return &out
}
