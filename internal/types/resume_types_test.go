package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseDocumentType 扩展名到文档类型的穷举判断
func TestParseDocumentType(t *testing.T) {
	cases := []struct {
		path    string
		docType DocumentType
		ok      bool
	}{
		{"resume.pdf", DocumentTypePDF, true},
		{"Resume.PDF", DocumentTypePDF, true},
		{"resume.txt", DocumentTypeText, true},
		{"resume.text", DocumentTypeText, true},
		{"/tmp/dir/resume.TXT", DocumentTypeText, true},
		{"resume.docx", "", false},
		{"resume.doc", "", false},
		{"resume", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		docType, ok := ParseDocumentType(c.path)
		assert.Equal(t, c.ok, ok, c.path)
		assert.Equal(t, c.docType, docType, c.path)
	}
}

// TestIsFresher fresher判定
func TestIsFresher(t *testing.T) {
	// 零年数恒为fresher
	assert.True(t, ExperienceSummary{}.IsFresher())

	// 年数非零但全为实习
	allIntern := ExperienceSummary{
		Years: 1.0,
		Roles: []Role{{IsInternship: true, Years: 2.0}},
	}
	assert.True(t, allIntern.IsFresher())

	// 存在正式工作经历
	mixed := ExperienceSummary{
		Years: 3.0,
		Roles: []Role{{IsInternship: true, Years: 2.0}, {Years: 2.0}},
	}
	assert.False(t, mixed.IsFresher())
}

// TestAnonymize 脱敏副本去除身份信息且不影响原记录
func TestAnonymize(t *testing.T) {
	r := &ParsedResume{
		ResumeID: "id-1",
		Contact:  ContactInfo{Name: "Jane Doe", Email: "jane@example.com", Phone: "555-123-4567"},
		Skills:   []string{"Go"},
		Experience: ExperienceSummary{
			Years: 2.0,
			Roles: []Role{{Title: "Engineer", Company: "Acme Corp"}},
		},
		RawText: "Jane Doe\njane@example.com",
	}

	anon := r.Anonymize()
	assert.Equal(t, RedactedName, anon.Contact.Name)
	assert.Empty(t, anon.Contact.Email)
	assert.Empty(t, anon.Contact.Phone)
	assert.Empty(t, anon.RawText)

	// 业务内容保留
	assert.Equal(t, r.ResumeID, anon.ResumeID)
	assert.Equal(t, r.Skills, anon.Skills)
	assert.Equal(t, r.Experience.Years, anon.Experience.Years)

	// 原记录不受影响，切片也不共享底层数组
	assert.Equal(t, "Jane Doe", r.Contact.Name)
	anon.Skills[0] = "changed"
	assert.Equal(t, "Go", r.Skills[0])
}
