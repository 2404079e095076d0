package parser

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/config"
)

const johnSmithResume = `John Smith
john.smith@email.com
(555) 123-4567

SKILLS:
Python, AWS, ReactJS

EXPERIENCE

Software Engineer
Acme Corp
Jan 2020 - Jan 2022
- Built APIs

EDUCATION
Bachelor of Science in Computer Science
State University
2019
`

// writeTempResume 把内容写进临时目录下的文件并返回路径
func writeTempResume(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestParser(t *testing.T) *ResumeParser {
	t.Helper()
	p, err := NewResumeParser(context.Background(), nil, WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	return p
}

// TestParseFileEndToEnd 完整管线：txt读取 → 清洗 → 分段 → 提取 → 校验
func TestParseFileEndToEnd(t *testing.T) {
	p := newTestParser(t)
	path := writeTempResume(t, "resume.txt", johnSmithResume)

	resume, err := p.ParseFile(context.Background(), path)
	require.NoError(t, err)

	_, uuidErr := uuid.Parse(resume.ResumeID)
	assert.NoError(t, uuidErr)

	assert.Equal(t, "John Smith", resume.Contact.Name)
	assert.Equal(t, "john.smith@email.com", resume.Contact.Email)
	assert.Equal(t, "(555) 123-4567", resume.Contact.Phone)

	assert.Equal(t, []string{"Aws", "Python", "React"}, resume.Skills)

	require.Len(t, resume.Experience.Roles, 1)
	assert.Equal(t, "Software Engineer", resume.Experience.Roles[0].Title)
	assert.Equal(t, "Acme Corp", resume.Experience.Roles[0].Company)
	assert.InDelta(t, 2.0, resume.Experience.Years, 0.01)
	assert.False(t, resume.Experience.IsFresher())

	require.Len(t, resume.Education, 1)
	assert.Contains(t, resume.Education[0].Degree, "Bachelor of Science")
	assert.Equal(t, "State University", resume.Education[0].Institution)
	assert.Equal(t, 2019, resume.Education[0].Year)

	assert.Empty(t, resume.Warnings)
}

// TestParseFileUnsupportedType 不在支持集合内的扩展名
func TestParseFileUnsupportedType(t *testing.T) {
	p := newTestParser(t)
	path := writeTempResume(t, "resume.docx", "whatever")

	_, err := p.ParseFile(context.Background(), path)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

// TestParseFileNotFound 文件不存在
func TestParseFileNotFound(t *testing.T) {
	p := newTestParser(t)

	_, err := p.ParseFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

// TestParseFileEmpty 零字节文件
func TestParseFileEmpty(t *testing.T) {
	p := newTestParser(t)
	path := writeTempResume(t, "empty.txt", "")

	_, err := p.ParseFile(context.Background(), path)
	assert.ErrorIs(t, err, ErrFileEmpty)
}

// TestParseFileTextTooShort 读取成功但清洗后文本低于阈值
func TestParseFileTextTooShort(t *testing.T) {
	p := newTestParser(t)
	path := writeTempResume(t, "short.txt", "   \n  hi  \n   ")

	_, err := p.ParseFile(context.Background(), path)
	assert.ErrorIs(t, err, ErrTextTooShort)

	var readErr *FileReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, path, readErr.Path)
}

// TestParseFileLatin1Fallback 非UTF-8文本走latin-1兜底解码并记录警告
func TestParseFileLatin1Fallback(t *testing.T) {
	p := newTestParser(t)
	content := append([]byte(johnSmithResume), 0xE9) // latin-1 é，非法UTF-8
	path := filepath.Join(t.TempDir(), "latin1.txt")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	resume, err := p.ParseFile(context.Background(), path)
	require.NoError(t, err)
	assert.Contains(t, resume.Warnings, "decoded with fallback encoding latin-1")
	assert.Equal(t, "John Smith", resume.Contact.Name)
}

// TestParseFileCp1252Fallback 含0x80-0x9F区间字节的文本选cp1252而不是latin-1
func TestParseFileCp1252Fallback(t *testing.T) {
	p := newTestParser(t)
	// 0x93/0x94 是cp1252的弯引号，按latin-1解码会变成C1控制字符
	content := append([]byte(johnSmithResume), 0x93, 'q', 0x94)
	path := filepath.Join(t.TempDir(), "cp1252.txt")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	resume, err := p.ParseFile(context.Background(), path)
	require.NoError(t, err)
	assert.Contains(t, resume.Warnings, "decoded with fallback encoding cp1252")
	assert.Contains(t, resume.RawText, "“q”")
}

// TestParseTextFullTextFallback 无任何章节标题时提取器退回整篇扫描
func TestParseTextFullTextFallback(t *testing.T) {
	p := newTestParser(t)
	text := "Jane Doe\njane@example.com\nworked with Python and Docker\nJan 2019 - Jan 2021 at Acme Corp"

	resume := p.ParseText(CleanText(text))
	assert.Contains(t, resume.Skills, "Python")
	assert.Contains(t, resume.Skills, "Docker")
	assert.InDelta(t, 2.0, resume.Experience.Years, 0.01)
}

// TestParseTextGuardDegradation 单个提取器panic时该字段降级为空值加警告
func TestParseTextGuardDegradation(t *testing.T) {
	cfg := config.DefaultConfig().Parser
	seg, err := NewSectionSegmenter(&cfg)
	require.NoError(t, err)

	comp := Components{
		Segmenter:       seg,
		Contact:         NewContactExtractor(),
		Skills:          nil, // nil提取器触发panic
		Experience:      NewExperienceExtractor(),
		Education:       NewEducationExtractor(),
		Projects:        NewProjectExtractor(nil),
		Achievements:    NewAchievementExtractor(0),
		Extracurricular: NewExtracurricularExtractor(0),
	}
	p := NewResumeParserWithComponents(comp, Settings{Logger: zerolog.Nop()})

	resume := p.ParseText(CleanText(johnSmithResume))
	assert.Empty(t, resume.Skills)
	assert.Contains(t, resume.Warnings, "skills extraction failed, field left empty")

	// 其他字段不受影响
	assert.Equal(t, "John Smith", resume.Contact.Name)
	require.Len(t, resume.Experience.Roles, 1)
}

// TestParseTextWarningsPropagated 读取阶段的警告并入最终记录
func TestParseTextWarningsPropagated(t *testing.T) {
	p := newTestParser(t)

	resume := p.ParseText(CleanText(johnSmithResume), "some upstream warning")
	assert.Contains(t, resume.Warnings, "some upstream warning")
}
