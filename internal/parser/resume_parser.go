package parser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/types"
)

// Components 聚合管线的全部功能组件，便于集中管理和测试替换
type Components struct {
	Reader          DocumentReader
	Segmenter       *SectionSegmenter
	Contact         *ContactExtractor
	Skills          *SkillExtractor
	Experience      *ExperienceExtractor
	Education       *EducationExtractor
	Projects        *ProjectExtractor
	Achievements    *AchievementExtractor
	Extracurricular *ExtracurricularExtractor
}

// Settings 纯配置项，不包含业务组件
type Settings struct {
	MinTextLength int
	Logger        zerolog.Logger
	Now           func() time.Time // 测试中注入固定时间
}

// SettingOpt 设置选项
type SettingOpt func(*Settings)

// WithLogger 指定日志记录器
func WithLogger(l zerolog.Logger) SettingOpt {
	return func(s *Settings) { s.Logger = l }
}

// WithClockFunc 指定当前时间来源
func WithClockFunc(now func() time.Time) SettingOpt {
	return func(s *Settings) { s.Now = now }
}

// ResumeParser 简历解析管线
// 单次调用内同步执行：读取 → 清洗 → 分段 → 各字段提取 → 校验 → 组装
// 技能表与章节正则在构造时编译完成，运行期只读，可跨goroutine共享
type ResumeParser struct {
	components Components
	settings   Settings
}

// NewResumeParser 按配置装配完整管线
func NewResumeParser(ctx context.Context, cfg *config.ParserConfig, opts ...SettingOpt) (*ResumeParser, error) {
	if cfg == nil {
		c := config.DefaultConfig().Parser
		cfg = &c
	}

	settings := Settings{
		MinTextLength: cfg.MinTextLength,
		Logger:        logger.Logger,
		Now:           time.Now,
	}
	for _, opt := range opts {
		opt(&settings)
	}

	var pdfEngine PDFEngine
	var err error
	switch cfg.PDFEngine {
	case config.PDFEngineEino:
		pdfEngine, err = NewEinoPDFEngine(ctx, settings.Logger)
		if err != nil {
			return nil, err
		}
	default:
		pdfEngine = NewNativePDFEngine(settings.Logger)
	}

	segmenter, err := NewSectionSegmenter(cfg)
	if err != nil {
		return nil, err
	}

	taxonomy := NewSkillTaxonomy(cfg.ExtraSkills)

	return &ResumeParser{
		components: Components{
			Reader:          NewFileDocumentReader(pdfEngine, settings.Logger),
			Segmenter:       segmenter,
			Contact:         NewContactExtractor(),
			Skills:          NewSkillExtractor(taxonomy, cfg.FuzzySkillThreshold),
			Experience:      NewExperienceExtractor().WithClock(settings.Now),
			Education:       NewEducationExtractor(),
			Projects:        NewProjectExtractor(taxonomy),
			Achievements:    NewAchievementExtractor(cfg.MaxListItems),
			Extracurricular: NewExtracurricularExtractor(cfg.MaxListItems),
		},
		settings: settings,
	}, nil
}

// NewResumeParserWithComponents 使用外部装配好的组件构建管线（主要用于测试）
func NewResumeParserWithComponents(comp Components, set Settings) *ResumeParser {
	if set.Now == nil {
		set.Now = time.Now
	}
	if set.MinTextLength <= 0 {
		set.MinTextLength = config.DefaultConfig().Parser.MinTextLength
	}
	return &ResumeParser{components: comp, settings: set}
}

// ParseFile 解析单个简历文件
// 文件级错误直接返回且不产出记录；字段级提取失败降级为空值加警告
func (p *ResumeParser) ParseFile(ctx context.Context, path string) (*types.ParsedResume, error) {
	rawText, readWarnings, err := p.components.Reader.ReadDocument(ctx, path)
	if err != nil {
		return nil, err
	}
	// 读取阶段结束，文件句柄已释放，后续全部为纯内存计算

	cleaned := CleanText(rawText)
	if len(cleaned) < p.settings.MinTextLength {
		return nil, NewTextTooShortError(path, len(cleaned), p.settings.MinTextLength)
	}

	return p.ParseText(cleaned, readWarnings...), nil
}

// ParseText 对已清洗的文本执行分段与字段提取，组装最终记录
// 传入的warnings会并入记录的警告列表
func (p *ResumeParser) ParseText(cleaned string, warnings ...string) *types.ParsedResume {
	log := p.settings.Logger
	sections := p.components.Segmenter.Segment(cleaned)

	// 完全没有命中章节标题时，各提取器退回整篇扫描
	pick := func(t types.SectionType) string {
		if len(sections) == 0 {
			return cleaned
		}
		return sectionContent(sections, t)
	}
	// 技能提取总是有全文兜底
	skillsText := pick(types.SectionSkills)
	if strings.TrimSpace(skillsText) == "" {
		skillsText = cleaned
	}

	resume := &types.ParsedResume{
		ResumeID: uuid.NewString(),
		RawText:  cleaned,
		Warnings: append([]string(nil), warnings...),
	}

	p.guard(&resume.Warnings, "contact", func() {
		resume.Contact = types.ContactInfo{
			Name:  p.components.Contact.ExtractName(cleaned),
			Email: p.components.Contact.ExtractEmail(cleaned),
			Phone: p.components.Contact.ExtractPhone(cleaned),
		}
	})
	p.guard(&resume.Warnings, "skills", func() {
		resume.Skills = p.components.Skills.Extract(skillsText)
	})
	p.guard(&resume.Warnings, "experience", func() {
		resume.Experience = p.components.Experience.Extract(pick(types.SectionExperience))
	})
	p.guard(&resume.Warnings, "education", func() {
		resume.Education = p.components.Education.Extract(pick(types.SectionEducation))
	})
	p.guard(&resume.Warnings, "projects", func() {
		resume.Projects = p.components.Projects.Extract(pick(types.SectionProjects))
	})
	p.guard(&resume.Warnings, "achievements", func() {
		resume.Achievements = p.components.Achievements.Extract(pick(types.SectionAchievements))
	})
	p.guard(&resume.Warnings, "extracurricular", func() {
		resume.Extracurricular = p.components.Extracurricular.Extract(pick(types.SectionExtracurricular))
	})

	resume.Warnings = append(resume.Warnings, Validate(resume)...)

	log.Info().
		Str("resume_id", resume.ResumeID).
		Str("name", resume.Contact.Name).
		Int("skills", len(resume.Skills)).
		Float64("experience_years", resume.Experience.Years).
		Int("warnings", len(resume.Warnings)).
		Msg("简历解析完成")
	return resume
}

// guard 运行单个提取器，panic降级为该字段空值加一条警告
// 保证单个字段的意外失败不会中断整次解析
func (p *ResumeParser) guard(warnings *[]string, field string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			p.settings.Logger.Error().
				Str("field", field).
				Interface("panic", r).
				Msg("字段提取器异常，降级为空值")
			*warnings = append(*warnings, fmt.Sprintf("%s extraction failed, field left empty", field))
		}
	}()
	fn()
}
