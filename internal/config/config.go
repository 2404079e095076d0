package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"resume-parser-go/internal/logger"
)

// PDF解析引擎
const (
	PDFEngineNative = "native" // 内置页级解析（ledongthuc/pdf）
	PDFEngineEino   = "eino"   // Eino PDF Parser
)

// 重复章节标题的处理策略
const (
	DuplicatePolicyKeepLast  = "keep_last"  // 后出现的章节覆盖先出现的（默认）
	DuplicatePolicyKeepFirst = "keep_first" // 保留最先出现的章节
	DuplicatePolicyMergeAll  = "merge_all"  // 同名章节正文拼接
)

// ParserConfig 解析管线配置
// 所有字段在进程启动时加载一次，运行期只读
type ParserConfig struct {
	// PDF解析引擎: native 或 eino
	PDFEngine string `yaml:"pdf_engine"`

	// 提取文本的最小长度，低于该值视为无效输入
	MinTextLength int `yaml:"min_text_length"`

	// 重复章节标题策略: keep_last / keep_first / merge_all
	DuplicateSectionPolicy string `yaml:"duplicate_section_policy"`

	// 模糊技能匹配的相似度阈值 (0-1]
	FuzzySkillThreshold float64 `yaml:"fuzzy_skill_threshold"`

	// 成就/课外活动列表的条数上限
	MaxListItems int `yaml:"max_list_items"`

	// 自定义章节标题正则，按章节类型覆盖默认表
	// 例如 {"SKILLS": "(?i)^(?:SKILLS|TECH STACK)"}
	CustomSectionRegex map[string]string `yaml:"custom_section_regex"`

	// 追加到内置技能表的条目：规范名 -> 文本变体列表
	ExtraSkills map[string][]string `yaml:"extra_skills"`
}

// Config 应用程序配置
type Config struct {
	Parser ParserConfig  `yaml:"parser"`
	Logger logger.Config `yaml:"logger"`
}

// DefaultConfig 返回内置默认配置
func DefaultConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			PDFEngine:              PDFEngineNative,
			MinTextLength:          30,
			DuplicateSectionPolicy: DuplicatePolicyKeepLast,
			FuzzySkillThreshold:    0.85,
			MaxListItems:           10,
		},
		Logger: logger.Config{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadConfig 从YAML文件加载配置，缺失字段回填默认值
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	applyDefaults(config)
	if err := validate(config); err != nil {
		return nil, err
	}
	return config, nil
}

// applyDefaults 对零值字段回填默认值
func applyDefaults(c *Config) {
	def := DefaultConfig()
	if c.Parser.PDFEngine == "" {
		c.Parser.PDFEngine = def.Parser.PDFEngine
	}
	if c.Parser.MinTextLength <= 0 {
		c.Parser.MinTextLength = def.Parser.MinTextLength
	}
	if c.Parser.DuplicateSectionPolicy == "" {
		c.Parser.DuplicateSectionPolicy = def.Parser.DuplicateSectionPolicy
	}
	if c.Parser.FuzzySkillThreshold <= 0 {
		c.Parser.FuzzySkillThreshold = def.Parser.FuzzySkillThreshold
	}
	if c.Parser.MaxListItems <= 0 {
		c.Parser.MaxListItems = def.Parser.MaxListItems
	}
	if c.Logger.Level == "" {
		c.Logger.Level = def.Logger.Level
	}
	if c.Logger.Format == "" {
		c.Logger.Format = def.Logger.Format
	}
}

// validate 校验配置取值是否在允许范围内
func validate(c *Config) error {
	switch c.Parser.PDFEngine {
	case PDFEngineNative, PDFEngineEino:
	default:
		return fmt.Errorf("未知的PDF解析引擎: %s", c.Parser.PDFEngine)
	}

	switch c.Parser.DuplicateSectionPolicy {
	case DuplicatePolicyKeepLast, DuplicatePolicyKeepFirst, DuplicatePolicyMergeAll:
	default:
		return fmt.Errorf("未知的重复章节策略: %s", c.Parser.DuplicateSectionPolicy)
	}

	if c.Parser.FuzzySkillThreshold > 1 {
		return fmt.Errorf("模糊匹配阈值必须在(0,1]之间: %f", c.Parser.FuzzySkillThreshold)
	}
	return nil
}
