package parser

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"
	"github.com/rs/zerolog"
)

// eino解析的单文件超时
const einoParseTimeout = 30 * time.Second

// EinoPDFEngine 使用 Eino PDF Parser 的替代提取引擎
// 整文档一次解析，不提供页级粒度；通过配置 parser.pdf_engine: eino 启用
type EinoPDFEngine struct {
	parser *pdf.PDFParser
	logger zerolog.Logger
}

// NewEinoPDFEngine 初始化 Eino PDF 提取引擎
// 配置为不按页面分割，以获取整个文档的连续文本
func NewEinoPDFEngine(ctx context.Context, logger zerolog.Logger) (*EinoPDFEngine, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: false,
	})
	if err != nil {
		return nil, NewCorruptFileError("", "创建Eino PDF解析器失败: "+err.Error())
	}
	return &EinoPDFEngine{parser: p, logger: logger}, nil
}

// ExtractText 实现 PDFEngine 接口
func (e *EinoPDFEngine) ExtractText(ctx context.Context, path string) (string, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", nil, newReadError("open", path, ErrFileNotFound, err.Error())
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(ctx, einoParseTimeout)
	defer cancel()

	startTime := time.Now()
	docs, err := e.parser.Parse(ctx, file, einoParser.WithURI(path))
	if err != nil {
		return "", nil, NewCorruptFileError(path, err.Error())
	}
	if len(docs) == 0 {
		return "", nil, NewFileEmptyError(path)
	}

	var builder strings.Builder
	var warnings []string
	for i, doc := range docs {
		if doc.Content == "" {
			warnings = append(warnings, fmt.Sprintf("document segment %d: no content", i))
			continue
		}
		builder.WriteString(doc.Content)
		builder.WriteString("\n")
	}

	full := builder.String()
	if strings.TrimSpace(full) == "" {
		return "", warnings, NewNoTextError(path)
	}

	e.logger.Debug().Str("file", path).Int("chars", len(full)).
		Dur("elapsed", time.Since(startTime)).Msg("Eino PDF文本提取完成")
	return full, warnings, nil
}
