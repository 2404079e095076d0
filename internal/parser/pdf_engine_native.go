package parser

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"
)

// NativePDFEngine 基于 ledongthuc/pdf 的页级文本提取引擎
// 逐页提取，单页失败降级为警告；底层解析失败视为文件损坏
type NativePDFEngine struct {
	logger zerolog.Logger
}

// NewNativePDFEngine 创建内置PDF引擎
func NewNativePDFEngine(logger zerolog.Logger) *NativePDFEngine {
	return &NativePDFEngine{logger: logger}
}

// ExtractText 实现 PDFEngine 接口
func (e *NativePDFEngine) ExtractText(ctx context.Context, path string) (string, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, newReadError("open", path, ErrFileNotFound, err.Error())
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", nil, newReadError("stat", path, err, "")
	}

	reader, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return "", nil, NewCorruptFileError(path, err.Error())
	}

	numPages := reader.NumPage()
	if numPages == 0 {
		return "", nil, NewFileEmptyError(path)
	}

	var builder strings.Builder
	var warnings []string
	for i := 1; i <= numPages; i++ {
		select {
		case <-ctx.Done():
			return "", warnings, newReadError("extract", path, ctx.Err(), "")
		default:
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			warnings = append(warnings, fmt.Sprintf("page %d: no content", i))
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// 单页提取失败不致命，记录后继续
			warnings = append(warnings, fmt.Sprintf("page %d: extraction failed: %v", i, err))
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}

	full := builder.String()
	if strings.TrimSpace(full) == "" {
		// 所有页均无文本，典型场景是纯图片扫描件
		return "", warnings, NewNoTextError(path)
	}

	e.logger.Debug().Str("file", path).Int("pages", numPages).
		Int("chars", len(full)).Msg("PDF文本提取完成")
	return full, warnings, nil
}
