package parser

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"resume-parser-go/internal/types"
)

// PDFEngine PDF文本提取引擎接口
// 返回: 全文文本、页级警告、错误
type PDFEngine interface {
	ExtractText(ctx context.Context, path string) (string, []string, error)
}

// DocumentReader 文档读取器接口
type DocumentReader interface {
	// ReadDocument 读取并解码文档，返回原始文本与非致命警告
	ReadDocument(ctx context.Context, path string) (string, []string, error)
}

// textEncoding 一个单字节兜底编码：编码名与解码器
type textEncoding struct {
	name    string
	decoder *encoding.Decoder
}

// FileDocumentReader 基于文件系统的默认读取器实现
// 按扩展名分派到PDF引擎或文本解码；读取单次尝试，失败即返回
type FileDocumentReader struct {
	pdfEngine PDFEngine
	logger    zerolog.Logger
}

// NewFileDocumentReader 创建文档读取器
func NewFileDocumentReader(pdfEngine PDFEngine, logger zerolog.Logger) *FileDocumentReader {
	return &FileDocumentReader{pdfEngine: pdfEngine, logger: logger}
}

// ReadDocument 读取文档内容
// 不支持的扩展名、空文件、损坏文件、无法解码均返回对应的文件级错误
func (r *FileDocumentReader) ReadDocument(ctx context.Context, path string) (string, []string, error) {
	docType, ok := types.ParseDocumentType(path)
	if !ok {
		return "", nil, NewUnsupportedTypeError(path, "仅支持 .pdf/.txt/.text")
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil, newReadError("open", path, ErrFileNotFound, err.Error())
		}
		return "", nil, newReadError("open", path, err, "")
	}

	switch docType {
	case types.DocumentTypePDF:
		return r.readPDF(ctx, path)
	case types.DocumentTypeText:
		return r.readText(path)
	default:
		// ParseDocumentType保证不会走到这里
		return "", nil, NewUnsupportedTypeError(path, string(docType))
	}
}

// readPDF 委托给PDF引擎提取文本
func (r *FileDocumentReader) readPDF(ctx context.Context, path string) (string, []string, error) {
	if r.pdfEngine == nil {
		return "", nil, NewCorruptFileError(path, "未配置PDF解析引擎")
	}
	text, warnings, err := r.pdfEngine.ExtractText(ctx, path)
	if err != nil {
		return "", nil, err
	}
	for _, w := range warnings {
		r.logger.Warn().Str("file", path).Msg(w)
	}
	return text, warnings, nil
}

// readText 读取文本文件并解码
// UTF-8校验失败后按字节特征选择单字节编码：latin-1与cp1252只在
// 0x80-0x9F区间有分歧（cp1252是印刷符号，latin-1是C1控制字符），
// 含这类字节时选cp1252，否则选latin-1
func (r *FileDocumentReader) readText(path string) (string, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, newReadError("read", path, err, "")
	}
	if len(data) == 0 {
		return "", nil, NewFileEmptyError(path)
	}

	if utf8.Valid(data) {
		return string(data), nil, nil
	}

	enc := textEncoding{name: "latin-1", decoder: charmap.ISO8859_1.NewDecoder()}
	for _, b := range data {
		if b >= 0x80 && b <= 0x9f {
			enc = textEncoding{name: "cp1252", decoder: charmap.Windows1252.NewDecoder()}
			break
		}
	}

	decoded, err := enc.decoder.Bytes(data)
	if err != nil {
		r.logger.Debug().Str("file", path).Str("encoding", enc.name).
			Msg("解码尝试失败")
		return "", nil, NewUndecodableError(path, "尝试了 utf-8/"+enc.name)
	}
	return string(decoded), []string{fmt.Sprintf("decoded with fallback encoding %s", enc.name)}, nil
}
