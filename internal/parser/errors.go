package parser

import (
	"errors"
	"fmt"
)

// 文件级错误类型，一旦发生立即终止解析，不会产出部分记录
var (
	ErrFileNotFound      = errors.New("文件不存在")
	ErrUnsupportedType   = errors.New("不支持的文件类型")
	ErrFileEmpty         = errors.New("文件内容为空")
	ErrCorruptFile       = errors.New("文件已损坏，无法解析")
	ErrUndecodableFile   = errors.New("文件编码无法识别")
	ErrNoExtractableText = errors.New("未能从文件中提取到文本")

	// ErrTextTooShort 读取成功但文本长度低于阈值，在抽取开始前抛出
	ErrTextTooShort = errors.New("提取文本过短")
)

// FileReadError 包含详细上下文的文件读取错误
type FileReadError struct {
	Path    string
	Op      string
	BaseErr error
	Detail  string
}

func (e *FileReadError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, 文件:%s): %s", e.BaseErr, e.Op, e.Path, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, 文件:%s)", e.BaseErr, e.Op, e.Path)
}

func (e *FileReadError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *FileReadError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// 错误构造函数
func newReadError(op, path string, base error, detail string) error {
	return &FileReadError{
		Path:    path,
		Op:      op,
		BaseErr: base,
		Detail:  detail,
	}
}

func NewUnsupportedTypeError(path, detail string) error {
	return newReadError("detect", path, ErrUnsupportedType, detail)
}

func NewFileEmptyError(path string) error {
	return newReadError("read", path, ErrFileEmpty, "")
}

func NewCorruptFileError(path, detail string) error {
	return newReadError("parse", path, ErrCorruptFile, detail)
}

func NewUndecodableError(path, detail string) error {
	return newReadError("decode", path, ErrUndecodableFile, detail)
}

func NewNoTextError(path string) error {
	return newReadError("extract", path, ErrNoExtractableText, "")
}

func NewTextTooShortError(path string, got, min int) error {
	return newReadError("validate", path, ErrTextTooShort,
		fmt.Sprintf("长度 %d 低于阈值 %d", got, min))
}
