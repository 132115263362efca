package core

import (
	"errors"
	"fmt"
	"strings"
)

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都可以归结为此类型（typed error 通过 Unwrap 暴露）
//   - 提供错误代码（Code）、模块（Module）和消息（Message）
//   - 支持错误检查函数（IsXXX），也支持 errors.Is / errors.As
type DomainError struct {
	Code    string // 错误代码（如 "NOT_FOUND", "SCHEMA"）
	Message string // 错误消息
	Module  string // 模块名称（如 "catalog", "feature", "resolve"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is 让 errors.Is 按 Module + Code 比较，而不是比较指针。
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code && (t.Module == "" || e.Module == t.Module)
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// GetDomainError 从错误链中取出 DomainError，不存在时返回 nil
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var de *DomainError
	if errors.As(err, &de) {
		return de
	}
	return nil
}

// IsDomainError 检查错误链中是否存在 DomainError
func IsDomainError(err error) bool {
	return GetDomainError(err) != nil
}

// 错误代码常量
const (
	ErrorCodeSchema        = "SCHEMA"         // 目录缺少必需的逻辑列
	ErrorCodeEmptyCorpus   = "EMPTY_CORPUS"   // 没有可用于拟合的文档
	ErrorCodeNotFound      = "NOT_FOUND"      // 名称解析失败 / 资源不存在
	ErrorCodeInvalidQuery  = "INVALID_QUERY"  // 偏好画像为空或退化
	ErrorCodeInvalidInput  = "INVALID_INPUT"  // 参数无效
	ErrorCodeNotReady      = "NOT_READY"      // 引擎尚未加载模型
	ErrorCodeNotSupported  = "NOT_SUPPORTED"  // 操作不支持
	ErrorCodeUnavailable   = "UNAVAILABLE"    // 外部依赖不可用（缓存后端等）
	ErrorCodeInternalError = "INTERNAL_ERROR" // 内部错误
)

// 模块名称常量
const (
	ModuleCatalog   = "catalog"
	ModuleFeature   = "feature"
	ModuleResolve   = "resolve"
	ModuleRecommend = "recommend"
	ModuleStore     = "store"
	ModulePipeline  = "pipeline"
	ModuleConfig    = "config"
)

// 哨兵错误，配合 errors.Is 使用。
var (
	ErrSchema       = NewDomainError(ModuleCatalog, ErrorCodeSchema, "catalog: required column missing")
	ErrEmptyCorpus  = NewDomainError(ModuleFeature, ErrorCodeEmptyCorpus, "feature: no non-empty documents to fit")
	ErrNotFound     = NewDomainError(ModuleResolve, ErrorCodeNotFound, "resolve: item not found")
	ErrInvalidQuery = NewDomainError(ModuleRecommend, ErrorCodeInvalidQuery, "recommend: invalid preference profile")
	ErrNotReady     = NewDomainError(ModuleRecommend, ErrorCodeNotReady, "recommend: no model loaded")
)

// SchemaError 表示目录缺少必需的逻辑字段。
type SchemaError struct {
	Found    []string // 已匹配到的逻辑字段
	Required []string // 必需的逻辑字段
	Headers  []string // 源数据的原始表头
}

func (e *SchemaError) Error() string {
	missing := make([]string, 0, len(e.Required))
	for _, r := range e.Required {
		if !containsString(e.Found, r) {
			missing = append(missing, r)
		}
	}
	return fmt.Sprintf("catalog: missing required fields [%s]; found [%s] of required [%s]; headers %q",
		strings.Join(missing, ", "),
		strings.Join(e.Found, ", "),
		strings.Join(e.Required, ", "),
		e.Headers)
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// NotFoundError 表示名称解析失败；Suggestions 是低于阈值的近似候选，供调用方展示。
type NotFoundError struct {
	Query       string
	Suggestions []string
	Total       int // 目录中的物品总数
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("resolve: item %q not found among %d items", e.Query, e.Total)
	if len(e.Suggestions) > 0 {
		msg += "; did you mean: " + strings.Join(e.Suggestions, ", ")
	}
	return msg
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InvalidQueryError 表示偏好画像不可用（全部为空或归一化后为空）。
type InvalidQueryError struct {
	Reason string
}

func (e *InvalidQueryError) Error() string {
	return "recommend: invalid preference profile: " + e.Reason
}

func (e *InvalidQueryError) Unwrap() error { return ErrInvalidQuery }

func isCode(err error, code string) bool {
	if de := GetDomainError(err); de != nil {
		return de.Code == code
	}
	return false
}

// IsSchema 检查错误是否为 SCHEMA
func IsSchema(err error) bool { return isCode(err, ErrorCodeSchema) }

// IsEmptyCorpus 检查错误是否为 EMPTY_CORPUS
func IsEmptyCorpus(err error) bool { return isCode(err, ErrorCodeEmptyCorpus) }

// IsNotFound 检查错误是否为 NOT_FOUND
func IsNotFound(err error) bool { return isCode(err, ErrorCodeNotFound) }

// IsInvalidQuery 检查错误是否为 INVALID_QUERY
func IsInvalidQuery(err error) bool { return isCode(err, ErrorCodeInvalidQuery) }

// IsInvalidInput 检查错误是否为 INVALID_INPUT
func IsInvalidInput(err error) bool { return isCode(err, ErrorCodeInvalidInput) }

// IsNotReady 检查错误是否为 NOT_READY
func IsNotReady(err error) bool { return isCode(err, ErrorCodeNotReady) }

// IsNotSupported 检查错误是否为 NOT_SUPPORTED
func IsNotSupported(err error) bool { return isCode(err, ErrorCodeNotSupported) }

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
