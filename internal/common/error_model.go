package common

import (
	"errors"

	"project-registration-server/internal/consts"
)

type ErrorCode string

const (
	ErrorCodeValidation        ErrorCode = "validation"
	ErrorCodeUnauthorized      ErrorCode = "unauthorized"
	ErrorCodeForbidden         ErrorCode = "forbidden"
	ErrorCodeConflict          ErrorCode = "conflict"
	ErrorCodeNotFound          ErrorCode = "not_found"
	ErrorCodeUnsupportedFormat ErrorCode = "unsupported_format"
	ErrorCodeInternal          ErrorCode = "internal"
)

// ServiceError 是服务层对调用方暴露的业务错误。
// Field 仅在唯一性冲突时填写，指出第一个冲突的字段。
type ServiceError struct {
	Code    ErrorCode
	Message string
	Field   consts.PersonField
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewServiceError(code ErrorCode, message string) error {
	return &ServiceError{Code: code, Message: message}
}

func NewValidationError(message string) error {
	return NewServiceError(ErrorCodeValidation, message)
}

func NewUnauthorizedError(message string) error {
	return NewServiceError(ErrorCodeUnauthorized, message)
}

func NewForbiddenError(message string) error {
	return NewServiceError(ErrorCodeForbidden, message)
}

func NewConflictError(message string) error {
	return NewServiceError(ErrorCodeConflict, message)
}

// NewFieldConflictError 创建带冲突字段的唯一性错误。
func NewFieldConflictError(field consts.PersonField, message string) error {
	return &ServiceError{Code: ErrorCodeConflict, Message: message, Field: field}
}

func NewNotFoundError(message string) error {
	return NewServiceError(ErrorCodeNotFound, message)
}

func NewUnsupportedFormatError(message string) error {
	return NewServiceError(ErrorCodeUnsupportedFormat, message)
}

func NewInternalError(message string) error {
	return NewServiceError(ErrorCodeInternal, message)
}

func AsServiceError(err error) (*ServiceError, bool) {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr, true
	}
	return nil, false
}

// IsErrorCode 判断 err 是否为指定错误码的 ServiceError。
func IsErrorCode(err error, code ErrorCode) bool {
	serviceErr, ok := AsServiceError(err)
	return ok && serviceErr.Code == code
}
