package apperr

import "fmt"

// ValidationError はバリデーションエラーを表す。
type ValidationError struct {
	Field   string // エラーが発生したフィールド名
	Message string // エラーメッセージ
}

// Error はerrorインターフェースを実装する。
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field=%s, message=%s", e.Field, e.Message)
}

// NewValidationError はValidationErrorを生成する。
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// ExchangeError はRADIUSサーバーとの要求・応答交換の失敗を表す。
type ExchangeError struct {
	Server string // 送信先（host:port）
	Code   string // 要求のコード名
	ID     uint8  // 要求のIdentifier
	Cause  error  // 根本原因
}

// Error はerrorインターフェースを実装する。
func (e *ExchangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("exchange error: server=%s, code=%s, id=%d, cause=%v",
			e.Server, e.Code, e.ID, e.Cause)
	}
	return fmt.Sprintf("exchange error: server=%s, code=%s, id=%d",
		e.Server, e.Code, e.ID)
}

// Unwrap は根本原因を返す。
func (e *ExchangeError) Unwrap() error {
	return e.Cause
}

// NewExchangeError はExchangeErrorを生成する。
func NewExchangeError(server, code string, id uint8, cause error) *ExchangeError {
	return &ExchangeError{
		Server: server,
		Code:   code,
		ID:     id,
		Cause:  cause,
	}
}

// ValkeyError はValkeyとの操作エラーを表す。
type ValkeyError struct {
	Operation string // 操作名（HGET, PING等）
	Key       string // 操作対象のキー
	Cause     error  // 根本原因
}

// Error はerrorインターフェースを実装する。
func (e *ValkeyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("valkey error: operation=%s, key=%s, cause=%v",
			e.Operation, e.Key, e.Cause)
	}
	return fmt.Sprintf("valkey error: operation=%s, key=%s", e.Operation, e.Key)
}

// Unwrap は根本原因を返す。
func (e *ValkeyError) Unwrap() error {
	return e.Cause
}

// NewValkeyError はValkeyErrorを生成する。
func NewValkeyError(operation, key string, cause error) *ValkeyError {
	return &ValkeyError{
		Operation: operation,
		Key:       key,
		Cause:     cause,
	}
}
