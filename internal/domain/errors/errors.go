// Package errors defines the application error taxonomy: invalid data,
// conflicting data, not found, integrity violations and unexpected
// failures, each carrying a machine-readable reason code.
package errors

import (
	"net/http"

	"precario/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int  // HTTP status code
	Reason() string // Machine-readable reason code, e.g. "ramo_existente"
	Message() string
	Details() string
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode int
	reason   string
	message  string
	details  string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, reason, message, details string) *BaseError {
	return &BaseError{
		httpCode: httpCode,
		reason:   reason,
		message:  message,
		details:  details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// Reason returns the machine-readable reason code.
func (e *BaseError) Reason() string {
	return e.reason
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error with detailed information attached.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode: e.httpCode,
		reason:   e.reason,
		message:  e.message,
		details:  details,
	}
}

// NewDadosInvalidos signals that a submitted resource failed a validation
// rule. The reason identifies the first violated field, e.g. "cep_invalido".
func NewDadosInvalidos(reason string) *BaseError {
	return NewBaseError(http.StatusBadRequest, reason, "dados inválidos", "")
}

// NewDadosConflitantes signals that a submitted resource duplicates an
// existing one, e.g. "ramo_existente".
func NewDadosConflitantes(reason string) *BaseError {
	return NewBaseError(http.StatusConflict, reason, "dados conflitantes", "")
}

// NewNaoEncontrado signals that a referenced resource does not resolve.
func NewNaoEncontrado(reason string) *BaseError {
	return NewBaseError(http.StatusNotFound, reason, "recurso não encontrado", "")
}

// Predefined error values for the non-parameterized cases.
var (
	// ErrNaoEncontrado is the generic not-found outcome.
	ErrNaoEncontrado = NewNaoEncontrado("nao_encontrado")

	// ErrUsuarioNaoEncontrado covers references to missing or soft-deleted users.
	ErrUsuarioNaoEncontrado = NewNaoEncontrado("usuario_nao_encontrado")

	// ErrIDFornecido rejects client-supplied ids on create/replace input.
	ErrIDFornecido = NewDadosInvalidos("id_fornecido")

	// ErrCredenciaisInvalidas covers failed login attempts.
	ErrCredenciaisInvalidas = NewBaseError(
		http.StatusUnauthorized,
		"credenciais_invalidas",
		"e-mail ou senha incorretos",
		"",
	)

	// ErrViolacaoIntegridade covers writes the store rejected after
	// validation passed, e.g. a race on a unique constraint. Never retried.
	ErrViolacaoIntegridade = NewBaseError(
		http.StatusInternalServerError,
		"violacao_integridade",
		"violação de integridade no armazenamento",
		"",
	)

	// ErrInterno is the generic unexpected-failure outcome.
	ErrInterno = NewBaseError(
		http.StatusInternalServerError,
		"erro_interno",
		"erro interno do sistema",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing
// the AppError interface.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// Reason returns the machine-readable reason code.
func (e *DatabaseExecuteError) Reason() string {
	return "erro_banco_dados"
}

// Message returns the user-friendly error message.
func (e *DatabaseExecuteError) Message() string {
	return "falha na execução do banco de dados"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
