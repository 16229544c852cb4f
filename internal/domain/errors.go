package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrCustomerNotFound   = errors.New("este cliente não existe no banco de dados")
	ErrChargeNotFound     = errors.New("esta cobrança não existe no banco de dados")
	ErrDuplicateEmail     = errors.New("o e-mail informado já está sendo utilizado")
	ErrDuplicateCPF       = errors.New("o CPF informado já está sendo utilizado")
	ErrInvalidCredentials = errors.New("usuário e/ou senha inválido(s)")
	ErrInvalidState       = errors.New("a operação viola o estado atual do recurso")
	ErrMalformedToken     = errors.New("token não informado")
	ErrUnauthorized       = errors.New("não autorizado")
)

// ValidationError descreve a primeira regra de validação violada por uma
// requisição. A validação é fail-fast: os campos são avaliados na ordem em
// que foram declarados e apenas a primeira violação é reportada.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError constrói um erro de validação para um campo.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
