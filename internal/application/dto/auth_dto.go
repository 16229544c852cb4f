package dto

// RegisterUserRequest body para POST /users.
type RegisterUserRequest struct {
	Name     string `json:"nome" validate:"required,max=60"`
	Email    string `json:"email" validate:"required,email,max=60"`
	Password string `json:"senha" validate:"required"`
}

// LoginRequest body para POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=60"`
	Password string `json:"senha" validate:"required"`
}

// UpdateProfileRequest body para PUT /users/me. Senha vazia mantém a atual;
// cpf e telefone são opcionais.
type UpdateProfileRequest struct {
	Name     string  `json:"nome" validate:"required,max=60"`
	Email    string  `json:"email" validate:"required,email,max=60"`
	Password string  `json:"senha" validate:"-"`
	CPF      *string `json:"cpf" validate:"omitempty,len=14"`
	Phone    *string `json:"telefone" validate:"omitempty,max=15"`
}

// UserResponse usuário em respostas (sem o hash da senha).
type UserResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"nome"`
	Email string  `json:"email"`
	CPF   *string `json:"cpf"`
	Phone *string `json:"telefone"`
}

// LoginResponse body de resposta do login.
type LoginResponse struct {
	User  UserResponse `json:"usuario"`
	Token string       `json:"token"`
}
