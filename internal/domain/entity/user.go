package entity

// User representa um usuário do sistema (dono dos clientes que cadastra).
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // hash bcrypt, nunca em texto plano após persistir
	CPF          *string
	Phone        *string
}

// WithoutPassword devolve uma cópia sem o hash da senha, para uso em
// respostas e no contexto da requisição autenticada.
func (u User) WithoutPassword() User {
	u.PasswordHash = ""
	return u
}
