package entity

// Situações do cliente, derivadas das suas cobranças.
const (
	CustomerStatusCurrent    = "Em dia"
	CustomerStatusDelinquent = "Inadimplente"
)

// Customer representa um cliente cadastrado por um usuário.
// Status é um campo derivado: recalculado a cada listagem completa a partir
// das cobranças do cliente.
type Customer struct {
	ID         int64
	UserID     int64
	Name       string
	Email      string
	CPF        string // formatado, 14 caracteres (000.000.000-00)
	Phone      string
	ZipCode    string
	Street     string
	Complement string
	District   string
	City       string
	State      string
	Status     string
}
