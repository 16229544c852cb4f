package dto

// CustomerRequest body para POST /customers e PUT /customers/:id.
// Os campos de endereço são opcionais.
type CustomerRequest struct {
	Name       string `json:"nome" validate:"required,max=60"`
	Email      string `json:"email" validate:"required,email,max=60"`
	CPF        string `json:"cpf" validate:"required,len=14"`
	Phone      string `json:"telefone" validate:"required,max=15"`
	ZipCode    string `json:"cep" validate:"-"`
	Street     string `json:"logradouro" validate:"-"`
	Complement string `json:"complemento" validate:"-"`
	District   string `json:"bairro" validate:"-"`
	City       string `json:"cidade" validate:"-"`
	State      string `json:"estado" validate:"-"`
}

// CustomerResponse cliente em respostas.
type CustomerResponse struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"usuario_id"`
	Name       string `json:"nome"`
	Email      string `json:"email"`
	CPF        string `json:"cpf"`
	Phone      string `json:"telefone"`
	ZipCode    string `json:"cep,omitempty"`
	Street     string `json:"logradouro,omitempty"`
	Complement string `json:"complemento,omitempty"`
	District   string `json:"bairro,omitempty"`
	City       string `json:"cidade,omitempty"`
	State      string `json:"estado,omitempty"`
	Status     string `json:"status,omitempty"`
}

// CustomersByStatusResponse listagem particionada por situação.
type CustomersByStatusResponse struct {
	Delinquent []CustomerResponse `json:"clientesInadimplentes"`
	Current    []CustomerResponse `json:"clientesEmDia"`
}
