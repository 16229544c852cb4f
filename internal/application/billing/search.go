package billing

import (
	"strconv"
	"strings"
)

// isNumericQuery decide o modo da pesquisa livre: consultas numéricas
// comparam com CPF (clientes) ou id (cobranças); as demais fazem busca por
// substring.
func isNumericQuery(q string) bool {
	_, err := strconv.ParseFloat(q, 64)
	return err == nil
}

// cpfDigits remove os separadores do CPF formatado (000.000.000-00).
func cpfDigits(cpf string) string {
	cpf = strings.ReplaceAll(cpf, ".", "")
	return strings.ReplaceAll(cpf, "-", "")
}
