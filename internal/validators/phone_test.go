package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "11988887777", NormalizePhone("(11) 98888-7777"))
	assert.Equal(t, "1133334444", NormalizePhone("11 3333-4444"))
	assert.Equal(t, "", NormalizePhone("abc"))
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"celular com máscara", "(11) 98888-7777", true},
		{"celular só dígitos", "11988887777", true},
		{"fixo com 10 dígitos", "1133334444", true},
		{"nove dígitos é curto demais", "119999999", false},
		{"doze dígitos é longo demais", "119888877776", false},
		{"DDD 10 não existe", "(10) 98888-7777", false},
		{"DDD 01 não existe", "0198888777", false},
		{"celular sem o 9 na terceira posição", "11788887777", false},
		{"vazio", "", false},
		{"só letras", "telefone", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPhone(tt.phone))
		})
	}
}
