package validators

import "strings"

// NormalizePhone descarta tudo que não for dígito. É o formato de
// armazenamento canônico.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidPhone aplica a regra brasileira: 10 dígitos (fixo) ou 11
// (celular), DDD entre 11 e 99 e, no celular, o terceiro dígito deve
// ser 9.
func IsValidPhone(phone string) bool {
	digits := NormalizePhone(phone)

	if len(digits) < 10 || len(digits) > 11 {
		return false
	}

	ddd := int(digits[0]-'0')*10 + int(digits[1]-'0')
	if ddd < 11 || ddd > 99 {
		return false
	}

	if len(digits) == 11 && digits[2] != '9' {
		return false
	}

	return true
}
