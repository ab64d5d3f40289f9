package utils

import "strings"

// NilIfBlank trata string vazia (ou só espaços) como ausência de valor
func NilIfBlank(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}

	return value
}

func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
