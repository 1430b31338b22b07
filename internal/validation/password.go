package validation

import (
	"fmt"
	"unicode/utf8"
)

// ValidatePassword проверяет минимальную длину пароля.
// Остальные требования к паролю проверяет API.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return fmt.Errorf("пароль должен быть не менее %d символов", MinPasswordLength)
	}
	return nil
}
