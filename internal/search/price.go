package search

import (
	"strconv"
	"strings"
)

// ExtractPrice убирает из строки всё, кроме цифр, и парсит результат.
// Нет цифр или переполнение — 0. Эвристика намеренно грубая: "AED 1,299.50" даёт 129950.
func ExtractPrice(price string) int {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, price)

	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
