package bizno

import "strings"

var weights = [9]int{1, 3, 7, 1, 3, 7, 1, 3, 5}

// Normalize удаляет пробелы и дефисы ("123-45-67890" -> "1234567890")
func Normalize(number string) string {
	number = strings.ReplaceAll(number, " ", "")
	return strings.ReplaceAll(number, "-", "")
}

// Validate проверяет контрольную цифру номера регистрации бизнеса
// (10 цифр, допускаются дефисы в формате 123-45-67890)
func Validate(number string) bool {
	number = Normalize(number)

	if len(number) != 10 {
		return false
	}

	digits := make([]int, 10)
	for i, ch := range number {
		if ch < '0' || ch > '9' {
			return false
		}
		digits[i] = int(ch - '0')
	}

	sum := 0
	for i, w := range weights {
		sum += digits[i] * w
	}
	// Девятая цифра дополнительно дает десятки своего произведения на 5
	sum += digits[8] * 5 / 10

	check := (10 - sum%10) % 10
	return check == digits[9]
}
