package sanitizer

import "strings"

// MaskEmail keeps the first character of the local part and the domain.
// Values without exactly one "@" are returned trimmed and unmasked.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return email
	}
	runes := []rune(local)
	return string(runes[0]) + strings.Repeat("*", len(runes)-1) + "@" + domain
}

// NormalizePhone strips everything but digits.
func NormalizePhone(phone string) string {
	return KeepDigits(phone)
}

// MaskPhone shows only the last four digits.
func MaskPhone(phone string) string {
	digits := NormalizePhone(phone)
	if len(digits) <= 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
