package logger

import "strings"

// RedactEmail masks an email address for safe logging.
// "john.doe@example.com" → "jo***@example.com"
// Short local parts (≤2 chars) are fully masked: "ab@example.com" → "***@example.com"
func RedactEmail(email string) string {
	at := strings.Index(email, "@")
	if at < 0 || strings.Count(email, "@") != 1 {
		return email
	}
	name := email[:at]
	if len(name) > 2 {
		return name[:2] + "***@" + email[at+1:]
	}
	return "***@" + email[at+1:]
}

// RedactPhone masks a phone number, keeping only the last two digits.
// "+1-555-0123" → "***23"
func RedactPhone(phone string) string {
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 4 {
		return "***"
	}
	return "***" + phone[len(phone)-2:]
}
