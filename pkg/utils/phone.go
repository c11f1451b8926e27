package utils

import "strings"

// MaskPhone hides all but the last four digits of a phone number so the
// QR payload never carries the full contact.
func MaskPhone(phone string) string {
	if len(phone) <= 4 {
		return strings.Repeat("*", len(phone))
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}
