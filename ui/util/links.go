package util

import (
	"net/url"
	"strings"
	"unicode"
)

const whatsAppBaseURL = "https://wa.me/"

// DigitsOnly strips everything but ASCII digits from s.
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

func PhoneURL(phone string) *url.URL {
	return &url.URL{Scheme: "tel", Opaque: strings.TrimSpace(phone)}
}

func EmailURL(email string) *url.URL {
	return &url.URL{Scheme: "mailto", Opaque: strings.TrimSpace(email)}
}

// WhatsAppURL builds a click-to-chat link. Returns nil if number has no digits.
func WhatsAppURL(number string) *url.URL {
	digits := DigitsOnly(number)
	if digits == "" {
		return nil
	}
	u, _ := url.Parse(whatsAppBaseURL + digits)
	return u
}
