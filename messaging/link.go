package messaging

import (
	"net/url"
	"strings"
)

// DefaultCountryCode prefixes every recipient number (Brazil).
const DefaultCountryCode = "55"

// WhatsAppLink builds the deep link that opens WhatsApp pre-filled with the
// recipient and text: https://wa.me/<cc><phone>?text=<urlencoded>. The
// phone number is stripped of common formatting characters first.
func WhatsAppLink(countryCode, phone, text string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	return "https://wa.me/" + countryCode + digits + "?text=" + url.QueryEscape(text)
}
