package utils

import (
	"net/url"
	"strings"
)

// NormalizeMSISDN converts a phone number to international format. A leading
// local trunk "0" is replaced with the country code; otherwise the digits are
// passed through untouched. No further validation is done.
func NormalizeMSISDN(phone, countryCode string) string {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "+", "").Replace(phone)
	if strings.HasPrefix(cleaned, "0") {
		return countryCode + cleaned[1:]
	}
	return cleaned
}

// WhatsAppLink builds a click-to-chat deep link with the message pre-filled.
// The link needs no API credential; opening it hands off to the WhatsApp app.
func WhatsAppLink(baseURL, msisdn, body string) string {
	return baseURL + "/" + msisdn + "?text=" + url.QueryEscape(body)
}
