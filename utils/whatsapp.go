package utils

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// countryCode is the Indonesian dialing prefix substituted for the
// local trunk "0".
const countryCode = "62"

var nonDigit = regexp.MustCompile(`\D`)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// NormalizePhone strips non-digit characters and rewrites a leading
// local "0" to the country code. Numbers without the trunk prefix are
// assumed to be international already and pass through unchanged.
func NormalizePhone(phone string) string {
	clean := nonDigit.ReplaceAllString(phone, "")
	if strings.HasPrefix(clean, "0") {
		return countryCode + clean[1:]
	}
	return clean
}

// FormatRupiah renders a price as e.g. "Rp185.000.000" (id-ID digit
// grouping, no fraction — rupiah listings do not carry cents).
func FormatRupiah(price decimal.Decimal) string {
	return rupiahPrinter.Sprintf("Rp%d", price.IntPart())
}

// GenerateWALink builds a wa.me deep link to the seller, pre-filled
// with an Indonesian inquiry message for the listing. It cannot fail:
// a malformed phone number simply yields a malformed link.
func GenerateWALink(phone, title string, price decimal.Decimal) string {
	msg := fmt.Sprintf(
		"Halo, saya tertarik dengan mobil %s seharga %s yang ada di marketplace Anda. Apakah masih tersedia?",
		title, FormatRupiah(price),
	)
	return fmt.Sprintf("https://wa.me/%s?text=%s", NormalizePhone(phone), url.QueryEscape(msg))
}
