package document

import (
	"strconv"
	"strings"
	"time"
)

// monthNames are the Indonesian month names used in long-form dates.
var monthNames = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatLongDate renders a date in long Indonesian form: "17 Agustus 2024".
func FormatLongDate(t time.Time) string {
	return strconv.Itoa(t.Day()) + " " + monthNames[int(t.Month())-1] + " " + strconv.Itoa(t.Year())
}

// FormatRupiah renders an amount with dot thousands separators and the
// "Rp" prefix: 1234567 -> "Rp 1.234.567".
func FormatRupiah(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString("Rp ")
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteString(".")
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteString(".")
		}
	}
	return b.String()
}

// FormatDuration renders an inclusive day count: "3 hari".
func FormatDuration(days int) string {
	return strconv.Itoa(days) + " hari"
}

// FormatNIP groups an 18-digit NIP the way official documents print it:
// "196805171990031003" -> "19680517 199003 1 003". Other shapes pass through.
func FormatNIP(nip string) string {
	clean := strings.ReplaceAll(nip, " ", "")
	if len(clean) != 18 {
		return nip
	}
	return clean[:8] + " " + clean[8:14] + " " + clean[14:15] + " " + clean[15:]
}

// TitleCase uppercases the first letter of every word: ranks like
// "penata muda" print as "Penata Muda".
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
