package arraytex

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numberFormatRegex matches [sign][#][0][width][,][.precision][type].
var numberFormatRegex = regexp.MustCompile(`^([-+ ])?(#)?(0)?(\d+)?(,)?(?:\.(\d+))?([deEfFgG%])?$`)

// maxFormatDigits bounds width and precision, matching the limit fmt applies.
const maxFormatDigits = 1_000_000

// numberFormat is a parsed number format specifier.
type numberFormat struct {
	spec  string
	sign  byte // 0, '+' or ' '
	alt   bool
	zero  bool
	width int
	group bool
	prec  int  // -1 when unset
	verb  byte // 0 when unset
}

func parseNumberFormat(spec string) (numberFormat, error) {
	m := numberFormatRegex.FindStringSubmatch(spec)
	if m == nil {
		return numberFormat{}, &FormatError{Spec: spec, Reason: "expected [sign][#][0][width][,][.precision][type]"}
	}
	nf := numberFormat{spec: spec, prec: -1}
	if m[1] == "+" || m[1] == " " {
		nf.sign = m[1][0]
	}
	nf.alt = m[2] != ""
	nf.zero = m[3] != ""
	if m[4] != "" {
		w, err := strconv.Atoi(m[4])
		if err != nil || w > maxFormatDigits {
			return numberFormat{}, &FormatError{Spec: spec, Reason: "width out of range"}
		}
		nf.width = w
	}
	nf.group = m[5] != ""
	if m[6] != "" {
		p, err := strconv.Atoi(m[6])
		if err != nil || p > maxFormatDigits {
			return numberFormat{}, &FormatError{Spec: spec, Reason: "precision out of range"}
		}
		nf.prec = p
	}
	if m[7] != "" {
		nf.verb = m[7][0]
	}
	if nf.verb == 'd' && nf.prec >= 0 {
		return numberFormat{}, &FormatError{Spec: spec, Reason: "precision not allowed with format code 'd'"}
	}
	return nf, nil
}

// check reports whether the format can render every value of a.
func (nf numberFormat) check(a Array) error {
	if nf.verb == 'd' && !a.IsInt() {
		return &FormatError{Spec: nf.spec, Reason: "format code 'd' requires integer values"}
	}
	return nil
}

// render formats the i-th value of a.
func (nf numberFormat) render(a Array, i int) string {
	v := a.floats[i]
	if s, ok := nonFinite(v, nf.sign); ok {
		return s
	}

	var s string
	switch {
	case nf.verb == 'd' || (nf.verb == 0 && nf.prec < 0 && a.IsInt()):
		s = fmt.Sprintf("%"+nf.flags(false)+"d", a.integer(i))
	case nf.verb == 0 && nf.prec < 0:
		s = withSign(shortestFloat(v), nf.sign)
	case nf.verb == '%':
		s = fmt.Sprintf("%"+nf.flags(nf.alt)+"."+strconv.Itoa(nf.precision())+"f", v*100)
	default:
		verb := nf.verb
		if verb == 0 {
			verb = 'g'
		}
		s = fmt.Sprintf("%"+nf.flags(nf.alt)+"."+strconv.Itoa(nf.precision())+string(verb), v)
	}

	switch {
	case nf.group && nf.zero:
		s = nf.padGrouped(s)
	case nf.group:
		s = nf.pad(groupThousands(s))
	default:
		s = nf.pad(s)
	}
	if nf.verb == '%' {
		s += `\%`
	}
	return s
}

func (nf numberFormat) precision() int {
	if nf.prec < 0 {
		return 6
	}
	return nf.prec
}

func (nf numberFormat) flags(alt bool) string {
	var sb strings.Builder
	if nf.sign != 0 {
		sb.WriteByte(nf.sign)
	}
	if alt {
		sb.WriteByte('#')
	}
	return sb.String()
}

func (nf numberFormat) pad(s string) string {
	n := nf.width - len(s)
	if n <= 0 {
		return s
	}
	if !nf.zero {
		return strings.Repeat(" ", n) + s
	}
	if s != "" && strings.ContainsRune("+- ", rune(s[0])) {
		return s[:1] + strings.Repeat("0", n) + s[1:]
	}
	return strings.Repeat("0", n) + s
}

// padGrouped zero-pads the leading digits of s and groups them, so the
// inserted zeros are grouped too: "08," turns 1234 into 0,001,234.
func (nf numberFormat) padGrouped(s string) string {
	start, end := leadingDigits(s)
	digits := s[start:end]
	for {
		grouped := groupThousands(digits)
		if start+len(grouped)+len(s)-end >= nf.width {
			return s[:start] + grouped + s[end:]
		}
		digits = "0" + digits
	}
}

// defaultRender formats the i-th value of a without a number format.
func defaultRender(a Array, i int) string {
	switch {
	case a.uints != nil:
		return strconv.FormatUint(a.uints[i], 10)
	case a.ints != nil:
		return strconv.FormatInt(a.ints[i], 10)
	}
	v := a.floats[i]
	if s, ok := nonFinite(v, 0); ok {
		return s
	}
	return shortestFloat(v)
}

// shortestFloat renders v with the fewest digits that round-trip, switching
// to exponent form outside [1e-4, 1e16).
func shortestFloat(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func nonFinite(v float64, sign byte) (string, bool) {
	switch {
	case math.IsNaN(v):
		return `\mathrm{NaN}`, true
	case math.IsInf(v, -1):
		return `-\infty`, true
	case math.IsInf(v, 1):
		return withSign(`\infty`, sign), true
	default:
		return "", false
	}
}

func withSign(s string, sign byte) string {
	if sign == 0 || strings.HasPrefix(s, "-") {
		return s
	}
	return string(sign) + s
}

// groupThousands inserts commas into the leading run of digits of s.
func groupThousands(s string) string {
	start, end := leadingDigits(s)
	digits := s[start:end]
	if len(digits) <= 3 {
		return s
	}
	var sb strings.Builder
	sb.WriteString(s[:start])
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	sb.WriteString(s[end:])
	return sb.String()
}

// leadingDigits returns the bounds of the digit run that follows an optional
// sign at the start of s.
func leadingDigits(s string) (start, end int) {
	if s != "" && strings.ContainsRune("+- ", rune(s[0])) {
		start = 1
	}
	end = start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return start, end
}
