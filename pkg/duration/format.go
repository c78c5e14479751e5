package duration

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Auto is the template that chooses a layout by magnitude.
const Auto = "auto"

// Layouts used by Auto.
const (
	LayoutDays    = "%dd:%hh:%mm-%ss"
	LayoutMinutes = "%mm%ss%msms"
	LayoutNanos   = "%nsns"
)

// FormatError describes a malformed template.
type FormatError struct {
	Format string
	Offset int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid duration format %q at offset %d: %s", e.Format, e.Offset, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidFormat.
func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}

// token is either a literal byte or a unit field.
type token struct {
	field bool
	unit  Unit
	lit   byte
}

// scan splits a template into tokens. In strict mode a malformed verb is an
// error; otherwise it is kept as literal text.
func scan(format string, strict bool) ([]token, error) {
	toks := make([]token, 0, len(format))
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			toks = append(toks, token{lit: c})
			continue
		}
		u, n, reason := verb(format, i)
		switch {
		case reason == "":
			toks = append(toks, token{field: true, unit: u})
			i += n - 1
		case reason == "%":
			toks = append(toks, token{lit: '%'})
			i++
		case strict:
			return nil, &FormatError{Format: format, Offset: i, Reason: reason}
		default:
			toks = append(toks, token{lit: '%'})
		}
	}
	return toks, nil
}

// verb decodes the field starting with the '%' at format[i]. n counts the
// bytes of the verb including the '%'. reason is "%" for an escaped percent
// sign and a description for a malformed verb.
func verb(format string, i int) (u Unit, n int, reason string) {
	if i+1 >= len(format) {
		return 0, 0, "trailing %"
	}
	next := func() byte {
		if i+2 < len(format) {
			return format[i+2]
		}
		return 0
	}
	switch format[i+1] {
	case '%':
		return 0, 2, "%"
	case 'd':
		return Days, 2, ""
	case 'h':
		return Hours, 2, ""
	case 's':
		return Seconds, 2, ""
	case 'm':
		if next() == 's' {
			return Milliseconds, 3, ""
		}
		return Minutes, 2, ""
	case 'u':
		if next() == 's' {
			return Microseconds, 3, ""
		}
		return 0, 0, "%u must be followed by s"
	case 'n':
		if next() == 's' {
			return Nanoseconds, 3, ""
		}
		return 0, 0, "%n must be followed by s"
	}
	return 0, 0, fmt.Sprintf("unknown verb %%%c", format[i+1])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Parse reads text according to format.
//
// Each field consumes the run of ASCII digits at the current position; a
// field with no digits counts as zero. Each literal in the format skips text
// up to and including its next occurrence, but never skips past a digit.
// Field values are added together, so "%s %ms" on "1 500" is 1.5 seconds.
func Parse(text, format string) (Duration, error) {
	toks, err := scan(format, true)
	if err != nil {
		return 0, err
	}

	var total Duration
	pos := 0
	for _, t := range toks {
		if !t.field {
			for pos < len(text) {
				c := text[pos]
				if c == t.lit {
					pos++
					break
				}
				if isDigit(c) {
					break
				}
				pos++
			}
			continue
		}

		start := pos
		for pos < len(text) && isDigit(text[pos]) {
			pos++
		}
		if pos == start {
			continue
		}
		n, err := strconv.ParseUint(text[start:pos], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrOutOfRange, text[start:pos])
		}
		hi, ns := bits.Mul64(n, uint64(t.unit.Size()))
		sum, carry := bits.Add64(uint64(total), ns, 0)
		if hi != 0 || carry != 0 {
			return 0, fmt.Errorf("%w: %s%s", ErrOutOfRange, text[start:pos], t.unit.Symbol())
		}
		total = Duration(sum)
	}
	return total, nil
}

// MustParse is like Parse but panics on error. It simplifies initialization
// of package-level variables.
func MustParse(text, format string) Duration {
	d, err := Parse(text, format)
	if err != nil {
		panic(err)
	}
	return d
}

// Format renders d using a template. A field counts its unit modulo the
// nearest larger unit that also appears in the template; without one it
// counts the whole duration. Malformed verbs are copied literally.
//
// The template Auto looks at the components of d: LayoutDays when the days
// component is set, LayoutMinutes when the seconds or milliseconds component
// is set, and LayoutNanos otherwise.
func (d Duration) Format(pattern string) string {
	if pattern == Auto {
		pattern = autoLayout(d)
	}
	toks, _ := scan(pattern, false)

	var present [len(units)]bool
	for _, t := range toks {
		if t.field {
			present[t.unit] = true
		}
	}

	var b strings.Builder
	for _, t := range toks {
		if !t.field {
			b.WriteByte(t.lit)
			continue
		}
		b.WriteString(strconv.FormatUint(d.field(t.unit, present), 10))
	}
	return b.String()
}

func (d Duration) field(u Unit, present [len(units)]bool) uint64 {
	v := uint64(d / u.Size())
	for larger := u + 1; int(larger) < len(units); larger++ {
		if present[larger] {
			return v % uint64(larger.Size()/u.Size())
		}
	}
	return v
}

func autoLayout(d Duration) string {
	c := d.Components()
	switch {
	case c.Days > 0:
		return LayoutDays
	case c.Seconds > 0 || c.Milliseconds > 0:
		return LayoutMinutes
	default:
		return LayoutNanos
	}
}

// String formats d with the Auto template.
func (d Duration) String() string {
	return d.Format(Auto)
}
