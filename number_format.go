package exceldate

// The date token scanner follows the number format parser of
// https://github.com/tealeg/xlsx

import (
	"strings"
)

// Number formats to attach to cells holding serials written by this package.
const (
	DefaultDateFormat     = `yyyy\-mm\-dd;@`
	DefaultTimeFormat     = `hh:mm:ss;@`
	DefaultDateTimeFormat = `yyyy\-mm\-dd hh:mm:ss`
)

var builtinNumFormats = []string{
	0:  "general",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	9:  "0%",
	10: "0.00%",
	11: "0.00e+00",
	12: "# ?/?",
	13: "# ??/??",
	14: "mm-dd-yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm am/pm",
	19: "h:mm:ss am/pm",
	20: "h:mm",
	21: "h:mm:ss",
	22: "m/d/yy h:mm",
	37: "#,##0 ;(#,##0)",
	38: "#,##0 ;[red](#,##0)",
	39: "#,##0.00;(#,##0.00)",
	40: "#,##0.00;[red](#,##0.00)",
	41: `_(* #,##0_);_(* \(#,##0\);_(* "-"_);_(@_)`,
	42: `_("$"* #,##0_);_("$* \(#,##0\);_("$"* "-"_);_(@_)`,
	43: `_(* #,##0.00_);_(* \(#,##0.00\);_(* "-"??_);_(@_)`,
	44: `_("$"* #,##0.00_);_("$"* \(#,##0.00\);_("$"* "-"??_);_(@_)`,
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mmss.0",
	48: "##0.0e+0",
	49: "@",
}

// BuiltinFormat returns the format code of a builtin numFmtId. Locale
// dependent ids without a fixed code report false.
func BuiltinFormat(id int) (string, bool) {
	if id < 0 || id >= len(builtinNumFormats) || builtinNumFormats[id] == "" {
		return "", false
	}
	return builtinNumFormats[id], true
}

// IsBuiltinDateFormat reports whether a builtin numFmtId displays a date, a
// time or both (ECMA-376 §18.8.30).
func IsBuiltinDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// IsDateFormat reports whether a custom format code shows its number as a
// date or time. Only the first section decides, as it formats positive
// numbers and serials are never negative.
func IsDateFormat(code string) bool {
	sections, err := splitFormat(code)
	if err != nil {
		return false
	}
	section := strings.TrimSpace(sections[0])
	if isGeneralFormat(section) {
		return false
	}
	return hasDateTokens(section)
}

func splitFormat(format string) ([]string, error) {
	var result []string
	prevIndex := 0
	for i := 0; i < len(format); i++ {
		if format[i] == ';' {
			result = append(result, format[prevIndex:i])
			prevIndex = i + 1
		} else if format[i] == '\\' {
			i++
		} else if format[i] == '"' {
			endQuoteIndex := strings.Index(format[i+1:], `"`)
			if endQuoteIndex == -1 {
				return nil, ErrDoubleQuote
			}
			i += endQuoteIndex + 1
		}
	}
	return append(result, format[prevIndex:]), nil
}

func isGeneralFormat(format string) bool {
	return format == "" || strings.EqualFold(format, "general")
}

// hasDateTokens accepts a section made only of date/time tokens, literals
// and bracketed modifiers, with at least one date/time token.
func hasDateTokens(format string) bool {
	var found bool

	runes := []rune(format)
	for i := 0; i < len(runes); i++ {
		cur := runes[i:]
		switch cur[0] {
		case '\\', '_':
			if len(cur) > 1 {
				i++
			}
		case '*':
		case '"':
			endQuoteIndex, err := skipToRune(cur, '"')
			if err != nil {
				return false
			}
			i += endQuoteIndex
		case '$', '-', '+', '/', '(', ')', ':', '!', '^', '&', '\'', '~', '{', '}', '<', '>', '=', ' ', ',', '.':
		default:
			if n := dateTokenLen(cur); n > 0 {
				found = true
				i += n - 1
				continue
			}
			if cur[0] == '[' {
				bracketIndex, err := skipToRune(cur, ']')
				if err != nil {
					return false
				}
				i += bracketIndex
				continue
			}
			return false
		}
	}
	return found
}

func dateTokenLen(runes []rune) int {
	s := string(runes)
	for _, token := range dateTokens {
		if strings.HasPrefix(s, token) {
			return len([]rune(token))
		}
	}
	return 0
}

func skipToRune(runes []rune, r rune) (int, error) {
	for i := 1; i < len(runes); i++ {
		if runes[i] == r {
			return i, nil
		}
	}
	return -1, ErrNoClosingQuote
}

// Longer tokens come first so "AM/PM" is not read as "A" and "M".
var dateTokens = []string{
	"[ss].0000", "[ss].000", "[ss].00", "[ss].0", "[ss]",
	"[s].0000", "[s].000", "[s].00", "[s].0", "[s]",
	"[hh]", "[h]", "[mm]", "[m]",
	"ss.0000", "ss.000", "ss.00", "ss.0",
	"s.0000", "s.000", "s.00", "s.0",
	"AM/PM", "am/pm", "A/P", "a/p",
	"b1", "b2",
	"YYYY", "yyyy", "YY", "yy", "Y", "y",
	"MM", "M", "mm", "m",
	"DD", "D", "dd", "d",
	"HH", "H", "hh", "h",
	"SS", "S", "ss", "s",
	"r", "g", "e",
	"上", "午", "下",
}
