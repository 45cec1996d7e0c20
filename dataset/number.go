package dataset

import (
	"strconv"
	"strings"
)

const leadingSpace = " \t\n\v\f\r"

/*
ParseFloat parses the longest leading decimal number of s, after skipping
leading whitespace. Trailing content is ignored, so "1,5" reads as 1 and
"2.5 cm" as 2.5. Infinities and NaN are read by name as strconv does.
Hexadecimal notation is not recognized. An error is returned when s has no
leading number or the number is out of range.
*/
func ParseFloat(s string) (float64, error) {
	t := strings.TrimLeft(s, leadingSpace)
	if n := namedFloatPrefix(t); n > 0 {
		return strconv.ParseFloat(t[:n], 64)
	}
	n := decimalPrefix(t)
	if n == 0 {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	return strconv.ParseFloat(t[:n], 64)
}

/*
ParseInt parses the longest leading integer of s, after skipping leading
whitespace, so "1.0" reads as 1 and "3 units" as 3. An error is returned when
s has no leading integer or it does not fit in an int.
*/
func ParseInt(s string) (int, error) {
	t := strings.TrimLeft(s, leadingSpace)
	n := signPrefix(t)
	digits := digitPrefix(t[n:])
	if digits == 0 {
		return 0, &strconv.NumError{Func: "Atoi", Num: s, Err: strconv.ErrSyntax}
	}
	return strconv.Atoi(t[:n+digits])
}

// decimalPrefix returns the length of the leading [sign]digits[.digits][exponent]
// of s, or 0 if it has no digit before the exponent.
func decimalPrefix(s string) int {
	i := signPrefix(s)
	intDigits := digitPrefix(s[i:])
	i += intDigits
	var fracDigits int
	if i < len(s) && s[i] == '.' {
		fracDigits = digitPrefix(s[i+1:])
		if intDigits+fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits+fracDigits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		j += signPrefix(s[j:])
		if d := digitPrefix(s[j:]); d > 0 {
			i = j + d
		}
	}
	return i
}

func namedFloatPrefix(s string) int {
	sign := signPrefix(s)
	rest := strings.ToLower(s[sign:])
	for _, name := range []string{"infinity", "inf", "nan"} {
		if strings.HasPrefix(rest, name) {
			return sign + len(name)
		}
	}
	return 0
}

func signPrefix(s string) int {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		return 1
	}
	return 0
}

func digitPrefix(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}
