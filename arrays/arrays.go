package arrays

import (
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BookEndList returns a new slice holding only the first and last element
// of values. A single element is repeated twice; an empty input yields an
// empty (non-nil) slice.
func BookEndList[T any](values []T) []T {
	if len(values) == 0 {
		return []T{}
	}

	return []T{values[0], values[len(values)-1]}
}

// TripleNumbers returns a new slice with every element multiplied by 3.
func TripleNumbers[T Number](values []T) []T {
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = v * 3
	}

	return out
}

// StringsToIntegers parses each string as a number. Anything that does not
// parse to a non-zero number becomes 0, so a literal "0" and "abc" are
// indistinguishable in the result.
func StringsToIntegers(values []string) []float64 {
	out := make([]float64, len(values))
	for i, s := range values {
		out[i] = lenientNumber(s)
	}

	return out
}

// RemoveDollars strips one leading "$" from each amount, then parses it the
// way StringsToIntegers does. Only the first character is inspected, so
// "$$5" still fails to parse and becomes 0.
func RemoveDollars(amounts []string) []float64 {
	out := make([]float64, len(amounts))
	for i, s := range amounts {
		out[i] = lenientNumber(strings.TrimPrefix(s, dollarPrefix))
	}

	return out
}

// ShoutIfExclaiming upper-cases every message ending in "!" and drops every
// message ending in "?". Relative order of the survivors is kept.
//
// Upper-casing uses full Unicode case mapping, so "ß" becomes "SS".
func ShoutIfExclaiming(messages []string) []string {
	// A Caser carries state and must not be shared between goroutines.
	upper := cases.Upper(language.Und)

	out := make([]string, 0, len(messages))
	for _, m := range messages {
		if strings.HasSuffix(m, exclaimSuffix) {
			m = upper.String(m)
		}
		if strings.HasSuffix(m, questionSuffix) {
			continue
		}
		out = append(out, m)
	}

	return out
}

// CountShortWords reports how many words have fewer than ShortWordLimit
// characters. Length is measured in runes, not bytes.
func CountShortWords(words []string) int {
	count := 0
	for _, w := range words {
		if utf8.RuneCountInString(w) < ShortWordLimit {
			count++
		}
	}

	return count
}

// AllRGB reports whether every color is exactly "red", "green" or "blue".
// An empty slice is vacuously true.
func AllRGB(colors []string) bool {
	for _, c := range colors {
		switch c {
		case ColorRed, ColorGreen, ColorBlue:
		default:
			return false
		}
	}

	return true
}

// MakeMath renders addends as an equation: the sum, "=", then the addends
// joined by "+" in their original order. []int{1, 2, 3} gives "6=1+2+3";
// an empty slice gives EmptyMath ("0=0").
func MakeMath[T Number](addends []T) string {
	if len(addends) == 0 {
		return EmptyMath
	}

	var b strings.Builder
	b.WriteString(formatNumber(Sum(addends)))
	b.WriteByte('=')
	for i, v := range addends {
		if i > 0 {
			b.WriteByte('+')
		}
		b.WriteString(formatNumber(v))
	}

	return b.String()
}

// InjectPositive returns a copy of values one element longer.
//
// If some element is negative, the sum of everything before the first
// negative element is inserted directly after it. Otherwise the total is
// appended. []int{1, 9, -5, 7} gives [1 9 -5 10 7]; []int{1, 9, 7} gives
// [1 9 7 17].
func InjectPositive[T Number](values []T) []T {
	idx := firstNegative(values)
	if idx < 0 {
		out := make([]T, 0, len(values)+1)
		out = append(out, values...)

		return append(out, Sum(values))
	}

	out := make([]T, 0, len(values)+1)
	out = append(out, values[:idx+1]...)
	out = append(out, Sum(values[:idx]))

	return append(out, values[idx+1:]...)
}

// Sum returns the arithmetic total of values, added left to right.
// The sum of an empty slice is 0. Integer overflow wraps around as Go
// arithmetic does for T, so []int8{100, 100} sums to -56.
func Sum[T Number](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}

	return total
}

// firstNegative returns the index of the first element < 0, or -1.
func firstNegative[T Number](values []T) int {
	for i, v := range values {
		if v < 0 {
			return i
		}
	}

	return -1
}

// formatNumber prints v in plain base-10: integers as-is, floats in the
// shortest form that round-trips, never with an exponent. Negative zero
// prints as "0".
func formatNumber[T Number](v T) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32:
		return strconv.FormatFloat(positiveZero(rv.Float()), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(positiveZero(rv.Float()), 'f', -1, 64)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	default:
		return strconv.FormatUint(rv.Uint(), 10)
	}
}

// positiveZero maps -0 to +0 and leaves every other value alone.
func positiveZero(f float64) float64 {
	if f == 0 {
		return 0
	}

	return f
}
