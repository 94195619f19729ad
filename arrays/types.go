// SPDX-License-Identifier: MIT

package arrays

import "golang.org/x/exp/constraints"

// Number is any built-in integer or floating-point type (including named
// types derived from them). Arithmetic on a Number keeps Go's semantics
// for the element type: narrow integers wrap around on overflow.
type Number interface {
	constraints.Integer | constraints.Float
}

// ShortWordLimit is the exclusive upper bound, in characters, for a word
// counted by CountShortWords.
const ShortWordLimit = 4

// Color names accepted by AllRGB. Matching is exact and case-sensitive.
const (
	ColorRed   = "red"
	ColorGreen = "green"
	ColorBlue  = "blue"
)

// Markers inspected by ShoutIfExclaiming and RemoveDollars.
const (
	exclaimSuffix  = "!"
	questionSuffix = "?"
	dollarPrefix   = "$"
)

// EmptyMath is what MakeMath renders for an empty input.
const EmptyMath = "0=0"
