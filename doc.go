// Package seqkit is a small toolbox of pure functions over slices of
// numbers and strings.
//
// 🚀 What is seqkit?
//
//	A dependency-light, allocation-honest library for everyday slice
//	chores: book-ending, scaling, lenient number parsing, message
//	filtering, palette checks and rendering sums as equations.
//
// ✨ Why choose seqkit?
//
//   - Pure – no I/O, no globals, inputs are never mutated
//   - Concurrency-safe – every call is independent
//   - Generic – numeric helpers accept any integer or float type
//   - Forgiving – unparseable numbers degrade to 0 instead of failing
//
// Everything lives in one subpackage:
//
//	arrays/ — BookEndList, TripleNumbers, StringsToIntegers, RemoveDollars,
//	          ShoutIfExclaiming, CountShortWords, AllRGB, MakeMath,
//	          InjectPositive, plus the strict ParseNumber and Sum
//
//	go get github.com/katalvlaran/seqkit/arrays
package seqkit
