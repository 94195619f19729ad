// Package arrays provides small, pure transformations over slices of
// numbers and strings.
//
// 🚀 What is in the box?
//
//	Nine independent operations, each a single linear pass:
//	  • BookEndList       — keep only the first and last element
//	  • TripleNumbers     — scale every element by 3
//	  • StringsToIntegers — lenient string → number parsing
//	  • RemoveDollars     — strip a leading "$", then parse
//	  • ShoutIfExclaiming — upper-case "!" messages, drop "?" questions
//	  • CountShortWords   — count words shorter than ShortWordLimit
//	  • AllRGB            — every color is red, green or blue
//	  • MakeMath          — render "sum=a+b+c"
//	  • InjectPositive    — splice a running sum after the first negative
//
// ✨ Guarantees:
//   - Inputs are never mutated; slice results are always freshly allocated.
//   - No shared state: every function is safe for concurrent use.
//   - No panics on user input. Lenient parsers substitute 0 for anything
//     that is not a non-zero number; use ParseNumber when a real 0 must be
//     told apart from garbage.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqkit/arrays"
//
//	arrays.MakeMath([]int{1, 2, 3})           // "6=1+2+3"
//	arrays.InjectPositive([]int{1, 9, -5, 7}) // [1 9 -5 10 7]
//	arrays.RemoveDollars([]string{"$10"})     // [10]
//
// Complexity: every operation is O(n) time and O(n) extra memory.
//
// See example_test.go for runnable examples.
package arrays
