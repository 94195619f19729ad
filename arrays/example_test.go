package arrays_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seqkit/arrays"
)

// ExampleBookEndList shows the three length classes.
func ExampleBookEndList() {
	fmt.Println(arrays.BookEndList([]int{}))
	fmt.Println(arrays.BookEndList([]int{7}))
	fmt.Println(arrays.BookEndList([]int{1, 2, 3, 4}))
	// Output:
	// []
	// [7 7]
	// [1 4]
}

// ExampleRemoveDollars parses price tags, substituting 0 for garbage.
func ExampleRemoveDollars() {
	fmt.Println(arrays.RemoveDollars([]string{"$10", "20", "$0", "abc"}))
	// Output:
	// [10 20 0 0]
}

// ExampleShoutIfExclaiming shouts exclamations and drops questions.
func ExampleShoutIfExclaiming() {
	fmt.Printf("%q\n", arrays.ShoutIfExclaiming([]string{"hi!", "what?", "ok"}))
	// Output:
	// ["HI!" "ok"]
}

// ExampleMakeMath renders a sum as an equation.
func ExampleMakeMath() {
	fmt.Println(arrays.MakeMath([]int{1, 2, 3}))
	fmt.Println(arrays.MakeMath([]int{}))
	// Output:
	// 6=1+2+3
	// 0=0
}

// ExampleInjectPositive covers both the insert and the append case.
func ExampleInjectPositive() {
	fmt.Println(arrays.InjectPositive([]int{1, 9, -5, 7}))
	fmt.Println(arrays.InjectPositive([]int{1, 9, 7}))
	// Output:
	// [1 9 -5 10 7]
	// [1 9 7 17]
}

// ExampleParseNumber tells a real zero apart from garbage, which the
// lenient StringsToIntegers cannot.
func ExampleParseNumber() {
	for _, s := range []string{"0", "abc"} {
		v, err := arrays.ParseNumber(s)
		switch {
		case errors.Is(err, arrays.ErrNotANumber):
			fmt.Printf("%s: not a number\n", s)
		case err != nil:
			fmt.Printf("%s: %v\n", s, err)
		default:
			fmt.Printf("%s: %v\n", s, v)
		}
	}
	fmt.Println(arrays.StringsToIntegers([]string{"0", "abc"}))
	// Output:
	// 0: 0
	// abc: not a number
	// [0 0]
}
