package bstr_test

import (
	"fmt"

	"github.com/npillmayer/bstr"
)

func Example() {
	s := bstr.FromString("Hello World!")
	s.Insert([]byte("Big "), 6)
	s.Overwrite([]byte("?!"), -3)
	fmt.Println(s)
	fmt.Println("embedded:", s.IsEmbedded())
	// Output:
	// Hello Big Worl?!
	// embedded: true
}

func ExampleString_zeroValue() {
	var s bstr.String // ready for use, no constructor needed
	s.WriteString("binary\x00safe")
	fmt.Println(s.Len())
	// Output: 11
}

func ExampleString_Freeze() {
	s := bstr.FromString("sealed")
	s.Freeze()
	s.WriteString(" and ignored")
	fmt.Println(s)
	// Output: sealed
}

func ExampleString_Compact() {
	s := bstr.New()
	s.Reserve(4096) // promoted to a heap buffer
	s.WriteString("tiny")
	s.Compact() // fits the embedded storage again
	fmt.Println(s, s.IsEmbedded())
	// Output: tiny true
}
