package main

import (
	"bytes"
	"fmt"

	vector "github.com/Jonas-Zachs/Vector-Iterator"
)

func main() {
	// trace ownership operations to stdout so it is visible which
	// path each statement below takes
	config := vector.Config{
		Trace: func(op vector.Op) {
			fmt.Printf("%s called\n", op)
		},
	}

	vec := vector.NewWithConfig[uint64](config)
	for _, val := range []uint64{1, 2, 3, 4, 5} {
		vec.Push(val)
	}
	fmt.Printf("built vector with size %d, capacity %d\n", vec.Len(), vec.Cap())

	// deep copy, then reverse the copy; the original is untouched
	vec2 := vec.Clone()
	vec2.Reverse()

	fmt.Print("Vector contents: ")
	for it := vec2.CEnd(); it != vec2.CBegin(); {
		it.Prev()
		fmt.Printf("%d ", it.Value())
	}
	fmt.Println()

	vec.Push(6)
	fmt.Print("After Push(6): ")
	for it := vec.CBegin(); it != vec.CEnd(); it.Next() {
		fmt.Printf("%d ", it.Value())
	}
	fmt.Println()

	if err := vec.Pop(); err != nil {
		panic(err)
	}
	fmt.Print("After Pop(): ")
	vec.Each(func(_ uint, val uint64) {
		fmt.Printf("%d ", val)
	})
	fmt.Println()

	// serialize the vector and report size
	buf := bytes.NewBuffer([]byte{})
	vec.WriteTo(buf)
	fmt.Printf("vector serializes into %d bytes\n", buf.Len())
}
