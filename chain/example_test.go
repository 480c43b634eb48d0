// Package chain_test also carries runnable examples demonstrating how to
// call Thurber, in the style of dijkstra's ExampleXxx functions.
package chain_test

import (
	"fmt"

	"github.com/lvlath-labs/thurberchain/chain"
	"github.com/lvlath-labs/thurberchain/vector"
)

// ExampleThurberInt_powerOfTwo shows the shortest chain length for a power
// of two, which is always its base-2 logarithm (pure doubling).
func ExampleThurberInt_powerOfTwo() {
	length, err := chain.ThurberInt(1024)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(length)
	// Output: 10
}

// ExampleThurberInt_fifteen shows a target that needs one non-doubling
// step: 1, 2, 3, 5, 10, 15.
func ExampleThurberInt_fifteen() {
	length, err := chain.ThurberInt(15)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(length)
	// Output: 5
}

// ExampleThurber_vector shows the vector form on a 2-dimensional target.
func ExampleThurber_vector() {
	length, err := chain.Thurber(vector.Vector{1, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(length)
	// Output: 1
}

// ExampleThurber_outOfSpace shows the OutOfSpace error for a zero-sum
// target.
func ExampleThurber_outOfSpace() {
	_, err := chain.Thurber(vector.Vector{0, 0, 0})
	fmt.Println(err)
	// Output: chain: target vector is not in the search space
}
