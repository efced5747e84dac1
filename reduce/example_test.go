package reduce_test

import (
	"fmt"

	"github.com/cwbudde/algo-reduce/reduce"
)

func ExampleSum() {
	data := make([]float64, 100)
	for i := range data {
		data[i] = float64(i + 1)
	}

	total, err := reduce.Sum(data)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(total)
	// Output: 5050
}

func ExampleSum_mode() {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	total, err := reduce.Sum(data, reduce.WithMode(reduce.ModeBarrier))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(total)
	// Output: 36
}
