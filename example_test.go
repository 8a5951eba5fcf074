package dispergo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/dispergo"
	"github.com/hupe1980/dispergo/geometry"
)

// Example solves the max-min dispersion problem for five points: pick
// three of them so the closest pair among the picked is as far apart
// as possible.
func Example() {
	points := []geometry.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 2, Y: 0},
		{X: 0, Y: 1},
		{X: 2, Y: 1},
	}

	solver := dispergo.New()

	selection, err := solver.Solve(context.Background(), points, 3)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Indices:", selection.Indices)
	fmt.Printf("MinDistance: %.4f\n", selection.MinDistance)
	// Output:
	// Indices: [1 3 4]
	// MinDistance: 1.4142
}

// Example_filter restricts the candidates of a single call without
// changing the input slice or its indices.
func Example_filter() {
	points := []geometry.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 2, Y: 0},
		{X: 0, Y: 1},
		{X: 2, Y: 1},
	}

	solver := dispergo.New()

	selection, err := solver.Solve(context.Background(), points, 3, func(o *dispergo.SolveOptions) {
		o.FilterFunc = func(i int) bool { return i != 1 }
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Indices:", selection.Indices)
	// Output:
	// Indices: [0 2 3]
}

// Example_batch solves several independent problems concurrently.
func Example_batch() {
	points := []geometry.Point{
		{X: 0, Y: 0},
		{X: 3, Y: 0},
		{X: 0, Y: 4},
	}

	solver := dispergo.New()

	result := solver.BatchSolve(context.Background(), []dispergo.Problem{
		{Points: points, Placements: 2},
		{Points: points, Placements: 3},
	})

	for i, err := range result.Errors {
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Problem %d: %v at %.0f\n", i, result.Selections[i].Indices, result.Selections[i].MinDistance)
	}
	// Output:
	// Problem 0: [1 2] at 5
	// Problem 1: [0 1 2] at 3
}
