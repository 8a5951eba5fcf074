package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hupe1980/dispergo"
	"github.com/hupe1980/dispergo/geometry"
)

func main() {
	cols, rows := 10, 15
	placements := 7

	points := make([]geometry.Point, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			points = append(points, geometry.Point{X: float32(x), Y: float32(y)})
		}
	}

	solver := dispergo.New()

	fmt.Println("--- Solve ---")
	fmt.Println("Points:", len(points))
	fmt.Println("Placements:", placements)

	start := time.Now()

	selection, err := solver.Solve(context.Background(), points, placements)
	if err != nil {
		log.Fatal(err)
	}

	end := time.Since(start)

	printSelection(points, selection)
	fmt.Printf("Seconds: %.4f\n\n", end.Seconds())

	fmt.Println("--- Grid ---")
	printGrid(selection, cols, rows)
}

func printSelection(points []geometry.Point, selection dispergo.Selection) {
	for _, i := range selection.Indices {
		fmt.Printf("ID: %d, Point: (%.0f, %.0f)\n", i, points[i].X, points[i].Y)
	}

	fmt.Printf("MinDistance: %.4f\n", selection.MinDistance)
}

func printGrid(selection dispergo.Selection, cols, rows int) {
	selected := make(map[int]bool, len(selection.Indices))
	for _, i := range selection.Indices {
		selected[i] = true
	}

	for y := rows - 1; y >= 0; y-- {
		for x := 0; x < cols; x++ {
			if selected[y*cols+x] {
				fmt.Print("X ")
			} else {
				fmt.Print(". ")
			}
		}

		fmt.Println()
	}
}
