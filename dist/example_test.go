package dist_test

import (
	"fmt"

	"github.com/softmatter/ptset/dist"
	"github.com/softmatter/ptset/pointset"
)

// ExamplePairwise demonstrates a full Euclidean distance matrix between
// two small 2D point sets.
func ExamplePairwise() {
	pts, _ := pointset.New([][]float64{{0, 0}, {1, 0}})
	nbrs, _ := pointset.New([][]float64{{0, 3}, {4, 0}})

	m, _ := dist.Pairwise(pts, nbrs, dist.DefaultOptions())
	fmt.Print(m)
	// Output:
	// [3, 4]
	// [3.1622776601683795, 3]
}

// ExamplePeriodic demonstrates the minimum-image convention: in a 10×10
// periodic box, points near opposite walls are close neighbors.
func ExamplePeriodic() {
	pts, _ := pointset.New([][]float64{{0.5, 0.5}})
	nbrs, _ := pointset.New([][]float64{{9.5, 0.5}})
	box := [][]float64{{10, 0}, {0, 10}}

	plain, _ := dist.Pairwise(pts, nbrs, dist.DefaultOptions())
	wrapped, _ := dist.Periodic(pts, nbrs, box, dist.DefaultOptions())

	direct, _ := plain.At(0, 0)
	minimum, _ := wrapped.At(0, 0)
	fmt.Printf("direct=%g minimum-image=%g\n", direct, minimum)
	// Output:
	// direct=9 minimum-image=1
}
