package polygon

import (
	"fmt"

	"github.com/softmatter/ptset/pointset"
)

// Contains reports whether pt lies inside poly under the even-odd
// ray-casting rule.
//
// Errors: ErrNilPolygon, ErrDegeneratePolygon,
// pointset.ErrDimensionMismatch (polygon or pt not 2D).
//
// Complexity: O(V) over the vertex count.
func Contains(poly *pointset.PointSet, pt []float64) (bool, error) {
	if err := validatePolygon(poly); err != nil {
		return false, err
	}
	if len(pt) != 2 {
		return false, fmt.Errorf("polygon: query point must be 2-dimensional: %w",
			pointset.ErrDimensionMismatch)
	}

	return containsXY(poly, pt[0], pt[1]), nil
}

// Indices returns the indices of the points of pts lying inside poly,
// in ascending order.
//
// Complexity: O(N·V).
func Indices(pts, poly *pointset.PointSet) ([]int, error) {
	if pts == nil {
		return nil, ErrNilPolygon
	}
	if err := validatePolygon(poly); err != nil {
		return nil, err
	}
	if pts.Dim() != 2 {
		return nil, fmt.Errorf("polygon: points must be 2-dimensional: %w",
			pointset.ErrDimensionMismatch)
	}

	inds := make([]int, 0)
	for i := 0; i < pts.Len(); i++ {
		row := pts.RowView(i)
		if containsXY(poly, row[0], row[1]) {
			inds = append(inds, i)
		}
	}

	return inds, nil
}

// Filter returns a new point set holding the points of pts inside poly,
// preserving their relative order.
//
// Complexity: O(N·V).
func Filter(pts, poly *pointset.PointSet) (*pointset.PointSet, error) {
	return filter(pts, poly, true)
}

// FilterOutside returns a new point set holding the points of pts not
// inside poly, preserving their relative order.
//
// Complexity: O(N·V).
func FilterOutside(pts, poly *pointset.PointSet) (*pointset.PointSet, error) {
	return filter(pts, poly, false)
}

// Enclosing returns the indices of the polygons in polys that contain
// pt, in ascending order. Every polygon is validated before use.
//
// Complexity: O(Σ Vᵢ).
func Enclosing(pt []float64, polys []*pointset.PointSet) ([]int, error) {
	if len(pt) != 2 {
		return nil, fmt.Errorf("polygon: query point must be 2-dimensional: %w",
			pointset.ErrDimensionMismatch)
	}

	inds := make([]int, 0)
	for i, poly := range polys {
		if err := validatePolygon(poly); err != nil {
			return nil, fmt.Errorf("polygon %d: %w", i, err)
		}
		if containsXY(poly, pt[0], pt[1]) {
			inds = append(inds, i)
		}
	}

	return inds, nil
}

// Area returns the area enclosed by poly via the shoelace formula;
// the absolute value is taken, so winding direction does not matter.
//
// Complexity: O(V).
func Area(poly *pointset.PointSet) (float64, error) {
	if err := validatePolygon(poly); err != nil {
		return 0, err
	}

	var twice float64
	n := poly.Len()
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := poly.RowView(i), poly.RowView(j)
		twice += vi[0]*vj[1] - vj[0]*vi[1]
	}
	if twice < 0 {
		twice = -twice
	}

	return twice / 2, nil
}

// filter shares the Filter/FilterOutside implementation; keep selects
// the containment sense.
func filter(pts, poly *pointset.PointSet, keep bool) (*pointset.PointSet, error) {
	inds, err := Indices(pts, poly)
	if err != nil {
		return nil, err
	}

	inside := make(map[int]struct{}, len(inds))
	for _, i := range inds {
		inside[i] = struct{}{}
	}

	flat := make([]float64, 0, pts.Len()*2)
	for i := 0; i < pts.Len(); i++ {
		if _, ok := inside[i]; ok == keep {
			flat = append(flat, pts.RowView(i)...)
		}
	}

	return pointset.FromFlat(flat, 2)
}

// containsXY runs the even-odd crossing test for (x, y) against a
// validated polygon.
func containsXY(poly *pointset.PointSet, x, y float64) bool {
	inside := false
	n := poly.Len()
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := poly.RowView(i), poly.RowView(j)
		if (vi[1] > y) != (vj[1] > y) &&
			x < (vj[0]-vi[0])*(y-vi[1])/(vj[1]-vi[1])+vi[0] {
			inside = !inside
		}
	}

	return inside
}
