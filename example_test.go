package kdtree_test

import (
	"encoding/json"
	"fmt"
	"log"
	"slices"

	"github.com/hupe1980/kdtree"
	"github.com/hupe1980/kdtree/point"
)

// Example_nearest builds a tree over float points and finds the closest one.
func Example_nearest() {
	points := [][2]float64{{2, 3}, {5, 4}, {9, 6}, {4, 7}, {8, 1}, {7, 2}}

	tree, err := kdtree.BuildOrdered(points, point.Array2[float64]{})
	if err != nil {
		log.Fatal(err)
	}

	nn, _ := tree.Nearest([2]float64{9, 2})
	fmt.Println(*nn.Item, nn.SquaredDistance)
	// Output: [8 1] 2
}

// Example_nearests returns the three closest points in ascending order.
func Example_nearests() {
	points := [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {10, 10}}
	tree := kdtree.Build(points, point.Array2[int]{})

	for _, n := range tree.Nearests([2]int{4, 3}, 3) {
		fmt.Println(*n.Item, n.SquaredDistance)
	}
	// Output:
	// [3 3] 1
	// [2 2] 5
	// [1 1] 13
}

// Example_within collects all points inside a box.
func Example_within() {
	points := [][2]int{{0, 0}, {1, 5}, {2, 2}, {3, 1}, {6, 6}}
	tree := kdtree.Build(points, point.Array2[int]{})

	var found [][2]int
	for _, p := range tree.Within([2][2]int{{1, 1}, {3, 5}}) {
		found = append(found, *p)
	}
	slices.SortFunc(found, func(a, b [2]int) int { return a[0] - b[0] })
	fmt.Println(found)
	// Output: [[1 5] [2 2] [3 1]]
}

// Example_withinRadius counts points strictly inside a circle.
func Example_withinRadius() {
	points := [][2]float64{{0, 0}, {0.5, 0}, {1, 0}, {2, 0}}
	tree, _ := kdtree.BuildOrdered(points, point.Array2[float64]{})

	fmt.Println(len(tree.WithinRadius([2]float64{0, 0}, 1)))
	// Output: 2
}

// Example_customPoint indexes a caller type through a function accessor.
func Example_customPoint() {
	type city struct {
		Name     string
		Lat, Lon float64
	}
	acc := point.Func[city, float64]{K: 2, Fn: func(c city, axis int) float64 {
		if axis == 0 {
			return c.Lat
		}
		return c.Lon
	}}

	cities := []city{{"Berlin", 52.52, 13.40}, {"Paris", 48.86, 2.35}, {"Rome", 41.90, 12.50}}
	tree, _ := kdtree.BuildOrdered(cities, acc)

	nn, _ := tree.Nearest(city{Lat: 50.11, Lon: 8.68})
	fmt.Println(nn.Item.Name)
	// Output: Berlin
}

// Example_json serializes a tree as its flat internal item list.
func Example_json() {
	tree := kdtree.Build([][3]int32{{1, 2, 3}, {4, 5, 6}}, point.Array3[int32]{})

	data, _ := json.Marshal(tree)
	fmt.Println(string(data))

	restored := kdtree.Empty(point.Array3[int32]{})
	if err := json.Unmarshal(data, restored); err != nil {
		log.Fatal(err)
	}
	fmt.Println(restored.Len())
	// Output:
	// [[1,2,3],[4,5,6]]
	// 2
}

// Example_parallel builds large trees on several goroutines.
func Example_parallel() {
	points := make([][3]float64, 0, 4096)
	for i := range 4096 {
		points = append(points, [3]float64{float64(i % 16), float64(i / 16 % 16), float64(i / 256)})
	}

	seq, _ := kdtree.BuildOrdered(slices.Clone(points), point.Array3[float64]{})
	par, _ := kdtree.ParBuildOrdered(slices.Clone(points), point.Array3[float64]{}, kdtree.WithParallelThreshold(256))

	fmt.Println(slices.Equal(seq.Items(), par.Items()))
	// Output: true
}
