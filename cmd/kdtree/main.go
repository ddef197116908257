// Command kdtree builds a k-d tree from a JSON file of points and runs a
// single query against it.
//
//	kdtree nearest --points points.json --query 0.5,0.5,0.5
//	kdtree knn     --points points.json --query 0.5,0.5,0.5 --k 10
//	kdtree within  --points points.json --min 0,0,0 --max 0.2,0.2,0.2
//	kdtree radius  --points points.json --query 0.5,0.5,0.5 --radius 0.1
//	kdtree dump    --points points.json --parallel
//
// The points file holds a JSON array of equal-length coordinate arrays.
// Results are written to stdout as JSON.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
