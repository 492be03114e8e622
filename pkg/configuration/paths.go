package configuration

import (
	"slices"

	"github.com/graphproof/confcheck/pkg"
	"github.com/graphproof/confcheck/pkg/util"
)

// AllPaths returns every simple path of at most 7 edges between the ring
// vertices p and q in the uncontracted graph, from the cache built at
// construction time.
func (c *Configuration) AllPaths(p, q int) [][]int {
	util.AssertPanic(p != q && p < c.r && q < c.r, "AllPaths endpoints must be distinct ring vertices")
	return c.allPaths[p][q]
}

// calculatePaths enumerates the bounded simple paths by depth-first search.
// The cap of MAX_PATH_EDGES edges keeps the search tractable on these small
// graphs.
func (c *Configuration) calculatePaths(p, q int) [][]int {
	var paths [][]int
	var path []int
	c.pathsDFS(p, q, &path, &paths)
	return paths
}

func (c *Configuration) pathsDFS(v, q int, path *[]int, paths *[][]int) {
	*path = append(*path, v)
	defer func() { *path = (*path)[:len(*path)-1] }()

	if v == q {
		*paths = append(*paths, slices.Clone(*path))
		return
	}
	if len(*path) == pkg.MAX_PATH_EDGES+1 {
		return
	}
	for _, u := range c.neighbors[v] {
		if !slices.Contains(*path, u) {
			c.pathsDFS(u, q, path, paths)
		}
	}
}
