package configuration

import (
	"fmt"
	"sort"

	"github.com/graphproof/confcheck/pkg"
	"github.com/graphproof/confcheck/pkg/util"
)

// ComponentBetween returns the vertex set separated from the rest of the
// graph by pqPath, namely the side containing the ring arc p+1, p+2, ...,
// q-1 (mod r), where p and q are the path's ring endpoints.
func (c *Configuration) ComponentBetween(pqPath []int) []int {
	p, q := pqPath[0], pqPath[len(pqPath)-1]
	util.AssertPanic(p != q && p < c.r && q < c.r,
		fmt.Sprintf("path endpoints %d, %d must be distinct ring vertices", p, q))

	cutset := make(map[int]struct{}, len(pqPath))
	for _, v := range pqPath {
		cutset[v] = struct{}{}
	}

	visited := make([]bool, c.n)
	var component []int
	for v := (p + 1) % c.r; v != q; v = (v + 1) % c.r {
		c.componentDFS(v, cutset, visited, &component)
	}
	return component
}

func (c *Configuration) componentDFS(v int, cutset map[int]struct{}, visited []bool, out *[]int) {
	if _, cut := cutset[v]; cut || visited[v] {
		return
	}
	visited[v] = true
	*out = append(*out, v)
	for _, u := range c.neighbors[v] {
		c.componentDFS(u, cutset, visited, out)
	}
}

// ComponentBetween2 is the two-path variant: with p1, q1, p2, q2 in ring
// order, q1p2Path and q2p1Path jointly bound a region of the configuration;
// the result is that enclosed component (exact when the paths are disjoint).
func (c *Configuration) ComponentBetween2(q1p2Path, q2p1Path []int) []int {
	inner := make(map[int]struct{})
	for _, v := range c.ComponentBetween(q1p2Path) {
		inner[v] = struct{}{}
	}
	p1q2Path := util.ReverseG(q2p1Path)
	var component []int
	for _, v := range c.ComponentBetween(p1q2Path) {
		if _, ok := inner[v]; !ok {
			component = append(component, v)
		}
	}
	return component
}

// ComponentOutside returns every vertex outside the region the two paths
// enclose, the path vertices themselves excluded. Used for the
// non-contractible pair case.
func (c *Configuration) ComponentOutside(q1p2Path, q2p1Path []int) []int {
	inner := make(map[int]struct{})
	for _, v := range c.ComponentBetween(q1p2Path) {
		inner[v] = struct{}{}
	}
	var component []int
	for _, v := range c.ComponentBetween(q2p1Path) {
		if _, ok := inner[v]; ok {
			delete(inner, v)
			continue
		}
		component = append(component, v)
	}
	rest := make([]int, 0, len(inner))
	for v := range inner {
		rest = append(rest, v)
	}
	sort.Ints(rest)
	component = append(component, rest...)
	return component
}

// ComponentIDEquivalence labels the connected components left after removing
// the cut vertices together with everything the contraction identifies with
// them. Components still touching the ring all share label 0; fully interior
// components get fresh labels. Cut vertices keep label -1.
func (c *Configuration) ComponentIDEquivalence(cut []int) []int {
	cutset := make(map[int]struct{})
	for _, v := range cut {
		cutset[v] = struct{}{}
		for u := 0; u < c.n; u++ {
			if c.equivalent(v, u) {
				cutset[u] = struct{}{}
			}
		}
	}

	componentID := make([]int, c.n)
	for v := range componentID {
		componentID[v] = -1
	}
	for v := 0; v < c.r; v++ {
		if _, cutV := cutset[v]; !cutV {
			c.labelDFS(v, 0, cutset, componentID)
		}
	}
	numComponent := 1
	for v := c.r; v < c.n; v++ {
		if _, cutV := cutset[v]; !cutV && componentID[v] == -1 {
			c.labelDFS(v, numComponent, cutset, componentID)
			numComponent++
		}
	}
	return componentID
}

func (c *Configuration) labelDFS(v, id int, cutset map[int]struct{}, componentID []int) {
	componentID[v] = id
	for _, u := range c.neighbors[v] {
		if _, cutU := cutset[u]; cutU {
			continue
		}
		if componentID[u] != -1 {
			continue
		}
		c.labelDFS(u, id, cutset, componentID)
	}
}

// splitRingInterior counts a component's ring and interior vertices.
func (c *Configuration) splitRingInterior(component []int) (int, int) {
	s, t := 0, 0
	for _, v := range component {
		if v < c.r {
			s++
		} else {
			t++
		}
	}
	return s, t
}

// SizeOfVertices returns the (ring, interior) counts of ComponentBetween.
func (c *Configuration) SizeOfVertices(pqPath []int) (int, int) {
	return c.splitRingInterior(c.ComponentBetween(pqPath))
}

// SizeOfVertices2 returns the (ring, interior) counts of ComponentBetween2.
func (c *Configuration) SizeOfVertices2(q1p2Path, q2p1Path []int) (int, int) {
	return c.splitRingInterior(c.ComponentBetween2(q1p2Path, q2p1Path))
}

// SizeOfVerticesOutside returns the (ring, interior) counts of
// ComponentOutside.
func (c *Configuration) SizeOfVerticesOutside(q1p2Path, q2p1Path []int) (int, int) {
	return c.splitRingInterior(c.ComponentOutside(q1p2Path, q2p1Path))
}

// VertexSizeAfterContract counts the contraction-class representatives of a
// component that survive reduction, split into ring and interior counts for
// the given surrounding cycle length.
func (c *Configuration) VertexSizeAfterContract(component []int, cutSize int) (int, int) {
	util.AssertPanic(cutSize == pkg.MIN_CUT_SIZE || cutSize == pkg.MAX_CUT_SIZE, "cut size must be 6 or 7")
	reductableOutside := c.reductableOutside6
	if cutSize == pkg.MAX_CUT_SIZE {
		reductableOutside = c.reductableOutside7
	}

	s, t := 0, 0
	for _, v := range component {
		if c.reductableInside[v] || reductableOutside[v] {
			continue
		}
		if v < c.r && c.representative[v] == v {
			s++
		} else if v >= c.r && c.representative[v] == v {
			t++
		}
	}
	return s, t
}
