package configuration

import (
	"slices"

	"github.com/graphproof/confcheck/pkg"
)

// intDeque is a minimal double-ended queue for the 0-1 BFS: weight-0
// contraction edges go to the front, weight-1 edges to the back.
type intDeque struct {
	items []int
}

func (d *intDeque) empty() bool { return len(d.items) == 0 }

func (d *intDeque) pushFront(v int) { d.items = append([]int{v}, d.items...) }

func (d *intDeque) pushBack(v int) { d.items = append(d.items, v) }

func (d *intDeque) popFront() int {
	v := d.items[0]
	d.items = d.items[1:]
	return v
}

// ShortestPaths enumerates every minimum-length simple path from s to t.
// With useContraction, the contraction edges count as length 0 and the
// returned paths realize the contracted metric; otherwise the raw one. The
// result is duplicate-free and complete.
func (c *Configuration) ShortestPaths(s, t int, useContraction bool) [][]int {
	contractSet := make(map[Edge]struct{})
	if useContraction {
		for _, e := range c.contract {
			contractSet[Edge{e.U, e.V}] = struct{}{}
			contractSet[Edge{e.V, e.U}] = struct{}{}
		}
	}

	dist := make([]int, c.n)
	for v := range dist {
		dist[v] = pkg.INF_DIST
	}
	dist[s] = 0
	var que intDeque
	que.pushBack(s)
	for !que.empty() {
		v := que.popFront()
		for _, u := range c.neighbors[v] {
			if _, zero := contractSet[Edge{u, v}]; zero {
				if dist[v] < dist[u] {
					dist[u] = dist[v]
					que.pushFront(u)
				}
			} else {
				if dist[v]+1 < dist[u] {
					dist[u] = dist[v] + 1
					que.pushBack(u)
				}
			}
		}
	}

	// Second pass: extend every shortest path to a settled vertex by one
	// edge, skipping extensions that would revisit a vertex or duplicate a
	// path already recorded at the successor.
	paths := make([][][]int, c.n)
	paths[s] = append(paths[s], []int{s})
	que.pushBack(s)
	for !que.empty() {
		v := que.popFront()
		for _, u := range c.neighbors[v] {
			_, zero := contractSet[Edge{u, v}]
			if !(dist[u] == dist[v]+1 || (dist[u] == dist[v] && zero)) {
				continue
			}
			update := false
			for _, path := range paths[v] {
				if slices.Contains(path, u) {
					continue
				}
				upath := make([]int, len(path), len(path)+1)
				copy(upath, path)
				upath = append(upath, u)
				if containsPath(paths[u], upath) {
					continue
				}
				paths[u] = append(paths[u], upath)
				update = true
			}
			if update {
				if dist[u] == dist[v]+1 {
					que.pushBack(u)
				} else {
					que.pushFront(u)
				}
			}
		}
	}

	var unique [][]int
	for _, path := range paths[t] {
		if !containsPath(unique, path) {
			unique = append(unique, path)
		}
	}
	return unique
}

func containsPath(paths [][]int, path []int) bool {
	for _, p := range paths {
		if slices.Equal(p, path) {
			return true
		}
	}
	return false
}
