package configuration

import (
	"github.com/graphproof/confcheck/pkg"
	"github.com/graphproof/confcheck/pkg/util"
)

// updateIsReductable marks every vertex of a component that has no ring
// attachment: a component still touching the ring is not genuinely cut off.
func (c *Configuration) updateIsReductable(isReductable []bool, componentID []int, isRing []bool) {
	isReducingComponent := make([]bool, c.n)
	for i := range isReducingComponent {
		isReducingComponent[i] = true
	}
	for v := 0; v < c.n; v++ {
		if componentID[v] != -1 && isRing[v] {
			isReducingComponent[componentID[v]] = false
		}
	}
	for v := 0; v < c.n; v++ {
		if componentID[v] != -1 && isReducingComponent[componentID[v]] {
			isReductable[v] = true
		}
	}
}

// calcCutReduction flags the vertices a 2-or-3-cut entirely inside the
// contracted configuration can erase: every 1, 2 and 3 vertex cut is tried
// and the interior components it isolates are marked.
func (c *Configuration) calcCutReduction() []bool {
	isReductable := make([]bool, c.n)
	isRing := make([]bool, c.n) // ring vertices and everything identified with one
	for v := 0; v < c.r; v++ {
		for u := 0; u < c.n; u++ {
			if c.equivalent(v, u) {
				isRing[u] = true
			}
		}
	}
	for v0 := 0; v0 < c.n; v0++ {
		c.updateIsReductable(isReductable, c.ComponentIDEquivalence([]int{v0}), isRing)
		for v1 := 0; v1 < v0; v1++ {
			c.updateIsReductable(isReductable, c.ComponentIDEquivalence([]int{v0, v1}), isRing)
			for v2 := 0; v2 < v1; v2++ {
				c.updateIsReductable(isReductable, c.ComponentIDEquivalence([]int{v0, v1, v2}), isRing)
			}
		}
	}
	return isReductable
}

// equivalentToAny reports whether v is identified with some vertex of path.
func (c *Configuration) equivalentToAny(v int, path []int) bool {
	for _, u := range path {
		if c.equivalent(v, u) {
			return true
		}
	}
	return false
}

// markComponentReductable flags the component's vertices, except those the
// contraction has already collapsed into one of the bounding paths.
func (c *Configuration) markComponentReductable(isReductable []bool, component []int, paths ...[]int) {
	for _, v := range component {
		onBoundary := false
		for _, path := range paths {
			if c.equivalentToAny(v, path) {
				onBoundary = true
				break
			}
		}
		if onBoundary {
			continue
		}
		isReductable[v] = true
	}
}

// calcReductableVertices1 handles the single-path case: a contracted
// shortest path between ring vertices with a short external completion.
func (c *Configuration) calcReductableVertices1(cutSize int, isReductable []bool) {
	for p := 0; p < c.r; p++ {
		for q := 0; q < c.r; q++ {
			if p == q {
				continue
			}
			pathlenMin := util.MaxInt(0, 5-c.dist[p][q])
			pathlenMax := 3 - c.distContracted[p][q]
			if pathlenMin > pathlenMax {
				continue
			}
			contractedPaths := c.ShortestPaths(p, q, true)

			for pathlen := pathlenMin; pathlen <= pathlenMax; pathlen++ {
				if c.checkShortCycle(p, q, pathlen, cutSize) {
					continue
				}
				for _, contractedPath := range contractedPaths {
					if len(contractedPath)-1 == c.dist[p][q] {
						continue
					}
					component := c.ComponentBetween(contractedPath)
					c.markComponentReductable(isReductable, component, contractedPath)
				}
			}
		}
	}
}

// calcReductableVertices2 handles two contractible chords: with p1, q1, p2,
// q2 in ring order, a q1p2 path and a q2p1 path whose endpoints are
// chord-connected.
func (c *Configuration) calcReductableVertices2(cutSize int, isReductable []bool) {
	for p1 := 0; p1 < c.r; p1++ {
		for q1r := p1 + 1; q1r < p1+c.r; q1r++ {
			for p2r := q1r + 1; p2r < p1+c.r; p2r++ {
				for q2r := p2r + 1; q2r < p1+c.r; q2r++ {
					q1 := q1r % c.r
					p2 := p2r % c.r
					q2 := q2r % c.r
					// p1, q1, p2, q2 in ring order
					pathlenMin1 := util.MaxInt(0, 5-c.dist[p1][q1])
					pathlenMin2 := util.MaxInt(0, 5-c.dist[p2][q2])
					pathlenMax := 3 - c.distContracted[q1][p2] - c.distContracted[q2][p1]
					if pathlenMin1 > pathlenMax || pathlenMin2 > pathlenMax {
						continue
					}

					shortestPath1s := c.ShortestPaths(q1, p2, false)
					shortestPath2s := c.ShortestPaths(q2, p1, false)
					contractedPath1s := c.ShortestPaths(q1, p2, true)
					contractedPath2s := c.ShortestPaths(q2, p1, true)

					for pathlen1 := pathlenMin1; pathlen1 <= pathlenMax; pathlen1++ {
						for pathlen2 := pathlenMin2; pathlen2 <= pathlenMax; pathlen2++ {
							if pathlen1+pathlen2+c.distContracted[q1][p2]+c.distContracted[q2][p1] > 3 {
								continue
							}
							if c.checkShortCycle(p1, q1, pathlen1, cutSize) {
								continue
							}
							if c.checkShortCycle(p2, q2, pathlen2, cutSize) {
								continue
							}
							hasSmallCut := false
							for _, sp1 := range shortestPath1s {
								for _, sp2 := range shortestPath2s {
									if c.canBeAlmostMinimalPair(sp1, sp2, pathlen1, pathlen2, cutSize) {
										continue
									}
									s, t := c.SizeOfVertices2(sp1, sp2)
									sz := util.MaxInt(s-util.MaxInt(pathlen1+pathlen2-2, 0)+1, 0)/2 + t
									if IsForbiddenCut(len(sp1)+len(sp2)-2+pathlen1+pathlen2, sz) {
										hasSmallCut = true
										break
									}
								}
								if hasSmallCut {
									break
								}
							}
							if hasSmallCut {
								continue
							}
							for _, cp1 := range contractedPath1s {
								for _, cp2 := range contractedPath2s {
									if len(cp1)-1 == c.dist[q1][p2] && len(cp2)-1 == c.dist[q2][p1] {
										continue
									}
									component := c.ComponentBetween2(cp1, cp2)
									c.markComponentReductable(isReductable, component, cp1, cp2)
								}
							}
						}
					}
				}
			}
		}
	}
}

// calcReductableVertices3 handles two non-contractible ring-to-ring paths,
// using the full bounded path enumeration and a lower-bound cycle check
// before the expensive marking.
func (c *Configuration) calcReductableVertices3(cutSize int, isReductable []bool) {
	for p1 := 0; p1 < c.r; p1++ {
		for q1r := p1 + 1; q1r < p1+c.r; q1r++ {
			for p2r := q1r + 1; p2r < p1+c.r; p2r++ {
				for q2r := p2r + 1; q2r < p1+c.r; q2r++ {
					if q1r+1 == p2r && q2r+1 == p1+c.r {
						continue
					}
					q1 := q1r % c.r
					p2 := p2r % c.r
					q2 := q2r % c.r
					// p1, q1, p2, q2 in ring order; the minima keep the
					// contracted endpoints at distance >= 2
					pathlenMin1 := util.MaxInt(2-c.distContracted[p1][q1], 0)
					pathlenMin2 := util.MaxInt(2-c.distContracted[p2][q2], 0)
					pathlenMax := 3 - c.distContracted[q1][p2] - c.distContracted[q2][p1]
					if pathlenMin1 > pathlenMax || pathlenMin2 > pathlenMax {
						continue
					}

					util.AssertPanic(q1 != p2, "degenerate quadruple")
					path1s := c.allPaths[q1][p2]
					util.AssertPanic(q2 != p1, "degenerate quadruple")
					path2s := c.allPaths[q2][p1]

					contractedPath1s := c.ShortestPaths(q1, p2, true)
					contractedPath2s := c.ShortestPaths(q2, p1, true)

					for pathlen1 := pathlenMin1; pathlen1 <= pathlenMax; pathlen1++ {
						for pathlen2 := pathlenMin2; pathlen2 <= pathlenMax; pathlen2++ {
							if pathlen1+pathlen2+c.distContracted[q1][p2]+c.distContracted[q2][p1] > 3 {
								continue
							}

							if c.CalcLowerBoundCycle(p1, q1, p2, q2, pathlen1, pathlen2, cutSize) > cutSize {
								continue
							}

							hasSmallCut := false
							for _, path1 := range path1s {
								for _, path2 := range path2s {
									l := pathlen1 + pathlen2 + len(path1) - 1 + len(path2) - 1
									if l > 5 {
										continue
									}
									s, t := c.SizeOfVerticesOutside(path1, path2)
									sz := util.MaxInt(s-util.MaxInt(pathlen1+pathlen2-2, 0)+1, 0)/2 + t
									if (l <= 4 && sz > 0) || (l == 5 && sz > 1) {
										hasSmallCut = true
										break
									}
								}
							}
							if hasSmallCut {
								continue
							}
							for _, cp1 := range contractedPath1s {
								for _, cp2 := range contractedPath2s {
									if len(cp1)-1 == c.dist[q1][p2] && len(cp2)-1 == c.dist[q2][p1] {
										continue
									}
									component := c.ComponentOutside(cp1, cp2)
									c.markComponentReductable(isReductable, component, cp1, cp2)
								}
							}
						}
					}
				}
			}
		}
	}
}

// calcReductableVertices4 handles the mixed case: a p1q1-contractible path
// together with a q2p2-reverse-contractible one.
func (c *Configuration) calcReductableVertices4(cutSize int, isReductable []bool) {
	for p1 := 0; p1 < c.r; p1++ {
		for q1r := p1 + 1; q1r < p1+c.r; q1r++ {
			for p2r := q1r + 1; p2r < p1+c.r; p2r++ {
				for q2r := p2r + 1; q2r < p1+c.r; q2r++ {
					q1 := q1r % c.r
					p2 := p2r % c.r
					q2 := q2r % c.r
					// p1, q1, p2, q2 in ring order
					pathlenMin1 := util.MaxInt(0, 5-c.dist[p1][q1])
					pathlenMin2 := util.MaxInt(0, 5-c.dist[p2][q2])
					pathlenMax := 3 - c.distContracted[q1][p2] - c.distContracted[q2][p1]
					if pathlenMin1 > pathlenMax || pathlenMin2 > pathlenMax {
						continue
					}

					shortestPath1s := c.ShortestPaths(q1, p2, false)
					shortestPath2s := c.ShortestPaths(q2, p1, false)
					contractedPath1s := c.ShortestPaths(q1, p2, true)
					contractedPath2s := c.ShortestPaths(q2, p1, true)

					for pathlen1 := pathlenMin1; pathlen1 <= pathlenMax; pathlen1++ {
						for pathlen2 := pathlenMin2; pathlen2 <= pathlenMax; pathlen2++ {
							if pathlen1+pathlen2+c.distContracted[q1][p2]+c.distContracted[q2][p1] > 3 {
								continue
							}
							if c.checkShortCycle(p1, q1, pathlen1, cutSize) {
								continue
							}
							if c.checkShortCycle(q2, p2, pathlen2, cutSize) {
								continue
							}
							hasSmallCut := false
							for _, sp1 := range shortestPath1s {
								for _, sp2 := range shortestPath2s {
									if c.canBeAlmostMinimal2(sp1, sp2, pathlen1, pathlen2, cutSize) {
										continue
									}
									s, t := c.SizeOfVerticesOutside(sp1, sp2)
									sz := util.MaxInt(s-util.MaxInt(pathlen1+pathlen2-2, 0)+1, 0)/2 + t
									if IsForbiddenCut(len(sp1)+len(sp2)-2+pathlen1+pathlen2, sz) {
										hasSmallCut = true
										break
									}
								}
								if hasSmallCut {
									break
								}
							}
							if hasSmallCut {
								continue
							}
							for _, cp1 := range contractedPath1s {
								for _, cp2 := range contractedPath2s {
									if len(cp1)-1 == c.dist[q1][p2] && len(cp2)-1 == c.dist[q2][p1] {
										continue
									}
									component := c.ComponentOutside(cp1, cp2)
									c.markComponentReductable(isReductable, component, cp1, cp2)
								}
							}
						}
					}
				}
			}
		}
	}
}

// calcReductableVertices flags the configuration vertices that an external
// 2-or-3-cut reduction can erase when the configuration sits inside a
// cutSize-cycle.
func (c *Configuration) calcReductableVertices(cutSize int) []bool {
	util.AssertPanic(cutSize == pkg.MIN_CUT_SIZE || cutSize == pkg.MAX_CUT_SIZE, "cut size must be 6 or 7")
	isReductable := make([]bool, c.n)
	c.calcReductableVertices1(cutSize, isReductable)
	c.calcReductableVertices2(cutSize, isReductable)
	c.calcReductableVertices3(cutSize, isReductable)
	c.calcReductableVertices4(cutSize, isReductable)
	return isReductable
}
