package configuration

import (
	"fmt"

	"github.com/graphproof/confcheck/pkg"
	"github.com/graphproof/confcheck/pkg/util"
	"go.uber.org/zap"
)

// IsForbiddenCut is the fixed minimum-cut-size versus isolated-component
// table from the surrounding proof. It is an asserted parameter table, not a
// derived quantity.
func IsForbiddenCut(cutSize, componentSize int) bool {
	switch {
	case cutSize <= 4:
		return componentSize > 0
	case cutSize == 5:
		return componentSize > 1
	case cutSize == 6:
		return componentSize > 3
	case cutSize == 7:
		return componentSize > 4
	}
	return false
}

// ringEdgeCount counts the consecutive pairs of a path whose endpoints are
// both ring vertices.
func (c *Configuration) ringEdgeCount(path []int) int {
	n := 0
	for i := 0; i+1 < len(path); i++ {
		if path[i] < c.r && path[i+1] < c.r {
			n++
		}
	}
	return n
}

// canBeAlmostMinimal reports whether the cycle made of the internal path and
// an external connector of length k could coincide with (or closely
// approximate) the assumed minimal separating cycle, in which case it must
// not be counted as a violation. The conditions are cited from the
// accompanying paper: either the path runs entirely on the ring, or it
// leaves the ring on at most three edges while the whole cycle has length 7
// inside a 6-cycle context.
func (c *Configuration) canBeAlmostMinimal(path []int, k, cutSize int) bool {
	util.AssertPanic(path[0] < c.r && path[len(path)-1] < c.r,
		"almost-minimal check needs ring endpoints")
	numberInRing := c.ringEdgeCount(path)
	pathlen := len(path) - 1
	util.AssertPanic(pathlen >= 1, "empty path")
	return (numberInRing == pathlen && pathlen+k >= 6) ||
		((pathlen <= 3 || numberInRing >= pathlen-3) && pathlen+k == 7 && cutSize == 6)
}

// canBeAlmostMinimalPair is the two-path version for a cycle built from two
// internal paths and two external connectors of lengths k1, k2.
func (c *Configuration) canBeAlmostMinimalPair(path1, path2 []int, k1, k2, cutSize int) bool {
	util.AssertPanic(path1[0] < c.r && path1[len(path1)-1] < c.r, "almost-minimal check needs ring endpoints")
	util.AssertPanic(path2[0] < c.r && path2[len(path2)-1] < c.r, "almost-minimal check needs ring endpoints")
	numberInRing := c.ringEdgeCount(path1) + c.ringEdgeCount(path2)
	pathlen := (len(path1) - 1) + (len(path2) - 1)
	k := k1 + k2
	return (numberInRing == pathlen && pathlen+k >= 6) ||
		((pathlen <= 3 || numberInRing >= pathlen-3) && pathlen+k == 7 && cutSize == 6)
}

// canBeAlmostMinimal2 is the variant for the mixed contractible /
// reverse-contractible pair: here only the first connector and the off-ring
// edges of both paths count as "inside" edges.
func (c *Configuration) canBeAlmostMinimal2(path1, path2 []int, k1, k2, cutSize int) bool {
	util.AssertPanic(path1[0] < c.r && path1[len(path1)-1] < c.r, "almost-minimal check needs ring endpoints")
	util.AssertPanic(path2[0] < c.r && path2[len(path2)-1] < c.r, "almost-minimal check needs ring endpoints")
	pathlen1 := len(path1) - 1
	pathlen2 := len(path2) - 1
	numInside := k1 + (pathlen1 - c.ringEdgeCount(path1)) + (pathlen2 - c.ringEdgeCount(path2))
	l := pathlen1 + pathlen2 + k1 + k2
	return (numInside == 0 && l >= 6) || (numInside <= 3 && l == 7 && cutSize == 6)
}

// checkShortCycle checks whether a length-k ab-contractibly connected path
// would contradict the low-cut conditions, by inspecting every bounded
// internal path between a and b.
func (c *Configuration) checkShortCycle(a, b, k, cutSize int) bool {
	util.AssertPanic(a < c.r && b < c.r && a != b, "checkShortCycle needs distinct ring vertices")
	for _, R := range c.allPaths[a][b] {
		if c.canBeAlmostMinimal(R, k, cutSize) {
			continue
		}
		m := len(R) - 1
		s, t := c.SizeOfVertices(R)
		sz := util.MaxInt(s-util.MaxInt(k-1, 0)+1, 0)/2 + t
		if IsForbiddenCut(k+m, sz) {
			return true
		}
		// Two low-degree ring vertices strictly between a and b cannot
		// absorb the cut either.
		if ((k == 2 && m == 3) || (k == 1 && m == 4)) && s == 2 && t == 0 &&
			c.Degree((a+1)%c.r) <= 4 && c.Degree((a+2)%c.r) <= 4 {
			return true
		}
	}
	return false
}

// ForbiddenCycle decides whether a length-k external connector between ring
// vertices a and b yields an alternative cycle violating the minimality of
// cutSize. Three cases on the ring arc length q from a to b: q == k is the
// assumed minimal cycle itself; q < k means the arc is a strict shortcut;
// otherwise every internal closing path is inspected.
func (c *Configuration) ForbiddenCycle(a, b, k, cutSize int) bool {
	util.AssertPanic(cutSize == pkg.MIN_CUT_SIZE || cutSize == pkg.MAX_CUT_SIZE, "cut size must be 6 or 7")
	util.AssertPanic(k <= cutSize, "connector longer than the cycle")
	b2 := b
	if a >= b {
		b2 = b + c.r
	}
	q := b2 - a

	if q == k {
		return false
	} else if q < k {
		return true
	}
	return c.checkShortCycle(a, b, k, cutSize)
}

// ForbiddenCycleOneEdge is ForbiddenCycle for cycles that additionally use
// one otherwise-unused edge, for boundary-pattern segments flagged
// one-edge-adjusted.
func (c *Configuration) ForbiddenCycleOneEdge(a, b, k, cutSize int) bool {
	util.AssertPanic(cutSize == pkg.MIN_CUT_SIZE || cutSize == pkg.MAX_CUT_SIZE, "cut size must be 6 or 7")
	util.AssertPanic(k <= cutSize, "connector longer than the cycle")
	b2 := b
	if a >= b {
		b2 = b + c.r
	}
	q := b2 - a

	// Replace the connector by the ring arc plus one extra edge.
	Q := make([]int, 0, q+1)
	for v := b2; v >= a; v-- {
		Q = append(Q, v%c.r)
	}
	s, t := c.SizeOfVertices(Q)
	sz := util.MaxInt(s-util.MaxInt(cutSize-k-1, 0)+1, 0)/2 + t
	l := cutSize - k + q + 1
	if !(l == 7 && cutSize == 6) && IsForbiddenCut(l, sz) {
		return true
	}

	util.AssertPanic(a != b, "distinct ring vertices required")
	for _, R := range c.allPaths[a][b] {
		m := len(R) - 1
		numberInRing := c.ringEdgeCount(R)
		// A near-ring path closing to a 7-cycle inside a 6-cycle context is
		// not a contradiction.
		if (m <= 2 || numberInRing >= m-2) && k+m+1 == 7 && cutSize == 6 {
			continue
		}
		s, t := c.SizeOfVertices(R)
		sz := util.MaxInt(s-util.MaxInt(k-1, 0)+1, 0)/2 + t
		if IsForbiddenCut(k+m+1, sz) {
			return true
		}
	}
	return false
}

// calcLowerBoundLengthOuterPath tabulates, for each ring pair, the minimum
// length of a contractibly connected outer path compatible with a
// surrounding cutSize-cycle.
func (c *Configuration) calcLowerBoundLengthOuterPath(cutSize int) [][]int {
	length := make([][]int, c.r)
	for p := 0; p < c.r; p++ {
		length[p] = make([]int, c.r)
		for q := 0; q < c.r; q++ {
			if p == q {
				continue
			}
			if p+1 == q || (p == c.r-1 && q == 0) {
				length[p][q] = 1
				continue
			}
			for k := 0; ; k++ {
				if k > cutSize || !c.ForbiddenCycle(p, q, k, cutSize) {
					length[p][q] = k
					break
				}
			}
		}
	}
	return length
}

// calcLowerBoundLengthOuterPathOneEdge is the table for paths allowed to
// leave the cycle on exactly one edge.
func (c *Configuration) calcLowerBoundLengthOuterPathOneEdge(cutSize int) [][]int {
	length := make([][]int, c.r)
	for p := 0; p < c.r; p++ {
		length[p] = make([]int, c.r)
		for q := 0; q < c.r; q++ {
			if p == q {
				continue
			}
			if p+1 == q || (p == c.r-1 && q == 0) {
				length[p][q] = 1
				continue
			}
			for k := 1; ; k++ {
				if k > cutSize || !c.ForbiddenCycleOneEdge(p, q, k, cutSize) {
					length[p][q] = k
					break
				}
			}
		}
	}
	return length
}

func (c *Configuration) lengthTables(cutSize int) ([][]int, [][]int) {
	if cutSize == pkg.MIN_CUT_SIZE {
		return c.length6, c.lengthOneEdge6
	}
	return c.length7, c.lengthOneEdge7
}

// CalcLowerBoundCycle bounds from below the length of a cutSize-cycle
// compatible with two non-contractible paths of lengths pathlen1 (p1 to q1)
// and pathlen2 (p2 to q2), with p1, q1, p2, q2 in ring order. Alternate
// routings around either side are considered, as are the cycle revisiting a
// length-2 path's midpoint or a length-1 path's endpoint twice. Lengths of 3
// keep only the trivial bound.
func (c *Configuration) CalcLowerBoundCycle(p1, q1, p2, q2, pathlen1, pathlen2, cutSize int) int {
	util.AssertPanic(pathlen1+pathlen2 <= 3, "paths too long for a lower-bound cycle")
	length, lengthOneEdge := c.lengthTables(cutSize)

	// If the vertical distance is already below 2 the cycle degenerates, so
	// clamp each side by 2 - pathlen.
	lVertical := util.MaxInt(length[p1][q1], 2-pathlen1) + util.MaxInt(length[p2][q2], 2-pathlen2)
	lHorizontal := length[q1][p2] + length[q2][p1]
	var L int
	if lVertical+pathlen1+pathlen2 <= 5 && lHorizontal+pathlen1+pathlen2 <= 5 {
		// Both outer regions being 5-cuts contradicts the vertex-count
		// assumption on 6,7-cycles; stretch past the larger one.
		L = lVertical + lHorizontal + 6 - pathlen1 - pathlen2 - util.MaxInt(lVertical, lHorizontal)
	} else {
		L = lVertical + lHorizontal
	}

	if pathlen1 == 2 {
		// The cycle passes through path1's midpoint once.
		l1Vertical := util.MaxInt(lengthOneEdge[p1][q1], 1) + util.MaxInt(length[p2][q2], 2-pathlen2)
		l1Horizontal := util.MinInt(length[q2][p1]+lengthOneEdge[q1][p2], lengthOneEdge[q2][p1]+length[q1][p2])
		var l1 int
		if l1Vertical+pathlen2+1 <= 5 && l1Horizontal+pathlen2+1 <= 5 {
			l1 = l1Vertical + l1Horizontal + 5 - pathlen2 - util.MaxInt(l1Vertical, l1Horizontal)
		} else {
			l1 = l1Vertical + l1Horizontal
		}
		L = util.MinInt(L, l1)
		if pathlen2 == 1 {
			// The cycle passes through p2 (or q2) twice.
			l2Vertical := util.MaxInt(length[p1][q1], 2-pathlen1) + util.MaxInt(lengthOneEdge[p2][q2], 2)
			l2Horizontal := util.MinInt(length[q2][p1]+lengthOneEdge[q1][p2], lengthOneEdge[q2][p1]+length[q1][p2])
			var l2 int
			if l2Vertical+pathlen1 <= 5 && l2Horizontal+pathlen1 <= 5 {
				l2 = l2Vertical + l2Horizontal + 6 - pathlen1 - util.MaxInt(l2Horizontal, l2Vertical)
			} else {
				l2 = l2Vertical + l2Horizontal
			}
			L = util.MinInt(L, l2)
		}
	}
	if pathlen2 == 2 {
		// The cycle passes through path2's midpoint once.
		l1Vertical := util.MaxInt(length[p1][q1], 2-pathlen1) + util.MaxInt(lengthOneEdge[p2][q2], 1)
		l1Horizontal := util.MinInt(length[q2][p1]+lengthOneEdge[q1][p2], lengthOneEdge[q2][p1]+length[q1][p2])
		var l1 int
		if l1Vertical+pathlen1+1 <= 5 && l1Horizontal+pathlen1+1 <= 5 {
			l1 = l1Vertical + l1Horizontal + 5 - pathlen1 - util.MaxInt(l1Vertical, l1Horizontal)
		} else {
			l1 = l1Vertical + l1Horizontal
		}
		L = util.MinInt(L, l1)
		if pathlen1 == 1 {
			// The cycle passes through p1 (or q1) twice.
			l2Vertical := util.MaxInt(lengthOneEdge[p1][q1], 2) + util.MaxInt(length[p2][q2], 2-pathlen2)
			l2Horizontal := util.MinInt(length[q2][p1]+lengthOneEdge[q1][p2], lengthOneEdge[q2][p1]+length[q1][p2])
			var l2 int
			if l2Vertical+pathlen2 <= 5 && l2Horizontal+pathlen2 <= 5 {
				l2 = l2Vertical + l2Horizontal + 6 - pathlen2 - util.MaxInt(l2Vertical, l2Horizontal)
			} else {
				l2 = l2Vertical + l2Horizontal
			}
			L = util.MinInt(L, l2)
		}
	}
	if pathlen1 == 3 || pathlen2 == 3 {
		L = 0
	}

	return L
}

// IsValid runs the pairwise forbidden-cycle checks around a candidate
// boundary pattern: ring vertices vs with segment lengths lens (summing to 6
// or 7) and per-segment one-edge flags. True means the oracle cannot exclude
// the pattern.
func (c *Configuration) IsValid(vs, lens []int, oneEdge []bool) bool {
	util.AssertPanic(len(vs) == len(lens) && len(vs) == len(oneEdge), "pattern arity mismatch")
	cutSize := 0
	for _, l := range lens {
		cutSize += l
	}
	util.AssertPanic(cutSize == pkg.MIN_CUT_SIZE || cutSize == pkg.MAX_CUT_SIZE, "segment lengths must sum to 6 or 7")

	m := len(vs)
	for i := 0; i < m; i++ {
		j := (i + 1) % m
		if oneEdge[i] && oneEdge[j] {
			continue
		}
		if oneEdge[i] || oneEdge[j] {
			if c.ForbiddenCycleOneEdge(vs[i], vs[j], lens[i], cutSize) ||
				c.ForbiddenCycleOneEdge(vs[j], vs[i], cutSize-lens[i], cutSize) {
				return false
			}
		} else {
			if c.ForbiddenCycle(vs[i], vs[j], lens[i], cutSize) ||
				c.ForbiddenCycle(vs[j], vs[i], cutSize-lens[i], cutSize) {
				return false
			}
		}
	}
	return true
}

// contractedChain builds the concrete path through the given ring vertices,
// joining consecutive ones by a contracted shortest path, and returns the
// path together with the total contracted length added to base.
func (c *Configuration) contractedChain(vs []int, base int) ([]int, int) {
	util.AssertPanic(len(vs) >= 2, "chain needs at least two ring vertices")
	l := base
	path := []int{vs[0]}
	for i := 0; i+1 < len(vs); i++ {
		util.AssertPanic(vs[i] < c.r, fmt.Sprintf("chain vertex %d is not on the ring", vs[i]))
		util.AssertPanic(c.distContracted[vs[i]][vs[i+1]] <= 1,
			"chain vertices must be contracted-adjacent")
		l += c.distContracted[vs[i]][vs[i+1]]
		segment := c.ShortestPaths(vs[i], vs[i+1], true)[0]
		path = append(path, segment[1:]...)
	}
	util.AssertPanic(vs[len(vs)-1] < c.r, "chain must end on the ring")
	return path, l
}

// ForbiddenVertexSize checks whether the cycle formed by threading the ring
// vertices vs with contracted shortest paths and closing with an external
// connector of length k isolates too many surviving vertices for its
// length. With rev, the component on the other side of the chain is taken.
func (c *Configuration) ForbiddenVertexSize(vs []int, k, cutSize int, rev bool) bool {
	path, l := c.contractedChain(vs, k)
	if rev {
		path = util.ReverseG(path)
	}

	component := c.ComponentBetween(path)
	s, t := c.VertexSizeAfterContract(component, cutSize)
	sz := util.MaxInt(s-(k-1)+1, 0)/2 + t

	return (l == 4 && sz > 0) || (l == 5 && sz > 1) || (l == 6 && sz > 2)
}

// ForbiddenVertexSizePair is the two-chain variant: vs1 and vs2 are threaded
// separately and closed by connectors of lengths k1 and k2.
func (c *Configuration) ForbiddenVertexSizePair(vs1, vs2 []int, k1, k2, cutSize int) bool {
	path1, l := c.contractedChain(vs1, k1+k2)
	path2, l2 := c.contractedChain(vs2, 0)
	l += l2

	component := c.ComponentBetween2(path1, path2)
	s, t := c.VertexSizeAfterContract(component, cutSize)
	sz := util.MaxInt(s-util.MaxInt(k1+k2-2, 0)+1, 0)/2 + t

	return (l == 4 && sz > 0) || (l == 5 && sz > 1) || (l == 6 && sz > 2)
}

// CheckDegree7 verifies that, assuming no reduction uses vertices outside
// the surrounding 7-cycle, the contracted configuration keeps at most one
// interior representative and that one has degree exactly 7. It returns
// true when that situation does NOT arise (two or more survivors, or a
// survivor of another degree) — i.e. the configuration is off the hook.
func (c *Configuration) CheckDegree7() bool {
	adjContracted := make([]map[int]struct{}, c.n)
	for v := range adjContracted {
		adjContracted[v] = make(map[int]struct{})
	}
	for v := 0; v < c.n; v++ {
		if c.reductableInside[v] || c.reductableOutside7[v] {
			continue
		}
		for _, u := range c.neighbors[v] {
			if c.reductableInside[u] || c.reductableOutside7[u] {
				continue
			}
			adjContracted[c.representative[v]][c.representative[u]] = struct{}{}
			adjContracted[c.representative[u]][c.representative[v]] = struct{}{}
		}
	}

	nConf := 0
	notDeg7 := false
	for v := 0; v < c.n; v++ {
		if c.reductableInside[v] || c.reductableOutside7[v] {
			continue
		}
		if v >= c.r && c.representative[v] == v {
			nConf++
			if len(adjContracted[v]) != 7 {
				notDeg7 = true
				break
			}
		}
	}
	return nConf >= 2 || notDeg7
}

// CanHaveContractibleLoop scans for ring pairs and ring-ordered quadruples
// whose candidate external connector would form a self-bridge after the
// contraction, reporting each as an unresolved finding.
func (c *Configuration) CanHaveContractibleLoop(logger *zap.Logger) {
	sugar := logger.Sugar()
	for cutSize := pkg.MIN_CUT_SIZE; cutSize <= pkg.MAX_CUT_SIZE; cutSize++ {
		for p := 0; p < c.r; p++ {
			for q := 0; q < c.r; q++ {
				if p == q || p+1 == q || (p == c.r-1 && q == 0) {
					continue
				}
				pathlenMax := 1 - c.distContracted[p][q]
				for pathlen := 0; pathlen <= pathlenMax; pathlen++ {
					if c.checkShortCycle(p, q, pathlen, cutSize) {
						continue
					}
					sugar.Infof("dangerous: may be a bridge by %d,%d-contractible in %d-cycle, general", p, q, cutSize)
				}
			}
		}
		length, _ := c.lengthTables(cutSize)
		for p1 := 0; p1 < c.r; p1++ {
			for q1r := p1 + 1; q1r < p1+c.r; q1r++ {
				for p2r := q1r + 1; p2r < p1+c.r; p2r++ {
					for q2r := p2r + 1; q2r < p1+c.r; q2r++ {
						q1 := q1r % c.r
						p2 := p2r % c.r
						q2 := q2r % c.r
						// p1, q1, p2, q2 in ring order
						lengthInside := c.distContracted[q1][p2] + c.distContracted[q2][p1]
						if lengthInside+length[p1][q1]+length[p2][q2] <= 1 {
							sugar.Infof("dangerous: may be a bridge by %d,%d-contractible, %d,%d-contractible in %d-cycle, general",
								p1, q1, p2, q2, cutSize)
						}
						if lengthInside+length[p1][q1]+length[q2][p2] <= 1 {
							sugar.Infof("dangerous: may be a bridge by %d,%d-contractible, %d,%d-contractible in %d-cycle, general",
								p1, q1, q2, p2, cutSize)
						}
					}
				}
			}
		}
	}
}
