// Package configuration models a planar configuration: a free completion
// together with its boundary ring, the contraction of a chosen edge set, and
// the distance / component / forbidden-cut machinery the reducibility check
// is built from.
//
// Vertex ids are dense ints in [0, n). Ids below the ring size r are the
// ring vertices in cyclic order; the rest are interior configuration
// vertices. A pq-contractibly connected path is a path joining ring vertices
// p and q outside the configuration such that, together with the ring arc
// from p to q (in increasing index order, wrapping mod r), it bounds a disk
// disjoint from the configuration.
package configuration

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/graphproof/confcheck/pkg"
	"github.com/graphproof/confcheck/pkg/util"
	"go.uber.org/zap"
)

// Edge is an undirected edge given by its two endpoints.
type Edge struct {
	U, V int
}

type Configuration struct {
	n int // number of vertices of the free completion with its ring
	r int // ring size

	adjSet    []map[int]struct{} // symmetric adjacency
	neighbors [][]int            // sorted neighbor lists, fixed at construction

	// contraction state, recomputed as a unit by SetContract
	contract           []Edge
	dist               [][]int // raw shortest-path distances
	distContracted     [][]int // distances after contracting the edge set
	representative     []int   // minimum-index member of each contraction class
	reductableInside   []bool  // erasable by a 2,3-cut inside the contracted configuration
	reductableOutside6 []bool  // erasable by an external 2,3-cut in a 6-cycle context
	reductableOutside7 []bool  // same, 7-cycle context

	// allPaths[p][q] caches every simple path of at most 7 edges between
	// ring vertices p and q in the uncontracted graph.
	allPaths [][][][]int

	// lengthK[p][q] is a lower bound on the length of a pq-contractibly
	// connected path that can be part of a surrounding K-cycle; the OneEdge
	// tables allow the path to leave the cycle on exactly one edge.
	length6        [][]int
	length7        [][]int
	lengthOneEdge6 [][]int
	lengthOneEdge7 [][]int
}

// New builds a configuration from a symmetric adjacency structure. The ring
// edges {i,(i+1) mod r} must already be present. Everything derivable
// without a contraction set (raw distances, the bounded path cache, the
// outer-path length tables) is computed eagerly here.
func New(n, r int, adjSet []map[int]struct{}) *Configuration {
	c := &Configuration{
		n:                  n,
		r:                  r,
		adjSet:             adjSet,
		contract:           nil,
		reductableInside:   make([]bool, n),
		reductableOutside6: make([]bool, n),
		reductableOutside7: make([]bool, n),
	}

	c.neighbors = make([][]int, n)
	for v := 0; v < n; v++ {
		for u := range adjSet[v] {
			c.neighbors[v] = append(c.neighbors[v], u)
		}
		sort.Ints(c.neighbors[v])
	}

	c.dist = c.apsp(false)
	c.distContracted = c.apsp(false)
	c.representative = c.calcRepresentative()

	c.allPaths = make([][][][]int, r)
	for p := 0; p < r; p++ {
		c.allPaths[p] = make([][][]int, r)
		for q := 0; q < r; q++ {
			if p == q {
				continue
			}
			c.allPaths[p][q] = c.calculatePaths(p, q)
		}
	}

	c.length6 = c.calcLowerBoundLengthOuterPath(pkg.MIN_CUT_SIZE)
	c.length7 = c.calcLowerBoundLengthOuterPath(pkg.MAX_CUT_SIZE)
	c.lengthOneEdge6 = c.calcLowerBoundLengthOuterPathOneEdge(pkg.MIN_CUT_SIZE)
	c.lengthOneEdge7 = c.calcLowerBoundLengthOuterPathOneEdge(pkg.MAX_CUT_SIZE)

	return c
}

// ReadConfFile parses the .conf text format: one ignored header line, then
// "n r", then one adjacency row per interior vertex with 1-based ids. Ring
// edges are synthesized from r; edges toward ring vertices get their reverse
// inserted as well.
func ReadConfFile(filename string) (*Configuration, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	if _, err := br.ReadString('\n'); err != nil {
		return nil, fmt.Errorf("%s: missing header line: %w", filename, err)
	}

	var n, r int
	if _, err := fmt.Fscan(br, &n, &r); err != nil {
		return nil, fmt.Errorf("%s: reading n and r: %w", filename, err)
	}
	if r < 3 || n < r {
		return nil, fmt.Errorf("%s: invalid sizes n=%d r=%d", filename, n, r)
	}

	adjSet := make([]map[int]struct{}, n)
	for v := 0; v < n; v++ {
		adjSet[v] = make(map[int]struct{})
	}
	for i := 0; i < r; i++ {
		adjSet[i][(i+1)%r] = struct{}{}
		adjSet[(i+1)%r][i] = struct{}{}
	}

	for i := r; i < n; i++ {
		var v, d int
		if _, err := fmt.Fscan(br, &v, &d); err != nil {
			return nil, fmt.Errorf("%s: reading adjacency row %d: %w", filename, i+1, err)
		}
		v--
		if v != i {
			return nil, fmt.Errorf("%s: adjacency row out of order: got vertex %d, want %d", filename, v+1, i+1)
		}
		for j := 0; j < d; j++ {
			var u int
			if _, err := fmt.Fscan(br, &u); err != nil {
				return nil, fmt.Errorf("%s: reading neighbor %d of vertex %d: %w", filename, j+1, v+1, err)
			}
			u--
			if u < 0 || u >= n {
				return nil, fmt.Errorf("%s: neighbor %d of vertex %d out of range", filename, u+1, v+1)
			}
			adjSet[v][u] = struct{}{}
			if u < r {
				adjSet[u][v] = struct{}{}
			}
		}
	}

	return New(n, r, adjSet), nil
}

func (c *Configuration) NumVertices() int { return c.n }
func (c *Configuration) RingSize() int    { return c.r }

func (c *Configuration) Distance(u, v int) int           { return c.dist[u][v] }
func (c *Configuration) ContractedDistance(u, v int) int { return c.distContracted[u][v] }

func (c *Configuration) Degree(v int) int { return len(c.neighbors[v]) }

func (c *Configuration) isRing(v int) bool { return v < c.r }

// equivalent reports whether u and v are identified by the contraction.
func (c *Configuration) equivalent(u, v int) bool {
	return c.distContracted[v][u] == 0
}

func (c *Configuration) calcRepresentative() []int {
	representative := make([]int, c.n)
	for v := 0; v < c.n; v++ {
		representative[v] = -1
		for u := 0; u < c.n; u++ {
			if c.equivalent(v, u) {
				representative[v] = u
				break
			}
		}
	}
	return representative
}

// SetContract assigns the contraction edge set and recomputes every derived
// quantity as one transaction: contracted distances, representatives, and
// all three reduction-flag arrays. Each flagged vertex is reported so the
// batch log shows which configuration vertices an external reduction erases.
func (c *Configuration) SetContract(contract []Edge, logger *zap.Logger) error {
	for _, e := range contract {
		if e.U < 0 || e.U >= c.n || e.V < 0 || e.V >= c.n {
			return fmt.Errorf("contraction edge (%d, %d) out of range", e.U, e.V)
		}
		if _, ok := c.adjSet[e.U][e.V]; !ok {
			return fmt.Errorf("contraction edge (%d, %d) is not an edge of the graph", e.U, e.V)
		}
	}

	c.contract = contract
	c.distContracted = c.apsp(true)
	c.reductableInside = c.calcCutReduction()
	c.reductableOutside6 = c.calcReductableVertices(pkg.MIN_CUT_SIZE)
	c.reductableOutside7 = c.calcReductableVertices(pkg.MAX_CUT_SIZE)
	c.representative = c.calcRepresentative()

	sugar := logger.Sugar()
	for v := 0; v < c.n; v++ {
		if c.reductableInside[v] || c.reductableOutside6[v] {
			sugar.Infof("vertex %d is erased by 6", v)
		}
		if c.reductableInside[v] || c.reductableOutside7[v] {
			sugar.Infof("vertex %d is erased by 7", v)
		}
	}
	return nil
}

// EdgesFromIDs translates dual-form edge ids into primal vertex pairs. The
// id space enumerates the ring edges first, in ring order, then the edges of
// every triangle of the graph in ascending-vertex order.
func (c *Configuration) EdgesFromIDs(edgeIDs []int) ([]Edge, error) {
	is3Cycle := func(x, y, z int) bool {
		_, xy := c.adjSet[x][y]
		_, yz := c.adjSet[y][z]
		_, zx := c.adjSet[z][x]
		return xy && yz && zx
	}

	var triangles [][3]int
	for i := 0; i < c.n; i++ {
		for j := 0; j < i; j++ {
			for k := 0; k < j; k++ {
				if is3Cycle(k, j, i) {
					triangles = append(triangles, [3]int{k, j, i})
				}
			}
		}
	}
	sort.Slice(triangles, func(a, b int) bool {
		ta, tb := triangles[a], triangles[b]
		if ta[0] != tb[0] {
			return ta[0] < tb[0]
		}
		if ta[1] != tb[1] {
			return ta[1] < tb[1]
		}
		return ta[2] < tb[2]
	})

	indexOfEdge := make(map[Edge]int)
	var edgeOfIndex []Edge
	addEdge := func(x, y int) {
		if x > y {
			x, y = y, x
		}
		e := Edge{x, y}
		if _, ok := indexOfEdge[e]; !ok {
			indexOfEdge[e] = len(edgeOfIndex)
			edgeOfIndex = append(edgeOfIndex, e)
		}
	}
	for i := 0; i < c.r; i++ {
		addEdge(i, (i+1)%c.r)
	}
	for _, tri := range triangles {
		a, b, cc := tri[0], tri[1], tri[2]
		addEdge(a, b)
		addEdge(b, cc)
		addEdge(cc, a)
	}

	primal := make([]Edge, len(edgeIDs))
	for i, id := range edgeIDs {
		if id < 0 || id >= len(edgeOfIndex) {
			return nil, fmt.Errorf("edge id %d out of range (have %d dual edges)", id, len(edgeOfIndex))
		}
		primal[i] = edgeOfIndex[id]
	}
	return primal, nil
}

// apsp is a Warshall-Floyd all-pairs shortest path over unit weights. With
// useContraction, every contraction edge is forced to weight 0 first; each
// such pair must be an existing edge.
func (c *Configuration) apsp(useContraction bool) [][]int {
	dist := make([][]int, c.n)
	for v := 0; v < c.n; v++ {
		dist[v] = make([]int, c.n)
		for u := 0; u < c.n; u++ {
			dist[v][u] = pkg.INF_DIST
		}
		dist[v][v] = 0
		for _, u := range c.neighbors[v] {
			dist[v][u] = 1
		}
	}
	if useContraction {
		for _, e := range c.contract {
			util.AssertPanic(dist[e.U][e.V] == 1,
				fmt.Sprintf("contracted pair (%d, %d) is not an edge", e.U, e.V))
			dist[e.U][e.V] = 0
			dist[e.V][e.U] = 0
		}
	}
	for k := 0; k < c.n; k++ {
		for i := 0; i < c.n; i++ {
			for j := 0; j < c.n; j++ {
				if dist[i][k]+dist[k][j] < dist[i][j] {
					dist[i][j] = dist[i][k] + dist[k][j]
				}
			}
		}
	}
	return dist
}
