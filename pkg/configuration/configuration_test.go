package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ringAdj builds the adjacency of a bare r-ring on n vertices plus extra
// edges, inserted symmetrically.
func ringAdj(n, r int, extra []Edge) []map[int]struct{} {
	adjSet := make([]map[int]struct{}, n)
	for v := 0; v < n; v++ {
		adjSet[v] = make(map[int]struct{})
	}
	for i := 0; i < r; i++ {
		adjSet[i][(i+1)%r] = struct{}{}
		adjSet[(i+1)%r][i] = struct{}{}
	}
	for _, e := range extra {
		adjSet[e.U][e.V] = struct{}{}
		adjSet[e.V][e.U] = struct{}{}
	}
	return adjSet
}

// wheel builds an r-ring with one hub vertex r adjacent to every ring vertex.
func wheel(r int) *Configuration {
	extra := make([]Edge, 0, r)
	for i := 0; i < r; i++ {
		extra = append(extra, Edge{i, r})
	}
	return New(r+1, r, ringAdj(r+1, r, extra))
}

func TestNewWheel(t *testing.T) {
	conf := wheel(5)

	if conf.NumVertices() != 6 {
		t.Errorf("NumVertices: got %d, want 6", conf.NumVertices())
	}
	if conf.RingSize() != 5 {
		t.Errorf("RingSize: got %d, want 5", conf.RingSize())
	}
	if conf.Degree(5) != 5 {
		t.Errorf("hub degree: got %d, want 5", conf.Degree(5))
	}
	if conf.Degree(0) != 3 {
		t.Errorf("ring vertex degree: got %d, want 3", conf.Degree(0))
	}
	if conf.Distance(0, 2) != 2 {
		t.Errorf("Distance(0, 2): got %d, want 2", conf.Distance(0, 2))
	}
	if conf.Distance(5, 3) != 1 {
		t.Errorf("Distance(5, 3): got %d, want 1", conf.Distance(5, 3))
	}
}

func TestDistanceIsAMetric(t *testing.T) {
	conf := wheel(5)
	n := conf.NumVertices()
	for u := 0; u < n; u++ {
		if conf.Distance(u, u) != 0 {
			t.Errorf("Distance(%d, %d): got %d, want 0", u, u, conf.Distance(u, u))
		}
		for v := 0; v < n; v++ {
			if conf.Distance(u, v) != conf.Distance(v, u) {
				t.Errorf("Distance(%d, %d) != Distance(%d, %d)", u, v, v, u)
			}
			for w := 0; w < n; w++ {
				if conf.Distance(u, v) > conf.Distance(u, w)+conf.Distance(w, v) {
					t.Errorf("triangle inequality violated for %d, %d via %d", u, v, w)
				}
			}
		}
	}
}

func TestReadConfFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel5.conf")
	content := "wheel on a 5-ring\n6 5\n6 5 1 2 3 4 5\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	conf, err := ReadConfFile(path)
	require.NoError(t, err)
	require.Equal(t, 6, conf.NumVertices())
	require.Equal(t, 5, conf.RingSize())
	for i := 0; i < 5; i++ {
		require.Equal(t, 1, conf.Distance(5, i), "hub should be adjacent to ring vertex %d", i)
	}
}

func TestReadConfFileErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "invalid sizes", content: "header\n2 5\n"},
		{name: "row out of order", content: "header\n7 5\n7 5 1 2 3 4 5\n6 5 1 2 3 4 5\n"},
		{name: "neighbor out of range", content: "header\n6 5\n6 5 1 2 3 4 9\n"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.conf")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := ReadConfFile(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestSetContract(t *testing.T) {
	conf := wheel(5)
	if err := conf.SetContract([]Edge{{0, 5}}, zap.NewNop()); err != nil {
		t.Fatalf("SetContract: %v", err)
	}

	if conf.ContractedDistance(0, 5) != 0 {
		t.Errorf("contracted endpoints should be at distance 0, got %d", conf.ContractedDistance(0, 5))
	}
	// 2 reaches 0 through the hub once the spoke has weight 0.
	if conf.ContractedDistance(2, 0) != 1 {
		t.Errorf("ContractedDistance(2, 0): got %d, want 1", conf.ContractedDistance(2, 0))
	}
	n := conf.NumVertices()
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if conf.ContractedDistance(u, v) > conf.Distance(u, v) {
				t.Errorf("contraction increased distance between %d and %d", u, v)
			}
		}
	}
}

func TestSetContractRejectsNonEdges(t *testing.T) {
	conf := wheel(5)
	if err := conf.SetContract([]Edge{{0, 2}}, zap.NewNop()); err == nil {
		t.Error("contracting a non-edge should fail")
	}
	if err := conf.SetContract([]Edge{{0, 9}}, zap.NewNop()); err == nil {
		t.Error("contracting an out-of-range pair should fail")
	}
}

func TestEdgesFromIDs(t *testing.T) {
	conf := wheel(5)

	// Ids 0-4 are the ring edges in ring order; the triangle sweep then
	// numbers the spokes 5: {1,5}, 6: {0,5}, 7: {4,5}, 8: {2,5}, 9: {3,5}.
	edges, err := conf.EdgesFromIDs([]int{0, 6, 9})
	require.NoError(t, err)
	require.Equal(t, []Edge{{0, 1}, {0, 5}, {3, 5}}, edges)

	_, err = conf.EdgesFromIDs([]int{10})
	require.Error(t, err, "expected an error for an out-of-range id")
}
