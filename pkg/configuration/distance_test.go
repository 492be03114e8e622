package configuration

import (
	"testing"

	"go.uber.org/zap"
)

func pathsInclude(paths [][]int, want []int) bool {
	for _, p := range paths {
		if len(p) != len(want) {
			continue
		}
		same := true
		for i := range p {
			if p[i] != want[i] {
				same = false
				break
			}
		}
		if same {
			return true
		}
	}
	return false
}

func TestShortestPathsOnRing(t *testing.T) {
	conf := New(8, 8, ringAdj(8, 8, nil))

	paths := conf.ShortestPaths(0, 4, false)
	if len(paths) != 2 {
		t.Fatalf("got %d shortest paths, want 2: %v", len(paths), paths)
	}
	if !pathsInclude(paths, []int{0, 1, 2, 3, 4}) {
		t.Errorf("missing clockwise arc in %v", paths)
	}
	if !pathsInclude(paths, []int{0, 7, 6, 5, 4}) {
		t.Errorf("missing counterclockwise arc in %v", paths)
	}
}

func TestShortestPathsUseContractedSpoke(t *testing.T) {
	conf := wheel(5)
	if err := conf.SetContract([]Edge{{0, 5}}, zap.NewNop()); err != nil {
		t.Fatal(err)
	}

	// With the 0-5 spoke at weight 0, the only weight-1 route from 2 to 0
	// runs through the hub; the ring route 2-1-0 costs 2.
	paths := conf.ShortestPaths(2, 0, true)
	if len(paths) != 1 {
		t.Fatalf("got %d shortest paths, want 1: %v", len(paths), paths)
	}
	if !pathsInclude(paths, []int{2, 5, 0}) {
		t.Errorf("got %v, want [[2 5 0]]", paths)
	}
}

func TestAllPathsOnRing(t *testing.T) {
	conf := New(8, 8, ringAdj(8, 8, nil))

	// Between antipodal vertices of an 8-ring the only simple paths are the
	// two arcs, both within the edge bound.
	paths := conf.AllPaths(0, 4)
	if len(paths) != 2 {
		t.Fatalf("AllPaths(0, 4): got %d paths, want 2: %v", len(paths), paths)
	}
	if !pathsInclude(paths, []int{0, 1, 2, 3, 4}) || !pathsInclude(paths, []int{0, 7, 6, 5, 4}) {
		t.Errorf("AllPaths(0, 4) missing an arc: %v", paths)
	}

	// Between adjacent vertices the long way round has exactly 7 edges, so
	// it still counts.
	paths = conf.AllPaths(0, 1)
	if len(paths) != 2 {
		t.Fatalf("AllPaths(0, 1): got %d paths, want 2: %v", len(paths), paths)
	}
	if !pathsInclude(paths, []int{0, 1}) {
		t.Errorf("AllPaths(0, 1) missing the direct edge: %v", paths)
	}
	if !pathsInclude(paths, []int{0, 7, 6, 5, 4, 3, 2, 1}) {
		t.Errorf("AllPaths(0, 1) missing the long arc: %v", paths)
	}
}

func TestAllPathsRespectsEdgeBound(t *testing.T) {
	conf := New(10, 10, ringAdj(10, 10, nil))

	// On a 10-ring the far arc between adjacent vertices has 9 edges and
	// must be cut off.
	paths := conf.AllPaths(0, 1)
	if len(paths) != 1 {
		t.Fatalf("AllPaths(0, 1): got %d paths, want 1: %v", len(paths), paths)
	}
	for _, p := range paths {
		if len(p) > 8 {
			t.Errorf("path %v exceeds 7 edges", p)
		}
	}
}
