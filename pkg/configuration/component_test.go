package configuration

import (
	"sort"
	"testing"
)

func sortedCopy(vs []int) []int {
	out := append([]int(nil), vs...)
	sort.Ints(out)
	return out
}

func TestComponentBetween(t *testing.T) {
	conf := wheel(5)

	// Cutting at {0, 2} leaves everything else connected through the hub.
	component := sortedCopy(conf.ComponentBetween([]int{0, 2}))
	want := []int{1, 3, 4, 5}
	if len(component) != len(want) {
		t.Fatalf("got %v, want %v", component, want)
	}
	for i := range want {
		if component[i] != want[i] {
			t.Fatalf("got %v, want %v", component, want)
		}
	}

	s, tt := conf.SizeOfVertices([]int{0, 2})
	if s != 3 || tt != 1 {
		t.Errorf("SizeOfVertices: got (%d, %d), want (3, 1)", s, tt)
	}
}

func TestComponentBetweenSeparatingPath(t *testing.T) {
	// A 6-ring with a chord path 0-6-3 through one interior vertex: the path
	// splits the disk into the 1,2 side and the 4,5 side.
	conf := New(7, 6, ringAdj(7, 6, []Edge{{0, 6}, {3, 6}}))

	component := sortedCopy(conf.ComponentBetween([]int{0, 6, 3}))
	want := []int{1, 2}
	if len(component) != len(want) || component[0] != want[0] || component[1] != want[1] {
		t.Fatalf("got %v, want %v", component, want)
	}

	other := sortedCopy(conf.ComponentBetween([]int{3, 6, 0}))
	want = []int{4, 5}
	if len(other) != len(want) || other[0] != want[0] || other[1] != want[1] {
		t.Fatalf("got %v, want %v", other, want)
	}
}

func TestComponentBetween2AndOutside(t *testing.T) {
	// A 6-ring with one interior vertex 6 on a chord between ring vertices 1
	// and 4. The chord path 1-6-4 and the short arc path 5-0 enclose a region
	// whose two-path component keeps the chord endpoints and the interior
	// vertex; outside it only the 2, 3 arc remains.
	conf := New(7, 6, ringAdj(7, 6, []Edge{{1, 6}, {4, 6}}))

	between := sortedCopy(conf.ComponentBetween2([]int{1, 6, 4}, []int{5, 0}))
	want := []int{1, 4, 6}
	if len(between) != len(want) {
		t.Fatalf("ComponentBetween2: got %v, want %v", between, want)
	}
	for i := range want {
		if between[i] != want[i] {
			t.Fatalf("ComponentBetween2: got %v, want %v", between, want)
		}
	}

	outside := sortedCopy(conf.ComponentOutside([]int{1, 6, 4}, []int{5, 0}))
	want = []int{2, 3}
	if len(outside) != len(want) || outside[0] != want[0] || outside[1] != want[1] {
		t.Fatalf("ComponentOutside: got %v, want %v", outside, want)
	}

	s, tt := conf.SizeOfVertices2([]int{1, 6, 4}, []int{5, 0})
	if s != 2 || tt != 1 {
		t.Errorf("SizeOfVertices2: got (%d, %d), want (2, 1)", s, tt)
	}
	s, tt = conf.SizeOfVerticesOutside([]int{1, 6, 4}, []int{5, 0})
	if s != 2 || tt != 0 {
		t.Errorf("SizeOfVerticesOutside: got (%d, %d), want (2, 0)", s, tt)
	}
}
