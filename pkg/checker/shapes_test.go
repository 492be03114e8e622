package checker

import (
	"testing"

	"github.com/graphproof/confcheck/pkg/configuration"
	"go.uber.org/zap"
)

func ringOnly(r int) *configuration.Configuration {
	adjSet := make([]map[int]struct{}, r)
	for v := 0; v < r; v++ {
		adjSet[v] = make(map[int]struct{})
	}
	for i := 0; i < r; i++ {
		adjSet[i][(i+1)%r] = struct{}{}
		adjSet[(i+1)%r][i] = struct{}{}
	}
	return configuration.New(r, r, adjSet)
}

func TestFindPairs(t *testing.T) {
	conf := ringOnly(6)

	if got := FindPairs(conf, 0); len(got) != 0 {
		t.Errorf("no pairs should be identified without a contraction, got %v", got)
	}

	adjacent := FindPairs(conf, 1)
	want := []Pair{{0, 1}, {0, 5}, {1, 2}, {2, 3}, {3, 4}, {4, 5}}
	if len(adjacent) != len(want) {
		t.Fatalf("FindPairs(1): got %v, want %v", adjacent, want)
	}
	seen := make(map[Pair]bool)
	for _, p := range adjacent {
		seen[p] = true
	}
	for _, p := range want {
		if !seen[p] {
			t.Errorf("FindPairs(1) missing %v", p)
		}
	}

	if got := FindPairs(conf, 2); len(got) != 6 {
		t.Errorf("FindPairs(2): got %d pairs, want 6", len(got))
	}
	if got := FindPairs(conf, 3); len(got) != 3 {
		t.Errorf("FindPairs(3): got %d pairs, want 3", len(got))
	}
}

func TestFindChains3(t *testing.T) {
	conf := ringOnly(6)

	chains := FindChains3(conf, 1, 1)
	if len(chains) != 6 {
		t.Fatalf("got %d chains, want 6: %v", len(chains), chains)
	}
	seen := make(map[Triple]bool)
	for _, c := range chains {
		seen[c] = true
	}
	for _, c := range []Triple{{0, 1, 2}, {4, 5, 0}, {5, 0, 1}} {
		if !seen[c] {
			t.Errorf("missing consecutive chain %v", c)
		}
	}
}

func TestFindPairsAfterContraction(t *testing.T) {
	// Identifying the hub with ring vertex 0 pulls every other ring vertex
	// to contracted distance 1 from 0.
	r := 5
	adjSet := make([]map[int]struct{}, r+1)
	for v := range adjSet {
		adjSet[v] = make(map[int]struct{})
	}
	for i := 0; i < r; i++ {
		adjSet[i][(i+1)%r] = struct{}{}
		adjSet[(i+1)%r][i] = struct{}{}
		adjSet[i][r] = struct{}{}
		adjSet[r][i] = struct{}{}
	}
	conf := configuration.New(r+1, r, adjSet)
	if err := conf.SetContract([]configuration.Edge{{U: 0, V: 5}}, zap.NewNop()); err != nil {
		t.Fatal(err)
	}

	ab1s := FindPairs(conf, 1)
	seen := make(map[Pair]bool)
	for _, p := range ab1s {
		seen[p] = true
	}
	for _, p := range []Pair{{0, 2}, {0, 3}} {
		if !seen[p] {
			t.Errorf("FindPairs(1) missing %v after contraction: %v", p, ab1s)
		}
	}
	if got := FindPairs(conf, 2); len(got) != 3 {
		t.Errorf("FindPairs(2): got %v, want the three pairs avoiding vertex 0", got)
	}
}
