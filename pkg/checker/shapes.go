// Package checker drives the reducibility check: it enumerates families of
// ring-vertex tuples with prescribed pairwise contracted distances, builds
// candidate boundary patterns whose segment lengths sum to 6 or 7, validates
// each against the forbidden-cut oracle and reports every pattern that
// survives as dangerous.
package checker

import (
	"sort"

	"github.com/graphproof/confcheck/pkg/configuration"
)

type Pair [2]int
type Triple [3]int
type Quad [4]int
type Quint [5]int

// FindPairs returns every ring pair a < b at contracted distance d0.
func FindPairs(conf *configuration.Configuration, d0 int) []Pair {
	r := conf.RingSize()
	var out []Pair
	for a := 0; a < r; a++ {
		for b := a + 1; b < r; b++ {
			if conf.ContractedDistance(a, b) == d0 {
				out = append(out, Pair{a, b})
			}
		}
	}
	return out
}

func sortTriples(ts []Triple) []Triple {
	sort.Slice(ts, func(i, j int) bool {
		if ts[i][0] != ts[j][0] {
			return ts[i][0] < ts[j][0]
		}
		if ts[i][1] != ts[j][1] {
			return ts[i][1] < ts[j][1]
		}
		return ts[i][2] < ts[j][2]
	})
	out := ts[:0]
	for i, t := range ts {
		if i > 0 && t == ts[i-1] {
			continue
		}
		out = append(out, t)
	}
	return out
}

func sortQuads(qs []Quad) []Quad {
	sort.Slice(qs, func(i, j int) bool {
		for k := 0; k < 4; k++ {
			if qs[i][k] != qs[j][k] {
				return qs[i][k] < qs[j][k]
			}
		}
		return false
	})
	out := qs[:0]
	for i, q := range qs {
		if i > 0 && q == qs[i-1] {
			continue
		}
		out = append(out, q)
	}
	return out
}

func sortQuints(qs []Quint) []Quint {
	sort.Slice(qs, func(i, j int) bool {
		for k := 0; k < 5; k++ {
			if qs[i][k] != qs[j][k] {
				return qs[i][k] < qs[j][k]
			}
		}
		return false
	})
	out := qs[:0]
	for i, q := range qs {
		if i > 0 && q == qs[i-1] {
			continue
		}
		out = append(out, q)
	}
	return out
}

// FindChains3 returns ring triples a, b, c in cyclic order with contracted
// distance d0 between the first two and d1 between the last two.
func FindChains3(conf *configuration.Configuration, d0, d1 int) []Triple {
	r := conf.RingSize()
	var out []Triple
	for a := 0; a < r; a++ {
		for b := a + 1; b < r; b++ {
			if conf.ContractedDistance(a, b) != d0 {
				continue
			}
			for c := a + 1; c < b; c++ {
				if conf.ContractedDistance(a, c) == d1 {
					out = append(out, Triple{b, a, c})
				}
			}
			for c := b + 1; c < a+r; c++ {
				if conf.ContractedDistance(b, c%r) == d1 {
					out = append(out, Triple{a, b, c % r})
				}
			}
		}
	}
	return sortTriples(out)
}

// FindTriangles returns ring triples a, b, c in cyclic order with all three
// pairwise contracted distances prescribed.
func FindTriangles(conf *configuration.Configuration, d0, d1, d2 int) []Triple {
	r := conf.RingSize()
	var out []Triple
	for a := 0; a < r; a++ {
		for b := a + 1; b < r; b++ {
			if conf.ContractedDistance(a, b) != d0 {
				continue
			}
			for c := a + 1; c < b; c++ {
				if conf.ContractedDistance(b, c) == d1 && conf.ContractedDistance(a, c) == d2 {
					out = append(out, Triple{b, a, c})
				}
			}
			for c := b + 1; c < a+r; c++ {
				if conf.ContractedDistance(a, c%r) == d1 && conf.ContractedDistance(b, c%r) == d2 {
					out = append(out, Triple{a, b, c % r})
				}
			}
		}
	}
	return sortTriples(out)
}

// FindPairPairs returns ring quadruples a, b, c, d in cyclic order with
// contracted distance d0 between a, b and d1 between c, d.
func FindPairPairs(conf *configuration.Configuration, d0, d1 int) []Quad {
	r := conf.RingSize()
	var out []Quad
	for a := 0; a < r; a++ {
		for b := a + 1; b < r; b++ {
			if conf.ContractedDistance(a, b) != d0 {
				continue
			}
			for c := b + 1; c < a+r; c++ {
				for d := c + 1; d < a+r; d++ {
					if conf.ContractedDistance(c%r, d%r) == d1 {
						out = append(out, Quad{a, b, c % r, d % r})
					}
				}
			}
			for c := a + 1; c < b; c++ {
				for d := c + 1; d < b; d++ {
					if conf.ContractedDistance(c, d) == d1 {
						out = append(out, Quad{b, a, c, d})
					}
				}
			}
		}
	}
	return sortQuads(out)
}

// FindChains4 returns ring quadruples a, b, c, d in cyclic order with the
// three consecutive contracted distances prescribed.
func FindChains4(conf *configuration.Configuration, d0, d1, d2 int) []Quad {
	r := conf.RingSize()
	var out []Quad
	for a := 0; a < r; a++ {
		for b := a + 1; b < r; b++ {
			if conf.ContractedDistance(a, b) != d0 {
				continue
			}
			for c := b + 1; c < a+r; c++ {
				if conf.ContractedDistance(b, c%r) != d1 {
					continue
				}
				for d := c + 1; d < a+r; d++ {
					if conf.ContractedDistance(c%r, d%r) == d2 {
						out = append(out, Quad{a, b, c % r, d % r})
					}
				}
			}
			for c := a + 1; c < b; c++ {
				if conf.ContractedDistance(a, c) != d1 {
					continue
				}
				for d := c + 1; d < b; d++ {
					if conf.ContractedDistance(c, d) == d2 {
						out = append(out, Quad{b, a, c, d})
					}
				}
			}
		}
	}
	return sortQuads(out)
}

// FindChain3Pairs returns ring quintuples a, b, c, d, e in cyclic order with
// contracted distance d0 between a, b, d1 between b, c and d2 between d, e.
func FindChain3Pairs(conf *configuration.Configuration, d0, d1, d2 int) []Quint {
	r := conf.RingSize()
	var out []Quint
	for a := 0; a < r; a++ {
		for b := a + 1; b < r; b++ {
			if conf.ContractedDistance(a, b) != d0 {
				continue
			}
			for c := b + 1; c < a+r; c++ {
				if conf.ContractedDistance(b, c%r) != d1 {
					continue
				}
				for d := c + 1; d < a+r; d++ {
					for e := d + 1; e < a+r; e++ {
						if conf.ContractedDistance(d%r, e%r) == d2 {
							out = append(out, Quint{a, b, c % r, d % r, e % r})
						}
					}
				}
			}
			for c := a + 1; c < b; c++ {
				if conf.ContractedDistance(a, c) != d1 {
					continue
				}
				for d := c + 1; d < b; d++ {
					for e := d + 1; e < b; e++ {
						if conf.ContractedDistance(d, e) == d2 {
							out = append(out, Quint{b, a, c, d, e})
						}
					}
				}
			}
		}
	}
	return sortQuints(out)
}
