package checker

import (
	"github.com/graphproof/confcheck/pkg/configuration"
	"go.uber.org/zap"
)

// Check runs the whole catalogue of boundary patterns against a contracted
// configuration and reports every pattern the oracle cannot exclude. The
// catalogue below fixes, for each tuple shape, the segment-length
// assignments summing to 6 or 7 and the one-edge-adjusted variants; the
// numeric tags identify the case in the surrounding proof's summary table.
func Check(conf *configuration.Configuration, filename string, logger *zap.Logger) {
	sugar := logger.Sugar()
	sugar.Infof("filename: %s", filename)

	ab0s := FindPairs(conf, 0)
	ab1s := FindPairs(conf, 1)

	ab0bc1s := FindChains3(conf, 0, 1)
	ab1bc0s := FindChains3(conf, 1, 0)
	ab1bc1s := FindChains3(conf, 1, 1)

	ab0ac0bc0s := FindTriangles(conf, 0, 0, 0)
	ab0ac1bc1s := FindTriangles(conf, 0, 1, 1)
	ab1ac1bc1s := FindTriangles(conf, 1, 1, 1)

	ab0cd0s := FindPairPairs(conf, 0, 0)
	ab0cd1s := FindPairPairs(conf, 0, 1)
	ab1cd1s := FindPairPairs(conf, 1, 1)

	ab0bc0cd0s := FindChains4(conf, 0, 0, 0)
	ab0bc0cd1s := FindChains4(conf, 0, 0, 1)
	ab0bc1cd0s := FindChains4(conf, 0, 1, 0)
	ab0bc1cd1s := FindChains4(conf, 0, 1, 1)
	ab1bc0cd0s := FindChains4(conf, 1, 0, 0)
	ab1bc0cd1s := FindChains4(conf, 1, 0, 1)
	ab1bc1cd0s := FindChains4(conf, 1, 1, 0)
	ab1bc1cd1s := FindChains4(conf, 1, 1, 1)

	ab0bc0de0s := FindChain3Pairs(conf, 0, 0, 0)
	ab0bc1de0s := FindChain3Pairs(conf, 0, 1, 0)
	ab1bc0de0s := FindChain3Pairs(conf, 1, 0, 0)

	ff := []bool{false, false}
	fff := []bool{false, false, false}
	ffff := []bool{false, false, false, false}

	// loop check, except the two difficult loop types
	conf.CanHaveContractibleLoop(logger)

	// 6cut-1
	for _, t := range ab0s {
		a, b := t[0], t[1]
		if conf.IsValid([]int{a, b}, []int{2, 4}, ff) &&
			!conf.ForbiddenVertexSize([]int{b, a}, 4, 6, false) {
			sugar.Infof("6cut-1 (24) (%d, %d) is dangerous in %s", a, b, filename)
		}
		if conf.IsValid([]int{a, b}, []int{4, 2}, ff) &&
			!conf.ForbiddenVertexSize([]int{a, b}, 4, 6, false) {
			sugar.Infof("6cut-1 (42) (%d, %d) is dangerous in %s", a, b, filename)
		}
	}

	// 6cut-2
	for _, t := range ab0cd0s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 1}, ffff) {
			sugar.Infof("6cut-2 (2121) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}

	// 6cut-3
	for _, t := range ab0ac0bc0s {
		a, b, c := t[0], t[1], t[2]
		if conf.IsValid([]int{a, b, c}, []int{2, 2, 2}, fff) {
			sugar.Infof("6cut-3 (222) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
	}

	// 6cut-4
	for _, t := range ab0cd1s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 1}, ffff) {
			sugar.Infof("6cut-4 (2121) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}
	for _, t := range ab0cd0s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 1}, []bool{true, false, false, false}) {
			sugar.Infof("6cut-4 (2121-1) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 1}, []bool{false, true, false, false}) {
			sugar.Infof("6cut-4 (2121-2) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 1}, []bool{false, false, true, false}) {
			sugar.Infof("6cut-4 (2121-3) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 1}, []bool{false, false, false, true}) {
			sugar.Infof("6cut-4 (2121-4) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}

	// 6cut-5
	for _, t := range ab0ac1bc1s {
		a, b, c := t[0], t[1], t[2]
		if conf.IsValid([]int{a, b, c}, []int{2, 2, 2}, fff) {
			sugar.Infof("6cut-5 (222) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
	}
	for _, t := range ab0ac0bc0s {
		a, b, c := t[0], t[1], t[2]
		if conf.IsValid([]int{a, b, c}, []int{2, 2, 2}, []bool{true, false, false}) {
			sugar.Infof("6cut-5 (222-1) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
		if conf.IsValid([]int{a, b, c}, []int{2, 2, 2}, []bool{false, true, false}) {
			sugar.Infof("6cut-5 (222-2) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
		if conf.IsValid([]int{a, b, c}, []int{2, 2, 2}, []bool{false, false, true}) {
			sugar.Infof("6cut-5 (222-3) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
	}

	// 6cut-6
	for _, t := range ab0s {
		a, b := t[0], t[1]
		if conf.IsValid([]int{a, b}, []int{3, 3}, ff) {
			sugar.Infof("6cut-6 (33) (%d, %d) is dangerous in %s", a, b, filename)
		}
	}

	// 6cut-7
	for _, t := range ab1s {
		a, b := t[0], t[1]
		if conf.IsValid([]int{a, b}, []int{2, 4}, ff) &&
			!conf.ForbiddenVertexSize([]int{b, a}, 4, 6, false) {
			sugar.Infof("6cut-7 (24) (%d, %d) is dangerous in %s", a, b, filename)
		}
		if conf.IsValid([]int{a, b}, []int{4, 2}, ff) &&
			!conf.ForbiddenVertexSize([]int{a, b}, 4, 6, false) {
			sugar.Infof("6cut-7 (42) (%d, %d) is dangerous in %s", a, b, filename)
		}
	}
	for _, t := range ab0s {
		a, b := t[0], t[1]
		if conf.IsValid([]int{a, b}, []int{2, 4}, []bool{true, false}) &&
			!conf.ForbiddenVertexSize([]int{b, a}, 5, 6, false) {
			sugar.Infof("6cut-7 (24-1) (%d, %d) is dangerous in %s", a, b, filename)
		}
		if conf.IsValid([]int{a, b}, []int{4, 2}, []bool{true, false}) &&
			!conf.ForbiddenVertexSize([]int{a, b}, 5, 6, false) {
			sugar.Infof("6cut-7 (42-1) (%d, %d) is dangerous in %s", a, b, filename)
		}
		if conf.IsValid([]int{a, b}, []int{2, 4}, []bool{false, true}) &&
			!conf.ForbiddenVertexSize([]int{b, a}, 5, 6, false) {
			sugar.Infof("6cut-7 (24-2) (%d, %d) is dangerous in %s", a, b, filename)
		}
		if conf.IsValid([]int{a, b}, []int{4, 2}, []bool{false, true}) &&
			!conf.ForbiddenVertexSize([]int{a, b}, 5, 6, false) {
			sugar.Infof("6cut-7 (42-2) (%d, %d) is dangerous in %s", a, b, filename)
		}
	}

	// 6cut-8
	for _, t := range ab1cd1s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 1}, ffff) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 1, 1, 6) {
			sugar.Infof("6cut-8 (2121) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}
	for _, t := range ab0cd1s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 1}, []bool{true, false, false, false}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 2, 1, 6) {
			sugar.Infof("6cut-8 (2121-1) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 1}, []bool{false, true, false, false}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 2, 1, 6) {
			sugar.Infof("6cut-8 (2121-2) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}
	for _, t := range ab0cd0s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 1}, []bool{true, false, false, true}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 3, 1, 6) {
			sugar.Infof("6cut-8 (2121-14) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 1}, []bool{false, true, true, false}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 3, 1, 6) {
			sugar.Infof("6cut-8 (2121-23) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 1}, []bool{true, false, true, false}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 2, 2, 6) {
			sugar.Infof("6cut-8 (2121-13) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 1}, []bool{false, true, false, true}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 2, 2, 6) {
			sugar.Infof("6cut-8 (2121-24) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}

	// 6cut-9
	for _, t := range ab1bc1s {
		a, b, c := t[0], t[1], t[2]
		if conf.IsValid([]int{a, b, c}, []int{2, 2, 2}, fff) &&
			!conf.ForbiddenVertexSize([]int{a, b, c}, 2, 6, true) {
			sugar.Infof("6cut-9 (222) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
	}
	for _, t := range ab0bc1s {
		a, b, c := t[0], t[1], t[2]
		if conf.IsValid([]int{a, b, c}, []int{2, 2, 2}, []bool{true, false, false}) &&
			!conf.ForbiddenVertexSize([]int{a, b, c}, 3, 6, true) {
			sugar.Infof("6cut-9 (222-1) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
	}
	for _, t := range ab1bc0s {
		a, b, c := t[0], t[1], t[2]
		if conf.IsValid([]int{a, b, c}, []int{2, 2, 2}, []bool{false, false, true}) &&
			!conf.ForbiddenVertexSize([]int{a, b, c}, 3, 6, true) {
			sugar.Infof("6cut-9 (222-3) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
	}
	for _, t := range ab0ac0bc0s {
		a, b, c := t[0], t[1], t[2]
		for _, vs := range [][]int{{a, b, c}, {b, c, a}, {c, a, b}} {
			if conf.IsValid(vs, []int{2, 2, 2}, []bool{true, false, true}) &&
				!conf.ForbiddenVertexSize(vs, 4, 6, true) {
				sugar.Infof("6cut-9 (222-13) (%d, %d, %d) is dangerous in %s", vs[0], vs[1], vs[2], filename)
			}
		}
	}
	for _, t := range ab0cd0s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 0}, []bool{true, false, false, true}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 2, 2, 6) {
			sugar.Infof("6cut-9 (2220-14) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 0, 2, 2}, []bool{false, true, true, false}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 2, 2, 6) {
			sugar.Infof("6cut-9 (2022-23) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}

	// 6cut-10
	for _, t := range ab1ac1bc1s {
		a, b, c := t[0], t[1], t[2]
		if conf.IsValid([]int{a, b, c}, []int{2, 2, 2}, fff) {
			sugar.Infof("6cut-10 (222) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
	}
	for _, t := range ab0bc1cd0s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 0}, []bool{true, false, false, true}) {
			sugar.Infof("6cut-10 (2220-14) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}

	// 7cut-1
	for _, t := range ab0s {
		a, b := t[0], t[1]
		if conf.IsValid([]int{a, b}, []int{2, 5}, ff) &&
			!conf.ForbiddenVertexSize([]int{b, a}, 5, 7, false) {
			sugar.Infof("7cut-1 (25) (%d, %d) is dangerous in %s", a, b, filename)
		}
		if conf.IsValid([]int{a, b}, []int{5, 2}, ff) &&
			!conf.ForbiddenVertexSize([]int{a, b}, 5, 7, false) {
			sugar.Infof("7cut-1 (52) (%d, %d) is dangerous in %s", a, b, filename)
		}
	}

	// 7cut-2
	for _, t := range ab0cd0s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{3, 1, 2, 1}, ffff) {
			sugar.Infof("7cut-2 (3121) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 3, 1}, ffff) {
			sugar.Infof("7cut-2 (2131) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}

	// 7cut-3
	for _, t := range ab0cd0s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 2}, ffff) {
			sugar.Infof("7cut-3 (2122) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, ffff) {
			sugar.Infof("7cut-3 (2221) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}

	// 7cut-4
	for _, t := range ab0ac0bc0s {
		a, b, c := t[0], t[1], t[2]
		if conf.IsValid([]int{a, b, c}, []int{3, 2, 2}, fff) {
			sugar.Infof("7cut-4 (322) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
		if conf.IsValid([]int{a, b, c}, []int{2, 3, 2}, fff) {
			sugar.Infof("7cut-4 (232) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
		if conf.IsValid([]int{a, b, c}, []int{2, 2, 3}, fff) {
			sugar.Infof("7cut-4 (223) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
	}

	// 7cut-5
	for _, t := range ab0bc1s {
		a, b, c := t[0], t[1], t[2]
		if conf.IsValid([]int{a, b, c}, []int{2, 2, 3}, fff) &&
			!conf.ForbiddenVertexSize([]int{a, b, c}, 3, 7, true) {
			sugar.Infof("7cut-5 (223) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
	}
	for _, t := range ab1bc0s {
		a, b, c := t[0], t[1], t[2]
		if conf.IsValid([]int{a, b, c}, []int{2, 2, 3}, fff) &&
			!conf.ForbiddenVertexSize([]int{a, b, c}, 3, 7, true) {
			sugar.Infof("7cut-5 (223) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
	}
	for _, t := range ab0ac0bc0s {
		a, b, c := t[0], t[1], t[2]
		rotations := [][]int{{a, b, c}, {b, c, a}, {c, a, b}}
		for _, vs := range rotations {
			if conf.IsValid(vs, []int{2, 2, 3}, []bool{true, false, false}) &&
				!conf.ForbiddenVertexSize(vs, 4, 7, true) {
				sugar.Infof("7cut-5 (223-1) (%d, %d, %d) is dangerous in %s", vs[0], vs[1], vs[2], filename)
			}
		}
		for i, vs := range rotations {
			next := rotations[(i+1)%3]
			if conf.IsValid(vs, []int{3, 2, 2}, []bool{true, false, false}) &&
				!conf.ForbiddenVertexSize(next, 4, 7, true) {
				sugar.Infof("7cut-5 (223-1) (%d, %d, %d) is dangerous in %s", vs[0], vs[1], vs[2], filename)
			}
		}
	}

	// 7cut-6
	for _, t := range ab0cd1s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 2}, ffff) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 1, 2, 7) {
			sugar.Infof("7cut-6 (2122) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, ffff) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 1, 2, 7) {
			sugar.Infof("7cut-6 (2221) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}
	for _, t := range ab0cd0s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 2}, []bool{true, false, false, false}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 1, 3, 7) {
			sugar.Infof("7cut-6 (2122-1) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, []bool{false, true, false, false}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 1, 3, 7) {
			sugar.Infof("7cut-6 (2221-2) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, []bool{false, false, true, false}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 1, 3, 7) {
			sugar.Infof("7cut-6 (2221-3) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 2}, []bool{false, false, false, true}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 1, 3, 7) {
			sugar.Infof("7cut-6 (2122-4) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, []bool{true, false, false, false}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 2, 2, 7) {
			sugar.Infof("7cut-6 (2221-1) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 2}, []bool{false, true, false, false}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 2, 2, 7) {
			sugar.Infof("7cut-6 (2122-2) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 2}, []bool{false, false, true, false}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 2, 2, 7) {
			sugar.Infof("7cut-6 (2122-3) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, []bool{false, false, false, true}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 2, 2, 7) {
			sugar.Infof("7cut-6 (2221-4) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}

	// 7cut-7
	for _, t := range ab0bc1cd1s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, ffff) {
			sugar.Infof("7cut-7 (2221) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}
	for _, t := range ab1bc1cd0s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, ffff) {
			sugar.Infof("7cut-7 (2221) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}
	for _, t := range ab0bc1cd0s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, []bool{true, false, false, false}) {
			sugar.Infof("7cut-7 (2221-1) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, []bool{false, false, false, true}) {
			sugar.Infof("7cut-7 (2221-4) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}
	for _, t := range ab0bc0de0s {
		a, b, c, d, e := t[0], t[1], t[2], t[3], t[4]
		if conf.IsValid([]int{a, b, c, d, e}, []int{2, 2, 0, 2, 1}, []bool{false, false, true, true, false}) {
			sugar.Infof("7cut-7 (22021-34) (%d, %d, %d, %d, %d) is dangerous in %s", a, b, c, d, e, filename)
		}
		if conf.IsValid([]int{a, b, c, d, e}, []int{2, 2, 1, 2, 0}, []bool{true, false, false, false, true}) {
			sugar.Infof("7cut-7 (22120-15) (%d, %d, %d, %d, %d) is dangerous in %s", a, b, c, d, e, filename)
		}
	}

	// 7cut-8
	for _, t := range ab1bc0cd1s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, ffff) {
			sugar.Infof("7cut-8 (2221) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}
	for _, t := range ab0bc0cd1s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, []bool{true, false, false, false}) {
			sugar.Infof("7cut-8 (2221-1) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}
	for _, t := range ab1bc0cd0s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, []bool{false, false, false, true}) {
			sugar.Infof("7cut-8 (2221-4) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}
	for _, t := range ab0bc0cd0s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		for _, vs := range [][]int{{a, b, c, d}, {b, c, d, a}, {c, d, a, b}, {d, a, b, c}} {
			if conf.IsValid(vs, []int{2, 2, 2, 1}, []bool{true, false, false, true}) {
				sugar.Infof("7cut-8 (2221-14) (%d, %d, %d, %d) is dangerous in %s", vs[0], vs[1], vs[2], vs[3], filename)
			}
		}
	}

	// 7cut-9
	for _, t := range ab0s {
		a, b := t[0], t[1]
		if conf.IsValid([]int{a, b}, []int{3, 4}, ff) {
			sugar.Infof("7cut-9 (34) (%d, %d) is dangerous in %s", a, b, filename)
		}
		if conf.IsValid([]int{a, b}, []int{4, 3}, ff) {
			sugar.Infof("7cut-9 (43) (%d, %d) is dangerous in %s", a, b, filename)
		}
	}

	// 7cut-10
	for _, t := range ab0ac1bc1s {
		a, b, c := t[0], t[1], t[2]
		if conf.IsValid([]int{a, b, c}, []int{3, 2, 2}, fff) {
			sugar.Infof("7cut-10 (322) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
	}
	for _, t := range ab0ac0bc0s {
		a, b, c := t[0], t[1], t[2]
		if conf.IsValid([]int{a, b, c}, []int{2, 3, 2}, []bool{true, false, false}) {
			sugar.Infof("7cut-10 (232-1) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
		if conf.IsValid([]int{a, b, c}, []int{2, 2, 3}, []bool{false, true, false}) {
			sugar.Infof("7cut-10 (223-2) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
		if conf.IsValid([]int{a, b, c}, []int{3, 2, 2}, []bool{false, false, true}) {
			sugar.Infof("7cut-10 (322-3) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
	}

	// 7cut-11
	for _, t := range ab0cd1s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{3, 1, 2, 1}, ffff) {
			sugar.Infof("7cut-11 (3121) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}
	for _, t := range ab0cd0s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 3, 1}, []bool{true, false, false, false}) {
			sugar.Infof("7cut-11 (2131-1) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 3, 1}, []bool{false, true, false, false}) {
			sugar.Infof("7cut-11 (2131-2) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{3, 1, 2, 1}, []bool{false, false, true, false}) {
			sugar.Infof("7cut-11 (3121-3) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{3, 1, 2, 1}, []bool{false, false, false, true}) {
			sugar.Infof("7cut-11 (3121-4) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}

	// 7cut-12
	for _, t := range ab1s {
		a, b := t[0], t[1]
		if conf.IsValid([]int{a, b}, []int{2, 5}, ff) &&
			!conf.ForbiddenVertexSize([]int{b, a}, 5, 7, false) {
			sugar.Infof("7cut-12 (25) (%d, %d) is dangerous in %s", a, b, filename)
		}
		if conf.IsValid([]int{a, b}, []int{5, 2}, ff) &&
			!conf.ForbiddenVertexSize([]int{a, b}, 5, 7, false) {
			sugar.Infof("7cut-12 (52) (%d, %d) is dangerous in %s", a, b, filename)
		}
	}
	for _, t := range ab0s {
		a, b := t[0], t[1]
		if conf.IsValid([]int{a, b}, []int{2, 5}, []bool{true, false}) &&
			!conf.ForbiddenVertexSize([]int{b, a}, 6, 7, false) {
			sugar.Infof("7cut-12 (25-1) (%d, %d) is dangerous in %s", a, b, filename)
		}
		if conf.IsValid([]int{a, b}, []int{5, 2}, []bool{true, false}) &&
			!conf.ForbiddenVertexSize([]int{a, b}, 6, 7, false) {
			sugar.Infof("7cut-12 (52-1) (%d, %d) is dangerous in %s", a, b, filename)
		}
		if conf.IsValid([]int{a, b}, []int{2, 5}, []bool{false, true}) &&
			!conf.ForbiddenVertexSize([]int{b, a}, 6, 7, false) {
			sugar.Infof("7cut-12 (25-2) (%d, %d) is dangerous in %s", a, b, filename)
		}
		if conf.IsValid([]int{a, b}, []int{5, 2}, []bool{false, true}) &&
			!conf.ForbiddenVertexSize([]int{a, b}, 6, 7, false) {
			sugar.Infof("7cut-12 (52-2) (%d, %d) is dangerous in %s", a, b, filename)
		}
	}

	// 7cut-13
	for _, t := range ab1bc1s {
		a, b, c := t[0], t[1], t[2]
		if conf.IsValid([]int{a, b, c}, []int{2, 2, 3}, fff) &&
			!conf.ForbiddenVertexSize([]int{a, b, c}, 3, 7, true) {
			sugar.Infof("7cut-13 (223) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
	}
	for _, t := range ab0bc1s {
		a, b, c := t[0], t[1], t[2]
		if conf.IsValid([]int{a, b, c}, []int{2, 2, 3}, []bool{true, false, false}) &&
			!conf.ForbiddenVertexSize([]int{a, b, c}, 4, 7, true) {
			sugar.Infof("7cut-13 (223-1) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
	}
	for _, t := range ab1bc0s {
		a, b, c := t[0], t[1], t[2]
		if conf.IsValid([]int{a, b, c}, []int{2, 2, 3}, []bool{false, false, true}) &&
			!conf.ForbiddenVertexSize([]int{a, b, c}, 4, 7, true) {
			sugar.Infof("7cut-13 (223-3) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
	}
	for _, t := range ab0ac0bc0s {
		a, b, c := t[0], t[1], t[2]
		if conf.IsValid([]int{a, b, c}, []int{3, 2, 2}, []bool{true, true, false}) &&
			!conf.ForbiddenVertexSize([]int{b, c, a}, 5, 7, true) {
			sugar.Infof("7cut-13 (322-12) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
		if conf.IsValid([]int{a, b, c}, []int{2, 2, 3}, []bool{true, false, true}) &&
			!conf.ForbiddenVertexSize([]int{a, b, c}, 5, 7, true) {
			sugar.Infof("7cut-13 (223-13) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
		if conf.IsValid([]int{a, b, c}, []int{2, 3, 2}, []bool{false, true, true}) &&
			!conf.ForbiddenVertexSize([]int{c, a, b}, 5, 7, true) {
			sugar.Infof("7cut-13 (232-23) (%d, %d, %d) is dangerous in %s", a, b, c, filename)
		}
	}
	for _, t := range ab0cd0s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 3, 2, 0}, []bool{true, false, false, true}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 2, 3, 7) {
			sugar.Infof("7cut-13 (2320-14) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 0, 2, 3}, []bool{false, true, true, false}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 2, 3, 7) {
			sugar.Infof("7cut-13 (2023-23) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}

	// 7cut-14
	for _, t := range ab1cd1s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, ffff) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 1, 2, 7) {
			sugar.Infof("7cut-14 (2221) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 2}, ffff) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 1, 2, 7) {
			sugar.Infof("7cut-14 (2122) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}
	for _, t := range ab0cd1s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 2}, []bool{true, false, false, false}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 1, 3, 7) {
			sugar.Infof("7cut-14 (2122-1) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, []bool{false, true, false, false}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 1, 3, 7) {
			sugar.Infof("7cut-14 (2221-2) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, []bool{true, false, false, false}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 2, 2, 7) {
			sugar.Infof("7cut-14 (2221-1) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 2}, []bool{false, true, false, false}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 2, 2, 7) {
			sugar.Infof("7cut-14 (2122-2) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}
	for _, t := range ab0cd0s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 2}, []bool{true, false, false, true}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 1, 4, 7) {
			sugar.Infof("7cut-14 (2122-14) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, []bool{false, true, true, false}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 1, 4, 7) {
			sugar.Infof("7cut-14 (2221-23) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, []bool{true, false, false, true}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 2, 3, 7) {
			sugar.Infof("7cut-14 (2221-14) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 2}, []bool{false, true, true, false}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 2, 3, 7) {
			sugar.Infof("7cut-14 (2122-23) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 2}, []bool{true, false, true, false}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 2, 3, 7) {
			sugar.Infof("7cut-14 (2122-13) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, []bool{false, true, false, true}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 2, 3, 7) {
			sugar.Infof("7cut-14 (2221-24) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, []bool{true, false, true, false}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 2, 3, 7) {
			sugar.Infof("7cut-14 (2221-13) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
		if conf.IsValid([]int{a, b, c, d}, []int{2, 1, 2, 2}, []bool{false, true, false, true}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b}, []int{c, d}, 2, 3, 7) {
			sugar.Infof("7cut-14 (2122-24) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}

	// 7cut-15
	for _, t := range ab1bc1cd1s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, ffff) &&
			!conf.ForbiddenVertexSize([]int{a, b, c, d}, 1, 7, true) {
			sugar.Infof("7cut-15 (2221) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}
	for _, t := range ab0bc1cd1s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, []bool{true, false, false, false}) &&
			!conf.ForbiddenVertexSize([]int{a, b, c, d}, 2, 7, true) {
			sugar.Infof("7cut-15 (2221-1) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}
	for _, t := range ab1bc1cd0s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, []bool{false, false, false, true}) &&
			!conf.ForbiddenVertexSize([]int{a, b, c, d}, 2, 7, true) {
			sugar.Infof("7cut-15 (2221-4) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}
	for _, t := range ab0bc1cd0s {
		a, b, c, d := t[0], t[1], t[2], t[3]
		if conf.IsValid([]int{a, b, c, d}, []int{2, 2, 2, 1}, []bool{true, false, false, true}) &&
			!conf.ForbiddenVertexSize([]int{a, b, c, d}, 3, 7, true) {
			sugar.Infof("7cut-15 (2221-14) (%d, %d, %d, %d) is dangerous in %s", a, b, c, d, filename)
		}
	}
	for _, t := range ab1bc0de0s {
		a, b, c, d, e := t[0], t[1], t[2], t[3], t[4]
		if conf.IsValid([]int{a, b, c, d, e}, []int{2, 2, 0, 2, 1}, []bool{false, false, true, true, false}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b, c}, []int{d, e}, 1, 2, 7) {
			sugar.Infof("7cut-15 (22021-34) (%d, %d, %d, %d, %d) is dangerous in %s", a, b, c, d, e, filename)
		}
	}
	for _, t := range ab0bc1de0s {
		a, b, c, d, e := t[0], t[1], t[2], t[3], t[4]
		if conf.IsValid([]int{a, b, c, d, e}, []int{2, 2, 1, 2, 0}, []bool{true, false, false, false, true}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b, c}, []int{d, e}, 1, 2, 7) {
			sugar.Infof("7cut-15 (22120-15) (%d, %d, %d, %d, %d) is dangerous in %s", a, b, c, d, e, filename)
		}
	}
	for _, t := range ab0bc0de0s {
		a, b, c, d, e := t[0], t[1], t[2], t[3], t[4]
		if conf.IsValid([]int{a, b, c, d, e}, []int{2, 2, 1, 2, 0}, []bool{true, false, true, false, true}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b, c}, []int{d, e}, 2, 2, 7) {
			sugar.Infof("7cut-15 (22120-135) (%d, %d, %d, %d, %d) is dangerous in %s", a, b, c, d, e, filename)
		}
		if conf.IsValid([]int{a, b, c, d, e}, []int{2, 2, 0, 2, 1}, []bool{true, false, true, true, false}) &&
			!conf.ForbiddenVertexSizePair([]int{a, b, c}, []int{d, e}, 2, 2, 7) {
			sugar.Infof("7cut-15 (22021-134) (%d, %d, %d, %d, %d) is dangerous in %s", a, b, c, d, e, filename)
		}
	}

	// 7cut-16
	if !conf.CheckDegree7() {
		sugar.Infof("7cut-16 (degree 7 in 7-cycle) is dangerous in %s", filename)
	}
}
