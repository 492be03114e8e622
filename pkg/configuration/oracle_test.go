package configuration

import (
	"testing"

	"go.uber.org/zap"
)

func TestIsForbiddenCut(t *testing.T) {
	testCases := []struct {
		cutSize       int
		componentSize int
		want          bool
	}{
		{3, 1, true},
		{4, 0, false},
		{4, 1, true},
		{5, 1, false},
		{5, 2, true},
		{6, 3, false},
		{6, 4, true},
		{7, 4, false},
		{7, 5, true},
		{8, 1000, false},
	}

	for _, tt := range testCases {
		if got := IsForbiddenCut(tt.cutSize, tt.componentSize); got != tt.want {
			t.Errorf("IsForbiddenCut(%d, %d): got %v, want %v",
				tt.cutSize, tt.componentSize, got, tt.want)
		}
	}
}

func TestIsForbiddenCutMonotoneInComponentSize(t *testing.T) {
	for cutSize := 3; cutSize <= 7; cutSize++ {
		forbidden := false
		for size := 0; size <= 10; size++ {
			got := IsForbiddenCut(cutSize, size)
			if forbidden && !got {
				t.Errorf("IsForbiddenCut(%d, %d) dropped back to false", cutSize, size)
			}
			forbidden = got
		}
	}
}

func TestForbiddenVertexSize(t *testing.T) {
	conf := wheel(5)
	if err := conf.SetContract(nil, zap.NewNop()); err != nil {
		t.Fatal(err)
	}

	// Closing the 0-1 chain on the empty side isolates nothing.
	if conf.ForbiddenVertexSize([]int{0, 1}, 3, 6, false) {
		t.Error("the empty side of a ring edge should never be forbidden")
	}
	// The reversed side holds the remaining three ring vertices and the hub,
	// too much for a 4-cycle.
	if !conf.ForbiddenVertexSize([]int{0, 1}, 3, 6, true) {
		t.Error("a 4-cycle around the whole wheel interior should be forbidden")
	}
}

func TestForbiddenVertexSizePair(t *testing.T) {
	conf := wheel(5)
	if err := conf.SetContract(nil, zap.NewNop()); err != nil {
		t.Fatal(err)
	}

	// Chains 0-1 and 2-3 with unit connectors make a 4-cycle enclosing the
	// hub side; stretching both connectors to 2 gives a 6-cycle, which may
	// isolate up to two survivors.
	if !conf.ForbiddenVertexSizePair([]int{0, 1}, []int{2, 3}, 1, 1, 6) {
		t.Error("a 4-cycle enclosing the hub side should be forbidden")
	}
	if conf.ForbiddenVertexSizePair([]int{0, 1}, []int{2, 3}, 2, 2, 6) {
		t.Error("the 6-cycle variant isolates few enough vertices to pass")
	}
}

func TestCheckDegree7(t *testing.T) {
	// A degree-5 hub is not a degree-7 vertex, so the configuration is
	// cleared.
	conf := wheel(5)
	if err := conf.SetContract(nil, zap.NewNop()); err != nil {
		t.Fatal(err)
	}
	if !conf.CheckDegree7() {
		t.Error("a wheel with a degree-5 hub should pass CheckDegree7")
	}

	// A single surviving interior vertex of degree exactly 7 is the case the
	// driver has to report.
	conf = wheel(7)
	if err := conf.SetContract(nil, zap.NewNop()); err != nil {
		t.Fatal(err)
	}
	if conf.CheckDegree7() {
		t.Error("a wheel with a degree-7 hub should fail CheckDegree7")
	}
}
