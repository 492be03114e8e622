package configuration

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// hiddenInterior builds a 6-ring with an interior triangle 7, 8, 9 attached
// to the ring and one more interior vertex 6 adjacent only to the triangle,
// so {7, 8, 9} is a 3-cut separating vertex 6 from the ring.
func hiddenInterior() *Configuration {
	extra := []Edge{
		{6, 7}, {6, 8}, {6, 9},
		{7, 8}, {8, 9}, {7, 9},
		{7, 0}, {7, 1},
		{8, 2}, {8, 3},
		{9, 4}, {9, 5},
	}
	return New(10, 6, ringAdj(10, 6, extra))
}

func TestCutReductionErasesHiddenInterior(t *testing.T) {
	conf := hiddenInterior()

	core, logs := observer.New(zapcore.InfoLevel)
	require.NoError(t, conf.SetContract(nil, zap.New(core)))

	var messages []string
	for _, entry := range logs.All() {
		messages = append(messages, entry.Message)
	}
	// Exactly vertex 6 is flagged, and only through the interior 3-cut.
	require.Equal(t, []string{
		"vertex 6 is erased by 6",
		"vertex 6 is erased by 7",
	}, messages)
}

func TestComponentIDEquivalence(t *testing.T) {
	conf := hiddenInterior()
	require.NoError(t, conf.SetContract(nil, zap.NewNop()))

	// Removing the triangle leaves the ring in the shared label 0 and the
	// hidden vertex in a fresh interior component.
	ids := conf.ComponentIDEquivalence([]int{7, 8, 9})
	require.Equal(t, []int{0, 0, 0, 0, 0, 0, 1, -1, -1, -1}, ids)

	// Cut vertices drag their whole contraction class into the cut.
	wheelConf := wheel(5)
	require.NoError(t, wheelConf.SetContract([]Edge{{0, 5}}, zap.NewNop()))
	ids = wheelConf.ComponentIDEquivalence([]int{0})
	require.Equal(t, []int{-1, 0, 0, 0, 0, -1}, ids)
}

func TestVertexSizeAfterContractSkipsErased(t *testing.T) {
	conf := hiddenInterior()
	require.NoError(t, conf.SetContract(nil, zap.NewNop()))

	// The side behind the 1-0 ring edge holds ring vertices 2..5 and all four
	// interior vertices, but the erased vertex 6 no longer counts.
	component := conf.ComponentBetween([]int{1, 0})
	s, tt := conf.splitRingInterior(component)
	require.Equal(t, 4, s)
	require.Equal(t, 4, tt)

	for _, cutSize := range []int{6, 7} {
		s, tt = conf.VertexSizeAfterContract(component, cutSize)
		require.Equal(t, 4, s)
		require.Equal(t, 3, tt)
	}
}

// Erasure flags shrink the surviving-vertex counts, so they can only disarm
// the vertex-size exclusion: a chain cycle excluded with the flags in place
// must also be excluded with every flag cleared.
func TestReductionFlagsOnlyWeakenVertexSizeExclusion(t *testing.T) {
	conf := hiddenInterior()
	require.NoError(t, conf.SetContract(nil, zap.NewNop()))

	flagged := append([]bool(nil), conf.reductableInside...)
	cleared := make([]bool, conf.NumVertices())

	component := conf.ComponentBetween([]int{1, 0})
	for _, cutSize := range []int{6, 7} {
		conf.reductableInside = flagged
		sF, tF := conf.VertexSizeAfterContract(component, cutSize)
		conf.reductableInside = cleared
		sC, tC := conf.VertexSizeAfterContract(component, cutSize)
		if sF > sC || tF > tC {
			t.Fatalf("flags grew the surviving counts: (%d, %d) > (%d, %d)", sF, tF, sC, tC)
		}
	}

	r := conf.RingSize()
	for _, cutSize := range []int{6, 7} {
		for a := 0; a < r; a++ {
			b := (a + 1) % r
			for k := 3; k <= 5; k++ {
				for _, rev := range []bool{false, true} {
					conf.reductableInside = flagged
					withFlags := conf.ForbiddenVertexSize([]int{a, b}, k, cutSize, rev)
					conf.reductableInside = cleared
					withoutFlags := conf.ForbiddenVertexSize([]int{a, b}, k, cutSize, rev)
					if withFlags && !withoutFlags {
						t.Errorf("erasure armed the exclusion for chain (%d, %d), k=%d, cutSize=%d, rev=%v",
							a, b, k, cutSize, rev)
					}
				}
			}
		}
	}
}
