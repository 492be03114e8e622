package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEdgeIDs(t *testing.T) {
	ids, err := parseEdgeIDs("3, 1,2")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, ids)

	ids, err = parseEdgeIDs("2,0,2")
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, ids, "a repeated edge id should collapse to one contraction")

	ids, err = parseEdgeIDs("")
	require.NoError(t, err)
	require.Empty(t, ids)

	_, err = parseEdgeIDs("1,x")
	require.Error(t, err)
}
