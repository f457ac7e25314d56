package bmssp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arrakis-graph/bmssp/graph"
)

func TestMapDefaultsToInf(t *testing.T) {
	m := NewMap()
	require.Equal(t, graph.Inf, m.Get(0))
}

func TestMapRelaxIsStrict(t *testing.T) {
	r := require.New(t)
	m := NewMap()

	r.True(m.Relax(1, 5))
	r.False(m.Relax(1, 5), "relaxing to an equal distance must not report a change")
	r.True(m.Relax(1, 3))
	r.False(m.Relax(1, 4), "relaxing to a larger distance must be rejected")
	r.Equal(graph.Weight(3), m.Get(1))
}

func TestMapRelaxLEAcceptsTies(t *testing.T) {
	r := require.New(t)
	m := NewMap()
	m.Relax(1, 5)

	r.True(m.relaxLE(1, 5), "relaxLE must accept a tie, unlike Relax")
	r.False(m.relaxLE(1, 6))
	r.Equal(graph.Weight(5), m.Get(1))
}
