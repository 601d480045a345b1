package fermi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/spectators/math/rand"
	"github.com/phil-mansfield/spectators/pdg"
)

func lead(t *testing.T, seed uint64) *Model {
	m, err := New(208, 82, rand.NewGenerator(rand.PCG, seed))
	require.NoError(t, err)
	return m
}

func TestTablesMonotonic(t *testing.T) {
	m := lead(t, 1)

	for _, code := range []int{pdg.Proton, pdg.Neutron} {
		tab := m.Table(code)
		assert.InDelta(t, 0.0, tab[0], 1e-12, pdg.Name(code))
		assert.InDelta(t, 1.0, tab[Bins-1], 1e-12, pdg.Name(code))

		for i := 1; i < Bins; i++ {
			if tab[i] < tab[i-1] {
				t.Errorf("%s) table decreases at %d: %g -> %g",
					pdg.Name(code), i, tab[i-1], tab[i])
			}
			if tab[i] < 0 || tab[i] > 1 {
				t.Errorf("%s) table[%d] = %g", pdg.Name(code), i, tab[i])
			}
		}
	}
}

func TestDensityNormalized(t *testing.T) {
	// Integrating far past the table's range recovers the full probability.
	alpha := Alpha(208)
	sum, dp := 0.0, 1e-4
	for p := dp / 2; p < 3; p += dp {
		sum += Density(p, alpha, 1) * dp
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

func TestSymmetricNucleus(t *testing.T) {
	m, err := New(12, 6, rand.NewGenerator(rand.PCG, 1))
	require.NoError(t, err)
	assert.Equal(t, m.Table(pdg.Proton), m.Table(pdg.Neutron))
	assert.InDelta(t, 0.18, Alpha(12), 1e-15)
}

func TestAsymmetricNuclei(t *testing.T) {
	// The narrow species' table is flat long before PMax.
	table := []struct{ a, z float64 }{
		{208, 1}, {208, 5}, {208, 10}, {208, 207}, {4, 0.5},
	}

	for i, test := range table {
		m, err := New(test.a, test.z, rand.NewGenerator(rand.PCG, 1))
		if err != nil {
			t.Errorf("%d) New(%g, %g) failed: %s", i+1, test.a, test.z, err)
			continue
		}
		for _, code := range []int{pdg.Proton, pdg.Neutron} {
			for j := 0; j < 1000; j++ {
				p := m.SampleMomentum(code)
				if p < 0 || p > PMax || math.IsNaN(p) {
					t.Fatalf("%d) %s momentum %g outside [0, %g]",
						i+1, pdg.Name(code), p, PMax)
				}
			}
		}
	}

	prot := lead(t, 1).Table(pdg.Proton)
	m, err := New(208, 1, nil)
	require.NoError(t, err)
	narrow := m.Table(pdg.Proton)
	assert.Equal(t, 1.0, narrow[Bins-2])
	assert.Less(t, prot[Bins-2], 1.0)
}

func TestUntabulatable(t *testing.T) {
	_, err := New(208, 1e-9, nil)
	assert.Error(t, err)
	_, err = New(208, 208-1e-9, nil)
	assert.Error(t, err)
}

func TestNeutronsFasterInLead(t *testing.T) {
	m := lead(t, 1)
	p, n := m.Table(pdg.Proton), m.Table(pdg.Neutron)
	// A wider neutron distribution accumulates probability more slowly.
	assert.True(t, n[40] < p[40], "neutron %g, proton %g", n[40], p[40])
}

func TestSampleDeviation(t *testing.T) {
	m := lead(t, 7)

	draws := 20000
	var sum [3]float64
	sumP := 0.0
	for i := 0; i < draws; i++ {
		dp := m.SampleDeviation(pdg.Neutron)
		p := dp.Norm()
		require.True(t, p >= 0 && p <= PMax+1e-12, "|dp| = %g", p)
		for k := 0; k < 3; k++ {
			sum[k] += dp[k]
		}
		sumP += p
	}

	// Isotropic: no preferred direction.
	for k := 0; k < 3; k++ {
		assert.InDelta(t, 0.0, sum[k]/float64(draws), 0.005)
	}

	// The mean magnitude sits between the two Gaussians' means.
	meanP := sumP / float64(draws)
	lo := Sigma1 * math.Sqrt(8/math.Pi)
	hi := Sigma2 * math.Sqrt(8/math.Pi) * math.Cbrt(2*126.0/208)
	assert.True(t, meanP > lo && meanP < hi, "mean |p| = %g", meanP)
}

func TestSampleReproducible(t *testing.T) {
	m1, m2 := lead(t, 42), lead(t, 42)
	for i := 0; i < 50; i++ {
		require.Equal(t, m1.SampleDeviation(pdg.Proton), m2.SampleDeviation(pdg.Proton))
	}
}

func TestBadInput(t *testing.T) {
	_, err := New(0, 0, nil)
	assert.Error(t, err)
	_, err = New(12, 13, nil)
	assert.Error(t, err)
	_, err = New(12, 0, nil)
	assert.Error(t, err)
	_, err = New(12, 12, nil)
	assert.Error(t, err)

	m := lead(t, 1)
	assert.Panics(t, func() { m.Table(211) })
	assert.Panics(t, func() { m.SampleDeviation(11) })
}
