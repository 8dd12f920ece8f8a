package coset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wythoff/coset"
)

// apply follows a word through the action table starting at c.
func apply(t *testing.T, tab *coset.Table, c int, w []int) int {
	t.Helper()
	for _, g := range w {
		next, err := tab.Act(c, g)
		require.NoError(t, err)
		c = next
	}

	return c
}

// TestNewTable_Validation covers the fail-fast input checks.
func TestNewTable_Validation(t *testing.T) {
	_, err := coset.NewTable(0, nil, nil)
	assert.ErrorIs(t, err, coset.ErrNoGenerators)

	_, err = coset.NewTable(3, nil, nil, coset.WithPairedInverses())
	assert.ErrorIs(t, err, coset.ErrOddPairing)

	_, err = coset.NewTable(2, [][]int{{0, 2}}, nil)
	assert.ErrorIs(t, err, coset.ErrGeneratorRange)

	_, err = coset.NewTable(2, nil, [][]int{{-1}})
	assert.ErrorIs(t, err, coset.ErrGeneratorRange)

	_, err = coset.NewTable(2, [][]int{{}}, nil)
	assert.ErrorIs(t, err, coset.ErrEmptyWord)

	_, err = coset.NewTable(2, nil, nil, coset.WithMaxCosets(0))
	assert.ErrorIs(t, err, coset.ErrBadOption)
}

// TestRun_SymmetricGroupS3 enumerates S3 = <a,b | a²=b²=(ab)³=1> over
// the trivial subgroup: six cosets, one per group element.
func TestRun_SymmetricGroupS3(t *testing.T) {
	tab, err := coset.NewTable(2, [][]int{{0, 1, 0, 1, 0, 1}}, nil)
	require.NoError(t, err)
	require.NoError(t, tab.Run())

	assert.Equal(t, 6, tab.Len())

	// Every generator column must be an involutive permutation.
	for g := 0; g < 2; g++ {
		seen := make(map[int]bool, 6)
		for c := 0; c < 6; c++ {
			d, err := tab.Act(c, g)
			require.NoError(t, err)
			back, err := tab.Act(d, g)
			require.NoError(t, err)
			assert.Equal(t, c, back, "generator %d must be an involution", g)
			seen[d] = true
		}
		assert.Len(t, seen, 6, "generator %d column must be a permutation", g)
	}
}

// TestRun_ParabolicSubgroup checks the subgroup index: <a> inside S3 has
// index 3.
func TestRun_ParabolicSubgroup(t *testing.T) {
	tab, err := coset.NewTable(2, [][]int{{0, 1, 0, 1, 0, 1}}, [][]int{{0}})
	require.NoError(t, err)
	require.NoError(t, tab.Run())
	assert.Equal(t, 3, tab.Len())

	// Coset 0 is fixed by the subgroup generator.
	img, err := tab.Act(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, img)
}

// TestRun_HyperoctahedralOrder enumerates the full (4,2,3) reflection
// group over the trivial subgroup: the cube symmetry group has order 48.
func TestRun_HyperoctahedralOrder(t *testing.T) {
	rels := [][]int{
		{0, 1, 0, 1, 0, 1, 0, 1}, // (ρ0ρ1)⁴
		{0, 2, 0, 2},             // (ρ0ρ2)²
		{1, 2, 1, 2, 1, 2},       // (ρ1ρ2)³
	}
	tab, err := coset.NewTable(3, rels, nil)
	require.NoError(t, err)
	require.NoError(t, tab.Run())
	assert.Equal(t, 48, tab.Len())
}

// TestRun_PairedCyclic enumerates C5 = <r | r⁵=1> in paired-inverse
// mode and checks that the odd column acts as the inverse.
func TestRun_PairedCyclic(t *testing.T) {
	rels := [][]int{
		{0, 0, 0, 0, 0}, // r⁵
		{0, 1},          // r·r⁻¹
	}
	tab, err := coset.NewTable(2, rels, nil, coset.WithPairedInverses())
	require.NoError(t, err)
	require.NoError(t, tab.Run())
	assert.Equal(t, 5, tab.Len())

	for c := 0; c < 5; c++ {
		fwd, err := tab.Act(c, 0)
		require.NoError(t, err)
		back, err := tab.Act(fwd, 1)
		require.NoError(t, err)
		assert.Equal(t, c, back, "r⁻¹ must undo r at coset %d", c)
	}
}

// TestRun_SnubCubeGroup enumerates the rotation group of the snub cube,
// <r,s | r⁴=s³=(rs)²=1>, which has order 24.
func TestRun_SnubCubeGroup(t *testing.T) {
	rels := [][]int{
		{0, 0, 0, 0},
		{2, 2, 2},
		{0, 2, 0, 2},
		{0, 1},
		{2, 3},
	}
	tab, err := coset.NewTable(4, rels, nil, coset.WithPairedInverses())
	require.NoError(t, err)
	require.NoError(t, tab.Run())
	assert.Equal(t, 24, tab.Len())
}

// TestWords_ReachTheirCosets verifies that Words()[c], applied through
// the action table from coset 0, lands on coset c, and that words are
// unique and start with the empty word.
func TestWords_ReachTheirCosets(t *testing.T) {
	rels := [][]int{
		{0, 1, 0, 1, 0, 1, 0, 1},
		{0, 2, 0, 2},
		{1, 2, 1, 2, 1, 2},
	}
	tab, err := coset.NewTable(3, rels, [][]int{{1}, {2}})
	require.NoError(t, err)
	require.NoError(t, tab.Run())

	words, err := tab.Words()
	require.NoError(t, err)
	require.Len(t, words, tab.Len())
	assert.Empty(t, words[0], "coset 0 must carry the empty word")

	for c, w := range words {
		require.NotNil(t, w, "every coset needs a word")
		assert.Equal(t, c, apply(t, tab, 0, w), "word %v must reach coset %d", w, c)
	}
}

// TestWords_PairedAlphabet checks that paired-mode words avoid the
// formal-inverse letters.
func TestWords_PairedAlphabet(t *testing.T) {
	rels := [][]int{
		{0, 0, 0, 0},
		{2, 2, 2},
		{0, 2, 0, 2},
		{0, 1},
		{2, 3},
	}
	tab, err := coset.NewTable(4, rels, nil, coset.WithPairedInverses())
	require.NoError(t, err)
	require.NoError(t, tab.Run())

	words, err := tab.Words()
	require.NoError(t, err)
	for c, w := range words {
		require.NotNil(t, w, "coset %d needs a word", c)
		for _, g := range w {
			assert.Equal(t, 0, g%2, "word %v for coset %d must use direct generators only", w, c)
		}
		assert.Equal(t, c, apply(t, tab, 0, w))
	}
}

// TestRun_InfiniteGroupHitsCap verifies that an infinite presentation
// terminates through the growth cap.
func TestRun_InfiniteGroupHitsCap(t *testing.T) {
	// Z = <r | > in paired mode: only the formal inverse relation.
	tab, err := coset.NewTable(2, [][]int{{0, 1}}, nil,
		coset.WithPairedInverses(), coset.WithMaxCosets(128))
	require.NoError(t, err)
	assert.ErrorIs(t, tab.Run(), coset.ErrTableFull)
}

// TestResultsBeforeRun ensures accessors fail before enumeration.
func TestResultsBeforeRun(t *testing.T) {
	tab, err := coset.NewTable(2, [][]int{{0, 1, 0, 1}}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, tab.Len())
	_, err = tab.Act(0, 0)
	assert.ErrorIs(t, err, coset.ErrNotRun)
	_, err = tab.Words()
	assert.ErrorIs(t, err, coset.ErrNotRun)
}

// TestRun_Idempotent checks that rerunning a closed table is a no-op.
func TestRun_Idempotent(t *testing.T) {
	tab, err := coset.NewTable(2, [][]int{{0, 1, 0, 1, 0, 1}}, nil)
	require.NoError(t, err)
	require.NoError(t, tab.Run())
	n := tab.Len()
	require.NoError(t, tab.Run())
	assert.Equal(t, n, tab.Len())
}
