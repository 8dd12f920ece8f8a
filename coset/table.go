package coset

import "fmt"

// undef marks an unset table entry.
const undef = -1

// Table is a Todd–Coxeter coset table for the right cosets of the
// subgroup generated by subgens inside the group presented by
// (ngens generators, rels). It is not safe for concurrent use.
type Table struct {
	ngens   int
	rels    [][]int
	subgens [][]int
	opts    Options

	tab   [][]int // tab[c][g] = coset reached from c by g, undef if unset
	p     []int   // union-find forest over cosets; live(c) ⇔ p[c] == c
	queue []int   // cosets awaiting coincidence processing
	ran   bool
}

// NewTable validates the presentation and returns an unrun table.
//
// Relator and subgroup-generator words are sequences of generator
// indices in [0, ngens). Words are copied, so callers may reuse their
// slices. Returns ErrNoGenerators, ErrOddPairing, ErrGeneratorRange,
// ErrEmptyWord or ErrBadOption.
func NewTable(ngens int, rels, subgens [][]int, opts ...Option) (*Table, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if ngens < 1 {
		return nil, ErrNoGenerators
	}
	if o.PairedInverses && ngens%2 != 0 {
		return nil, ErrOddPairing
	}

	check := func(kind string, words [][]int) ([][]int, error) {
		out := make([][]int, len(words))
		for i, w := range words {
			if len(w) == 0 {
				return nil, fmt.Errorf("%s %d: %w", kind, i, ErrEmptyWord)
			}
			cp := make([]int, len(w))
			for k, g := range w {
				if g < 0 || g >= ngens {
					return nil, fmt.Errorf("%s %d letter %d: %w", kind, i, g, ErrGeneratorRange)
				}
				cp[k] = g
			}
			out[i] = cp
		}

		return out, nil
	}

	r, err := check("relator", rels)
	if err != nil {
		return nil, err
	}
	s, err := check("subgroup generator", subgens)
	if err != nil {
		return nil, err
	}

	return &Table{ngens: ngens, rels: r, subgens: s, opts: o}, nil
}

// inv returns the inverse generator of x under the table's convention.
func (t *Table) inv(x int) int {
	if !t.opts.PairedInverses {
		return x
	}
	if x%2 == 0 {
		return x + 1
	}

	return x - 1
}

// live reports whether coset c is its own union-find representative.
func (t *Table) live(c int) bool { return t.p[c] == c }

// define appends a fresh coset as the image of α under x.
func (t *Table) define(alpha, x int) error {
	n := len(t.tab)
	if n >= t.opts.MaxCosets {
		return ErrTableFull
	}
	row := make([]int, t.ngens)
	for i := range row {
		row[i] = undef
	}
	t.tab = append(t.tab, row)
	t.p = append(t.p, n)
	t.tab[alpha][x] = n
	t.tab[n][t.inv(x)] = alpha

	return nil
}

// rep finds the union-find representative of k with path compression.
func (t *Table) rep(k int) int {
	l := k
	for t.p[l] != l {
		l = t.p[l]
	}
	for k != l {
		k, t.p[k] = t.p[k], l
	}

	return l
}

// merge unites the classes of k and l, keeping the smaller index live,
// and queues the dead coset for coincidence processing.
func (t *Table) merge(k, l int) {
	k, l = t.rep(k), t.rep(l)
	if k == l {
		return
	}
	if k > l {
		k, l = l, k
	}
	t.p[l] = k
	t.queue = append(t.queue, l)
}

// coincidence records that cosets alpha and beta are equal and rewires
// every table entry of the dead classes onto their representatives,
// cascading through any further coincidences this uncovers.
func (t *Table) coincidence(alpha, beta int) {
	t.merge(alpha, beta)
	for len(t.queue) > 0 {
		gamma := t.queue[0]
		t.queue = t.queue[1:]
		for x := 0; x < t.ngens; x++ {
			delta := t.tab[gamma][x]
			if delta == undef {
				continue
			}
			// Detach the backreference before rewiring.
			t.tab[delta][t.inv(x)] = undef
			mu, nu := t.rep(gamma), t.rep(delta)
			switch {
			case t.tab[mu][x] != undef:
				t.merge(nu, t.tab[mu][x])
			case t.tab[nu][t.inv(x)] != undef:
				t.merge(mu, t.tab[nu][t.inv(x)])
			default:
				t.tab[mu][x] = nu
				t.tab[nu][t.inv(x)] = mu
			}
		}
	}
}

// scanAndFill scans word w cyclically at coset alpha, defining cosets as
// needed, recording the final deduction or coincidence.
func (t *Table) scanAndFill(alpha int, w []int) error {
	f, i := alpha, 0
	b, j := alpha, len(w)-1
	for {
		// Scan forward as far as the table allows.
		for i <= j && t.tab[f][w[i]] != undef {
			f = t.tab[f][w[i]]
			i++
		}
		if i > j {
			if f != b {
				t.coincidence(f, b)
			}

			return nil
		}
		// Scan backward toward the forward front.
		for j >= i && t.tab[b][t.inv(w[j])] != undef {
			b = t.tab[b][t.inv(w[j])]
			j--
		}
		switch {
		case j < i:
			// The two scans overshot each other: f and b coincide.
			t.coincidence(f, b)

			return nil
		case j == i:
			// Deduction closes the scan.
			t.tab[f][w[i]] = b
			t.tab[b][t.inv(w[i])] = f

			return nil
		default:
			if err := t.define(f, w[i]); err != nil {
				return err
			}
		}
	}
}

// Run executes the enumeration to completion and compresses the table.
// Idempotent: a second call on a closed table is a no-op.
// Returns ErrTableFull when the MaxCosets cap is exceeded, which for a
// valid finite presentation means the cap was too small and for an
// ill-posed one is the only way the procedure can stop.
func (t *Table) Run() error {
	if t.ran {
		return nil
	}

	// Coset 0 is the subgroup itself.
	row := make([]int, t.ngens)
	for i := range row {
		row[i] = undef
	}
	t.tab = [][]int{row}
	t.p = []int{0}

	for _, w := range t.subgens {
		if err := t.scanAndFill(0, w); err != nil {
			return err
		}
	}
	for alpha := 0; alpha < len(t.tab); alpha++ {
		if !t.live(alpha) {
			continue
		}
		for _, rel := range t.rels {
			if err := t.scanAndFill(alpha, rel); err != nil {
				return err
			}
			if !t.live(alpha) {
				break
			}
		}
		if !t.live(alpha) {
			continue
		}
		for x := 0; x < t.ngens; x++ {
			if t.tab[alpha][x] == undef {
				if err := t.define(alpha, x); err != nil {
					return err
				}
			}
		}
	}

	t.compress()
	t.ran = true

	return nil
}

// compress renumbers live cosets consecutively in definition order and
// rewrites every entry through its representative.
func (t *Table) compress() {
	idx := make([]int, len(t.tab))
	next := 0
	for c := range t.tab {
		if t.live(c) {
			idx[c] = next
			next++
		} else {
			idx[c] = undef
		}
	}

	packed := make([][]int, next)
	for c := range t.tab {
		if !t.live(c) {
			continue
		}
		row := make([]int, t.ngens)
		for x := 0; x < t.ngens; x++ {
			if d := t.tab[c][x]; d != undef {
				row[x] = idx[t.rep(d)]
			} else {
				row[x] = undef
			}
		}
		packed[idx[c]] = row
	}
	t.tab = packed
	t.p = make([]int, next)
	for i := range t.p {
		t.p[i] = i
	}
}

// Len returns the number of cosets of the closed table (the subgroup
// index), or 0 before Run.
func (t *Table) Len() int {
	if !t.ran {
		return 0
	}

	return len(t.tab)
}

// Act returns the coset reached from c by generator g.
// Valid only after Run; returns ErrNotRun, ErrCosetRange or
// ErrGeneratorRange.
func (t *Table) Act(c, g int) (int, error) {
	if !t.ran {
		return 0, ErrNotRun
	}
	if c < 0 || c >= len(t.tab) {
		return 0, fmt.Errorf("coset %d: %w", c, ErrCosetRange)
	}
	if g < 0 || g >= t.ngens {
		return 0, fmt.Errorf("generator %d: %w", g, ErrGeneratorRange)
	}

	return t.tab[c][g], nil
}

// Words returns one canonical representative word per coset, indexed by
// coset number: Words()[0] is empty, and each word is the first reached
// by breadth-first search from coset 0 over generator columns in index
// order. In paired-inverse mode only the direct (even) generators are
// walked, so every word stays inside the rotation alphabet; odd columns
// remain available through Act. Returns ErrNotRun before Run.
func (t *Table) Words() ([][]int, error) {
	if !t.ran {
		return nil, ErrNotRun
	}

	words := make([][]int, len(t.tab))
	words[0] = []int{}
	step := 1
	if t.opts.PairedInverses {
		step = 2
	}
	queue := []int{0}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for x := 0; x < t.ngens; x += step {
			d := t.tab[c][x]
			if d == undef || words[d] != nil {
				continue
			}
			w := make([]int, len(words[c])+1)
			copy(w, words[c])
			w[len(w)-1] = x
			words[d] = w
			queue = append(queue, d)
		}
	}

	return words, nil
}
