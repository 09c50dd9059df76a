package gen

// Simplex is a seeded 2D simplex noise source producing values in [-1, 1].
type Simplex struct {
	perm [512]int
}

// grad2 are the gradient directions used for 2D simplex noise.
var grad2 = [12][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {1, 0}, {-1, 0},
	{0, 1}, {0, -1}, {0, 1}, {0, -1},
}

const (
	skew2   = 0.36602540378443864676 // (sqrt(3) - 1) / 2
	unskew2 = 0.21132486540518711775 // (3 - sqrt(3)) / 6
)

// NewSimplex creates a noise source with a permutation table shuffled from seed.
func NewSimplex(seed int64) *Simplex {
	n := &Simplex{}

	var p [256]int
	for i := range p {
		p[i] = i
	}
	rng := chunkRNG{state: seed}
	for i := 255; i > 0; i-- {
		j := rng.nextN(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	for i := range n.perm {
		n.perm[i] = p[i&255]
	}
	return n
}

// At returns the noise value at (x, z).
func (n *Simplex) At(x, z float64) float64 {
	s := (x + z) * skew2
	i := fastFloor(x + s)
	j := fastFloor(z + s)

	t := float64(i+j) * unskew2
	x0 := x - (float64(i) - t)
	z0 := z - (float64(j) - t)

	i1, j1 := 0, 1
	if x0 > z0 {
		i1, j1 = 1, 0
	}

	corners := [3]struct {
		dx, dz float64
		di, dj int
	}{
		{x0, z0, 0, 0},
		{x0 - float64(i1) + unskew2, z0 - float64(j1) + unskew2, i1, j1},
		{x0 - 1 + 2*unskew2, z0 - 1 + 2*unskew2, 1, 1},
	}

	ii, jj := i&255, j&255
	var sum float64
	for _, c := range corners {
		f := 0.5 - c.dx*c.dx - c.dz*c.dz
		if f < 0 {
			continue
		}
		g := grad2[n.perm[ii+c.di+n.perm[jj+c.dj]]%12]
		f *= f
		sum += f * f * (g[0]*c.dx + g[1]*c.dz)
	}
	return 70 * sum
}

// Octaves layers several octaves of noise, halving the amplitude by persistence and
// doubling the frequency each step. The result is normalised to roughly [-1, 1].
func (n *Simplex) Octaves(x, z float64, octaves int, persistence float64) float64 {
	var total, norm float64
	freq, amp := 1.0, 1.0
	for range octaves {
		total += n.At(x*freq, z*freq) * amp
		norm += amp
		amp *= persistence
		freq *= 2
	}
	return total / norm
}

func fastFloor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}
