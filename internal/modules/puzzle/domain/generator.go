package domain

// Shuffler permutes n elements in place. *rand.Rand from math/rand/v2
// satisfies it with a Fisher-Yates shuffle.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// maxRerolls bounds how often the right side is reshuffled while it mirrors
// the left side before falling back to a rotation.
const maxRerolls = 8

type Generator struct {
	rng Shuffler
}

func NewGenerator(rng Shuffler) *Generator {
	return &Generator{rng: rng}
}

// Generate draws EndpointCount(levelNumber) distinct identities for the left
// side and an independent permutation of the same identities for the right
// side. The right order never equals the left order.
func (g *Generator) Generate(levelNumber int) Level {
	if levelNumber < FirstLevel {
		levelNumber = FirstLevel
	}
	count := EndpointCount(levelNumber)

	pool := Catalog()
	g.shuffle(pool)
	left := pool[:count]

	right := make([]Identity, count)
	copy(right, left)
	g.shuffle(right)
	for attempt := 0; attempt < maxRerolls && sameOrder(left, right); attempt++ {
		g.shuffle(right)
	}
	if sameOrder(left, right) {
		right = append(right[1:], right[0])
	}

	return Level{
		Number: levelNumber,
		Left:   newEndpoints(SideLeft, left),
		Right:  newEndpoints(SideRight, right),
	}
}

func (g *Generator) shuffle(ids []Identity) {
	g.rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
}

func sameOrder(a, b []Identity) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
