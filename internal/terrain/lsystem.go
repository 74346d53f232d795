package terrain

import (
	"math/rand"
	"strings"
)

// LSystem rewrites an axiom with stochastic production rules. Rule 0 is the
// plain continuation; the remaining rules are branch productions picked with
// probability branch.
type LSystem struct {
	Axiom string
	Rules []string
}

// riverSystem grows forward segments that occasionally fork left or right.
var riverSystem = LSystem{
	Axiom: "FF[-F][+F]",
	Rules: []string{"FF", "F[-L]", "F[+R]"},
}

// Expand applies the rules iterations times. Each F survives unchanged with
// probability keep; otherwise it is replaced by a rule. L and R markers
// left by branch rules grow into FF after every pass.
func (l LSystem) Expand(rng *rand.Rand, iterations int, keep, branch float64) string {
	s := l.Axiom
	for i := 0; i < iterations; i++ {
		s = l.rewrite(rng, s, keep, branch)
		s = strings.NewReplacer("L", "FF", "R", "FF").Replace(s)
	}
	return s
}

func (l LSystem) rewrite(rng *rand.Rand, s string, keep, branch float64) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, ch := range s {
		if ch != 'F' {
			b.WriteRune(ch)
			continue
		}
		p := rng.Float64()
		pick := rng.Float64()
		if p < keep {
			b.WriteRune(ch)
			continue
		}
		rule := 0
		if pick <= branch && len(l.Rules) > 1 {
			rule = 1 + rng.Intn(len(l.Rules)-1)
		}
		b.WriteString(l.Rules[rule])
	}
	return b.String()
}
