package nfa

import (
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccepts(t *testing.T) {
	alternating := "0=a>1\n1=b>0\n$0"
	epsilon := "0=>1\n1=a>2\n$2"
	chain := "0=>1\n1=>2\n2=a>3\n$3"

	tests := []struct {
		name        string
		description string
		input       string
		want        bool
	}{
		{"alternating abab", alternating, "abab", true},
		{"alternating ab", alternating, "ab", true},
		{"alternating aba", alternating, "aba", false},
		{"alternating empty", alternating, "", true},
		{"alternating unknown symbol", alternating, "abxab", false},
		{"epsilon before consuming", epsilon, "a", true},
		{"epsilon empty input", epsilon, "", false},
		{"epsilon chain is one hop per symbol", chain, "a", false},
		{"nondeterministic branch", "0=a>1\n0=a>2\n2=b>3\n$3", "ab", true},
		{"empty set stays empty", "0=a>0\n0=b>1\n$0", "ca", false},
		{"empty input without accepting start", "0=a>1\n$1", "", false},
		{"unicode labels", "0=é>1\n1=ß>2\n$2", "éß", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustParse(t, tt.description)
			assert.Equalf(t, tt.want, Accepts(a, tt.input), "Accepts(%q)", tt.input)
			assert.Equalf(t, tt.want, AcceptsLabels(a, LabelsOf(tt.input)), "AcceptsLabels(%q)", tt.input)
		})
	}
}

func TestEpsilonPolicies(t *testing.T) {
	chain := mustParse(t, "0=>1\n1=>2\n2=a>3\n$3")

	single := NewSimulator(chain)
	assert.Equal(t, SinglePass, single.Policy())
	assert.False(t, single.Accepts("a"))

	transitive := NewSimulator(chain, WithEpsilonPolicy(Transitive))
	assert.Equal(t, Transitive, transitive.Policy())
	assert.True(t, transitive.Accepts("a"))

	t.Run("empty input", func(t *testing.T) {
		a := mustParse(t, "0=>1\n$1")
		assert.False(t, NewSimulator(a).Accepts(""))
		assert.True(t, NewSimulator(a, WithEpsilonPolicy(Transitive)).Accepts(""))
	})

	t.Run("trailing epsilon", func(t *testing.T) {
		a := mustParse(t, "0=a>1\n1=>2\n$2")
		assert.False(t, NewSimulator(a).Accepts("a"))
		assert.True(t, NewSimulator(a, WithEpsilonPolicy(Transitive)).Accepts("a"))
	})

	t.Run("second hop reached on a later symbol", func(t *testing.T) {
		a := mustParse(t, "0=>1\n1=>2\n1=b>1\n2=a>3\n$3")
		sim := NewSimulator(a)
		assert.False(t, sim.Accepts("a"))
		assert.True(t, sim.Accepts("ba"))
	})
}

func TestExtendEpsilon(t *testing.T) {
	a := mustParse(t, "0=>1\n1=>2\n0=>3\n3=a>4\n$4")

	active := a.newStateSet()
	active.Add(0)
	extendEpsilon(a, active)
	assert.Equal(t, []int{0, 1, 3}, active.GetArray())

	// The extension only ever adds states.
	before := active.GetArray()
	extendEpsilon(a, active)
	for _, s := range before {
		assert.True(t, active.Contains(s))
	}
	assert.Equal(t, []int{0, 1, 2, 3}, active.GetArray())

	closed := a.newStateSet()
	closed.Add(0)
	closeEpsilon(a, closed)
	assert.Equal(t, []int{0, 1, 2, 3}, closed.GetArray())
}

func TestSimulatorFinal(t *testing.T) {
	a := mustParse(t, "0=a>1\n0=a>2\n1=b>3\n2=b>3\n$3")
	sim := NewSimulator(a)

	assert.Equal(t, []int{0}, sim.Final("").GetArray())
	assert.Equal(t, []int{1, 2}, sim.Final("a").GetArray())
	assert.Equal(t, []int{3}, sim.Final("ab").GetArray())
	assert.True(t, sim.Final("abz").IsEmpty())
	assert.Equal(t, []int{3}, sim.FinalLabels(LabelsOf("ab")).GetArray())
}

func TestSimulatorTrace(t *testing.T) {
	a := mustParse(t, "0=>1\n1=a>2\n2=b>0\n$0")
	sim := NewSimulator(a)

	var lines []string
	accepted := sim.Trace("ab", func(step int, label Label, active *StateSet) {
		lines = append(lines, label.String()+" "+active.String())
	})
	assert.True(t, accepted)
	assert.Equal(t, []string{"ε {0}", "'a' {2}", "'b' {0}"}, lines)
	assert.Equal(t, sim.Accepts("ab"), accepted)
	assert.Equal(t, sim.Accepts("a"), sim.Trace("a", func(int, Label, *StateSet) {}))
}

// Transition order inside a state must not change any verdict.
func TestAcceptsOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		lines := randomTransitions(rng, 5, 10)
		accept := "$" + []string{"0", "1", "2", "3", "4"}[rng.Intn(5)]

		a := mustParse(t, strings.Join(lines, "\n")+"\n"+accept)
		rng.Shuffle(len(lines), func(i, j int) { lines[i], lines[j] = lines[j], lines[i] })
		b := mustParse(t, strings.Join(lines, "\n")+"\n"+accept)

		for _, input := range randomInputs(rng, 20, 6) {
			for _, policy := range []EpsilonPolicy{SinglePass, Transitive} {
				want := NewSimulator(a, WithEpsilonPolicy(policy)).Accepts(input)
				require.Equalf(t, want, NewSimulator(b, WithEpsilonPolicy(policy)).Accepts(input),
					"round %d input %q policy %s", round, input, policy)
				require.Equal(t, want, NewSimulator(a, WithEpsilonPolicy(policy)).Accepts(input))
			}
		}
	}
}

func TestAcceptsConcurrent(t *testing.T) {
	a := mustParse(t, "0=a>1\n1=b>0\n0=>2\n2=c>0\n$0")
	inputs := map[string]bool{"": true, "ab": true, "c": true, "abc": true, "a": false, "cb": false}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for input, want := range inputs {
				assert.Equal(t, want, Accepts(a, input), input)
			}
		}()
	}
	wg.Wait()
}

func TestParseEpsilonPolicy(t *testing.T) {
	for _, s := range []string{"", "single", "SINGLE-PASS", " singlepass "} {
		p, err := ParseEpsilonPolicy(s)
		assert.Nil(t, err, s)
		assert.Equal(t, SinglePass, p, s)
	}
	for _, s := range []string{"transitive", "Closure"} {
		p, err := ParseEpsilonPolicy(s)
		assert.Nil(t, err, s)
		assert.Equal(t, Transitive, p, s)
	}
	_, err := ParseEpsilonPolicy("sometimes")
	assert.Error(t, err)
	assert.Equal(t, "EpsilonPolicy(9)", EpsilonPolicy(9).String())
}

func randomTransitions(rng *rand.Rand, numStates, numTransitions int) []string {
	symbols := []string{"", "a", "b"}
	lines := make([]string, 0, numTransitions)
	for i := 0; i < numTransitions; i++ {
		src := rng.Intn(numStates)
		dst := rng.Intn(numStates)
		lines = append(lines, itoa(src)+"="+symbols[rng.Intn(len(symbols))]+">"+itoa(dst))
	}
	return lines
}

func randomInputs(rng *rand.Rand, n, maxLen int) []string {
	inputs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var sb strings.Builder
		for j := rng.Intn(maxLen + 1); j > 0; j-- {
			sb.WriteByte("abc"[rng.Intn(3)])
		}
		inputs = append(inputs, sb.String())
	}
	return inputs
}

func itoa(i int) string {
	return string(rune('0' + i))
}
