package nfa

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterminize(t *testing.T) {
	a := mustParse(t, "0=a>1\n0=a>2\n1=b>3\n2=b>3\n3=>0\n$3")

	r, err := Determinize(a, SinglePass, 0)
	require.NoError(t, err)
	assert.Equal(t, SinglePass, r.Policy())
	assert.Equal(t, []int{0}, r.States(0))

	s1 := r.Step(0, 'a')
	require.NotEqual(t, -1, s1)
	assert.Equal(t, []int{1, 2}, r.States(s1))
	s2 := r.Step(s1, 'b')
	require.NotEqual(t, -1, s2)
	assert.Equal(t, []int{3}, r.States(s2))
	assert.True(t, r.IsAccept(s2))

	assert.Equal(t, -1, r.Step(0, 'z'))
	assert.Equal(t, -1, r.Step(0, 'b'))
	assert.Equal(t, -1, r.Step(-1, 'a'))
	assert.Nil(t, r.States(99))

	assert.True(t, r.Run("abab"))
	assert.False(t, r.Run("aba"))
	assert.False(t, r.Run("abx"))
	assert.True(t, r.RunLabels(LabelsOf("ab")))
}

func TestDeterminizeMatchesSimulator(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 100; round++ {
		lines := randomTransitions(rng, 6, 12)
		accept := "$" + itoa(rng.Intn(6)) + "," + itoa(rng.Intn(6))
		a := mustParse(t, strings.Join(lines, "\n")+"\n"+accept)

		for _, policy := range []EpsilonPolicy{SinglePass, Transitive} {
			r, err := Determinize(a, policy, 0)
			require.NoError(t, err)
			sim := NewSimulator(a, WithEpsilonPolicy(policy))

			for _, input := range append(randomInputs(rng, 30, 8), "") {
				require.Equalf(t, sim.Accepts(input), r.Run(input),
					"round %d policy %s input %q\n%s", round, policy, input, a)
			}
		}
	}
}

func TestDeterminizeWorkLimit(t *testing.T) {
	// The classic (a|b)*a(a|b)^n language needs 2^(n+1) DFA states.
	var sb strings.Builder
	sb.WriteString("0=a>0\n0=b>0\n0=a>1\n")
	n := 8
	for i := 1; i <= n; i++ {
		sb.WriteString(itoaWide(i) + "=a>" + itoaWide(i+1) + "\n")
		sb.WriteString(itoaWide(i) + "=b>" + itoaWide(i+1) + "\n")
	}
	sb.WriteString("$" + itoaWide(n+1))
	a := mustParse(t, sb.String())

	_, err := Determinize(a, SinglePass, 16)
	assert.ErrorIs(t, err, ErrTooComplexToDeterminize)

	r, err := Determinize(a, SinglePass, 0)
	require.NoError(t, err)
	assert.Equal(t, 1<<(n+1), r.NumStates())
	assert.True(t, r.Run("a"+strings.Repeat("b", n)))
	assert.False(t, r.Run("b"+strings.Repeat("b", n)))
}

func itoaWide(i int) string {
	if i < 10 {
		return itoa(i)
	}
	return itoaWide(i/10) + itoa(i%10)
}
