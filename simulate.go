package nfa

// Simulator runs inputs against an Automaton by tracking the set of active
// states. It holds no per-run state, so one Simulator may serve concurrent
// callers.
type Simulator struct {
	a      *Automaton
	policy EpsilonPolicy
}

type simulatorOptions struct {
	policy EpsilonPolicy
}

type SimulatorOption func(*simulatorOptions)

func WithEpsilonPolicy(policy EpsilonPolicy) SimulatorOption {
	return func(o *simulatorOptions) {
		o.policy = policy
	}
}

func NewSimulator(a *Automaton, options ...SimulatorOption) *Simulator {
	opts := &simulatorOptions{policy: SinglePass}
	for _, fn := range options {
		fn(opts)
	}
	return &Simulator{a: a, policy: opts.policy}
}

func (s *Simulator) Policy() EpsilonPolicy {
	return s.policy
}

// Accepts Returns true if a accepts input under the SinglePass policy.
func Accepts(a *Automaton, input string) bool {
	return NewSimulator(a).Accepts(input)
}

// AcceptsLabels is Accepts for an already tokenized input.
func AcceptsLabels(a *Automaton, input []Label) bool {
	return NewSimulator(a).AcceptsLabels(input)
}

func (s *Simulator) Accepts(input string) bool {
	return s.Final(input).Intersects(s.a.isAccept)
}

func (s *Simulator) AcceptsLabels(input []Label) bool {
	return s.FinalLabels(input).Intersects(s.a.isAccept)
}

// Final Returns the active set left after consuming input.
func (s *Simulator) Final(input string) *StateSet {
	active := startSet(s.a, s.policy)
	next := s.a.newStateSet()
	for _, r := range input {
		if active.IsEmpty() {
			break
		}
		step(s.a, s.policy, active, Label(r), next)
		active, next = next, active
	}
	return active
}

func (s *Simulator) FinalLabels(input []Label) *StateSet {
	active := startSet(s.a, s.policy)
	next := s.a.newStateSet()
	for _, label := range input {
		if active.IsEmpty() {
			break
		}
		step(s.a, s.policy, active, label, next)
		active, next = next, active
	}
	return active
}

// Trace runs input like Accepts and reports the active set before any input
// (step 0, label Epsilon) and after every consumed symbol. The set passed to
// fn is reused by the run; clone it to keep it.
func (s *Simulator) Trace(input string, fn func(step int, label Label, active *StateSet)) bool {
	active := startSet(s.a, s.policy)
	next := s.a.newStateSet()
	fn(0, Epsilon, active)
	i := 0
	for _, r := range input {
		i++
		step(s.a, s.policy, active, Label(r), next)
		active, next = next, active
		fn(i, Label(r), active)
	}
	return active.Intersects(s.a.isAccept)
}

func startSet(a *Automaton, policy EpsilonPolicy) *StateSet {
	active := a.newStateSet()
	active.Add(0)
	if policy == Transitive {
		closeEpsilon(a, active)
	}
	return active
}

// step consumes label: next is overwritten with the states reached from
// active. Under SinglePass, active is first extended in place.
func step(a *Automaton, policy EpsilonPolicy, active *StateSet, label Label, next *StateSet) {
	if policy == SinglePass {
		extendEpsilon(a, active)
	}

	move(a, active, label, next)

	if policy == Transitive {
		closeEpsilon(a, next)
	}
}

// move overwrites next with the targets of label-transitions leaving from.
func move(a *Automaton, from *StateSet, label Label, next *StateSet) {
	next.Clear()
	for _, i := range from.indices() {
		a.forEachDest(i, label, func(dest int) {
			next.addIndex(dest)
		})
	}
}

// extendEpsilon adds the direct epsilon targets of the states currently in
// active. States added here are not expanded again in the same pass.
func extendEpsilon(a *Automaton, active *StateSet) {
	for _, i := range active.indices() {
		a.forEachDest(i, Epsilon, func(dest int) {
			active.addIndex(dest)
		})
	}
}

// closeEpsilon adds every state reachable from active through any number of
// epsilon transitions.
func closeEpsilon(a *Automaton, active *StateSet) {
	workList := active.indices()
	for len(workList) > 0 {
		i := workList[len(workList)-1]
		workList = workList[:len(workList)-1]
		a.forEachDest(i, Epsilon, func(dest int) {
			if active.addIndex(dest) {
				workList = append(workList, dest)
			}
		})
	}
}
