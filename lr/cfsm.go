package lr

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/lr0/lr/iteratable"
	"github.com/npillmayer/schuko/gconf"
)

// Errors reported by CFSM construction.
var (
	ErrNoGrammar               = errors.New("no grammar to construct a CFSM for")
	ErrEmptyGrammar            = errors.New("grammar has no rules")
	ErrTooManyStates           = errors.New("CFSM exceeds maximum number of states")
	ErrNonFunctionalTransition = errors.New("CFSM transition is not unique")
)

// === CFSM States and Transitions ===========================================

// CFSMState is a state within the CFSM for a grammar.
type CFSMState struct {
	ID     uint            // serial ID of this state
	kernel *iteratable.Set // items the state has been created from
	items  *iteratable.Set // configuration items within this state
	accept bool            // does this state contain a completed start rule?
}

// Transition is an edge between 2 states of a CFSM, labeled with a grammar symbol.
type Transition struct {
	From  uint
	To    uint
	Label *Symbol
}

func (t Transition) String() string {
	return fmt.Sprintf("%d --%s--> %d", t.From, t.Label, t.To)
}

// Create a state from a kernel and its closure
func state(id uint, kernel, iset *iteratable.Set) *CFSMState {
	s := &CFSMState{ID: id, kernel: kernel, items: iset}
	if s.items == nil {
		s.items = newItemSet()
	}
	if s.kernel == nil {
		s.kernel = newItemSet()
	}
	return s
}

// Items returns the items of a state, in the order they have been discovered.
func (s *CFSMState) Items() []Item {
	return Items(s.items)
}

// Kernel returns the kernel items of a state. For the start state these are
// the start items it has been seeded with, for every other state the items
// advanced over the label of its incoming transitions.
func (s *CFSMState) Kernel() []Item {
	return Items(s.kernel)
}

// IsAccepting is a predicate: does s contain a completed start rule?
func (s *CFSMState) IsAccepting() bool {
	return s.accept
}

// ReduceItems returns the items of a state with the dot at the end.
func (s *CFSMState) ReduceItems() []Item {
	var r []Item
	for _, i := range s.Items() {
		if i.IsReduceItem() {
			r = append(r, i)
		}
	}
	return r
}

// Contains is a predicate: is item i contained in state s?
func (s *CFSMState) Contains(i Item) bool {
	return s.items.Contains(i)
}

// Size returns the number of items in s.
func (s *CFSMState) Size() int {
	return s.items.Size()
}

// Dump is a debugging helper
func (s *CFSMState) Dump() {
	tracer().Debugf("--- state %03d -----------", s.ID)
	Dump(s.items)
	tracer().Debugf("-------------------------")
}

func (s *CFSMState) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, s.items.Size())
}

// symbolsAfterDot collects the distinct symbols after the dot of all items,
// in order of their first appearance.
func (s *CFSMState) symbolsAfterDot() *linkedhashset.Set {
	syms := linkedhashset.New()
	for _, i := range s.Items() {
		if A := i.PeekSymbol(); A != nil {
			syms.Add(A)
		}
	}
	return syms
}

func (s *CFSMState) containsCompletedRule(seeds []*Rule) bool {
	for _, i := range s.ReduceItems() {
		for _, r := range seeds {
			if i.rule == r {
				return true
			}
		}
	}
	return false
}

// We need this for the set of states. It sorts states by serial ID.
func stateComparator(s1, s2 interface{}) int {
	c1 := s1.(*CFSMState)
	c2 := s2.(*CFSMState)
	return utils.IntComparator(int(c1.ID), int(c2.ID))
}

// === The CFSM ==============================================================

// CFSM is the characteristic finite state machine for a LR grammar, i.e. the
// LR(0) state diagram. It will be constructed by a CFSMBuilder and is
// read-only thereafter.
type CFSM struct {
	g      *Grammar                // this CFSM is for Grammar g
	states *arraylist.List         // all the states, index = state ID
	edges  *arraylist.List         // all the transitions, in order of discovery
	byHash map[string][]*CFSMState // item set fingerprint => states
	table  *transitionTable        // transition function
	s0     *CFSMState              // start state
}

// create an empty (initial) CFSM automata.
func emptyCFSM(g *Grammar) *CFSM {
	return &CFSM{
		g:      g,
		states: arraylist.New(),
		edges:  arraylist.New(),
		byHash: make(map[string][]*CFSMState),
	}
}

// Grammar returns the grammar c has been built for.
func (c *CFSM) Grammar() *Grammar {
	return c.g
}

// StartState returns the start state of c.
func (c *CFSM) StartState() *CFSMState {
	return c.s0
}

// StateCount returns the number of states of c.
func (c *CFSM) StateCount() int {
	return c.states.Size()
}

// State returns the state with a given ID, or nil.
func (c *CFSM) State(id uint) *CFSMState {
	x, ok := c.states.Get(int(id))
	if !ok {
		return nil
	}
	return x.(*CFSMState)
}

// States returns all states, ordered by ID.
func (c *CFSM) States() []*CFSMState {
	states := make([]*CFSMState, 0, c.states.Size())
	it := c.states.Iterator()
	for it.Next() {
		states = append(states, it.Value().(*CFSMState))
	}
	return states
}

// Transitions returns all transitions, in the order they have been discovered.
func (c *CFSM) Transitions() []Transition {
	edges := make([]Transition, 0, c.edges.Size())
	it := c.edges.Iterator()
	for it.Next() {
		edges = append(edges, it.Value().(Transition))
	}
	return edges
}

// TransitionsFrom returns all transitions leaving state id.
func (c *CFSM) TransitionsFrom(id uint) []Transition {
	r := make([]Transition, 0, 2)
	for _, e := range c.Transitions() {
		if e.From == id {
			r = append(r, e)
		}
	}
	return r
}

// Goto returns the destination of the transition from state id on symbol A,
// if any.
func (c *CFSM) Goto(id uint, A *Symbol) (uint, bool) {
	if c.table == nil || A == nil {
		return 0, false
	}
	return c.table.lookup(id, A)
}

// AcceptingStates returns the IDs of all states flagged as accepting.
func (c *CFSM) AcceptingStates() []uint {
	var acc []uint
	for _, s := range c.States() {
		if s.accept {
			acc = append(acc, s.ID)
		}
	}
	return acc
}

// Add a state to the CFSM. The caller has to make sure that no equal
// state is present.
func (c *CFSM) addState(kernel, iset *iteratable.Set) *CFSMState {
	s := state(uint(c.states.Size()), kernel, iset)
	c.states.Add(s)
	h := fingerprint(iset)
	c.byHash[h] = append(c.byHash[h], s)
	return s
}

// Find a CFSM state by the contained item set.
func (c *CFSM) findStateByItems(iset *iteratable.Set) *CFSMState {
	for _, s := range c.byHash[fingerprint(iset)] {
		if s.items.Equals(iset) {
			return s
		}
	}
	return nil
}

func (c *CFSM) addEdge(s0, s1 *CFSMState, sym *Symbol) Transition {
	e := Transition{From: s0.ID, To: s1.ID, Label: sym}
	c.edges.Add(e)
	return e
}

// fingerprint hashes the content of an item set, independent of the order
// of items. Equal sets have equal fingerprints.
func fingerprint(iset *iteratable.Set) string {
	keys := make([]string, 0, iset.Size())
	for _, x := range iset.Values() {
		i := asItem(x)
		keys = append(keys, fmt.Sprintf("%d.%d", i.rule.Serial, i.dot))
	}
	sort.Strings(keys)
	h, err := structhash.Hash(struct{ Items []string }{keys}, 1)
	if err != nil {
		tracer().Errorf("cannot hash item set: %v", err)
		return strings.Join(keys, "|")
	}
	return h
}

// === CFSM Construction =====================================================

// BuildOption configures a CFSMBuilder.
type BuildOption func(*CFSMBuilder)

// SeedAllStartRules sets or clears option SeedAllStartRules: the start state
// is seeded with the start items of all rules for the grammar's start symbol,
// instead of the start item of the first rule only.
func SeedAllStartRules(b bool) BuildOption {
	return func(cb *CFSMBuilder) {
		cb.seedAll = b
	}
}

// MaxStates limits the number of states of a CFSM. Construction of a CFSM
// with more states fails with ErrTooManyStates. n = 0 means no limit.
func MaxStates(n int) BuildOption {
	return func(cb *CFSMBuilder) {
		if n < 0 {
			n = 0
		}
		cb.maxStates = n
	}
}

// CFSMBuilder constructs the CFSM for a (previously analysed) grammar.
// A builder may be used more than once; every call to Build constructs
// a new, independent CFSM.
type CFSMBuilder struct {
	ga        *LRAnalysis
	seedAll   bool
	maxStates int
}

// NewCFSMBuilder creates a builder for an analysed grammar.
func NewCFSMBuilder(ga *LRAnalysis, opts ...BuildOption) *CFSMBuilder {
	cb := &CFSMBuilder{ga: ga}
	for _, opt := range opts {
		opt(cb)
	}
	return cb
}

// BuildCFSM is a shortcut for analysing a grammar and building its CFSM.
func BuildCFSM(g *Grammar, opts ...BuildOption) (*CFSM, error) {
	return NewCFSMBuilder(Analysis(g), opts...).Build()
}

// Build constructs the characteristic finite state machine for the grammar.
// Either a complete CFSM is returned, or an error. Errors are ErrNoGrammar,
// ErrEmptyGrammar, ErrTooManyStates and ErrNonFunctionalTransition
// (possibly wrapped).
func (cb *CFSMBuilder) Build() (*CFSM, error) {
	if cb == nil || cb.ga == nil || cb.ga.g == nil {
		return nil, ErrNoGrammar
	}
	if cb.ga.g.Size() == 0 {
		tracer().Errorf("cannot build CFSM for empty grammar %s", cb.ga.g.Name)
		return nil, fmt.Errorf("%w: %s", ErrEmptyGrammar, cb.ga.g.Name)
	}
	cfsm, err := cb.buildCFSM()
	if err != nil {
		tracer().Errorf("CFSM construction failed: %v", err)
		checkInvariant(err)
		return nil, err
	}
	return cfsm, nil
}

// seedRules returns the rules whose start items form the kernel of the start state.
func (cb *CFSMBuilder) seedRules() []*Rule {
	G := cb.ga.g
	if cb.seedAll {
		return G.RulesFor(G.StartSymbol())
	}
	return []*Rule{G.rules[0]}
}

// startClosure returns the kernel of the start state and its closure.
func (cb *CFSMBuilder) startClosure(seeds []*Rule) (*iteratable.Set, *iteratable.Set) {
	kernel := newItemSet()
	for _, r := range seeds {
		item, _ := StartItem(r)
		kernel.Add(item)
	}
	return kernel, cb.ga.closureSet(kernel)
}

// PanicOnInvariantKey is the configuration key which turns a violated
// invariant during CFSM construction into a panic.
const PanicOnInvariantKey = "panic-on-cfsm-invariant"

// checkInvariant panics with err if err signals a broken invariant and
// configuration flag PanicOnInvariantKey is set.
func checkInvariant(err error) {
	if errors.Is(err, ErrNonFunctionalTransition) && gconf.GetBool(PanicOnInvariantKey) {
		panic(err)
	}
}

// Construct the characteristic finite state machine CFSM for a grammar.
func (cb *CFSMBuilder) buildCFSM() (*CFSM, error) {
	tracer().Debugf("=== build CFSM ==================================================")
	G := cb.ga.g
	cfsm := emptyCFSM(G)
	seeds := cb.seedRules()
	kernel0, closure0 := cb.startClosure(seeds)
	tracer().Debugf("start items = %v", seeds)
	cfsm.s0 = cfsm.addState(kernel0, closure0)
	cfsm.s0.accept = cfsm.s0.containsCompletedRule(seeds)
	cfsm.s0.Dump()
	S := treeset.NewWith(stateComparator) // work list, ordered by state ID
	S.Add(cfsm.s0)
	for !S.Empty() {
		it := S.Iterator()
		it.First()
		s := it.Value().(*CFSMState)
		S.Remove(s)
		for _, x := range s.symbolsAfterDot().Values() {
			A := x.(*Symbol)
			tracer().Debugf("checking goto-set for state %d and symbol = %v", s.ID, A)
			kernel := cb.ga.Kernel(s.items, A)
			gotoset := cb.ga.closureSet(kernel)
			snew := cfsm.findStateByItems(gotoset)
			if snew == nil {
				if cb.maxStates > 0 && cfsm.StateCount() >= cb.maxStates {
					return nil, fmt.Errorf("%w (%d)", ErrTooManyStates, cb.maxStates)
				}
				snew = cfsm.addState(kernel, gotoset)
				snew.accept = snew.containsCompletedRule(seeds)
				S.Add(snew)
				snew.Dump()
			}
			e := cfsm.addEdge(s, snew, A)
			tracer().Debugf("transition %v", e)
		}
		tracer().Debugf("-----------------------------------------------------------------")
	}
	table, err := newTransitionTable(cfsm)
	if err != nil {
		return nil, err
	}
	cfsm.table = table
	tracer().Infof("CFSM for grammar %s has %d states and %d transitions",
		G.Name, cfsm.StateCount(), cfsm.edges.Size())
	return cfsm, nil
}
