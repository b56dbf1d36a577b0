package polyn

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/npillmayer/pencils"
)

var (
	// ErrEmptyEquationList indicates no equations were supplied to AddEqs.
	ErrEmptyEquationList = errors.New("empty list of equations")
	// ErrInconsistentEquation indicates an equation reduced to 0 = c with c != 0.
	ErrInconsistentEquation = errors.New("inconsistent equation")
)

/*
----------------------------------------------------------------------

Objects and interfaces for solving systems of linear equations (LEQ).

Inspired by Donald E. Knuth's MetaFont, John Hobby's MetaPost and by
a Lua project by John D. Ramsdell: http://luaforge.net/projects/lineqpp/
*/

// A VariableResolver links solver variable IDs to "real" variable names.
//
// Terms are keyed by position i (a.i * x.i). Example: the center coordinate
// "x" of a radical center with ID=1 is represented as x.1 internally. The
// resolver maps x.1 to "x", i.e., IDs to names, and receives a message for
// every variable that becomes known.
type VariableResolver interface {
	GetVariableName(int) string     // get real-life name of x.i
	SetVariableSolved(int, float64) // message: x.i is solved
}

// EquationMap holds equations x.i = p(i), keyed by i.
type EquationMap map[int]Polynomial

// SolvedMap holds solved variables x.i = { c }, keyed by i.
type SolvedMap map[int]Polynomial

// === System of linear equations =======================================

// LinEqSolver is a container for linear equations. Used to incrementally solve
// systems of linear equations.
//
// A solver is not safe for concurrent use; create one per system.
type LinEqSolver struct {
	dependents  EquationMap      // dependent variable at position i has dependencies[i]
	solved      SolvedMap        // map x.i => numeric
	varresolver VariableResolver // to resolve variable names from term positions
}

// NewLinEqSolver creates a new system of linear equations.
func NewLinEqSolver() *LinEqSolver {
	leq := LinEqSolver{
		dependents: make(EquationMap),
		solved:     make(SolvedMap),
	}
	return &leq
}

// Adapter helper to keep deterministic ascending iteration over equation maps.
// Keys are snapshotted so callbacks may remove entries from m safely.
func forEachEquationAscending(m map[int]Polynomial, fn func(int, Polynomial) error) error {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, i := range keys {
		v, ok := m[i]
		if !ok { // key may have been removed by callback
			continue
		}
		if err := fn(i, v); err != nil {
			return err
		}
	}
	return nil
}

// SetVariableResolver sets a variable resolver. Within the LEQ variables are
// encoded by their serial ID, i.e. by the term position i.
func (leq *LinEqSolver) SetVariableResolver(resolver VariableResolver) {
	leq.varresolver = resolver
}

// Value returns the value of variable x.i, if it is solved.
func (leq *LinEqSolver) Value(i int) (float64, bool) {
	p, ok := leq.solved[i]
	if !ok {
		return 0, false
	}
	return p.GetConstantValue(), true
}

// IsSolved is a predicate: are all of the variables x.i solved?
func (leq *LinEqSolver) IsSolved(vars ...int) bool {
	for _, i := range vars {
		if _, ok := leq.solved[i]; !ok {
			return false
		}
	}
	return true
}

// AddEq adds a
// new equation 0 = p (p is Polynomial) to a system of linear equations.
// Immediately starts to solve the -- possibly incomplete -- system, as
// far as possible.
func (leq *LinEqSolver) AddEq(p Polynomial) (*LinEqSolver, error) {
	return leq.addEq(p)
}

// AddEqs adds a set of linear equations to the LEQ system.
// See AddEq.
func (leq *LinEqSolver) AddEqs(plist []Polynomial) (*LinEqSolver, error) {
	l := len(plist)
	if l == 0 {
		T().Errorf("given empty list of equations")
		return leq, ErrEmptyEquationList
	}
	for i, p := range plist {
		T().Debugf("adding equation %d/%d: 0 = %s", i+1, l, p)
		if _, err := leq.addEq(p); err != nil {
			return leq, err
		}
	}
	return leq, nil
}

func (leq *LinEqSolver) addEq(p Polynomial) (*LinEqSolver, error) {
	p = p.CopyPolynomial().Zap()
	T().P("op", "new equation").Infof("0 = %s", leq.PolynString(p))
	// substitute solved in new equation
	p = leq.substituteSolved(0, p, leq.solved)
	coeff, off := p.isOff()
	if off {
		if !pencils.Is0(coeff) {
			return leq, fmt.Errorf("%w: 0 = %s (off by %g)", ErrInconsistentEquation, leq.PolynString(p), coeff)
		}
		return leq, nil // redundant equation
	}
	// select x.i=p(i)
	i, _ := p.maxCoeff(leq.dependents) // start with max (free) coefficient of p
	p, err := leq.activateEquationTowards(i, p) // now  x.i = -1/a * p(...).
	if err != nil {
		return leq, err
	}
	// Phase 1: substitute P(i) in every x.j=P(j)
	D, err := leq.updateDependentVariables(i, p)
	if err != nil {
		return leq, err
	}
	// done, now split solved x from D' off to S'
	S := make(SolvedMap)
	_ = forEachEquationAscending(D, func(i int, p Polynomial) error { // for every x.i=p(i) in D'
		if ok, rhs := solved(p); ok {
			S[i] = rhs   // add x.i to S'
			delete(D, i) // remove x.i from D'
		}
		return nil
	})
	// substitute solved: subst s in S' into d in D'
	_ = forEachEquationAscending(D, func(i int, p Polynomial) error {
		p = leq.substituteSolved(i, p, S)
		if ok, rhs := solved(p); ok {
			S[i] = rhs
			delete(D, i)
		} else {
			D[i] = p
		}
		return nil
	})
	// done, update sets S and D
	_ = forEachEquationAscending(S, func(i int, p Polynomial) error { // S = S + S'
		leq.setSolved(i, p)
		return nil
	})
	leq.dependents = D // D = D'
	return leq, nil
}

// 1st pass of the LEQ algorithm: with a new equation x.i=P(i) walk
// through all dependent variables x.j=P(j) and substitute P(i) for x.i
// in every RHS.
// Return a new set D' of dependent variables.
func (leq *LinEqSolver) updateDependentVariables(i int, p Polynomial) (EquationMap, error) {
	D := make(EquationMap) // set up D' of dependents
	leq.updateDependency(i, p, D)
	savei := i
	T().Debugf("---------- subst dep --------------")
	err := forEachEquationAscending(leq.dependents, func(j int, q Polynomial) error {
		i = savei // restore i
		tmp, ok := D[i]
		if !ok {
			return fmt.Errorf("internal solver state missing dependency for %s", leq.VarString(i))
		}
		p = tmp.CopyPolynomial() // get current version of p(i)
		q = q.CopyPolynomial()
		T().P("op", "substitute").Debugf("(1) p(%s) in %s = %s",
			leq.VarString(i), leq.VarString(j), leq.PolynString(q))
		if j == i { // x.j = x.i, i.e. equations with identical LHS
			k, _ := q.maxCoeff(D)             // start with max (free) coefficient of q(j=i)
			lhs := NewConstantPolynomial(0.0) // construct LHS as pp
			lhs.SetTerm(j, -1.0)              // now LHS is { 0 - 1 x.j }
			q = q.Add(lhs, false)             // move to RHS
			var err error
			q, err = leq.activateEquationTowards(k, q) // now  x.k = -1/a.k * p(... x.j ...).
			if err != nil {
				return err
			}
			j = k // ride the new horse
		}
		leq.updateDependency(j, q, D) // insert original dependency
		if !termContains(q, i) && termContains(p, j) {
			i, j = j, i
			p, q = q, p
		}
		if termContains(q, i) {
			var err error
			j, q, err = subst(i, p, j, q) // substitute new equation in x.j=q(j)
			if err != nil {
				return err
			}
			T().P("op", "substitute").Debugf("result: %s = %s", leq.VarString(j), leq.PolynString(q))
			if j != 0 {
				leq.updateDependency(j, q, D) // insert substitution result
			} else { // j has been eliminated from q
				if coeff, off := q.isOff(); !off {
					k, _ := q.maxCoeff(D) // find max (free) coefficient of q(k)
					q, err = leq.activateEquationTowards(k, q)
					if err != nil {
						return err
					}
					leq.updateDependency(k, q, D) // insert new equation
				} else if !pencils.Is0(coeff) {
					return fmt.Errorf("%w: 0 = %s (off by %g)", ErrInconsistentEquation, leq.PolynString(q), coeff)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	T().Debugf("-----------------------------------")
	return D, nil
}

// Check if a polynomial is constant, i.e. solves an equation.
func solved(p Polynomial) (bool, Polynomial) {
	if _, isconst := p.IsConstant(); isconst {
		return true, p
	}
	return false, p
}

// Does this polynomial contain x.i ?
func termContains(p Polynomial, i int) bool {
	return !pencils.Is0(p.GetCoeffForTerm(i))
}

// Insert or replace x.i=p(i) in a set of equations.
func (leq *LinEqSolver) updateDependency(i int, p Polynomial, m EquationMap) {
	p = p.CopyPolynomial()
	if q, found := m[i]; found {
		if p.TermCount() < q.TermCount() { // prefer shorter RHS terms
			varname := leq.VarString(i)
			T().P("var", varname).Infof("## %s = %s", varname, leq.PolynString(p))
			m[i] = p // replace equation x.i=p(i)
		}
	} else {
		m[i] = p // insert new equation x.i=p(i)
	}
}

// Substitute term x.i=p(i) for x.i in q(j). p(i) may contain a.j*x.j,
// resulting in an equation x.j=q(j) with x.j in q(j). We then resolve
// for x.j. This may result in the elimination of x.j. We then return 0=q'.
//
// Returns the resulting - possibly new - equation.
func subst(i int, p Polynomial, j int, q Polynomial) (int, Polynomial, error) {
	ai := q.GetCoeffForTerm(i) // a.i in q
	if pencils.Is0(ai) {       // variable x.i does not exist in q
		return j, q, nil
	}
	// replace a.i*x.i in q by a.i*p(i)
	q.removeTerm(i)
	q = q.Add(p.Scale(ai), false).Zap()
	aj := q.GetCoeffForTerm(j) // results in a.j*x.j in q(j) ?
	if pencils.Is0(aj) {       // no => we're done
		return j, q, nil
	}
	if pencils.Is1(aj) { // x.j = c + x.j + ...  => eliminate x.j and activate for free x.k
		q.removeTerm(j) // remove x.j from RHS q
		return 0, q, nil
	}
	// x.j = c + a.j*x.j + ...  => scale RHS by -1/(a.j-1)
	q.removeTerm(j)
	return j, q.Scale(-1.0 / (aj - 1.0)).Zap(), nil
}

// In an equation, substitute all variables which are already known.
func (leq *LinEqSolver) substituteSolved(j int, p Polynomial, solved SolvedMap) Polynomial {
	_ = forEachEquationAscending(solved, func(i int, rhs Polynomial) error { // iterate over all solved x.i = c
		coeff := p.GetCoeffForTerm(i)
		if pencils.Is0(coeff) {
			return nil
		}
		c := rhs.GetConstantValue()
		p.SetTerm(0, p.GetConstantValue()+coeff*c)
		p.removeTerm(i)
		T().P("op", "subst-solved").Debugf("%s = %g  =>  RHS = %s",
			leq.VarString(i), c, leq.PolynString(p))
		if j > 0 {
			varname := leq.VarString(j)
			T().P("var", varname).Debugf("## %s = %s", varname, leq.PolynString(p))
		}
		return nil
	})
	return p.Zap()
}

// Transform an equation 0 = p(a x.i) to make x.i the dependent variable, i.e.
// x.i = -1/a * p(...).
func (leq *LinEqSolver) activateEquationTowards(i int, p Polynomial) (Polynomial, error) {
	coeff := p.GetCoeffForTerm(i)
	if i == 0 || pencils.Is0(coeff) {
		return Polynomial{}, fmt.Errorf("cannot activate equation towards %s: zero coefficient", leq.VarString(i))
	}
	p = p.CopyPolynomial()
	p.removeTerm(i) // remove term x.i from RHS(p)
	p = p.Scale(-1.0 / coeff)
	varname := leq.VarString(i)
	T().P("var", varname).Infof("## %s = %s", varname, leq.PolynString(p))
	return p, nil
}

// Mark a variable as solved. Sends a message to the variable resolver.
func (leq *LinEqSolver) setSolved(i int, p Polynomial) {
	c := p.GetConstantValue()
	varname := leq.VarString(i)
	T().P("var", varname).Infof("#### %s = %g", varname, c)
	leq.solved[i] = p // move x.i to set of solved variables
	if leq.varresolver != nil {
		leq.varresolver.SetVariableSolved(i, c) // notify variable solver
	}
}

// VarString returns a readable variable name for an internal variable.
// Uses a VariableResolver, if present.
func (leq *LinEqSolver) VarString(i int) string {
	return TraceStringVar(i, leq.varresolver)
}

// PolynString outputs a polynomial as string. Uses VariableResolver, if present.
func (leq *LinEqSolver) PolynString(p Polynomial) string {
	if leq.varresolver != nil {
		return p.TraceString(leq.varresolver)
	}
	return p.String()
}

// === Utilities =============================================================

// Dump is a debugging helper to write all known equations to w.
func (leq *LinEqSolver) Dump(w io.Writer) {
	fmt.Fprintln(w, "----------------------------------------------------------------------")
	fmt.Fprintln(w, "Dependents:                                                        LEQ")
	_ = forEachEquationAscending(leq.dependents, func(k int, p Polynomial) error {
		fmt.Fprintf(w, "\t%s = %s\n", leq.VarString(k), leq.PolynString(p))
		return nil
	})
	fmt.Fprintln(w, "Solved:")
	_ = forEachEquationAscending(leq.solved, func(k int, p Polynomial) error {
		fmt.Fprintf(w, "\t%s = %g\n", leq.VarString(k), p.GetConstantValue())
		return nil
	})
	fmt.Fprintln(w, "----------------------------------------------------------------------")
}
