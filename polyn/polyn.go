// Package polyn is for arithmetic with linear polynomials and linear equations.
/*
BSD 3-Clause License

Copyright (c) 2017–21, Norbert Pillmayer.

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package polyn

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/pencils"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the equations tracer.
func T() tracing.Trace {
	return tracing.Select("pencils.polyn")
}

var (
	// ErrNonLinear indicates a product of two non-constant polynomials.
	ErrNonLinear = errors.New("product of two non-constant polynomials")
	// ErrDivisionByZero indicates a division by a zero (or non-constant) divisor.
	ErrDivisionByZero = errors.New("illegal divisor")
)

// X is a helper for quick construction of polynomials.
// It denotes a term
//
//	C⋅x[I]
//
// I > 0
type X struct {
	I int     // position of variable x
	C float64 // coefficient
}

// New creates a polynomial, given the term coefficients and positions.
//
// Use it as
//
//	polyn.New(8, polyn.X{2,5}, polyn.X{1,2/3} )
//
// to get
//
//	P(x) = 8 + 5b + 2/3a
func New(c float64, tms ...X) (Polynomial, error) {
	p := NewConstantPolynomial(c)
	var err error
	for _, t := range tms {
		if t.I < 1 {
			err = fmt.Errorf("term position must be at least 1, skipping %d", t.I)
		} else {
			p.SetTerm(t.I, t.C)
		}
	}
	return p.Zap(), err
}

// Polynomial is a type for linear polynomials
//
//	c + a.1 x.1 + a.2 x.2 + ... a.n x.n .
//
// We store the coefficients only. Index 0 is the constant term.
// Coefficients live in a sorted map, so iteration is always in ascending
// order of variable positions.
//
// Polynomials share their term storage on assignment; use CopyPolynomial
// to get an independent one.
type Polynomial struct {
	terms *treemap.Map
}

// NewConstantPolynomial creates a Polynomial consisting of just a constant term.
func NewConstantPolynomial(c float64) Polynomial {
	p := Polynomial{terms: treemap.NewWithIntComparator()}
	p.terms.Put(0, c) // initialize with constant term (at position 0)
	return p.Zap()
}

func (p *Polynomial) checkTerms() {
	if p.terms == nil {
		p.terms = treemap.NewWithIntComparator()
	}
}

// SetTerm sets the coefficient for a term a.i within a Polynomial.
// For i=0, sets the constant term.
func (p Polynomial) SetTerm(i int, scale float64) Polynomial {
	p.checkTerms()
	p.terms.Put(i, scale)
	return p
}

// removeTerm deletes a.i x.i from p.
func (p Polynomial) removeTerm(i int) {
	if p.terms != nil {
		p.terms.Remove(i)
	}
}

// Helper: for an equation [ 0 = p ] check if p is constant. Returns the
// constant, which is != 0 for an inconsistent equation.
func (p Polynomial) isOff() (float64, bool) {
	if coeff, isconst := p.IsConstant(); isconst {
		return coeff, true
	}
	return 0.0, false
}

// Find coefficient of maximum absolute value.
// If parameter 'dependents' is given, first search for a.i * x.i, with
// x.i not in dependents (i.e., we're looking for free variables only:
// find free variable x.i in p, with abs(a.i) is max in p).
// If no free variable can be found, find max(dependent(a.j)).
//
// Returns position 0 for a constant polynomial.
func (p Polynomial) maxCoeff(dependents EquationMap) (int, float64) {
	p.checkTerms()
	it := p.terms.Iterator()
	var maxp int      // variable position of max coeff
	var maxc = 0.0    // max coeff
	var coeff float64 // result coeff
	for it.Next() {
		i := it.Key().(int)
		var isdep = false
		if dependents != nil {
			_, isdep = dependents[i]
		}
		if i == 0 || isdep {
			continue
		}
		c := it.Value().(float64)
		if math.Abs(c) > maxc {
			maxc, maxp, coeff = math.Abs(c), i, c
		}
	}
	if maxp == 0 && dependents != nil { // no free variable found
		maxp, coeff = p.maxCoeff(nil)
	}
	return maxp, coeff
}

// CopyPolynomial makes a copy of a numeric Polynomial.
func (p Polynomial) CopyPolynomial() Polynomial {
	p1 := Polynomial{terms: treemap.NewWithIntComparator()}
	p.checkTerms()
	it := p.terms.Iterator()
	for it.Next() { // copy all terms of p into p1
		p1.terms.Put(it.Key(), it.Value())
	}
	if _, ok := p1.terms.Get(0); !ok {
		p1.terms.Put(0, 0.0)
	}
	return p1
}

// Internal method: add or subtract 2 polynomials. The high level methods
// are based on this one.
// Flag doAdd signals addition or subtraction.
func (p Polynomial) addOrSub(p2 Polynomial, doAdd bool, destructive bool) Polynomial {
	p1 := p.CopyPolynomial() // will become our return value
	p2.checkTerms()
	it2 := p2.terms.Iterator()
	for it2.Next() { // inspect all terms of p2
		pos2 := it2.Key().(int)
		scale2 := it2.Value().(float64)
		if !pencils.Is0(scale2) {
			scale1 := p1.GetCoeffForTerm(pos2)
			if doAdd {
				scale1 = scale1 + scale2
			} else {
				scale1 = scale1 - scale2
			}
			p1.SetTerm(pos2, scale1) // we operate on the copy p1
		}
	}
	if destructive {
		p.assign(p1)
	}
	return p1
}

// assign overwrites the terms of p with the terms of p1, in place, so that
// every holder of p sees the change.
func (p Polynomial) assign(p1 Polynomial) {
	if p.terms == nil {
		return
	}
	p.terms.Clear()
	for _, pos := range p1.Exponents() {
		p.terms.Put(pos, p1.GetCoeffForTerm(pos))
	}
}

// Add adds two Polynomials. Returns a new Polynomial, except when the
// 'destructive'-flag is set (then p is altered).
func (p Polynomial) Add(p2 Polynomial, destructive bool) Polynomial {
	return p.addOrSub(p2, true, destructive)
}

// Subtract subtracts two Polynomials. Returns a new Polynomial, except when the
// 'destructive'-flag is set (then p is altered).
func (p Polynomial) Subtract(p2 Polynomial, destructive bool) Polynomial {
	return p.addOrSub(p2, false, destructive)
}

// Multiply multiplies two Polynomials. One of both must be a constant,
// otherwise ErrNonLinear is returned. Neither operand is changed, except for
// p when the 'destructive'-flag is set.
// Product terms are not zapped; callers decide about their magnitude.
func (p Polynomial) Multiply(p2 Polynomial, destructive bool) (Polynomial, error) {
	p.checkTerms()
	p2.checkTerms()
	var p1 Polynomial
	if c, isconst := p2.IsConstant(); isconst {
		p1 = p.Scale(c)
	} else if c, isconst = p.IsConstant(); isconst {
		p1 = p2.Scale(c)
	} else {
		return Polynomial{}, fmt.Errorf("%w: (%s) * (%s)", ErrNonLinear, p, p2)
	}
	if destructive {
		p.assign(p1)
	}
	return p1, nil
}

// Scale returns a copy of p with every coefficient multiplied by factor.
// Neither factor nor the products are zapped.
func (p Polynomial) Scale(factor float64) Polynomial {
	p1 := p.CopyPolynomial()
	for _, pos := range p1.Exponents() {
		p1.SetTerm(pos, p1.GetCoeffForTerm(pos)*factor)
	}
	return p1
}

// Divide divides a polynomial by a numeric constant polynomial (not 0).
// The divisor is not changed.
func (p Polynomial) Divide(p2 Polynomial, destructive bool) (Polynomial, error) {
	c, isconst := p2.IsConstant()
	if !isconst || c == 0 {
		return Polynomial{}, fmt.Errorf("%w: %s", ErrDivisionByZero, p2.String())
	}
	p1 := p.Scale(1.0 / c)
	if destructive {
		p.assign(p1)
	}
	return p1, nil
}

// Zap eliminates all terms with coefficient=0 from a polynomial.
func (p Polynomial) Zap() Polynomial {
	p.checkTerms()
	for _, pos := range p.terms.Keys() { // inspect terms
		if scale, _ := p.terms.Get(pos); pencils.Is0(scale.(float64)) {
			p.terms.Remove(pos) // may lose constant term c
		}
	}
	if _, ok := p.terms.Get(0); !ok {
		p.terms.Put(0, 0.0) // set p = 0: re-introduce c
	}
	return p
}

// IsConstant checks wether
// a Polynomial is a constant, i.e. p = { c }? Returns the constant and a flag.
func (p Polynomial) IsConstant() (float64, bool) {
	if p.terms == nil {
		return 0, true
	}
	return p.GetCoeffForTerm(0), p.terms.Size() <= 1
}

// IsValid checks if this a correctly initialized polynomial.
func (p Polynomial) IsValid() bool {
	return p.terms != nil
}

// GetConstantValue returns the constant term of a polynomial.
func (p Polynomial) GetConstantValue() float64 {
	return p.GetCoeffForTerm(0)
}

// GetCoeffForTerm gets the coefficient for term # i.
//
// Example:
//
//	p = x + 3x.2
//
// ⇒
//
//	coeff(2) = 3
func (p Polynomial) GetCoeffForTerm(i int) float64 {
	if p.terms == nil {
		return 0.0
	}
	if sc, found := p.terms.Get(i); found {
		return sc.(float64)
	}
	return 0.0
}

// TermCount returns the number of stored terms, including the constant term.
func (p Polynomial) TermCount() int {
	if p.terms == nil {
		return 0
	}
	return p.terms.Size()
}

// Exponents returns the positions of all stored terms in ascending order,
// starting with the constant term at position 0.
func (p Polynomial) Exponents() []int {
	if p.terms == nil {
		return nil
	}
	keys := p.terms.Keys()
	positions := make([]int, len(keys))
	for k, key := range keys {
		positions[k] = key.(int)
	}
	return positions
}

// Eval evaluates p for given variable values. Variables missing from vals
// count as 0.
func (p Polynomial) Eval(vals map[int]float64) float64 {
	sum := p.GetConstantValue()
	for _, pos := range p.Exponents() {
		if pos > 0 {
			sum += p.GetCoeffForTerm(pos) * vals[pos]
		}
	}
	return sum
}

// String creates a readable string representation for a Polynomial.
// Uses internal variable representations x.<n> where n corresponds to
// the variable's real life ID.
func (p Polynomial) String() string {
	return p.TraceString(nil)
}

// TraceString creates a string representation for a Polynomial. Uses a variable name
// resolver to print 'real' variable identifiers. If no resolver is
// present, variables are printed in a generic form: +/- a.i x.i, where i is
// the position of the term.
func (p Polynomial) TraceString(resolv VariableResolver) string {
	var buffer bytes.Buffer
	var indent = false // no space before first term (usually constant)
	for _, pos := range p.Exponents() {
		scale := p.GetCoeffForTerm(pos)
		if pos == 0 { // constant term
			if resolv == nil {
				buffer.WriteString(fmt.Sprintf("{ %g } ", pencils.Round(scale)))
			} else if !pencils.Is0(scale) {
				buffer.WriteString(fmt.Sprintf("%g", pencils.Round(scale)))
				indent = true
			}
			continue
		}
		if resolv == nil {
			buffer.WriteString(fmt.Sprintf("{ %g x.%d } ", pencils.Round(scale), pos))
			continue
		}
		if indent {
			if scale < 0.0 {
				buffer.WriteString(" - ")
			} else {
				buffer.WriteString(" + ")
			}
		} else {
			indent = true
			if scale < 0.0 {
				buffer.WriteString("-")
			}
		}
		if !pencils.Is0(math.Abs(scale) - 1.0) {
			buffer.WriteString(fmt.Sprintf("%g", math.Abs(scale)))
		}
		buffer.WriteString(resolv.GetVariableName(pos))
	}
	return buffer.String()
}

// TraceStringVar is a helper for tracing output. Parameter resolv may be nil.
func TraceStringVar(i int, resolv VariableResolver) string {
	if resolv == nil {
		return fmt.Sprintf("x.%d", i)
	}
	return resolv.GetVariableName(i)
}
