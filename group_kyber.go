// Copyright (c) 2018 Fredrik Kuivinen, frekui@gmail.com
//
// Use of this source code is governed by the BSD-style license that can be
// found in the LICENSE file.
//
// This file adapts github.com/drand/kyber's edwards25519 group to the Group
// interface, giving this package an elliptic-curve backend alongside the
// finite-field one in group_modp.go. kyber deliberately keeps its Scalar
// type opaque so it can back groups (e.g. pairing groups) whose exponents
// aren't plain integers; bridging it to the arbitrary-precision Zq scalars
// this package's protocols use means marshaling a big.Int to the group's
// fixed scalar width and handing kyber the bytes directly.

package dlogproto

import (
	"fmt"
	"math/big"

	"github.com/drand/kyber"
	"github.com/drand/kyber/group/edwards25519"
)

// edwards25519Order is l, the documented prime order of the edwards25519
// base point's subgroup: 2^252 + 27742317777372353535851937790883648493.
var edwards25519Order, _ = new(big.Int).SetString(
	"7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

type kyberElement struct {
	p kyber.Point
}

func (e *kyberElement) Equal(other Element) bool {
	o, ok := other.(*kyberElement)
	if !ok {
		panic("dlogproto: kyberElement.Equal called with an element from a different Group")
	}
	return e.p.Equal(o.p)
}

func (e *kyberElement) Sendable() []byte {
	b, err := e.p.MarshalBinary()
	if err != nil {
		panic(fmt.Sprintf("dlogproto: marshaling kyber point: %v", err))
	}
	return b
}

// KyberGroup adapts a kyber.Group of known prime order to the Group
// interface.
type KyberGroup struct {
	suite     kyber.Group
	order     *big.Int
	scalarLen int
}

// NewKyberEdwards25519Group returns a Group backed by kyber's edwards25519
// implementation.
func NewKyberEdwards25519Group() *KyberGroup {
	suite := edwards25519.NewBlakeSHA256Ed25519()
	return &KyberGroup{
		suite:     suite,
		order:     new(big.Int).Set(edwards25519Order),
		scalarLen: suite.ScalarLen(),
	}
}

// scalarBytes encodes x mod g.order as little-endian bytes of exactly
// g.scalarLen length, the width kyber's edwards25519 scalar marshaling
// expects.
func (g *KyberGroup) scalarBytes(x *big.Int) []byte {
	reduced := new(big.Int).Mod(x, g.order)
	be := reduced.Bytes()
	out := make([]byte, g.scalarLen)
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out
}

func (g *KyberGroup) toScalar(x *big.Int) (kyber.Scalar, error) {
	s := g.suite.Scalar()
	if err := s.UnmarshalBinary(g.scalarBytes(x)); err != nil {
		return nil, fmt.Errorf("%w: decoding scalar: %v", ErrInvalidInput, err)
	}
	return s, nil
}

func (g *KyberGroup) Order() *big.Int {
	return new(big.Int).Set(g.order)
}

func (g *KyberGroup) Generator() Element {
	return &kyberElement{p: g.suite.Point().Base()}
}

func (g *KyberGroup) IsMember(e Element) bool {
	ke, ok := e.(*kyberElement)
	if !ok {
		return false
	}
	b, err := ke.p.MarshalBinary()
	if err != nil {
		return false
	}
	rt := g.suite.Point()
	if err := rt.UnmarshalBinary(b); err != nil {
		return false
	}
	return rt.Equal(ke.p)
}

// ValidateGroup always succeeds: edwards25519's curve parameters are fixed
// constants baked into the kyber suite, not runtime input.
func (g *KyberGroup) ValidateGroup() bool {
	return true
}

func (g *KyberGroup) Exponentiate(base Element, exponent *big.Int) Element {
	kb, ok := base.(*kyberElement)
	if !ok {
		panic("dlogproto: KyberGroup.Exponentiate called with an element from a different Group")
	}
	s, err := g.toScalar(exponent)
	if err != nil {
		panic(err)
	}
	return &kyberElement{p: g.suite.Point().Mul(s, kb.p)}
}

func (g *KyberGroup) Multiply(a, b Element) Element {
	ka, ok := a.(*kyberElement)
	if !ok {
		panic("dlogproto: KyberGroup.Multiply called with an element from a different Group")
	}
	kb, ok := b.(*kyberElement)
	if !ok {
		panic("dlogproto: KyberGroup.Multiply called with an element from a different Group")
	}
	return &kyberElement{p: g.suite.Point().Add(ka.p, kb.p)}
}

func (g *KyberGroup) Reconstruct(data []byte, validate bool) (Element, error) {
	p := g.suite.Point()
	if err := p.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("%w: decoding group element: %v", ErrInvalidInput, err)
	}
	e := &kyberElement{p: p}
	if validate && !g.IsMember(e) {
		return nil, fmt.Errorf("%w: reconstructed element is not a member of the group", ErrInvalidInput)
	}
	return e, nil
}

func (g *KyberGroup) SecurityLevelIsDDH() bool {
	return true
}
