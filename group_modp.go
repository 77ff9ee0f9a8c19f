// Copyright (c) 2018 Fredrik Kuivinen, frekui@gmail.com
//
// Use of this source code is governed by the BSD-style license that can be
// found in the LICENSE file.
//
// This file implements an explicit safe-prime Schnorr subgroup of Z*_p,
// rather than working in the full multiplicative group directly: q =
// (p-1)/2 is the prime order the rest of this package requires, and the
// generator is a quadratic residue so it generates the order-q subgroup
// rather than the full group of order p-1.

package dlogproto

import (
	"fmt"
	"math/big"
)

// primalityCertainty is the number of Miller-Rabin rounds used by
// ValidateGroup. big.Int.ProbablyPrime(20) has error probability at most
// 4^-20.
const primalityCertainty = 20

// modpElement is a member of the multiplicative group Z*_p, represented in
// its canonical non-negative residue.
type modpElement struct {
	v   *big.Int
	byt int // fixed encoded width, in bytes
}

func (e *modpElement) Equal(other Element) bool {
	o, ok := other.(*modpElement)
	if !ok {
		panic("dlogproto: modpElement.Equal called with an element from a different Group")
	}
	return e.v.Cmp(o.v) == 0
}

func (e *modpElement) Sendable() []byte {
	b := e.v.Bytes()
	if len(b) > e.byt {
		panic("dlogproto: modp element wider than group modulus")
	}
	out := make([]byte, e.byt)
	copy(out[e.byt-len(b):], b)
	return out
}

// ModPGroup is a Group implementation over the prime-order subgroup of
// quadratic residues of Z*_p, for a safe prime p.
type ModPGroup struct {
	p   *big.Int // safe prime modulus
	q   *big.Int // (p-1)/2, the group order
	g   *big.Int // generator of the order-q subgroup
	byt int
}

// NewModPGroup builds a ModPGroup from a safe prime p. The generator is
// derived as 2^2 mod p, a quadratic residue and therefore a generator of
// the order-(p-1)/2 subgroup whenever it is not the identity. It does not
// validate that p is actually a safe prime; call ValidateGroup for that.
func NewModPGroup(p *big.Int) (*ModPGroup, error) {
	q := new(big.Int).Sub(p, big.NewInt(1))
	q.Div(q, big.NewInt(2))

	g := new(big.Int).Exp(big.NewInt(2), big.NewInt(2), p)
	if g.Cmp(big.NewInt(1)) == 0 {
		return nil, fmt.Errorf("dlogproto: %d is not a valid generator candidate for this modulus", 2)
	}

	byt := (p.BitLen() + 7) / 8
	return &ModPGroup{p: p, q: q, g: g, byt: byt}, nil
}

// RFC3526Group2048 returns the safe-prime Schnorr subgroup of the 2048-bit
// MODP group from RFC 3526.
func RFC3526Group2048() *ModPGroup {
	p, ok := new(big.Int).SetString("FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD129024E088A67CC74020BBEA63B139B22514A08798E3404DDEF9519B3CD3A431B302B0A6DF25F14374FE1356D6D51C245E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406B7EDEE386BFB5A899FA5AE9F24117C4B1FE649286651ECE45B3DC2007CB8A163BF0598DA48361C55D39A69163FA8FD24CF5F83655D23DCA3AD961C62F356208552BB9ED529077096966D670C354E4ABC9804F1746C08CA18217C32905E462E36CE3BE39E772C180E86039B2783A2EC07A28FB5C55DF06F4C52C9DE2BCBF6955817183995497CEA956AE515D2261898FA051015728E5A8AACAA68FFFFFFFFFFFFFFFF", 16)
	if !ok {
		panic("dlogproto: RFC 3526 modulus failed to parse")
	}
	g, err := NewModPGroup(p)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *ModPGroup) elem(v *big.Int) *modpElement {
	return &modpElement{v: new(big.Int).Mod(v, g.p), byt: g.byt}
}

func (g *ModPGroup) Order() *big.Int {
	return new(big.Int).Set(g.q)
}

func (g *ModPGroup) Generator() Element {
	return g.elem(g.g)
}

func (g *ModPGroup) IsMember(e Element) bool {
	me, ok := e.(*modpElement)
	if !ok {
		return false
	}
	if me.v.Sign() <= 0 || me.v.Cmp(g.p) >= 0 {
		return false
	}
	check := new(big.Int).Exp(me.v, g.q, g.p)
	return check.Cmp(big.NewInt(1)) == 0
}

// ValidateGroup checks that p is (probably) a safe prime: p is prime and
// q = (p-1)/2 is prime.
func (g *ModPGroup) ValidateGroup() bool {
	if !g.p.ProbablyPrime(primalityCertainty) {
		return false
	}
	if !g.q.ProbablyPrime(primalityCertainty) {
		return false
	}
	want := new(big.Int).Mul(g.q, big.NewInt(2))
	want.Add(want, big.NewInt(1))
	return want.Cmp(g.p) == 0
}

func (g *ModPGroup) Exponentiate(base Element, exponent *big.Int) Element {
	mb, ok := base.(*modpElement)
	if !ok {
		panic("dlogproto: ModPGroup.Exponentiate called with an element from a different Group")
	}
	e := new(big.Int).Mod(exponent, g.q)
	return g.elem(new(big.Int).Exp(mb.v, e, g.p))
}

func (g *ModPGroup) Multiply(a, b Element) Element {
	ma, ok := a.(*modpElement)
	if !ok {
		panic("dlogproto: ModPGroup.Multiply called with an element from a different Group")
	}
	mb, ok := b.(*modpElement)
	if !ok {
		panic("dlogproto: ModPGroup.Multiply called with an element from a different Group")
	}
	return g.elem(new(big.Int).Mul(ma.v, mb.v))
}

func (g *ModPGroup) Reconstruct(data []byte, validate bool) (Element, error) {
	v := new(big.Int).SetBytes(data)
	e := g.elem(v)
	if validate && !g.IsMember(e) {
		return nil, fmt.Errorf("%w: reconstructed element is not a member of the group", ErrInvalidInput)
	}
	return e, nil
}

func (g *ModPGroup) SecurityLevelIsDDH() bool {
	return true
}
