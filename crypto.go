// Copyright (c) 2018 Fredrik Kuivinen, frekui@gmail.com
//
// Use of this source code is governed by the BSD-style license that can be
// found in the LICENSE file.

package dlogproto

import (
	"crypto/rand"
	"io"
	"math/big"
)

// randr is the CSPRNG used to sample scalars and challenges. Callers must
// not depend on any particular sequence of values it produces.
var randr = rand.Reader

// randomZq samples a uniform value in [0, q) from r. q must be positive.
func randomZq(r io.Reader, q *big.Int) (*big.Int, error) {
	return rand.Int(r, q)
}

// zeroizeBigInt overwrites x's backing words in place so a leaked reference
// to it no longer reveals the secret it held. SetInt64(0) alone is not
// enough: it only truncates the word slice's logical length and leaves the
// previous words untouched in the backing array.
func zeroizeBigInt(x *big.Int) {
	if x == nil {
		return
	}
	bits := x.Bits()
	for i := range bits {
		bits[i] = 0
	}
	x.SetInt64(0)
}

// zeroizeBytes overwrites b in place with zero bytes.
func zeroizeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
