// Copyright (c) 2018 Fredrik Kuivinen, frekui@gmail.com
//
// Use of this source code is governed by the BSD-style license that can be
// found in the LICENSE file.

package dlogproto

import (
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeDecommitMsgRejectsOverflowingLength(t *testing.T) {
	data := make([]byte, 20)
	binary.BigEndian.PutUint32(data[0:4], 0xFFFFFFFC)
	_, _, err := decodeDecommitMsg(data)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestDecodeDecommitMsgRejectsOverflowingSecondLength(t *testing.T) {
	xb := big.NewInt(5).Bytes()
	data := make([]byte, 4+len(xb)+4)
	binary.BigEndian.PutUint32(data[0:4], uint32(len(xb)))
	copy(data[4:4+len(xb)], xb)
	binary.BigEndian.PutUint32(data[4+len(xb):], 0xFFFFFFF0)
	_, _, err := decodeDecommitMsg(data)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestDecodeDecommitMsgRoundTrip(t *testing.T) {
	x, r := big.NewInt(123), big.NewInt(456)
	got, gotR, err := decodeDecommitMsg(encodeDecommitMsg(x, r))
	require.NoError(t, err)
	require.Equal(t, 0, x.Cmp(got))
	require.Equal(t, 0, r.Cmp(gotR))
}

func TestDecodeFirstMsgRejectsOverflowingLength(t *testing.T) {
	data := make([]byte, 20)
	binary.BigEndian.PutUint32(data[0:4], 0xFFFFFFFC)
	_, _, err := decodeFirstMsg(data)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestDecodeFirstMsgRejectsOverflowingSecondLength(t *testing.T) {
	a := []byte{1, 2, 3}
	data := make([]byte, 4+len(a)+4)
	binary.BigEndian.PutUint32(data[0:4], uint32(len(a)))
	copy(data[4:4+len(a)], a)
	binary.BigEndian.PutUint32(data[4+len(a):], 0xFFFFFFF0)
	_, _, err := decodeFirstMsg(data)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestDecodeFirstMsgRoundTrip(t *testing.T) {
	a, b := []byte{1, 2, 3}, []byte{4, 5}
	gotA, gotB, err := decodeFirstMsg(encodeFirstMsg(a, b))
	require.NoError(t, err)
	require.Equal(t, a, gotA)
	require.Equal(t, b, gotB)
}

func TestZeroizeBigIntClearsBackingWords(t *testing.T) {
	x := new(big.Int).SetBytes([]byte{0xAB, 0xCD, 0xEF, 0x01, 0x23, 0x45, 0x67, 0x89})
	bits := x.Bits()
	require.NotEmpty(t, bits)

	zeroizeBigInt(x)

	require.Equal(t, 0, x.Sign())
	for _, w := range bits {
		require.EqualValues(t, 0, w)
	}
}
