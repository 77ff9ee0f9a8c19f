// Copyright (c) 2018 Fredrik Kuivinen, frekui@gmail.com
//
// Use of this source code is governed by the BSD-style license that can be
// found in the LICENSE file.
//
// Wire encodings for the Pedersen commit and decommit messages. The
// preprocess message is h's Sendable form as is, with no encoder here.
// Rather than tag each message with a discriminator and decode
// through a shared envelope type, each message gets its own encode/decode
// pair and the caller (PedersenReceiver/PedersenCommitter) knows from
// protocol state which one to expect next.
package dlogproto

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// encodeCommitMsg lays out a commitment message as an 8-byte big-endian id
// followed by the serialized commitment element.
func encodeCommitMsg(id int64, c []byte) []byte {
	out := make([]byte, 8+len(c))
	binary.BigEndian.PutUint64(out[:8], uint64(id))
	copy(out[8:], c)
	return out
}

func decodeCommitMsg(data []byte) (id int64, c []byte, err error) {
	if len(data) < 8 {
		return 0, nil, fmt.Errorf("%w: commitment message shorter than id field", ErrInvalidInput)
	}
	id = int64(binary.BigEndian.Uint64(data[:8]))
	c = data[8:]
	return id, c, nil
}

// encodeDecommitMsg lays out a decommitment message as two explicit
// (length, bytes) tuples so encoder and decoder agree symmetrically without
// relying on a separator byte that could collide with integer content.
func encodeDecommitMsg(x, r *big.Int) []byte {
	xb := x.Bytes()
	rb := r.Bytes()
	out := make([]byte, 4+len(xb)+4+len(rb))
	binary.BigEndian.PutUint32(out[0:4], uint32(len(xb)))
	copy(out[4:4+len(xb)], xb)
	off := 4 + len(xb)
	binary.BigEndian.PutUint32(out[off:off+4], uint32(len(rb)))
	copy(out[off+4:], rb)
	return out
}

func decodeDecommitMsg(data []byte) (x, r *big.Int, err error) {
	if len(data) < 4 {
		return nil, nil, fmt.Errorf("%w: decommitment message truncated", ErrInvalidInput)
	}
	total := uint64(len(data))
	xlen := uint64(binary.BigEndian.Uint32(data[0:4]))
	if total < 4+xlen+4 {
		return nil, nil, fmt.Errorf("%w: decommitment message truncated", ErrInvalidInput)
	}
	xb := data[4 : 4+xlen]
	off := 4 + xlen
	rlen := uint64(binary.BigEndian.Uint32(data[off : off+4]))
	if total < off+4+rlen {
		return nil, nil, fmt.Errorf("%w: decommitment message truncated", ErrInvalidInput)
	}
	rb := data[off+4 : off+4+rlen]
	return new(big.Int).SetBytes(xb), new(big.Int).SetBytes(rb), nil
}
