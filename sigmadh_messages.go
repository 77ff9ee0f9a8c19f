// Copyright (c) 2018 Fredrik Kuivinen, frekui@gmail.com
//
// Use of this source code is governed by the BSD-style license that can be
// found in the LICENSE file.
//
// The first sigma-protocol message packs two group elements. Rather than
// join their textual representations with a separator byte, which risks
// collision with the elements' own encoded content, this uses explicit
// binary (len_a, a, len_b, b) framing.
package dlogproto

import (
	"encoding/binary"
	"fmt"
)

func encodeFirstMsg(a, b []byte) []byte {
	out := make([]byte, 4+len(a)+4+len(b))
	binary.BigEndian.PutUint32(out[0:4], uint32(len(a)))
	copy(out[4:4+len(a)], a)
	off := 4 + len(a)
	binary.BigEndian.PutUint32(out[off:off+4], uint32(len(b)))
	copy(out[off+4:], b)
	return out
}

func decodeFirstMsg(data []byte) (a, b []byte, err error) {
	if len(data) < 4 {
		return nil, nil, fmt.Errorf("%w: sigma-DH first message truncated", ErrInvalidInput)
	}
	total := uint64(len(data))
	alen := uint64(binary.BigEndian.Uint32(data[0:4]))
	if total < 4+alen+4 {
		return nil, nil, fmt.Errorf("%w: sigma-DH first message truncated", ErrInvalidInput)
	}
	a = data[4 : 4+alen]
	off := 4 + alen
	blen := uint64(binary.BigEndian.Uint32(data[off : off+4]))
	if total < off+4+blen {
		return nil, nil, fmt.Errorf("%w: sigma-DH first message truncated", ErrInvalidInput)
	}
	b = data[off+4 : off+4+blen]
	return a, b, nil
}
