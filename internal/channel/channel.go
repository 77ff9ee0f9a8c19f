// Copyright (c) 2018 Fredrik Kuivinen, frekui@gmail.com
//
// Use of this source code is governed by the BSD-style license that can be
// found in the LICENSE file.
//
// Package channel implements the length-prefixed byte channel the
// dlogproto protocols exchange messages over: a big-endian uint32 length
// prefix followed by the payload.
package channel

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MaxMessageSize bounds the length prefix accepted by ReadWithSizeInto, so a
// corrupt or hostile peer can't force an unbounded allocation.
const MaxMessageSize = 16 << 20 // 16 MiB

// Channel is a reliable, order-preserving, length-prefixed byte-oriented
// message endpoint. Both WriteWithSize and ReadWithSizeInto may block.
type Channel interface {
	WriteWithSize(data []byte) error
	ReadWithSizeInto(buf *[]byte) error
}

// netChannel implements Channel over an io.ReadWriter, typically a net.Conn.
type netChannel struct {
	rw io.ReadWriter
}

// New wraps rw (typically a net.Conn) as a Channel.
func New(rw io.ReadWriter) Channel {
	return &netChannel{rw: rw}
}

func (c *netChannel) WriteWithSize(data []byte) error {
	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(len(data)))
	if _, err := c.rw.Write(hdr[:]); err != nil {
		return err
	}
	_, err := c.rw.Write(data)
	return err
}

func (c *netChannel) ReadWithSizeInto(buf *[]byte) error {
	var hdr [4]byte
	if _, err := io.ReadFull(c.rw, hdr[:]); err != nil {
		return err
	}
	n := binary.BigEndian.Uint32(hdr[:])
	if n > MaxMessageSize {
		return fmt.Errorf("channel: message of %d bytes exceeds limit of %d", n, MaxMessageSize)
	}
	if uint32(cap(*buf)) < n {
		*buf = make([]byte, n)
	} else {
		*buf = (*buf)[:n]
	}
	_, err := io.ReadFull(c.rw, *buf)
	return err
}
