// Copyright (c) 2018 Fredrik Kuivinen, frekui@gmail.com
//
// Use of this source code is governed by the BSD-style license that can be
// found in the LICENSE file.

package dlogproto

import (
	"io"

	"github.com/nkcrypto/dlogproto/internal/channel"
)

// Channel is a reliable, order-preserving, length-prefixed byte-oriented
// message endpoint used to exchange protocol messages between two peers.
type Channel = channel.Channel

// NewChannel wraps rw (typically a net.Conn) as a Channel.
func NewChannel(rw io.ReadWriter) Channel {
	return channel.New(rw)
}

func readMessage(ch Channel, op string) ([]byte, error) {
	var buf []byte
	if err := ch.ReadWithSizeInto(&buf); err != nil {
		return nil, newIoError(op, err)
	}
	return buf, nil
}

func writeMessage(ch Channel, op string, data []byte) error {
	if err := ch.WriteWithSize(data); err != nil {
		return newIoError(op, err)
	}
	return nil
}
