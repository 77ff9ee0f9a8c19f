// Copyright (c) 2018 Fredrik Kuivinen, frekui@gmail.com
//
// Use of this source code is governed by the BSD-style license that can be
// found in the LICENSE file.

/*
Package dlogproto implements two interactive two-party protocols over a
prime-order discrete-logarithm group: a Pedersen commitment scheme with an
optional trapdoor, and a three-move sigma protocol proving the Diffie-Hellman
relation u = g^w, v = h^w for a secret witness w.

Both protocols are built on top of two small interfaces that callers must
supply: Group, a prime-order cyclic group with a DDH-hard generator (see
group_modp.go and group_kyber.go for two independent implementations), and
Channel, a reliable length-prefixed byte-oriented message endpoint (see
internal/channel).

Pedersen commitments are driven by PedersenReceiver and PedersenCommitter.
The receiver samples a trapdoor at construction and publishes h = g^trapdoor
over the channel; the committer answers commit requests with c = g^r * h^x
and later reveals (x, r) so the receiver can check the opening.
TrapdoorReceiver and TrapdoorCommitter extend these with the ability to
inspect and validate the trapdoor, which is what lets a simulator equivocate
a commitment in a security proof.

The Diffie-Hellman sigma protocol is driven by SigmaDHProver and
SigmaDHVerifier for an honest run, and by SigmaDHSimulator for the
zero-knowledge simulator used only in proofs of security; the simulator's
output is, for a fixed challenge, distributed identically to a real
transcript.

Sessions are single-threaded and synchronous: every method either returns or
blocks on the underlying Channel. Two sessions never share mutable state, so
a Pedersen receiver and a SigmaDH prover for the same pair of peers can run
concurrently on independent goroutines.

This package does not implement network transport, authentication, key
management, or non-interactive (Fiat-Shamir) transforms; see cmd/ for
example binaries that wire the protocols to a plain net.Conn.
*/
package dlogproto
