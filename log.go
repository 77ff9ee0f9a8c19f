// Copyright (c) 2018 Fredrik Kuivinen, frekui@gmail.com
//
// Use of this source code is governed by the BSD-style license that can be
// found in the LICENSE file.

package dlogproto

import "go.uber.org/zap"

// nopLogger returns a Logger that discards everything it is given, used as
// the default when a session is constructed without one.
func nopLogger() *zap.Logger {
	return zap.NewNop()
}

func orNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return nopLogger()
	}
	return l
}
