// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Kudrin

package server

import "errors"

var (
	errNoListenerConfigured = errors.New("no listen address configured")
)
