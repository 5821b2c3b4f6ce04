// SPDX-License-Identifier: MIT

// Package health is the hosting process that transform-based services run
// inside: environment configuration, a liveness endpoint and a start/stop
// lifecycle.
//
// The transform package does not import health; the dependency only points
// the other way, from binaries under cmd/.
//
//	GET /   →  200 {"status":"OK"}
package health
