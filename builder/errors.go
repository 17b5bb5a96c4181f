// SPDX-License-Identifier: MIT
// Package: macid/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using `%w` wrapping.
//   • Structural validation errors from core pass through unchanged, so
//     callers may also branch on core's sentinels (core.ErrBadDistribution,
//     core.ErrIncompleteCPD, and so on).

package builder

import "errors"

// ErrBadDocument indicates the input bytes could not be decoded as a
// diagram document at all: malformed YAML, an unknown field, or a
// top-level shape mismatch.
// Usage: if errors.Is(err, ErrBadDocument) { /* reject the input */ }.
var ErrBadDocument = errors.New("builder: malformed document")

// ErrUnknownKind indicates a node entry carries a kind token other than
// "chance", "decision" or "utility".
// Usage: if errors.Is(err, ErrUnknownKind) { /* report the bad entry */ }.
var ErrUnknownKind = errors.New("builder: unknown node kind")

// ErrUnresolvedNode indicates that one or more node entries could not be
// inserted because a named parent never resolves: either the parent is
// absent from the document or the parent references form a cycle.
// Usage: if errors.Is(err, ErrUnresolvedNode) { /* inspect parents */ }.
var ErrUnresolvedNode = errors.New("builder: unresolved node ordering")

// ErrUnknownRule indicates the optional rules section names a node that
// is not a decision declared in the same document.
// Usage: if errors.Is(err, ErrUnknownRule) { /* check rules keys */ }.
var ErrUnknownRule = errors.New("builder: rule for unknown decision")
