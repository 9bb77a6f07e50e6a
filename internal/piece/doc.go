// Package piece implements the piece-table core of a text-buffer engine:
// the two append-only content buffers, the piece type, the singly-linked
// piece chain, the position resolver, and the query/edit operations that
// read and mutate the chain directly.
//
// # Architecture
//
// A Table owns two content buffers:
//
//   - original: set once at construction, never mutated again.
//   - add: starts empty, only ever grows via append.
//
// The logical document is the concatenation, in chain order, of the byte
// ranges named by each piece. Pieces are singly linked and head-rooted;
// a piece is reachable from exactly one place in the chain at any
// instant (the arena-free ownership model described by the source
// specification). There are no back-pointers, so unlinking a piece
// whose predecessor isn't already known requires a linear scan from the
// head — this is deliberate and matches the reference design, which
// explicitly allows (but does not require) a more efficient link shape.
//
// # Positions
//
// Two different offset-to-piece resolutions exist because insertion and
// reading need different tie-breaking at piece boundaries:
//
//   - resolveBoundary answers "where would a zero-width cursor at this
//     offset sit", used by Insert/Remove/BeginAnchor. It may return a
//     local offset equal to a piece's length (the boundary just after
//     that piece), which is indistinguishable from the next piece's
//     local offset of zero except by which piece is returned.
//   - locatePiece answers "which piece holds the byte at this offset",
//     used by CharAt/Slice. It always returns a local offset strictly
//     less than the piece's length, skipping zero-length pieces.
package piece
