// Package doublearray defines a static double-array trie mapping byte-string keys
// to non-negative int32 records.
//
// A trie is stored in two parallel int32 arrays, BASE and CHECK, instead of
// per-node child tables. Every slot is either used (it belongs to the trie) or
// free (it belongs to a doubly linked list of unused slots threaded through the
// very same arrays).
//
// Slot variants:
// -------------
//
//   - Root (index 0):
//
//     BASE[0]  = offset of the root's children (1 when empty)
//     CHECK[0] = 0
//
//   - Internal node:
//
//     BASE[i]  = b > 0     child for byte code c lives at b + c
//     CHECK[i] = parent    always >= 0
//
//   - Leaf (reached by the terminal code 0):
//
//     BASE[i]  = -rec - 1  record value, always <= 0
//     CHECK[i] = parent
//
//   - Free slot:
//
//     BASE[i]  = -prev     previous free slot
//     CHECK[i] = -next     next free slot, always < 0
//
// Slots past the physical end of the arrays are free and read as
// BASE[i] = -i + 1, CHECK[i] = -i - 1, so the free list never ends.
//
// A transition from node p by byte code c is valid iff CHECK[BASE[p] + c] == p.
//
// Example trie:
// ------------
//
//	keys: "a" -> 1, "ab" -> 2
//
//	[root] --a--> [n1] --\0--> [leaf:1]
//	                |
//	                `---b--> [n2] --\0--> [leaf:2]
//
// Persisted form is the two arrays verbatim (little-endian int32), with no
// header: see WriteArrays, ReadArrays and Load.
package doublearray
