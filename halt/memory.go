// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package halt

// Memory is the byte-addressable, conceptually-infinite buffer read by the
// Return Extractor (component F). Reads past the current size are
// zero-extended rather than erroring: memory expansion and its gas cost are
// the Gas Gate's concern (component G), not the extractor's — the extractor
// is a pure read that never charges gas and never grows the buffer.
type Memory struct {
	store []byte
}

// NewMemory returns an empty memory buffer.
func NewMemory() *Memory {
	return &Memory{}
}

// Len reports the current size of the buffer in bytes.
func (m *Memory) Len() uint64 {
	return uint64(len(m.store))
}

// EnsureCapacity grows the buffer, if necessary, so that it is at least
// needed bytes long, zero-filling the new region. It performs no gas
// accounting; callers that must charge for expansion (the Gas Gate, or a
// full interpreter's memory-writing opcodes) do so before calling this.
func (m *Memory) EnsureCapacity(needed uint64) {
	if uint64(len(m.store)) >= needed {
		return
	}
	grown := make([]byte, needed)
	copy(grown, m.store)
	m.store = grown
}

// Set writes value into the buffer starting at offset, growing the buffer
// first if needed.
func (m *Memory) Set(offset uint64, value []byte) {
	if len(value) == 0 {
		return
	}
	m.EnsureCapacity(offset + uint64(len(value)))
	copy(m.store[offset:], value)
}

// Read copies length bytes starting at offset into a freshly allocated
// slice, zero-extending past the current buffer size. This is the
// operation the Return Extractor (H) performs on RETURN/REVERT's operands.
func (m *Memory) Read(offset, length uint64) []byte {
	out := make([]byte, length)
	if offset >= m.Len() || length == 0 {
		return out
	}
	copy(out, m.store[offset:])
	return out
}
