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

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ethcore-labs/zeta"
	"github.com/ethcore-labs/zeta/opcode"
)

// JumpDestSet is the precomputed set of program-counter positions that are
// valid JUMPDEST targets: the bytes that equal opcode.JUMPDEST and are not
// inside a PUSHn instruction's immediate data.
type JumpDestSet struct {
	valid []bool
}

// BuildJumpDests scans code once, skipping PUSH immediates, and records
// every JUMPDEST byte that is not itself skipped as immediate data.
func BuildJumpDests(code []byte) JumpDestSet {
	valid := make([]bool, len(code))
	for pc := 0; pc < len(code); {
		op := opcode.OpCode(code[pc])
		if op == opcode.JUMPDEST {
			valid[pc] = true
			pc++
			continue
		}
		if op >= opcode.PUSH1 && op <= opcode.PUSH32 {
			pc += op.Width()
			continue
		}
		pc++
	}
	return JumpDestSet{valid: valid}
}

// IsValid reports whether pc is a valid JUMPDEST target in the code this
// set was built from.
func (s JumpDestSet) IsValid(pc uint64) bool {
	if pc >= uint64(len(s.valid)) {
		return false
	}
	return s.valid[pc]
}

// JumpDestCache memoizes JumpDestSet derivations keyed by a caller-supplied
// content hash, mirroring the teacher's code-conversion cache. This package
// never computes the hash itself — no cryptography is performed here; the
// cache is only as sound as the caller's promise that equal hashes mean
// equal code.
type JumpDestCache struct {
	cache *lru.Cache[zeta.Hash, JumpDestSet]
}

// NewJumpDestCache creates a cache holding up to size entries.
func NewJumpDestCache(size int) *JumpDestCache {
	c, err := lru.New[zeta.Hash, JumpDestSet](size)
	if err != nil {
		// Only returned by golang-lru when size <= 0; a programming error.
		panic(err)
	}
	return &JumpDestCache{cache: c}
}

// Get returns the cached JumpDestSet for hash, deriving and storing it from
// code on a cache miss.
func (c *JumpDestCache) Get(hash zeta.Hash, code []byte) JumpDestSet {
	if set, ok := c.cache.Get(hash); ok {
		return set
	}
	set := BuildJumpDests(code)
	c.cache.Add(hash, set)
	return set
}
