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
	"testing"

	"pgregory.net/rand"

	"github.com/ethcore-labs/zeta/opcode"
)

// buildRandomCode emits a random sequence of PUSHn and JUMPDEST instructions
// (plus filler STOPs) and returns both the code and the set of byte offsets
// a correct scanner must report as valid jump destinations: JUMPDEST bytes
// that were emitted as real instructions, never ones that landed inside a
// PUSH's immediate data.
func buildRandomCode(rng *rand.Rand, instructions int) ([]byte, map[int]bool) {
	var code []byte
	want := make(map[int]bool)

	for i := 0; i < instructions; i++ {
		switch rng.Intn(3) {
		case 0:
			want[len(code)] = true
			code = append(code, byte(opcode.JUMPDEST))
		case 1:
			width := rng.Intn(32) + 1
			code = append(code, byte(opcode.PUSH1+OpCodeOffset(width)))
			for b := 0; b < width; b++ {
				code = append(code, byte(rng.Intn(256)))
			}
		default:
			code = append(code, byte(opcode.STOP))
		}
	}
	return code, want
}

// OpCodeOffset narrows a push width (1..32) to the byte offset from PUSH1,
// kept as a tiny named conversion so buildRandomCode reads as arithmetic on
// opcode widths rather than bare int casts.
func OpCodeOffset(width int) opcode.OpCode {
	return opcode.OpCode(width - 1)
}

func TestBuildJumpDests_SoundAgainstRandomProgramsAcrossSeeds(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(uint64(seed))
		code, want := buildRandomCode(rng, 40)
		set := BuildJumpDests(code)

		for pc := range code {
			got := set.IsValid(uint64(pc))
			if got != want[pc] {
				t.Fatalf("seed %d: pc %d: want valid=%v, got %v\ncode=%x", seed, pc, want[pc], got, code)
			}
		}
	}
}
