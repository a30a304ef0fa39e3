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

import "github.com/ethcore-labs/zeta"

// Machine is the machine state (the Yellow Paper's μ) the classifier reads.
// It is never mutated by this package: the outer interpreter owns the
// step-to-step transitions, and the classifier only ever inspects the
// current state to decide whether the step is admissible.
type Machine struct {
	PC             uint64
	Stack          *Stack
	Memory         *Memory
	Gas            zeta.Gas
	LastReturnData []byte
}

// Environment is the execution environment (the Yellow Paper's I) the
// classifier reads: the code being run, its precomputed jump-destination
// set, whether the current frame is static, and the fork-feature record.
type Environment struct {
	Code           []byte
	ValidJumpDests JumpDestSet
	Static         bool
	Config         zeta.Config
}

// NewEnvironment builds an Environment from code, deriving its
// jump-destination set directly (no cache).
func NewEnvironment(code []byte, static bool, cfg zeta.Config) *Environment {
	return &Environment{
		Code:           code,
		ValidJumpDests: BuildJumpDests(code),
		Static:         static,
		Config:         cfg,
	}
}
