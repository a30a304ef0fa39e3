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
	"github.com/ethcore-labs/zeta"
	"github.com/ethcore-labs/zeta/opcode"
)

//go:generate mockgen -source=gas.go -destination=gas_mock.go -package=halt

// CostReport is the Gas Gate's verdict on a single step: the gas it costs,
// and whether that cost is the opcode's ordinary static price or one the
// oracle adjusted (e.g. for a dynamic EIP) along with a human-readable
// explanation of why.
type CostReport struct {
	Gas      zeta.Gas
	Original bool
	Detail   string
}

// CostOracle is the Gas Gate's collaborator interface (step 9 of Classify):
// given the machine, environment and the opcode about to execute, it
// reports what that step costs. Classify treats a non-nil error as an
// internal oracle fault distinct from the eight HaltKind halts — an oracle
// is expected to always be able to price a well-formed step; an error here
// means the oracle itself is broken, not that the contract halted.
type CostOracle interface {
	Cost(m *Machine, e *Environment, op opcode.OpCode, meta opcode.Metadata) (CostReport, error)
}
