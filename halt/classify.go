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
	"github.com/holiman/uint256"

	"github.com/ethcore-labs/zeta/opcode"
)

// Classify is the Z predicate: the ordered, first-match-wins decision
// procedure that tells the interpreter whether the step at m.PC is
// admissible and, if so, what it costs. A nil error means the step may
// proceed with the returned CostReport; a non-nil error is always a
// *HaltError naming one of the eight exceptional-halt kinds, except where
// oracle itself reports an internal fault (see CostOracle).
//
// Ordering is normative: each step below is checked only after every
// earlier step has passed, and the gas gate (step 9) is never consulted
// once an earlier step has already produced a halt.
func Classify(m *Machine, e *Environment, oracle CostOracle) (CostReport, error) {
	op := fetch(e, m.PC)

	// Step 1-3: look up metadata, INVALID before undefined, undefined.
	meta, ok := opcode.Lookup(op)
	if ok {
		meta, ok = opcode.ForkEnabled(meta, e.Config)
	}
	if op == opcode.INVALID {
		return CostReport{}, ErrInvalidInstruction
	}
	if !ok {
		return CostReport{}, ErrUndefinedInstruction
	}

	delta, alpha := meta.InputCount, meta.OutputCount

	// Step 4: stack underflow.
	if m.Stack.Len() < delta {
		return CostReport{}, ErrStackUnderflow
	}

	// Step 5: stack overflow.
	if m.Stack.Len()-delta+alpha > MaxStackDepth {
		return CostReport{}, ErrStackOverflow
	}

	// Step 6: jump-destination validity.
	if op == opcode.JUMP || op == opcode.JUMPI {
		if halted := checkJumpTarget(m, e, op); halted {
			return CostReport{}, ErrInvalidJumpDestination
		}
	}

	// Step 7: static-context write ban.
	if e.Static && mutates(m, op) {
		return CostReport{}, ErrStaticStateModification
	}

	// Step 8: RETURNDATACOPY bounds, checked with widened arithmetic.
	if op == opcode.RETURNDATACOPY {
		if halted := checkReturnDataBounds(m); halted {
			return CostReport{}, ErrOutOfMemoryBounds
		}
	}

	// Step 9: the gas gate.
	report, err := oracle.Cost(m, e, op, meta)
	if err != nil {
		return CostReport{}, err
	}
	if report.Gas > m.Gas {
		return CostReport{}, ErrOutOfGas
	}
	return report, nil
}

// fetch returns the opcode at pc, or STOP if pc runs past the end of code —
// the EVM convention for a contract that simply falls off the end.
func fetch(e *Environment, pc uint64) opcode.OpCode {
	if pc >= uint64(len(e.Code)) {
		return opcode.STOP
	}
	return opcode.OpCode(e.Code[pc])
}

// checkJumpTarget reports whether a JUMP/JUMPI at the current step targets
// an invalid destination. JUMPI never faults on target when its condition
// is zero.
func checkJumpTarget(m *Machine, e *Environment, op opcode.OpCode) (halted bool) {
	if op == opcode.JUMPI {
		cond := m.Stack.PeekN(1)
		if cond.IsZero() {
			return false
		}
	}
	target := m.Stack.Peek()
	if !target.IsUint64() {
		return true
	}
	return !e.ValidJumpDests.IsValid(target.Uint64())
}

// mutates reports whether op is a state-mutating instruction under the
// static-mutation table of §4.E, given the currently peeked stack.
func mutates(m *Machine, op opcode.OpCode) bool {
	switch op {
	case opcode.LOG0, opcode.LOG1, opcode.LOG2, opcode.LOG3, opcode.LOG4,
		opcode.SELFDESTRUCT, opcode.CREATE, opcode.CREATE2, opcode.SSTORE:
		return true
	}
	if opcode.IsCallWithValue(op) {
		// value is the third argument in CALL's pop order. CALLCODE takes
		// the same argument but is never static-gated on it: only CALL is
		// listed as value-conditional in the static-mutation table.
		value := m.Stack.PeekN(2)
		return !value.IsZero()
	}
	return false
}

// checkReturnDataBounds reports whether RETURNDATACOPY's arguments exceed
// the bounds of the last sub-call's return data. Pop order is
// (memory_start, return_data_start, size); only the latter two bound the
// read. Addition is done with uint256's checked-overflow Add so a 256-bit
// overflow is itself treated as out-of-bounds, per §4.E step 8.
func checkReturnDataBounds(m *Machine) (halted bool) {
	inputs, ok := m.Stack.PeekInputs(3)
	if !ok {
		return true
	}
	returnDataStart, size := inputs[1], inputs[2]

	var end uint256.Int
	if _, overflow := end.AddOverflow(&returnDataStart, &size); overflow {
		return true
	}
	last := uint256.NewInt(uint64(len(m.LastReturnData)))
	return end.Gt(last)
}
