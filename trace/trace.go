// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package trace drives halt.Classify over a full code array and writes one
// line per step to an io.Writer, the way the teacher's own instruction
// logger traces a running interpreter. It does not execute opcodes: each
// step after a Continue verdict simply advances the program counter past
// the current instruction (and its PUSH immediate, if any), since opcode
// execution semantics are out of scope for this module.
package trace

import (
	"fmt"
	"io"

	"github.com/ethcore-labs/zeta"
	"github.com/ethcore-labs/zeta/halt"
	"github.com/ethcore-labs/zeta/opcode"
)

// Outcome is one traced run's final verdict: exactly one of Halt, Err or
// Normal != NoHalt is set.
type Outcome struct {
	PC      uint64
	Op      opcode.OpCode
	Gas     int64
	Halt    *halt.HaltError
	Err     error
	Normal  halt.NormalHaltKind
	Payload []byte
}

// Run steps m through e's code, calling oracle at each step, and writes one
// line per step to w. It stops at the first halt (normal or exceptional)
// or oracle fault, and returns the final Outcome.
func Run(m *halt.Machine, e *halt.Environment, oracle halt.CostOracle, w io.Writer) Outcome {
	for {
		op := currentOp(e, m.PC)
		report, err := halt.Classify(m, e, oracle)
		if err != nil {
			haltErr, isHalt := err.(*halt.HaltError)
			if isHalt {
				writeHaltLine(w, m.PC, op, m.Gas, haltErr)
				return Outcome{PC: m.PC, Op: op, Gas: int64(m.Gas), Halt: haltErr}
			}
			fmt.Fprintf(w, "%5d: %-16s gas=%-10d oracle error: %v\n", m.PC, op, m.Gas, err)
			return Outcome{PC: m.PC, Op: op, Gas: int64(m.Gas), Err: err}
		}

		kind, payload := halt.NormalHalt(m, op)
		writeStepLine(w, m.PC, op, m.Gas, int64(report.Gas))
		m.Gas -= report.Gas

		if kind != halt.NoHalt {
			return Outcome{PC: m.PC, Op: op, Gas: int64(m.Gas), Normal: kind, Payload: payload}
		}

		m.PC = nextPC(op, m.PC)
	}
}

func currentOp(e *halt.Environment, pc uint64) opcode.OpCode {
	if pc >= uint64(len(e.Code)) {
		return opcode.STOP
	}
	return opcode.OpCode(e.Code[pc])
}

func nextPC(op opcode.OpCode, pc uint64) uint64 {
	return pc + uint64(op.Width())
}

func writeHaltLine(w io.Writer, pc uint64, op opcode.OpCode, gas zeta.Gas, h *halt.HaltError) {
	fmt.Fprintf(w, "%5d: %-16s gas=%-10d halt=%s\n", pc, op, gas, h.Kind)
}

func writeStepLine(w io.Writer, pc uint64, op opcode.OpCode, gas zeta.Gas, cost int64) {
	fmt.Fprintf(w, "%5d: %-16s gas=%-10d cost=%d\n", pc, op, gas, cost)
}
