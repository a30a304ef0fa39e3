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

import "github.com/ethcore-labs/zeta/opcode"

// NormalHaltKind is the closed set of non-fault ways a step can end
// execution of the current frame.
type NormalHaltKind byte

const (
	NoHalt NormalHaltKind = iota
	Returned
	Reverted
	Stopped
)

func (k NormalHaltKind) String() string {
	switch k {
	case NoHalt:
		return "no halt"
	case Returned:
		return "returned"
	case Reverted:
		return "reverted"
	case Stopped:
		return "stopped"
	default:
		return "unknown normal halt"
	}
}

// NormalHalt inspects op and reports whether it ends the current frame
// without faulting, and if so with what return payload. It must only be
// called after Classify has already reported the step admissible — it does
// not repeat Classify's checks.
func NormalHalt(m *Machine, op opcode.OpCode) (NormalHaltKind, []byte) {
	switch op {
	case opcode.RETURN:
		return Returned, ExtractReturnData(m)
	case opcode.REVERT:
		return Reverted, ExtractReturnData(m)
	case opcode.STOP, opcode.SELFDESTRUCT:
		return Stopped, nil
	default:
		return NoHalt, nil
	}
}

// ExtractReturnData is H: it peeks the top two stack words (offset,
// length) and reads length bytes from memory, zero-extending past the
// current memory size. It is a pure read: it charges no gas and never
// grows the memory buffer. length is untrusted; callers that accept
// attacker-controlled bytecode should cap it before calling this, since an
// unbounded length allocates an equally unbounded result.
func ExtractReturnData(m *Machine) []byte {
	inputs, ok := m.Stack.PeekInputs(2)
	if !ok {
		return nil
	}
	offset, length := inputs[0], inputs[1]
	if !offset.IsUint64() || !length.IsUint64() {
		return nil
	}
	return m.Memory.Read(offset.Uint64(), length.Uint64())
}
