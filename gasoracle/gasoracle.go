// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package gasoracle is a reference implementation of halt.CostOracle: a
// static gas table plus a handful of dynamic rules for the few opcodes
// whose cost the halting core's own tests need to exercise (memory
// expansion, CALL value transfer, SSTORE). It exists to make halt.Classify
// runnable end-to-end; it is not an EIP-accurate gas schedule.
package gasoracle

import (
	"fmt"

	"github.com/ethcore-labs/zeta"
	"github.com/ethcore-labs/zeta/halt"
	"github.com/ethcore-labs/zeta/opcode"
)

// Gas pricing constants for the dynamic rules below. The names carry no
// EIP suffix: this oracle does not track per-fork schedule history.
const (
	sstoreSetGas         zeta.Gas = 20000
	sstoreResetGas       zeta.Gas = 5000
	callValueTransferGas zeta.Gas = 9000
	callStipend          zeta.Gas = 2300
	memoryWordGas        zeta.Gas = 3
)

var staticPrices = buildStaticPrices()

func buildStaticPrices() [256]zeta.Gas {
	var t [256]zeta.Gas
	set := func(op opcode.OpCode, price zeta.Gas) { t[op] = price }

	for op := opcode.PUSH1; op <= opcode.PUSH32; op++ {
		t[op] = 3
	}
	for op := opcode.DUP1; op <= opcode.DUP16; op++ {
		t[op] = 3
	}
	for op := opcode.SWAP1; op <= opcode.SWAP16; op++ {
		t[op] = 3
	}
	for op := opcode.LT; op <= opcode.SAR; op++ {
		t[op] = 3
	}

	set(opcode.STOP, 0)
	set(opcode.POP, 2)
	set(opcode.PUSH0, 2)
	set(opcode.ADD, 3)
	set(opcode.SUB, 3)
	set(opcode.MUL, 5)
	set(opcode.DIV, 5)
	set(opcode.SDIV, 5)
	set(opcode.MOD, 5)
	set(opcode.SMOD, 5)
	set(opcode.ADDMOD, 8)
	set(opcode.MULMOD, 8)
	set(opcode.EXP, 10)
	set(opcode.SIGNEXTEND, 5)
	set(opcode.SHA3, 30)
	set(opcode.ADDRESS, 2)
	set(opcode.ORIGIN, 2)
	set(opcode.CALLER, 2)
	set(opcode.CALLVALUE, 2)
	set(opcode.CALLDATALOAD, 3)
	set(opcode.CALLDATASIZE, 2)
	set(opcode.CALLDATACOPY, 3)
	set(opcode.CODESIZE, 2)
	set(opcode.CODECOPY, 3)
	set(opcode.GASPRICE, 2)
	set(opcode.EXTCODESIZE, 700)
	set(opcode.EXTCODECOPY, 700)
	set(opcode.RETURNDATASIZE, 2)
	set(opcode.RETURNDATACOPY, 3)
	set(opcode.EXTCODEHASH, 700)
	set(opcode.BALANCE, 700)
	set(opcode.BLOCKHASH, 20)
	set(opcode.COINBASE, 2)
	set(opcode.TIMESTAMP, 2)
	set(opcode.NUMBER, 2)
	set(opcode.PREVRANDAO, 2)
	set(opcode.GASLIMIT, 2)
	set(opcode.CHAINID, 2)
	set(opcode.SELFBALANCE, 5)
	set(opcode.BASEFEE, 2)
	set(opcode.MLOAD, 3)
	set(opcode.MSTORE, 3)
	set(opcode.MSTORE8, 3)
	set(opcode.SLOAD, 800)
	set(opcode.JUMP, 8)
	set(opcode.JUMPI, 10)
	set(opcode.PC, 2)
	set(opcode.MSIZE, 2)
	set(opcode.GAS, 2)
	set(opcode.JUMPDEST, 1)
	set(opcode.LOG0, 375)
	set(opcode.LOG1, 750)
	set(opcode.LOG2, 1125)
	set(opcode.LOG3, 1500)
	set(opcode.LOG4, 1875)
	set(opcode.CREATE, 32000)
	set(opcode.CALL, 700)
	set(opcode.CALLCODE, 700)
	set(opcode.RETURN, 0)
	set(opcode.DELEGATECALL, 700)
	set(opcode.CREATE2, 32000)
	set(opcode.STATICCALL, 700)
	set(opcode.REVERT, 0)
	set(opcode.SELFDESTRUCT, 5000)

	return t
}

// StorageAccess reports, for SSTORE, whether the target slot currently
// holds a zero word. The reference oracle needs this to distinguish the
// set-from-zero price from the reset price; a full interpreter would read
// this from its world-state, which is out of this module's scope, so the
// caller supplies it directly.
type StorageAccess interface {
	IsZeroBefore(slot [32]byte) bool
}

// Oracle is the reference halt.CostOracle: a static table for most
// opcodes, plus dynamic rules for memory expansion, CALL value transfer,
// and SSTORE's clean/dirty slot distinction.
type Oracle struct {
	Storage StorageAccess
}

// New returns an Oracle consulting storage for SSTORE pricing. storage may
// be nil, in which case every SSTORE is priced as if setting a zero slot
// (the conservative, more expensive case).
func New(storage StorageAccess) *Oracle {
	return &Oracle{Storage: storage}
}

// Cost implements halt.CostOracle.
func (o *Oracle) Cost(m *halt.Machine, e *halt.Environment, op opcode.OpCode, meta opcode.Metadata) (halt.CostReport, error) {
	base := staticPrices[op]

	switch op {
	case opcode.SSTORE:
		return o.sstoreCost(m), nil
	case opcode.CALL, opcode.CALLCODE:
		return o.callCost(m, base), nil
	case opcode.MLOAD, opcode.MSTORE, opcode.MSTORE8:
		return o.memoryCost(m, base)
	case opcode.CALLDATACOPY, opcode.CODECOPY, opcode.RETURNDATACOPY:
		return o.copyCost(m, base)
	}

	return halt.CostReport{Gas: base, Original: true}, nil
}

func (o *Oracle) sstoreCost(m *halt.Machine) halt.CostReport {
	var slot [32]byte
	if m.Stack.Len() >= 1 {
		slot = m.Stack.Peek().Bytes32()
	}
	zero := o.Storage == nil || o.Storage.IsZeroBefore(slot)
	if zero {
		return halt.CostReport{Gas: sstoreSetGas, Original: true}
	}
	return halt.CostReport{Gas: sstoreResetGas, Original: true}
}

func (o *Oracle) callCost(m *halt.Machine, base zeta.Gas) halt.CostReport {
	cost := base
	if m.Stack.Len() >= 3 && !m.Stack.PeekN(2).IsZero() {
		cost += callValueTransferGas
		return halt.CostReport{
			Gas:      cost,
			Original: false,
			Detail:   fmt.Sprintf("value-transferring CALL; callee is granted a %d gas stipend from this surcharge", callStipend),
		}
	}
	return halt.CostReport{Gas: cost, Original: true}
}

// memoryCost adds the linear word-size component of memory expansion to
// the static base price for the three plain memory opcodes.
func (o *Oracle) memoryCost(m *halt.Machine, base zeta.Gas) (halt.CostReport, error) {
	if m.Stack.Len() == 0 {
		return halt.CostReport{Gas: base, Original: true}, nil
	}
	offset := m.Stack.Peek()
	if !offset.IsUint64() {
		return halt.CostReport{}, errGasOverflow
	}
	words := wordsFor(offset.Uint64() + 32)
	extra := zeta.Gas(words) * memoryWordGas
	if extraBeyond := extra - zeta.Gas(wordsFor(m.Memory.Len()))*memoryWordGas; extraBeyond > 0 {
		return halt.CostReport{Gas: base + extraBeyond, Original: false, Detail: "includes linear memory expansion"}, nil
	}
	return halt.CostReport{Gas: base, Original: true}, nil
}

// copyCost adds the per-word copy surcharge for the three copy opcodes,
// whose third stack argument (pop order) is always the byte count.
func (o *Oracle) copyCost(m *halt.Machine, base zeta.Gas) (halt.CostReport, error) {
	if m.Stack.Len() < 3 {
		return halt.CostReport{Gas: base, Original: true}, nil
	}
	size := m.Stack.PeekN(2)
	if !size.IsUint64() {
		return halt.CostReport{}, errGasOverflow
	}
	words := wordsFor(size.Uint64())
	extra := zeta.Gas(words) * 3
	return halt.CostReport{Gas: base + extra, Original: false, Detail: "includes per-word copy surcharge"}, nil
}

func wordsFor(size uint64) uint64 {
	return (size + 31) / 32
}

const errGasOverflow = zeta.ConstError("gas cost computation overflowed a 64-bit operand")
