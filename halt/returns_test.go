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

	"github.com/holiman/uint256"

	"github.com/ethcore-labs/zeta/opcode"
)

func TestNormalHaltKind_String(t *testing.T) {
	tests := map[NormalHaltKind]string{
		NoHalt:              "no halt",
		Returned:            "returned",
		Reverted:            "reverted",
		Stopped:             "stopped",
		NormalHaltKind(255): "unknown normal halt",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}

func TestNormalHalt_ReturnAndRevertExtractPayload(t *testing.T) {
	m := &Machine{Stack: NewStack(), Memory: NewMemory()}
	m.Memory.Set(0, []byte{0xAB, 0xCD})
	m.Stack.Push(uint256.NewInt(2))
	m.Stack.Push(uint256.NewInt(0))

	kind, payload := NormalHalt(m, opcode.RETURN)
	if kind != Returned {
		t.Fatalf("expected Returned, got %v", kind)
	}
	if string(payload) != "\xab\xcd" {
		t.Errorf("expected payload 0xabcd, got %x", payload)
	}
}

func TestNormalHalt_StopAndSelfdestructHaltWithNoPayload(t *testing.T) {
	m := &Machine{Stack: NewStack(), Memory: NewMemory()}
	for _, op := range []opcode.OpCode{opcode.STOP, opcode.SELFDESTRUCT} {
		kind, payload := NormalHalt(m, op)
		if kind != Stopped || payload != nil {
			t.Errorf("%v: expected Stopped with nil payload, got %v, %v", op, kind, payload)
		}
	}
}

func TestNormalHalt_OtherOpcodesReportNoHalt(t *testing.T) {
	m := &Machine{Stack: NewStack(), Memory: NewMemory()}
	kind, payload := NormalHalt(m, opcode.ADD)
	if kind != NoHalt || payload != nil {
		t.Errorf("expected NoHalt with nil payload, got %v, %v", kind, payload)
	}
}
