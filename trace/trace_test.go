// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package trace_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ethcore-labs/zeta"
	"github.com/ethcore-labs/zeta/gasoracle"
	"github.com/ethcore-labs/zeta/halt"
	"github.com/ethcore-labs/zeta/opcode"
	"github.com/ethcore-labs/zeta/trace"
)

func allFeatures() zeta.Config {
	return zeta.Config{
		HasDelegateCall: true, HasRevert: true, HasStaticCall: true,
		HasVariableLengthReturnData: true, HasShiftOps: true,
		HasExtCodeHash: true, HasCreate2: true,
	}
}

func TestRun_StopsAtNormalHalt(t *testing.T) {
	code := []byte{byte(opcode.PUSH1), 0x00, byte(opcode.STOP)}
	m := &halt.Machine{Stack: halt.NewStack(), Memory: halt.NewMemory(), Gas: 1000}
	e := halt.NewEnvironment(code, false, allFeatures())

	var buf bytes.Buffer
	outcome := trace.Run(m, e, gasoracle.New(nil), &buf)

	if outcome.Normal != halt.Stopped {
		t.Fatalf("expected Stopped, got %v (halt=%v err=%v)", outcome.Normal, outcome.Halt, outcome.Err)
	}
	if lines := strings.Count(buf.String(), "\n"); lines != 2 {
		t.Errorf("expected 2 traced lines (PUSH1, STOP), got %d:\n%s", lines, buf.String())
	}
}

func TestRun_StopsAtExceptionalHalt(t *testing.T) {
	code := []byte{byte(opcode.ADD)}
	m := &halt.Machine{Stack: halt.NewStack(), Memory: halt.NewMemory(), Gas: 1000}
	e := halt.NewEnvironment(code, false, allFeatures())

	var buf bytes.Buffer
	outcome := trace.Run(m, e, gasoracle.New(nil), &buf)

	if outcome.Halt == nil || outcome.Halt.Kind != halt.StackUnderflow {
		t.Fatalf("expected a stack_underflow halt, got %+v", outcome)
	}
	if !strings.Contains(buf.String(), "halt=stack underflow") {
		t.Errorf("expected the trace to mention the halt reason, got:\n%s", buf.String())
	}
}

func TestRun_FallsOffEndOfCodeAsImplicitStop(t *testing.T) {
	code := []byte{byte(opcode.PUSH1), 0x01} // no trailing STOP
	m := &halt.Machine{Stack: halt.NewStack(), Memory: halt.NewMemory(), Gas: 1000}
	e := halt.NewEnvironment(code, false, allFeatures())

	var buf bytes.Buffer
	outcome := trace.Run(m, e, gasoracle.New(nil), &buf)

	if outcome.Normal != halt.Stopped {
		t.Fatalf("expected the implicit fall-off-the-end STOP, got %+v", outcome)
	}
}
