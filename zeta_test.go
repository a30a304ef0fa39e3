// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package zeta

import "testing"

func TestHash_String(t *testing.T) {
	h := Hash{0xde, 0xad, 0xbe, 0xef}
	if got, want := h.String(), "0xdeadbeef00000000000000000000000000000000000000000000000000000000"; got != want {
		t.Errorf("Hash.String() = %q, want %q", got, want)
	}
}

func TestConstError_IsComparable(t *testing.T) {
	const errFoo ConstError = "foo failed"
	var err error = errFoo

	if err != errFoo {
		t.Errorf("expected a ConstError to compare equal to its own constant via ==")
	}
	if err.Error() != "foo failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "foo failed")
	}
}

func TestConfig_ZeroValueGatesEverything(t *testing.T) {
	var cfg Config
	if cfg.HasDelegateCall || cfg.HasRevert || cfg.HasStaticCall ||
		cfg.HasVariableLengthReturnData || cfg.HasShiftOps ||
		cfg.HasExtCodeHash || cfg.HasCreate2 {
		t.Errorf("expected the zero-value Config to have every feature flag false, got %+v", cfg)
	}
}
