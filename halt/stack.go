// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package halt implements the halting-condition analyzer: the classifier
// that decides, for a single machine step, whether execution continues (and
// at what gas cost) or halts, and why.
package halt

import (
	"fmt"
	"strings"
	"sync"

	"github.com/holiman/uint256"
)

// MaxStackDepth is the maximum number of elements a Stack may hold.
const MaxStackDepth = 1024

// Stack is the 1024-element 256-bit word stack read by the halt classifier
// and, in a full interpreter, mutated by opcode execution. It is a fixed
// backing array to avoid reallocation; over/underflow are not checked here
// because the classifier (component D/E) is responsible for rejecting any
// step that would violate the bound before it touches the stack.
type Stack struct {
	data    [MaxStackDepth]uint256.Int
	pointer int
}

var stackPool = sync.Pool{
	New: func() interface{} { return &Stack{} },
}

// NewStack returns an empty stack from a reuse pool.
func NewStack() *Stack {
	return stackPool.Get().(*Stack)
}

// ReturnStack resets s and returns it to the reuse pool. s must not be used
// afterwards.
func ReturnStack(s *Stack) {
	s.pointer = 0
	stackPool.Put(s)
}

// Push adds a copy of v to the top of the stack. The caller must ensure
// Len() < MaxStackDepth.
func (s *Stack) Push(v *uint256.Int) {
	s.data[s.pointer] = *v
	s.pointer++
}

// Pop removes and returns a pointer to the top element. The returned
// pointer is only valid until the next Push.
func (s *Stack) Pop() *uint256.Int {
	s.pointer--
	return &s.data[s.pointer]
}

// Len reports the number of elements currently on the stack.
func (s *Stack) Len() int {
	return s.pointer
}

// Peek returns a pointer to the top element without removing it. The
// caller must ensure Len() > 0.
func (s *Stack) Peek() *uint256.Int {
	return s.PeekN(0)
}

// PeekN returns a pointer to the n-th element from the top (0 is the top)
// without removing it. The caller must ensure Len() > n.
func (s *Stack) PeekN(n int) *uint256.Int {
	return &s.data[s.pointer-n-1]
}

// PeekInputs reads the top delta words, top first, without popping them. It
// returns ok == false if the stack holds fewer than delta elements; the
// classifier only calls PeekInputs after having already established that
// the stack has at least delta elements, so failure here indicates a
// caller bug rather than a runtime EVM condition.
func (s *Stack) PeekInputs(delta int) (inputs []uint256.Int, ok bool) {
	if s.Len() < delta {
		return nil, false
	}
	out := make([]uint256.Int, delta)
	for i := 0; i < delta; i++ {
		out[i] = *s.PeekN(i)
	}
	return out, true
}

// Swap exchanges the top element with the n-th element from the top.
func (s *Stack) Swap(n int) {
	top := s.pointer - 1
	other := top - n
	s.data[top], s.data[other] = s.data[other], s.data[top]
}

// Dup duplicates the n-th element from the top and pushes the copy.
func (s *Stack) Dup(n int) {
	s.data[s.pointer] = s.data[s.pointer-n-1]
	s.pointer++
}

func (s *Stack) String() string {
	b := strings.Builder{}
	for i := 0; i < s.Len(); i++ {
		b.WriteString(fmt.Sprintf("    [%4d] 0x%x\n", s.Len()-i-1, s.PeekN(i).Bytes32()))
	}
	return b.String()
}
