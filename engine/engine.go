// Copyright 2025 The Microrunn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/trizko/microrunn/internal/engine"
)

// Value is a single node in the computation graph.
//
// Arithmetic methods (Add, Mul, Pow, Tanh, Neg, Sub) each return a new node
// recording the operation and its operands; Backward then computes the
// gradient of the receiver with respect to every reachable node.
type Value = engine.Value

// Op identifies how a node was produced.
type Op = engine.Op

// The closed set of operations a node can record.
const (
	OpLeaf = engine.OpLeaf
	OpAdd  = engine.OpAdd
	OpMul  = engine.OpMul
	OpPow  = engine.OpPow
	OpTanh = engine.OpTanh
)

// New creates a leaf node holding data.
//
// Example:
//
//	x := engine.New(3.0)
//	y := x.Add(x)
//	y.Backward()
//	fmt.Println(x.Grad()) // 2
func New(data float64) *Value {
	return engine.New(data)
}
