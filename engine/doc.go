// Copyright 2025 The Microrunn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package engine provides reverse-mode automatic differentiation for
// scalar values.
//
// # Overview
//
// Arithmetic on Value nodes dynamically records a computation graph: each
// operation's result remembers the operation kind and its operand nodes.
// Because a node may feed several consumers, the graph is a DAG, and
// Backward computes exact gradients by walking it once in reverse
// topological order, accumulating every path's contribution.
//
// # Basic Usage
//
//	import "github.com/trizko/microrunn/engine"
//
//	func main() {
//	    a := engine.New(2.0)
//	    b := engine.New(-3.0)
//	    c := engine.New(10.0)
//	    f := a.Mul(b).Add(c).Tanh()
//
//	    f.Backward()
//	    fmt.Println(a.Grad(), b.Grad(), c.Grad())
//	}
//
// # Gradients
//
// Backward seeds the root's gradient with 1 and accumulates into every
// reachable node; a node reused in several places receives the sum of all
// of its contributions. Backward is not idempotent — call ZeroGrad on the
// root before running it again, or the gradients double.
package engine
