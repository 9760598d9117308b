// Copyright 2025 The Microrunn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides feed-forward network building blocks.
//
// # Overview
//
// This package contains:
//   - Neuron: weighted sum plus optional tanh nonlinearity
//   - Layer: parallel neurons sharing the same input width
//   - MLP: sequential layers with a linear head and a sum-of-squares loss
//   - Initializer: seeded, deterministic weight initialization
//   - Module interface: Parameters and ZeroGrad for all of the above
//
// # Basic Usage
//
//	import (
//	    "github.com/trizko/microrunn/engine"
//	    "github.com/trizko/microrunn/nn"
//	)
//
//	func main() {
//	    init := nn.NewInitializer(42)
//	    model := nn.NewMLP(2, []int{3, 3, 1}, init)
//
//	    inputs := [][]*engine.Value{
//	        {engine.New(0.0), engine.New(1.0)},
//	    }
//	    targets := []*engine.Value{engine.New(1.0)}
//
//	    loss := model.Loss(inputs, targets)
//	    loss.Backward()
//
//	    for _, p := range model.Parameters() {
//	        fmt.Println(p.Grad())
//	    }
//	}
//
// All forward computation is expressed in engine operations, so Loss
// returns a single graph root ready for Backward. Parameters are engine
// leaves; an optimizer reads their gradients through Grad after a backward
// pass and resets them with ZeroGrad between passes.
package nn
