// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the fully connected digit classifier.
//
// # Overview
//
// This package contains:
//   - Network: multilayer perceptron with ReLU hidden layers and a softmax output
//   - Cache: explicit per-sample forward state consumed by Backward
//   - Linear: dense layer (weight matrix + bias vector)
//   - Activations: ReLU, ReLUDerivative, Softmax
//   - Loss: CrossEntropy
//   - Initialization: Uniform, Zeros, Xavier
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/mlp/nn"
//	)
//
//	func main() {
//	    net, err := nn.New(nn.Config[float64]{
//	        Architecture: []int{784, 128, 10},
//	        LearningRate: 0.001,
//	        Rand:         rand.New(rand.NewSource(1)),
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // One training step
//	    loss, err := net.Step(nil, image, oneHot)
//
//	    // Inference
//	    class, err := net.Predict(image)
//	}
//
// # Forward and Backward
//
// Forward returns the cache that Backward needs:
//
//	cache, err := net.Forward(input)
//	probs := cache.Output()
//	err = net.Backward(cache, target) // one SGD step, parameters updated in place
//
// Reuse a cache across samples to avoid allocation:
//
//	cache := net.NewCache()
//	for i := range inputs {
//	    loss, err := net.Step(cache, inputs[i], targets[i])
//	}
//
// # Concurrency
//
// A Network must not be shared while it is trained. Forward and Predict only
// read parameters and may run in parallel when no training is in progress.
package nn
