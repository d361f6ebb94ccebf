package nn

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/born-ml/mlp/internal/optim"
	"github.com/born-ml/mlp/internal/tensor"
)

// Config describes a network to construct.
type Config[T tensor.Float] struct {
	// Architecture lists neuron counts per layer, input size first and
	// output size last. At least two entries, all positive.
	Architecture []int

	// LearningRate is the SGD step size. Must be finite and > 0.
	LearningRate T

	// Rand supplies the randomness for weight initialization. Nil seeds a
	// generator from the clock; pass rand.New(rand.NewSource(seed)) for
	// reproducible runs.
	Rand *rand.Rand

	// Init fills each weight matrix. Nil selects Uniform(-0.5, 0.5).
	Init Initializer[T]
}

// Network is a multilayer perceptron with ReLU hidden layers and a softmax
// output layer, trained one sample at a time with SGD on cross-entropy.
//
// Layer l maps arch[l] inputs to arch[l+1] outputs. Parameters are owned
// exclusively by the network and change only inside Backward.
//
// A Network is not safe for concurrent use while it is being trained.
// Forward and Predict never modify the network, so they may run
// concurrently with each other as long as no Backward is in flight.
type Network[T tensor.Float] struct {
	arch   []int
	layers []*Linear[T]
	opt    optim.Optimizer[T]
}

// New creates a network from cfg.
//
// Returns ErrInvalidArchitecture when the architecture has fewer than two
// entries or a non-positive entry, and ErrInvalidLearningRate for a
// zero, negative or non-finite learning rate.
//
// Example:
//
//	net, err := nn.New(nn.Config[float64]{
//	    Architecture: []int{784, 128, 10},
//	    LearningRate: 0.001,
//	    Rand:         rand.New(rand.NewSource(1)),
//	})
func New[T tensor.Float](cfg Config[T]) (*Network[T], error) {
	if err := validateArchitecture(cfg.Architecture); err != nil {
		return nil, err
	}
	opt, err := optim.NewSGD(optim.SGDConfig[T]{LR: cfg.LearningRate})
	if err != nil {
		return nil, err
	}
	if cfg.Rand == nil {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Init == nil {
		cfg.Init = Uniform[T](-0.5, 0.5)
	}

	arch := make([]int, len(cfg.Architecture))
	copy(arch, cfg.Architecture)

	layers := make([]*Linear[T], len(arch)-1)
	for l := range layers {
		layers[l], err = NewLinear(arch[l], arch[l+1], cfg.Init, cfg.Rand)
		if err != nil {
			return nil, err
		}
	}

	return &Network[T]{
		arch:   arch,
		layers: layers,
		opt:    opt,
	}, nil
}

func validateArchitecture(arch []int) error {
	if len(arch) < 2 {
		return fmt.Errorf("%w: need at least 2 layer sizes, got %d", ErrInvalidArchitecture, len(arch))
	}
	for i, n := range arch {
		if n <= 0 {
			return fmt.Errorf("%w: layer %d has size %d (must be > 0)", ErrInvalidArchitecture, i, n)
		}
	}
	return nil
}

// Architecture returns a copy of the layer sizes.
func (n *Network[T]) Architecture() []int {
	arch := make([]int, len(n.arch))
	copy(arch, n.arch)
	return arch
}

// InputSize returns the expected input length.
func (n *Network[T]) InputSize() int { return n.arch[0] }

// OutputSize returns the number of classes.
func (n *Network[T]) OutputSize() int { return n.arch[len(n.arch)-1] }

// NumLayers returns the number of weight layers (len(Architecture)-1).
func (n *Network[T]) NumLayers() int { return len(n.layers) }

// Layer returns weight layer l.
func (n *Network[T]) Layer(l int) *Linear[T] { return n.layers[l] }

// LearningRate returns the SGD step size.
func (n *Network[T]) LearningRate() T { return n.opt.LR() }

// Parameters returns every weight and bias, named "layers.<l>.weight" and
// "layers.<l>.bias".
func (n *Network[T]) Parameters() []*Parameter[T] {
	params := make([]*Parameter[T], 0, 2*len(n.layers))
	for l, layer := range n.layers {
		prefix := "layers." + strconv.Itoa(l) + "."
		for _, p := range layer.Parameters() {
			p.name = prefix + p.name
			params = append(params, p)
		}
	}
	return params
}

// NewCache allocates a cache sized for this network.
func (n *Network[T]) NewCache() *Cache[T] {
	return newCache[T](n.arch)
}

// Forward runs forward propagation and returns a fresh cache. The class
// distribution is cache.Output().
func (n *Network[T]) Forward(input []T) (*Cache[T], error) {
	c := n.NewCache()
	if err := n.ForwardInto(c, input); err != nil {
		return nil, err
	}
	return c, nil
}

// ForwardInto runs forward propagation, overwriting c.
//
// For each layer z = W·x + b is computed and recorded together with its
// activation: ReLU for hidden layers, softmax for the last one.
func (n *Network[T]) ForwardInto(c *Cache[T], input []T) error {
	if len(input) != n.InputSize() {
		return fmt.Errorf("Forward: %w: input has %d features, network expects %d",
			ErrDimensionMismatch, len(input), n.InputSize())
	}
	if c == nil || !c.fits(n.arch) {
		return fmt.Errorf("Forward: %w", ErrCacheMismatch)
	}

	c.ready = false
	copy(c.input, input)

	x := c.input
	last := len(n.layers) - 1
	for l, layer := range n.layers {
		if err := layer.Forward(c.z[l], x); err != nil {
			return err
		}
		if l == last {
			SoftmaxInto(c.a[l], c.z[l])
		} else {
			tensor.ApplyInto(c.a[l], c.z[l], ReLU[T])
		}
		x = c.a[l]
	}
	c.ready = true
	return nil
}

// Output runs forward propagation and returns the class distribution.
func (n *Network[T]) Output(input []T) ([]T, error) {
	c, err := n.Forward(input)
	if err != nil {
		return nil, err
	}
	return c.Output(), nil
}

// Backward backpropagates the error of the forward pass recorded in c
// against a one-hot target and applies one SGD step in place.
//
// The output error signal is a_last - target (the gradient of cross-entropy
// composed with softmax). Walking from the last layer to the first, every
// weight row i is moved by -lr*δ[i]*prev, every bias by -lr*δ[i], and the
// signal is then carried back through the freshly updated weights and
// masked with the ReLU derivative of the previous layer's pre-activation.
//
// All arguments are validated before any parameter is touched. The cache is
// consumed: a second Backward on it fails with ErrCacheNotReady until it is
// refilled by ForwardInto.
func (n *Network[T]) Backward(c *Cache[T], target []T) error {
	if c == nil || !c.fits(n.arch) {
		return fmt.Errorf("Backward: %w", ErrCacheMismatch)
	}
	if !c.ready {
		return fmt.Errorf("Backward: %w", ErrCacheNotReady)
	}
	if len(target) != n.OutputSize() {
		return fmt.Errorf("Backward: %w: target has %d entries, network outputs %d",
			ErrDimensionMismatch, len(target), n.OutputSize())
	}
	c.ready = false

	last := len(n.layers) - 1
	delta := c.delta[last]
	if err := tensor.Sub(delta, c.a[last], target); err != nil {
		return err
	}

	for l := last; l >= 0; l-- {
		layer := n.layers[l]
		prev := c.input
		if l > 0 {
			prev = c.a[l-1]
		}

		for i, d := range delta {
			n.opt.UpdateRow(layer.weight.Row(i), d, prev)
		}
		n.opt.UpdateBias(layer.bias, delta)

		if l == 0 {
			break
		}
		next := c.delta[l-1]
		if err := layer.weight.MulVecT(next, delta); err != nil {
			return err
		}
		for j, z := range c.z[l-1] {
			next[j] *= ReLUDerivative(z)
		}
		delta = next
	}
	return nil
}

// Step trains on one sample: Forward into c, then Backward. It returns the
// cross-entropy of the prediction made before the update.
//
// c may be nil, in which case a temporary cache is allocated.
func (n *Network[T]) Step(c *Cache[T], input, target []T) (T, error) {
	if c == nil {
		c = n.NewCache()
	}
	if err := n.ForwardInto(c, input); err != nil {
		return 0, err
	}
	loss, err := CrossEntropy(c.Output(), target)
	if err != nil {
		return 0, err
	}
	if err := n.Backward(c, target); err != nil {
		return 0, err
	}
	return loss, nil
}

// Predict returns the index of the most probable class for input. Ties go
// to the lowest index.
func (n *Network[T]) Predict(input []T) (int, error) {
	c, err := n.Forward(input)
	if err != nil {
		return 0, err
	}
	return tensor.ArgMax(c.Output()), nil
}

// PredictWith is Predict reusing c for the forward pass.
func (n *Network[T]) PredictWith(c *Cache[T], input []T) (int, error) {
	if err := n.ForwardInto(c, input); err != nil {
		return 0, err
	}
	return tensor.ArgMax(c.Output()), nil
}
