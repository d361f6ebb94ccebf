package train

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/mlp/internal/nn"
)

func newNet(t *testing.T, arch []int, lr float64, seed int64) *nn.Network[float64] {
	t.Helper()
	net, err := nn.New(nn.Config[float64]{
		Architecture: arch,
		LearningRate: lr,
		Rand:         rand.New(rand.NewSource(seed)),
	})
	require.NoError(t, err)
	return net
}

func parameters(net *nn.Network[float64]) [][]float64 {
	var out [][]float64
	for _, p := range net.Parameters() {
		out = append(out, append([]float64(nil), p.Data()...))
	}
	return out
}

func TestNew_Validation(t *testing.T) {
	_, err := New[float64](nil, Config{Epochs: 1})
	assert.ErrorIs(t, err, ErrNilNetwork)

	_, err = New(newNet(t, []int{2, 2}, 0.1, 1), Config{Epochs: -1})
	assert.ErrorIs(t, err, ErrInvalidEpochs)
}

func TestTrain_SingleSampleScenario(t *testing.T) {
	net := newNet(t, []int{4, 3, 2}, 0.01, 7)
	trainer, err := New(net, Config{Epochs: 100})
	require.NoError(t, err)

	input := []float64{1, 0, 0, 0}
	stats, err := trainer.Train([][]float64{input}, [][]float64{{0, 1}})
	require.NoError(t, err)
	require.Len(t, stats, 100)

	class, err := net.Predict(input)
	require.NoError(t, err)
	assert.Equal(t, 1, class)
	assert.Less(t, stats[99].MeanLoss, stats[0].MeanLoss)
}

func TestTrain_EpochNotifications(t *testing.T) {
	net := newNet(t, []int{2, 4, 2}, 0.05, 3)
	var seen []EpochStats
	trainer, err := New(net, Config{
		Epochs:  5,
		OnEpoch: func(s EpochStats) { seen = append(seen, s) },
	})
	require.NoError(t, err)

	inputs := [][]float64{{0, 1}, {1, 0}, {1, 1}}
	targets := [][]float64{{1, 0}, {0, 1}, {1, 0}}
	stats, err := trainer.Train(inputs, targets)
	require.NoError(t, err)

	assert.Equal(t, stats, seen)
	for i, s := range stats {
		assert.Equal(t, i+1, s.Epoch)
		assert.Equal(t, 3, s.Samples)
		assert.Greater(t, s.MeanLoss, 0.0)
		assert.GreaterOrEqual(t, s.StdLoss, 0.0)
	}
	assert.Contains(t, stats[0].String(), "epoch 1: loss=")
}

func TestTrain_MeanLossMatchesPreUpdateLoss(t *testing.T) {
	// With a single epoch, the reported loss is the mean of the losses seen
	// before each sample's own update.
	a := newNet(t, []int{3, 3, 2}, 0.1, 17)
	b := newNet(t, []int{3, 3, 2}, 0.1, 17)

	inputs := [][]float64{{1, 0, 0}, {0, 1, 0}}
	targets := [][]float64{{1, 0}, {0, 1}}

	var want float64
	for i := range inputs {
		loss, err := b.Step(nil, inputs[i], targets[i])
		require.NoError(t, err)
		want += loss
	}
	want /= float64(len(inputs))

	trainer, err := New(a, Config{Epochs: 1})
	require.NoError(t, err)
	stats, err := trainer.Train(inputs, targets)
	require.NoError(t, err)
	assert.InDelta(t, want, stats[0].MeanLoss, 1e-12)
	assert.Equal(t, parameters(b), parameters(a))
}

func TestTrain_ZeroEpochs(t *testing.T) {
	net := newNet(t, []int{2, 2}, 0.1, 1)
	before := parameters(net)
	trainer, err := New(net, Config{Epochs: 0})
	require.NoError(t, err)

	stats, err := trainer.Train(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, stats)
	assert.Equal(t, before, parameters(net))
}

func TestTrain_Validation(t *testing.T) {
	tests := []struct {
		name    string
		inputs  [][]float64
		targets [][]float64
		wantErr error
	}{
		{"length mismatch", [][]float64{{1, 0}, {0, 1}}, [][]float64{{1, 0}}, ErrDimensionMismatch},
		{"empty", nil, nil, ErrEmptyInput},
		{"bad input size", [][]float64{{1, 0}, {1}}, [][]float64{{1, 0}, {0, 1}}, ErrDimensionMismatch},
		{"bad target size", [][]float64{{1, 0}, {0, 1}}, [][]float64{{1, 0}, {0, 1, 0}}, ErrDimensionMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net := newNet(t, []int{2, 2}, 0.1, 1)
			before := parameters(net)
			trainer, err := New(net, Config{Epochs: 2})
			require.NoError(t, err)

			_, err = trainer.Train(tt.inputs, tt.targets)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, parameters(net), "rejected call must not train")
		})
	}
}

func TestTrainLabels(t *testing.T) {
	net := newNet(t, []int{2, 16, 2}, 0.1, 5)
	trainer, err := New(net, Config{Epochs: 300})
	require.NoError(t, err)

	inputs := [][]float64{{1, 0}, {0, 1}}
	labels := []int{0, 1}
	_, err = trainer.TrainLabels(inputs, labels)
	require.NoError(t, err)

	for i, input := range inputs {
		class, err := net.Predict(input)
		require.NoError(t, err)
		assert.Equal(t, labels[i], class)
	}
}

func TestTrainLabels_Validation(t *testing.T) {
	trainer, err := New(newNet(t, []int{2, 2}, 0.1, 1), Config{Epochs: 1})
	require.NoError(t, err)

	_, err = trainer.TrainLabels([][]float64{{1, 0}}, []int{0, 1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = trainer.TrainLabels([][]float64{{1, 0}}, []int{2})
	assert.ErrorIs(t, err, ErrLabelOutOfRange)
}
