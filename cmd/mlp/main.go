// Command mlp trains the fully connected digit classifier on MNIST and
// reports its accuracy.
//
// Usage:
//
//	mlp -data ./data -epochs 3 -lr 0.001
//	mlp -synthetic
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/born-ml/mlp/internal/dataset"
	"github.com/born-ml/mlp/internal/display"
	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/parallel"
	"github.com/born-ml/mlp/internal/tensor"
	"github.com/born-ml/mlp/internal/train"
)

func main() {
	// Parse command line arguments
	dataDir := flag.String("data", "./data", "Directory containing MNIST data files")
	maxSamples := flag.Int("samples", 0, "Max samples to load per set (0 = all)")
	epochs := flag.Int("epochs", 3, "Number of training epochs")
	lr := flag.Float64("lr", 0.001, "Learning rate for SGD")
	hidden := flag.Int("hidden", 128, "Hidden layer size")
	seed := flag.Int64("seed", 0, "Random seed for weight initialization (0 = time based)")
	useSynthetic := flag.Bool("synthetic", false, "Use synthetic data (for testing without MNIST files)")
	index := flag.Int("index", 0, "Test image to predict and display")
	workers := flag.Int("workers", 0, "Evaluation workers (0 = NumCPU, 1 = sequential)")
	flag.Parse()

	fmt.Println("Born ML - MNIST MLP Classification")
	fmt.Println(strings.Repeat("=", 60))

	data := loadData(*dataDir, *maxSamples, *useSynthetic)
	fmt.Printf("   Train: %d samples, Test: %d samples\n", data.Train.Len(), data.Test.Len())

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	arch, err := architecture(data, *hidden)
	if err != nil {
		log.Fatalf("Invalid dataset: %v", err)
	}
	net, err := nn.New(nn.Config[float64]{
		Architecture: arch,
		LearningRate: *lr,
		Rand:         rand.New(rand.NewSource(*seed)),
	})
	if err != nil {
		log.Fatalf("Failed to create network: %v", err)
	}

	fmt.Println("\nCreating network...")
	fmt.Printf("   Architecture: %v\n", net.Architecture())
	fmt.Printf("   Parameters: %d (%s)\n", nn.CountParameters[float64](net), tensor.DataTypeOf[float64]())
	fmt.Printf("   Seed: %d\n", *seed)

	fmt.Printf("\nTraining Configuration:\n")
	fmt.Printf("   Optimizer: SGD (lr=%.4f)\n", net.LearningRate())
	fmt.Printf("   Loss: CrossEntropy\n")
	fmt.Printf("   Epochs: %d\n", *epochs)

	trainer, err := train.New(net, train.Config{
		Epochs: *epochs,
		OnEpoch: func(s train.EpochStats) {
			fmt.Printf("   %s\n", s)
		},
	})
	if err != nil {
		log.Fatalf("Failed to create trainer: %v", err)
	}

	fmt.Println("\nStarting training...")
	fmt.Println(strings.Repeat("=", 60))
	if _, err := trainer.TrainLabels(data.Train.Images, data.Train.Labels); err != nil {
		log.Fatalf("Training failed: %v", err)
	}
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Training complete!")

	cfg := evalConfig(*workers)
	confusion, err := train.Confusion(net, data.Test.Images, data.Test.Labels, cfg)
	if err != nil {
		log.Fatalf("Evaluation failed: %v", err)
	}
	fmt.Printf("\nTest accuracy: %.2f%%\n", train.Accuracy(confusion))
	fmt.Println("\nConfusion matrix (rows: label, cols: prediction):")
	if err := display.Formatted(os.Stdout, confusion); err != nil {
		log.Fatalf("Failed to print confusion matrix: %v", err)
	}

	showPrediction(net, data.Test, *index)
}

// loadData returns the synthetic set or the MNIST files from dir.
func loadData(dir string, maxSamples int, synthetic bool) *dataset.MNIST[float64] {
	if synthetic {
		fmt.Println("\nUsing synthetic data (embedded test patterns)...")
		return &dataset.MNIST[float64]{
			Train: dataset.Synthetic[float64](200),
			Test:  dataset.Synthetic[float64](50),
		}
	}

	fmt.Printf("\nLoading MNIST data from: %s\n", dir)
	data, err := dataset.LoadMNIST[float64](dir, maxSamples)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Println("\nError: MNIST data files not found!")
			fmt.Println("\nTo download MNIST dataset:")
			fmt.Println("  1. Create a 'data' directory: mkdir data")
			fmt.Println("  2. Download files from: http://yann.lecun.com/exdb/mnist/")
			fmt.Println("     - train-images-idx3-ubyte.gz")
			fmt.Println("     - train-labels-idx1-ubyte.gz")
			fmt.Println("     - t10k-images-idx3-ubyte.gz")
			fmt.Println("     - t10k-labels-idx1-ubyte.gz")
			fmt.Println("  3. Extract (gunzip) into the data directory")
			fmt.Println("\nOr run with -synthetic flag to use embedded test data:")
			fmt.Println("  go run ./cmd/mlp -synthetic")
			os.Exit(1)
		}
		log.Fatalf("Failed to load MNIST: %v", err)
	}
	return data
}

// architecture sizes the input layer from the image geometry of the data.
func architecture(data *dataset.MNIST[float64], hidden int) ([]int, error) {
	trainSet, testSet := data.Train, data.Test
	if trainSet.Rows != testSet.Rows || trainSet.Cols != testSet.Cols {
		return nil, fmt.Errorf("train images are %dx%d but test images are %dx%d",
			trainSet.Rows, trainSet.Cols, testSet.Rows, testSet.Cols)
	}
	return []int{trainSet.Rows * trainSet.Cols, hidden, dataset.NumClasses}, nil
}

func evalConfig(workers int) parallel.Config {
	switch {
	case workers == 1:
		return parallel.Sequential()
	case workers > 1:
		cfg := parallel.DefaultConfig()
		cfg.Enabled = true
		cfg.NumWorkers = workers
		return cfg
	default:
		return parallel.DefaultConfig()
	}
}

// showPrediction renders one test image with the network's output.
func showPrediction(net *nn.Network[float64], set *dataset.Set[float64], index int) {
	if set.Len() == 0 {
		return
	}
	if index < 0 || index >= set.Len() {
		log.Fatalf("Index %d out of range [0, %d)", index, set.Len())
	}

	image := set.Images[index]
	probs, err := net.Output(image)
	if err != nil {
		log.Fatalf("Prediction failed: %v", err)
	}
	predicted, err := net.Predict(image)
	if err != nil {
		log.Fatalf("Prediction failed: %v", err)
	}

	fmt.Printf("\nTest image %d (label %d):\n", index, set.Labels[index])
	if err := display.Image(os.Stdout, image, set.Rows, set.Cols); err != nil {
		log.Fatalf("Failed to display image: %v", err)
	}
	fmt.Printf("Predicted: %d\n", predicted)
	if err := display.Distribution(os.Stdout, probs); err != nil {
		log.Fatalf("Failed to display distribution: %v", err)
	}
}
