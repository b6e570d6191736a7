// Command eval-sentiment scores a sentiment backend against a labelled
// dataset and prints a per-label precision/recall/F1 report.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/sanamulla68/Sentiment-Enhanced-Movie-Recommendation-System/internal/eval"
	"github.com/sanamulla68/Sentiment-Enhanced-Movie-Recommendation-System/internal/sentiment"
)

type cliOptions struct {
	datasetPath   string
	backend       string
	ortLib        string
	modelPath     string
	tokenizerPath string
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		log.Fatalf("eval-sentiment: %v", err)
	}
	if err := run(opts); err != nil {
		log.Fatalf("eval-sentiment: %v", err)
	}
}

func parseFlags() (cliOptions, error) {
	_ = godotenv.Load()

	var opts cliOptions
	flag.StringVar(&opts.datasetPath, "dataset", "", "Labelled CSV with text and label columns")
	flag.StringVar(&opts.backend, "backend", "vader", "Sentiment backend: vader or onnx")
	flag.StringVar(&opts.ortLib, "ort-lib", os.Getenv("ORT_LIB_PATH"), "onnxruntime shared library (onnx backend)")
	flag.StringVar(&opts.modelPath, "model", os.Getenv("SENTIMENT_MODEL_PATH"), "ONNX sentiment model (onnx backend)")
	flag.StringVar(&opts.tokenizerPath, "tokenizer", os.Getenv("SENTIMENT_TOKENIZER_PATH"), "tokenizer.json for the model (onnx backend)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s --dataset FILE [options]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if opts.datasetPath == "" {
		flag.Usage()
		return opts, errors.New("missing required --dataset file")
	}
	return opts, nil
}

func run(opts cliOptions) error {
	samples, err := eval.LoadSamples(opts.datasetPath)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	var analyzer sentiment.Analyzer
	switch opts.backend {
	case "vader":
		analyzer = sentiment.NewVaderAnalyzer()
	case "onnx":
		clf, err := sentiment.NewOrtClassifier(sentiment.OrtConfig{
			OrtLib:        opts.ortLib,
			ModelPath:     opts.modelPath,
			TokenizerPath: opts.tokenizerPath,
		})
		if err != nil {
			return fmt.Errorf("init onnx backend: %w", err)
		}
		defer clf.Close()
		analyzer = clf
	default:
		return fmt.Errorf("unknown backend %q", opts.backend)
	}

	report, err := eval.Evaluate(context.Background(), analyzer, samples)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}
	fmt.Print(report.String())
	return nil
}
