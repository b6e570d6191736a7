package sentiment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
	ort "github.com/yalue/onnxruntime_go"
)

// OrtConfig wires an exported transformer sentiment head (SST-2 layout:
// logit index 0 negative, index 1 positive) into the analyzer interface.
type OrtConfig struct {
	// OrtLib is the path to the onnxruntime shared library. Empty means the
	// platform default lookup.
	OrtLib        string
	ModelPath     string
	TokenizerPath string
	MaxSeqLen     int
}

func (c *OrtConfig) applyDefaults() {
	if c.MaxSeqLen <= 0 {
		c.MaxSeqLen = 256
	}
}

// OrtClassifier runs a binary sentiment model through onnxruntime. Results
// are memoized per normalized input because the web layer classifies the
// same mood text again on shuffle refreshes. It never emits NEUTRAL; the
// head only distinguishes positive from negative, like the transformer
// pipeline the catalog was evaluated with.
type OrtClassifier struct {
	cfg     OrtConfig
	tk      *tokenizer.Tokenizer
	session *ort.DynamicAdvancedSession

	mu    sync.Mutex
	cache map[string]Result
}

// NewOrtClassifier loads the tokenizer and model and prepares the runtime
// environment. The first constructed classifier initializes the shared ORT
// environment for the process.
func NewOrtClassifier(cfg OrtConfig) (*OrtClassifier, error) {
	cfg.applyDefaults()
	if cfg.ModelPath == "" || cfg.TokenizerPath == "" {
		return nil, errors.New("model and tokenizer paths are required")
	}
	if cfg.OrtLib != "" {
		ort.SetSharedLibraryPath(cfg.OrtLib)
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("initialize onnxruntime: %w", err)
		}
	}
	tk, err := pretrained.FromFile(cfg.TokenizerPath)
	if err != nil {
		return nil, fmt.Errorf("load tokenizer: %w", err)
	}
	session, err := ort.NewDynamicAdvancedSession(
		cfg.ModelPath,
		[]string{"input_ids", "attention_mask"},
		[]string{"logits"},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	return &OrtClassifier{
		cfg:     cfg,
		tk:      tk,
		session: session,
		cache:   make(map[string]Result),
	}, nil
}

// Close releases the ORT session.
func (c *OrtClassifier) Close() error {
	if c == nil || c.session == nil {
		return nil
	}
	err := c.session.Destroy()
	c.session = nil
	return err
}

// Classify tokenizes the text and runs one forward pass.
func (c *OrtClassifier) Classify(_ context.Context, text string) (Result, error) {
	if c == nil || c.session == nil {
		return Neutral, errors.New("classifier is not initialized")
	}
	key := strings.TrimSpace(text)
	if key == "" {
		return Neutral, nil
	}

	c.mu.Lock()
	if cached, ok := c.cache[key]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	ids, mask, err := c.encode(key)
	if err != nil {
		return Neutral, fmt.Errorf("tokenize: %w", err)
	}
	logits, err := c.run(ids, mask)
	if err != nil {
		return Neutral, fmt.Errorf("run model: %w", err)
	}
	if len(logits) < 2 {
		return Neutral, fmt.Errorf("unexpected logits length %d", len(logits))
	}

	probs := softmax(logits[:2])
	result := Result{Label: LabelNegative, Score: probs[0]}
	if probs[1] >= probs[0] {
		result = Result{Label: LabelPositive, Score: probs[1]}
	}

	c.mu.Lock()
	c.cache[key] = result
	c.mu.Unlock()
	return result, nil
}

func (c *OrtClassifier) encode(text string) (ids, mask []int64, err error) {
	encoding, err := c.tk.EncodeSingle(text, true)
	if err != nil {
		return nil, nil, err
	}
	n := len(encoding.Ids)
	if n > c.cfg.MaxSeqLen {
		n = c.cfg.MaxSeqLen
	}
	if n == 0 {
		return nil, nil, errors.New("empty encoding")
	}
	ids = make([]int64, n)
	mask = make([]int64, n)
	for i := 0; i < n; i++ {
		ids[i] = int64(encoding.Ids[i])
		mask[i] = int64(encoding.AttentionMask[i])
	}
	return ids, mask, nil
}

func (c *OrtClassifier) run(ids, mask []int64) ([]float64, error) {
	shape := ort.NewShape(1, int64(len(ids)))
	idTensor, err := ort.NewTensor(shape, ids)
	if err != nil {
		return nil, err
	}
	defer idTensor.Destroy()
	maskTensor, err := ort.NewTensor(shape, mask)
	if err != nil {
		return nil, err
	}
	defer maskTensor.Destroy()

	outputs := []ort.Value{nil}
	if err := c.session.Run([]ort.Value{idTensor, maskTensor}, outputs); err != nil {
		return nil, err
	}
	defer outputs[0].Destroy()

	logitsTensor, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, errors.New("model output is not a float32 tensor")
	}
	data := logitsTensor.GetData()
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out, nil
}

// softmax converts logits into a probability distribution, shifted by the
// max logit for numerical stability.
func softmax(logits []float64) []float64 {
	maxLogit := math.Inf(-1)
	for _, l := range logits {
		if l > maxLogit {
			maxLogit = l
		}
	}
	exps := make([]float64, len(logits))
	var sum float64
	for i, l := range logits {
		exps[i] = math.Exp(l - maxLogit)
		sum += exps[i]
	}
	for i := range exps {
		exps[i] /= sum
	}
	return exps
}
