package policy

import (
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/subarashikihibi/rapfi/internal/board"
)

// ONNXEvaluator serializes EvaluatePolicy and Close on an internal mutex,
// so concurrent calls from multiple goroutines run one at a time.
type ONNXEvaluator struct {
	mu      sync.Mutex
	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]
	size    int
}

func NewONNXEvaluator(modelPath, libPath string, boardSize int) (*ONNXEvaluator, error) {
	ort.SetSharedLibraryPath(libPath)
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("policy: initialize onnxruntime: %w", err)
	}

	inputShape := ort.NewShape(1, 2, int64(boardSize), int64(boardSize))
	input, err := ort.NewEmptyTensor[float32](inputShape)
	if err != nil {
		return nil, fmt.Errorf("policy: allocate input tensor: %w", err)
	}
	outputShape := ort.NewShape(1, int64(boardSize*boardSize))
	output, err := ort.NewEmptyTensor[float32](outputShape)
	if err != nil {
		input.Destroy()
		return nil, fmt.Errorf("policy: allocate output tensor: %w", err)
	}

	session, err := newSessionWithProviderFallback(modelPath, input, output)
	if err != nil {
		input.Destroy()
		output.Destroy()
		return nil, err
	}

	return &ONNXEvaluator{session: session, input: input, output: output, size: boardSize}, nil
}

// attempts is ordered fastest-to-slowest; the first one that builds
// successfully wins. CPU is the last resort; if it fails too, the last
// error is returned.
func newSessionWithProviderFallback(modelPath string, input, output *ort.Tensor[float32]) (*ort.AdvancedSession, error) {
	type attempt struct {
		name    string
		options func() (*ort.SessionOptions, error)
	}
	attempts := []attempt{
		{"cuda", func() (*ort.SessionOptions, error) {
			opts, err := ort.NewSessionOptions()
			if err != nil {
				return nil, err
			}
			cuda, err := ort.NewCUDAProviderOptions()
			if err != nil {
				opts.Destroy()
				return nil, err
			}
			defer cuda.Destroy()
			if err := opts.AppendExecutionProviderCUDA(cuda); err != nil {
				opts.Destroy()
				return nil, err
			}
			return opts, nil
		}},
		{"cpu", func() (*ort.SessionOptions, error) { return ort.NewSessionOptions() }},
	}

	var lastErr error
	for _, a := range attempts {
		opts, err := a.options()
		if err != nil {
			lastErr = err
			continue
		}
		session, err := ort.NewAdvancedSession(modelPath,
			[]string{"board"}, []string{"policy"},
			[]ort.ArbitraryTensor{input}, []ort.ArbitraryTensor{output}, opts)
		opts.Destroy()
		if err == nil {
			return session, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("policy: no execution provider initialized: %w", lastErr)
}

func (e *ONNXEvaluator) EvaluatePolicy(b *board.Board, buf *Buffer) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.fillInput(b)
	if err := e.session.Run(); err != nil {
		// treated as infallible: leave flagged cells at zero rather than panic
		return
	}
	out := e.output.GetData()
	for y := 0; y < e.size; y++ {
		for x := 0; x < e.size; x++ {
			p := board.MakePos(x, y)
			if !buf.ShouldCompute(p) {
				continue
			}
			buf.Set(p, board.Score(out[y*e.size+x]*1000))
		}
	}
}

func (e *ONNXEvaluator) fillInput(b *board.Board) {
	in := e.input.GetData()
	n := e.size * e.size
	for i := 0; i < n; i++ {
		in[i] = 0
		in[n+i] = 0
	}
	self := b.SideToMove()
	for y := 0; y < e.size; y++ {
		for x := 0; x < e.size; x++ {
			p := board.MakePos(x, y)
			if b.IsEmpty(p) {
				continue
			}
			idx := y*e.size + x
			stone, _ := b.StoneAt(p)
			if stone == self {
				in[idx] = 1
			} else {
				in[n+idx] = 1
			}
		}
	}
}

func (e *ONNXEvaluator) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session != nil {
		e.session.Destroy()
	}
	e.input.Destroy()
	e.output.Destroy()
}
