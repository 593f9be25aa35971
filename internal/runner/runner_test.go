package runner

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"alife/pkg/core"
	_ "alife/pkg/sims/langton"
	_ "alife/pkg/sims/life"
)

func TestRunStopsAtCompletion(t *testing.T) {
	sim, err := New("life", map[string]string{"w": "16", "h": "16", "generations": "12"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	res, err := Run(context.Background(), sim, Options{Seed: 3, SampleEvery: 4})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Final.Step != 12 || !res.Final.Complete {
		t.Fatalf("expected complete after 12 steps, got %+v", res.Final.Step)
	}
	// Steps 0, 4, 8 and 12.
	if len(res.Samples) != 4 || res.Summary.Samples != 4 {
		t.Fatalf("expected 4 samples, got %d", len(res.Samples))
	}
	if res.Seed != 3 {
		t.Fatalf("seed not preserved: %d", res.Seed)
	}
}

func TestRunHonoursStepBound(t *testing.T) {
	sim, _ := New("langton", map[string]string{"w": "20", "h": "20"})
	var frames bytes.Buffer
	res, err := Run(context.Background(), sim, Options{Steps: 5, Frames: &frames, FrameEvery: 5})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Final.Step != 5 || res.Final.Complete {
		t.Fatalf("expected an incomplete run of 5 steps, got %d", res.Final.Step)
	}
	if res.Seed == 0 {
		t.Fatalf("zero seed should be replaced")
	}
	out := frames.String()
	if strings.Count(out, "langton step=") != 2 {
		t.Fatalf("expected frames for steps 0 and 5, got:\n%s", out)
	}
}

func TestRunCancelled(t *testing.T) {
	sim, _ := New("langton", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, sim, Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

type failingSim struct {
	core.Lifecycle
}

var errBoom = errors.New("boom")

func (f *failingSim) Name() string      { return "failing" }
func (f *failingSim) Size() core.Size   { return core.Size{W: 1, H: 1} }
func (f *failingSim) RunStep() error    { return errBoom }
func (f *failingSim) IsComplete() bool  { return false }
func (f *failingSim) State() core.State { return core.State{Name: "failing"} }

func (f *failingSim) Initialize(seed int64) error {
	f.Start(seed)
	return nil
}

func (f *failingSim) Reset() error {
	f.Restart()
	return nil
}

func TestRunPropagatesStepError(t *testing.T) {
	if _, err := Run(context.Background(), &failingSim{}, Options{Steps: 3}); !errors.Is(err, errBoom) {
		t.Fatalf("expected errBoom, got %v", err)
	}
}

func TestNewUnknown(t *testing.T) {
	if _, err := New("nope", nil); !errors.Is(err, ErrUnknownSim) {
		t.Fatalf("expected ErrUnknownSim, got %v", err)
	}
}

func TestFixedStepFirstTickIsImmediate(t *testing.T) {
	fs := NewFixedStep(0)
	if !fs.ShouldStep() {
		t.Fatalf("first tick should be due immediately")
	}
	if fs.Interval() <= 0 {
		t.Fatalf("expected positive interval")
	}
}
