package parallel

import (
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_Create(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"explicit", 4, 4},
		{"zero", 0, runtime.GOMAXPROCS(0)},
		{"negative", -3, runtime.GOMAXPROCS(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPool(tt.workers)
			defer p.Close()
			if p.Workers() != tt.want {
				t.Errorf("Workers() = %d, want %d", p.Workers(), tt.want)
			}
		})
	}
}

func TestPool_Run(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	var counter atomic.Int64
	tasks := make([]func(), 100)
	for i := range tasks {
		tasks[i] = func() { counter.Add(1) }
	}

	_ = p.Run(tasks)

	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
}

func TestPool_RunDisjointWrites(t *testing.T) {
	p := NewPool(3)
	defer p.Close()

	out := make([]int, 50)
	tasks := make([]func(), len(out))
	for i := range tasks {
		tasks[i] = func() { out[i] = i * i }
	}

	_ = p.Run(tasks)

	for i, v := range out {
		if v != i*i {
			t.Fatalf("out[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestPool_RunEmpty(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	_ = p.Run(nil)
	_ = p.Run([]func(){})
}

func TestPool_UnevenTasks(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	var counter atomic.Int64
	tasks := make([]func(), 16)
	for i := range tasks {
		tasks[i] = func() {
			if i%4 == 0 {
				time.Sleep(5 * time.Millisecond)
			}
			counter.Add(1)
		}
	}

	_ = p.Run(tasks)

	if counter.Load() != 16 {
		t.Errorf("counter = %d, want 16", counter.Load())
	}
}

func TestPool_RunAfterClose(t *testing.T) {
	p := NewPool(2)
	p.Close()

	var ran atomic.Bool
	_ = p.Run([]func(){func() { ran.Store(true) }})

	if !ran.Load() {
		t.Error("Run after Close should execute tasks on the caller")
	}
}

func TestPool_CloseIdempotent(t *testing.T) {
	p := NewPool(2)
	p.Close()
	p.Close()
}

func TestPool_NoGoroutineLeak(t *testing.T) {
	before := runtime.NumGoroutine()

	for range 10 {
		p := NewPool(4)
		_ = p.Run([]func(){func() {}, func() {}})
		p.Close()
	}

	time.Sleep(10 * time.Millisecond)
	if after := runtime.NumGoroutine(); after > before+2 {
		t.Errorf("goroutines: before=%d after=%d", before, after)
	}
}

func TestPool_RunRecoversPanics(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	var counter atomic.Int64
	tasks := []func(){
		func() { counter.Add(1) },
		func() { panic("boom") },
		func() { counter.Add(1) },
	}

	done := make(chan error, 1)
	go func() { done <- p.Run(tasks) }()

	select {
	case err := <-done:
		if !errors.Is(err, ErrTaskPanic) {
			t.Errorf("Run() error = %v, want ErrTaskPanic", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() blocked after a task panicked")
	}
	if counter.Load() != 2 {
		t.Errorf("counter = %d, want 2", counter.Load())
	}

	// The pool keeps working after a panic.
	if err := p.Run([]func(){func() { counter.Add(1) }}); err != nil {
		t.Errorf("Run() error = %v", err)
	}
	if counter.Load() != 3 {
		t.Errorf("counter = %d, want 3", counter.Load())
	}
}

func TestPool_RunAfterCloseRecoversPanics(t *testing.T) {
	p := NewPool(1)
	p.Close()

	if err := p.Run([]func(){func() { panic(1) }}); !errors.Is(err, ErrTaskPanic) {
		t.Errorf("Run() error = %v, want ErrTaskPanic", err)
	}
}
