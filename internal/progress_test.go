package internal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func withProgressOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	original := progressOut
	progressOut = &buf
	t.Cleanup(func() { progressOut = original })
	return &buf
}

func TestShowProgress(t *testing.T) {
	withProgressOutput(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		fn      func() error
		wantErr bool
	}{
		{name: "successful function", fn: func() error { return nil }},
		{name: "function with error", fn: func() error { return errors.New("render failed") }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ShowProgress(ctx, "Rendering", tt.fn)
			if (err != nil) != tt.wantErr {
				t.Errorf("ShowProgress() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestShowProgressWithSteps(t *testing.T) {
	buf := withProgressOutput(t)
	ctx := context.Background()

	var ran []string
	step := func(name string, err error) ProgressStep {
		return ProgressStep{Message: name, Fn: func() error {
			ran = append(ran, name)
			return err
		}}
	}

	t.Run("runs in order", func(t *testing.T) {
		ran = nil
		err := ShowProgressWithSteps(ctx, []ProgressStep{step("Loading", nil), step("Building", nil)})
		if err != nil {
			t.Fatalf("ShowProgressWithSteps() error = %v", err)
		}
		if strings.Join(ran, ",") != "Loading,Building" {
			t.Errorf("steps ran = %v", ran)
		}
	})

	t.Run("stops at first error", func(t *testing.T) {
		ran = nil
		boom := errors.New("boom")
		err := ShowProgressWithSteps(ctx, []ProgressStep{step("Loading", boom), step("Building", nil)})
		if !errors.Is(err, boom) {
			t.Fatalf("ShowProgressWithSteps() error = %v, want wrapped boom", err)
		}
		if !strings.HasPrefix(err.Error(), "Loading: ") {
			t.Errorf("error should name the failing step, got %q", err.Error())
		}
		if len(ran) != 1 {
			t.Errorf("later steps should not run, ran = %v", ran)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ran = nil
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		err := ShowProgressWithSteps(cancelled, []ProgressStep{step("Loading", nil)})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("ShowProgressWithSteps() error = %v, want context.Canceled", err)
		}
		if len(ran) != 0 {
			t.Errorf("no step should run, ran = %v", ran)
		}
	})

	t.Run("empty steps", func(t *testing.T) {
		if err := ShowProgressWithSteps(ctx, nil); err != nil {
			t.Errorf("ShowProgressWithSteps() error = %v", err)
		}
	})

	if buf.Len() != 0 {
		t.Errorf("non-terminal output should not draw a spinner, got %q", buf.String())
	}
}

func TestSpin(t *testing.T) {
	buf := withProgressOutput(t)

	if err := spin(context.Background(), "Rendering", func() error { return nil }); err != nil {
		t.Fatalf("spin() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Rendering") {
		t.Errorf("spin() should report the message, got %q", buf.String())
	}

	buf.Reset()
	boom := errors.New("boom")
	if err := spin(context.Background(), "Writing", func() error { return boom }); !errors.Is(err, boom) {
		t.Errorf("spin() error = %v, want boom", err)
	}
}

func TestSpin_CancelWaitsForFn(t *testing.T) {
	buf := withProgressOutput(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	finished := false
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := spin(ctx, "Writing chat.html", func() error {
		time.Sleep(50 * time.Millisecond)
		finished = true
		return nil
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("spin() error = %v, want context.Canceled", err)
	}
	if !finished {
		t.Error("spin() returned before fn finished")
	}
	if out := buf.String(); !strings.Contains(out, "✗") || !strings.Contains(out, "Writing chat.html") {
		t.Errorf("cancelled step should be marked failed, got: %q", buf.String())
	}
}
