package ambient

import (
	"testing"

	"github.com/lixenwraith/soundscape/audio"
	"github.com/lixenwraith/soundscape/library"
	"github.com/lixenwraith/soundscape/status"
)

// TestServiceDisabledByConfig verifies a disabled config yields a no-op service
func TestServiceDisabledByConfig(t *testing.T) {
	svc := NewService(nil)
	cfg := DefaultConfig()
	cfg.Enabled = false

	if err := svc.Init(cfg); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !svc.IsDisabled() || svc.Engine() != nil {
		t.Error("expected disabled service without engine")
	}
	if err := svc.Start(); err != nil {
		t.Errorf("Start: %v", err)
	}
	if err := svc.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
}

// TestServiceUnknownSinkDegrades verifies an unusable sink disables instead of failing
func TestServiceUnknownSinkDegrades(t *testing.T) {
	svc := NewService(nil)
	cfg := DefaultConfig()
	cfg.Sink = "gramophone"

	if err := svc.Init(cfg); err != nil {
		t.Fatalf("Init should not fail: %v", err)
	}
	if !svc.IsDisabled() {
		t.Error("expected disabled service")
	}
	svc.Stop()
	svc.Stop()
}

// TestServiceNullSinkLifecycle verifies the full lifecycle against a real context
func TestServiceNullSinkLifecycle(t *testing.T) {
	reg := status.NewRegistry()
	svc := NewService(reg)
	cfg := DefaultConfig()
	cfg.Sink = audio.SinkNull
	cfg.Seed = 5

	initial := EnvironmentState{Location: library.Kitchen, TimeOfDay: library.Morning, Weather: library.Rain}
	if err := svc.Init(cfg, initial); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if svc.IsDisabled() {
		t.Fatal("null sink should not disable the service")
	}
	if svc.Name() != "ambient" || svc.Dependencies() != nil {
		t.Error("unexpected service identity")
	}
	if err := svc.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// Stop drains the loop, so the start command has run by the time it returns
	if err := svc.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := svc.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}

	snap := svc.engine.Snapshot()
	if snap.Builds != 1 {
		t.Errorf("builds = %d, want 1", snap.Builds)
	}
	if snap.Phase != PhaseIdle {
		t.Errorf("phase after stop = %s, want idle", snap.Phase)
	}
	if got := svc.Status().Strings.Get("audio.sink").Load(); got != audio.SinkNull {
		t.Errorf("audio.sink = %q, want null", got)
	}
}
