package service

import (
	"errors"
	"slices"
	"testing"
)

type fakeService struct {
	name string
	deps []string
	log  *[]string

	initErr  error
	startErr error
	gotArgs  []any
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }

func (f *fakeService) Init(args ...any) error {
	f.gotArgs = args
	*f.log = append(*f.log, "init:"+f.name)
	return f.initErr
}

func (f *fakeService) Start() error {
	*f.log = append(*f.log, "start:"+f.name)
	return f.startErr
}

func (f *fakeService) Stop() error {
	*f.log = append(*f.log, "stop:"+f.name)
	return nil
}

// TestHubOrdersByDependency verifies init/start follow dependencies and stop reverses them
func TestHubOrdersByDependency(t *testing.T) {
	var log []string
	h := NewHub()
	audio := &fakeService{name: "audio", log: &log}
	ui := &fakeService{name: "ui", deps: []string{"audio"}, log: &log}

	if err := h.Register(ui); err != nil {
		t.Fatal(err)
	}
	if err := h.Register(audio, "cfg", 3); err != nil {
		t.Fatal(err)
	}
	if err := h.Register(audio); err == nil {
		t.Error("duplicate register should fail")
	}

	if err := h.InitAll(); err != nil {
		t.Fatalf("InitAll: %v", err)
	}
	if err := h.StartAll(); err != nil {
		t.Fatalf("StartAll: %v", err)
	}
	h.StopAll()

	want := []string{"init:audio", "init:ui", "start:audio", "start:ui", "stop:ui", "stop:audio"}
	if !slices.Equal(log, want) {
		t.Errorf("order = %v, want %v", log, want)
	}
	if len(audio.gotArgs) != 2 || audio.gotArgs[0] != "cfg" {
		t.Errorf("audio args = %v", audio.gotArgs)
	}
	if got := MustGet[*fakeService](h, "ui"); got != ui {
		t.Error("MustGet returned wrong service")
	}
}

// TestHubRollsBackOnStartFailure verifies started services are stopped when a later one fails
func TestHubRollsBackOnStartFailure(t *testing.T) {
	var log []string
	h := NewHub()
	h.Register(&fakeService{name: "a", log: &log})
	h.Register(&fakeService{name: "b", deps: []string{"a"}, log: &log, startErr: errors.New("boom")})

	if err := h.InitAll(); err != nil {
		t.Fatal(err)
	}
	if err := h.StartAll(); err == nil {
		t.Fatal("expected start failure")
	}
	if !slices.Contains(log, "stop:a") {
		t.Errorf("a not rolled back: %v", log)
	}
}

// TestHubRejectsBadGraphs verifies missing and circular dependencies fail InitAll
func TestHubRejectsBadGraphs(t *testing.T) {
	var log []string

	missing := NewHub()
	missing.Register(&fakeService{name: "a", deps: []string{"ghost"}, log: &log})
	if err := missing.InitAll(); err == nil {
		t.Error("expected missing dependency error")
	}

	cycle := NewHub()
	cycle.Register(&fakeService{name: "a", deps: []string{"b"}, log: &log})
	cycle.Register(&fakeService{name: "b", deps: []string{"a"}, log: &log})
	if err := cycle.InitAll(); err == nil {
		t.Error("expected cycle error")
	}
}
