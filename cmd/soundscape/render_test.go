package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"github.com/lixenwraith/soundscape/ambient"
	"github.com/lixenwraith/soundscape/audio"
	"github.com/lixenwraith/soundscape/library"
)

func renderConfig() *ambient.Config {
	cfg := ambient.DefaultConfig()
	cfg.Sink = audio.SinkNull
	cfg.SampleRate = 22050
	cfg.Seed = 11
	return cfg
}

// TestRenderOfflineWritesAudibleWAV verifies the file header, length and that something sounds
func TestRenderOfflineWritesAudibleWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bedroom.wav")
	s := ambient.EnvironmentState{Location: library.Bedroom, TimeOfDay: library.Night, Weather: library.Clear}

	frames, err := renderOffline(renderConfig(), s, path, 1)
	if err != nil {
		t.Fatalf("renderOffline: %v", err)
	}
	if frames != 22050 {
		t.Errorf("frames = %d, want 22050", frames)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		t.Fatal("invalid wav")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dec.SampleRate != 22050 || dec.NumChans != 2 {
		t.Errorf("header %d Hz %d ch", dec.SampleRate, dec.NumChans)
	}
	if len(buf.Data) != 2*22050 {
		t.Errorf("samples = %d, want %d", len(buf.Data), 2*22050)
	}

	nonZero := 0
	for _, v := range buf.Data {
		if v != 0 {
			nonZero++
		}
	}
	if nonZero == 0 {
		t.Error("rendered file is silent")
	}
}

// TestRenderOfflineDeterministic verifies the same seed reproduces the same bytes
func TestRenderOfflineDeterministic(t *testing.T) {
	dir := t.TempDir()
	s := ambient.EnvironmentState{Location: library.Kitchen, TimeOfDay: library.Evening, Weather: library.Rain}

	var files [2][]byte
	for i := range files {
		path := filepath.Join(dir, "out"+string(rune('a'+i))+".wav")
		if _, err := renderOffline(renderConfig(), s, path, 0.5); err != nil {
			t.Fatalf("render %d: %v", i, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		files[i] = data
	}
	if !bytes.Equal(files[0], files[1]) {
		t.Error("renders with the same seed differ")
	}
}

// TestRenderOfflineRejectsBadLength verifies non-positive durations fail fast
func TestRenderOfflineRejectsBadLength(t *testing.T) {
	if _, err := renderOffline(renderConfig(), ambient.EnvironmentState{}, filepath.Join(t.TempDir(), "x.wav"), 0); err == nil {
		t.Error("expected error for zero seconds")
	}
}
