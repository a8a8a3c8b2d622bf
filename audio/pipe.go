package audio

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/soundscape/constant"
	"github.com/lixenwraith/soundscape/core"
)

// PipeSink streams PCM into a system playback tool's stdin
// Missing tools or a broken pipe degrade it to silent mode rather than failing
type PipeSink struct {
	sampleRate int

	backend *BackendConfig
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	ossFile *os.File // For direct OSS writes

	running    atomic.Bool
	silentMode atomic.Bool

	stopChan chan struct{}
	errChan  chan error

	mu sync.Mutex
	wg sync.WaitGroup
}

// NewPipeSink creates an unstarted pipe sink
func NewPipeSink(sampleRate int) *PipeSink {
	return &PipeSink{
		sampleRate: sampleRate,
		stopChan:   make(chan struct{}),
		errChan:    make(chan error, 1),
	}
}

// Name implements Sink
func (p *PipeSink) Name() string {
	return SinkPipe
}

// Silent implements Sink
func (p *PipeSink) Silent() bool {
	return p.silentMode.Load()
}

// Backend returns the detected tool, nil before Start or in silent mode
func (p *PipeSink) Backend() *BackendConfig {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.backend
}

// Start implements Sink
func (p *PipeSink) Start(src Source) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running.Load() {
		return nil
	}

	backend, err := DetectBackend(p.sampleRate)
	if err != nil {
		log.Printf("audio: pipe sink: %v, running silent", err)
		p.degrade()
		return nil // Silent mode, not an error
	}
	p.backend = backend

	var writer io.Writer
	if backend.Type == BackendOSS {
		f, err := os.OpenFile(backend.Path, os.O_WRONLY, 0)
		if err != nil {
			log.Printf("audio: pipe sink: open %s: %v, running silent", backend.Path, err)
			p.degrade()
			return nil
		}
		p.ossFile = f
		writer = f
	} else {
		cmd := exec.Command(backend.Path, backend.Args...)
		stdin, err := cmd.StdinPipe()
		if err != nil {
			p.degrade()
			return nil
		}

		if err := cmd.Start(); err != nil {
			stdin.Close()
			log.Printf("audio: pipe sink: start %s: %v, running silent", backend.Name, err)
			p.degrade()
			return nil
		}

		p.cmd = cmd
		p.stdin = stdin
		writer = stdin

		p.wg.Add(1)
		core.Go(p.monitorProcess)
	}

	p.wg.Add(2)
	core.Go(func() { p.pump(writer, src) })
	core.Go(p.monitorPump)

	p.running.Store(true)
	return nil
}

func (p *PipeSink) degrade() {
	p.silentMode.Store(true)
	p.running.Store(true)
}

// pump renders one device buffer per tick and writes it to the pipe
func (p *PipeSink) pump(out io.Writer, src Source) {
	defer p.wg.Done()

	ticker := time.NewTicker(constant.SinkBufferDuration)
	defer ticker.Stop()

	samplesPerTick := p.sampleRate * int(constant.SinkBufferDuration/time.Millisecond) / 1000
	frames := make([][2]float64, samplesPerTick)
	outBytes := make([]byte, samplesPerTick*constant.AudioBytesPerFrame)

	for {
		select {
		case <-p.stopChan:
			return
		case <-ticker.C:
			src.Read(frames)
			floatToBytes(frames, outBytes)

			if _, err := out.Write(outBytes); err != nil {
				select {
				case p.errChan <- fmt.Errorf("%w: %v", ErrPipeClosed, err):
				default:
				}
				return
			}
		}
	}
}

// monitorProcess watches for subprocess exit
func (p *PipeSink) monitorProcess() {
	defer p.wg.Done()

	err := p.cmd.Wait()
	if err != nil && p.running.Load() && !p.silentMode.Load() {
		log.Printf("audio: pipe sink: %s exited: %v", p.backend.Name, err)
		p.silentMode.Store(true)
	}
}

// monitorPump watches for pipe errors
func (p *PipeSink) monitorPump() {
	defer p.wg.Done()

	select {
	case err := <-p.errChan:
		log.Printf("audio: pipe sink: %v", err)
		p.silentMode.Store(true)
	case <-p.stopChan:
	}
}

// Close implements Sink
func (p *PipeSink) Close() error {
	if !p.running.CompareAndSwap(true, false) {
		return nil
	}

	close(p.stopChan)

	if p.stdin != nil {
		p.stdin.Close()
	}

	if p.ossFile != nil {
		p.ossFile.Close()
	}

	if p.cmd != nil && p.cmd.Process != nil {
		p.cmd.Process.Kill()
	}

	p.wg.Wait()
	return nil
}
