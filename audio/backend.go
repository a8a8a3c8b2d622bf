package audio

// Node is a vertex in the signal graph
type Node interface {
	// Connect routes this node's output into dst's input
	Connect(dst Node)

	// ConnectParam adds this node's output to p as modulation
	ConnectParam(p Param)

	// Disconnect removes every outgoing connection
	Disconnect()
}

// Param is an automatable node parameter; times are context seconds
type Param interface {
	// Value returns the automated value at the current context time
	Value() float64
	SetValueAt(v, t float64)
	LinearRampTo(v, t float64)

	// ExponentialRampTo ramps toward v; v and the value it starts from must be positive
	ExponentialRampTo(v, t float64)

	// CancelAndHold drops automation after t and holds the value reached at t
	CancelAndHold(t float64)
}

// ToneGenerator is a periodic oscillator
type ToneGenerator interface {
	Node
	Waveform() Waveform
	Frequency() Param

	// Detune offsets the frequency in cents
	Detune() Param

	Start(at float64)
	Stop(at float64)
}

// Envelope is a gain stage
type Envelope interface {
	Node
	Gain() Param
}

// Filter is a biquad stage
type Filter interface {
	Node
	Kind() FilterKind
	Frequency() Param
	Q() Param
}

// Convolver applies an impulse response
type Convolver interface {
	Node
	Impulse() *Buffer
}

// Backend creates nodes and owns the output device
// Node factories and automation are called from one goroutine; rendering may run on another
type Backend interface {
	SampleRate() int

	// Now returns context time in seconds
	Now() float64

	// Destination is the node feeding the output device
	Destination() Node

	NewToneGenerator(w Waveform) ToneGenerator
	NewEnvelope() Envelope
	NewFilter(kind FilterKind) Filter
	NewConvolution(impulse *Buffer) (Convolver, error)

	// Resume starts or resumes output; failures leave the context suspended
	Resume() error
	State() State
	Close() error
}
