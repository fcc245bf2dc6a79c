package reverb

import "github.com/cwbudde/algo-reverb/dsp/core"

// Port describes one input or output of a unit as a host sees it. Control
// ports carry a range and a default; audio ports are per-sample buffers.
type Port struct {
	Name    string
	Audio   bool
	Output  bool
	Default float64
	Min     float64
	Max     float64
}

// Clamp limits a control value to the port range. NaN yields the default.
func (p Port) Clamp(v float64) float64 {
	return core.ClampOrDefault(v, p.Min, p.Max, p.Default)
}

// Default hints resolve to fixed points inside the range.
func hintLow(min, max float64) float64  { return 0.75*min + 0.25*max }
func hintMid(min, max float64) float64  { return 0.5*min + 0.5*max }
func hintHigh(min, max float64) float64 { return 0.25*min + 0.75*max }

func control(name string, min, max float64, hint func(min, max float64) float64) Port {
	return Port{Name: name, Default: hint(min, max), Min: min, Max: max}
}

func audioIn(name string, min, max float64) Port {
	return Port{Name: name, Audio: true, Min: min, Max: max}
}

func audioOut(name string) Port {
	return Port{Name: name, Audio: true, Output: true}
}

// Control port indices.
const (
	jvrevBandwidth = 1
	jvrevT60       = 2
	jvrevBlend     = 3

	plateBandwidth = 1
	plateTail      = 2
	plateDamping   = 3
	plateBlend     = 4

	plateX2Bandwidth = 2
	plateX2Tail      = 3
	plateX2Damping   = 4
	plateX2Blend     = 5
)

var jvrevPorts = [...]Port{
	{Name: "in", Audio: true},
	control("bandwidth", 0, 1, hintMid),
	control("t60 (s)", 0, 5.6, hintMid),
	control("blend", 0, 1, hintLow),
	audioOut("out.l"),
	audioOut("out.r"),
}

var platePorts = [...]Port{
	audioIn("in", -1, 1),
	control("bandwidth", 0, 1, hintHigh),
	control("tail", 0, 1, hintMid),
	control("damping", 0, 1, hintLow),
	control("blend", 0, 1, hintLow),
	audioOut("out.l"),
	audioOut("out.r"),
}

var plateX2Ports = [...]Port{
	audioIn("in.l", -1, 1),
	audioIn("in.r", -1, 1),
	control("bandwidth", 0.005, 0.999, hintHigh),
	control("tail", 0, 1, hintMid),
	control("damping", 0.0005, 1, hintLow),
	control("blend", 0, 1, hintLow),
	audioOut("out.l"),
	audioOut("out.r"),
}

// JVRevPorts returns the JVRev port table in host order.
func JVRevPorts() []Port { return append([]Port(nil), jvrevPorts[:]...) }

// PlatePorts returns the Plate port table in host order.
func PlatePorts() []Port { return append([]Port(nil), platePorts[:]...) }

// PlateX2Ports returns the PlateX2 port table in host order.
func PlateX2Ports() []Port { return append([]Port(nil), plateX2Ports[:]...) }
