package reverb

import "math"

const (
	// jvrevWetScale shapes the blend control into the JVRev wet gain.
	jvrevWetScale = 0.38

	// plateDecayScale caps the plate loop gain below one.
	plateDecayScale = 0.749

	// Blend control exponents; a linear pot sounds all-wet too early.
	plateBlendExponent   = 1.6
	plateX2BlendExponent = 1.53
)

func bandwidthCoefficient(bandwidth float64) float64 {
	bw := 0.005 + 0.994*bandwidth
	return mathExp(-math.Pi * (1 - bw))
}

func dampingCoefficient(damping float64) float64 {
	return mathExp(-math.Pi * (0.0005 + 0.9995*damping))
}

func jvrevWet(blend float64) float64 {
	return jvrevWetScale * blend * blend
}

func plateDecay(tail float64) float64 {
	return plateDecayScale * tail
}

func plateBlendGain(blend, exponent float64) float64 {
	if blend <= 0 {
		return 0
	}
	return mathPow(blend, exponent)
}
