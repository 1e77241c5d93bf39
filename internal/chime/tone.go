package chime

import (
	"encoding/binary"
	"math"
)

// Audio parameters for the synthesized tones.
const (
	sampleRate   = 24000
	channelCount = 1
)

// note is one segment of a melody.
type note struct {
	freq     float64 // Hz
	duration float64 // seconds
}

// The phase chime: a rising C5-E5-G5 arpeggio with the last note ringing
// out. Matches the app's signature "done" sound.
var phaseMelody = []note{
	{523.25, 0.2}, // C5
	{659.25, 0.2}, // E5
	{783.99, 1.1}, // G5, decays
}

// The completion chime repeats the arpeggio and lands on a high C.
var completionMelody = []note{
	{523.25, 0.15},
	{659.25, 0.15},
	{783.99, 0.15},
	{1046.50, 1.2}, // C6, decays
}

// synthesize renders a melody to 16-bit little-endian mono PCM. Every
// note after the first starts at the previous note's phase-free boundary;
// the final note gets an exponential decay so the chime rings out instead
// of clicking off.
func synthesize(melody []note) []byte {
	total := 0
	for _, n := range melody {
		total += int(n.duration * sampleRate)
	}

	pcm := make([]byte, 0, total*2)
	const amplitude = 0.5

	for ni, n := range melody {
		samples := int(n.duration * sampleRate)
		last := ni == len(melody)-1
		for i := 0; i < samples; i++ {
			t := float64(i) / sampleRate
			gain := amplitude
			if last {
				// Exponential ramp down to near silence, like the
				// original web app's gain envelope.
				gain = amplitude * math.Pow(0.002, t/n.duration)
			}
			// Short attack/release windows keep note edges click-free.
			edge := n.duration - t
			if t < 0.005 {
				gain *= t / 0.005
			} else if !last && edge < 0.005 {
				gain *= edge / 0.005
			}
			v := int16(gain * math.Sin(2*math.Pi*n.freq*t) * math.MaxInt16)
			pcm = binary.LittleEndian.AppendUint16(pcm, uint16(v))
		}
	}
	return pcm
}
