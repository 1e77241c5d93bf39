package chime

import (
	"encoding/binary"
	"testing"
)

func TestSynthesizeLength(t *testing.T) {
	melody := []note{{440, 0.1}, {880, 0.2}}
	pcm := synthesize(melody)

	wantSamples := int(0.1*sampleRate) + int(0.2*sampleRate)
	if len(pcm) != wantSamples*2 {
		t.Fatalf("pcm length %d, want %d (16-bit mono)", len(pcm), wantSamples*2)
	}
}

func TestSynthesizeStartsSilent(t *testing.T) {
	// The attack window keeps the first samples near zero, so the tone
	// starts without a click.
	pcm := synthesize([]note{{440, 0.1}})

	v := int16(binary.LittleEndian.Uint16(pcm[:2]))
	if v != 0 {
		t.Fatalf("first sample %d, want 0", v)
	}
}

func TestSynthesizeLastNoteDecays(t *testing.T) {
	pcm := synthesize(phaseMelody)

	// Peak of the final 10% of the tone must sit well below the overall
	// peak — the tail rings out instead of cutting off.
	samples := len(pcm) / 2
	peak := func(from, to int) int16 {
		var max int16
		for i := from; i < to; i++ {
			v := int16(binary.LittleEndian.Uint16(pcm[i*2 : i*2+2]))
			if v < 0 {
				v = -v
			}
			if v > max {
				max = v
			}
		}
		return max
	}

	overall := peak(0, samples)
	tail := peak(samples*9/10, samples)
	if overall == 0 {
		t.Fatal("tone is silent")
	}
	if tail >= overall/4 {
		t.Fatalf("tail peak %d not decayed (overall peak %d)", tail, overall)
	}
}

func TestMelodiesRender(t *testing.T) {
	for name, melody := range map[string][]note{
		"phase":      phaseMelody,
		"completion": completionMelody,
	} {
		if pcm := synthesize(melody); len(pcm) == 0 {
			t.Errorf("%s melody rendered no audio", name)
		}
	}
}
