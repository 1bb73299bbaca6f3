package audio

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"os"
	"path/filepath"
)

const (
	sampleRate    = 44100
	envelopeRamp  = 1000
	maxSample     = 32767
	wavHeaderSize = 44
)

// Waveform is the shape of a generated tone
type Waveform int

const (
	Sine Waveform = iota
	Square
	Sawtooth
)

// Tone describes a single generated sound effect
type Tone struct {
	Freq     float64
	Duration float64 // seconds
	Wave     Waveform
	Volume   float64
}

// Cue names a sound effect
type Cue string

const (
	CueClick   Cue = "click"
	CueSuccess Cue = "success"
	CueFail    Cue = "fail"
	CuePop     Cue = "pop"
	CueBGM     Cue = "bgm"
)

// effectTones are the built-in cue sounds
var effectTones = map[Cue]Tone{
	CueClick:   {Freq: 880, Duration: 0.05, Wave: Sine, Volume: 0.6},
	CueSuccess: {Freq: 1046.5, Duration: 0.3, Wave: Sine, Volume: 0.6},
	CueFail:    {Freq: 150, Duration: 0.3, Wave: Sawtooth, Volume: 0.5},
	CuePop:     {Freq: 600, Duration: 0.05, Wave: Sine, Volume: 0.4},
}

// melody is the background loop: C4 E4 G4 C5 G4 E4, in beats
var melody = []struct {
	freq  float64
	beats float64
}{
	{261.63, 1}, {329.63, 1}, {392.0, 1}, {523.25, 2}, {392.0, 1}, {329.63, 1},
}

// Samples renders the tone as 16-bit mono PCM with a linear attack and release
func (t Tone) Samples() []int16 {
	n := int(math.Floor(sampleRate * t.Duration))
	out := make([]int16, n)
	for i := range out {
		ts := float64(i) / sampleRate

		envelope := 1.0
		if i < envelopeRamp {
			envelope = float64(i) / envelopeRamp
		}
		if i > n-envelopeRamp {
			envelope = float64(n-i) / envelopeRamp
		}

		var sample float64
		switch t.Wave {
		case Square:
			if math.Sin(2*math.Pi*t.Freq*ts) > 0 {
				sample = 1
			} else {
				sample = -1
			}
		case Sawtooth:
			sample = 2 * (ts*t.Freq - math.Floor(ts*t.Freq+0.5))
		default:
			sample = math.Sin(2 * math.Pi * t.Freq * ts)
		}

		out[i] = toPCM(sample * t.Volume * envelope)
	}
	return out
}

// MelodySamples renders the background loop with a pluck envelope per note
func MelodySamples() []int16 {
	const bpm = 120
	beat := 60.0 / bpm

	var out []int16
	for _, note := range melody {
		duration := note.beats * beat * 0.5
		n := int(math.Floor(sampleRate * duration))
		for i := 0; i < n; i++ {
			ts := float64(i) / sampleRate
			envelope := math.Exp(-3 * ts / duration)
			out = append(out, toPCM(math.Sin(2*math.Pi*note.freq*ts)*0.3*envelope))
		}
	}
	return out
}

func toPCM(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * maxSample)
}

// WriteWAV writes mono 16-bit PCM samples as a WAV file
func WriteWAV(w io.Writer, samples []int16) error {
	const (
		channels   = 1
		blockAlign = channels * 2
		byteRate   = sampleRate * blockAlign
	)
	dataSize := uint32(len(samples) * blockAlign)

	var buf bytes.Buffer
	buf.Grow(wavHeaderSize + int(dataSize))
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	binary.Write(&buf, binary.LittleEndian, samples)

	_, err := w.Write(buf.Bytes())
	return err
}

// writeEffect renders a cue into dir/<cue>.wav unless it already exists
func writeEffect(dir string, cue Cue, samples func() []int16) (string, error) {
	name := string(cue) + ".wav"
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err == nil {
		return name, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := WriteWAV(f, samples()); err != nil {
		f.Close()
		return "", err
	}
	return name, f.Close()
}
