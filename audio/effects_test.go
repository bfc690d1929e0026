package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		for j := 0; j < n; j++ {
			if buf[j][0] < -1.0 || buf[j][0] > 1.0 {
				t.Fatalf("Sample out of range: %f", buf[j][0])
			}
		}
		if !ok {
			return total
		}
	}
	t.Fatal("Streamer did not terminate")
	return total
}

// TestOscillatorLength verifies an oscillator stops after its duration
func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	if got, want := drain(t, osc), rate.N(100*time.Millisecond); got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave values
func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)
	if !ok || n != 50 {
		t.Fatalf("Expected 50 samples ok, got %d %v", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, v)
		}
	}
}

// TestEnvelopeRamps verifies attack starts silent and release ends near silent
func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // constant 1.0
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	samples := make([][2]float64, 1000)
	n, _ := env.Stream(samples)
	if n != 1000 {
		t.Fatalf("Expected 1000 samples, got %d", n)
	}

	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[500][0] != 1.0 {
		t.Errorf("Expected full sustain, got %f", samples[500][0])
	}
	if samples[999][0] > 0.02 {
		t.Errorf("Expected near-silent tail, got %f", samples[999][0])
	}
}

// TestSoundEffectsTerminate verifies every effect is finite
func TestSoundEffectsTerminate(t *testing.T) {
	cfg := DefaultAudioConfig()

	for st := SoundType(0); st < soundTypeCount; st++ {
		s := GetSoundEffect(st, cfg)
		if s == nil {
			t.Fatalf("Expected streamer for sound type %d", st)
		}
		if drain(t, s) == 0 {
			t.Errorf("Sound type %d produced no samples", st)
		}
	}

	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("Expected nil for unknown sound type")
	}
}

// TestZeroVolumeIsSilent verifies muted effect volume yields silence
func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	s := CreateChimeSound(cfg)
	buf := make([][2]float64, 256)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("Expected silence, got %f at %d", buf[i][0], i)
		}
	}
}
