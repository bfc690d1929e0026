package audio

import (
	"testing"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}

	for st := SoundType(0); st < soundTypeCount; st++ {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("Expected volume for sound type %d to be set", st)
		}
	}
}

// TestLoadAudioConfigFromEnv verifies environment overrides
func TestLoadAudioConfigFromEnv(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "80")

	cfg := LoadAudioConfig()
	if cfg.Enabled {
		t.Error("Expected Enabled=false from env")
	}
	if cfg.MasterVolume != 0.8 {
		t.Errorf("Expected master volume 0.8, got %f", cfg.MasterVolume)
	}
}

// TestLoadAudioConfigClampsVolume verifies out-of-range volume is clamped
func TestLoadAudioConfigClampsVolume(t *testing.T) {
	tests := []struct {
		env  string
		want float64
	}{
		{"150", 1.0},
		{"-20", 0.0},
		{"garbage", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(EnvMasterVolume, tt.env)
			cfg := LoadAudioConfig()
			if cfg.MasterVolume != tt.want {
				t.Errorf("Expected %f, got %f", tt.want, cfg.MasterVolume)
			}
		})
	}
}
