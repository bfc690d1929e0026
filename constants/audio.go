package constants

import "time"

// Audio output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume is the master gain when no override is set
	DefaultMasterVolume = 0.5
)

// Keystroke Sound Timing
const (
	KeystrokeSoundDuration = 30 * time.Millisecond
	KeystrokeSoundAttack   = 2 * time.Millisecond
	KeystrokeSoundRelease  = 20 * time.Millisecond
)

// Coin Sound Timing
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 280 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 200 * time.Millisecond
)

// Chime Sound Timing
const (
	ChimeSoundDuration           = 600 * time.Millisecond
	ChimeSoundAttack             = 5 * time.Millisecond
	ChimeSoundFundamentalRelease = 550 * time.Millisecond
	ChimeSoundOvertoneRelease    = 200 * time.Millisecond
)
