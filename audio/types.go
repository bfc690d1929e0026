package audio

// SoundType identifies a feedback sound
type SoundType int

const (
	SoundKeystroke SoundType = iota // Manual line written
	SoundCoin                       // Coder hired or hype bought
	SoundChime                      // Upgrade bought
	soundTypeCount
)
