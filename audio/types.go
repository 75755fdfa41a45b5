package audio

import "github.com/pkg/errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundStart   SoundType = iota // Session start chime
	SoundPass                     // Traffic car passed
	SoundLevelUp                  // Difficulty level reached
	SoundCrash                    // Collision, session over
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"start", "pass", "level_up", "crash"}

// String returns the config key of the sound
func (st SoundType) String() string {
	if st < 0 || st >= soundTypeCount {
		return "unknown"
	}
	return soundNames[st]
}

// soundTypeByName maps config keys back to sound types
func soundTypeByName(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// ErrNotInitialized is returned when playback is requested before the speaker is up
var ErrNotInitialized = errors.New("audio: speaker not initialized")
