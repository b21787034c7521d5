package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundHit     // melee weapon connects with an enemy
	SoundSword   // melee swing tick
	SoundReflect // bullet parried by a swing
	SoundImpact  // bullet destroyed
	// Item sounds
	SoundDrop
	SoundPickup
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundHit:     "audio/sfx/hit.wav",
			SoundSword:   "audio/sfx/sword_fire.wav",
			SoundReflect: "audio/sfx/reflect.wav",
			SoundImpact:  "audio/sfx/impact5.wav",
			SoundDrop:    "audio/sfx/drop.wav",
			SoundPickup:  "audio/sfx/pickup.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit:    1.5,
			SoundSword:  0.6,
			SoundImpact: 0.8,
		},
	}
}
