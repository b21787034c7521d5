package config

// PlayerConfig contains player body and combat stats
type PlayerConfig struct {
	Width    int
	Height   int
	Health   int
	Strength float64
	Shield   int
}

// EnemyConfig contains defaults for enemies spawned without explicit stats
type EnemyConfig struct {
	Health         int
	ShootInterval  int // frames between shots
	HurtFlashTicks int // frames an enemy stays flagged hurt
	CorpseTicks    int // frames a dead enemy stays drawn before removal
}

var Player PlayerConfig
var Enemy EnemyConfig

func init() {
	Player = PlayerConfig{
		Width:    48,
		Height:   64,
		Health:   100,
		Strength: 1,
		Shield:   0,
	}

	Enemy = EnemyConfig{
		Health:         100,
		ShootInterval:  90,
		HurtFlashTicks: 12,
		CorpseTicks:    30,
	}
}
