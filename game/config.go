package game

import (
	"galaxyviz/config"
	"galaxyviz/galaxy"
)

// paramsFromConfig maps the loaded configuration onto the live parameter
// set the panel edits and the animator reads.
func paramsFromConfig(cfg *config.Config) galaxy.Params {
	return galaxy.Params{
		ArmCount:      cfg.Galaxy.ArmCount,
		ArmWidth:      float32(cfg.Galaxy.ArmWidth),
		SpiralFactor:  float32(cfg.Galaxy.SpiralFactor),
		ParticleCount: cfg.Galaxy.ParticleCount,
		Size:          float32(cfg.Galaxy.Size),
		Randomness:    float32(cfg.Galaxy.Randomness),
		ColorShift:    float32(cfg.Galaxy.ColorShift),
		CoreColor:     colorFromConfig(cfg.Galaxy.CoreColor),
		ArmColor:      colorFromConfig(cfg.Galaxy.ArmColor),

		RotationSpeed:   float32(cfg.Animation.RotationSpeed),
		PulseIntensity:  float32(cfg.Animation.PulseIntensity),
		AudioReactivity: float32(cfg.Animation.AudioReactivity),
		CoreSize:        float32(cfg.Animation.CoreSize),
		CoreIntensity:   float32(cfg.Animation.CoreIntensity),
		DustDensity:     float32(cfg.Animation.DustDensity),
	}
}

func colorFromConfig(c config.ColorConfig) galaxy.Color {
	return galaxy.Color{R: float32(c.R), G: float32(c.G), B: float32(c.B)}
}
