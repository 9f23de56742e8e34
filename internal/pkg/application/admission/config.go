package admission

import "time"

type Config struct {
	RateLimitCount           int `yaml:"rateLimitCount"`
	RateLimitWindowSeconds   int `yaml:"rateLimitWindowSeconds"`
	SuppressionThreshold     int `yaml:"suppressionThreshold"`
	SuppressionWindowSeconds int `yaml:"suppressionWindowSeconds"`
	SuppressionTimeSeconds   int `yaml:"suppressionTimeSeconds"`
}

func DefaultConfig() *Config {
	return &Config{
		RateLimitCount:           5,
		RateLimitWindowSeconds:   60,
		SuppressionThreshold:     3,
		SuppressionWindowSeconds: 60,
		SuppressionTimeSeconds:   60,
	}
}

func (c Config) RateLimitWindow() time.Duration {
	return secondsOrDefault(c.RateLimitWindowSeconds, 60)
}

func (c Config) SuppressionWindow() time.Duration {
	return secondsOrDefault(c.SuppressionWindowSeconds, 60)
}

func (c Config) SuppressionTime() time.Duration {
	return secondsOrDefault(c.SuppressionTimeSeconds, 60)
}

func secondsOrDefault(n, def int) time.Duration {
	if n <= 0 {
		n = def
	}
	return time.Duration(n) * time.Second
}
