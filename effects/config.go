package effects

import "time"

// Config holds the effect tunables. DefaultConfig matches the values the
// PhotoSlider page was designed with.
//
// ScrollLogEvery is the minimum gap between scroll log lines; zero logs
// every throttled scroll.
type Config struct {
	ScrollInterval   time.Duration `json:"scrollInterval" yaml:"scrollInterval" mapstructure:"scrollInterval" validate:"gte=0"`
	ScrollLogEvery   time.Duration `json:"scrollLogEvery" yaml:"scrollLogEvery" mapstructure:"scrollLogEvery" validate:"gte=0"`
	StaggerDelay     time.Duration `json:"staggerDelay" yaml:"staggerDelay" mapstructure:"staggerDelay" validate:"gte=0"`
	TypingSpeed      time.Duration `json:"typingSpeed" yaml:"typingSpeed" mapstructure:"typingSpeed" validate:"gt=0"`
	TypingDelay      time.Duration `json:"typingDelay" yaml:"typingDelay" mapstructure:"typingDelay" validate:"gte=0"`
	RippleLifetime   time.Duration `json:"rippleLifetime" yaml:"rippleLifetime" mapstructure:"rippleLifetime" validate:"gt=0"`
	LoaderFade       time.Duration `json:"loaderFade" yaml:"loaderFade" mapstructure:"loaderFade" validate:"gte=0"`
	ScrollSpyOffset  float64       `json:"scrollSpyOffset" yaml:"scrollSpyOffset" mapstructure:"scrollSpyOffset" validate:"gte=0"`
	ParallaxRate     float64       `json:"parallaxRate" yaml:"parallaxRate" mapstructure:"parallaxRate" validate:"gte=-1,lte=1"`
	RevealThreshold  float64       `json:"revealThreshold" yaml:"revealThreshold" mapstructure:"revealThreshold" validate:"gte=0,lte=1"`
	RevealRootMargin string        `json:"revealRootMargin" yaml:"revealRootMargin" mapstructure:"revealRootMargin" validate:"required"`
	Caret            string        `json:"caret" yaml:"caret" mapstructure:"caret" validate:"required"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		ScrollInterval:   16 * time.Millisecond,
		ScrollLogEvery:   5 * time.Second,
		StaggerDelay:     100 * time.Millisecond,
		TypingSpeed:      150 * time.Millisecond,
		TypingDelay:      time.Second,
		RippleLifetime:   600 * time.Millisecond,
		LoaderFade:       500 * time.Millisecond,
		ScrollSpyOffset:  100,
		ParallaxRate:     -0.5,
		RevealThreshold:  0.1,
		RevealRootMargin: "0px 0px -50px 0px",
		Caret:            "2px solid #007bff",
	}
}
