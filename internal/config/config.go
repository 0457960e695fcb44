// Package config handles editor configuration loading and management.
package config

// Config holds all editor settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	UI       UIConfig       `yaml:"ui"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// Size is one of "small", "medium", "large".
	Size string `yaml:"size"`
}

// CameraConfig holds the camera rig settings.
type CameraConfig struct {
	// FovDegrees is the vertical field of view.
	FovDegrees float32 `yaml:"fov_degrees"`
	// DragSensitivity scales pixel deltas into world units.
	DragSensitivity float32 `yaml:"drag_sensitivity"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
		},
		UI: UIConfig{
			Size: "medium",
		},
		Camera: CameraConfig{
			FovDegrees:      70,
			DragSensitivity: 0.05,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
