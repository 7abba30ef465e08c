package types

// RenderConfig holds settings for the render stage.
type RenderConfig struct {
	// Width is the output PNG width in pixels (default 200).
	Width int `json:"width" yaml:"width"`

	// Height is the output PNG height in pixels (default 200).
	Height int `json:"height" yaml:"height"`
}

// HistoryConfig holds settings for the run history store.
type HistoryConfig struct {
	// Dir is the directory holding the history database (default ".svgbatch").
	Dir string `json:"dir" yaml:"dir"`

	// MaxRuns is the default maximum number of runs listed (default 20).
	MaxRuns int `json:"max_runs" yaml:"max_runs"`
}

// Config groups all stage configurations for the tool.
type Config struct {
	Render  RenderConfig  `json:"render" yaml:"render"`
	History HistoryConfig `json:"history" yaml:"history"`
}
