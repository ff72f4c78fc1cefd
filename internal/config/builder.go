package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithClearLines sets the number of blank lines printed before each board.
func (b *ConfigBuilder) WithClearLines(n int) *ConfigBuilder {
	b.cfg.Output.ClearLines = n
	return b
}

// WithCapturedPools controls whether captured pieces are listed.
func (b *ConfigBuilder) WithCapturedPools(show bool) *ConfigBuilder {
	b.cfg.Output.ShowCaptured = show
	return b
}

// WithCaptureMessages controls whether captures are logged.
func (b *ConfigBuilder) WithCaptureMessages(enabled bool) *ConfigBuilder {
	b.cfg.Game.SuppressCaptureMessages = !enabled
	return b
}

// WithMaxRetrievalAttempts bounds retrieval re-prompts. Zero means no bound.
func (b *ConfigBuilder) WithMaxRetrievalAttempts(n int) *ConfigBuilder {
	b.cfg.Game.MaxRetrievalAttempts = n
	return b
}

// WithStopOnError stops replayed scripts at their first refused command.
func (b *ConfigBuilder) WithStopOnError(stop bool) *ConfigBuilder {
	b.cfg.Game.StopOnError = stop
	return b
}

// WithWorkers sets the number of concurrent replay workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
