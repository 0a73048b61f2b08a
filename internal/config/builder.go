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

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLogFormat sets the structured log encoding.
func (b *ConfigBuilder) WithLogFormat(format LogFormat) *ConfigBuilder {
	b.cfg.LogFormat = format
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithInput sets the reader moves are read from.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.Input = r
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// ShowBoard controls whether the board is printed before each prompt.
func (b *ConfigBuilder) ShowBoard(show bool) *ConfigBuilder {
	b.cfg.ShowBoard = show
	return b
}

// WithScript reads moves from the named file.
func (b *ConfigBuilder) WithScript(path string) *ConfigBuilder {
	b.cfg.ScriptFile = path
	return b
}

// WithPerftHash gives perft a transposition table of up to entries positions.
func (b *ConfigBuilder) WithPerftHash(entries int) *ConfigBuilder {
	b.cfg.PerftHash = entries
	return b
}

// WithRecord writes a record of every game to w, as JSON when asJSON is set.
func (b *ConfigBuilder) WithRecord(w io.Writer, asJSON bool) *ConfigBuilder {
	b.cfg.RecordFile = w
	b.cfg.RecordJSON = asJSON
	return b
}

// WithMaxLineLength sets the maximum line length of text records.
func (b *ConfigBuilder) WithMaxLineLength(length int) *ConfigBuilder {
	b.cfg.MaxLineLength = length
	return b
}

// WithPerft switches to move tree counting at the given depth.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.PerftDepth = depth
	b.cfg.PerftDivide = divide
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.PerftWorkers = n
	return b
}
