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

// WithCommand sets the command kind, move token and player.
func (b *ConfigBuilder) WithCommand(kind CommandKind, move, player string) *ConfigBuilder {
	b.cfg.Command.Kind = kind
	b.cfg.Command.Move = move
	b.cfg.Command.Player = player
	return b
}

// WithDataDir selects the file store rooted at dir.
func (b *ConfigBuilder) WithDataDir(dir string) *ConfigBuilder {
	b.cfg.Storage.Kind = StoreFile
	b.cfg.Storage.DataDir = dir
	return b
}

// WithPostgres selects the postgres store.
func (b *ConfigBuilder) WithPostgres(dsn string) *ConfigBuilder {
	b.cfg.Storage.Kind = StorePostgres
	b.cfg.Storage.DSN = dsn
	return b
}

// WithMemoryStore selects the in-memory store.
func (b *ConfigBuilder) WithMemoryStore() *ConfigBuilder {
	b.cfg.Storage.Kind = StoreMemory
	return b
}

// WithReadme sets the document to splice.
func (b *ConfigBuilder) WithReadme(path string) *ConfigBuilder {
	b.cfg.Document.Path = path
	return b
}

// WithStrict makes missing markers fatal.
func (b *ConfigBuilder) WithStrict(strict bool) *ConfigBuilder {
	b.cfg.Document.Strict = strict
	return b
}

// WithRepository sets the owner/name slug used in move links.
func (b *ConfigBuilder) WithRepository(slug string) *ConfigBuilder {
	b.cfg.Document.Repository = slug
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the diagnostics writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
