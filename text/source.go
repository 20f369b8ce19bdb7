package text

import "fmt"

// FontSource represents a loaded font.
// One FontSource backs one GlyphCache; the parsed font and its vectorized
// glyph meshes live exactly as long as the source's cache entry.
//
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	// Font data
	data   []byte
	parsed ParsedFont // Abstracted font interface (pluggable backend)

	// Metadata
	name string

	// Configuration
	config sourceConfig
}

// sourceConfig holds FontSource construction options.
type sourceConfig struct {
	parserName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{parserName: defaultParserName}
}

// SourceOption configures FontSource construction.
type SourceOption func(*sourceConfig)

// WithParser selects a registered font parser backend by name.
// Unknown names fall back to the default backend.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
// Malformed font bytes fail with a wrapped parse error; the caller can
// retry with different bytes.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser := getParser(config.parserName)
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:   dataCopy,
		parsed: parsed,
		config: config,
	}
	s.addr = s // Self-reference for copy detection
	s.name = parsed.Name()
	if s.name == "" {
		s.name = "Unknown Font"
	}

	return s, nil
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parsed returns the parsed font for advanced operations.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

// Data returns the raw font bytes. Shapers that maintain their own parsed
// representation (GoTextShaper) read these. Callers must not mutate the
// returned slice.
func (s *FontSource) Data() []byte {
	s.copyCheck()
	return s.data
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic(fmt.Sprintf("text: FontSource %q must not be copied by value", s.name))
	}
}
