// Package legacyurl parses, formats and resolves URLs in the lenient legacy
// dialect: a URL becomes a record of optional components, malformed input is
// repaired rather than rejected, and only a hostname that ASCII-compatible
// encoding turns into something unsafe is an error.
package legacyurl

import (
	"github.com/aleister1102/legacyurl/internal/common/errorwrapper"
	"github.com/aleister1102/legacyurl/internal/config"
	"github.com/aleister1102/legacyurl/internal/logger"
	"github.com/aleister1102/legacyurl/internal/querystring"
	"github.com/aleister1102/legacyurl/internal/urlhandler"
	"github.com/rs/zerolog"
)

type (
	URL          = urlhandler.URL
	Query        = urlhandler.Query
	Values       = querystring.Values
	Parser       = urlhandler.Parser
	ParseOptions = urlhandler.ParseOptions
	Config       = config.GlobalConfig
	ParserConfig = config.ParserConfig
	LogConfig    = config.LogConfig
)

var (
	// ErrInvalidURL is returned when a hostname is rejected after
	// ASCII-compatible encoding.
	ErrInvalidURL = errorwrapper.ErrInvalidURL
	// ErrInvalidArgType is returned for arguments of an unsupported type.
	ErrInvalidArgType = errorwrapper.ErrInvalidArgType
	// ErrInvalidConfiguration is returned for configuration that fails validation.
	ErrInvalidConfiguration = errorwrapper.ErrInvalidConfiguration
)

// Parse parses input. With decodeQuery the query is decoded into Values;
// with forceHostDetection a leading "//" always starts an authority.
func Parse(input string, decodeQuery, forceHostDetection bool) (*URL, error) {
	return urlhandler.Parse(input, decodeQuery, forceHostDetection)
}

// Format serializes a record.
func Format(u *URL) string {
	return urlhandler.Format(u)
}

// FormatAny formats a string, URL or *URL, and delegates any other
// fmt.Stringer to its String method.
func FormatAny(v any) (string, error) {
	return urlhandler.FormatAny(v)
}

// Resolve resolves reference against base and serializes the result.
func Resolve(base, reference string) (string, error) {
	return urlhandler.Resolve(base, reference)
}

// ResolveObject resolves reference against base without modifying either.
func ResolveObject(base, reference *URL) *URL {
	return urlhandler.ResolveObject(base, reference)
}

// ResolveObjectAny is ResolveObject for arguments that may be strings.
func ResolveObjectAny(base, reference any) (*URL, error) {
	return urlhandler.ResolveObjectAny(base, reference)
}

// NewValues returns an empty query mapping.
func NewValues() *Values {
	return querystring.NewValues()
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return config.NewDefaultGlobalConfig()
}

// NewParser creates a parser from cfg that logs through log.
func NewParser(cfg ParserConfig, log zerolog.Logger) (*Parser, error) {
	return urlhandler.NewParser(cfg, log)
}

// NewParserFromConfigFile loads and validates the configuration at path (or
// the default locations when path is empty), builds its logger and returns a
// parser using both.
func NewParserFromConfigFile(path string) (*Parser, zerolog.Logger, error) {
	cfg, err := config.LoadGlobalConfig(path, zerolog.Nop())
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, zerolog.Nop(), err
	}

	log, err := logger.New(cfg.LogConfig)
	if err != nil {
		return nil, zerolog.Nop(), errorwrapper.WrapError(err, "failed to build logger")
	}

	p, err := urlhandler.NewParser(cfg.ParserConfig, log)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	log.Debug().
		Bool("decode_query", cfg.ParserConfig.DecodeQuery).
		Str("query_duplicates", cfg.ParserConfig.QueryDuplicates).
		Int("max_query_keys", cfg.ParserConfig.MaxQueryKeys).
		Msg("URL parser initialized")

	return p, log, nil
}
