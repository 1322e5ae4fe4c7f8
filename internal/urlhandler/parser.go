package urlhandler

import (
	"strings"

	"github.com/aleister1102/legacyurl/internal/common/errorwrapper"
	"github.com/aleister1102/legacyurl/internal/config"
	"github.com/aleister1102/legacyurl/internal/querystring"
	"github.com/rs/zerolog"
)

// ParseOptions controls a single parse.
type ParseOptions struct {
	// DecodeQuery stores the query as a decoded mapping instead of a raw string.
	DecodeQuery bool
	// ForceHostDetection treats a leading "//" as an authority even without a
	// protocol.
	ForceHostDetection bool
}

// Parser parses, formats and resolves legacy URLs. A Parser holds no mutable
// state and is safe for concurrent use.
type Parser struct {
	logger       zerolog.Logger
	queryOptions querystring.ParseOptions
	defaults     ParseOptions
}

var defaultParser = &Parser{
	logger:       zerolog.Nop(),
	queryOptions: querystring.DefaultParseOptions(),
}

// ParserBuilder provides a fluent interface for creating a Parser
type ParserBuilder struct {
	logger zerolog.Logger
	config config.ParserConfig
}

// NewParserBuilder creates a new builder
func NewParserBuilder(logger zerolog.Logger) *ParserBuilder {
	return &ParserBuilder{
		logger: logger.With().Str("component", "URLParser").Logger(),
		config: config.NewDefaultParserConfig(),
	}
}

// WithConfig sets the parser configuration
func (b *ParserBuilder) WithConfig(cfg config.ParserConfig) *ParserBuilder {
	b.config = cfg
	return b
}

// Build creates a new Parser instance
func (b *ParserBuilder) Build() (*Parser, error) {
	policy, err := querystring.ParseDuplicatePolicy(b.config.QueryDuplicates)
	if err != nil {
		return nil, errorwrapper.NewValidationError("query_duplicates", b.config.QueryDuplicates, err.Error())
	}
	if b.config.MaxQueryKeys < 0 {
		return nil, errorwrapper.NewValidationError("max_query_keys", b.config.MaxQueryKeys, "max query keys cannot be negative")
	}

	return &Parser{
		logger: b.logger,
		queryOptions: querystring.ParseOptions{
			Duplicates: policy,
			MaxKeys:    b.config.MaxQueryKeys,
		},
		defaults: ParseOptions{
			DecodeQuery:        b.config.DecodeQuery,
			ForceHostDetection: b.config.ForceHostDetection,
		},
	}, nil
}

// NewParser creates a Parser from cfg.
func NewParser(cfg config.ParserConfig, logger zerolog.Logger) (*Parser, error) {
	return NewParserBuilder(logger).WithConfig(cfg).Build()
}

// ParseDefault parses input with the options the parser was configured with.
func (p *Parser) ParseDefault(input string) (*URL, error) {
	return p.Parse(input, p.defaults)
}

// Parse turns input into a URL record. The only error is
// errorwrapper.ErrInvalidURL (as *errorwrapper.InvalidURLError), raised when
// ASCII-compatible encoding of the hostname empties it or introduces a
// character that cannot appear in a host.
func (p *Parser) Parse(input string, opts ParseOptions) (*URL, error) {
	u := &URL{}
	in := normalize(input)
	rest := in.rest

	if !opts.ForceHostDetection && !in.hasHash && !in.hasAt {
		if matches(simplePathPattern, rest) {
			p.parseSimplePath(u, rest, opts.DecodeQuery)
			return u, nil
		}
	}

	rest, scheme := parseScheme(u, rest)
	rest = parseSlashes(u, rest, opts.ForceHostDetection)

	if hasAuthority(u, scheme) {
		var err error
		rest, err = p.parseAuthority(u, rest, input)
		if err != nil {
			return nil, err
		}
	}

	if !isUnsafe(u.Protocol) {
		rest = autoEscapeString(rest)
	}

	p.splitRemainder(u, rest, opts.DecodeQuery)
	u.Href = Format(u)
	return u, nil
}

// parseSimplePath fills a record for a plain "/path?query" input without
// running the full pipeline. Components are sliced from rest so that bytes
// which are not valid UTF-8 survive unchanged.
func (p *Parser) parseSimplePath(u *URL, rest string, decodeQuery bool) {
	u.Path = StringPtr(rest)
	u.Href = rest

	pathname, search := rest, ""
	if q := strings.IndexByte(rest, '?'); q != -1 {
		pathname, search = rest[:q], rest[q:]
	}
	u.Pathname = StringPtr(pathname)

	switch {
	case search != "":
		u.Search = StringPtr(search)
		if decodeQuery {
			u.Query = Query{Values: querystring.Parse(search[1:], p.queryOptions)}
		} else {
			u.Query = Query{Raw: StringPtr(search[1:])}
		}
	case decodeQuery:
		u.Query = Query{Values: querystring.NewValues()}
	}
}

// Resolve parses base and reference with host detection forced and returns
// the serialized resolution.
func (p *Parser) Resolve(base, reference string) (string, error) {
	b, err := p.Parse(base, ParseOptions{ForceHostDetection: true})
	if err != nil {
		return "", err
	}
	return p.resolveFrom(b, reference)
}

func (p *Parser) resolveFrom(base *URL, reference string) (string, error) {
	ref, err := p.Parse(reference, ParseOptions{ForceHostDetection: true})
	if err != nil {
		return "", err
	}
	return Format(p.ResolveObject(base, ref)), nil
}
