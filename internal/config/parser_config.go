package config

// ParserConfig configures the URL parser
type ParserConfig struct {
	DecodeQuery        bool   `json:"decode_query" yaml:"decode_query"`
	ForceHostDetection bool   `json:"force_host_detection" yaml:"force_host_detection"`
	QueryDuplicates    string `json:"query_duplicates,omitempty" yaml:"query_duplicates,omitempty" validate:"omitempty,duplicatepolicy"`
	MaxQueryKeys       int    `json:"max_query_keys" yaml:"max_query_keys" validate:"min=0"`
}

// NewDefaultParserConfig creates default parser configuration
func NewDefaultParserConfig() ParserConfig {
	return ParserConfig{
		DecodeQuery:        DefaultParserDecodeQuery,
		ForceHostDetection: DefaultParserForceHostDetection,
		QueryDuplicates:    DefaultParserQueryDuplicates,
		MaxQueryKeys:       DefaultParserMaxQueryKeys,
	}
}
