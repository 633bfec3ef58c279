package config

// ClassifierConfig represents the configuration for the classifier provider
type ClassifierConfig struct {
	Provider  string
	ModelPath string
}

// ServerConfig represents the configuration for the serving surface
type ServerConfig struct {
	Mode          string
	ListenAddress string
}

// SMTPConfig represents the configuration for the SMTP gateway
type SMTPConfig struct {
	ListenAddress   string
	RejectThreshold int
	VerdictHeader   string
	ScoreHeader     string
	ReasonHeader    string
	UpstreamAddress string
	UpstreamPort    int
	UpstreamEnabled bool
}

// MessageConfig represents message validation limits
type MessageConfig struct {
	MinLength   int
	MaxBodySize int
}

// BedrockConfig represents the configuration for Amazon Bedrock
type BedrockConfig struct {
	Region      string
	ModelID     string
	MaxTokens   int
	Temperature float32
	TopP        float32
	MaxBodySize int
}

// GeminiConfig represents the configuration for Google Gemini
type GeminiConfig struct {
	APIKey      string
	ModelName   string
	MaxTokens   int
	Temperature float32
	TopP        float32
	MaxBodySize int
}

// OpenAIConfig represents the configuration for OpenAI
type OpenAIConfig struct {
	APIKey      string
	ModelName   string
	MaxTokens   int
	Temperature float32
	TopP        float32
	MaxBodySize int
}

// ReputationConfig represents the configuration for URL reputation lookups
type ReputationConfig struct {
	APIKey         string
	TrustedDomains []string
}

// GetClassifier returns the classifier configuration
func (c *Config) GetClassifier() ClassifierConfig {
	return ClassifierConfig{
		Provider:  c.GetString("classifier.provider"),
		ModelPath: c.GetString("classifier.model_path"),
	}
}

// GetServer returns the server configuration
func (c *Config) GetServer() ServerConfig {
	return ServerConfig{
		Mode:          c.GetString("server.mode"),
		ListenAddress: c.GetString("server.listen_address"),
	}
}

// GetSMTP returns the SMTP gateway configuration
func (c *Config) GetSMTP() SMTPConfig {
	return SMTPConfig{
		ListenAddress:   c.GetString("server.smtp.listen_address"),
		RejectThreshold: c.GetInt("server.smtp.reject_threshold"),
		VerdictHeader:   c.GetString("server.smtp.headers.verdict"),
		ScoreHeader:     c.GetString("server.smtp.headers.score"),
		ReasonHeader:    c.GetString("server.smtp.headers.reason"),
		UpstreamAddress: c.GetString("server.smtp.upstream_address"),
		UpstreamPort:    c.GetInt("server.smtp.upstream_port"),
		UpstreamEnabled: c.GetBool("server.smtp.upstream_enabled"),
	}
}

// GetMessage returns the message validation configuration
func (c *Config) GetMessage() MessageConfig {
	return MessageConfig{
		MinLength:   c.GetInt("message.min_length"),
		MaxBodySize: c.GetInt("message.max_body_size"),
	}
}

// GetBedrock returns the Bedrock configuration
func (c *Config) GetBedrock() BedrockConfig {
	return BedrockConfig{
		Region:      c.GetString("bedrock.region"),
		ModelID:     c.GetString("bedrock.model_id"),
		MaxTokens:   c.GetInt("bedrock.max_tokens"),
		Temperature: float32(c.GetFloat64("bedrock.temperature")),
		TopP:        float32(c.GetFloat64("bedrock.top_p")),
		MaxBodySize: c.GetInt("bedrock.max_body_size"),
	}
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() GeminiConfig {
	return GeminiConfig{
		APIKey:      c.GetString("gemini.api_key"),
		ModelName:   c.GetString("gemini.model_name"),
		MaxTokens:   c.GetInt("gemini.max_tokens"),
		Temperature: float32(c.GetFloat64("gemini.temperature")),
		TopP:        float32(c.GetFloat64("gemini.top_p")),
		MaxBodySize: c.GetInt("gemini.max_body_size"),
	}
}

// GetOpenAI returns the OpenAI configuration
func (c *Config) GetOpenAI() OpenAIConfig {
	return OpenAIConfig{
		APIKey:      c.GetString("openai.api_key"),
		ModelName:   c.GetString("openai.model_name"),
		MaxTokens:   c.GetInt("openai.max_tokens"),
		Temperature: float32(c.GetFloat64("openai.temperature")),
		TopP:        float32(c.GetFloat64("openai.top_p")),
		MaxBodySize: c.GetInt("openai.max_body_size"),
	}
}

// GetReputation returns the URL reputation configuration
func (c *Config) GetReputation() ReputationConfig {
	return ReputationConfig{
		APIKey:         c.GetString("reputation.api_key"),
		TrustedDomains: c.GetStringSlice("reputation.trusted_domains"),
	}
}
