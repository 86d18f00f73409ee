package llm

// ChatConfig holds everything the chat client needs. The credential is
// injected here explicitly so tests and callers never depend on ambient
// state (files, environment) inside the client.
type ChatConfig struct {
	Endpoint    string
	Model       string
	Credential  string
	Temperature *float64 // nil omits the field from the request
	TimeoutMs   int      // 0 relies on the http.Client default
}

// DefaultEndpoint is the hosted chat-completions endpoint used when the
// config file does not override it.
const DefaultEndpoint = "https://api.openai.com/v1/chat/completions"

// DefaultModel is the model requested when the config file does not
// override it.
const DefaultModel = "gpt-4o-mini"

// DefaultChatConfig returns a ChatConfig with the fixed endpoint and
// model and no credential.
func DefaultChatConfig() ChatConfig {
	return ChatConfig{
		Endpoint: DefaultEndpoint,
		Model:    DefaultModel,
	}
}
