package ollama

// OllamaAPI defines the interface for the LLM text-generation backend. It is
// an opaque external collaborator: unavailability is a normal condition, not
// an error.
type OllamaAPI interface {
	Generate(prompt string) (*GenerateResponse, error)
	IsAvailable() bool
	Model() string
}

// GenerateRequest is the /api/generate request body.
type GenerateRequest struct {
	Model   string                 `json:"model"`
	Prompt  string                 `json:"prompt"`
	Stream  bool                   `json:"stream"`
	Options map[string]interface{} `json:"options,omitempty"`
}

// GenerateResponse is the /api/generate response body.
type GenerateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// TagsResponse is the /api/tags response body, listing installed models.
type TagsResponse struct {
	Models []TagModel `json:"models"`
}

type TagModel struct {
	Name string `json:"name"`
}
