package ollama

// OllamaApiClientMock embeds mocked logic for the ollama api client
type OllamaApiClientMock struct {
	Available bool
	Canned    string
}

// NewOllamaApiClientMock creates a new instance of OllamaApiClientMock
func NewOllamaApiClientMock() *OllamaApiClientMock {
	return &OllamaApiClientMock{
		Available: true,
		Canned:    "Mocked food assistant answer.",
	}
}

func (c *OllamaApiClientMock) Generate(prompt string) (*GenerateResponse, error) {
	return &GenerateResponse{
		Model:    c.Model(),
		Response: c.Canned,
		Done:     true,
	}, nil
}

func (c *OllamaApiClientMock) IsAvailable() bool {
	return c.Available
}

func (c *OllamaApiClientMock) Model() string {
	return "mock-model"
}
