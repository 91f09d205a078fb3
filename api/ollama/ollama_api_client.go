package ollama

import (
	"strings"
	"time"

	"compass-server/api"
)

// OllamaApiClient embeds the common HTTPClient
type OllamaApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties

	model       string
	probeClient *api.HTTPClient
}

// NewOllamaApiClient creates a new instance of OllamaApiClient. The generate
// client carries the configured timeout; availability probes use a short one
// so a down Ollama never stalls a chat request.
func NewOllamaApiClient(httpClient *api.HTTPClient, model string) *OllamaApiClient {
	return &OllamaApiClient{
		HTTPClient:  httpClient,
		model:       model,
		probeClient: api.NewHTTPClient(httpClient.BaseURL, 2*time.Second),
	}
}

// Generate asks the model for a completion of the prompt.
func (c *OllamaApiClient) Generate(prompt string) (*GenerateResponse, error) {
	request := GenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Options: map[string]interface{}{
			"temperature": 0.7,
			"num_predict": 250,
		},
	}
	var response GenerateResponse
	if err := c.Request("POST", "/api/generate", nil, request, &response); err != nil {
		return nil, err
	}
	response.Response = cleanResponseText(response.Response)
	return &response, nil
}

// IsAvailable probes the tags endpoint and checks the configured model is
// installed.
func (c *OllamaApiClient) IsAvailable() bool {
	var tags TagsResponse
	if err := c.probeClient.Request("GET", "/api/tags", nil, nil, &tags); err != nil {
		return false
	}
	for _, m := range tags.Models {
		if strings.Contains(m.Name, c.model) {
			return true
		}
	}
	return false
}

func (c *OllamaApiClient) Model() string {
	return c.model
}

// cleanResponseText strips the preamble some models prepend to their answer.
func cleanResponseText(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.LastIndex(strings.ToLower(text), "response:"); i >= 0 {
		text = strings.TrimSpace(text[i+len("response:"):])
	}
	return text
}
