package gemini

// Request and response bodies of models/{model}:generateContent.

type wireRequest struct {
	SystemInstruction *wireContent    `json:"system_instruction,omitempty"`
	Contents          []wireContent   `json:"contents"`
	Tools             []wireTool      `json:"tools,omitempty"`
	GenerationConfig  *wireGeneration `json:"generationConfig,omitempty"`
}

type wireTool struct {
	FunctionDeclarations []wireDeclaration `json:"functionDeclarations,omitempty"`
}

type wireDeclaration struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters,omitempty"`
}

type wireContent struct {
	Role  string     `json:"role,omitempty"`
	Parts []wirePart `json:"parts"`
}

type wirePart struct {
	Text             string            `json:"text,omitempty"`
	FunctionCall     *wireCall         `json:"functionCall,omitempty"`
	FunctionResponse *wireCallResponse `json:"functionResponse,omitempty"`
}

type wireCall struct {
	ID   string                 `json:"id,omitempty"`
	Name string                 `json:"name"`
	Args map[string]interface{} `json:"args"`
}

type wireCallResponse struct {
	ID       string      `json:"id,omitempty"`
	Name     string      `json:"name"`
	Response interface{} `json:"response"`
}

type wireGeneration struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type wireResponse struct {
	Candidates []struct {
		Content wireContent `json:"content"`
	} `json:"candidates"`
	UsageMetadata *struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata,omitempty"`
}

func toWire(req *Request) wireRequest {
	out := wireRequest{Contents: make([]wireContent, 0, len(req.Messages))}
	if req.SystemInstruction != nil {
		out.SystemInstruction = &wireContent{Parts: toWireParts(req.SystemInstruction.Parts)}
	}
	for _, msg := range req.Messages {
		out.Contents = append(out.Contents, wireContent{Role: msg.Role, Parts: toWireParts(msg.Parts)})
	}

	if len(req.Tools) > 0 {
		decls := make([]wireDeclaration, 0, len(req.Tools))
		for _, t := range req.Tools {
			decls = append(decls, wireDeclaration{Name: t.Name, Description: t.Description, Parameters: t.Parameters})
		}
		out.Tools = []wireTool{{FunctionDeclarations: decls}}
	}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		out.GenerationConfig = &wireGeneration{Temperature: req.Temperature, MaxOutputTokens: req.MaxTokens}
	}
	return out
}

func toWireParts(parts []Part) []wirePart {
	out := make([]wirePart, 0, len(parts))
	for _, p := range parts {
		wp := wirePart{Text: p.Text}
		if fc := p.FunctionCall; fc != nil {
			wp.FunctionCall = &wireCall{ID: fc.ID, Name: fc.Name, Args: fc.Args}
		}
		if fr := p.FunctionResponse; fr != nil {
			wp.FunctionResponse = &wireCallResponse{ID: fr.ID, Name: fr.Name, Response: asObject(fr.Response)}
		}
		out = append(out, wp)
	}
	return out
}

// asObject wraps scalars: functionResponse.response must be a JSON object.
func asObject(v interface{}) interface{} {
	if m, ok := v.(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{"result": v}
}

func fromWire(resp *wireResponse) *Response {
	out := &Response{Content: Content{Role: RoleModel}, Usage: &Usage{}}
	if u := resp.UsageMetadata; u != nil {
		out.Usage = &Usage{
			InputTokens:  u.PromptTokenCount,
			OutputTokens: u.CandidatesTokenCount,
			TotalTokens:  u.TotalTokenCount,
		}
	}
	if len(resp.Candidates) == 0 {
		return out
	}

	content := resp.Candidates[0].Content
	if content.Role != "" {
		out.Content.Role = content.Role
	}
	for _, wp := range content.Parts {
		p := Part{Text: wp.Text}
		if fc := wp.FunctionCall; fc != nil {
			p.FunctionCall = &FunctionCall{ID: fc.ID, Name: fc.Name, Args: fc.Args}
		}
		if fr := wp.FunctionResponse; fr != nil {
			p.FunctionResponse = &FunctionResponse{ID: fr.ID, Name: fr.Name, Response: fr.Response}
		}
		out.Content.Parts = append(out.Content.Parts, p)
	}
	return out
}
