package openapi

// NewComponents returns the schemas and responses every API module shares.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"PageRequest": {
				Type: "object",
				Properties: map[string]*Schema{
					"page":      {Type: "integer", Description: "1-based page number"},
					"page_size": {Type: "integer", Description: "Items per page"},
					"search":    {Type: "string", Description: "Case-insensitive name filter"},
				},
			},
			"Error": {
				Type:     "object",
				Required: []string{"error"},
				Properties: map[string]*Schema{
					"error": {Type: "string"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":      ResponseJSON("Invalid request", "Error"),
			"NotFound":        ResponseJSON("Resource not found", "Error"),
			"Conflict":        ResponseJSON("Request conflicts with current state", "Error"),
			"TooManyRequests": ResponseJSON("Limit reached", "Error"),
			"TooLarge":        ResponseJSON("Payload exceeds size limit", "Error"),
			"Unprocessable":   ResponseJSON("Request cannot be applied", "Error"),
		},
	}
}

// AddSchemas merges schemas into the components, replacing same-named entries.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}

// AddResponses merges responses into the components, replacing same-named entries.
func (c *Components) AddResponses(responses map[string]*Response) {
	for name, resp := range responses {
		c.Responses[name] = resp
	}
}
