package toolbox

// The manifest is the serializable description of the catalog, in the shape
// of a toolbox tools file: one entry per operation with its parameter
// contract. It is what GET /api/toolset returns and what an agent runtime
// loads to know which tools exist.

// ManifestParameter describes one operation parameter.
type ManifestParameter struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
	Required    bool   `json:"required" yaml:"required"`
}

// ManifestTool describes one catalog operation.
type ManifestTool struct {
	Name        string              `json:"name" yaml:"name"`
	Description string              `json:"description" yaml:"description"`
	Parameters  []ManifestParameter `json:"parameters" yaml:"parameters,omitempty"`
}

// Manifest is the full catalog description.
type Manifest struct {
	Tools []ManifestTool `json:"tools" yaml:"tools"`
}

// Manifest returns the catalog description in declaration order.
func (t *Toolbox) Manifest() Manifest {
	tools := make([]ManifestTool, 0, operationCount)
	for _, op := range Operations() {
		spec := catalog[op]
		params := make([]ManifestParameter, 0, len(spec.params))
		for _, p := range spec.params {
			params = append(params, ManifestParameter{
				Name:        p.name,
				Type:        "string",
				Description: p.description,
				Required:    p.required,
			})
		}
		tools = append(tools, ManifestTool{
			Name:        spec.name,
			Description: spec.description,
			Parameters:  params,
		})
	}
	return Manifest{Tools: tools}
}
