package decision

import (
	"github.com/invopop/jsonschema"
)

// Schema identity. Bump the version whenever the Analysis shape changes.
const (
	AnalysisSchemaName    = "decision_analysis"
	AnalysisSchemaVersion = "1.0.0"
)

// AnalysisSchema returns the JSON schema the model backend is constrained
// to when producing an Analysis. The schema is reflected from the Analysis
// type so the wire contract and the Go type cannot drift apart.
func AnalysisSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		ExpandedStruct:            true,
	}
	schema := reflector.Reflect(&Analysis{})
	schema.Title = AnalysisSchemaName
	schema.Description = "Structured comparison of two options for a personal decision."
	schema.Extras = map[string]any{"version": AnalysisSchemaVersion}
	return schema
}
