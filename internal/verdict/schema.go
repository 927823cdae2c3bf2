// Package verdict defines the shape of a focus-group analysis result and
// enforces it on raw model output. It is the sole gate between the untrusted
// text generator and the rest of the system: callers must never consume
// model output that has not passed through Parse.
package verdict

import (
	"github.com/sashabaranov/go-openai/jsonschema"
)

// ResponseSchema is the structured-output constraint sent with the
// generation call. It mirrors the validation rules in Parse.
func ResponseSchema() jsonschema.Definition {
	return jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"case_title": {
				Type: jsonschema.String,
				Description: "A short, punchy, 3-5 word title summarizing the product idea " +
					"based on the input (e.g. 'Uber for Dogs').",
			},
			"cto": {
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"thought": {
						Type:        jsonschema.String,
						Description: "Technical reasoning from Rusty (Grumpy Senior Engineer).",
					},
					"verdict": {
						Type:        jsonschema.String,
						Description: "Rusty's final verdict.",
					},
					"status": {
						Type: jsonschema.String,
						Enum: []string{"PASS", "FAIL"},
					},
				},
				Required:             []string{"thought", "verdict", "status"},
				AdditionalProperties: false,
			},
			"genZ": {
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"vibe": {
						Type:        jsonschema.String,
						Description: "Vibe check from Jules (Trend Analyst).",
					},
					"verdict": {
						Type:        jsonschema.String,
						Description: "Jules's final verdict.",
					},
					"status": {
						Type: jsonschema.String,
						Enum: []string{"COP", "DROP"},
					},
				},
				Required:             []string{"vibe", "verdict", "status"},
				AdditionalProperties: false,
			},
			"mom": {
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"concerns": {
						Type:        jsonschema.String,
						Description: "Concerns from Barb (The Budget Keeper).",
					},
					"verdict": {
						Type:        jsonschema.String,
						Description: "Barb's final verdict.",
					},
					"status": {
						Type: jsonschema.String,
						Enum: []string{"TRUST", "NO TRUST"},
					},
				},
				Required:             []string{"concerns", "verdict", "status"},
				AdditionalProperties: false,
			},
		},
		Required:             []string{"case_title", "cto", "genZ", "mom"},
		AdditionalProperties: false,
	}
}
