// internal/server/schemas.go
package server

// Request payloads are validated against JSON Schemas before any handler
// logic runs; a violation is a 400 with the offending fields listed.

const chatRequestSchema = `{
	"type": "object",
	"properties": {
		"sessionId": {"type": "string", "maxLength": 128},
		"text": {"type": "string", "minLength": 1, "maxLength": 2000},
		"language": {"type": "string", "enum": ["en", "te"]}
	},
	"required": ["text"],
	"additionalProperties": false
}`

const clearSessionRequestSchema = `{
	"type": "object",
	"properties": {
		"sessionId": {"type": "string", "maxLength": 128}
	},
	"additionalProperties": false
}`

const complaintRequestSchema = `{
	"type": "object",
	"properties": {
		"category": {
			"type": "string",
			"enum": ["Theft", "Missing Person", "Harassment", "Noise Complaint", "Traffic", "Other"]
		},
		"description": {"type": "string", "minLength": 10, "maxLength": 4000},
		"location": {"type": "string", "maxLength": 200},
		"contact": {"type": "string", "pattern": "^[0-9]{10}$"},
		"language": {"type": "string", "enum": ["en", "te"]}
	},
	"required": ["category", "description", "contact"],
	"additionalProperties": false
}`
