// http/docs.go
package http

import (
	"github.com/gofiber/fiber/v2"
)

const swaggerUIVersion = "5"

const docsPage = `<!DOCTYPE html>
<html>
<head>
<title>` + ServiceName + ` - Swagger UI</title>
<link type="text/css" rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@` + swaggerUIVersion + `/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@` + swaggerUIVersion + `/swagger-ui-bundle.js"></script>
<script>
SwaggerUIBundle({url: "/openapi.json", dom_id: "#swagger-ui"})
</script>
</body>
</html>
`

func nullableString() fiber.Map {
	return fiber.Map{"anyOf": []fiber.Map{{"type": "string"}, {"type": "null"}}}
}

// openAPIDocument describes the public read routes. Health, root and the
// docs routes themselves are left out, as they are not part of the API.
func openAPIDocument() fiber.Map {
	noteRef := fiber.Map{"$ref": "#/components/schemas/Note"}
	jsonContent := func(schema fiber.Map) fiber.Map {
		return fiber.Map{"application/json": fiber.Map{"schema": schema}}
	}

	return fiber.Map{
		"openapi": "3.1.0",
		"info": fiber.Map{
			"title":   "Nurse Notes Sample API (5 notes)",
			"version": "0.1.0",
		},
		"paths": fiber.Map{
			APIPrefix + "/notes": fiber.Map{
				"get": fiber.Map{
					"summary":     "List Notes",
					"operationId": "list_notes",
					"responses": fiber.Map{
						"200": fiber.Map{
							"description": "All sample nurse notes, in order.",
							"content":     jsonContent(fiber.Map{"type": "array", "items": noteRef}),
						},
					},
				},
			},
			APIPrefix + "/notes/{note_id}": fiber.Map{
				"get": fiber.Map{
					"summary":     "Get Note",
					"operationId": "get_note",
					"parameters": []fiber.Map{{
						"name":     "note_id",
						"in":       "path",
						"required": true,
						"schema":   fiber.Map{"type": "string"},
					}},
					"responses": fiber.Map{
						"200": fiber.Map{
							"description": "A single note.",
							"content":     jsonContent(noteRef),
						},
						"404": fiber.Map{
							"description": NotFoundDetail,
							"content":     jsonContent(fiber.Map{"$ref": "#/components/schemas/Error"}),
						},
					},
				},
			},
		},
		"components": fiber.Map{
			"schemas": fiber.Map{
				"Note": fiber.Map{
					"type": "object",
					"required": []string{
						"id", "patient_id", "created_at", "note_date",
						"author_id", "text", "status",
					},
					"properties": fiber.Map{
						"id":           fiber.Map{"type": "string"},
						"patient_id":   nullableString(),
						"created_at":   fiber.Map{"type": "string", "format": "date-time"},
						"note_date":    fiber.Map{"type": "string", "description": "YYYY-MM-DD"},
						"author_id":    nullableString(),
						"text":         fiber.Map{"type": "string"},
						"status":       fiber.Map{"type": "string"},
						"action_items": fiber.Map{"type": "array", "items": fiber.Map{"type": "string"}, "default": []string{}},
					},
				},
				"Error": fiber.Map{
					"type":       "object",
					"required":   []string{"detail"},
					"properties": fiber.Map{"detail": fiber.Map{"type": "string"}},
				},
			},
		},
	}
}

func (s *Server) HandleOpenAPI(c *fiber.Ctx) error {
	return c.JSON(openAPIDocument())
}

func (s *Server) HandleDocs(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.SendString(docsPage)
}
