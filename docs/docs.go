// Package docs registra el documento OpenAPI servido en /swagger.
// Se mantiene a mano junto con las anotaciones de los handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/pets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Listar mis mascotas",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.petResponse"}}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            },
            "post": {
                "description": "Crea una mascota con las necesidades por defecto. Autenticación: ` + "`" + `X-Debug-User-ID` + "`" + ` (dev) o ` + "`" + `Authorization: Bearer <token>` + "`" + ` (prod).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Crear mascota",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"description": "Datos de la mascota", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pets.createPetRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/pets.petResponse"}},
                    "400": {"description": "invalid json / invalid input", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            }
        },
        "/pets/{petID}": {
            "get": {
                "description": "Devuelve el estado de la mascota con el decay aplicado hasta ahora.",
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Ver mascota",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.petResponse"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "403": {"description": "forbidden", "schema": {"type": "string"}},
                    "404": {"description": "pet not found", "schema": {"type": "string"}}
                }
            }
        },
        "/pets/{petID}/actions/{action}": {
            "post": {
                "description": "Aplica feed, groom, play o pet. El afecto ganado con pet tiene tope diario.",
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Acción de gameplay",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true},
                    {"type": "string", "description": "feed | groom | play | pet", "name": "action", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.petResponse"}},
                    "400": {"description": "unknown action", "schema": {"type": "string"}},
                    "403": {"description": "forbidden", "schema": {"type": "string"}},
                    "404": {"description": "pet not found", "schema": {"type": "string"}}
                }
            }
        },
        "/pets/{petID}/reset": {
            "post": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Reiniciar necesidades",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.petResponse"}},
                    "403": {"description": "forbidden", "schema": {"type": "string"}},
                    "404": {"description": "pet not found", "schema": {"type": "string"}}
                }
            }
        },
        "/pets/{petID}/events": {
            "get": {
                "description": "Lista las acciones, reparaciones y resets de una mascota, más reciente primero. Solo el dueño.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Listar historial de cuidados",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "Bearer token en producción", "name": "Authorization", "in": "header"},
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true},
                    {"type": "integer", "description": "Máximo de eventos a devolver (1-200). Por defecto 50", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Lista CSV de tipos (ej: FEED,PET)", "name": "types", "in": "query"},
                    {"type": "string", "description": "Fecha/hora mínima occurred_at (RFC3339)", "name": "from", "in": "query"},
                    {"type": "string", "description": "Fecha/hora máxima occurred_at (RFC3339)", "name": "to", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/events.eventResponse"}}},
                    "400": {"description": "Parámetros de filtro inválidos", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "403": {"description": "forbidden", "schema": {"type": "string"}},
                    "404": {"description": "pet not found", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "events.eventResponse": {
            "type": "object",
            "properties": {
                "actor_id": {"type": "string"},
                "id": {"type": "string"},
                "notes": {"type": "string"},
                "occurred_at": {"type": "string"},
                "pet_id": {"type": "string"},
                "spirit_after": {"type": "integer"},
                "spirit_before": {"type": "integer"},
                "type": {"type": "string", "enum": ["CREATED", "FEED", "GROOM", "PLAY", "PET", "RESET", "REPAIRED"]}
            }
        },
        "pets.createPetRequest": {
            "type": "object",
            "properties": {
                "image": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "pets.petResponse": {
            "type": "object",
            "properties": {
                "affection": {"type": "integer"},
                "affection_gained_today": {"type": "integer"},
                "cleanliness": {"type": "integer"},
                "happiness": {"type": "integer"},
                "hunger": {"type": "integer"},
                "id": {"type": "string"},
                "image": {"type": "string"},
                "labels": {"type": "object", "additionalProperties": {"type": "string"}},
                "last_affection_gain_date": {"type": "string"},
                "last_needs_update_time": {"type": "integer"},
                "name": {"type": "string"},
                "spirit": {"type": "integer"},
                "type": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "virtual-pet API",
	Description:      "Necesidades de la mascota virtual: decay, spirit, acciones y reparación del registro compartido.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
