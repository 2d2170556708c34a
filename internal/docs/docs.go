// Package docs registra el OpenAPI de la API para swag / http-swagger.
// Mantener en línea con las anotaciones godoc de los handlers.
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
                "summary": "List pets",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.PetResponse"}}}
                }
            }
        },
        "/pets/random": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Get a random pet",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.PetResponse"}},
                    "404": {"description": "no pets available", "schema": {"type": "string"}}
                }
            }
        },
        "/pets/reload": {
            "post": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Reload pets from the repository and notify subscribers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.reloadResponse"}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/pets/stream": {
            "get": {
                "description": "Sends the current list right away and again on every replacement.",
                "produces": ["text/event-stream"],
                "tags": ["pets"],
                "summary": "Stream the pet list (Server-Sent Events)",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.PetResponse"}}}
                }
            }
        },
        "/pets/{petID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Get a pet by id (first match)",
                "parameters": [
                    {"type": "integer", "description": "Pet ID", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.PetResponse"}},
                    "400": {"description": "invalid pet id", "schema": {"type": "string"}},
                    "404": {"description": "pet not found", "schema": {"type": "string"}}
                }
            }
        },
        "/screens/list": {
            "get": {
                "produces": ["application/json"],
                "tags": ["screens"],
                "summary": "Render the pet list screen",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/navigation.ListView"}}
                }
            }
        },
        "/screens/detail/{petID}": {
            "get": {
                "description": "Unknown ids render the \"Pet not found\" message (200).",
                "produces": ["application/json"],
                "tags": ["screens"],
                "summary": "Render the pet detail screen",
                "parameters": [
                    {"type": "integer", "description": "Pet ID", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/navigation.DetailView"}},
                    "400": {"description": "invalid pet id", "schema": {"type": "string"}}
                }
            }
        },
        "/screens/route": {
            "get": {
                "produces": ["application/json"],
                "tags": ["screens"],
                "summary": "Render a screen from its route (petlist, petdetail/{petId})",
                "parameters": [
                    {"type": "string", "description": "Route", "name": "r", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "navigation.ListView for petlist, navigation.DetailView for petdetail/{petId}", "schema": {"type": "object"}},
                    "400": {"description": "invalid route", "schema": {"type": "string"}}
                }
            }
        },
        "/sessions": {
            "post": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Open a navigation session on the list screen",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/navigation.sessionResponse"}}
                }
            }
        },
        "/sessions/{sessionID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Current screen of a session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/navigation.sessionResponse"}},
                    "404": {"description": "session not found", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "tags": ["sessions"],
                "summary": "Close a navigation session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "session not found", "schema": {"type": "string"}}
                }
            }
        },
        "/sessions/{sessionID}/select": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Select a pet (navigate to its detail)",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true},
                    {"description": "Selected pet", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/navigation.selectRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/navigation.sessionResponse"}},
                    "400": {"description": "pet_id required", "schema": {"type": "string"}},
                    "404": {"description": "session not found", "schema": {"type": "string"}}
                }
            }
        },
        "/sessions/{sessionID}/back": {
            "post": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Host back navigation",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/navigation.sessionResponse"}},
                    "404": {"description": "session not found", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "pets.PetResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "photo": {"type": "string"},
                "name": {"type": "string"},
                "sex": {"type": "string", "enum": ["male", "female"]},
                "is_spayed_neutered": {"type": "boolean"},
                "breed": {"type": "string"},
                "age_year": {"type": "integer"},
                "age_month": {"type": "integer"},
                "sex_label": {"type": "string"},
                "age_label": {"type": "string"}
            }
        },
        "pets.reloadResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"}
            }
        },
        "navigation.Card": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "id_label": {"type": "string"},
                "name": {"type": "string"},
                "photo": {"type": "string"},
                "sex_label": {"type": "string"},
                "breed": {"type": "string"},
                "age_label": {"type": "string"}
            }
        },
        "navigation.ListView": {
            "type": "object",
            "properties": {
                "screen": {"type": "string", "enum": ["list", "detail"]},
                "title": {"type": "string"},
                "pets": {"type": "array", "items": {"$ref": "#/definitions/navigation.Card"}}
            }
        },
        "navigation.DetailView": {
            "type": "object",
            "properties": {
                "screen": {"type": "string", "enum": ["list", "detail"]},
                "title": {"type": "string"},
                "pet_id": {"type": "integer"},
                "found": {"type": "boolean"},
                "pet": {"$ref": "#/definitions/navigation.Card"},
                "message": {"type": "string"}
            }
        },
        "navigation.screenResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "enum": ["list", "detail"]},
                "route": {"type": "string"},
                "params": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "navigation.sessionResponse": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "screen": {"$ref": "#/definitions/navigation.screenResponse"},
                "can_go_back": {"type": "boolean"},
                "view": {"type": "object"}
            }
        },
        "navigation.selectRequest": {
            "type": "object",
            "properties": {
                "pet_id": {"type": "integer"}
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
	Title:            "Pet Adoption API",
	Description:      "Adoptable pets list/detail core: pets, screen views and navigation sessions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
