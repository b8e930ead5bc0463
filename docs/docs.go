// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/serve.go -o docs
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
        "/api/events": {
            "get": {
                "description": "Events ordered by start date. Anonymous callers only receive public events.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List visible events",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.eventsResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/events/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Get a visible event",
                "parameters": [{"type": "string", "description": "Event ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.eventEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/posts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "List published posts",
                "parameters": [
                    {"type": "integer", "description": "Page number (1 to 10000)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (1-50, default 10)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.postsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/posts/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "Get a published post",
                "parameters": [{"type": "string", "description": "Post slug", "name": "slug", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.postEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/archivos": {
            "get": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["archivos"],
                "summary": "List visible files",
                "parameters": [{"type": "string", "description": "Category filter", "name": "categoria", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.archivosResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/delegaciones": {
            "get": {
                "produces": ["application/json"],
                "tags": ["delegaciones"],
                "summary": "List delegations",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.delegacionesResponse"}}
                }
            }
        },
        "/api/delegaciones/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["delegaciones"],
                "summary": "Get a delegation",
                "parameters": [{"type": "string", "description": "Delegation slug", "name": "slug", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.delegacionEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/dashboard/access": {
            "get": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard access check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.accessResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/admin/users": {
            "get": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List users with their roles",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.usersResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/admin/roles": {
            "get": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List assignable roles",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.rolesResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/admin/site-mode": {
            "get": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Read the under-construction flag",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.siteModeResponse"}}
                }
            },
            "put": {
                "security": [{"SessionCookie": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Toggle the under-construction flag",
                "parameters": [{"description": "New site mode", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.siteModeRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.siteModeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/health": {
            "get": {"tags": ["health"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        },
        "/health/ready": {
            "get": {"tags": ["health"], "summary": "Readiness probe", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        }
    },
    "definitions": {
        "handler.errorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "handler.roleResponse": {"type": "object", "properties": {"id": {"type": "string"}, "name": {"type": "string"}}},
        "handler.eventResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"},
                "location": {"type": "string"}, "start_date": {"type": "string"}, "end_date": {"type": "string"},
                "image_url": {"type": "string"}, "is_public": {"type": "boolean"},
                "visible_to_all_roles": {"type": "boolean"}, "role_ids": {"type": "array", "items": {"type": "string"}},
                "created_at": {"type": "string"}
            }
        },
        "handler.eventsResponse": {"type": "object", "properties": {"events": {"type": "array", "items": {"$ref": "#/definitions/handler.eventResponse"}}}},
        "handler.eventEnvelope": {"type": "object", "properties": {"event": {"$ref": "#/definitions/handler.eventResponse"}}},
        "handler.archivoResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "name": {"type": "string"}, "description": {"type": "string"},
                "category": {"type": "string"}, "file_url": {"type": "string"}, "mime_type": {"type": "string"},
                "size_bytes": {"type": "integer"}, "is_public": {"type": "boolean"},
                "visible_to_all_roles": {"type": "boolean"}, "role_ids": {"type": "array", "items": {"type": "string"}},
                "created_at": {"type": "string"}
            }
        },
        "handler.archivosResponse": {"type": "object", "properties": {"archivos": {"type": "array", "items": {"$ref": "#/definitions/handler.archivoResponse"}}}},
        "handler.postResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "slug": {"type": "string"}, "title": {"type": "string"},
                "excerpt": {"type": "string"}, "content": {"type": "string"}, "cover_image_url": {"type": "string"},
                "author": {"type": "string"}, "published_at": {"type": "string"}, "created_at": {"type": "string"}
            }
        },
        "handler.postsResponse": {"type": "object", "properties": {"posts": {"type": "array", "items": {"$ref": "#/definitions/handler.postResponse"}}}},
        "handler.postEnvelope": {"type": "object", "properties": {"post": {"$ref": "#/definitions/handler.postResponse"}}},
        "handler.delegacionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "slug": {"type": "string"}, "name": {"type": "string"},
                "description": {"type": "string"}, "city": {"type": "string"}, "address": {"type": "string"},
                "email": {"type": "string"}, "phone": {"type": "string"}, "image_url": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "handler.delegacionesResponse": {"type": "object", "properties": {"delegaciones": {"type": "array", "items": {"$ref": "#/definitions/handler.delegacionResponse"}}}},
        "handler.delegacionEnvelope": {"type": "object", "properties": {"delegacion": {"$ref": "#/definitions/handler.delegacionResponse"}}},
        "handler.accessResponse": {"type": "object", "properties": {"hasAccess": {"type": "boolean"}, "roles": {"type": "array", "items": {"$ref": "#/definitions/handler.roleResponse"}}}},
        "handler.userResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "email": {"type": "string"}, "full_name": {"type": "string"},
                "created_at": {"type": "string"}, "last_sign_in_at": {"type": "string"},
                "roles": {"type": "array", "items": {"$ref": "#/definitions/handler.roleResponse"}}
            }
        },
        "handler.usersResponse": {"type": "object", "properties": {"users": {"type": "array", "items": {"$ref": "#/definitions/handler.userResponse"}}}},
        "handler.rolesResponse": {"type": "object", "properties": {"roles": {"type": "array", "items": {"$ref": "#/definitions/handler.roleResponse"}}}},
        "handler.siteModeRequest": {"type": "object", "required": ["underConstruction"], "properties": {"underConstruction": {"type": "boolean"}}},
        "handler.siteModeResponse": {"type": "object", "properties": {"underConstruction": {"type": "boolean"}}}
    },
    "securityDefinitions": {
        "SessionCookie": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Portal API",
	Description:      "Public site and dashboard API: events, blog, file library, delegations and user administration.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
