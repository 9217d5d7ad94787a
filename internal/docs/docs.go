// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["auth"], "summary": "Log in to a tenant",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "403": {"description": "Tenant or user inactive", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Tenant not found", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "429": {"description": "Throttled", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/auth/register-tenant": {
            "post": {
                "tags": ["auth"], "summary": "Register a tenant with its first admin",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterTenantRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "409": {"description": "Subdomain already exists", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["auth"], "summary": "Current user and tenant", "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "tags": ["users"], "summary": "List users", "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/APIResponse"}}}
            },
            "post": {
                "tags": ["users"], "summary": "Create a user (tenant admin)", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateUserRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "403": {"description": "Not an admin or user limit reached", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "409": {"description": "User already exists", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/users/{id}": {
            "patch": {
                "tags": ["users"], "summary": "Update a user (tenant admin)", "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string", "format": "uuid"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["users"], "summary": "Deactivate a user (tenant admin)", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string", "format": "uuid"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/projects": {
            "get": {
                "tags": ["projects"], "summary": "List projects", "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/APIResponse"}}}
            },
            "post": {
                "tags": ["projects"], "summary": "Create a project (tenant admin)", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateProjectRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "403": {"description": "Not an admin or project limit reached", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/projects/{id}": {
            "patch": {
                "tags": ["projects"], "summary": "Update a project", "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string", "format": "uuid"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateProjectRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["projects"], "summary": "Delete a project and its tasks", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string", "format": "uuid"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/tasks": {
            "get": {
                "tags": ["tasks"], "summary": "List the tasks of a project", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "query", "name": "projectId", "required": true, "type": "string", "format": "uuid"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "post": {
                "tags": ["tasks"], "summary": "Create a task", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTaskRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "404": {"description": "Project or assignee not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/tasks/{id}": {
            "patch": {
                "tags": ["tasks"], "summary": "Update a task", "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string", "format": "uuid"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateTaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["tasks"], "summary": "Delete a task", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string", "format": "uuid"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["health"], "summary": "Liveness and database status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/HealthStatus"}},
                    "503": {"description": "Database unavailable", "schema": {"$ref": "#/definitions/HealthStatus"}}
                }
            }
        }
    },
    "definitions": {
        "APIResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "data": {"type": "object"}}
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"}, "message": {"type": "string"}, "code": {"type": "string"},
                "details": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "HealthStatus": {
            "type": "object",
            "properties": {"status": {"type": "string"}, "database": {"type": "string"}, "redis": {"type": "string"}}
        },
        "LoginRequest": {
            "type": "object", "required": ["tenantSubdomain", "email", "password"],
            "properties": {"tenantSubdomain": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}}
        },
        "LoginResponse": {
            "type": "object",
            "properties": {"user": {"$ref": "#/definitions/PublicUser"}, "token": {"type": "string"}, "expiresIn": {"type": "integer"}}
        },
        "PublicUser": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "email": {"type": "string"}, "fullName": {"type": "string"},
                "role": {"type": "string", "enum": ["tenant_admin", "member"]}, "tenantId": {"type": "string"}
            }
        },
        "RegisterTenantRequest": {
            "type": "object", "required": ["tenantName", "subdomain", "adminEmail", "adminPassword", "adminFullName"],
            "properties": {
                "tenantName": {"type": "string"}, "subdomain": {"type": "string"}, "adminEmail": {"type": "string"},
                "adminPassword": {"type": "string", "minLength": 6}, "adminFullName": {"type": "string"}
            }
        },
        "CreateUserRequest": {
            "type": "object", "required": ["email", "password", "fullName", "role"],
            "properties": {
                "email": {"type": "string"}, "password": {"type": "string", "minLength": 6}, "fullName": {"type": "string"},
                "role": {"type": "string", "enum": ["tenant_admin", "member"]}
            }
        },
        "UpdateUserRequest": {
            "type": "object",
            "properties": {
                "fullName": {"type": "string"}, "role": {"type": "string", "enum": ["tenant_admin", "member"]},
                "isActive": {"type": "boolean"}
            }
        },
        "CreateProjectRequest": {
            "type": "object", "required": ["name"],
            "properties": {"name": {"type": "string"}, "description": {"type": "string"}}
        },
        "UpdateProjectRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}, "description": {"type": "string"},
                "status": {"type": "string", "enum": ["active", "archived", "completed"]}
            }
        },
        "CreateTaskRequest": {
            "type": "object", "required": ["projectId", "title"],
            "properties": {
                "projectId": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"},
                "assignedTo": {"type": "string"}
            }
        },
        "UpdateTaskRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"}, "description": {"type": "string"},
                "status": {"type": "string", "enum": ["todo", "in_progress", "done"]}, "assignedTo": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "SaaSBoard API",
	Description:      "Multi-tenant project and task management backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
