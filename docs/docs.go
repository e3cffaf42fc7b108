// Package docs registers the swagger document served under /swagger.
// Regenerate with: swag init -g cmd/billsplit/main.go
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
        "/deals/validate": {
            "post": {
                "description": "Check a deal against the roommate count and auto-fill the last ratio when one is missing",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["deals"],
                "summary": "Validate a deal",
                "parameters": [
                    {
                        "description": "Roommate count and deal",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/bill.ValidateDealRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/reports": {
            "post": {
                "description": "Split every bill equally and by deal, then report the combined summary",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Split bills",
                "parameters": [
                    {
                        "description": "Deal and bills",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/bill.SplitRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/receipts": {
            "post": {
                "description": "Render the plain text receipt with one table per bill and the combined summary",
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "tags": ["receipts"],
                "summary": "Render a receipt",
                "parameters": [
                    {
                        "description": "Deal and bills",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/bill.SplitRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "bill.ValidateDealRequest": {
            "type": "object",
            "required": ["deal", "roommates"],
            "properties": {
                "deal": {"type": "array", "items": {"type": "number"}},
                "roommates": {"type": "integer", "minimum": 2}
            }
        },
        "bill.BillRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "equal_values": {"type": "array", "items": {"type": "number"}},
                "deal_values": {"type": "array", "items": {"type": "number"}}
            }
        },
        "bill.SplitRequest": {
            "type": "object",
            "required": ["bills", "deal", "roommates"],
            "properties": {
                "bills": {"type": "array", "items": {"$ref": "#/definitions/bill.BillRequest"}},
                "deal": {"type": "array", "items": {"type": "number"}},
                "roommates": {"type": "integer", "minimum": 2}
            }
        },
        "response.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "response.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/response.APIError"},
                "success": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "billsplit API",
	Description:      "Split a shared electricity bill among roommates, equally and by deal.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
