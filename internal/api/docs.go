package api

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
        "/convert": {
            "get": {
                "produces": ["application/json"],
                "tags": ["calculations"],
                "summary": "Convert an amount between two currencies",
                "parameters": [
                    {"type": "string", "description": "Source currency", "name": "from", "in": "query"},
                    {"type": "string", "description": "Target currency", "name": "to", "in": "query"},
                    {"type": "string", "description": "Amount", "name": "amount", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.ConversionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/tva": {
            "get": {
                "produces": ["application/json"],
                "tags": ["calculations"],
                "summary": "Compute a VAT-inclusive total",
                "parameters": [
                    {"type": "string", "description": "Net amount", "name": "ht", "in": "query"},
                    {"type": "string", "description": "VAT rate in percent", "name": "taux", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.VATResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/remise": {
            "get": {
                "produces": ["application/json"],
                "tags": ["calculations"],
                "summary": "Apply a percentage discount",
                "parameters": [
                    {"type": "string", "description": "Gross price", "name": "prix", "in": "query"},
                    {"type": "string", "description": "Discount in percent", "name": "pourcentage", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.DiscountResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/currencies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["calculations"],
                "summary": "List supported currencies",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.CurrenciesResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ops"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.ConversionResponse": {
            "type": "object",
            "properties": {
                "from": {"type": "string"},
                "to": {"type": "string"},
                "originalAmount": {"type": "number"},
                "convertedAmount": {"type": "number"}
            }
        },
        "api.VATResponse": {
            "type": "object",
            "properties": {
                "ht": {"type": "number"},
                "taux": {"type": "number"},
                "ttc": {"type": "number"}
            }
        },
        "api.DiscountResponse": {
            "type": "object",
            "properties": {
                "prixInitial": {"type": "number"},
                "pourcentage": {"type": "number"},
                "prixFinal": {"type": "number"}
            }
        },
        "api.CurrenciesResponse": {
            "type": "object",
            "properties": {
                "currencies": {"type": "array", "items": {"type": "string"}}
            }
        },
        "api.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "api.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Financial Calculator API",
	Description:      "Currency conversion, VAT and discount calculations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
