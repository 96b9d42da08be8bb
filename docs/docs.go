// Package docs is generated by swaggo/swag from the handler annotations.
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
        "/store/categories": {
            "get": {
                "description": "Sorted labels of the categories present in the catalog",
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Get storefront categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/categories/distribution": {
            "get": {
                "description": "Product count per category, largest first",
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Get category distribution",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/filters/metadata": {
            "get": {
                "description": "Returns categories, category distribution, price statistics and dataset metadata",
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Get all filter metadata",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/filters/state": {
            "get": {
                "description": "Restores the filter state from q and cat, echoing its canonical query",
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Decode filter state",
                "parameters": [
                    {"type": "string", "description": "Search text", "name": "q", "in": "query"},
                    {"type": "string", "description": "Category label", "name": "cat", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            },
            "post": {
                "description": "Serializes a filter state into its shareable query parameters",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Encode filter state",
                "parameters": [
                    {
                        "description": "Filter state",
                        "name": "state",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.FilterState"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/products": {
            "get": {
                "description": "Filter the catalog by free text and category. Order follows the dataset; there is no pagination.",
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Get storefront products",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive substring of the product name", "name": "q", "in": "query"},
                    {"type": "string", "description": "Category label; omitted means All", "name": "cat", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/products/featured": {
            "get": {
                "description": "First NSF-listed products of the unfiltered catalog",
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Get featured products",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/stats/overview": {
            "get": {
                "description": "Advisory dataset metadata as supplied by the loader, plus the loaded product count",
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Get catalog overview",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/stats/prices": {
            "get": {
                "description": "Min, max, mean, median and count over the parseable price samples. data is null when no sample parses.",
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Get price statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.ApiResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"type": "boolean"},
                "message": {"type": "string"},
                "rate_limit": {"$ref": "#/definitions/models.RateLimiter"},
                "request_id": {"type": "string"},
                "requested_entity": {"type": "string"}
            }
        },
        "models.FilterState": {
            "type": "object",
            "properties": {
                "categoryFilter": {"type": "string", "example": "Upright"},
                "searchText": {"type": "string", "example": "cooler"}
            }
        },
        "models.RateLimiter": {
            "type": "object",
            "properties": {
                "limit": {"type": "integer"},
                "remaining": {"type": "integer"},
                "reset_at": {"type": "string"},
                "reset_in_seconds": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8081",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "Coldline Catalog API",
	Description:      "Read-only storefront API over a refrigeration equipment catalog",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
