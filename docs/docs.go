// Package docs Swagger document for the gateway, served at /swagger.
// Written in the layout swag emits; `go generate ./cmd` regenerates it from
// the handler annotations.
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
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/sessions": {
            "post": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Open a storefront session",
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/sessions/current": {
            "delete": {
                "tags": ["sessions"],
                "summary": "Close the current session",
                "parameters": [{"$ref": "#/parameters/session"}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpapi.errorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"$ref": "#/parameters/session"},
                    {"description": "Credentials", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/httpapi.loginReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/state.State"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/state.State"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/state.State"}}
                }
            }
        },
        "/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Log out",
                "parameters": [{"$ref": "#/parameters/session"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user",
                "parameters": [{"$ref": "#/parameters/session"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpapi.errorResponse"}}
                }
            }
        },
        "/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List products",
                "parameters": [
                    {"$ref": "#/parameters/session"},
                    {"type": "string", "description": "Name contains", "name": "q", "in": "query"},
                    {"type": "integer", "description": "Category ID", "name": "category", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/state.State"}}
                }
            }
        },
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List categories",
                "parameters": [{"$ref": "#/parameters/session"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}}}
            }
        },
        "/cart": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Get cart",
                "parameters": [{"$ref": "#/parameters/session"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/httpapi.cartView"}}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Empty the cart",
                "parameters": [{"$ref": "#/parameters/session"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/httpapi.cartView"}}}
            }
        },
        "/cart/items": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Add product to cart",
                "parameters": [
                    {"$ref": "#/parameters/session"},
                    {"description": "Product", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/httpapi.addCartItemReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpapi.cartView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpapi.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpapi.errorResponse"}}
                }
            }
        },
        "/cart/items/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Remove line",
                "parameters": [{"$ref": "#/parameters/session"}, {"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/httpapi.cartView"}}}
            }
        },
        "/cart/items/{id}/increase": {
            "post": {
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Increase line quantity",
                "parameters": [{"$ref": "#/parameters/session"}, {"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/httpapi.cartView"}}}
            }
        },
        "/cart/items/{id}/decrease": {
            "post": {
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Decrease line quantity, removing the line at 1",
                "parameters": [{"$ref": "#/parameters/session"}, {"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/httpapi.cartView"}}}
            }
        },
        "/checkout": {
            "get": {
                "produces": ["application/json"],
                "tags": ["checkout"],
                "summary": "Checkout summary",
                "parameters": [{"$ref": "#/parameters/session"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/httpapi.checkoutView"}}}
            }
        },
        "/checkout/shipping": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["checkout"],
                "summary": "Select shipping option",
                "parameters": [
                    {"$ref": "#/parameters/session"},
                    {"description": "Option", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/httpapi.selectShippingReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.OrderSummary"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpapi.errorResponse"}}
                }
            }
        },
        "/payment": {
            "get": {
                "produces": ["application/json"],
                "tags": ["payment"],
                "summary": "Payment state",
                "parameters": [{"$ref": "#/parameters/session"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}}}
            },
            "post": {
                "produces": ["application/json"],
                "tags": ["payment"],
                "summary": "Submit the cart as an order",
                "parameters": [{"$ref": "#/parameters/session"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/state.State"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/state.State"}}
                }
            }
        },
        "/payment/reset": {
            "post": {
                "produces": ["application/json"],
                "tags": ["payment"],
                "summary": "Return payment to idle",
                "parameters": [{"$ref": "#/parameters/session"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}}}
            }
        },
        "/admin/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Weekly and monthly sales",
                "parameters": [{"$ref": "#/parameters/session"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httpapi.errorResponse"}}
                }
            }
        },
        "/admin/sales": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Sales history, newest first",
                "parameters": [{"$ref": "#/parameters/session"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}}}
            }
        },
        "/admin/reports/low-stock": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Low stock report",
                "parameters": [{"$ref": "#/parameters/session"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}}}
            }
        },
        "/admin/reports/top-selling": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Top selling report",
                "parameters": [{"$ref": "#/parameters/session"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}}}
            }
        },
        "/admin/reports/inventory": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Inventory by category",
                "parameters": [{"$ref": "#/parameters/session"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}}}
            }
        },
        "/admin/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List products for management",
                "parameters": [{"$ref": "#/parameters/session"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Create product",
                "parameters": [
                    {"$ref": "#/parameters/session"},
                    {"description": "Product", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.Product"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/state.State"}}
                }
            }
        },
        "/admin/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Load product into the editor",
                "parameters": [{"$ref": "#/parameters/session"}, {"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Update product",
                "parameters": [
                    {"$ref": "#/parameters/session"},
                    {"$ref": "#/parameters/id"},
                    {"description": "Product", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.Product"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete product",
                "parameters": [{"$ref": "#/parameters/session"}, {"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}}}
            }
        },
        "/admin/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List users",
                "parameters": [{"$ref": "#/parameters/session"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Create user",
                "parameters": [
                    {"$ref": "#/parameters/session"},
                    {"description": "User", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.User"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}}}
            }
        },
        "/admin/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Load user into the editor",
                "parameters": [{"$ref": "#/parameters/session"}, {"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Update user",
                "parameters": [
                    {"$ref": "#/parameters/session"},
                    {"$ref": "#/parameters/id"},
                    {"description": "User", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.User"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete user",
                "parameters": [{"$ref": "#/parameters/session"}, {"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}}}
            }
        },
        "/admin/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List categories for management",
                "parameters": [{"$ref": "#/parameters/session"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Create category",
                "parameters": [
                    {"$ref": "#/parameters/session"},
                    {"description": "Category", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/httpapi.categoryReq"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}}}
            }
        },
        "/admin/categories/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Update category",
                "parameters": [
                    {"$ref": "#/parameters/session"},
                    {"$ref": "#/parameters/id"},
                    {"description": "Category", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/httpapi.categoryReq"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete category",
                "parameters": [{"$ref": "#/parameters/session"}, {"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/state.State"}}}
            }
        }
    },
    "parameters": {
        "session": {"type": "string", "description": "Session", "name": "X-Session-ID", "in": "header", "required": true},
        "id": {"type": "integer", "description": "ID", "name": "id", "in": "path", "required": true}
    },
    "definitions": {
        "domain.Category": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nombre": {"type": "string"},
                "descripcion": {"type": "string"}
            }
        },
        "domain.Product": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nombre": {"type": "string"},
                "descripcion": {"type": "string"},
                "precio": {"type": "number"},
                "stock": {"type": "integer"},
                "imagenUrl": {"type": "string"},
                "categoria": {"$ref": "#/definitions/domain.Category"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nombre": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "direccion": {"type": "string"},
                "telefono": {"type": "string"},
                "rol": {"type": "string", "enum": ["admin", "cliente"]}
            }
        },
        "domain.ShippingOption": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "cost": {"type": "number"}
            }
        },
        "httpapi.addCartItemReq": {
            "type": "object",
            "properties": {"product_id": {"type": "integer"}}
        },
        "httpapi.cartLineView": {
            "type": "object",
            "properties": {
                "product": {"$ref": "#/definitions/domain.Product"},
                "quantity": {"type": "integer"},
                "subtotal": {"type": "number"}
            }
        },
        "httpapi.cartView": {
            "type": "object",
            "properties": {
                "lines": {"type": "array", "items": {"$ref": "#/definitions/httpapi.cartLineView"}},
                "total_items": {"type": "integer"},
                "total_price": {"type": "number"}
            }
        },
        "httpapi.categoryReq": {
            "type": "object",
            "properties": {
                "nombre": {"type": "string"},
                "descripcion": {"type": "string"},
                "imagenUrl": {"type": "string"}
            }
        },
        "httpapi.checkoutView": {
            "type": "object",
            "properties": {
                "cart": {"$ref": "#/definitions/httpapi.cartView"},
                "summary": {"$ref": "#/definitions/service.OrderSummary"},
                "options": {"type": "array", "items": {"$ref": "#/definitions/httpapi.shippingOptionView"}},
                "user": {"$ref": "#/definitions/httpapi.userRef"}
            }
        },
        "httpapi.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "httpapi.loginReq": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "httpapi.selectShippingReq": {
            "type": "object",
            "properties": {"option": {"type": "string"}}
        },
        "httpapi.shippingOptionView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "cost": {"type": "number"},
                "selected": {"type": "boolean"}
            }
        },
        "httpapi.userRef": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nombre": {"type": "string"}
            }
        },
        "service.OrderSummary": {
            "type": "object",
            "properties": {
                "items": {"type": "integer"},
                "subtotal": {"type": "number"},
                "shipping": {"$ref": "#/definitions/domain.ShippingOption"},
                "total": {"type": "number"}
            }
        },
        "state.State": {
            "type": "object",
            "properties": {
                "state": {"type": "string", "enum": ["idle", "loading", "success", "error", "deleted"]},
                "data": {},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:9091",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Storefront gateway API",
	Description:      "Session-scoped cart, checkout and back-office state over the KJM Sports shop API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
