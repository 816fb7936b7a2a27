package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the site API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>dental-site-backend — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the public endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "dental-site-backend", "version": "v0.1.0" },
  "paths": {
    "/api/": {
      "get": { "summary": "Greeting / connectivity check", "responses": { "200": { "description": "hello payload" } } }
    },
    "/api/status": {
      "post": {
        "summary": "Record a status check",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["client_name"],"properties":{"client_name":{"type":"string"}}}}}},
        "responses": { "200": { "description": "created record" }, "422": { "description": "validation error" } }
      },
      "get": { "summary": "List status checks (up to 1000)", "responses": { "200": { "description": "records in storage order" } } }
    },
    "/api/site-content": {
      "get": { "summary": "Get the site content document (bootstraps the default on first read)", "responses": { "200": { "description": "content document" } } },
      "put": {
        "summary": "Replace the site content wholesale",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["content"],"properties":{"content":{"type":"object"}}}}}},
        "responses": { "200": { "description": "updated document" }, "422": { "description": "validation error" } }
      }
    },
    "/api/contact-messages": {
      "post": {
        "summary": "Submit a contact message",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["fullname","email","phone","message","consent"],"properties":{"fullname":{"type":"string"},"email":{"type":"string"},"phone":{"type":"string"},"message":{"type":"string"},"consent":{"type":"boolean"}}}}}},
        "responses": { "200": { "description": "created record" }, "422": { "description": "validation error" } }
      },
      "get": {
        "summary": "List contact messages, newest first",
        "parameters": [{"name":"limit","in":"query","schema":{"type":"integer","minimum":1,"maximum":100,"default":20}}],
        "responses": { "200": { "description": "records" }, "422": { "description": "invalid limit" } }
      }
    },
    "/api/appointment-requests": {
      "post": {
        "summary": "Submit an appointment request",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["fullname","phone","reason","consent"],"properties":{"fullname":{"type":"string"},"email":{"type":"string"},"phone":{"type":"string"},"reason":{"type":"string"},"preferred_days":{"type":"array","items":{"type":"string"}},"preferred_time":{"type":"string"},"notes":{"type":"string"},"consent":{"type":"boolean"}}}}}},
        "responses": { "200": { "description": "created record" }, "422": { "description": "validation error" } }
      },
      "get": {
        "summary": "List appointment requests, newest first",
        "parameters": [{"name":"limit","in":"query","schema":{"type":"integer","minimum":1,"maximum":100,"default":20}}],
        "responses": { "200": { "description": "records" }, "422": { "description": "invalid limit" } }
      }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
