package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pademacena/base-api/internal/server"
)

// DocsHandler serves the API documentation: the OpenAPI document
// generated at startup from the request/response type declarations,
// plus a browsable UI for testing the API.
//
// The UI is a small HTML shell that loads the viewer from a CDN and
// points it at /openapi.json, so the docs never drift from the code.
type DocsHandler struct {
	Handler

	// specJSON is the marshaled OpenAPI document, built once during
	// router setup. The routes are fixed at startup, so there is no
	// reason to regenerate per request.
	specJSON []byte
}

// NewDocsHandler constructs a DocsHandler around the pre-rendered
// OpenAPI document.
func NewDocsHandler(s *server.Server, specJSON []byte) *DocsHandler {
	return &DocsHandler{
		Handler:  NewHandler(s),
		specJSON: specJSON,
	}
}

// ServeOpenAPISpec serves the generated OpenAPI document as JSON.
func (h *DocsHandler) ServeOpenAPISpec(c echo.Context) error {
	// No caching: during development the document changes with the code.
	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.JSONBlob(http.StatusOK, h.specJSON)
}

// ServeOpenAPIUI serves the docs UI page.
func (h *DocsHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.HTML(http.StatusOK, docsUIHTML)
}

// docsUIHTML renders the OpenAPI document with Swagger UI loaded from a
// CDN, pointed at the locally served /openapi.json.
const docsUIHTML = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>base-api docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
    <style>body { margin: 0; }</style>
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.onload = () => {
        SwaggerUIBundle({
          url: '/openapi.json',
          dom_id: '#swagger-ui',
        });
      };
    </script>
  </body>
</html>`
