// Package api embeds the OpenAPI specification for the prompt library API.
// It is imported by the HTTP server to serve the document at /openapi.yaml
// and the Scalar UI at /docs.
package api

import (
	_ "embed"
	"net/http"
)

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var OpenAPI []byte

// docsPage renders the embedded document with the Scalar API reference.
const docsPage = `<!doctype html>
<html>
  <head>
    <title>Prompt Library API</title>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>
  <body>
    <script id="api-reference" data-url="/openapi.yaml"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
  </body>
</html>
`

// ServeOpenAPI writes the embedded document as YAML.
func ServeOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(OpenAPI)
}

// ServeDocs writes the HTML page for the interactive reference.
func ServeDocs(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(docsPage))
}
