package openapi

import (
	"bytes"
	"context"
	"html/template"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// indexTemplate loads the swagger-ui distribution from the unpkg CDN, so no
// static assets ship with the library. The document itself is served
// alongside at docs.json.
const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => {
      SwaggerUIBundle({url: "docs.json", dom_id: "#swagger-ui"});
    };
  </script>
</body>
</html>
`

// SwaggerHandler returns an http.Handler that serves the Swagger UI for the
// given OpenAPI document. The prefix is stripped automatically, so just
// mount it:
//
//	http.Handle("/swagger/", openapi.SwaggerHandlerMust("/swagger/", doc))
func SwaggerHandler(prefix string, s *openapi3.T) (http.Handler, error) {
	if err := s.Validate(context.Background()); err != nil {
		return nil, err
	}

	specJSON, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, err
	}

	title := "API documentation"
	if s.Info != nil && s.Info.Title != "" {
		title = s.Info.Title
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{"Title": title}); err != nil {
		return nil, err
	}
	index := buf.Bytes()

	// Strip the prefix without its trailing slash so the remaining path keeps
	// a leading one: /swagger/docs.json arrives below as /docs.json.
	return http.StripPrefix(strings.TrimSuffix(prefix, "/"), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "", "/":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write(index)
		case "/docs.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(specJSON)
		default:
			http.NotFound(w, r)
		}
	})), nil
}

// SwaggerHandlerMust is like SwaggerHandler but panics on error.
func SwaggerHandlerMust(prefix string, s *openapi3.T) http.Handler {
	h, err := SwaggerHandler(prefix, s)
	if err != nil {
		panic(err)
	}
	return h
}
