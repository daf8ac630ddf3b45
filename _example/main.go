// Command example demonstrates shapecheck with an HTTP server serving a
// Swagger UI and a validated JSON endpoint.
//
// Run:
//
//	cd _example && go run .
//
// Then open http://localhost:3000/swagger/ in your browser.
package main

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	v "github.com/go-shape/shapecheck"
	"github.com/go-shape/shapecheck/envcfg"
	"github.com/go-shape/shapecheck/envelope"
	"github.com/go-shape/shapecheck/openapi"
)

// orderValidator is the request and response shape for /orders.
var orderValidator = v.Object(
	v.Field("customer_name", v.String().Constrain(v.MinLength(1), v.MaxLength(200))),
	v.Field("item_count", v.Number().Constrain(v.Min(1))),
	v.Field("total", v.Number().Constrain(v.Min(0.01))),
	v.Field("note", v.String().Optional()),
)

// errorValidator describes the failure envelope for the docs.
var errorValidator = v.Object(
	v.Field("ok", v.Boolean()),
	v.Field("error", v.Object(
		v.Field("kind", v.String()),
		v.Field("messages", v.Array(v.String())),
	)),
)

func main() {
	cfg := envcfg.MustLoad()

	// Build the OpenAPI spec.
	doc := openapi.DocBase("Example API", "Demonstrates shapecheck", "0.1.0")

	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
		Summary:  "Create an order",
		Request:  orderValidator,
		Response: orderValidator,
		Responses: map[string]openapi.Response{
			"200": {Desc: "Created order", Bodies: []v.SchemaProvider{orderValidator}},
			"422": {Desc: "Validation error", Bodies: []v.SchemaProvider{errorValidator}},
		},
	})

	// Swagger UI
	http.Handle("/swagger/", openapi.SwaggerHandlerMust("/swagger/", doc))

	// API endpoint
	http.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		order, err := v.DecodeAndCheck(r.Body, orderValidator)
		if err != nil {
			_ = envelope.WriteError(w, err,
				envelope.WithEndpoint("/orders"), envelope.WithService(cfg.ServiceName))
			return
		}

		_ = envelope.Write(w, http.StatusOK, envelope.OK(order,
			envelope.WithEndpoint("/orders"), envelope.WithService(cfg.ServiceName)))
	})

	addr := ":" + strconv.Itoa(cfg.Port)
	fmt.Println("Listening on http://localhost" + addr)
	fmt.Println("Swagger UI: http://localhost" + addr + "/swagger/")
	log.Fatal(http.ListenAndServe(addr, nil))
}
