// Command chi demonstrates shapecheck with a chi router, the envelope
// response payload, and env-driven configuration.
//
// Run:
//
//	cd _example/chi && go run .
//
// Then open http://localhost:3000/swagger/ in your browser.
package main

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	v "github.com/go-shape/shapecheck"
	"github.com/go-shape/shapecheck/envcfg"
	"github.com/go-shape/shapecheck/envelope"
	"github.com/go-shape/shapecheck/openapi"
)

var orderValidator = v.Object(
	v.Field("customer_name", v.String().Constrain(v.MinLength(1), v.MaxLength(200))),
	v.Field("item_count", v.Number().Constrain(v.Min(1))),
	v.Field("total", v.Number().Constrain(v.Min(0.01))),
	v.Field("coupon", v.String().Constrain(v.MinLength(4)).Nullable().Optional()),
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	zap.ReplaceGlobals(logger)
	defer func() { _ = logger.Sync() }()

	cfg := envcfg.MustLoad()

	doc := openapi.DocBase("Example API (chi)", "Demonstrates shapecheck with chi", "0.1.0")

	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
		Summary:  "Create an order",
		Request:  orderValidator,
		Response: orderValidator,
	})

	r := chi.NewRouter()

	r.Handle("/swagger/*", openapi.SwaggerHandlerMust("/swagger/", doc))

	r.Post("/orders", func(w http.ResponseWriter, r *http.Request) {
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
	log.Fatal(http.ListenAndServe(addr, r))
}
