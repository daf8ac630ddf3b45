// Package openapi assembles OpenAPI 3 documents from shapecheck validators
// and serves a Swagger UI for them.
//
// Use [DocBase] to create a base document, register endpoints with [Get],
// [Post], [Put], [Patch], or [Delete], and serve the Swagger UI with
// [SwaggerHandlerMust]:
//
//	doc := openapi.DocBase("my-api", "My API", "1.0")
//	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
//	    Request:  orderValidator,
//	    Response: orderValidator,
//	})
//	http.Handle("/swagger/", openapi.SwaggerHandlerMust("/swagger/", doc))
package openapi
