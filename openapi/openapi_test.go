package openapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v "github.com/go-shape/shapecheck"
	"github.com/go-shape/shapecheck/openapi"
)

var itemValidator = v.Object(
	v.Field("name", v.String().Constrain(v.MinLength(1))),
	v.Field("price", v.Number().Constrain(v.Min(0.01))),
)

var errorValidator = v.Object(
	v.Field("message", v.String()),
)

// --- DocBase ---

func TestDocBase(t *testing.T) {
	doc := openapi.DocBase("test-service", "A test service", "1.0.0")

	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Equal(t, "test-service", doc.Info.Title)
	assert.Equal(t, "A test service", doc.Info.Description)
	assert.Equal(t, "1.0.0", doc.Info.Version)
	assert.NotNil(t, doc.Paths)

	err := doc.Validate(context.Background())
	require.NoError(t, err)
}

// --- NewRequest ---

func TestNewRequest_SingleValidator(t *testing.T) {
	req, err := openapi.NewRequest(itemValidator)
	require.NoError(t, err)
	require.NotNil(t, req.Value)

	content := req.Value.Content["application/json"]
	require.NotNil(t, content)
	require.NotNil(t, content.Schema.Value)

	// Single validator: schema is the validator's own, no OneOf wrapper.
	assert.Empty(t, content.Schema.Value.OneOf)
	assert.Contains(t, content.Schema.Value.Properties, "name")
	assert.Contains(t, content.Schema.Value.Properties, "price")
	assert.Equal(t, []string{"name", "price"}, content.Schema.Value.Required)
}

func TestNewRequest_MultipleValidators(t *testing.T) {
	req, err := openapi.NewRequest(itemValidator, errorValidator)
	require.NoError(t, err)

	content := req.Value.Content["application/json"]
	require.Len(t, content.Schema.Value.OneOf, 2)
	assert.Contains(t, content.Schema.Value.OneOf[0].Value.Properties, "name")
	assert.Contains(t, content.Schema.Value.OneOf[1].Value.Properties, "message")
}

func TestNewRequest_NoValidators(t *testing.T) {
	_, err := openapi.NewRequest()
	assert.Error(t, err)
}

func TestNewRequestMust_Panics(t *testing.T) {
	assert.Panics(t, func() {
		openapi.NewRequestMust()
	})
}

// --- NewResponse ---

func TestNewResponse_SingleStatusCode(t *testing.T) {
	resp, err := openapi.NewResponse(map[string]openapi.Response{
		"200": {Desc: "success", Bodies: []v.SchemaProvider{itemValidator}},
	})
	require.NoError(t, err)

	r := resp.Value("200")
	require.NotNil(t, r)
	assert.Equal(t, "success", *r.Value.Description)

	content := r.Value.Content["application/json"]
	require.NotNil(t, content)
	assert.Contains(t, content.Schema.Value.Properties, "name")
}

func TestNewResponse_MultipleStatusCodes(t *testing.T) {
	resp, err := openapi.NewResponse(map[string]openapi.Response{
		"200": {Desc: "success", Bodies: []v.SchemaProvider{itemValidator}},
		"422": {Desc: "rejected", Bodies: []v.SchemaProvider{errorValidator}},
	})
	require.NoError(t, err)

	assert.NotNil(t, resp.Value("200"))
	assert.NotNil(t, resp.Value("422"))
}

func TestNewResponse_MultipleBodiesOneOf(t *testing.T) {
	resp, err := openapi.NewResponse(map[string]openapi.Response{
		"200": {Desc: "success", Bodies: []v.SchemaProvider{itemValidator, errorValidator}},
	})
	require.NoError(t, err)

	content := resp.Value("200").Value.Content["application/json"]
	assert.Len(t, content.Schema.Value.OneOf, 2)
}

func TestNewResponse_NoValues(t *testing.T) {
	_, err := openapi.NewResponse(map[string]openapi.Response{})
	assert.Error(t, err)
}

func TestNewResponseMust_Panics(t *testing.T) {
	assert.Panics(t, func() {
		openapi.NewResponseMust(map[string]openapi.Response{})
	})
}

// --- AddPath ---

func TestAddPath_Methods(t *testing.T) {
	doc := openapi.DocBase("test", "test", "1.0")

	methods := []string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
	}

	for _, method := range methods {
		op := &openapi3.Operation{
			OperationID: method + "-test",
			Responses:   openapi3.NewResponses(),
		}
		openapi.AddPath("/test-"+method, method, doc, op)
	}

	assert.NotNil(t, doc.Paths.Value("/test-GET").Get)
	assert.NotNil(t, doc.Paths.Value("/test-POST").Post)
	assert.NotNil(t, doc.Paths.Value("/test-PUT").Put)
	assert.NotNil(t, doc.Paths.Value("/test-PATCH").Patch)
	assert.NotNil(t, doc.Paths.Value("/test-DELETE").Delete)
}

func TestAddPath_SamePath(t *testing.T) {
	doc := openapi.DocBase("test", "test", "1.0")

	getOp := &openapi3.Operation{
		OperationID: "getItems",
		Responses:   openapi3.NewResponses(),
	}
	postOp := &openapi3.Operation{
		OperationID: "createItem",
		Responses:   openapi3.NewResponses(),
	}

	openapi.AddPath("/items", http.MethodGet, doc, getOp)
	openapi.AddPath("/items", http.MethodPost, doc, postOp)

	path := doc.Paths.Value("/items")
	require.NotNil(t, path)
	assert.Equal(t, "getItems", path.Get.OperationID)
	assert.Equal(t, "createItem", path.Post.OperationID)
}

// --- Endpoint helpers ---

func TestPost_Endpoint(t *testing.T) {
	doc := openapi.DocBase("shop", "shop api", "1.0")

	openapi.Post(doc, "/items", "createItem", openapi.Endpoint{
		Summary:  "Create an item",
		Request:  itemValidator,
		Response: itemValidator,
	})

	op := doc.Paths.Value("/items").Post
	require.NotNil(t, op)
	assert.Equal(t, "createItem", op.OperationID)
	assert.Equal(t, "Create an item", op.Summary)
	require.NotNil(t, op.RequestBody)
	require.NotNil(t, op.Responses.Value("200"))
	assert.Equal(t, "OK", *op.Responses.Value("200").Value.Description)
}

func TestPost_EndpointResponsesMap(t *testing.T) {
	doc := openapi.DocBase("shop", "shop api", "1.0")

	openapi.Post(doc, "/items", "createItem", openapi.Endpoint{
		Request: itemValidator,
		Responses: map[string]openapi.Response{
			"200": {Desc: "created", Bodies: []v.SchemaProvider{itemValidator}},
			"422": {Desc: "rejected", Bodies: []v.SchemaProvider{errorValidator}},
		},
	})

	op := doc.Paths.Value("/items").Post
	assert.Equal(t, "created", *op.Responses.Value("200").Value.Description)
	assert.Equal(t, "rejected", *op.Responses.Value("422").Value.Description)
}

func TestGet_EndpointWithoutBodies(t *testing.T) {
	doc := openapi.DocBase("shop", "shop api", "1.0")

	openapi.Get(doc, "/health", "health", openapi.Endpoint{Summary: "Liveness probe"})

	op := doc.Paths.Value("/health").Get
	require.NotNil(t, op)
	assert.Nil(t, op.RequestBody)
	assert.NotNil(t, op.Responses)
}

// --- Full doc round trip ---

func TestFullDocRoundTrip(t *testing.T) {
	doc := openapi.DocBase("shop", "shop api", "1.0")

	openapi.Post(doc, "/items", "createItem", openapi.Endpoint{
		Request: itemValidator,
		Responses: map[string]openapi.Response{
			"200": {Desc: "created", Bodies: []v.SchemaProvider{itemValidator}},
		},
	})
	openapi.Get(doc, "/items", "listItems", openapi.Endpoint{
		Response: v.Array(itemValidator),
	})

	err := doc.Validate(context.Background())
	require.NoError(t, err)

	b, err := doc.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(b), `"/items"`)
}

// --- Swagger handler ---

func TestSwaggerHandler(t *testing.T) {
	doc := openapi.DocBase("shop", "shop api", "1.0")
	openapi.Get(doc, "/items", "listItems", openapi.Endpoint{
		Response: v.Array(itemValidator),
	})

	h, err := openapi.SwaggerHandler("/swagger/", doc)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "swagger-ui")
	assert.Contains(t, rec.Body.String(), "shop")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/docs.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"listItems"`)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/other", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSwaggerHandler_PrefixWithoutTrailingSlash(t *testing.T) {
	doc := openapi.DocBase("shop", "shop api", "1.0")
	openapi.Get(doc, "/items", "listItems", openapi.Endpoint{
		Response: v.Array(itemValidator),
	})

	h, err := openapi.SwaggerHandler("/docs", doc)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "swagger-ui")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/docs.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"listItems"`)
}

func TestSwaggerHandler_InvalidDoc(t *testing.T) {
	broken := &openapi3.T{OpenAPI: "3.0.3", Paths: &openapi3.Paths{}}

	_, err := openapi.SwaggerHandler("/swagger/", broken)
	assert.Error(t, err)

	assert.Panics(t, func() {
		openapi.SwaggerHandlerMust("/swagger/", broken)
	})
}
