// Package openapi builds the service's OpenAPI 3.0 document.
//
// The document is derived at startup from the same request/response
// type declarations the handlers validate against, so the published
// docs cannot drift from the implemented API. The router marshals the
// result once and hands it to the docs handler.
package openapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/swaggest/jsonschema-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/pademacena/base-api/internal/errs"
	"github.com/pademacena/base-api/internal/handler"
)

const (
	apiTitle   = "base-api"
	apiVersion = "1.0.0"
)

// Build assembles the OpenAPI document for every registered route.
//
// Route paths here must stay in sync with internal/router; the router
// test cross-checks the document against the registered routes.
func Build() (*openapi3.Spec, error) {
	spec := &openapi3.Spec{
		Openapi: "3.0.3",
		Info: openapi3.Info{
			Title:   apiTitle,
			Version: apiVersion,
		},
	}

	if err := addListUsers(spec); err != nil {
		return nil, err
	}
	if err := addCreateUser(spec); err != nil {
		return nil, err
	}
	if err := addGetUser(spec); err != nil {
		return nil, err
	}
	if err := addHealth(spec); err != nil {
		return nil, err
	}

	return spec, nil
}

// BuildJSON renders the document as JSON, ready to serve.
func BuildJSON() ([]byte, error) {
	spec, err := Build()
	if err != nil {
		return nil, err
	}

	out, err := json.Marshal(spec)
	if err != nil {
		return nil, errors.Wrap(err, "could not marshal openapi spec")
	}
	return out, nil
}

func addListUsers(spec *openapi3.Spec) error {
	op := openapi3.Operation{
		ID:      strPtr("listUsers"),
		Summary: strPtr("List users"),
		Tags:    []string{"users"},
	}

	if err := setJSONResponse(&op, http.StatusOK, "All known users.", handler.ListUsersResponse{}); err != nil {
		return err
	}

	return spec.AddOperation(http.MethodGet, "/api/users", op)
}

func addCreateUser(spec *openapi3.Spec) error {
	op := openapi3.Operation{
		ID:      strPtr("createUser"),
		Summary: strPtr("Create a user"),
		Tags:    []string{"users"},
	}

	reqBody, err := jsonRequestBody(handler.CreateUserRequest{})
	if err != nil {
		return err
	}
	op.RequestBody = reqBody

	if err := setJSONResponse(&op, http.StatusCreated, "The created user.", handler.UserResponse{}); err != nil {
		return err
	}
	if err := setJSONResponse(&op, http.StatusBadRequest, "Validation failed.", errs.HTTPError{}); err != nil {
		return err
	}

	return spec.AddOperation(http.MethodPost, "/api/users", op)
}

func addGetUser(spec *openapi3.Spec) error {
	idSchema, err := schemaOf("")
	if err != nil {
		return err
	}

	op := openapi3.Operation{
		ID:      strPtr("getUser"),
		Summary: strPtr("Get a user by ID"),
		Tags:    []string{"users"},
		Parameters: []openapi3.ParameterOrRef{
			{
				Parameter: &openapi3.Parameter{
					Name:     "id",
					In:       openapi3.ParameterInPath,
					Required: boolPtr(true),
					Schema:   idSchema,
				},
			},
		},
	}

	if err := setJSONResponse(&op, http.StatusOK, "The requested user.", handler.UserResponse{}); err != nil {
		return err
	}
	if err := setJSONResponse(&op, http.StatusNotFound, "No user with this ID.", errs.HTTPError{}); err != nil {
		return err
	}

	return spec.AddOperation(http.MethodGet, "/api/users/{id}", op)
}

func addHealth(spec *openapi3.Spec) error {
	op := openapi3.Operation{
		ID:      strPtr("checkHealth"),
		Summary: strPtr("Service health"),
		Tags:    []string{"system"},
		Responses: openapi3.Responses{
			MapOfResponseOrRefValues: map[string]openapi3.ResponseOrRef{
				strconv.Itoa(http.StatusOK): {
					Response: &openapi3.Response{
						Description: "The service is healthy.",
					},
				},
			},
		},
	}

	return spec.AddOperation(http.MethodGet, "/status", op)
}

// schemaOf reflects a Go value into an OpenAPI schema, inlining refs so
// the document stays self-contained.
func schemaOf(v any) (*openapi3.SchemaOrRef, error) {
	var reflector jsonschema.Reflector

	jsonSchema, err := reflector.Reflect(v, jsonschema.InlineRefs)
	if err != nil {
		return nil, errors.Wrap(err, "could not reflect schema")
	}

	var schemaOrRef openapi3.SchemaOrRef
	schemaOrRef.FromJSONSchema(jsonSchema.ToSchemaOrBool())
	return &schemaOrRef, nil
}

// jsonRequestBody builds a required application/json request body from
// a Go type.
func jsonRequestBody(v any) (*openapi3.RequestBodyOrRef, error) {
	schema, err := schemaOf(v)
	if err != nil {
		return nil, err
	}

	return &openapi3.RequestBodyOrRef{
		RequestBody: &openapi3.RequestBody{
			Required: boolPtr(true),
			Content: map[string]openapi3.MediaType{
				"application/json": {
					Schema: schema,
				},
			},
		},
	}, nil
}

// setJSONResponse attaches an application/json response for the given
// status code to the operation.
func setJSONResponse(op *openapi3.Operation, status int, description string, v any) error {
	schema, err := schemaOf(v)
	if err != nil {
		return err
	}

	if op.Responses.MapOfResponseOrRefValues == nil {
		op.Responses.MapOfResponseOrRefValues = make(map[string]openapi3.ResponseOrRef)
	}

	op.Responses.MapOfResponseOrRefValues[strconv.Itoa(status)] = openapi3.ResponseOrRef{
		Response: &openapi3.Response{
			Description: description,
			Content: map[string]openapi3.MediaType{
				"application/json": {
					Schema: schema,
				},
			},
		},
	}

	return nil
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
