package apiv1

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/require"

	"github.com/zakerai/zaker-web/app/models"
)

const openAPIPath = "../../../public/docs/v1/openapi.yml"

func loadDocument(t *testing.T) *openapi3.T {
	t.Helper()
	doc, err := openapi3.NewLoader().LoadFromFile(openAPIPath)
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))
	return doc
}

// assertMatchesSchema checks a response body against a component schema
func assertMatchesSchema(t *testing.T, doc *openapi3.T, schema string, body []byte) {
	t.Helper()
	ref, ok := doc.Components.Schemas[schema]
	require.True(t, ok, "schema %s missing", schema)

	var value interface{}
	require.NoError(t, json.Unmarshal(body, &value))
	require.NoError(t, ref.Value.VisitJSON(value))
}

func TestOpenAPIDocumentIsValid(t *testing.T) {
	doc := loadDocument(t)

	for _, path := range []string{"/ping", "/catalog", "/pricing", "/plans/{planId}/tiers"} {
		require.NotNil(t, doc.Paths.Find(path), "path %s not documented", path)
	}
}

func TestResponsesMatchOpenAPI(t *testing.T) {
	doc := loadDocument(t)
	app := newTestApp(models.FallbackCatalog())

	cases := []struct {
		target string
		schema string
	}{
		{"/api/v1/ping", "Pong"},
		{"/api/v1/catalog", "Catalog"},
		{"/api/v1/pricing?cycle=yearly", "Pricing"},
		{"/api/v1/pricing?cycle=weekly", "Error"},
		{"/api/v1/plans/1/tiers", "TierList"},
		{"/api/v1/plans/42/tiers", "Error"},
	}
	for _, tc := range cases {
		t.Run(tc.target, func(t *testing.T) {
			_, body := get(t, app, tc.target)
			assertMatchesSchema(t, doc, tc.schema, body)
		})
	}
}
