package docs

import (
	"strings"
	"testing"
)

func TestSwaggerSpec(t *testing.T) {
	if SwaggerInfo == nil {
		t.Fatal("swagger info not initialized")
	}
	if SwaggerInfo.Title != "Marome Markets API" {
		t.Fatalf("unexpected title %q", SwaggerInfo.Title)
	}
	if !strings.Contains(SwaggerInfo.SwaggerTemplate, "/api/insights/overview") {
		t.Fatal("swagger template missing the insights routes")
	}
}
