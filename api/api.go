// Package api embeds the OpenAPI contract so the HTTP adapter can validate
// incoming requests against it at runtime.
package api

import _ "embed"

//go:embed openapi.yml
var OpenAPISpec []byte
