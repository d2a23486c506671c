package contracts

import (
	_ "embed"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed catalog.schema.json
var catalogSchemaJSON string

var catalogSchema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	if err := compiler.AddResource("catalog.schema.json", strings.NewReader(catalogSchemaJSON)); err != nil {
		log.Fatalf("failed to add catalog schema resource: %v", err)
	}

	schema, err := compiler.Compile("catalog.schema.json")
	if err != nil {
		log.Fatalf("failed to compile catalog schema: %v", err)
	}
	catalogSchema = schema
}

// ValidateCatalog checks a decoded catalog document against the embedded
// schema. The document must be the result of json.Unmarshal into an
// interface{}.
func ValidateCatalog(doc interface{}) error {
	return catalogSchema.Validate(doc)
}
