// Package schema holds the declarative shapes of the API resources, served
// by GET /schema for client-side form generation.
package schema

type Field struct {
	Name     string
	Type     string
	Required bool
}

type Definition struct {
	Title  string
	Fields []Field
}

// JSONSchema renders the definition in a JSON-Schema-like object layout.
func (d Definition) JSONSchema() map[string]any {
	properties := map[string]any{}
	required := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		properties[f.Name] = map[string]any{"type": f.Type}
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return map[string]any{
		"title":      d.Title,
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

var Category = Definition{
	Title: "Category",
	Fields: []Field{
		{Name: "id", Type: "string", Required: false},
		{Name: "name", Type: "string", Required: true},
		{Name: "slug", Type: "string", Required: true},
		{Name: "image", Type: "string", Required: false},
	},
}

var Product = Definition{
	Title: "Product",
	Fields: []Field{
		{Name: "id", Type: "string", Required: false},
		{Name: "title", Type: "string", Required: true},
		{Name: "description", Type: "string", Required: false},
		{Name: "price", Type: "number", Required: true},
		{Name: "category", Type: "string", Required: true},
		{Name: "image", Type: "string", Required: false},
		{Name: "in_stock", Type: "boolean", Required: false},
	},
}
