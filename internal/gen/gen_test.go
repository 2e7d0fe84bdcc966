package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apiary-go/googleapis/internal/discovery"
)

const testDocJSON = `{
	"id": "library:v1",
	"name": "library",
	"version": "v1",
	"title": "Library API",
	"rootUrl": "https://library.googleapis.com/",
	"servicePath": "",
	"auth": {
		"oauth2": {
			"scopes": {
				"https://www.googleapis.com/auth/cloud-platform": {
					"description": "See and manage your Google Cloud data."
				}
			}
		}
	},
	"schemas": {
		"Shelf": {
			"id": "Shelf",
			"type": "object",
			"description": "A shelf of books.",
			"properties": {
				"name": {"type": "string"},
				"bookCount": {"type": "string", "format": "int64"},
				"createTime": {"type": "string", "format": "google-datetime"},
				"labels": {"type": "object", "additionalProperties": {"type": "string"}},
				"metadata": {"type": "any"},
				"theme": {
					"type": "object",
					"properties": {"color": {"type": "string"}}
				}
			}
		},
		"ListShelvesResponse": {
			"id": "ListShelvesResponse",
			"type": "object",
			"properties": {
				"shelves": {"type": "array", "items": {"$ref": "Shelf"}},
				"nextPageToken": {"type": "string"}
			}
		}
	},
	"resources": {
		"shelves": {
			"methods": {
				"get": {
					"id": "library.shelves.get",
					"path": "v1/{+name}",
					"httpMethod": "GET",
					"parameters": {
						"name": {"type": "string", "required": true, "location": "path"}
					},
					"parameterOrder": ["name"],
					"response": {"$ref": "Shelf"}
				},
				"list": {
					"id": "library.shelves.list",
					"path": "v1/shelves",
					"httpMethod": "GET",
					"parameters": {
						"pageSize": {"type": "string", "format": "int64", "location": "query"}
					},
					"parameterOrder": ["pageSize"],
					"response": {"$ref": "ListShelvesResponse"}
				},
				"create": {
					"id": "library.shelves.create",
					"path": "v1/shelves",
					"httpMethod": "POST",
					"request": {"$ref": "Shelf"},
					"response": {"$ref": "Shelf"}
				},
				"delete": {
					"id": "library.shelves.delete",
					"path": "v1/{+name}",
					"httpMethod": "DELETE",
					"parameters": {
						"name": {"type": "string", "required": true, "location": "path"}
					},
					"parameterOrder": ["name"]
				}
			}
		}
	}
}`

func testDoc(t *testing.T) *discovery.Document {
	t.Helper()
	doc, err := discovery.Load(strings.NewReader(testDocJSON))
	require.NoError(t, err)
	return doc
}

func TestGenerate(t *testing.T) {
	src, err := Generate(testDoc(t), Options{})
	require.NoError(t, err)
	out := string(src)

	require.True(t, strings.HasPrefix(out, "// Code generated by gapigen from the library:v1 Discovery document. DO NOT EDIT."))
	require.Contains(t, out, "package library\n")
	require.Contains(t, out, `basePath = "https://library.googleapis.com/"`)
	require.Contains(t, out, `CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"`)

	require.Contains(t, out, "type Service struct {")
	require.Contains(t, out, "Shelves *ShelvesService")
	require.Contains(t, out, "func NewService(ctx context.Context, opts ...gapi.Option) (*Service, error)")
	require.Contains(t, out, "s.Shelves = &ShelvesService{c: c}")

	// one method per RPC, context first
	require.Contains(t, out, "func (r *ShelvesService) Get(ctx context.Context, name string, opts ...gapi.CallOption) (*Shelf, error)")
	require.Contains(t, out, "func (r *ShelvesService) Create(ctx context.Context, shelf *Shelf, opts ...gapi.CallOption) (*Shelf, error)")
	require.Contains(t, out, "func (r *ShelvesService) Delete(ctx context.Context, name string, opts ...gapi.CallOption) error")

	// int64 query parameter becomes a native arg formatted with strconv
	require.Contains(t, out, "func (r *ShelvesService) List(ctx context.Context, pageSize int64, opts ...gapi.CallOption) (*ListShelvesResponse, error)")
	require.Contains(t, out, `gapi.Query("pageSize", strconv.FormatInt(pageSize, 10))`)
	require.Contains(t, out, `"strconv"`)

	// schema type mapping
	require.Contains(t, out, "BookCount gapi.Int64")
	require.Contains(t, out, "CreateTime *gapi.Time")
	require.Contains(t, out, "Labels map[string]string")
	require.Contains(t, out, "Metadata json.RawMessage")
	require.Contains(t, out, "Shelves []*Shelf")

	// inline objects become synthesized parent+field structs
	require.Contains(t, out, "Theme *ShelfTheme")
	require.Contains(t, out, "type ShelfTheme struct {")
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(testDoc(t), Options{})
	require.NoError(t, err)
	b, err := Generate(testDoc(t), Options{})
	require.NoError(t, err)
	require.Equal(t, string(a), string(b))
}

func TestGenerate_PackageOverride(t *testing.T) {
	src, err := Generate(testDoc(t), Options{PackageName: "libraryv1"})
	require.NoError(t, err)
	require.Contains(t, string(src), "package libraryv1\n")
}

func TestGenerate_NestedResources(t *testing.T) {
	doc := testDoc(t)
	doc.Resources["shelves"].Resources = map[string]*discovery.Resource{
		"books": {
			Methods: map[string]*discovery.Method{
				"get": {
					ID:         "library.shelves.books.get",
					Path:       "v1/{+name}",
					HTTPMethod: "GET",
					Parameters: map[string]*discovery.Schema{
						"name": {Type: "string", Required: true, Location: "path"},
					},
					ParameterOrder: []string{"name"},
					Response:       &discovery.SchemaRef{Ref: "Shelf"},
				},
			},
		},
	}

	src, err := Generate(doc, Options{})
	require.NoError(t, err)
	out := string(src)

	require.Contains(t, out, "Books *ShelvesBooksService")
	require.Contains(t, out, "s.Shelves.Books = &ShelvesBooksService{c: c}")
	require.Contains(t, out, "func (r *ShelvesBooksService) Get(ctx context.Context, name string, opts ...gapi.CallOption) (*Shelf, error)")

	// the nested assignment must come after its parent is constructed
	require.Less(t,
		strings.Index(out, "s.Shelves = &ShelvesService{c: c}"),
		strings.Index(out, "s.Shelves.Books = &ShelvesBooksService{c: c}"))
}

func TestGenerate_BadSchema(t *testing.T) {
	doc := testDoc(t)
	doc.Schemas["Broken"] = &discovery.Schema{
		Type: "object",
		Properties: map[string]*discovery.Schema{
			"items": {Type: "array"},
		},
	}
	_, err := Generate(doc, Options{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "has no items")
}
