// Package discovery models the subset of Google Discovery documents
// the generator consumes and knows how to fetch them from the
// Discovery service.
package discovery

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/apiary-go/googleapis/pkg/gapi"
)

const directoryBasePath = "https://www.googleapis.com/discovery/v1/"

// Document is a Discovery REST description.
type Document struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Version           string `json:"version"`
	Revision          string `json:"revision"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	DocumentationLink string `json:"documentationLink"`

	RootURL     string `json:"rootUrl"`
	ServicePath string `json:"servicePath"`
	BaseURL     string `json:"baseUrl"`
	BasePath    string `json:"basePath"`

	Auth      *Auth                `json:"auth"`
	Schemas   map[string]*Schema   `json:"schemas"`
	Resources map[string]*Resource `json:"resources"`
	Methods   map[string]*Method   `json:"methods"`
}

// Auth holds the OAuth2 scope table of a document.
type Auth struct {
	OAuth2 struct {
		Scopes map[string]struct {
			Description string `json:"description"`
		} `json:"scopes"`
	} `json:"oauth2"`
}

// Schema is a Discovery JSON schema node. The same shape describes
// top-level schemas, object properties, array items and method
// parameters.
type Schema struct {
	ID          string `json:"id"`
	Ref         string `json:"$ref"`
	Type        string `json:"type"`
	Format      string `json:"format"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Required    bool   `json:"required"`
	Repeated    bool   `json:"repeated"`

	Enum             []string `json:"enum"`
	EnumDescriptions []string `json:"enumDescriptions"`

	Properties           map[string]*Schema `json:"properties"`
	Items                *Schema            `json:"items"`
	AdditionalProperties *Schema            `json:"additionalProperties"`
}

// Resource is a group of methods, possibly with nested sub-resources.
type Resource struct {
	Methods   map[string]*Method   `json:"methods"`
	Resources map[string]*Resource `json:"resources"`
}

// Method is one RPC endpoint.
type Method struct {
	ID             string             `json:"id"`
	Path           string             `json:"path"`
	HTTPMethod     string             `json:"httpMethod"`
	Description    string             `json:"description"`
	Parameters     map[string]*Schema `json:"parameters"`
	ParameterOrder []string           `json:"parameterOrder"`
	Request        *SchemaRef         `json:"request"`
	Response       *SchemaRef         `json:"response"`
	Scopes         []string           `json:"scopes"`
}

// SchemaRef points at a named schema.
type SchemaRef struct {
	Ref string `json:"$ref"`
}

// Load decodes a Discovery document.
func Load(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode discovery document")
	}
	if doc.Name == "" {
		return nil, errors.New("discovery document has no api name")
	}
	return &doc, nil
}

// LoadFile decodes a Discovery document stored on disk.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open discovery document %s", path)
	}
	defer f.Close()
	return Load(f)
}

// BaseEndpoint returns the URL generated clients should dial:
// rootUrl + servicePath, falling back to the deprecated baseUrl field
// for old documents.
func (d *Document) BaseEndpoint() string {
	if d.RootURL != "" {
		return strings.TrimRight(d.RootURL, "/") + "/" + strings.TrimLeft(d.ServicePath, "/")
	}
	return d.BaseURL
}

// DirectoryItem is one api/version entry in the Discovery directory.
type DirectoryItem struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Version          string `json:"version"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	DiscoveryRestURL string `json:"discoveryRestUrl"`
	Preferred        bool   `json:"preferred"`
}

// Directory is the Discovery directory listing.
type Directory struct {
	Kind  string           `json:"kind"`
	Items []*DirectoryItem `json:"items"`
}

// Client fetches documents from the Discovery service.
type Client struct {
	c *gapi.Client
}

// NewClient returns a Discovery service client. opts may override the
// endpoint for tests.
func NewClient(opts ...gapi.Option) *Client {
	return &Client{c: gapi.NewClient(directoryBasePath, opts...)}
}

// Fetch retrieves the REST description for an `api:version` pair such
// as "apikeys:v2".
func (c *Client) Fetch(ctx context.Context, apiID string) (*Document, error) {
	name, version, ok := strings.Cut(apiID, ":")
	if !ok {
		return nil, errors.Errorf("api id %q is not of the form name:version", apiID)
	}
	var doc Document
	call := &gapi.Call{
		Method:     http.MethodGet,
		Path:       "apis/{api}/{version}/rest",
		PathParams: map[string]string{"api": name, "version": version},
		Result:     &doc,
	}
	if err := c.c.Do(ctx, call); err != nil {
		return nil, errors.Wrapf(err, "fetch discovery document for %s", apiID)
	}
	return &doc, nil
}

// List retrieves the Discovery directory. name filters by api name;
// preferred restricts the listing to preferred versions.
func (c *Client) List(ctx context.Context, name string, preferred bool) (*Directory, error) {
	var dir Directory
	call := &gapi.Call{
		Method: http.MethodGet,
		Path:   "apis",
		Result: &dir,
	}
	var opts []gapi.CallOption
	if name != "" {
		opts = append(opts, gapi.Query("name", name))
	}
	if preferred {
		opts = append(opts, gapi.Query("preferred", strconv.FormatBool(preferred)))
	}
	if err := c.c.Do(ctx, call, opts...); err != nil {
		return nil, errors.Wrap(err, "list discovery directory")
	}
	return &dir, nil
}
