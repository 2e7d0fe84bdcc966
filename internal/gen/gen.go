// Package gen renders Go client bindings from a Discovery document.
// The emitted file has the same shape as the maintained packages in
// this module: a Service facade with one sub-service per resource, one
// context-first method per RPC and DTO structs for every schema.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/apiary-go/googleapis/internal/discovery"
)

const defaultGapiImport = "github.com/apiary-go/googleapis/pkg/gapi"

// Options tweaks the rendered output.
type Options struct {
	// PackageName overrides the package name derived from the API name.
	PackageName string

	// GapiImport overrides the import path of the shared transport
	// package.
	GapiImport string
}

// Generate renders a complete, gofmt-formatted Go source file for the
// given Discovery document.
func Generate(doc *discovery.Document, opts Options) ([]byte, error) {
	b := &builder{
		doc:        doc,
		structsSeen: map[string]bool{},
	}
	model, err := b.build(opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, model); err != nil {
		return nil, errors.Wrap(err, "render client template")
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "generated code for %s does not parse", doc.ID)
	}
	return src, nil
}

type fileModel struct {
	Package      string
	APIID        string
	Title        string
	DocLink      string
	BasePath     string
	GapiImport   string
	NeedsJSON    bool
	NeedsStrconv bool
	Scopes       []scopeModel
	Structs      []structModel
	Services     []serviceModel
	Wiring       []wireModel
}

// wireModel is one assignment in NewService, e.g.
// s.Queries.Reports = &QueriesReportsService{c: c}.
type wireModel struct {
	FieldPath string
	TypeName  string
}

type scopeModel struct {
	Name        string
	URL         string
	Description string
}

type structModel struct {
	Comment string
	Name    string
	Fields  []fieldModel
}

type fieldModel struct {
	Comment string
	Name    string
	Type    string
	Wire    string
}

type serviceModel struct {
	TypeName string
	Comment  string
	Root     bool
	Children []childModel
	Methods  []methodModel
}

type childModel struct {
	FieldName string
	TypeName  string
}

type methodModel struct {
	Comment    string
	Recv       string
	ClientExpr string
	Name       string
	Args       string
	HTTPMethod string
	Path       string
	PathParams []kvModel
	Queries    []kvModel
	BodyExpr   string
	ResultType string
}

type kvModel struct {
	Wire string
	Expr string
}

type builder struct {
	doc         *discovery.Document
	model       fileModel
	structsSeen map[string]bool
}

func (b *builder) build(opts Options) (*fileModel, error) {
	doc := b.doc
	pkg := opts.PackageName
	if pkg == "" {
		pkg = packageName(doc.Name)
	}
	gapiImport := opts.GapiImport
	if gapiImport == "" {
		gapiImport = defaultGapiImport
	}
	b.model = fileModel{
		Package:    pkg,
		APIID:      doc.ID,
		Title:      doc.Title,
		DocLink:    doc.DocumentationLink,
		BasePath:   doc.BaseEndpoint(),
		GapiImport: gapiImport,
	}
	if b.model.APIID == "" {
		b.model.APIID = doc.Name + ":" + doc.Version
	}
	if b.model.Title == "" {
		b.model.Title = doc.Name + " API"
	}

	b.buildScopes()
	if err := b.buildStructs(); err != nil {
		return nil, err
	}
	if err := b.buildServices(); err != nil {
		return nil, err
	}
	return &b.model, nil
}

func (b *builder) buildScopes() {
	if b.doc.Auth == nil {
		return
	}
	urls := make([]string, 0, len(b.doc.Auth.OAuth2.Scopes))
	for u := range b.doc.Auth.OAuth2.Scopes {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	for _, u := range urls {
		b.model.Scopes = append(b.model.Scopes, scopeModel{
			Name:        scopeConstName(u),
			URL:         u,
			Description: b.doc.Auth.OAuth2.Scopes[u].Description,
		})
	}
}

func (b *builder) buildStructs() error {
	names := make([]string, 0, len(b.doc.Schemas))
	for name := range b.doc.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := b.addStruct(exportedName(name), b.doc.Schemas[name]); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) addStruct(name string, s *discovery.Schema) error {
	if b.structsSeen[name] {
		return nil
	}
	b.structsSeen[name] = true

	st := structModel{Name: name}
	if s.Description != "" {
		st.Comment = wrapComment(name+": "+s.Description, "")
	}
	props := make([]string, 0, len(s.Properties))
	for p := range s.Properties {
		props = append(props, p)
	}
	sort.Strings(props)
	for _, p := range props {
		prop := s.Properties[p]
		typ, err := b.fieldType(name, p, prop)
		if err != nil {
			return err
		}
		f := fieldModel{
			Name: exportedName(p),
			Type: typ,
			Wire: p,
		}
		if prop.Description != "" {
			f.Comment = wrapComment(f.Name+": "+prop.Description, "\t")
		}
		st.Fields = append(st.Fields, f)
	}
	b.model.Structs = append(b.model.Structs, st)
	return nil
}

// fieldType maps a schema node to a Go type, synthesizing named
// structs for inline objects (named parent+Field, the Discovery
// generator convention).
func (b *builder) fieldType(parent, field string, s *discovery.Schema) (string, error) {
	switch {
	case s.Ref != "":
		return "*" + exportedName(s.Ref), nil
	case s.Type == "string":
		switch s.Format {
		case "int64":
			return "gapi.Int64", nil
		case "uint64":
			return "gapi.UInt64", nil
		case "google-datetime", "date-time":
			return "*gapi.Time", nil
		default:
			return "string", nil
		}
	case s.Type == "integer":
		return "int64", nil
	case s.Type == "number":
		return "float64", nil
	case s.Type == "boolean":
		return "bool", nil
	case s.Type == "array":
		if s.Items == nil {
			return "", errors.Errorf("array schema %s.%s has no items", parent, field)
		}
		elem, err := b.fieldType(parent, field, s.Items)
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil
	case s.Type == "object":
		if s.AdditionalProperties != nil {
			val, err := b.fieldType(parent, field, s.AdditionalProperties)
			if err != nil {
				return "", err
			}
			return "map[string]" + val, nil
		}
		if len(s.Properties) > 0 {
			name := parent + exportedName(field)
			if err := b.addStruct(name, s); err != nil {
				return "", err
			}
			return "*" + name, nil
		}
		b.model.NeedsJSON = true
		return "json.RawMessage", nil
	case s.Type == "any", s.Type == "":
		b.model.NeedsJSON = true
		return "json.RawMessage", nil
	default:
		return "", errors.Errorf("unsupported schema type %q for %s.%s", s.Type, parent, field)
	}
}

func (b *builder) buildServices() error {
	root := serviceModel{TypeName: "Service", Root: true}
	names := sortedResourceNames(b.doc.Resources)
	for _, name := range names {
		child := exportedName(name) + "Service"
		root.Children = append(root.Children, childModel{
			FieldName: exportedName(name),
			TypeName:  child,
		})
		b.model.Wiring = append(b.model.Wiring, wireModel{
			FieldPath: "s." + exportedName(name),
			TypeName:  child,
		})
	}
	// API-level methods hang off the root service.
	if err := b.addMethods(&root, "r.client", b.doc.Methods); err != nil {
		return err
	}
	b.model.Services = append(b.model.Services, root)

	for _, name := range names {
		if err := b.addResource(exportedName(name), name, "s."+exportedName(name), b.doc.Resources[name]); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) addResource(prefix, name, fieldPath string, res *discovery.Resource) error {
	svc := serviceModel{
		TypeName: prefix + "Service",
		Comment:  fmt.Sprintf("// %sService groups the `%s` RPCs.", prefix, name),
	}
	subNames := sortedResourceNames(res.Resources)
	for _, sub := range subNames {
		svc.Children = append(svc.Children, childModel{
			FieldName: exportedName(sub),
			TypeName:  prefix + exportedName(sub) + "Service",
		})
		b.model.Wiring = append(b.model.Wiring, wireModel{
			FieldPath: fieldPath + "." + exportedName(sub),
			TypeName:  prefix + exportedName(sub) + "Service",
		})
	}
	if err := b.addMethods(&svc, "r.c", res.Methods); err != nil {
		return err
	}
	b.model.Services = append(b.model.Services, svc)

	for _, sub := range subNames {
		if err := b.addResource(prefix+exportedName(sub), name+"."+sub, fieldPath+"."+exportedName(sub), res.Resources[sub]); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) addMethods(svc *serviceModel, clientExpr string, methods map[string]*discovery.Method) error {
	names := make([]string, 0, len(methods))
	for n := range methods {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		m, err := b.buildMethod(svc.TypeName, n, methods[n])
		if err != nil {
			return err
		}
		m.ClientExpr = clientExpr
		svc.Methods = append(svc.Methods, *m)
	}
	return nil
}

func (b *builder) buildMethod(recv, name string, m *discovery.Method) (*methodModel, error) {
	out := &methodModel{
		Recv:       recv,
		Name:       exportedName(name),
		HTTPMethod: httpConst(m.HTTPMethod),
		Path:       m.Path,
	}
	if m.Description != "" {
		out.Comment = wrapComment(out.Name+": "+m.Description, "")
	}

	var args []string
	for _, pname := range m.ParameterOrder {
		p, ok := m.Parameters[pname]
		if !ok {
			return nil, errors.Errorf("method %s orders unknown parameter %q", m.ID, pname)
		}
		arg := argName(pname)
		expr := arg
		typ := "string"
		switch p.Format {
		case "int64":
			typ = "int64"
			expr = fmt.Sprintf("strconv.FormatInt(%s, 10)", arg)
			b.model.NeedsStrconv = true
		case "uint64":
			typ = "uint64"
			expr = fmt.Sprintf("strconv.FormatUint(%s, 10)", arg)
			b.model.NeedsStrconv = true
		}
		args = append(args, arg+" "+typ)
		if p.Location == "query" {
			out.Queries = append(out.Queries, kvModel{Wire: pname, Expr: expr})
		} else {
			out.PathParams = append(out.PathParams, kvModel{Wire: pname, Expr: expr})
		}
	}
	if m.Request != nil && m.Request.Ref != "" {
		arg := argName(m.Request.Ref)
		args = append(args, arg+" *"+exportedName(m.Request.Ref))
		out.BodyExpr = arg
	}
	out.Args = strings.Join(args, ", ")
	if m.Response != nil && m.Response.Ref != "" {
		out.ResultType = exportedName(m.Response.Ref)
	}
	return out, nil
}

func sortedResourceNames(res map[string]*discovery.Resource) []string {
	names := make([]string, 0, len(res))
	for n := range res {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func httpConst(method string) string {
	switch strings.ToUpper(method) {
	case "GET":
		return "http.MethodGet"
	case "POST":
		return "http.MethodPost"
	case "PUT":
		return "http.MethodPut"
	case "PATCH":
		return "http.MethodPatch"
	case "DELETE":
		return "http.MethodDelete"
	case "HEAD":
		return "http.MethodHead"
	default:
		return fmt.Sprintf("%q", strings.ToUpper(method))
	}
}

var fileTemplate = template.Must(template.New("client").Parse(`// Code generated by gapigen from the {{.APIID}} Discovery document. DO NOT EDIT.

// Package {{.Package}} provides access to the {{.Title}}.
{{- if .DocLink}}
//
// For product documentation, see: {{.DocLink}}
{{- end}}
package {{.Package}}

import (
	"context"
{{- if .NeedsJSON}}
	"encoding/json"
{{- end}}
	"net/http"
{{- if .NeedsStrconv}}
	"strconv"
{{- end}}

	"{{.GapiImport}}"
)

const (
	apiID    = "{{.APIID}}"
	basePath = "{{.BasePath}}"
)

var _ = apiID
{{if .Scopes}}
// OAuth2 scopes used by this API.
const (
{{- range .Scopes}}
	// {{if .Description}}{{.Description}}{{else}}{{.URL}}{{end}}
	{{.Name}} = "{{.URL}}"
{{end}})
{{end}}
{{- range .Services}}
{{- if .Root}}
// Service is the {{$.Title}} client.
type Service struct {
	client *gapi.Client
{{range .Children}}
	{{.FieldName}} *{{.TypeName}}
{{- end}}
}

func NewService(ctx context.Context, opts ...gapi.Option) (*Service, error) {
	_ = ctx
	c := gapi.NewClient(basePath, opts...)
	s := &Service{client: c}
{{- range $.Wiring}}
	{{.FieldPath}} = &{{.TypeName}}{c: c}
{{- end}}
	return s, nil
}
{{- else}}
{{.Comment}}
type {{.TypeName}} struct {
	c *gapi.Client
{{range .Children}}
	{{.FieldName}} *{{.TypeName}}
{{- end}}
}
{{- end}}
{{range .Methods}}
{{- if .Comment}}
{{.Comment}}
{{- end}}
func (r *{{.Recv}}) {{.Name}}(ctx context.Context{{if .Args}}, {{.Args}}{{end}}, opts ...gapi.CallOption) {{if .ResultType}}(*{{.ResultType}}, error){{else}}error{{end}} {
{{- if .ResultType}}
	var out {{.ResultType}}
{{- end}}
	call := &gapi.Call{
		Method: {{.HTTPMethod}},
		Path:   "{{.Path}}",
{{- if .PathParams}}
		PathParams: map[string]string{
{{- range .PathParams}}
			"{{.Wire}}": {{.Expr}},
{{- end}}
		},
{{- end}}
{{- if .BodyExpr}}
		Body: {{.BodyExpr}},
{{- end}}
{{- if .ResultType}}
		Result: &out,
{{- end}}
	}
{{- range .Queries}}
	opts = append(opts, gapi.Query("{{.Wire}}", {{.Expr}}))
{{- end}}
{{- if .ResultType}}
	if err := {{.ClientExpr}}.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
{{- else}}
	return {{.ClientExpr}}.Do(ctx, call, opts...)
{{- end}}
}
{{end}}
{{- end}}
{{- range .Structs}}
{{- if .Comment}}
{{.Comment}}
{{- end}}
type {{.Name}} struct {
{{- range .Fields}}
{{- if .Comment}}
{{.Comment}}
{{- end}}
	{{.Name}} {{.Type}} ` + "`" + `json:"{{.Wire}},omitempty"` + "`" + `
{{end}}}
{{end}}`))
