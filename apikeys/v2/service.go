// Package apikeys provides access to the API Keys API.
//
// For product documentation, see: https://cloud.google.com/api-keys/docs
package apikeys

import (
	"context"
	"net/http"

	"github.com/apiary-go/googleapis/pkg/gapi"
)

const (
	apiID    = "apikeys:v2"
	basePath = "https://apikeys.googleapis.com/"
)

// OAuth2 scopes used by this API.
const (
	// See, edit, configure, and delete your Google Cloud data
	CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

	// View your data across Google Cloud services
	CloudPlatformReadOnlyScope = "https://www.googleapis.com/auth/cloud-platform.read-only"
)

// Service is the API Keys API client.
type Service struct {
	client *gapi.Client

	Keys       *KeysService
	Operations *OperationsService
}

// NewService creates a Service. Pass gapi options to attach
// credentials or override the endpoint.
func NewService(ctx context.Context, opts ...gapi.Option) (*Service, error) {
	_ = ctx
	c := gapi.NewClient(basePath, opts...)
	s := &Service{client: c}
	s.Keys = &KeysService{c: c}
	s.Operations = &OperationsService{c: c}
	return s, nil
}

// KeysService groups the `projects.locations.keys` RPCs.
type KeysService struct {
	c *gapi.Client
}

// Create creates a new API key in the given project and location.
// parent is `projects/{project}/locations/{location}`; keyId may be
// empty to let the service pick one.
func (r *KeysService) Create(ctx context.Context, parent string, key *Key, keyID string, opts ...gapi.CallOption) (*Operation, error) {
	var out Operation
	call := &gapi.Call{
		Method:     http.MethodPost,
		Path:       "v2/{+parent}/keys",
		PathParams: map[string]string{"parent": parent},
		Body:       key,
		Result:     &out,
	}
	if keyID != "" {
		opts = append(opts, gapi.Query("keyId", keyID))
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// List lists the keys owned by a project in a location. Page through
// results with gapi.Query("pageToken", ...).
func (r *KeysService) List(ctx context.Context, parent string, opts ...gapi.CallOption) (*ListKeysResponse, error) {
	var out ListKeysResponse
	call := &gapi.Call{
		Method:     http.MethodGet,
		Path:       "v2/{+parent}/keys",
		PathParams: map[string]string{"parent": parent},
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches the metadata of an API key. The key string is never
// included; use GetKeyString for that.
func (r *KeysService) Get(ctx context.Context, name string, opts ...gapi.CallOption) (*Key, error) {
	var out Key
	call := &gapi.Call{
		Method:     http.MethodGet,
		Path:       "v2/{+name}",
		PathParams: map[string]string{"name": name},
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetKeyString fetches the secret key string of an API key.
func (r *KeysService) GetKeyString(ctx context.Context, name string, opts ...gapi.CallOption) (*GetKeyStringResponse, error) {
	var out GetKeyStringResponse
	call := &gapi.Call{
		Method:     http.MethodGet,
		Path:       "v2/{+name}/keyString",
		PathParams: map[string]string{"name": name},
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Patch updates an API key; updateMask names the fields to change.
func (r *KeysService) Patch(ctx context.Context, name string, key *Key, updateMask string, opts ...gapi.CallOption) (*Operation, error) {
	var out Operation
	call := &gapi.Call{
		Method:     http.MethodPatch,
		Path:       "v2/{+name}",
		PathParams: map[string]string{"name": name},
		Body:       key,
		Result:     &out,
	}
	if updateMask != "" {
		opts = append(opts, gapi.Query("updateMask", updateMask))
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete soft-deletes an API key; it can be undeleted for 30 days.
func (r *KeysService) Delete(ctx context.Context, name string, opts ...gapi.CallOption) (*Operation, error) {
	var out Operation
	call := &gapi.Call{
		Method:     http.MethodDelete,
		Path:       "v2/{+name}",
		PathParams: map[string]string{"name": name},
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Undelete restores a soft-deleted API key.
func (r *KeysService) Undelete(ctx context.Context, name string, opts ...gapi.CallOption) (*Operation, error) {
	var out Operation
	call := &gapi.Call{
		Method:     http.MethodPost,
		Path:       "v2/{+name}:undelete",
		PathParams: map[string]string{"name": name},
		Body:       &UndeleteKeyRequest{},
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// LookupKey finds the project and key resource name that own a key
// string.
func (r *KeysService) LookupKey(ctx context.Context, keyString string, opts ...gapi.CallOption) (*LookupKeyResponse, error) {
	var out LookupKeyResponse
	call := &gapi.Call{
		Method: http.MethodGet,
		Path:   "v2/keys:lookupKey",
		Result: &out,
	}
	opts = append(opts, gapi.Query("keyString", keyString))
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// OperationsService groups the `operations` RPCs.
type OperationsService struct {
	c *gapi.Client
}

// Get fetches the latest state of a long-running operation.
func (r *OperationsService) Get(ctx context.Context, name string, opts ...gapi.CallOption) (*Operation, error) {
	var out Operation
	call := &gapi.Call{
		Method:     http.MethodGet,
		Path:       "v2/{+name}",
		PathParams: map[string]string{"name": name},
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}
