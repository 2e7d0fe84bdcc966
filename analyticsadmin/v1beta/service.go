// Package analyticsadmin provides access to the Google Analytics Admin
// API.
//
// For product documentation, see:
// https://developers.google.com/analytics/devguides/config/admin/v1
package analyticsadmin

import (
	"context"
	"net/http"

	"github.com/apiary-go/googleapis/pkg/gapi"
)

const (
	apiID    = "analyticsadmin:v1beta"
	basePath = "https://analyticsadmin.googleapis.com/"
)

// OAuth2 scopes used by this API.
const (
	// Edit Google Analytics management entities
	AnalyticsEditScope = "https://www.googleapis.com/auth/analytics.edit"

	// See and download your Google Analytics data
	AnalyticsReadonlyScope = "https://www.googleapis.com/auth/analytics.readonly"
)

// Service is the Google Analytics Admin API client.
type Service struct {
	client *gapi.Client

	Accounts   *AccountsService
	Properties *PropertiesService
}

func NewService(ctx context.Context, opts ...gapi.Option) (*Service, error) {
	_ = ctx
	c := gapi.NewClient(basePath, opts...)
	s := &Service{client: c}
	s.Accounts = &AccountsService{c: c}
	s.Properties = &PropertiesService{c: c}
	return s, nil
}

// AccountsService groups the `accounts` RPCs.
type AccountsService struct {
	c *gapi.Client
}

// List returns all accounts accessible by the caller. Soft-deleted
// accounts are excluded unless gapi.Query("showDeleted", "true") is
// passed.
func (r *AccountsService) List(ctx context.Context, opts ...gapi.CallOption) (*ListAccountsResponse, error) {
	var out ListAccountsResponse
	call := &gapi.Call{
		Method: http.MethodGet,
		Path:   "v1beta/accounts",
		Result: &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get looks up a single account. name is `accounts/{account}`.
func (r *AccountsService) Get(ctx context.Context, name string, opts ...gapi.CallOption) (*Account, error) {
	var out Account
	call := &gapi.Call{
		Method:     http.MethodGet,
		Path:       "v1beta/{+name}",
		PathParams: map[string]string{"name": name},
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete marks a target account as soft-deleted and returns it in a
// trashed state.
func (r *AccountsService) Delete(ctx context.Context, name string, opts ...gapi.CallOption) error {
	call := &gapi.Call{
		Method:     http.MethodDelete,
		Path:       "v1beta/{+name}",
		PathParams: map[string]string{"name": name},
	}
	return r.c.Do(ctx, call, opts...)
}

// Patch updates an account; updateMask names the fields to change (in
// snake case) and supports `*` for full replacement.
func (r *AccountsService) Patch(ctx context.Context, name string, account *Account, updateMask string, opts ...gapi.CallOption) (*Account, error) {
	var out Account
	call := &gapi.Call{
		Method:     http.MethodPatch,
		Path:       "v1beta/{+name}",
		PathParams: map[string]string{"name": name},
		Body:       account,
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

// PropertiesService groups the `properties` RPCs.
type PropertiesService struct {
	c *gapi.Client
}

// List returns child properties under the account named by the
// required filter, e.g. `parent:accounts/123`.
func (r *PropertiesService) List(ctx context.Context, filter string, opts ...gapi.CallOption) (*ListPropertiesResponse, error) {
	var out ListPropertiesResponse
	call := &gapi.Call{
		Method: http.MethodGet,
		Path:   "v1beta/properties",
		Result: &out,
	}
	opts = append(opts, gapi.Query("filter", filter))
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get looks up a single property. name is `properties/{property}`.
func (r *PropertiesService) Get(ctx context.Context, name string, opts ...gapi.CallOption) (*Property, error) {
	var out Property
	call := &gapi.Call{
		Method:     http.MethodGet,
		Path:       "v1beta/{+name}",
		PathParams: map[string]string{"name": name},
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create creates a property with the specified location and
// attributes. property.Parent is required.
func (r *PropertiesService) Create(ctx context.Context, property *Property, opts ...gapi.CallOption) (*Property, error) {
	var out Property
	call := &gapi.Call{
		Method: http.MethodPost,
		Path:   "v1beta/properties",
		Body:   property,
		Result: &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete marks a target property as soft-deleted and returns it in a
// trashed state.
func (r *PropertiesService) Delete(ctx context.Context, name string, opts ...gapi.CallOption) (*Property, error) {
	var out Property
	call := &gapi.Call{
		Method:     http.MethodDelete,
		Path:       "v1beta/{+name}",
		PathParams: map[string]string{"name": name},
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Patch updates a property; updateMask is required.
func (r *PropertiesService) Patch(ctx context.Context, name string, property *Property, updateMask string, opts ...gapi.CallOption) (*Property, error) {
	var out Property
	call := &gapi.Call{
		Method:     http.MethodPatch,
		Path:       "v1beta/{+name}",
		PathParams: map[string]string{"name": name},
		Body:       property,
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
