// Package tagmanager provides access to the Tag Manager API.
//
// For product documentation, see:
// https://developers.google.com/tag-platform/tag-manager
package tagmanager

import (
	"context"
	"net/http"

	"github.com/apiary-go/googleapis/pkg/gapi"
)

const (
	apiID    = "tagmanager:v2"
	basePath = "https://tagmanager.googleapis.com/"
)

// OAuth2 scopes used by this API.
const (
	// View and manage your Google Tag Manager accounts
	TagmanagerManageAccountsScope = "https://www.googleapis.com/auth/tagmanager.manage.accounts"

	// Manage your Google Tag Manager container and its subcomponents,
	// excluding versioning and publishing
	TagmanagerEditContainersScope = "https://www.googleapis.com/auth/tagmanager.edit.containers"

	// Delete your Google Tag Manager containers
	TagmanagerDeleteContainersScope = "https://www.googleapis.com/auth/tagmanager.delete.containers"

	// View your Google Tag Manager container and its subcomponents
	TagmanagerReadonlyScope = "https://www.googleapis.com/auth/tagmanager.readonly"
)

// Service is the Tag Manager API client. Tag Manager addresses nested
// entities by full relative resource paths (e.g.
// `accounts/1/containers/2/workspaces/3`), so `path`-taking methods
// below accept those verbatim.
type Service struct {
	client *gapi.Client

	Accounts *AccountsService
}

func NewService(ctx context.Context, opts ...gapi.Option) (*Service, error) {
	_ = ctx
	c := gapi.NewClient(basePath, opts...)
	s := &Service{client: c}
	s.Accounts = &AccountsService{c: c}
	s.Accounts.Containers = &ContainersService{c: c}
	s.Accounts.Containers.Workspaces = &WorkspacesService{c: c}
	s.Accounts.Containers.Workspaces.Tags = &TagsService{c: c}
	s.Accounts.Containers.Workspaces.Triggers = &TriggersService{c: c}
	return s, nil
}

// AccountsService groups the `accounts` RPCs.
type AccountsService struct {
	c *gapi.Client

	Containers *ContainersService
}

// List lists all GTM Accounts that a user has access to.
func (r *AccountsService) List(ctx context.Context, opts ...gapi.CallOption) (*ListAccountsResponse, error) {
	var out ListAccountsResponse
	call := &gapi.Call{
		Method: http.MethodGet,
		Path:   "tagmanager/v2/accounts",
		Result: &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get gets a GTM Account. path is `accounts/{accountId}`.
func (r *AccountsService) Get(ctx context.Context, path string, opts ...gapi.CallOption) (*Account, error) {
	var out Account
	call := &gapi.Call{
		Method:     http.MethodGet,
		Path:       "tagmanager/v2/{+path}",
		PathParams: map[string]string{"path": path},
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update updates a GTM Account. Pass the current fingerprint via
// gapi.Query("fingerprint", ...) for optimistic concurrency.
func (r *AccountsService) Update(ctx context.Context, path string, account *Account, opts ...gapi.CallOption) (*Account, error) {
	var out Account
	call := &gapi.Call{
		Method:     http.MethodPut,
		Path:       "tagmanager/v2/{+path}",
		PathParams: map[string]string{"path": path},
		Body:       account,
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// ContainersService groups the `accounts.containers` RPCs.
type ContainersService struct {
	c *gapi.Client

	Workspaces *WorkspacesService
}

// List lists all Containers that belong to a GTM Account. parent is
// `accounts/{accountId}`.
func (r *ContainersService) List(ctx context.Context, parent string, opts ...gapi.CallOption) (*ListContainersResponse, error) {
	var out ListContainersResponse
	call := &gapi.Call{
		Method:     http.MethodGet,
		Path:       "tagmanager/v2/{+parent}/containers",
		PathParams: map[string]string{"parent": parent},
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get gets a Container. path is
// `accounts/{accountId}/containers/{containerId}`.
func (r *ContainersService) Get(ctx context.Context, path string, opts ...gapi.CallOption) (*Container, error) {
	var out Container
	call := &gapi.Call{
		Method:     http.MethodGet,
		Path:       "tagmanager/v2/{+path}",
		PathParams: map[string]string{"path": path},
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create creates a Container under the given account.
func (r *ContainersService) Create(ctx context.Context, parent string, container *Container, opts ...gapi.CallOption) (*Container, error) {
	var out Container
	call := &gapi.Call{
		Method:     http.MethodPost,
		Path:       "tagmanager/v2/{+parent}/containers",
		PathParams: map[string]string{"parent": parent},
		Body:       container,
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete deletes a Container.
func (r *ContainersService) Delete(ctx context.Context, path string, opts ...gapi.CallOption) error {
	call := &gapi.Call{
		Method:     http.MethodDelete,
		Path:       "tagmanager/v2/{+path}",
		PathParams: map[string]string{"path": path},
	}
	return r.c.Do(ctx, call, opts...)
}

// WorkspacesService groups the `accounts.containers.workspaces` RPCs.
type WorkspacesService struct {
	c *gapi.Client

	Tags     *TagsService
	Triggers *TriggersService
}

// List lists all Workspaces that belong to a Container. parent is
// `accounts/{accountId}/containers/{containerId}`.
func (r *WorkspacesService) List(ctx context.Context, parent string, opts ...gapi.CallOption) (*ListWorkspacesResponse, error) {
	var out ListWorkspacesResponse
	call := &gapi.Call{
		Method:     http.MethodGet,
		Path:       "tagmanager/v2/{+parent}/workspaces",
		PathParams: map[string]string{"parent": parent},
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get gets a Workspace.
func (r *WorkspacesService) Get(ctx context.Context, path string, opts ...gapi.CallOption) (*Workspace, error) {
	var out Workspace
	call := &gapi.Call{
		Method:     http.MethodGet,
		Path:       "tagmanager/v2/{+path}",
		PathParams: map[string]string{"path": path},
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create creates a Workspace under the given container.
func (r *WorkspacesService) Create(ctx context.Context, parent string, workspace *Workspace, opts ...gapi.CallOption) (*Workspace, error) {
	var out Workspace
	call := &gapi.Call{
		Method:     http.MethodPost,
		Path:       "tagmanager/v2/{+parent}/workspaces",
		PathParams: map[string]string{"parent": parent},
		Body:       workspace,
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete deletes a Workspace.
func (r *WorkspacesService) Delete(ctx context.Context, path string, opts ...gapi.CallOption) error {
	call := &gapi.Call{
		Method:     http.MethodDelete,
		Path:       "tagmanager/v2/{+path}",
		PathParams: map[string]string{"path": path},
	}
	return r.c.Do(ctx, call, opts...)
}

// TagsService groups the `accounts.containers.workspaces.tags` RPCs.
type TagsService struct {
	c *gapi.Client
}

// List lists all GTM Tags of a workspace. parent is
// `accounts/{accountId}/containers/{containerId}/workspaces/{workspaceId}`.
func (r *TagsService) List(ctx context.Context, parent string, opts ...gapi.CallOption) (*ListTagsResponse, error) {
	var out ListTagsResponse
	call := &gapi.Call{
		Method:     http.MethodGet,
		Path:       "tagmanager/v2/{+parent}/tags",
		PathParams: map[string]string{"parent": parent},
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get gets a GTM Tag.
func (r *TagsService) Get(ctx context.Context, path string, opts ...gapi.CallOption) (*Tag, error) {
	var out Tag
	call := &gapi.Call{
		Method:     http.MethodGet,
		Path:       "tagmanager/v2/{+path}",
		PathParams: map[string]string{"path": path},
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create creates a GTM Tag in a workspace.
func (r *TagsService) Create(ctx context.Context, parent string, tag *Tag, opts ...gapi.CallOption) (*Tag, error) {
	var out Tag
	call := &gapi.Call{
		Method:     http.MethodPost,
		Path:       "tagmanager/v2/{+parent}/tags",
		PathParams: map[string]string{"parent": parent},
		Body:       tag,
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update updates a GTM Tag. Pass the current fingerprint via
// gapi.Query("fingerprint", ...) for optimistic concurrency.
func (r *TagsService) Update(ctx context.Context, path string, tag *Tag, opts ...gapi.CallOption) (*Tag, error) {
	var out Tag
	call := &gapi.Call{
		Method:     http.MethodPut,
		Path:       "tagmanager/v2/{+path}",
		PathParams: map[string]string{"path": path},
		Body:       tag,
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete deletes a GTM Tag.
func (r *TagsService) Delete(ctx context.Context, path string, opts ...gapi.CallOption) error {
	call := &gapi.Call{
		Method:     http.MethodDelete,
		Path:       "tagmanager/v2/{+path}",
		PathParams: map[string]string{"path": path},
	}
	return r.c.Do(ctx, call, opts...)
}

// TriggersService groups the `accounts.containers.workspaces.triggers`
// RPCs.
type TriggersService struct {
	c *gapi.Client
}

// List lists all GTM Triggers of a workspace.
func (r *TriggersService) List(ctx context.Context, parent string, opts ...gapi.CallOption) (*ListTriggersResponse, error) {
	var out ListTriggersResponse
	call := &gapi.Call{
		Method:     http.MethodGet,
		Path:       "tagmanager/v2/{+parent}/triggers",
		PathParams: map[string]string{"parent": parent},
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get gets a GTM Trigger.
func (r *TriggersService) Get(ctx context.Context, path string, opts ...gapi.CallOption) (*Trigger, error) {
	var out Trigger
	call := &gapi.Call{
		Method:     http.MethodGet,
		Path:       "tagmanager/v2/{+path}",
		PathParams: map[string]string{"path": path},
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create creates a GTM Trigger in a workspace.
func (r *TriggersService) Create(ctx context.Context, parent string, trigger *Trigger, opts ...gapi.CallOption) (*Trigger, error) {
	var out Trigger
	call := &gapi.Call{
		Method:     http.MethodPost,
		Path:       "tagmanager/v2/{+parent}/triggers",
		PathParams: map[string]string{"parent": parent},
		Body:       trigger,
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete deletes a GTM Trigger.
func (r *TriggersService) Delete(ctx context.Context, path string, opts ...gapi.CallOption) error {
	call := &gapi.Call{
		Method:     http.MethodDelete,
		Path:       "tagmanager/v2/{+path}",
		PathParams: map[string]string{"path": path},
	}
	return r.c.Do(ctx, call, opts...)
}
