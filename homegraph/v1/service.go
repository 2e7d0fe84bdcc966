// Package homegraph provides access to the HomeGraph API.
//
// For product documentation, see:
// https://developers.home.google.com/cloud-to-cloud/get-started
package homegraph

import (
	"context"
	"net/http"

	"github.com/apiary-go/googleapis/pkg/gapi"
)

const (
	apiID    = "homegraph:v1"
	basePath = "https://homegraph.googleapis.com/"
)

// OAuth2 scopes used by this API.
const (
	// Private Service: https://www.googleapis.com/auth/homegraph
	HomegraphScope = "https://www.googleapis.com/auth/homegraph"
)

// Service is the HomeGraph API client.
type Service struct {
	client *gapi.Client

	AgentUsers *AgentUsersService
	Devices    *DevicesService
}

func NewService(ctx context.Context, opts ...gapi.Option) (*Service, error) {
	_ = ctx
	c := gapi.NewClient(basePath, opts...)
	s := &Service{client: c}
	s.AgentUsers = &AgentUsersService{c: c}
	s.Devices = &DevicesService{c: c}
	return s, nil
}

// AgentUsersService groups the `agentUsers` RPCs.
type AgentUsersService struct {
	c *gapi.Client
}

// Delete unlinks the given third-party user from Google's Home Graph.
// agentUserID is the resource path `agentUsers/{id}`.
func (r *AgentUsersService) Delete(ctx context.Context, agentUserID string, opts ...gapi.CallOption) (*Empty, error) {
	var out Empty
	call := &gapi.Call{
		Method:     http.MethodDelete,
		Path:       "v1/{+agentUserId}",
		PathParams: map[string]string{"agentUserId": agentUserID},
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// DevicesService groups the `devices` RPCs.
type DevicesService struct {
	c *gapi.Client
}

// Query gets the current states in Home Graph for the given set of the
// third-party user's devices.
func (r *DevicesService) Query(ctx context.Context, req *QueryRequest, opts ...gapi.CallOption) (*QueryResponse, error) {
	var out QueryResponse
	call := &gapi.Call{
		Method: http.MethodPost,
		Path:   "v1/devices:query",
		Body:   req,
		Result: &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Sync gets all the devices associated with the given third-party
// user.
func (r *DevicesService) Sync(ctx context.Context, req *SyncRequest, opts ...gapi.CallOption) (*SyncResponse, error) {
	var out SyncResponse
	call := &gapi.Call{
		Method: http.MethodPost,
		Path:   "v1/devices:sync",
		Body:   req,
		Result: &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReportStateAndNotification reports device state and optionally sends
// device notifications.
func (r *DevicesService) ReportStateAndNotification(ctx context.Context, req *ReportStateAndNotificationRequest, opts ...gapi.CallOption) (*ReportStateAndNotificationResponse, error) {
	var out ReportStateAndNotificationResponse
	call := &gapi.Call{
		Method: http.MethodPost,
		Path:   "v1/devices:reportStateAndNotification",
		Body:   req,
		Result: &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestSync requests Google to send an `action.devices.SYNC` intent
// to the agent to update device metadata for the given user.
func (r *DevicesService) RequestSync(ctx context.Context, req *RequestSyncDevicesRequest, opts ...gapi.CallOption) (*RequestSyncDevicesResponse, error) {
	var out RequestSyncDevicesResponse
	call := &gapi.Call{
		Method: http.MethodPost,
		Path:   "v1/devices:requestSync",
		Body:   req,
		Result: &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}
