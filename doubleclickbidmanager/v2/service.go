// Package doubleclickbidmanager provides access to the DoubleClick Bid
// Manager API.
//
// For product documentation, see:
// https://developers.google.com/bid-manager/
package doubleclickbidmanager

import (
	"context"
	"net/http"
	"strconv"

	"github.com/apiary-go/googleapis/pkg/gapi"
)

const (
	apiID    = "doubleclickbidmanager:v2"
	basePath = "https://doubleclickbidmanager.googleapis.com/v2/"
)

// OAuth2 scopes used by this API.
const (
	// View and manage your reports in DoubleClick Bid Manager
	DoubleclickbidmanagerScope = "https://www.googleapis.com/auth/doubleclickbidmanager"
)

// Service is the DoubleClick Bid Manager API client.
type Service struct {
	client *gapi.Client

	Queries *QueriesService
}

func NewService(ctx context.Context, opts ...gapi.Option) (*Service, error) {
	_ = ctx
	c := gapi.NewClient(basePath, opts...)
	s := &Service{client: c}
	s.Queries = &QueriesService{c: c}
	s.Queries.Reports = &QueriesReportsService{c: c}
	return s, nil
}

// QueriesService groups the `queries` RPCs.
type QueriesService struct {
	c *gapi.Client

	Reports *QueriesReportsService
}

// Create creates a new query.
func (r *QueriesService) Create(ctx context.Context, query *Query, opts ...gapi.CallOption) (*Query, error) {
	var out Query
	call := &gapi.Call{
		Method: http.MethodPost,
		Path:   "queries",
		Body:   query,
		Result: &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get retrieves a query.
func (r *QueriesService) Get(ctx context.Context, queryID int64, opts ...gapi.CallOption) (*Query, error) {
	var out Query
	call := &gapi.Call{
		Method:     http.MethodGet,
		Path:       "queries/{queryId}",
		PathParams: map[string]string{"queryId": strconv.FormatInt(queryID, 10)},
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// List lists queries created by the current user.
func (r *QueriesService) List(ctx context.Context, opts ...gapi.CallOption) (*ListQueriesResponse, error) {
	var out ListQueriesResponse
	call := &gapi.Call{
		Method: http.MethodGet,
		Path:   "queries",
		Result: &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete deletes a query as well as the associated reports.
func (r *QueriesService) Delete(ctx context.Context, queryID int64, opts ...gapi.CallOption) error {
	call := &gapi.Call{
		Method:     http.MethodDelete,
		Path:       "queries/{queryId}",
		PathParams: map[string]string{"queryId": strconv.FormatInt(queryID, 10)},
	}
	return r.c.Do(ctx, call, opts...)
}

// Run runs an existing query to generate a report. Set synchronous to
// block until the report completes.
func (r *QueriesService) Run(ctx context.Context, queryID int64, req *RunQueryRequest, synchronous bool, opts ...gapi.CallOption) (*Report, error) {
	var out Report
	call := &gapi.Call{
		Method:     http.MethodPost,
		Path:       "queries/{queryId}:run",
		PathParams: map[string]string{"queryId": strconv.FormatInt(queryID, 10)},
		Body:       req,
		Result:     &out,
	}
	if synchronous {
		opts = append(opts, gapi.Query("synchronous", "true"))
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// QueriesReportsService groups the `queries.reports` RPCs.
type QueriesReportsService struct {
	c *gapi.Client
}

// Get retrieves a report generated from the given query.
func (r *QueriesReportsService) Get(ctx context.Context, queryID, reportID int64, opts ...gapi.CallOption) (*Report, error) {
	var out Report
	call := &gapi.Call{
		Method: http.MethodGet,
		Path:   "queries/{queryId}/reports/{reportId}",
		PathParams: map[string]string{
			"queryId":  strconv.FormatInt(queryID, 10),
			"reportId": strconv.FormatInt(reportID, 10),
		},
		Result: &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// List lists reports generated by the given query.
func (r *QueriesReportsService) List(ctx context.Context, queryID int64, opts ...gapi.CallOption) (*ListReportsResponse, error) {
	var out ListReportsResponse
	call := &gapi.Call{
		Method:     http.MethodGet,
		Path:       "queries/{queryId}/reports",
		PathParams: map[string]string{"queryId": strconv.FormatInt(queryID, 10)},
		Result:     &out,
	}
	if err := r.c.Do(ctx, call, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}
