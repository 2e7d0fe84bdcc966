package doubleclickbidmanager

import "github.com/apiary-go/googleapis/pkg/gapi"

// Query: represents a single query used to generate a report.
type Query struct {
	// QueryId: Output only. The unique ID of the query.
	QueryId gapi.Int64 `json:"queryId,omitempty"`

	// Metadata: The metadata of the query.
	Metadata *QueryMetadata `json:"metadata,omitempty"`

	// Params: The parameters of the report generated by the query.
	Params *Parameters `json:"params,omitempty"`

	// Schedule: When and how often the query is scheduled to run. If the
	// frequency is ONE_TIME, the query will only run when queries.run is
	// called.
	Schedule *QuerySchedule `json:"schedule,omitempty"`
}

// QueryMetadata: the metadata of the query.
type QueryMetadata struct {
	// Title: The display name of the query. This value will be used in the
	// file name of reports generated by the query.
	Title string `json:"title,omitempty"`

	// DataRange: The date range the report generated by the query will
	// report on.
	DataRange *DataRange `json:"dataRange,omitempty"`

	// Format: The format of the report generated by the query.
	Format string `json:"format,omitempty"`

	// SendNotification: Whether an email notification is sent to the query
	// owner when a report generated by the query is ready.
	SendNotification bool `json:"sendNotification,omitempty"`

	// ShareEmailAddress: List of email addresses to send report ready
	// notifications to.
	ShareEmailAddress []string `json:"shareEmailAddress,omitempty"`
}

// DataRange: the date range to be reported on.
type DataRange struct {
	// Range: The preset date range to be reported on, e.g. `LAST_7_DAYS`,
	// `CUSTOM_DATES`.
	Range string `json:"range,omitempty"`

	// CustomStartDate: If Range is CUSTOM_DATES, the first date to report
	// on. Otherwise ignored.
	CustomStartDate *Date `json:"customStartDate,omitempty"`

	// CustomEndDate: If Range is CUSTOM_DATES, the last date to report on.
	// Otherwise ignored.
	CustomEndDate *Date `json:"customEndDate,omitempty"`
}

// Date: a whole calendar date.
type Date struct {
	// Year: Year of the date. Must be from 1 to 9999.
	Year int64 `json:"year,omitempty"`

	// Month: Month of a year. Must be from 1 to 12.
	Month int64 `json:"month,omitempty"`

	// Day: Day of a month. Must be from 1 to 31.
	Day int64 `json:"day,omitempty"`
}

// Parameters: parameters of a generated report.
type Parameters struct {
	// Type: The type of the report, e.g. `REPORT_TYPE_STANDARD`.
	Type string `json:"type,omitempty"`

	// GroupBys: Dimensions by which to segment and group the data.
	GroupBys []string `json:"groupBys,omitempty"`

	// Filters: Filters to limit the scope of reported data.
	Filters []*FilterPair `json:"filters,omitempty"`

	// Metrics: Metrics to define the data populating the report.
	Metrics []string `json:"metrics,omitempty"`

	// Options: Additional report parameter options.
	Options *Options `json:"options,omitempty"`
}

// FilterPair: represents a single filter rule.
type FilterPair struct {
	// Type: The type of value to filter by, e.g. `FILTER_ADVERTISER`.
	Type string `json:"type,omitempty"`

	// Value: The identifying value to filter by, such as a relevant
	// resource ID.
	Value string `json:"value,omitempty"`
}

// Options: additional report parameter options.
type Options struct {
	// IncludeOnlyTargetedUserLists: Whether to include data for audience
	// lists specifically targeted by filtered line items or insertion
	// orders.
	IncludeOnlyTargetedUserLists bool `json:"includeOnlyTargetedUserLists,omitempty"`
}

// QuerySchedule: settings on when and how frequently to run a query.
type QuerySchedule struct {
	// StartDate: The date on which to begin the scheduled runs.
	StartDate *Date `json:"startDate,omitempty"`

	// EndDate: The date on which to end the scheduled runs.
	EndDate *Date `json:"endDate,omitempty"`

	// Frequency: How frequently the query is run, e.g. `ONE_TIME`,
	// `DAILY`, `WEEKLY`.
	Frequency string `json:"frequency,omitempty"`

	// NextRunTimezoneCode: Canonical timezone code for report generation
	// time, e.g. `America/New_York`.
	NextRunTimezoneCode string `json:"nextRunTimezoneCode,omitempty"`
}

// Report: represents a report generated by a query.
type Report struct {
	// Key: The key information identifying the report.
	Key *ReportKey `json:"key,omitempty"`

	// Metadata: The metadata of the report.
	Metadata *ReportMetadata `json:"metadata,omitempty"`

	// Params: The parameters of the report.
	Params *Parameters `json:"params,omitempty"`
}

// ReportKey: identifying information of a report.
type ReportKey struct {
	// QueryId: Output only. The unique ID of the query that generated the
	// report.
	QueryId gapi.Int64 `json:"queryId,omitempty"`

	// ReportId: Output only. The unique ID of the report.
	ReportId gapi.Int64 `json:"reportId,omitempty"`
}

// ReportMetadata: the metadata of a report.
type ReportMetadata struct {
	// GoogleCloudStoragePath: Output only. The location of the generated
	// report file in Google Cloud Storage. This field will be absent if
	// Status.State is not DONE.
	GoogleCloudStoragePath string `json:"googleCloudStoragePath,omitempty"`

	// ReportDataStartDate: The first date for which the report data is
	// generated.
	ReportDataStartDate *Date `json:"reportDataStartDate,omitempty"`

	// ReportDataEndDate: The last date for which the report data is
	// generated.
	ReportDataEndDate *Date `json:"reportDataEndDate,omitempty"`

	// Status: The status of the report.
	Status *ReportStatus `json:"status,omitempty"`
}

// ReportStatus: the status of a report.
type ReportStatus struct {
	// State: Output only. The state of the report generation, e.g.
	// `QUEUED`, `RUNNING`, `DONE`, `FAILED`.
	State string `json:"state,omitempty"`

	// FinishTime: Output only. The time when this report either completed
	// successfully or failed.
	FinishTime *gapi.Time `json:"finishTime,omitempty"`

	// Format: The format of the generated report file.
	Format string `json:"format,omitempty"`
}

// RunQueryRequest: details specifying how to run a query.
type RunQueryRequest struct {
	// DataRange: The date range used by the query to generate the report.
	// If unspecified, the query's original dataRange is used.
	DataRange *DataRange `json:"dataRange,omitempty"`
}

// ListQueriesResponse: response message for `queries.list`.
type ListQueriesResponse struct {
	// Queries: The list of queries.
	Queries []*Query `json:"queries,omitempty"`

	// NextPageToken: A token, which can be sent as pageToken to retrieve
	// the next page of queries.
	NextPageToken string `json:"nextPageToken,omitempty"`
}

// ListReportsResponse: response message for `queries.reports.list`.
type ListReportsResponse struct {
	// Reports: The list of reports.
	Reports []*Report `json:"reports,omitempty"`

	// NextPageToken: A token, which can be sent as pageToken to retrieve
	// the next page of reports.
	NextPageToken string `json:"nextPageToken,omitempty"`
}
