package analyticsadmin

import "github.com/apiary-go/googleapis/pkg/gapi"

// Account: a resource message representing a Google Analytics account.
type Account struct {
	// Name: Output only. Resource name of this account, e.g.
	// `accounts/100`.
	Name string `json:"name,omitempty"`

	// CreateTime: Output only. Time when this account was originally
	// created.
	CreateTime *gapi.Time `json:"createTime,omitempty"`

	// UpdateTime: Output only. Time when account payload fields were last
	// updated.
	UpdateTime *gapi.Time `json:"updateTime,omitempty"`

	// DisplayName: Required. Human-readable display name for this account.
	DisplayName string `json:"displayName,omitempty"`

	// RegionCode: Country of business, a Unicode CLDR region code.
	RegionCode string `json:"regionCode,omitempty"`

	// Deleted: Output only. Indicates whether this account is soft-deleted
	// or not.
	Deleted bool `json:"deleted,omitempty"`

	// GmpOrganization: Output only. The URI for a Google Marketing
	// Platform organization resource connected to this account.
	GmpOrganization string `json:"gmpOrganization,omitempty"`
}

// Property: a resource message representing a Google Analytics
// property.
type Property struct {
	// Name: Output only. Resource name of this property, e.g.
	// `properties/1000`.
	Name string `json:"name,omitempty"`

	// PropertyType: Immutable. The property type. Defaults to
	// `PROPERTY_TYPE_ORDINARY` when unset on create.
	PropertyType string `json:"propertyType,omitempty"`

	// CreateTime: Output only. Time when the entity was originally
	// created.
	CreateTime *gapi.Time `json:"createTime,omitempty"`

	// UpdateTime: Output only. Time when entity payload fields were last
	// updated.
	UpdateTime *gapi.Time `json:"updateTime,omitempty"`

	// Parent: Immutable. Resource name of this property's logical parent,
	// e.g. `accounts/100`.
	Parent string `json:"parent,omitempty"`

	// DisplayName: Required. Human-readable display name for this
	// property.
	DisplayName string `json:"displayName,omitempty"`

	// IndustryCategory: Industry associated with this property, e.g.
	// `AUTOMOTIVE`, `FOOD_AND_DRINK`.
	IndustryCategory string `json:"industryCategory,omitempty"`

	// TimeZone: Required. Reporting time zone in IANA format, e.g.
	// "America/Los_Angeles".
	TimeZone string `json:"timeZone,omitempty"`

	// CurrencyCode: The currency type used in reports involving monetary
	// values, in ISO 4217 format.
	CurrencyCode string `json:"currencyCode,omitempty"`

	// ServiceLevel: Output only. The Google Analytics service level that
	// applies to this property.
	ServiceLevel string `json:"serviceLevel,omitempty"`

	// DeleteTime: Output only. If set, the time at which this property was
	// trashed.
	DeleteTime *gapi.Time `json:"deleteTime,omitempty"`

	// ExpireTime: Output only. If set, the time at which this trashed
	// property will be permanently deleted.
	ExpireTime *gapi.Time `json:"expireTime,omitempty"`

	// Account: Immutable. The resource name of the parent account, e.g.
	// `accounts/123`.
	Account string `json:"account,omitempty"`
}

// ListAccountsResponse: response message for `ListAccounts`.
type ListAccountsResponse struct {
	// Accounts: Results that were accessible to the caller.
	Accounts []*Account `json:"accounts,omitempty"`

	// NextPageToken: A token which can be sent as `pageToken` to retrieve
	// the next page.
	NextPageToken string `json:"nextPageToken,omitempty"`
}

// ListPropertiesResponse: response message for `ListProperties`.
type ListPropertiesResponse struct {
	// Properties: Results that matched the filter criteria and were
	// accessible to the caller.
	Properties []*Property `json:"properties,omitempty"`

	// NextPageToken: A token which can be sent as `pageToken` to retrieve
	// the next page.
	NextPageToken string `json:"nextPageToken,omitempty"`
}
