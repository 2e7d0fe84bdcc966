package apikeys

import (
	"encoding/json"

	"github.com/apiary-go/googleapis/pkg/gapi"
)

// Key: the representation of a key managed by the API Keys API.
type Key struct {
	// Name: The resource name of the key:
	// `projects/{project}/locations/global/keys/{key}`.
	Name string `json:"name,omitempty"`

	// Uid: Unique id in UUID4 format.
	Uid string `json:"uid,omitempty"`

	// DisplayName: Human-readable display name of this key.
	DisplayName string `json:"displayName,omitempty"`

	// KeyString: An encrypted and signed value held by this key. Only
	// populated by GetKeyString.
	KeyString string `json:"keyString,omitempty"`

	// CreateTime: A timestamp identifying the time this key was created.
	CreateTime *gapi.Time `json:"createTime,omitempty"`

	// UpdateTime: A timestamp identifying the time this key was last
	// updated.
	UpdateTime *gapi.Time `json:"updateTime,omitempty"`

	// DeleteTime: A timestamp when this key was deleted.
	DeleteTime *gapi.Time `json:"deleteTime,omitempty"`

	// Annotations: Annotations is an unstructured key-value map stored
	// with a policy that may be set by external tools.
	Annotations map[string]string `json:"annotations,omitempty"`

	// Restrictions: Key restrictions.
	Restrictions *Restrictions `json:"restrictions,omitempty"`

	// Etag: A checksum computed by the server based on the current value
	// of the Key resource.
	Etag string `json:"etag,omitempty"`
}

// Restrictions: describes the restrictions on the key.
type Restrictions struct {
	// BrowserKeyRestrictions: The HTTP referrers that are allowed to use
	// the key.
	BrowserKeyRestrictions *BrowserKeyRestrictions `json:"browserKeyRestrictions,omitempty"`

	// ServerKeyRestrictions: The IP addresses of callers that are allowed
	// to use the key.
	ServerKeyRestrictions *ServerKeyRestrictions `json:"serverKeyRestrictions,omitempty"`

	// AndroidKeyRestrictions: The Android apps that are allowed to use the
	// key.
	AndroidKeyRestrictions *AndroidKeyRestrictions `json:"androidKeyRestrictions,omitempty"`

	// IosKeyRestrictions: The iOS apps that are allowed to use the key.
	IosKeyRestrictions *IosKeyRestrictions `json:"iosKeyRestrictions,omitempty"`

	// ApiTargets: A restriction for a specific service and optionally one
	// or more specific methods.
	ApiTargets []*ApiTarget `json:"apiTargets,omitempty"`
}

type BrowserKeyRestrictions struct {
	// AllowedReferrers: A list of regular expressions for the referrer
	// URLs that are allowed to make API calls with this key.
	AllowedReferrers []string `json:"allowedReferrers,omitempty"`
}

type ServerKeyRestrictions struct {
	// AllowedIps: A list of the caller IP addresses that are allowed to
	// make API calls with this key.
	AllowedIps []string `json:"allowedIps,omitempty"`
}

type AndroidKeyRestrictions struct {
	// AllowedApplications: A list of Android applications that are allowed
	// to make API calls with this key.
	AllowedApplications []*AndroidApplication `json:"allowedApplications,omitempty"`
}

type AndroidApplication struct {
	// Sha1Fingerprint: The SHA1 fingerprint of the application.
	Sha1Fingerprint string `json:"sha1Fingerprint,omitempty"`

	// PackageName: The package name of the application.
	PackageName string `json:"packageName,omitempty"`
}

type IosKeyRestrictions struct {
	// AllowedBundleIds: A list of bundle IDs that are allowed when making
	// API calls with this key.
	AllowedBundleIds []string `json:"allowedBundleIds,omitempty"`
}

type ApiTarget struct {
	// Service: The service for this restriction, as a lowercase domain
	// name, e.g. `translate.googleapis.com`.
	Service string `json:"service,omitempty"`

	// Methods: Optional. List of one or more methods that can be called.
	Methods []string `json:"methods,omitempty"`
}

// ListKeysResponse: response message for `ListKeys`.
type ListKeysResponse struct {
	// Keys: A list of API keys.
	Keys []*Key `json:"keys,omitempty"`

	// NextPageToken: The pagination token for the next page of results.
	NextPageToken string `json:"nextPageToken,omitempty"`
}

// GetKeyStringResponse: response message for `GetKeyString`.
type GetKeyStringResponse struct {
	// KeyString: An encrypted and signed value of the key.
	KeyString string `json:"keyString,omitempty"`
}

// LookupKeyResponse: response message for `LookupKey`.
type LookupKeyResponse struct {
	// Parent: The project that owns the key with the value specified in
	// the request.
	Parent string `json:"parent,omitempty"`

	// Name: The resource name of the API key.
	Name string `json:"name,omitempty"`
}

// UndeleteKeyRequest: request message for `UndeleteKey`.
type UndeleteKeyRequest struct {
}

// Operation: a long-running operation returned by the mutating key
// RPCs.
type Operation struct {
	// Name: The server-assigned name.
	Name string `json:"name,omitempty"`

	// Metadata: Service-specific metadata associated with the operation.
	Metadata json.RawMessage `json:"metadata,omitempty"`

	// Done: If the value is `false`, it means the operation is still in
	// progress.
	Done bool `json:"done,omitempty"`

	// Error: The error result of the operation in case of failure.
	Error *Status `json:"error,omitempty"`

	// Response: The normal response of the operation in case of success.
	Response json.RawMessage `json:"response,omitempty"`
}

// Status: the `google.rpc.Status` error model.
type Status struct {
	// Code: The status code, an enum value of google.rpc.Code.
	Code int64 `json:"code,omitempty"`

	// Message: A developer-facing error message in English.
	Message string `json:"message,omitempty"`

	// Details: A list of messages that carry the error details.
	Details []json.RawMessage `json:"details,omitempty"`
}
