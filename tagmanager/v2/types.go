package tagmanager

// Account: represents a Google Tag Manager Account.
type Account struct {
	// Path: GTM Account's API relative path.
	Path string `json:"path,omitempty"`

	// AccountId: The Account ID uniquely identifies the GTM Account.
	AccountId string `json:"accountId,omitempty"`

	// Name: Account display name.
	Name string `json:"name,omitempty"`

	// ShareData: Whether the account shares data anonymously with Google
	// and others.
	ShareData bool `json:"shareData,omitempty"`

	// Fingerprint: The fingerprint of the GTM Account as computed at
	// storage time. This value is recomputed whenever the account is
	// modified.
	Fingerprint string `json:"fingerprint,omitempty"`

	// TagManagerUrl: Auto generated link to the tag manager UI.
	TagManagerUrl string `json:"tagManagerUrl,omitempty"`
}

// Container: represents a Google Tag Manager Container, which
// specifies the platform tags will run on.
type Container struct {
	// Path: GTM Container's API relative path.
	Path string `json:"path,omitempty"`

	// AccountId: GTM Account ID.
	AccountId string `json:"accountId,omitempty"`

	// ContainerId: The Container ID uniquely identifies the GTM Container.
	ContainerId string `json:"containerId,omitempty"`

	// Name: Container display name.
	Name string `json:"name,omitempty"`

	// PublicId: Container Public ID.
	PublicId string `json:"publicId,omitempty"`

	// UsageContext: List of Usage Contexts for the Container. Valid values
	// include: web, android, or ios.
	UsageContext []string `json:"usageContext,omitempty"`

	// DomainName: List of domain names associated with the Container.
	DomainName []string `json:"domainName,omitempty"`

	// Notes: Container Notes.
	Notes string `json:"notes,omitempty"`

	// Fingerprint: The fingerprint of the GTM Container as computed at
	// storage time.
	Fingerprint string `json:"fingerprint,omitempty"`

	// TagManagerUrl: Auto generated link to the tag manager UI.
	TagManagerUrl string `json:"tagManagerUrl,omitempty"`
}

// Workspace: represents a Google Tag Manager Container Workspace.
type Workspace struct {
	// Path: GTM Workspace's API relative path.
	Path string `json:"path,omitempty"`

	// AccountId: GTM Account ID.
	AccountId string `json:"accountId,omitempty"`

	// ContainerId: GTM Container ID.
	ContainerId string `json:"containerId,omitempty"`

	// WorkspaceId: The Workspace ID uniquely identifies the GTM Workspace.
	WorkspaceId string `json:"workspaceId,omitempty"`

	// Name: Workspace display name.
	Name string `json:"name,omitempty"`

	// Description: Workspace description.
	Description string `json:"description,omitempty"`

	// Fingerprint: The fingerprint of the GTM Workspace as computed at
	// storage time.
	Fingerprint string `json:"fingerprint,omitempty"`

	// TagManagerUrl: Auto generated link to the tag manager UI.
	TagManagerUrl string `json:"tagManagerUrl,omitempty"`
}

// Tag: represents a Google Tag Manager Tag.
type Tag struct {
	// Path: GTM Tag's API relative path.
	Path string `json:"path,omitempty"`

	// AccountId: GTM Account ID.
	AccountId string `json:"accountId,omitempty"`

	// ContainerId: GTM Container ID.
	ContainerId string `json:"containerId,omitempty"`

	// WorkspaceId: GTM Workspace ID.
	WorkspaceId string `json:"workspaceId,omitempty"`

	// TagId: The Tag ID uniquely identifies the GTM Tag.
	TagId string `json:"tagId,omitempty"`

	// Name: Tag display name.
	Name string `json:"name,omitempty"`

	// Type: GTM Tag Type.
	Type string `json:"type,omitempty"`

	// FiringTriggerId: Firing trigger IDs. A tag will fire when any of the
	// listed triggers are true and all of its blockingTriggerIds (if any
	// specified) are false.
	FiringTriggerId []string `json:"firingTriggerId,omitempty"`

	// BlockingTriggerId: Blocking trigger IDs. If any of the listed
	// triggers evaluate to true, the tag will not fire.
	BlockingTriggerId []string `json:"blockingTriggerId,omitempty"`

	// LiveOnly: If set to true, this tag will only fire in the live
	// environment.
	LiveOnly bool `json:"liveOnly,omitempty"`

	// Priority: User defined numeric priority of the tag. Tags are fired
	// asynchronously in order of priority.
	Priority *Parameter `json:"priority,omitempty"`

	// Notes: User notes on how to apply this tag in the container.
	Notes string `json:"notes,omitempty"`

	// Parameter: The tag's parameters.
	Parameter []*Parameter `json:"parameter,omitempty"`

	// Fingerprint: The fingerprint of the GTM Tag as computed at storage
	// time.
	Fingerprint string `json:"fingerprint,omitempty"`

	// Paused: Indicates whether the tag is paused, which prevents the tag
	// from firing.
	Paused bool `json:"paused,omitempty"`

	// TagFiringOption: Option to fire this tag.
	TagFiringOption string `json:"tagFiringOption,omitempty"`

	// MonitoringMetadata: A map of key-value pairs of tag metadata to be
	// included in the event data for tag monitoring.
	MonitoringMetadata *Parameter `json:"monitoringMetadata,omitempty"`

	// TagManagerUrl: Auto generated link to the tag manager UI.
	TagManagerUrl string `json:"tagManagerUrl,omitempty"`
}

// Trigger: represents a Google Tag Manager Trigger.
type Trigger struct {
	// Path: GTM Trigger's API relative path.
	Path string `json:"path,omitempty"`

	// AccountId: GTM Account ID.
	AccountId string `json:"accountId,omitempty"`

	// ContainerId: GTM Container ID.
	ContainerId string `json:"containerId,omitempty"`

	// WorkspaceId: GTM Workspace ID.
	WorkspaceId string `json:"workspaceId,omitempty"`

	// TriggerId: The Trigger ID uniquely identifies the GTM Trigger.
	TriggerId string `json:"triggerId,omitempty"`

	// Name: Trigger display name.
	Name string `json:"name,omitempty"`

	// Type: Defines the data layer event that causes this trigger, e.g.
	// `pageview`, `customEvent`.
	Type string `json:"type,omitempty"`

	// CustomEventFilter: Used in the case of custom event, which is fired
	// iff all Conditions are true.
	CustomEventFilter []*Condition `json:"customEventFilter,omitempty"`

	// Filter: The trigger will only fire iff all Conditions are true.
	Filter []*Condition `json:"filter,omitempty"`

	// AutoEventFilter: Used in the case of auto event tracking.
	AutoEventFilter []*Condition `json:"autoEventFilter,omitempty"`

	// WaitForTags: Whether or not we should delay the form submissions or
	// link opening until all of the tags have fired.
	WaitForTags *Parameter `json:"waitForTags,omitempty"`

	// WaitForTagsTimeout: How long to wait (in milliseconds) for tags to
	// fire when waitForTags above evaluates to true.
	WaitForTagsTimeout *Parameter `json:"waitForTagsTimeout,omitempty"`

	// Notes: User notes on how to apply this trigger in the container.
	Notes string `json:"notes,omitempty"`

	// Fingerprint: The fingerprint of the GTM Trigger as computed at
	// storage time.
	Fingerprint string `json:"fingerprint,omitempty"`

	// TagManagerUrl: Auto generated link to the tag manager UI.
	TagManagerUrl string `json:"tagManagerUrl,omitempty"`
}

// Condition: represents a predicate.
type Condition struct {
	// Type: The type of operator for this condition.
	Type string `json:"type,omitempty"`

	// Parameter: A list of named parameters (key/value), depending on the
	// condition's type.
	Parameter []*Parameter `json:"parameter,omitempty"`
}

// Parameter: represents a Google Tag Manager Parameter. Parameters are
// recursive: list and map typed parameters carry child parameters.
type Parameter struct {
	// Type: The parameter type, e.g. `template`, `integer`, `boolean`,
	// `list`, `map`, `triggerReference`.
	Type string `json:"type,omitempty"`

	// Key: The named key that uniquely identifies a parameter. Required
	// for top-level parameters, as well as map values; ignored for list
	// values.
	Key string `json:"key,omitempty"`

	// Value: A parameter's value (may contain variable references).
	Value string `json:"value,omitempty"`

	// List: This list parameter's parameters (keys will be ignored).
	List []*Parameter `json:"list,omitempty"`

	// Map: This map parameter's parameters (must have keys; keys must be
	// unique).
	Map []*Parameter `json:"map,omitempty"`

	// IsWeakReference: Whether or not a reference type parameter is
	// strongly or weakly referenced.
	IsWeakReference bool `json:"isWeakReference,omitempty"`
}

// ListAccountsResponse: list Accounts response.
type ListAccountsResponse struct {
	// Account: List of GTM Accounts that a user has access to.
	Account []*Account `json:"account,omitempty"`

	// NextPageToken: Continuation token for fetching the next page of
	// results.
	NextPageToken string `json:"nextPageToken,omitempty"`
}

// ListContainersResponse: list Containers response.
type ListContainersResponse struct {
	// Container: All Containers of a GTM Account.
	Container []*Container `json:"container,omitempty"`

	// NextPageToken: Continuation token for fetching the next page of
	// results.
	NextPageToken string `json:"nextPageToken,omitempty"`
}

// ListWorkspacesResponse: a list of workspaces in a container.
type ListWorkspacesResponse struct {
	// Workspace: All Workspaces of a GTM Container.
	Workspace []*Workspace `json:"workspace,omitempty"`

	// NextPageToken: Continuation token for fetching the next page of
	// results.
	NextPageToken string `json:"nextPageToken,omitempty"`
}

// ListTagsResponse: list Tags response.
type ListTagsResponse struct {
	// Tag: All GTM Tags of a GTM Container.
	Tag []*Tag `json:"tag,omitempty"`

	// NextPageToken: Continuation token for fetching the next page of
	// results.
	NextPageToken string `json:"nextPageToken,omitempty"`
}

// ListTriggersResponse: list triggers response.
type ListTriggersResponse struct {
	// Trigger: All GTM Triggers of a GTM Container.
	Trigger []*Trigger `json:"trigger,omitempty"`

	// NextPageToken: Continuation token for fetching the next page of
	// results.
	NextPageToken string `json:"nextPageToken,omitempty"`
}
