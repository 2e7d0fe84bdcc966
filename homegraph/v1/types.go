package homegraph

import "encoding/json"

// Empty: a generic empty message.
type Empty struct {
}

// AgentDeviceId: third-party device ID for one device.
type AgentDeviceId struct {
	// Id: Third-party device ID.
	Id string `json:"id,omitempty"`
}

// Device: third-party device definition as synced to Home Graph.
type Device struct {
	// Id: Third-party device ID.
	Id string `json:"id,omitempty"`

	// Type: Hardware type of the device, e.g. `action.devices.types.LIGHT`.
	Type string `json:"type,omitempty"`

	// Traits: Traits supported by the device, e.g.
	// `action.devices.traits.OnOff`.
	Traits []string `json:"traits,omitempty"`

	// Name: Names given to this device by your smart home Action.
	Name *DeviceNames `json:"name,omitempty"`

	// WillReportState: Indicates whether your smart home Action will
	// report state of this device to Google via ReportStateAndNotification.
	WillReportState bool `json:"willReportState,omitempty"`

	// NotificationSupportedByAgent: Indicates whether your smart home
	// Action will report notifications to Google for this device.
	NotificationSupportedByAgent bool `json:"notificationSupportedByAgent,omitempty"`

	// RoomHint: Suggested name for the room where this device is
	// installed.
	RoomHint string `json:"roomHint,omitempty"`

	// StructureHint: Suggested name for the structure where this device is
	// installed.
	StructureHint string `json:"structureHint,omitempty"`

	// DeviceInfo: Device manufacturer, model, hardware and software
	// versions.
	DeviceInfo *DeviceInfo `json:"deviceInfo,omitempty"`

	// Attributes: Attributes for the traits supported by the device.
	Attributes json.RawMessage `json:"attributes,omitempty"`

	// CustomData: Custom device attributes stored in Home Graph and
	// provided to your smart home Action in each QUERY and EXECUTE intent.
	CustomData json.RawMessage `json:"customData,omitempty"`

	// OtherDeviceIds: Alternate IDs associated with this device, used to
	// identify cloud synced devices enabled for local fulfillment.
	OtherDeviceIds []*AgentOtherDeviceId `json:"otherDeviceIds,omitempty"`
}

// DeviceNames: identifiers used to describe the device.
type DeviceNames struct {
	// Name: Primary name of the device, generally provided by the user.
	Name string `json:"name,omitempty"`

	// Nicknames: Additional names provided by the user for the device.
	Nicknames []string `json:"nicknames,omitempty"`

	// DefaultNames: List of names provided by the manufacturer rather than
	// the user, such as serial numbers, SKUs, etc.
	DefaultNames []string `json:"defaultNames,omitempty"`
}

// DeviceInfo: device information.
type DeviceInfo struct {
	// Manufacturer: Device manufacturer.
	Manufacturer string `json:"manufacturer,omitempty"`

	// Model: Device model.
	Model string `json:"model,omitempty"`

	// HwVersion: Device hardware version.
	HwVersion string `json:"hwVersion,omitempty"`

	// SwVersion: Device software version.
	SwVersion string `json:"swVersion,omitempty"`
}

// AgentOtherDeviceId: alternate third-party device ID.
type AgentOtherDeviceId struct {
	// AgentId: Project ID for your smart home Action.
	AgentId string `json:"agentId,omitempty"`

	// DeviceId: Unique third-party device ID.
	DeviceId string `json:"deviceId,omitempty"`
}

// QueryRequest: request type for the `Query` call.
type QueryRequest struct {
	// RequestId: Request ID used for debugging.
	RequestId string `json:"requestId,omitempty"`

	// AgentUserId: Required. Third-party user ID.
	AgentUserId string `json:"agentUserId,omitempty"`

	// Inputs: Required. Inputs containing third-party device IDs for which
	// to get the device states.
	Inputs []*QueryRequestInput `json:"inputs,omitempty"`
}

// QueryRequestInput: device ID inputs to a QueryRequest.
type QueryRequestInput struct {
	// Payload: Payload containing third-party device IDs.
	Payload *QueryRequestPayload `json:"payload,omitempty"`
}

// QueryRequestPayload: payload containing device IDs.
type QueryRequestPayload struct {
	// Devices: Third-party device IDs for which to get the device states.
	Devices []*AgentDeviceId `json:"devices,omitempty"`
}

// QueryResponse: response type for the `Query` call.
type QueryResponse struct {
	// RequestId: Request ID used for debugging. Copied from the request.
	RequestId string `json:"requestId,omitempty"`

	// Payload: Device states for the devices given in the request.
	Payload *QueryResponsePayload `json:"payload,omitempty"`
}

// QueryResponsePayload: payload containing device states information.
type QueryResponsePayload struct {
	// Devices: States of the devices, keyed by third-party device ID.
	Devices map[string]json.RawMessage `json:"devices,omitempty"`
}

// SyncRequest: request type for the `Sync` call.
type SyncRequest struct {
	// RequestId: Request ID used for debugging.
	RequestId string `json:"requestId,omitempty"`

	// AgentUserId: Required. Third-party user ID.
	AgentUserId string `json:"agentUserId,omitempty"`
}

// SyncResponse: response type for the `Sync` call. Fields in the
// response are the same format as for the SYNC intent.
type SyncResponse struct {
	// RequestId: Request ID used for debugging. Copied from the request.
	RequestId string `json:"requestId,omitempty"`

	// Payload: Devices associated with the third-party user.
	Payload *SyncResponsePayload `json:"payload,omitempty"`
}

// SyncResponsePayload: payload containing device information.
type SyncResponsePayload struct {
	// AgentUserId: Third-party user ID.
	AgentUserId string `json:"agentUserId,omitempty"`

	// Devices: Devices associated with the third-party user.
	Devices []*Device `json:"devices,omitempty"`
}

// ReportStateAndNotificationRequest: request type for the
// `ReportStateAndNotification` call.
type ReportStateAndNotificationRequest struct {
	// RequestId: Request ID used for debugging.
	RequestId string `json:"requestId,omitempty"`

	// EventId: Unique identifier per event (for example, a doorbell
	// press).
	EventId string `json:"eventId,omitempty"`

	// AgentUserId: Required. Third-party user ID.
	AgentUserId string `json:"agentUserId,omitempty"`

	// FollowUpToken: Deprecated.
	FollowUpToken string `json:"followUpToken,omitempty"`

	// Payload: Required. State of devices to update and notification
	// metadata for devices.
	Payload *StateAndNotificationPayload `json:"payload,omitempty"`
}

// StateAndNotificationPayload: payload containing the state and
// notification information for devices.
type StateAndNotificationPayload struct {
	// Devices: The devices for updating state and sending notifications.
	Devices *ReportStateAndNotificationDevice `json:"devices,omitempty"`
}

// ReportStateAndNotificationDevice: the states and notifications
// specific to a device.
type ReportStateAndNotificationDevice struct {
	// States: States of devices to update, keyed by third-party device ID.
	States json.RawMessage `json:"states,omitempty"`

	// Notifications: Notifications metadata for devices, keyed by
	// third-party device ID.
	Notifications json.RawMessage `json:"notifications,omitempty"`
}

// ReportStateAndNotificationResponse: response type for the
// `ReportStateAndNotification` call.
type ReportStateAndNotificationResponse struct {
	// RequestId: Request ID copied from the request.
	RequestId string `json:"requestId,omitempty"`
}

// RequestSyncDevicesRequest: request type for the `RequestSyncDevices`
// call.
type RequestSyncDevicesRequest struct {
	// AgentUserId: Required. Third-party user ID.
	AgentUserId string `json:"agentUserId,omitempty"`

	// Async: Optional. If set, the request will be added to a queue and a
	// response will be returned immediately.
	Async bool `json:"async,omitempty"`
}

// RequestSyncDevicesResponse: response type for the
// `RequestSyncDevices` call. Intentionally empty upon success.
type RequestSyncDevicesResponse struct {
}
