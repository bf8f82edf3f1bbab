package constant

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusCompleted RequestStatus = "completed"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// ProcessingStatus tracks fulfillment progress on a blood request,
// separate from the approval status above.
type ProcessingStatus string

const (
	ProcessingStatusNotStarted ProcessingStatus = "not_started"
	ProcessingStatusInitiated  ProcessingStatus = "initiated"
	ProcessingStatusDispatched ProcessingStatus = "dispatched"
	ProcessingStatusCompleted  ProcessingStatus = "completed"
)

type DistributionStatus string

const (
	DistributionStatusPendingReceive DistributionStatus = "pending_receive"
	DistributionStatusInTransit      DistributionStatus = "in_transit"
	DistributionStatusDelivered      DistributionStatus = "delivered"
	DistributionStatusReturned       DistributionStatus = "returned"
	DistributionStatusCancelled      DistributionStatus = "cancelled"
)

type TrackingStatus string

const (
	TrackingStatusPendingReceive TrackingStatus = "pending_receive"
	TrackingStatusDispatched     TrackingStatus = "dispatched"
	TrackingStatusReceived       TrackingStatus = "received"
	TrackingStatusReturned       TrackingStatus = "returned"
	TrackingStatusCancelled      TrackingStatus = "cancelled"
)
