package domain

// RequestStatus is the lifecycle state of a signature request.
type RequestStatus string

const (
	RequestStatusDraft           RequestStatus = "draft"
	RequestStatusSent            RequestStatus = "sent"
	RequestStatusPartiallySigned RequestStatus = "partially_signed"
	RequestStatusCompleted       RequestStatus = "completed"
	RequestStatusExpired         RequestStatus = "expired"
	RequestStatusCancelled       RequestStatus = "cancelled"
)

func (s RequestStatus) String() string { return string(s) }

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusDraft, RequestStatusSent, RequestStatusPartiallySigned,
		RequestStatusCompleted, RequestStatusExpired, RequestStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case RequestStatusCompleted, RequestStatusExpired, RequestStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the edge s -> next exists in the request
// state graph. Expired and cancelled are reachable from every non-terminal
// state; everything else only moves forward.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch next {
	case RequestStatusExpired, RequestStatusCancelled:
		return true
	case RequestStatusSent:
		return s == RequestStatusDraft
	case RequestStatusPartiallySigned:
		return s == RequestStatusSent
	case RequestStatusCompleted:
		return s == RequestStatusSent || s == RequestStatusPartiallySigned
	}
	return false
}

// RequestStatusesFrom returns every status that may transition to next.
// Repositories use it to build guarded UPDATE statements.
func RequestStatusesFrom(next RequestStatus) []RequestStatus {
	all := []RequestStatus{
		RequestStatusDraft, RequestStatusSent, RequestStatusPartiallySigned,
		RequestStatusCompleted, RequestStatusExpired, RequestStatusCancelled,
	}
	var from []RequestStatus
	for _, s := range all {
		if s.CanTransitionTo(next) {
			from = append(from, s)
		}
	}
	return from
}

// SignerStatus is the per-signer state.
type SignerStatus string

const (
	SignerStatusPending  SignerStatus = "pending"
	SignerStatusSent     SignerStatus = "sent"
	SignerStatusOpened   SignerStatus = "opened"
	SignerStatusSigned   SignerStatus = "signed"
	SignerStatusDeclined SignerStatus = "declined"
	SignerStatusExpired  SignerStatus = "expired"
)

func (s SignerStatus) String() string { return string(s) }

func (s SignerStatus) IsValid() bool {
	switch s {
	case SignerStatusPending, SignerStatusSent, SignerStatusOpened,
		SignerStatusSigned, SignerStatusDeclined, SignerStatusExpired:
		return true
	}
	return false
}

// IsFinal reports whether the signer row must no longer be mutated.
func (s SignerStatus) IsFinal() bool {
	switch s {
	case SignerStatusSigned, SignerStatusDeclined, SignerStatusExpired:
		return true
	}
	return false
}

// SignerRole is the capacity in which a signer signs.
type SignerRole string

const (
	SignerRoleSigner         SignerRole = "signer"
	SignerRoleBeneficiary    SignerRole = "beneficiary"
	SignerRoleWitness        SignerRole = "witness"
	SignerRoleRepresentative SignerRole = "representative"
	// SignerRoleClient is the generic role; a client may sign any area.
	SignerRoleClient SignerRole = "client"
)

func (r SignerRole) String() string { return string(r) }

func (r SignerRole) IsValid() bool {
	switch r {
	case SignerRoleSigner, SignerRoleBeneficiary, SignerRoleWitness,
		SignerRoleRepresentative, SignerRoleClient:
		return true
	}
	return false
}

// Label returns the human-readable role name printed on certificates.
func (r SignerRole) Label() string {
	switch r {
	case SignerRoleSigner:
		return "Signer"
	case SignerRoleBeneficiary:
		return "Beneficiary"
	case SignerRoleWitness:
		return "Witness"
	case SignerRoleRepresentative:
		return "Legal representative"
	case SignerRoleClient:
		return "Client"
	}
	return "Unknown"
}

// CanSign reports whether a caller acting as r may sign an area that
// requires the given role.
func (r SignerRole) CanSign(required SignerRole) bool {
	return r == required || r == SignerRoleClient
}

// SignatureType describes how the signature image was produced.
type SignatureType string

const (
	SignatureTypeElectronic SignatureType = "electronic"
	SignatureTypeTyped      SignatureType = "typed"
	SignatureTypeClicked    SignatureType = "clicked"
)

func (t SignatureType) String() string { return string(t) }

func (t SignatureType) IsValid() bool {
	switch t {
	case SignatureTypeElectronic, SignatureTypeTyped, SignatureTypeClicked:
		return true
	}
	return false
}

// SignatureKind is the legal kind of a signature area.
type SignatureKind string

const (
	SignatureKindElectronic SignatureKind = "electronic"
	SignatureKindDigital    SignatureKind = "digital"
)

func (k SignatureKind) String() string { return string(k) }

func (k SignatureKind) IsValid() bool {
	switch k {
	case SignatureKindElectronic, SignatureKindDigital:
		return true
	}
	return false
}

// EventType identifies a document audit trail entry.
type EventType string

const (
	EventTypeCreated   EventType = "created"
	EventTypeSent      EventType = "sent"
	EventTypeOpened    EventType = "opened"
	EventTypeSigned    EventType = "signed"
	EventTypeDeclined  EventType = "declined"
	EventTypeExpired   EventType = "expired"
	EventTypeReminded  EventType = "reminded"
	EventTypeCompleted EventType = "completed"
	EventTypeCancelled EventType = "cancelled"
	EventTypeGenerated EventType = "generated"
)

func (e EventType) String() string { return string(e) }

func (e EventType) IsValid() bool {
	switch e {
	case EventTypeCreated, EventTypeSent, EventTypeOpened, EventTypeSigned,
		EventTypeDeclined, EventTypeExpired, EventTypeReminded, EventTypeCompleted,
		EventTypeCancelled, EventTypeGenerated:
		return true
	}
	return false
}

// NotificationChannel is the delivery channel of a notification.
type NotificationChannel string

const (
	NotificationChannelEmail    NotificationChannel = "email"
	NotificationChannelSMS      NotificationChannel = "sms"
	NotificationChannelWhatsApp NotificationChannel = "whatsapp"
	NotificationChannelPush     NotificationChannel = "push"
)

func (c NotificationChannel) String() string { return string(c) }

func (c NotificationChannel) IsValid() bool {
	switch c {
	case NotificationChannelEmail, NotificationChannelSMS,
		NotificationChannelWhatsApp, NotificationChannelPush:
		return true
	}
	return false
}

// NotificationStatus is the delivery outcome recorded in notification logs.
type NotificationStatus string

const (
	NotificationStatusPending   NotificationStatus = "pending"
	NotificationStatusSent      NotificationStatus = "sent"
	NotificationStatusDelivered NotificationStatus = "delivered"
	NotificationStatusFailed    NotificationStatus = "failed"
	NotificationStatusBounced   NotificationStatus = "bounced"
)

func (s NotificationStatus) String() string { return string(s) }

func (s NotificationStatus) IsValid() bool {
	switch s {
	case NotificationStatusPending, NotificationStatusSent, NotificationStatusDelivered,
		NotificationStatusFailed, NotificationStatusBounced:
		return true
	}
	return false
}

// DocumentStatus mirrors the completion state of the owning request.
type DocumentStatus string

const (
	DocumentStatusDraft     DocumentStatus = "draft"
	DocumentStatusGenerated DocumentStatus = "generated"
	DocumentStatusSent      DocumentStatus = "sent"
	DocumentStatusCompleted DocumentStatus = "completed"
	DocumentStatusCancelled DocumentStatus = "cancelled"
)

func (s DocumentStatus) String() string { return string(s) }

func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusDraft, DocumentStatusGenerated, DocumentStatusSent,
		DocumentStatusCompleted, DocumentStatusCancelled:
		return true
	}
	return false
}

// DeviceType is the coarse device class of a signer. It only influences
// canvas sizing on the client and is stored as evidence.
type DeviceType string

const (
	DeviceTypeMobile  DeviceType = "mobile"
	DeviceTypeTablet  DeviceType = "tablet"
	DeviceTypeDesktop DeviceType = "desktop"
)

func (d DeviceType) String() string { return string(d) }
