package action

// Status is the lifecycle state of an Action.
type Status string

const (
	StatusActive    Status = "ActiveActionStatus"
	StatusCompleted Status = "CompletedActionStatus"
	StatusCanceled  Status = "CanceledActionStatus"
	StatusFailed    Status = "FailedActionStatus"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusCanceled, StatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed out of s.
// Completed is terminal for Complete and GiveUp; only Cancel may still move
// it, which is how an authorization gets reversed.
func (s Status) IsTerminal() bool {
	return s == StatusCanceled || s == StatusFailed || s == StatusCompleted
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Type discriminates what kind of business work an Action records.
type Type string

const (
	TypeAuthorize Type = "AuthorizeAction"
	TypeConfirm   Type = "ConfirmAction"
	TypeCancel    Type = "CancelAction"
	TypeGive      Type = "GiveAction"
	TypeReturn    Type = "ReturnAction"
	TypeSend      Type = "SendAction"
	TypeInform    Type = "InformAction"
	TypeCheck     Type = "CheckAction"
)

// IsValid returns true if the type is one of the defined constants.
func (t Type) IsValid() bool {
	switch t {
	case TypeAuthorize, TypeConfirm, TypeCancel, TypeGive, TypeReturn, TypeSend, TypeInform, TypeCheck:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// ObjectType is the object.typeOf discriminator used to tell apart actions of
// the same Type (e.g. a seat-reservation authorization vs. a point-award one).
type ObjectType string

const (
	ObjectSeatReservation ObjectType = "SeatReservation"
	ObjectPointAward      ObjectType = "PointAward"
	ObjectOrder           ObjectType = "Order"
	ObjectEmailMessage    ObjectType = "EmailMessage"
	ObjectWebhook         ObjectType = "Webhook"
)
