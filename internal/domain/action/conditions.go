package action

import "github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"

// SortOrder is the direction applied to StartDate in search results.
type SortOrder int

const (
	// SortNone keeps store order.
	SortNone SortOrder = iota
	SortAscending
	SortDescending
)

// Sort orders search results by start date.
type Sort struct {
	StartDate SortOrder
}

// PurposeFilter selects actions by their purpose. ID is optional.
type PurposeFilter struct {
	TypeOf string
	ID     string
}

// PurposeConditions are the inputs of SearchByPurpose.
type PurposeConditions struct {
	TypeOf  Type
	Purpose PurposeFilter
	Sort    Sort
}

// Validate requires purpose.typeOf and a known action type when one is set.
func (c PurposeConditions) Validate() error {
	if c.Purpose.TypeOf == "" {
		return domain.NewValidationError("purpose.typeOf", domain.MsgRequired)
	}
	if c.TypeOf != "" && !c.TypeOf.IsValid() {
		return domain.NewValidationError("typeOf", "invalid: "+string(c.TypeOf))
	}
	return nil
}

// Matches reports whether a satisfies the conditions. In-memory stores use it;
// SQL stores express the same predicate in their WHERE clause.
func (c PurposeConditions) Matches(a *Action) bool {
	if c.TypeOf != "" && a.TypeOf != c.TypeOf {
		return false
	}
	if a.Purpose == nil || a.Purpose.TypeOf != c.Purpose.TypeOf {
		return false
	}
	return c.Purpose.ID == "" || a.Purpose.ID == c.Purpose.ID
}

// MatchesOrderNumber reports whether a refers to the order either through its
// object or through its purpose.
func MatchesOrderNumber(a *Action, orderNumber string) bool {
	if orderNumber == "" {
		return false
	}
	if a.Purpose != nil && a.Purpose.OrderNumber == orderNumber {
		return true
	}
	return ObjectOrderNumber(a.Object) == orderNumber
}
