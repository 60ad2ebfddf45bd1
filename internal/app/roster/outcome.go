package roster

import "github.com/Overland-East-Bay/intergalactic-planner/internal/domain"

// OutcomeKind classifies the result of an admission attempt.
type OutcomeKind int

const (
	// OutcomeAdded: the roster had room and the traveler was appended.
	OutcomeAdded OutcomeKind = iota
	// OutcomeAddedWithEviction: the roster was full, the traveler is a VIP, and the
	// most recently admitted non-VIP was removed to make room.
	OutcomeAddedWithEviction
	// OutcomeRejectedInvalid: a name part was empty.
	OutcomeRejectedInvalid
	// OutcomeRejectedAllVIP: the roster was full of VIPs.
	OutcomeRejectedAllVIP
	// OutcomeRejectedFull: the roster was full and the traveler is not a VIP.
	OutcomeRejectedFull
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeAdded:
		return "added"
	case OutcomeAddedWithEviction:
		return "added_with_eviction"
	case OutcomeRejectedInvalid:
		return "rejected_invalid"
	case OutcomeRejectedAllVIP:
		return "rejected_all_vip"
	case OutcomeRejectedFull:
		return "rejected_full"
	default:
		return "unknown"
	}
}

// Outcome describes what an admission did.
type Outcome struct {
	Kind     OutcomeKind
	Traveler domain.TravelerName
	VIP      bool

	// Evicted is set only for OutcomeAddedWithEviction.
	Evicted domain.TravelerName
}

func (o Outcome) Admitted() bool {
	return o.Kind == OutcomeAdded || o.Kind == OutcomeAddedWithEviction
}
