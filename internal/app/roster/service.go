// Package roster implements the trip roster: a fixed-capacity, ordered list of
// travelers where VIPs may displace non-VIPs once the trip is full.
//
// Admission rules:
//   - below capacity, anyone is appended;
//   - at capacity, a VIP replaces the last (most recently admitted) non-VIP and is
//     appended at the tail;
//   - at capacity, a VIP is rejected when every member is already a VIP;
//   - at capacity, a non-VIP is rejected.
//
// A VIP is never evicted, and nobody is evicted for a non-VIP.
package roster

import (
	"context"
	"sync"

	"github.com/Overland-East-Bay/intergalactic-planner/internal/domain"
	"github.com/Overland-East-Bay/intergalactic-planner/internal/platform/log"
)

// Capacity is the maximum number of travelers on a roster.
const Capacity = domain.MaxTravelers

// Service owns a single roster. Operations are serialized; each one either makes
// exactly one structural change or none.
type Service struct {
	mu     sync.Mutex
	roster *domain.Roster
}

func NewService() *Service {
	return &Service{roster: domain.NewRoster()}
}

// Admit attempts to add "<firstname> <lastname>" and reports whether the traveler
// is on the roster afterwards.
func (s *Service) Admit(ctx context.Context, firstname, lastname string) bool {
	return s.AdmitWithOutcome(ctx, firstname, lastname).Admitted()
}

// AdmitWithOutcome is Admit with the decision and any eviction reported.
func (s *Service) AdmitWithOutcome(ctx context.Context, firstname, lastname string) Outcome {
	name, ok := domain.FullName(firstname, lastname)
	if !ok {
		log.Debugf(ctx, "roster: rejected invalid name %q %q", firstname, lastname)
		return Outcome{Kind: OutcomeRejectedInvalid}
	}
	vip := name.VIP()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.roster.Full() {
		s.roster.Append(name)
		log.Infof(ctx, "roster: added %q vip=%t size=%d", name, vip, s.roster.Len())
		return Outcome{Kind: OutcomeAdded, Traveler: name, VIP: vip}
	}

	if !vip {
		log.Infof(ctx, "roster: trip is full, rejected non-VIP %q", name)
		return Outcome{Kind: OutcomeRejectedFull, Traveler: name}
	}

	i := s.roster.LastIndexFunc(func(n domain.TravelerName) bool { return !n.VIP() })
	if i < 0 {
		log.Infof(ctx, "roster: all spots held by VIPs, rejected %q", name)
		return Outcome{Kind: OutcomeRejectedAllVIP, Traveler: name, VIP: true}
	}
	evicted, _ := s.roster.RemoveAt(i)
	s.roster.Append(name)
	log.Infof(ctx, "roster: evicted non-VIP %q to admit VIP %q", evicted, name)
	return Outcome{Kind: OutcomeAddedWithEviction, Traveler: name, VIP: true, Evicted: evicted}
}

// Delete removes the first traveler named "<firstname> <lastname>" and reports
// whether one was removed. VIP status plays no part.
func (s *Service) Delete(ctx context.Context, firstname, lastname string) bool {
	name, ok := domain.FullName(firstname, lastname)
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.roster.IndexOf(name)
	if i < 0 {
		log.Debugf(ctx, "roster: traveler %q not found", name)
		return false
	}
	s.roster.RemoveAt(i)
	log.Infof(ctx, "roster: deleted %q size=%d", name, s.roster.Len())
	return true
}

// Travelers returns the roster in admission order. The slice is a copy.
func (s *Service) Travelers() []domain.TravelerName {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster.Names()
}

func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster.Len()
}
