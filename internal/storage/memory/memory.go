// Package memory is an in-process implementation of storage interface.
//
// It backs unit tests and embedded deployments. InTx takes a snapshot of the
// whole state and restores it when the callback fails, which gives the same
// all-or-nothing semantics the postgres implementation gets from real
// transactions.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/onsocial/trustd/internal/entities"
	"github.com/onsocial/trustd/internal/storage"
)

const historyLimit = 50

var errNestedTx = errors.New("can not run InTx within tx")

type pair struct {
	a string
	b string
}

type state struct {
	height      uint64
	profiles    map[string]entities.Profile
	follows     map[pair]uint64
	requests    map[pair]uint64
	blocks      map[pair]uint64
	rates       map[string]entities.RateCounter
	reputations map[string]entities.Reputation
	history     map[string][]entities.ReputationHistoryEntry
	privacy     map[string]entities.PrivacySettings
	whitelist   map[pair]uint64
	blacklist   map[pair]uint64
	accessLog   map[pair]entities.AccessDecision
}

func newState() *state {
	return &state{
		profiles:    map[string]entities.Profile{},
		follows:     map[pair]uint64{},
		requests:    map[pair]uint64{},
		blocks:      map[pair]uint64{},
		rates:       map[string]entities.RateCounter{},
		reputations: map[string]entities.Reputation{},
		history:     map[string][]entities.ReputationHistoryEntry{},
		privacy:     map[string]entities.PrivacySettings{},
		whitelist:   map[pair]uint64{},
		blacklist:   map[pair]uint64{},
		accessLog:   map[pair]entities.AccessDecision{},
	}
}

func (s *state) clone() *state {
	out := newState()
	out.height = s.height

	for k, v := range s.profiles {
		out.profiles[k] = v
	}
	for k, v := range s.follows {
		out.follows[k] = v
	}
	for k, v := range s.requests {
		out.requests[k] = v
	}
	for k, v := range s.blocks {
		out.blocks[k] = v
	}
	for k, v := range s.rates {
		out.rates[k] = v
	}
	for k, v := range s.reputations {
		out.reputations[k] = v
	}
	for k, v := range s.history {
		h := make([]entities.ReputationHistoryEntry, len(v))
		copy(h, v)
		out.history[k] = h
	}
	for k, v := range s.privacy {
		out.privacy[k] = v
	}
	for k, v := range s.whitelist {
		out.whitelist[k] = v
	}
	for k, v := range s.blacklist {
		out.blacklist[k] = v
	}
	for k, v := range s.accessLog {
		out.accessLog[k] = v
	}

	return out
}

type mem struct {
	mu   *sync.Mutex
	s    *state
	inTx bool
}

// New creates new instance of mem.
func New() storage.Storage {
	return &mem{
		mu: &sync.Mutex{},
		s:  newState(),
	}
}

func (m *mem) InTx(_ context.Context, f func(s storage.Storage) error) error {
	if m.inTx {
		return errNestedTx
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := m.s.clone()

	if err := f(&mem{mu: m.mu, s: m.s, inTx: true}); err != nil {
		m.s = snapshot
		return err
	}

	return nil
}

func (m *mem) lock() func() {
	if m.inTx {
		return func() {}
	}

	m.mu.Lock()
	return m.mu.Unlock
}

func (m *mem) GetHeight(_ context.Context) (uint64, error) {
	defer m.lock()()
	return m.s.height, nil
}

func (m *mem) SetHeight(_ context.Context, height uint64) error {
	defer m.lock()()
	m.s.height = height
	return nil
}

func (m *mem) GetProfile(_ context.Context, address string) (*entities.Profile, error) {
	defer m.lock()()

	p, ok := m.s.profiles[address]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &p, nil
}

func (m *mem) GetProfileByUsername(_ context.Context, username string) (*entities.Profile, error) {
	defer m.lock()()

	for _, p := range m.s.profiles {
		if p.Username == username {
			p := p
			return &p, nil
		}
	}

	return nil, storage.ErrNotFound
}

func (m *mem) CreateProfile(_ context.Context, p *entities.Profile) error {
	defer m.lock()()
	m.s.profiles[p.Address] = *p
	return nil
}

func (m *mem) UpdateProfile(_ context.Context, p *entities.Profile) error {
	defer m.lock()()

	if _, ok := m.s.profiles[p.Address]; !ok {
		return storage.ErrNotFound
	}

	m.s.profiles[p.Address] = *p
	return nil
}

func (m *mem) CountProfiles(_ context.Context) (uint64, error) {
	defer m.lock()()
	return uint64(len(m.s.profiles)), nil
}

func (m *mem) CreateFollow(_ context.Context, follower, followee string, height uint64) error {
	defer m.lock()()
	m.s.follows[pair{follower, followee}] = height
	return nil
}

func (m *mem) DeleteFollow(_ context.Context, follower, followee string) error {
	defer m.lock()()

	if _, ok := m.s.follows[pair{follower, followee}]; !ok {
		return storage.ErrNotFound
	}

	delete(m.s.follows, pair{follower, followee})
	return nil
}

func (m *mem) HasFollow(_ context.Context, follower, followee string) (bool, error) {
	defer m.lock()()
	_, ok := m.s.follows[pair{follower, followee}]
	return ok, nil
}

func (m *mem) FollowerCount(_ context.Context, address string) (uint32, error) {
	defer m.lock()()

	var c uint32
	for k := range m.s.follows {
		if k.b == address {
			c++
		}
	}

	return c, nil
}

func (m *mem) FollowingCount(_ context.Context, address string) (uint32, error) {
	defer m.lock()()

	var c uint32
	for k := range m.s.follows {
		if k.a == address {
			c++
		}
	}

	return c, nil
}

func (m *mem) CountFollows(_ context.Context) (uint64, error) {
	defer m.lock()()
	return uint64(len(m.s.follows)), nil
}

func (m *mem) CreateFollowRequest(_ context.Context, requester, target string, height uint64) error {
	defer m.lock()()
	m.s.requests[pair{requester, target}] = height
	return nil
}

func (m *mem) DeleteFollowRequest(_ context.Context, requester, target string) error {
	defer m.lock()()

	if _, ok := m.s.requests[pair{requester, target}]; !ok {
		return storage.ErrNotFound
	}

	delete(m.s.requests, pair{requester, target})
	return nil
}

func (m *mem) HasFollowRequest(_ context.Context, requester, target string) (bool, error) {
	defer m.lock()()
	_, ok := m.s.requests[pair{requester, target}]
	return ok, nil
}

func (m *mem) CreateBlock(_ context.Context, blocker, blocked string, height uint64) error {
	defer m.lock()()
	m.s.blocks[pair{blocker, blocked}] = height
	return nil
}

func (m *mem) DeleteBlock(_ context.Context, blocker, blocked string) error {
	defer m.lock()()

	if _, ok := m.s.blocks[pair{blocker, blocked}]; !ok {
		return storage.ErrNotFound
	}

	delete(m.s.blocks, pair{blocker, blocked})
	return nil
}

func (m *mem) HasBlock(_ context.Context, blocker, blocked string) (bool, error) {
	defer m.lock()()
	_, ok := m.s.blocks[pair{blocker, blocked}]
	return ok, nil
}

func (m *mem) GetRateCounter(_ context.Context, address string) (*entities.RateCounter, error) {
	defer m.lock()()

	c, ok := m.s.rates[address]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &c, nil
}

func (m *mem) SetRateCounter(_ context.Context, address string, c *entities.RateCounter) error {
	defer m.lock()()
	m.s.rates[address] = *c
	return nil
}

func (m *mem) GetReputation(_ context.Context, address string) (*entities.Reputation, error) {
	defer m.lock()()

	r, ok := m.s.reputations[address]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &r, nil
}

func (m *mem) CreateReputation(_ context.Context, r *entities.Reputation) error {
	defer m.lock()()
	m.s.reputations[r.Address] = *r
	return nil
}

func (m *mem) UpdateReputation(_ context.Context, r *entities.Reputation) error {
	defer m.lock()()

	if _, ok := m.s.reputations[r.Address]; !ok {
		return storage.ErrNotFound
	}

	m.s.reputations[r.Address] = *r
	return nil
}

func (m *mem) AddReputationHistory(_ context.Context, e *entities.ReputationHistoryEntry) error {
	defer m.lock()()

	h := append(m.s.history[e.Address], *e)
	if len(h) > historyLimit {
		h = h[len(h)-historyLimit:]
	}
	m.s.history[e.Address] = h

	return nil
}

func (m *mem) ListReputationHistory(_ context.Context, address string, limit uint32) ([]*entities.ReputationHistoryEntry, error) {
	defer m.lock()()

	h := m.s.history[address]

	out := make([]*entities.ReputationHistoryEntry, 0, limit)
	for i := len(h) - 1; i >= 0 && len(out) < int(limit); i-- {
		e := h[i]
		out = append(out, &e)
	}

	// newest first, stable within equal heights
	sort.SliceStable(out, func(i, j int) bool { return out[i].Height > out[j].Height })

	return out, nil
}

func (m *mem) GetReputationStats(_ context.Context) (*entities.ReputationStats, error) {
	defer m.lock()()

	out := entities.ReputationStats{}
	for _, r := range m.s.reputations {
		out.TotalUsers++
		out.TotalPoints += r.Score
	}

	return &out, nil
}

func (m *mem) GetPrivacySettings(_ context.Context, address string) (*entities.PrivacySettings, error) {
	defer m.lock()()

	s, ok := m.s.privacy[address]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &s, nil
}

func (m *mem) SetPrivacySettings(_ context.Context, s *entities.PrivacySettings) error {
	defer m.lock()()
	m.s.privacy[s.Address] = *s
	return nil
}

func (m *mem) DeletePrivacySettings(_ context.Context, address string) error {
	defer m.lock()()

	if _, ok := m.s.privacy[address]; !ok {
		return storage.ErrNotFound
	}

	delete(m.s.privacy, address)
	return nil
}

func (m *mem) GetPrivacyStats(_ context.Context) (*entities.PrivacyStats, error) {
	defer m.lock()()

	out := entities.PrivacyStats{}
	for _, s := range m.s.privacy {
		out.TotalAccounts++
		if s.Level == entities.PrivacyLevelPrivate {
			out.PrivateAccounts++
		}
	}

	return &out, nil
}

func (m *mem) AddToWhitelist(_ context.Context, owner, address string, height uint64) error {
	defer m.lock()()
	m.s.whitelist[pair{owner, address}] = height
	return nil
}

func (m *mem) RemoveFromWhitelist(_ context.Context, owner, address string) error {
	defer m.lock()()

	if _, ok := m.s.whitelist[pair{owner, address}]; !ok {
		return storage.ErrNotFound
	}

	delete(m.s.whitelist, pair{owner, address})
	return nil
}

func (m *mem) IsWhitelisted(_ context.Context, owner, address string) (bool, error) {
	defer m.lock()()
	_, ok := m.s.whitelist[pair{owner, address}]
	return ok, nil
}

func (m *mem) AddToBlacklist(_ context.Context, owner, address string, height uint64) error {
	defer m.lock()()
	m.s.blacklist[pair{owner, address}] = height
	return nil
}

func (m *mem) RemoveFromBlacklist(_ context.Context, owner, address string) error {
	defer m.lock()()

	if _, ok := m.s.blacklist[pair{owner, address}]; !ok {
		return storage.ErrNotFound
	}

	delete(m.s.blacklist, pair{owner, address})
	return nil
}

func (m *mem) IsBlacklisted(_ context.Context, owner, address string) (bool, error) {
	defer m.lock()()
	_, ok := m.s.blacklist[pair{owner, address}]
	return ok, nil
}

func (m *mem) SetAccessDecision(_ context.Context, d *entities.AccessDecision) error {
	defer m.lock()()
	m.s.accessLog[pair{d.Owner, d.Accessor}] = *d
	return nil
}

func (m *mem) GetAccessDecision(_ context.Context, owner, accessor string) (*entities.AccessDecision, error) {
	defer m.lock()()

	d, ok := m.s.accessLog[pair{owner, accessor}]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &d, nil
}
