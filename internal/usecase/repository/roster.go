package repository

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sync"

	"github.com/project/studentlibrary/internal/entity"
)

var _ RosterRepository = (*rosterRepository)(nil)

type rosterRepository struct {
	mu    sync.RWMutex
	order []string
	names map[string]string
	dirty bool
}

func NewRoster() *rosterRepository {
	return &rosterRepository{
		names: make(map[string]string),
	}
}

func (r *rosterRepository) Register(member entity.Member) error {
	if err := member.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.names[member.ID]; ok {
		return fmt.Errorf("%w: %s", entity.ErrDuplicateMember, member.ID)
	}

	r.order = append(r.order, member.ID)
	r.names[member.ID] = member.Name
	r.dirty = true

	return nil
}

func (r *rosterRepository) Delete(memberID string) (entity.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name, ok := r.names[memberID]
	if !ok {
		return entity.Member{}, entity.ErrMemberNotFound
	}

	delete(r.names, memberID)
	r.order = slices.DeleteFunc(r.order, func(id string) bool { return id == memberID })
	r.dirty = true

	return entity.Member{ID: memberID, Name: name}, nil
}

func (r *rosterRepository) Get(memberID string) (entity.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.names[memberID]
	if !ok {
		return entity.Member{}, entity.ErrMemberNotFound
	}
	return entity.Member{ID: memberID, Name: name}, nil
}

// List yields members in registration order from a snapshot taken now.
func (r *rosterRepository) List() iter.Seq[entity.Member] {
	members := r.Members()
	return slices.Values(members)
}

func (r *rosterRepository) Members() []entity.Member {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := make([]entity.Member, 0, len(r.order))
	for _, id := range r.order {
		members = append(members, entity.Member{ID: id, Name: r.names[id]})
	}
	return members
}

func (r *rosterRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

func (r *rosterRepository) reset(members []entity.Member) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = make([]string, 0, len(members))
	r.names = make(map[string]string, len(members))
	for _, m := range members {
		if _, ok := r.names[m.ID]; !ok {
			r.order = append(r.order, m.ID)
		}
		r.names[m.ID] = m.Name
	}
	r.dirty = false
}

func (r *rosterRepository) Snapshot() func() {
	r.mu.RLock()
	order, names, dirty := slices.Clone(r.order), maps.Clone(r.names), r.dirty
	r.mu.RUnlock()

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.order, r.names, r.dirty = order, names, dirty
	}
}

func (r *rosterRepository) isDirty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dirty
}

func (r *rosterRepository) markClean() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dirty = false
}
