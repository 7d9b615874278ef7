package memstore

import (
	"context"

	"github.com/rpggio/stowage/internal/domain/companion"
	"github.com/rpggio/stowage/internal/repository"
)

// SkillRepository implements companion.SkillRepository.
type SkillRepository struct {
	s *Store
}

func (r *SkillRepository) Create(_ context.Context, sk *companion.Skill) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.skills.insert(sk.ID, sk.Clone()) {
		return repository.ErrDuplicate
	}
	return nil
}

func (r *SkillRepository) Get(_ context.Context, id string) (*companion.Skill, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	row, ok := r.s.skills.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := row.Clone()
	return &out, nil
}

func (r *SkillRepository) Update(_ context.Context, sk *companion.Skill) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.skills.replace(sk.ID, sk.Clone()) {
		return repository.ErrNotFound
	}
	return nil
}

func (r *SkillRepository) List(_ context.Context) ([]companion.Skill, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := r.s.skills.all()
	out := make([]companion.Skill, len(rows))
	for i, row := range rows {
		out[i] = row.Clone()
	}
	return out, nil
}

// CompanionRepository implements companion.CompanionRepository.
type CompanionRepository struct {
	s *Store
}

func (r *CompanionRepository) Create(_ context.Context, c *companion.Companion) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.companions.insert(c.ID, c.Clone()) {
		return repository.ErrDuplicate
	}
	return nil
}

func (r *CompanionRepository) Get(_ context.Context, id string) (*companion.Companion, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	row, ok := r.s.companions.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := row.Clone()
	return &out, nil
}

func (r *CompanionRepository) Update(_ context.Context, c *companion.Companion) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.companions.replace(c.ID, c.Clone()) {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CompanionRepository) List(_ context.Context) ([]companion.Companion, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := r.s.companions.all()
	out := make([]companion.Companion, len(rows))
	for i, row := range rows {
		out[i] = row.Clone()
	}
	return out, nil
}
