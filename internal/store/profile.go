package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mathcoach/ent"
	"github.com/abhisek/mathcoach/ent/profile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Create(ctx context.Context, p NewProfile) (*Profile, error) {
	c := r.client.Profile.Create().
		SetName(p.Name).
		SetRole(profile.Role(p.Role))
	if p.CoachID != "" {
		c.SetCoachID(p.CoachID)
	}
	e, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return entProfileToProfile(e), nil
}

func (r *profileRepo) Get(ctx context.Context, id string) (*Profile, error) {
	e, err := r.client.Profile.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return entProfileToProfile(e), nil
}

func (r *profileRepo) FindByName(ctx context.Context, name string, role Role) (*Profile, error) {
	e, err := r.client.Profile.Query().
		Where(profile.NameEQ(name), profile.RoleEQ(profile.Role(role))).
		Order(ent.Asc(profile.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return entProfileToProfile(e), nil
}

func (r *profileRepo) List(ctx context.Context) ([]Profile, error) {
	rows, err := r.client.Profile.Query().
		Order(ent.Asc(profile.FieldRole), ent.Asc(profile.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return entProfilesToProfiles(rows), nil
}

func (r *profileRepo) StudentsOf(ctx context.Context, coachID string) ([]Profile, error) {
	rows, err := r.client.Profile.Query().
		Where(profile.RoleEQ(profile.RoleSTUDENT), profile.CoachIDEQ(coachID)).
		Order(ent.Asc(profile.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return entProfilesToProfiles(rows), nil
}

func entProfileToProfile(e *ent.Profile) *Profile {
	p := &Profile{
		ID:        e.ID,
		Name:      e.Name,
		Role:      Role(e.Role),
		CreatedAt: e.CreatedAt,
	}
	if e.CoachID != nil {
		p.CoachID = *e.CoachID
	}
	return p
}

func entProfilesToProfiles(rows []*ent.Profile) []Profile {
	out := make([]Profile, len(rows))
	for i, e := range rows {
		out[i] = *entProfileToProfile(e)
	}
	return out
}
