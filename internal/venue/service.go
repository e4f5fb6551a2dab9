package venue

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name               string
	Location           string
	SeatingCapacity    int
	ACAvailable        bool
	ProjectorAvailable bool
}

type UpdateRequest struct {
	Name               *string
	Location           *string
	SeatingCapacity    *int
	ACAvailable        *bool
	ProjectorAvailable *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Venue, error)
	GetByID(ctx context.Context, id string) (*Venue, error)
	List(ctx context.Context, filter Filter) ([]*Venue, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Venue, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Venue, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.SeatingCapacity <= 0 {
		return nil, ErrBadCapacity
	}

	v := &Venue{
		Name:               strings.TrimSpace(req.Name),
		Location:           strings.TrimSpace(req.Location),
		SeatingCapacity:    req.SeatingCapacity,
		ACAvailable:        req.ACAvailable,
		ProjectorAvailable: req.ProjectorAvailable,
	}

	// Duplicate names surface as ErrAlreadyExists from the repository.
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Venue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Venue, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Venue, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		v.Name = strings.TrimSpace(*req.Name)
	}
	if req.Location != nil {
		v.Location = strings.TrimSpace(*req.Location)
	}
	if req.SeatingCapacity != nil {
		if *req.SeatingCapacity <= 0 {
			return nil, ErrBadCapacity
		}
		v.SeatingCapacity = *req.SeatingCapacity
	}
	if req.ACAvailable != nil {
		v.ACAvailable = *req.ACAvailable
	}
	if req.ProjectorAvailable != nil {
		v.ProjectorAvailable = *req.ProjectorAvailable
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
