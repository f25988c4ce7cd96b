package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/quickstep/internal/address/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("address.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}

	a := &domain.Address{
		ID:          s.genID.Generate().Int64(),
		UserID:      userID,
		Street:      strings.TrimSpace(req.Street),
		HouseNumber: strings.TrimSpace(req.HouseNumber),
		City:        strings.TrimSpace(req.City),
		State:       normalizeState(req.State),
		Zip:         strings.TrimSpace(req.Zip),
		Country:     strings.TrimSpace(req.Country),
	}
	if err := validate(a); err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, s.db, a); err != nil {
		return nil, fmt.Errorf("insert address: %w", err)
	}

	resp := domain.ToResponse(a)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	addressID, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, s.db, addressID)
	if err != nil {
		return nil, fmt.Errorf("find address: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if req.UserID != nil {
		userID, err := parseUserID(*req.UserID)
		if err != nil {
			return nil, err
		}
		item.UserID = userID
	}
	setTrimmed(&item.Street, req.Street)
	setTrimmed(&item.HouseNumber, req.HouseNumber)
	setTrimmed(&item.City, req.City)
	setTrimmed(&item.Zip, req.Zip)
	setTrimmed(&item.Country, req.Country)
	if req.State != nil {
		item.State = normalizeState(req.State)
	}
	if err := validate(item); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, fmt.Errorf("update address: %w", err)
	}

	resp := domain.ToResponse(item)
	return &resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	addressID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, s.db, addressID)
	if err != nil {
		return nil, fmt.Errorf("find address: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	resp := domain.ToResponse(item)
	return &resp, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Response, error) {
	items, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return toResponses(items), nil
}

func (s *Service) ListByCountry(ctx context.Context, country string) ([]domain.Response, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return nil, domain.ErrInvalidCountry
	}

	items, err := s.repo.FindByCountry(ctx, s.db, country)
	if err != nil {
		return nil, fmt.Errorf("list addresses by country: %w", err)
	}
	return toResponses(items), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	addressID, err := parseID(id)
	if err != nil {
		return err
	}

	deleted, err := s.repo.DeleteByID(ctx, s.db, addressID)
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func validate(a *domain.Address) error {
	switch {
	case a.Street == "":
		return domain.ErrInvalidStreet
	case a.HouseNumber == "":
		return domain.ErrInvalidHouseNumber
	case a.City == "":
		return domain.ErrInvalidCity
	case a.Zip == "":
		return domain.ErrInvalidZip
	case a.Country == "":
		return domain.ErrInvalidCountry
	default:
		return nil
	}
}

func toResponses(items []domain.Address) []domain.Response {
	resp := make([]domain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, domain.ToResponse(&items[i]))
	}
	return resp
}

func setTrimmed(dst *string, value *string) {
	if value != nil {
		*dst = strings.TrimSpace(*value)
	}
}

func normalizeState(state *string) *string {
	if state == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*state)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func parseID(raw string) (int64, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return id.Int64(), nil
}

func parseUserID(raw string) (int64, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidUser
	}
	return id.Int64(), nil
}
