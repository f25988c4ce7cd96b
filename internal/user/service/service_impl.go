package service

import (
	"context"
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/quickstep/internal/auth/password"
	"github.com/smallbiznis/quickstep/internal/user/domain"
	"github.com/smallbiznis/quickstep/pkg/db"
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
	hash  func(string) (string, error)
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("user.service"),
		repo:  p.Repo,
		genID: p.GenID,
		hash:  password.Hash,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	firstName := strings.TrimSpace(req.FirstName)
	if firstName == "" {
		return nil, domain.ErrInvalidFirstName
	}
	lastName := strings.TrimSpace(req.LastName)
	if lastName == "" {
		return nil, domain.ErrInvalidLastName
	}
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if len(req.Password) < domain.MinPasswordLength {
		return nil, domain.ErrInvalidPassword
	}
	addressID, err := parseAddressID(req.DeliveryAddressID)
	if err != nil {
		return nil, err
	}

	if err := s.ensureEmailAvailable(ctx, email, 0); err != nil {
		return nil, err
	}

	hashed, err := s.hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &domain.User{
		ID:                s.genID.Generate().Int64(),
		FirstName:         firstName,
		LastName:          lastName,
		Email:             email,
		PasswordHash:      hashed,
		DeliveryAddressID: addressID,
	}
	if err := s.repo.Insert(ctx, s.db, u); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	s.log.Debug("user created", zap.Int64("user_id", u.ID))
	resp := domain.ToResponse(u)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	userID, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if req.FirstName != nil {
		name := strings.TrimSpace(*req.FirstName)
		if name == "" {
			return nil, domain.ErrInvalidFirstName
		}
		item.FirstName = name
	}
	if req.LastName != nil {
		name := strings.TrimSpace(*req.LastName)
		if name == "" {
			return nil, domain.ErrInvalidLastName
		}
		item.LastName = name
	}
	if req.Email != nil {
		email, err := normalizeEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		if email != item.Email {
			if err := s.ensureEmailAvailable(ctx, email, item.ID); err != nil {
				return nil, err
			}
		}
		item.Email = email
	}
	if req.Password != nil {
		if len(*req.Password) < domain.MinPasswordLength {
			return nil, domain.ErrInvalidPassword
		}
		hashed, err := s.hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		item.PasswordHash = hashed
	}
	if req.DeliveryAddressID != nil {
		addressID, err := parseAddressID(req.DeliveryAddressID)
		if err != nil {
			return nil, err
		}
		item.DeliveryAddressID = addressID
	}

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	resp := domain.ToResponse(item)
	return &resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	userID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
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
		return nil, fmt.Errorf("list users: %w", err)
	}

	resp := make([]domain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, domain.ToResponse(&items[i]))
	}
	return resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	userID, err := parseID(id)
	if err != nil {
		return err
	}

	deleted, err := s.repo.DeleteByID(ctx, s.db, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// ensureEmailAvailable fails when another user already owns email. The check
// is not atomic with the following write.
func (s *Service) ensureEmailAvailable(ctx context.Context, email string, selfID int64) error {
	existing, err := s.repo.FindByEmail(ctx, s.db, email)
	if err != nil {
		return fmt.Errorf("find user by email: %w", err)
	}
	if existing != nil && existing.ID != selfID {
		return domain.ErrDuplicateEmail
	}
	return nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", domain.ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", domain.ErrInvalidEmail
	}
	return email, nil
}

func parseID(raw string) (int64, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return id.Int64(), nil
}

func parseAddressID(raw *string) (*int64, error) {
	if raw == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || id <= 0 {
		return nil, domain.ErrInvalidDeliveryAddress
	}
	return &id, nil
}
