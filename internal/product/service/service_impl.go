package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/quickstep/internal/product/domain"
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
		log:   p.Log.Named("product.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if err := validateNumbers(req.Type, req.Price, req.Quantity); err != nil {
		return nil, err
	}

	p := &domain.Product{
		ID:       s.genID.Generate().Int64(),
		Name:     name,
		Type:     req.Type,
		Price:    req.Price,
		Quantity: req.Quantity,
	}
	if err := s.repo.Insert(ctx, s.db, p); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	resp := domain.ToResponse(p)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	productID, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, s.db, productID)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		item.Name = name
	}
	if req.Type != nil {
		item.Type = *req.Type
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if err := validateNumbers(item.Type, item.Price, item.Quantity); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	resp := domain.ToResponse(item)
	return &resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	productID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, s.db, productID)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	resp := domain.ToResponse(item)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Response, error) {
	if req.Type != nil && *req.Type < 0 {
		return nil, domain.ErrInvalidType
	}

	items, err := s.repo.FindAll(ctx, s.db, domain.ListFilter{Type: req.Type})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	resp := make([]domain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, domain.ToResponse(&items[i]))
	}
	return resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	productID, err := parseID(id)
	if err != nil {
		return err
	}

	deleted, err := s.repo.DeleteByID(ctx, s.db, productID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if !deleted {
		return domain.ErrNotFound
	}
	s.log.Debug("product deleted", zap.Int64("product_id", productID))
	return nil
}

func validateNumbers(productType int, price decimal.Decimal, quantity int) error {
	switch {
	case productType < 0:
		return domain.ErrInvalidType
	case price.IsNegative():
		return domain.ErrInvalidPrice
	case quantity < 0:
		return domain.ErrInvalidQuantity
	default:
		return nil
	}
}

func parseID(raw string) (int64, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return id.Int64(), nil
}
