package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/quickstep/internal/clock"
	"github.com/smallbiznis/quickstep/internal/order/domain"
	"github.com/smallbiznis/quickstep/internal/order/enrich"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     domain.Repository
	Enricher *enrich.Enricher
	Clock    clock.Clock
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	enricher *enrich.Enricher
	clock    clock.Clock
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("order.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		enricher: p.Enricher,
		clock:    p.Clock,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.View, error) {
	ownerID, err := parseOwnerID(req.OwnerID)
	if err != nil {
		return nil, err
	}
	productIDs, err := parseProductIDs(req.ProductIDs)
	if err != nil {
		return nil, err
	}

	issueDate := s.clock.Now()
	if req.IssueDate != nil {
		issueDate = *req.IssueDate
	}

	o := &domain.Order{
		ID:         s.genID.Generate().Int64(),
		OwnerID:    ownerID,
		ProductIDs: productIDs,
		IssueDate:  issueDate.UTC(),
	}
	if err := s.repo.Insert(ctx, s.db, o); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	view := domain.NewView(*o, nil, nil)
	return &view, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.View, error) {
	orderID, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, s.db, orderID)
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if req.OwnerID != nil {
		ownerID, err := parseOwnerID(*req.OwnerID)
		if err != nil {
			return nil, err
		}
		item.OwnerID = ownerID
	}
	if req.ProductIDs != nil {
		productIDs, err := parseProductIDs(req.ProductIDs)
		if err != nil {
			return nil, err
		}
		item.ProductIDs = productIDs
	}
	if req.IssueDate != nil {
		item.IssueDate = req.IssueDate.UTC()
	}

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	view := domain.NewView(*item, nil, nil)
	return &view, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.View, error) {
	orderID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, s.db, orderID)
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	views, err := s.enricher.Enrich(ctx, "get", []domain.Order{*item})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *Service) List(ctx context.Context) ([]domain.View, error) {
	items, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return s.enricher.Enrich(ctx, "list", items)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]domain.View, error) {
	id, err := parseOwnerID(ownerID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.FindByOwner(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("list orders by owner: %w", err)
	}
	return s.enricher.Enrich(ctx, "list_by_owner", items)
}

func (s *Service) ListByDateRange(ctx context.Context, req domain.DateRangeRequest) ([]domain.View, error) {
	if req.OwnerID != nil && *req.OwnerID <= 0 {
		return nil, domain.ErrInvalidOwner
	}

	filter := domain.BuildOrderFilter(req.OwnerID, req.StartDate, req.EndDate)
	if filter.Kind == domain.FilterMatchNone {
		s.log.Debug("empty order date range",
			zap.Timep("start_date", req.StartDate),
			zap.Timep("end_date", req.EndDate),
		)
		return []domain.View{}, nil
	}

	items, err := s.repo.Find(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders by date range: %w", err)
	}
	return s.enricher.Enrich(ctx, "list_by_date_range", items)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	orderID, err := parseID(id)
	if err != nil {
		return err
	}

	deleted, err := s.repo.DeleteByID(ctx, s.db, orderID)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if !deleted {
		return domain.ErrNotFound
	}
	s.log.Debug("order deleted", zap.Int64("order_id", orderID))
	return nil
}

func parseID(raw string) (int64, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return id.Int64(), nil
}

func parseOwnerID(raw string) (int64, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidOwner
	}
	return id.Int64(), nil
}

func parseProductIDs(raw []string) ([]int64, error) {
	ids := make([]int64, 0, len(raw))
	for _, value := range raw {
		id, err := snowflake.ParseString(strings.TrimSpace(value))
		if err != nil || id <= 0 {
			return nil, domain.ErrInvalidProductID
		}
		ids = append(ids, id.Int64())
	}
	return ids, nil
}
