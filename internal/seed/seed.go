package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	addressdomain "github.com/smallbiznis/quickstep/internal/address/domain"
	addressrepo "github.com/smallbiznis/quickstep/internal/address/repository"
	"github.com/smallbiznis/quickstep/internal/auth/password"
	"github.com/smallbiznis/quickstep/internal/clock"
	"github.com/smallbiznis/quickstep/internal/config"
	orderdomain "github.com/smallbiznis/quickstep/internal/order/domain"
	orderrepo "github.com/smallbiznis/quickstep/internal/order/repository"
	productdomain "github.com/smallbiznis/quickstep/internal/product/domain"
	productrepo "github.com/smallbiznis/quickstep/internal/product/repository"
	userdomain "github.com/smallbiznis/quickstep/internal/user/domain"
	userrepo "github.com/smallbiznis/quickstep/internal/user/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	demoEmail    = "demo@quickstep.local"
	demoPassword = "quickstep-demo"
)

var Module = fx.Module("seed",
	fx.Invoke(func(db *gorm.DB, cfg config.Config, node *snowflake.Node, clk clock.Clock, log *zap.Logger) error {
		if !cfg.DBSeed {
			return nil
		}
		seeded, err := EnsureSampleData(context.Background(), db, node, clk)
		if err != nil {
			return err
		}
		if seeded {
			log.Info("seeded sample data", zap.String("email", demoEmail))
		}
		return nil
	}),
)

// EnsureSampleData inserts a demo user with an address, two products and one
// order. It does nothing when the demo user already exists and reports whether
// rows were written.
func EnsureSampleData(ctx context.Context, db *gorm.DB, node *snowflake.Node, clk clock.Clock) (bool, error) {
	if db == nil {
		return false, errors.New("seed database handle is required")
	}

	users := userrepo.Provide()
	existing, err := users.FindByEmail(ctx, db, demoEmail)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	hashed, err := password.Hash(demoPassword)
	if err != nil {
		return false, err
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userID := node.Generate().Int64()
		addressID := node.Generate().Int64()

		state := "CA"
		if err := addressrepo.Provide().Insert(ctx, tx, &addressdomain.Address{
			ID:          addressID,
			UserID:      userID,
			Street:      "Market Street",
			HouseNumber: "1",
			City:        "San Francisco",
			State:       &state,
			Zip:         "94105",
			Country:     "USA",
		}); err != nil {
			return fmt.Errorf("seed address: %w", err)
		}

		if err := users.Insert(ctx, tx, &userdomain.User{
			ID:                userID,
			FirstName:         "Demo",
			LastName:          "User",
			Email:             demoEmail,
			PasswordHash:      hashed,
			DeliveryAddressID: &addressID,
		}); err != nil {
			return fmt.Errorf("seed user: %w", err)
		}

		products := []productdomain.Product{
			{ID: node.Generate().Int64(), Name: "Notebook", Type: 1, Price: decimal.RequireFromString("4.99"), Quantity: 100},
			{ID: node.Generate().Int64(), Name: "Fountain Pen", Type: 2, Price: decimal.RequireFromString("24.50"), Quantity: 12},
		}
		productIDs := make([]int64, 0, len(products))
		for i := range products {
			if err := productrepo.Provide().Insert(ctx, tx, &products[i]); err != nil {
				return fmt.Errorf("seed product: %w", err)
			}
			productIDs = append(productIDs, products[i].ID)
		}

		if err := orderrepo.Provide().Insert(ctx, tx, &orderdomain.Order{
			ID:         node.Generate().Int64(),
			OwnerID:    userID,
			ProductIDs: productIDs,
			IssueDate:  clk.Now(),
		}); err != nil {
			return fmt.Errorf("seed order: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
