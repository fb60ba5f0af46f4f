package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lottery-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ Storage = (*GormStorage)(nil)

// GormStorage persists entities through gorm. Ids come from the database's
// autoincrement columns, so insertion order is id order.
type GormStorage struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db, now: time.Now}
}

// AutoMigrate creates or updates the tables backing the store.
func (s *GormStorage) AutoMigrate() error {
	if err := s.db.AutoMigrate(&models.User{}, &models.Promotion{}, &models.LotteryTicket{}); err != nil {
		return fmt.Errorf("migrate entity tables: %w", err)
	}
	return nil
}

func (s *GormStorage) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	result := s.db.WithContext(ctx).Limit(1).Find(&user, id)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &user, nil
}

func (s *GormStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findUserByUsername(s.db.WithContext(ctx), username)
}

func (s *GormStorage) findUserByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	result := db.Where("username = ?", username).Order("id asc").Limit(1).Find(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &user, nil
}

func (s *GormStorage) CreateUser(ctx context.Context, in models.UserInput) (*models.User, error) {
	var user *models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = s.createUser(tx, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// createUser inserts under a unique placeholder name when no username is
// given, then renames the row once the database has assigned its id.
func (s *GormStorage) createUser(tx *gorm.DB, in models.UserInput) (*models.User, error) {
	user := models.NewUser(0, in)
	named := in.Username != nil && *in.Username != ""
	if !named {
		user.Username = "pending_" + uuid.NewString()
	}

	if err := tx.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if !named {
		user.Username = models.DefaultUsernameFor(user.ID)
		if err := tx.Model(&user).Update("username", user.Username).Error; err != nil {
			return nil, fmt.Errorf("name user %d: %w", user.ID, err)
		}
	}
	return &user, nil
}

func (s *GormStorage) GetOrCreateDefaultUser(ctx context.Context) (*models.User, error) {
	var user *models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.findUserByUsername(tx, models.DefaultUsername)
		if err != nil {
			return err
		}
		if existing != nil {
			user = existing
			return nil
		}
		user, err = s.createUser(tx, models.DefaultUserInput())
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *GormStorage) GetPromotions(ctx context.Context) ([]models.Promotion, error) {
	promotions := []models.Promotion{}
	if err := s.db.WithContext(ctx).Order("id asc").Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

func (s *GormStorage) CreatePromotion(ctx context.Context, in models.PromotionInput) (*models.Promotion, error) {
	promotion := models.NewPromotion(0, in)
	if err := s.db.WithContext(ctx).Create(&promotion).Error; err != nil {
		return nil, fmt.Errorf("create promotion: %w", err)
	}
	return &promotion, nil
}

func (s *GormStorage) GetLotteryTickets(ctx context.Context) ([]models.LotteryTicket, error) {
	return s.listTickets(ctx, -1)
}

func (s *GormStorage) listTickets(ctx context.Context, limit int) ([]models.LotteryTicket, error) {
	tickets := []models.LotteryTicket{}
	if err := s.db.WithContext(ctx).Order("id asc").Limit(limit).Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (s *GormStorage) GetLotteryTicketByID(ctx context.Context, id uint) (*models.LotteryTicket, error) {
	var ticket models.LotteryTicket
	result := s.db.WithContext(ctx).Limit(1).Find(&ticket, id)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &ticket, nil
}

func (s *GormStorage) GetWeeklyTickets(ctx context.Context) ([]models.LotteryTicket, error) {
	return s.listTickets(ctx, WeeklyTicketLimit)
}

func (s *GormStorage) GetSavedTickets(ctx context.Context) ([]models.LotteryTicket, error) {
	return s.GetLotteryTickets(ctx)
}

func (s *GormStorage) CreateLotteryTicket(ctx context.Context, in models.LotteryTicketInput) (*models.LotteryTicket, error) {
	ticket := models.NewLotteryTicket(0, in, s.now())
	titled := in.Title != nil && *in.Title != ""

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ticket).Error; err != nil {
			return fmt.Errorf("create lottery ticket: %w", err)
		}
		if titled {
			return nil
		}
		ticket.Title = models.StringPtr(models.DefaultTicketTitle(ticket.ID))
		if err := tx.Model(&ticket).Update("title", *ticket.Title).Error; err != nil {
			return fmt.Errorf("title lottery ticket %d: %w", ticket.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (s *GormStorage) GetTotalWinnings(ctx context.Context) (int, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Model(&models.LotteryTicket{}).
		Select("COALESCE(SUM(potential_winnings), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}
