package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"lottery-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormStorage(t *testing.T) *GormStorage {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// Every pooled connection would get its own in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	s := NewGormStorage(db)
	require.NoError(t, s.AutoMigrate())
	return s
}

// forEachBackend runs fn against a fresh store of every implementation.
func forEachBackend(t *testing.T, fn func(t *testing.T, s Storage)) {
	backends := []struct {
		name string
		open func(t *testing.T) Storage
	}{
		{name: "memory", open: func(t *testing.T) Storage { return NewMemStorage() }},
		{name: "gorm", open: func(t *testing.T) Storage { return newTestGormStorage(t) }},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			fn(t, b.open(t))
		})
	}
}

func seeded(t *testing.T, s Storage) Storage {
	t.Helper()
	require.NoError(t, Seed(context.Background(), s))
	return s
}

func TestSeedPromotions(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Storage) {
		ctx := context.Background()
		seeded(t, s)

		promotions, err := s.GetPromotions(ctx)
		require.NoError(t, err)
		require.Len(t, promotions, 2)

		assert.Equal(t, "Promotions", promotions[0].Title)
		assert.Equal(t, "purple", promotions[0].BgColor)
		if assert.NotNil(t, promotions[0].Discount) {
			assert.Equal(t, 25, *promotions[0].Discount)
		}

		assert.Equal(t, "Speacials", promotions[1].Title)
		assert.Equal(t, "blue", promotions[1].BgColor)
		assert.Nil(t, promotions[1].Discount)
	})
}

func TestSeedTicketsAndWinnings(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Storage) {
		ctx := context.Background()
		seeded(t, s)

		tickets, err := s.GetLotteryTickets(ctx)
		require.NoError(t, err)
		require.Len(t, tickets, 3)
		assert.Equal(t, []uint{1, 2, 3}, []uint{tickets[0].ID, tickets[1].ID, tickets[2].ID})
		assert.Equal(t, "Powerball Tickets", tickets[2].Type)

		total, err := s.GetTotalWinnings(ctx)
		require.NoError(t, err)
		assert.Equal(t, 790, total)
	})
}

func TestSeedIsNotRepeated(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Storage) {
		ctx := context.Background()
		seeded(t, s)
		require.NoError(t, Seed(ctx, s))

		promotions, err := s.GetPromotions(ctx)
		require.NoError(t, err)
		assert.Len(t, promotions, 2)

		tickets, err := s.GetLotteryTickets(ctx)
		require.NoError(t, err)
		assert.Len(t, tickets, 3)
	})
}

func TestTotalWinningsEmpty(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Storage) {
		total, err := s.GetTotalWinnings(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, total)
	})
}

func TestTotalWinningsIsSum(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Storage) {
		ctx := context.Background()
		want := 0
		for _, w := range []int{5, 0, 120, 999} {
			_, err := s.CreateLotteryTicket(ctx, models.LotteryTicketInput{PotentialWinnings: models.IntPtr(w)})
			require.NoError(t, err)
			want += w
		}

		total, err := s.GetTotalWinnings(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, total)
	})
}

func TestCreateLotteryTicketIDsIncrease(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Storage) {
		ctx := context.Background()
		seeded(t, s)

		last := uint(3)
		for i := 0; i < 5; i++ {
			ticket, err := s.CreateLotteryTicket(ctx, models.LotteryTicketInput{})
			require.NoError(t, err)
			assert.Equal(t, last+1, ticket.ID)
			last = ticket.ID
		}
	})
}

func TestCreateLotteryTicketFromBarcode(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Storage) {
		ctx := context.Background()

		ticket, err := s.CreateLotteryTicket(ctx, models.LotteryTicketInput{Barcode: models.StringPtr("123")})
		require.NoError(t, err)

		assert.Equal(t, "Lotto Tickets", ticket.Type)
		assert.Equal(t, "Live Tickets", ticket.Status)
		if assert.NotNil(t, ticket.Barcode) {
			assert.Equal(t, "123", *ticket.Barcode)
		}
		if assert.NotNil(t, ticket.Title) {
			assert.Equal(t, fmt.Sprintf("Ticket #%d", ticket.ID), *ticket.Title)
		}
		assert.NotEmpty(t, ticket.CreatedAt)
		assert.NotEmpty(t, ticket.UpdatedAt)
		_, err = time.Parse(models.TimestampLayout, ticket.CreatedAt)
		assert.NoError(t, err)
	})
}

func TestGetLotteryTicketByID(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Storage) {
		ctx := context.Background()

		created, err := s.CreateLotteryTicket(ctx, models.LotteryTicketInput{
			Title:             models.StringPtr("Weekend draw"),
			PotentialWinnings: models.IntPtr(77),
			IsFavorite:        models.BoolPtr(true),
		})
		require.NoError(t, err)

		found, err := s.GetLotteryTicketByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, *created, *found)

		missing, err := s.GetLotteryTicketByID(ctx, created.ID+100)
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})
}

func TestWeeklyTickets(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 5} {
		t.Run(fmt.Sprintf("%d tickets", n), func(t *testing.T) {
			forEachBackend(t, func(t *testing.T, s Storage) {
				ctx := context.Background()
				for i := 0; i < n; i++ {
					_, err := s.CreateLotteryTicket(ctx, models.LotteryTicketInput{})
					require.NoError(t, err)
				}

				weekly, err := s.GetWeeklyTickets(ctx)
				require.NoError(t, err)
				require.Len(t, weekly, min(3, n))
				for i, ticket := range weekly {
					assert.Equal(t, uint(i+1), ticket.ID)
				}
			})
		})
	}
}

func TestSavedTicketsMatchAllTickets(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Storage) {
		ctx := context.Background()
		seeded(t, s)
		_, err := s.CreateLotteryTicket(ctx, models.LotteryTicketInput{})
		require.NoError(t, err)

		all, err := s.GetLotteryTickets(ctx)
		require.NoError(t, err)
		saved, err := s.GetSavedTickets(ctx)
		require.NoError(t, err)
		assert.Equal(t, all, saved)
		assert.Len(t, saved, 4)
	})
}

func TestCreateUserDefaults(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Storage) {
		ctx := context.Background()

		u, err := s.CreateUser(ctx, models.UserInput{})
		require.NoError(t, err)
		assert.Equal(t, uint(1), u.ID)
		assert.Equal(t, "user_1", u.Username)
		assert.Equal(t, 0, u.Points)
		assert.Regexp(t, `^[0-9]{10,11}$`, u.AccountNumber)

		stored, err := s.GetUser(ctx, u.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "user_1", stored.Username)
	})
}

func TestUserLookups(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Storage) {
		ctx := context.Background()

		created, err := s.CreateUser(ctx, models.UserInput{
			Username: models.StringPtr("alice"),
			Password: models.StringPtr("hashed"),
			Phone:    models.StringPtr("0821234567"),
		})
		require.NoError(t, err)

		byName, err := s.GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, byName)
		assert.Equal(t, created.ID, byName.ID)
		assert.Equal(t, "hashed", byName.Password)

		missing, err := s.GetUserByUsername(ctx, "bob")
		assert.NoError(t, err)
		assert.Nil(t, missing)

		none, err := s.GetUser(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, none)
	})
}

func TestGetOrCreateDefaultUserIsIdempotent(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Storage) {
		ctx := context.Background()

		first, err := s.GetOrCreateDefaultUser(ctx)
		require.NoError(t, err)
		second, err := s.GetOrCreateDefaultUser(ctx)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "demo_user", first.Username)
		assert.Equal(t, 1764598, first.Points)
		assert.Equal(t, "767755884490", first.AccountNumber)
	})
}

func TestSeededDefaultUserIsReused(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Storage) {
		ctx := context.Background()
		seeded(t, s)

		u, err := s.GetOrCreateDefaultUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint(1), u.ID)

		next, err := s.CreateUser(ctx, models.UserInput{})
		require.NoError(t, err)
		assert.Equal(t, uint(2), next.ID)
	})
}

func TestMemStorageConcurrentCreates(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	const workers = 50
	ids := make(chan uint, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ticket, err := s.CreateLotteryTicket(ctx, models.LotteryTicketInput{})
			if err == nil {
				ids <- ticket.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)

	tickets, err := s.GetLotteryTickets(ctx)
	require.NoError(t, err)
	for i, ticket := range tickets {
		assert.Equal(t, uint(i+1), ticket.ID)
	}
}

func TestMemStorageUsesClock(t *testing.T) {
	s := NewMemStorage()
	s.now = func() time.Time { return time.Date(2025, 5, 4, 3, 2, 1, 0, time.UTC) }

	ticket, err := s.CreateLotteryTicket(context.Background(), models.LotteryTicketInput{})
	require.NoError(t, err)
	assert.Equal(t, "2025-05-04T03:02:01.000Z", ticket.CreatedAt)
}

func TestGormStorageRejectsDuplicateUsername(t *testing.T) {
	s := newTestGormStorage(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, models.UserInput{Username: models.StringPtr("alice")})
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, models.UserInput{Username: models.StringPtr("alice")})
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	var users int64
	require.NoError(t, s.db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(1), users)
}
