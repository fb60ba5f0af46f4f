package storage

import (
	"context"
	"sync"
	"time"

	"lottery-backend/internal/models"
)

var _ Storage = (*MemStorage)(nil)

// MemStorage keeps every collection in process memory. State is lost on restart.
type MemStorage struct {
	mu sync.RWMutex

	users          map[uint]models.User
	promotions     map[uint]models.Promotion
	lotteryTickets map[uint]models.LotteryTicket

	// ids double as insertion order since counters only grow.
	userIDCounter          uint
	promotionIDCounter     uint
	lotteryTicketIDCounter uint

	now func() time.Time
}

// NewMemStorage returns an empty store. Call Seed to populate it.
func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:                  make(map[uint]models.User),
		promotions:             make(map[uint]models.Promotion),
		lotteryTickets:         make(map[uint]models.LotteryTicket),
		userIDCounter:          1,
		promotionIDCounter:     1,
		lotteryTicketIDCounter: 1,
		now:                    time.Now,
	}
}

func (s *MemStorage) GetUser(_ context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *MemStorage) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findUserByUsername(username), nil
}

func (s *MemStorage) findUserByUsername(username string) *models.User {
	for id := uint(1); id < s.userIDCounter; id++ {
		u, ok := s.users[id]
		if ok && u.Username == username {
			return &u
		}
	}
	return nil
}

func (s *MemStorage) CreateUser(_ context.Context, in models.UserInput) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createUser(in), nil
}

func (s *MemStorage) createUser(in models.UserInput) *models.User {
	id := s.userIDCounter
	s.userIDCounter++

	u := models.NewUser(id, in)
	s.users[id] = u
	return &u
}

// GetOrCreateDefaultUser holds the write lock across lookup and insert so
// concurrent callers never create two demo users.
func (s *MemStorage) GetOrCreateDefaultUser(_ context.Context) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u := s.findUserByUsername(models.DefaultUsername); u != nil {
		return u, nil
	}
	return s.createUser(models.DefaultUserInput()), nil
}

func (s *MemStorage) GetPromotions(_ context.Context) ([]models.Promotion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	promotions := make([]models.Promotion, 0, len(s.promotions))
	for id := uint(1); id < s.promotionIDCounter; id++ {
		if p, ok := s.promotions[id]; ok {
			promotions = append(promotions, p)
		}
	}
	return promotions, nil
}

func (s *MemStorage) CreatePromotion(_ context.Context, in models.PromotionInput) (*models.Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.promotionIDCounter
	s.promotionIDCounter++

	p := models.NewPromotion(id, in)
	s.promotions[id] = p
	return &p, nil
}

func (s *MemStorage) GetLotteryTickets(_ context.Context) ([]models.LotteryTicket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listTickets(len(s.lotteryTickets)), nil
}

// listTickets returns up to limit tickets in insertion order. Callers hold the lock.
func (s *MemStorage) listTickets(limit int) []models.LotteryTicket {
	tickets := make([]models.LotteryTicket, 0, min(limit, len(s.lotteryTickets)))
	for id := uint(1); id < s.lotteryTicketIDCounter && len(tickets) < limit; id++ {
		if t, ok := s.lotteryTickets[id]; ok {
			tickets = append(tickets, t)
		}
	}
	return tickets
}

func (s *MemStorage) GetLotteryTicketByID(_ context.Context, id uint) (*models.LotteryTicket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.lotteryTickets[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (s *MemStorage) GetWeeklyTickets(_ context.Context) ([]models.LotteryTicket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listTickets(WeeklyTicketLimit), nil
}

func (s *MemStorage) GetSavedTickets(ctx context.Context) ([]models.LotteryTicket, error) {
	return s.GetLotteryTickets(ctx)
}

func (s *MemStorage) CreateLotteryTicket(_ context.Context, in models.LotteryTicketInput) (*models.LotteryTicket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.lotteryTicketIDCounter
	s.lotteryTicketIDCounter++

	t := models.NewLotteryTicket(id, in, s.now())
	s.lotteryTickets[id] = t
	return &t, nil
}

func (s *MemStorage) GetTotalWinnings(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, t := range s.lotteryTickets {
		total += t.PotentialWinnings
	}
	return total, nil
}
