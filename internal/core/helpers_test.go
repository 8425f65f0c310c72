package core

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/wuquf/wuquf-backend/internal/db"
	"github.com/wuquf/wuquf-backend/internal/models"
	"github.com/wuquf/wuquf-backend/pkg/mailer"
)

type mockIdentityProvider struct {
	mock.Mock
}

func (m *mockIdentityProvider) CreateUser(ctx context.Context, identity models.IdentityToCreate) (string, error) {
	args := m.Called(ctx, identity)
	return args.String(0), args.Error(1)
}

type mockPaymentProcessor struct {
	mock.Mock
}

func (m *mockPaymentProcessor) PublishableKey() string {
	return m.Called().String(0)
}

func (m *mockPaymentProcessor) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	args := m.Called(ctx, amount, currency)
	return args.String(0), args.Error(1)
}

type recordingPublisher struct {
	mu       sync.Mutex
	err      error
	messages map[string][][]byte
}

func (p *recordingPublisher) Publish(_ context.Context, queue string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	if p.messages == nil {
		p.messages = map[string][][]byte{}
	}
	p.messages[queue] = append(p.messages[queue], body)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) count(queue string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.messages[queue])
}

type recordingMailer struct {
	err  error
	sent []mailer.Message
}

func (m *recordingMailer) Send(_ context.Context, msg mailer.Message) error {
	m.sent = append(m.sent, msg)
	return m.err
}

func sequentialIDs(prefix string) IDGenerator {
	var n int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, atomic.AddInt64(&n, 1))
	}
}

func seedCompany(store *db.MemoryStore, id string) {
	_ = store.Companies().Create(context.Background(), &models.Company{
		ID:           id,
		Name:         "Olaya Parking",
		Email:        "ops@olaya.sa",
		CountParking: 10,
		Subscription: "basic",
		ParkingIDs:   []string{},
	})
}

func seedLocation(store *db.MemoryStore, id string, spots ...string) {
	_ = store.Locations().Create(context.Background(), &models.ParkingLocation{
		ID:     id,
		Label:  "Olaya Street",
		Images: []string{},
		Park:   spots,
	})
}

func seedSpot(store *db.MemoryStore, id, word string) {
	_ = store.Spots().Create(context.Background(), &models.ParkingSpot{ID: id, Word: word})
}

func strPtr(s string) *string { return &s }

var testLogger = zap.NewNop()
