package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuquf/wuquf-backend/internal/db"
	"github.com/wuquf/wuquf-backend/internal/models"
	"github.com/wuquf/wuquf-backend/internal/token"
)

func newCompanyService(store *db.MemoryStore, m *recordingMailer) (CompanyService, *token.Signer) {
	signer := token.NewSigner("company-secret")
	return NewCompanyService(store.Companies(), signer, m, sequentialIDs("company"), testLogger), signer
}

func validCreateCompany() models.CreateCompanyRequest {
	return models.CreateCompanyRequest{
		Name:           "Olaya Parking",
		Email:          "ops@olaya.sa",
		CountParking:   20,
		Subscription:   "basic",
		CompanyParking: []string{},
	}
}

func TestCreateCompany(t *testing.T) {
	store := db.NewMemoryStore()
	svc, _ := newCompanyService(store, &recordingMailer{})

	company, err := svc.CreateCompany(context.Background(), validCreateCompany())
	require.NoError(t, err)
	assert.Equal(t, "company-1", company.ID)

	stored, err := svc.GetCompany(context.Background(), "company-1")
	require.NoError(t, err)
	assert.Equal(t, "Olaya Parking", stored.Name)
	assert.Equal(t, 20, stored.CountParking)
}

func TestCreateCompanyMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CreateCompanyRequest)
	}{
		{"nameCompany", func(r *models.CreateCompanyRequest) { r.Name = "" }},
		{"countParking", func(r *models.CreateCompanyRequest) { r.CountParking = 0 }},
		{"countParking", func(r *models.CreateCompanyRequest) { r.CountParking = "" }},
		{"countParking", func(r *models.CreateCompanyRequest) { r.CountParking = nil }},
		{"Subscription", func(r *models.CreateCompanyRequest) { r.Subscription = "" }},
		{"CompanyParking", func(r *models.CreateCompanyRequest) { r.CompanyParking = nil }},
		{"emailCompany", func(r *models.CreateCompanyRequest) { r.Email = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := db.NewMemoryStore()
			svc, _ := newCompanyService(store, &recordingMailer{})
			req := validCreateCompany()
			tt.mutate(&req)

			_, err := svc.CreateCompany(context.Background(), req)
			require.ErrorIs(t, err, ErrMissingFields)
			assert.Contains(t, err.Error(), tt.name)
			assert.Equal(t, 0, store.Writes())
		})
	}
}

func TestCreateCompanyKeepsCountParkingAsSent(t *testing.T) {
	store := db.NewMemoryStore()
	svc, _ := newCompanyService(store, &recordingMailer{})
	req := validCreateCompany()
	req.CountParking = "10"

	company, err := svc.CreateCompany(context.Background(), req)
	require.NoError(t, err)

	stored, err := store.Companies().GetByID(context.Background(), company.ID)
	require.NoError(t, err)
	assert.Equal(t, "10", stored.CountParking)
}

func TestUpdateCompany(t *testing.T) {
	store := db.NewMemoryStore()
	seedCompany(store, "c1")
	svc, _ := newCompanyService(store, &recordingMailer{})

	err := svc.UpdateCompany(context.Background(), "c1", models.UpdateCompanyRequest{
		Name:                    "Olaya Parking Co",
		Email:                   "new@olaya.sa",
		CountParking:            30,
		Subscription:            "gold",
		CompanyParkingLocations: []string{"north"},
	})
	require.NoError(t, err)

	company, err := svc.GetCompany(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Olaya Parking Co", company.Name)
	assert.Equal(t, 30, company.CountParking)
	assert.Equal(t, []string{"north"}, company.CompanyParkingLocations)
}

func TestUpdateAndDeleteMissingCompany(t *testing.T) {
	store := db.NewMemoryStore()
	svc, _ := newCompanyService(store, &recordingMailer{})

	err := svc.UpdateCompany(context.Background(), "ghost", models.UpdateCompanyRequest{
		Name: "x", Email: "x@x", CountParking: 1, Subscription: "s", CompanyParkingLocations: []string{},
	})
	assert.ErrorIs(t, err, ErrCompanyNotFound)

	assert.ErrorIs(t, svc.DeleteCompany(context.Background(), "ghost"), ErrCompanyNotFound)
	assert.Equal(t, 0, store.Writes())
}

func TestDeleteCompany(t *testing.T) {
	store := db.NewMemoryStore()
	seedCompany(store, "c1")
	svc, _ := newCompanyService(store, &recordingMailer{})

	require.NoError(t, svc.DeleteCompany(context.Background(), "c1"))
	_, err := svc.GetCompany(context.Background(), "c1")
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func subscribeRequest(expiresIn interface{}) models.SubscribeCompanyRequest {
	return models.SubscribeCompanyRequest{
		UpdateCompanyRequest: models.UpdateCompanyRequest{
			Name:                    "Olaya Parking",
			Email:                   "ops@olaya.sa",
			CountParking:            20,
			Subscription:            "gold",
			CompanyParkingLocations: []string{"north"},
		},
		ExpiresIn: expiresIn,
	}
}

func TestSubscribeCompany(t *testing.T) {
	store := db.NewMemoryStore()
	seedCompany(store, "c1")
	m := &recordingMailer{}
	svc, signer := newCompanyService(store, m)

	signed, err := svc.SubscribeCompany(context.Background(), "c1", subscribeRequest("30d"))
	require.NoError(t, err)

	claims, err := signer.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "gold", claims.Subscription)
	assert.Equal(t, "ops@olaya.sa", claims.EmailCompany)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), claims.ExpiresAt.Time, time.Minute)

	company, err := svc.GetCompany(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "gold", company.Subscription)
	assert.Equal(t, signed, company.Token)

	require.Len(t, m.sent, 1)
	assert.Equal(t, "ops@olaya.sa", m.sent[0].ToEmail)
}

func TestSubscribeCompanyMailFailureStillSucceeds(t *testing.T) {
	store := db.NewMemoryStore()
	seedCompany(store, "c1")
	svc, _ := newCompanyService(store, &recordingMailer{err: errors.New("sendgrid down")})

	signed, err := svc.SubscribeCompany(context.Background(), "c1", subscribeRequest(float64(3600)))
	require.NoError(t, err)
	assert.NotEmpty(t, signed)
}

func TestSubscribeCompanyValidation(t *testing.T) {
	store := db.NewMemoryStore()
	seedCompany(store, "c1")
	writes := store.Writes()
	svc, _ := newCompanyService(store, &recordingMailer{})

	_, err := svc.SubscribeCompany(context.Background(), "c1", subscribeRequest(nil))
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.SubscribeCompany(context.Background(), "c1", subscribeRequest("whenever"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SubscribeCompany(context.Background(), "ghost", subscribeRequest("1h"))
	assert.ErrorIs(t, err, ErrCompanyNotFound)

	assert.Equal(t, writes, store.Writes())
}
