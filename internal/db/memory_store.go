package db

import (
	"context"
	"fmt"
	"sync"

	"github.com/wuquf/wuquf-backend/internal/models"
)

// MemoryStore keeps every collection in process memory. It satisfies the same
// repository interfaces as the Firestore implementations and backs the service
// and handler tests.
type MemoryStore struct {
	mu           sync.RWMutex
	writes       int
	users        *collection[models.User]
	companies    *collection[models.Company]
	locations    *collection[models.ParkingLocation]
	spots        *collection[models.ParkingSpot]
	reservations *collection[models.Reservation]
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        newCollection[models.User](),
		companies:    newCollection[models.Company](),
		locations:    newCollection[models.ParkingLocation](),
		spots:        newCollection[models.ParkingSpot](),
		reservations: newCollection[models.Reservation](),
	}
}

// Writes returns the number of mutations applied since the store was created.
func (s *MemoryStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

func (s *MemoryStore) Users() UserRepository               { return memoryUsers{s} }
func (s *MemoryStore) Companies() CompanyRepository        { return memoryCompanies{s} }
func (s *MemoryStore) Locations() LocationRepository       { return memoryLocations{s} }
func (s *MemoryStore) Spots() SpotRepository               { return memorySpots{s} }
func (s *MemoryStore) Reservations() ReservationRepository { return memoryReservations{s} }

// collection is an insertion-ordered map. Callers hold MemoryStore.mu.
type collection[T any] struct {
	order []string
	docs  map[string]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{docs: map[string]T{}}
}

func (c *collection[T]) put(id string, doc T) {
	if _, ok := c.docs[id]; !ok {
		c.order = append(c.order, id)
	}
	c.docs[id] = doc
}

func (c *collection[T]) get(id string) (T, bool) {
	doc, ok := c.docs[id]
	return doc, ok
}

func (c *collection[T]) remove(id string) {
	if _, ok := c.docs[id]; !ok {
		return
	}
	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *collection[T]) all() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.docs[id])
	}
	return out
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s with ID '%s' not found: %w", kind, id, ErrNotFound)
}

func cloneList(list []string) []string {
	return append([]string{}, list...)
}

func appendUnique(list []string, id string) []string {
	for _, existing := range list {
		if existing == id {
			return list
		}
	}
	return append(cloneList(list), id)
}

// write applies fn under the store lock and counts it when it succeeds.
func (s *MemoryStore) write(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(); err != nil {
		return err
	}
	s.writes++
	return nil
}

// --- users ---

type memoryUsers struct{ s *MemoryStore }

func (r memoryUsers) Create(_ context.Context, user *models.User) error {
	doc := *user
	doc.Reservations = cloneList(user.Reservations)
	doc.Role = cloneList(user.Role)
	return r.s.write(func() error { r.s.users.put(doc.ID, doc); return nil })
}

func (r memoryUsers) GetByID(_ context.Context, userID string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	doc, ok := r.s.users.get(userID)
	if !ok {
		return nil, notFound("user", userID)
	}
	return &doc, nil
}

func (r memoryUsers) List(_ context.Context) ([]*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	users := []*models.User{}
	for _, doc := range r.s.users.all() {
		doc := doc
		users = append(users, &doc)
	}
	return users, nil
}

// --- companies ---

type memoryCompanies struct{ s *MemoryStore }

func (r memoryCompanies) Create(_ context.Context, company *models.Company) error {
	doc := *company
	doc.ParkingIDs = cloneList(company.ParkingIDs)
	return r.s.write(func() error { r.s.companies.put(doc.ID, doc); return nil })
}

func (r memoryCompanies) GetByID(_ context.Context, companyID string) (*models.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	doc, ok := r.s.companies.get(companyID)
	if !ok {
		return nil, notFound("company", companyID)
	}
	doc.ParkingIDs = cloneList(doc.ParkingIDs)
	return &doc, nil
}

func (r memoryCompanies) List(_ context.Context) ([]*models.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	companies := []*models.Company{}
	for _, doc := range r.s.companies.all() {
		doc := doc
		doc.ParkingIDs = cloneList(doc.ParkingIDs)
		companies = append(companies, &doc)
	}
	return companies, nil
}

func (r memoryCompanies) mutate(companyID string, fn func(*models.Company)) error {
	return r.s.write(func() error {
		doc, ok := r.s.companies.get(companyID)
		if !ok {
			return notFound("company", companyID)
		}
		fn(&doc)
		r.s.companies.put(companyID, doc)
		return nil
	})
}

func (r memoryCompanies) Update(_ context.Context, companyID string, update models.CompanyUpdate) error {
	return r.mutate(companyID, func(c *models.Company) {
		c.Name = update.Name
		c.Email = update.Email
		c.CountParking = update.CountParking
		c.Subscription = update.Subscription
		c.CompanyParkingLocations = cloneList(update.CompanyParkingLocations)
	})
}

func (r memoryCompanies) Delete(_ context.Context, companyID string) error {
	return r.s.write(func() error { r.s.companies.remove(companyID); return nil })
}

func (r memoryCompanies) AppendLocation(_ context.Context, companyID, locationID string) error {
	return r.mutate(companyID, func(c *models.Company) {
		c.ParkingIDs = appendUnique(c.ParkingIDs, locationID)
	})
}

func (r memoryCompanies) SetSubscription(_ context.Context, companyID, tier, token string) error {
	return r.mutate(companyID, func(c *models.Company) {
		c.Subscription = tier
		c.Token = token
	})
}

// --- locations ---

type memoryLocations struct{ s *MemoryStore }

func (r memoryLocations) Create(_ context.Context, location *models.ParkingLocation) error {
	doc := *location
	doc.Images = cloneList(location.Images)
	doc.Park = cloneList(location.Park)
	return r.s.write(func() error { r.s.locations.put(doc.ID, doc); return nil })
}

func (r memoryLocations) GetByID(_ context.Context, locationID string) (*models.ParkingLocation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	doc, ok := r.s.locations.get(locationID)
	if !ok {
		return nil, notFound("location", locationID)
	}
	doc.Park = cloneList(doc.Park)
	doc.Images = cloneList(doc.Images)
	return &doc, nil
}

func (r memoryLocations) List(_ context.Context) ([]*models.ParkingLocation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	locations := []*models.ParkingLocation{}
	for _, doc := range r.s.locations.all() {
		doc := doc
		doc.Park = cloneList(doc.Park)
		doc.Images = cloneList(doc.Images)
		locations = append(locations, &doc)
	}
	return locations, nil
}

func (r memoryLocations) mutate(locationID string, fn func(*models.ParkingLocation)) error {
	return r.s.write(func() error {
		doc, ok := r.s.locations.get(locationID)
		if !ok {
			return notFound("location", locationID)
		}
		fn(&doc)
		r.s.locations.put(locationID, doc)
		return nil
	})
}

func (r memoryLocations) Update(_ context.Context, locationID string, update models.LocationUpdate) error {
	return r.mutate(locationID, func(l *models.ParkingLocation) {
		if update.Label != nil {
			l.Label = *update.Label
		}
		if update.Description != nil {
			l.Description = *update.Description
		}
		if update.Images != nil {
			l.Images = cloneList(update.Images)
		}
		if update.Park != nil {
			l.Park = cloneList(update.Park)
		}
	})
}

func (r memoryLocations) Delete(_ context.Context, locationID string) error {
	return r.s.write(func() error { r.s.locations.remove(locationID); return nil })
}

func (r memoryLocations) AppendSpot(_ context.Context, locationID, spotID string) error {
	return r.mutate(locationID, func(l *models.ParkingLocation) {
		l.Park = appendUnique(l.Park, spotID)
	})
}

// --- spots ---

type memorySpots struct{ s *MemoryStore }

func (r memorySpots) Create(_ context.Context, spot *models.ParkingSpot) error {
	doc := *spot
	return r.s.write(func() error { r.s.spots.put(doc.ID, doc); return nil })
}

func (r memorySpots) GetByID(_ context.Context, spotID string) (*models.ParkingSpot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	doc, ok := r.s.spots.get(spotID)
	if !ok {
		return nil, notFound("spot", spotID)
	}
	return &doc, nil
}

func (r memorySpots) List(_ context.Context) ([]*models.ParkingSpot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	spots := []*models.ParkingSpot{}
	for _, doc := range r.s.spots.all() {
		doc := doc
		spots = append(spots, &doc)
	}
	return spots, nil
}

func (r memorySpots) mutate(spotID string, fn func(*models.ParkingSpot)) error {
	return r.s.write(func() error {
		doc, ok := r.s.spots.get(spotID)
		if !ok {
			return notFound("spot", spotID)
		}
		fn(&doc)
		r.s.spots.put(spotID, doc)
		return nil
	})
}

func (r memorySpots) UpdateWord(_ context.Context, spotID, word string) error {
	return r.mutate(spotID, func(p *models.ParkingSpot) { p.Word = word })
}

func (r memorySpots) SetReserve(_ context.Context, spotID, userID string) error {
	return r.mutate(spotID, func(p *models.ParkingSpot) { p.Reserve = userID })
}

func (r memorySpots) Delete(_ context.Context, spotID string) error {
	return r.s.write(func() error { r.s.spots.remove(spotID); return nil })
}

// --- reservations ---

type memoryReservations struct{ s *MemoryStore }

func (r memoryReservations) Put(_ context.Context, reservation *models.Reservation) error {
	doc := *reservation
	return r.s.write(func() error { r.s.reservations.put(doc.ParkID, doc); return nil })
}

func (r memoryReservations) GetByID(_ context.Context, reservationID string) (*models.Reservation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	doc, ok := r.s.reservations.get(reservationID)
	if !ok {
		return nil, notFound("reservation", reservationID)
	}
	return &doc, nil
}

func (r memoryReservations) List(_ context.Context) ([]*models.Reservation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	reservations := []*models.Reservation{}
	for _, doc := range r.s.reservations.all() {
		doc := doc
		reservations = append(reservations, &doc)
	}
	return reservations, nil
}

func (r memoryReservations) Update(_ context.Context, reservationID string, update models.ReservationUpdate) error {
	return r.s.write(func() error {
		doc, ok := r.s.reservations.get(reservationID)
		if !ok {
			return notFound("reservation", reservationID)
		}
		if update.UserID != nil {
			doc.UserID = *update.UserID
		}
		if update.ParkID != nil {
			doc.ParkID = *update.ParkID
		}
		r.s.reservations.put(reservationID, doc)
		return nil
	})
}

func (r memoryReservations) Delete(_ context.Context, reservationID string) error {
	return r.s.write(func() error { r.s.reservations.remove(reservationID); return nil })
}
