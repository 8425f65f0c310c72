package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/wuquf/wuquf-backend/internal/models"
)

type firestoreCompanyRepository struct {
	client *firestore.Client
}

// NewFirestoreCompanyRepository returns a CompanyRepository backed by the "company" collection.
func NewFirestoreCompanyRepository(client *firestore.Client) CompanyRepository {
	return &firestoreCompanyRepository{client: client}
}

func (r *firestoreCompanyRepository) doc(id string) *firestore.DocumentRef {
	return r.client.Collection(companiesCollection).Doc(id)
}

func (r *firestoreCompanyRepository) Create(ctx context.Context, company *models.Company) error {
	company.ParkingIDs = nonNil(company.ParkingIDs)
	if _, err := r.doc(company.ID).Set(ctx, company); err != nil {
		return wrapStoreError(err, "create", "company", company.ID)
	}
	return nil
}

func (r *firestoreCompanyRepository) GetByID(ctx context.Context, companyID string) (*models.Company, error) {
	docSnap, err := r.doc(companyID).Get(ctx)
	if err != nil {
		return nil, wrapStoreError(err, "get", "company", companyID)
	}
	var company models.Company
	if err := docSnap.DataTo(&company); err != nil {
		return nil, fmt.Errorf("failed to decode company data for ID '%s': %w", companyID, err)
	}
	company.ID = docSnap.Ref.ID
	return &company, nil
}

func (r *firestoreCompanyRepository) List(ctx context.Context) ([]*models.Company, error) {
	iter := r.client.Collection(companiesCollection).Documents(ctx)
	defer iter.Stop()

	companies := []*models.Company{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate companies: %w", err)
		}
		var company models.Company
		if err := doc.DataTo(&company); err != nil {
			return nil, fmt.Errorf("failed to decode company data for ID '%s': %w", doc.Ref.ID, err)
		}
		company.ID = doc.Ref.ID
		companies = append(companies, &company)
	}
	return companies, nil
}

// Update overwrites the editable fields. Firestore rejects the write with
// NotFound when the document is absent, so Update never creates a company.
func (r *firestoreCompanyRepository) Update(ctx context.Context, companyID string, update models.CompanyUpdate) error {
	_, err := r.doc(companyID).Update(ctx, []firestore.Update{
		{Path: "nameCompany", Value: update.Name},
		{Path: "emailCompany", Value: update.Email},
		{Path: "countParking", Value: update.CountParking},
		{Path: "Subscription", Value: update.Subscription},
		{Path: "CompanyParkingLocations", Value: nonNil(update.CompanyParkingLocations)},
	})
	if err != nil {
		return wrapStoreError(err, "update", "company", companyID)
	}
	return nil
}

func (r *firestoreCompanyRepository) Delete(ctx context.Context, companyID string) error {
	if _, err := r.doc(companyID).Delete(ctx); err != nil {
		return wrapStoreError(err, "delete", "company", companyID)
	}
	return nil
}

func (r *firestoreCompanyRepository) AppendLocation(ctx context.Context, companyID, locationID string) error {
	_, err := r.doc(companyID).Update(ctx, []firestore.Update{
		{Path: "CompanyParking", Value: firestore.ArrayUnion(locationID)},
	})
	if err != nil {
		return wrapStoreError(err, "append location to", "company", companyID)
	}
	return nil
}

func (r *firestoreCompanyRepository) SetSubscription(ctx context.Context, companyID, tier, token string) error {
	_, err := r.doc(companyID).Update(ctx, []firestore.Update{
		{Path: "Subscription", Value: tier},
		{Path: "token", Value: token},
	})
	if err != nil {
		return wrapStoreError(err, "subscribe", "company", companyID)
	}
	return nil
}
