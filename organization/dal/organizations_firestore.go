package dal

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/triggerkit/scheduled-webhooks/framework/connection"
	"github.com/triggerkit/scheduled-webhooks/organization/domain"
)

const organizationsCollection = "organizations"

var ErrOrganizationNotFound = errors.New("organization not found")

// OrganizationsFirestore is used to interact with organizations stored on Firestore.
type OrganizationsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewOrganizationsFirestore returns a new OrganizationsFirestore instance with given project id.
func NewOrganizationsFirestore(ctx context.Context, projectID string) (*OrganizationsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewOrganizationsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewOrganizationsFirestoreWithClient returns a new OrganizationsFirestore using given client.
func NewOrganizationsFirestoreWithClient(fun connection.FirestoreFromContextFun) *OrganizationsFirestore {
	return &OrganizationsFirestore{
		firestoreClientFun: fun,
	}
}

func (d *OrganizationsFirestore) GetRef(ctx context.Context, orgID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(organizationsCollection).Doc(orgID)
}

// GetOrganizations returns all organizations ordered by document id, so that
// sweep order is deterministic across runs.
func (d *OrganizationsFirestore) GetOrganizations(ctx context.Context) ([]*domain.Organization, error) {
	docs, err := d.firestoreClientFun(ctx).
		Collection(organizationsCollection).
		OrderBy(firestore.DocumentID, firestore.Asc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	orgs := make([]*domain.Organization, 0, len(docs))

	for _, doc := range docs {
		var org domain.Organization
		if err := doc.DataTo(&org); err != nil {
			return nil, err
		}

		org.ID = doc.Ref.ID
		orgs = append(orgs, &org)
	}

	return orgs, nil
}

func (d *OrganizationsFirestore) Get(ctx context.Context, orgID string) (*domain.Organization, error) {
	doc, err := d.GetRef(ctx, orgID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrOrganizationNotFound
		}

		return nil, err
	}

	var org domain.Organization
	if err := doc.DataTo(&org); err != nil {
		return nil, err
	}

	org.ID = doc.Ref.ID

	return &org, nil
}

func (d *OrganizationsFirestore) UpdateUsage(ctx context.Context, orgID string, usage domain.Usage) error {
	_, err := d.GetRef(ctx, orgID).Update(ctx, []firestore.Update{
		{Path: "usage", Value: usage},
	})

	return err
}
