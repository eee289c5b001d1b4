package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/domain"
)

const mechanicQueryTimeout = 5 * time.Second

// MechanicRepositoryImpl implements domain.MechanicRepository on MongoDB.
type MechanicRepositoryImpl struct {
	col *mongo.Collection
}

// mechanicDoc is the persisted shape of a MechanicProfile.
type mechanicDoc struct {
	ID          string             `bson:"_id"`
	UserID      string             `bson:"userId"`
	ShopName    string             `bson:"shopName"`
	ContactName string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Address     string             `bson:"address"`
	Area        string             `bson:"area,omitempty"`
	City        string             `bson:"city,omitempty"`
	Pincode     string             `bson:"pincode"`
	Coords      domain.Coordinates `bson:"coords"`
	Services    []string           `bson:"services"`
	Brands      []string           `bson:"brands"`
	Experience  int                `bson:"experience,omitempty"`
	Rating      float64            `bson:"rating"`
	Verified    bool               `bson:"verified"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// NewMechanicRepository creates a mechanic repository backed by the
// "mechanics" collection.
func NewMechanicRepository(db *mongo.Database) domain.MechanicRepository {
	return &MechanicRepositoryImpl{col: db.Collection("mechanics")}
}

// Create implements domain.MechanicRepository.
func (r *MechanicRepositoryImpl) Create(ctx context.Context, profile *domain.MechanicProfile) error {
	ctx, cancel := context.WithTimeout(ctx, mechanicQueryTimeout)
	defer cancel()

	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	_, err := r.col.InsertOne(ctx, domainToDoc(profile))
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrProfileAlreadyExists
	}
	return err
}

// FindAll implements domain.MechanicRepository. Results come back in
// insertion order.
func (r *MechanicRepositoryImpl) FindAll(ctx context.Context) ([]domain.MechanicProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, mechanicQueryTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []mechanicDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	profiles := make([]domain.MechanicProfile, 0, len(docs))
	for i := range docs {
		profiles = append(profiles, *docToDomain(&docs[i]))
	}
	return profiles, nil
}

// FindByID implements domain.MechanicRepository.
func (r *MechanicRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.MechanicProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, mechanicQueryTimeout)
	defer cancel()

	var doc mechanicDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrMechanicNotFound
	}
	if err != nil {
		return nil, err
	}
	return docToDomain(&doc), nil
}

// FindByUserID implements domain.MechanicRepository.
func (r *MechanicRepositoryImpl) FindByUserID(ctx context.Context, userID string) (*domain.MechanicProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, mechanicQueryTimeout)
	defer cancel()

	var doc mechanicDoc
	err := r.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrMechanicNotFound
	}
	if err != nil {
		return nil, err
	}
	return docToDomain(&doc), nil
}

// SetVerified implements domain.MechanicRepository.
func (r *MechanicRepositoryImpl) SetVerified(ctx context.Context, id string, verified bool) error {
	ctx, cancel := context.WithTimeout(ctx, mechanicQueryTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"verified":  verified,
		"updatedAt": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrMechanicNotFound
	}
	return nil
}

func domainToDoc(p *domain.MechanicProfile) *mechanicDoc {
	return &mechanicDoc{
		ID:          p.ID,
		UserID:      p.UserID,
		ShopName:    p.ShopName,
		ContactName: p.ContactName,
		Description: p.Description,
		Address:     p.Address,
		Area:        p.Area,
		City:        p.City,
		Pincode:     p.Pincode,
		Coords:      p.Coords,
		Services:    p.Services,
		Brands:      p.Brands,
		Experience:  p.Experience,
		Rating:      p.Rating,
		Verified:    p.Verified,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func docToDomain(d *mechanicDoc) *domain.MechanicProfile {
	return &domain.MechanicProfile{
		ID:          d.ID,
		UserID:      d.UserID,
		ShopName:    d.ShopName,
		ContactName: d.ContactName,
		Description: d.Description,
		Address:     d.Address,
		Area:        d.Area,
		City:        d.City,
		Pincode:     d.Pincode,
		Coords:      d.Coords,
		Services:    d.Services,
		Brands:      d.Brands,
		Experience:  d.Experience,
		Rating:      d.Rating,
		Verified:    d.Verified,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
