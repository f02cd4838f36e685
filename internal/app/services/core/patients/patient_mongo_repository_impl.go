package patients

import (
	"context"
	"errors"
	"pod-tracker-service/internal/app/contracts"
	"pod-tracker-service/internal/app/models"
	"pod-tracker-service/internal/pkg/constvars"
	"pod-tracker-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Database) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionPatients),
	}
}

// storedNow matches the millisecond precision of BSON dates, so a returned
// patient compares equal to the one read back later.
func storedNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (repo *PatientMongoRepository) CreatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	patient.ID = primitive.NewObjectID()
	patient.SetCreatedAtUpdatedAt(storedNow())

	_, err := repo.Collection.InsertOne(ctx, patient)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return patient, nil
}

func (repo *PatientMongoRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	findOptions := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err, constvars.ErrClientFailedToFetchPatients)
	}

	patients := make([]models.Patient, 0)
	err = cursor.All(ctx, &patients)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, nil
}

func (repo *PatientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, nil
	}

	var patient models.Patient
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&patient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err, constvars.ErrClientFailedToFetchPatient)
	}
	return &patient, nil
}

func (repo *PatientMongoRepository) UpdateByID(ctx context.Context, patientID string, fields bson.M) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, nil
	}

	set := bson.M{"updatedAt": storedNow()}
	for key, value := range fields {
		set[key] = value
	}

	updateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var patient models.Patient
	err = repo.Collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": set}, updateOptions).Decode(&patient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &patient, nil
}

func (repo *PatientMongoRepository) DeleteByID(ctx context.Context, patientID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return false, nil
	}

	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}

func (repo *PatientMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "mrn", Value: 1}},
		Options: options.Index().SetName("mrn_1"),
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}
