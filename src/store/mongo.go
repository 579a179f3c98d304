package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dheerajvarshn/portfolio-backend/src/models"
)

// Mongo implements UserStore and LegacyStore on a MongoDB database.
type Mongo struct {
	client   *mongo.Client
	users    *mongo.Collection
	projects *mongo.Collection
	resumes  *mongo.Collection
	contacts *mongo.Collection
}

// Connect opens the MongoDB connection, verifies it with a ping and ensures
// the unique email index. The caller owns the returned handle and should
// Close it on shutdown.
func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db := client.Database(dbName)
	m := &Mongo{
		client:   client,
		users:    db.Collection("users"),
		projects: db.Collection("projects"),
		resumes:  db.Collection("resumes"),
		contacts: db.Collection("contacts"),
	}

	_, err = m.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create email index: %w", err)
	}

	return m, nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) FindAdmin(ctx context.Context) (*models.User, error) {
	return m.findUser(ctx, bson.M{"role": models.RoleAdmin})
}

func (m *Mongo) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return m.findUser(ctx, bson.M{"_id": oid})
}

func (m *Mongo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.findUser(ctx, bson.M{"email": email})
}

func (m *Mongo) findUser(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := m.users.FindOne(ctx, filter).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (m *Mongo) Insert(ctx context.Context, user *models.User) error {
	if user.Id.IsZero() {
		user.Id = primitive.NewObjectID()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := m.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// Save replaces the whole user document. The last concurrent writer wins.
func (m *Mongo) Save(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()

	res, err := m.users.ReplaceOne(ctx, bson.M{"_id": user.Id}, user)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ----- legacy standalone documents -----

func (m *Mongo) ListProjects(ctx context.Context) ([]models.ProjectDocument, error) {
	return decodeAll[models.ProjectDocument](ctx, m.projects, bson.M{})
}

func (m *Mongo) ProjectsByUser(ctx context.Context, userID string) ([]models.ProjectDocument, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return decodeAll[models.ProjectDocument](ctx, m.projects, bson.M{"user": oid})
}

func (m *Mongo) InsertProject(ctx context.Context, doc *models.ProjectDocument) error {
	if doc.Id.IsZero() {
		doc.Id = primitive.NewObjectID()
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := m.projects.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}
	return nil
}

func (m *Mongo) UpdateProject(ctx context.Context, id, userID string, changes *models.ProjectDocument) (*models.ProjectDocument, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updatedAt": time.Now()}
	if changes.Title != "" {
		set["title"] = changes.Title
	}
	if changes.Description != "" {
		set["description"] = changes.Description
	}
	if changes.Technologies != nil {
		set["technologies"] = changes.Technologies
	}
	if changes.Link != "" {
		set["link"] = changes.Link
	}
	if changes.Image != "" {
		set["image"] = changes.Image
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc models.ProjectDocument
	err = m.projects.FindOneAndUpdate(ctx, bson.M{"_id": oid, "user": uid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return &doc, nil
}

func (m *Mongo) DeleteProject(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}

	res, err := m.projects.DeleteOne(ctx, bson.M{"_id": oid, "user": uid})
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) ListResumes(ctx context.Context) ([]models.ResumeDocument, error) {
	return decodeAll[models.ResumeDocument](ctx, m.resumes, bson.M{})
}

func (m *Mongo) ResumeByUser(ctx context.Context, userID string) (*models.ResumeDocument, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc models.ResumeDocument
	if err := m.resumes.FindOne(ctx, bson.M{"user": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find resume: %w", err)
	}
	return &doc, nil
}

func (m *Mongo) InsertResume(ctx context.Context, doc *models.ResumeDocument) error {
	if _, err := m.ResumeByUser(ctx, doc.User.Hex()); err == nil {
		return ErrDuplicate
	} else if err != ErrNotFound {
		return err
	}

	if doc.Id.IsZero() {
		doc.Id = primitive.NewObjectID()
	}
	if doc.Version == 0 {
		doc.Version = 1
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := m.resumes.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert resume: %w", err)
	}
	return nil
}

func (m *Mongo) UpdateResume(ctx context.Context, userID string, changes *models.ResumeDocument, upsert bool) (*models.ResumeDocument, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updatedAt": time.Now()}
	if changes.PersonalInfo != (models.PersonalInfo{}) {
		set["personalInfo"] = changes.PersonalInfo
	}
	if changes.Education != nil {
		set["education"] = changes.Education
	}
	if changes.Experience != nil {
		set["experience"] = changes.Experience
	}
	if changes.Skills != nil {
		set["skills"] = changes.Skills
	}
	if changes.Projects != nil {
		set["projects"] = changes.Projects
	}
	if changes.Version != 0 {
		set["version"] = changes.Version
	}

	update := bson.M{"$set": set}
	if upsert {
		update["$setOnInsert"] = bson.M{"user": uid, "createdAt": time.Now(), "version": 1}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After).SetUpsert(upsert)
	var doc models.ResumeDocument
	err = m.resumes.FindOneAndUpdate(ctx, bson.M{"user": uid}, update, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}
	return &doc, nil
}

func (m *Mongo) DeleteResume(ctx context.Context, userID string) error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}

	res, err := m.resumes.DeleteOne(ctx, bson.M{"user": uid})
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) ListContacts(ctx context.Context) ([]models.ContactDocument, error) {
	return decodeAll[models.ContactDocument](ctx, m.contacts, bson.M{})
}

func (m *Mongo) ContactByUser(ctx context.Context, userID string) (*models.ContactDocument, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc models.ContactDocument
	if err := m.contacts.FindOne(ctx, bson.M{"user": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contact: %w", err)
	}
	return &doc, nil
}

func (m *Mongo) InsertContact(ctx context.Context, doc *models.ContactDocument) error {
	if _, err := m.ContactByUser(ctx, doc.User.Hex()); err == nil {
		return ErrDuplicate
	} else if err != ErrNotFound {
		return err
	}

	if doc.Id.IsZero() {
		doc.Id = primitive.NewObjectID()
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := m.contacts.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}
	return nil
}

func (m *Mongo) UpdateContact(ctx context.Context, userID string, changes *models.ContactDocument, upsert bool) (*models.ContactDocument, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updatedAt": time.Now()}
	if changes.Name != "" {
		set["name"] = changes.Name
	}
	if changes.Email != "" {
		set["email"] = changes.Email
	}
	if changes.Phone != "" {
		set["phone"] = changes.Phone
	}
	if changes.Message != "" {
		set["message"] = changes.Message
	}

	update := bson.M{"$set": set}
	if upsert {
		update["$setOnInsert"] = bson.M{"user": uid, "createdAt": time.Now()}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After).SetUpsert(upsert)
	var doc models.ContactDocument
	err = m.contacts.FindOneAndUpdate(ctx, bson.M{"user": uid}, update, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return &doc, nil
}

func (m *Mongo) DeleteContact(ctx context.Context, userID string) error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}

	res, err := m.contacts.DeleteOne(ctx, bson.M{"user": uid})
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func decodeAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) ([]T, error) {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", coll.Name(), err)
	}
	return docs, nil
}
