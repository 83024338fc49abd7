package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/psatpute/HOA-OPs-AI/logging"
	"github.com/psatpute/HOA-OPs-AI/models"
	"github.com/psatpute/HOA-OPs-AI/repositories"
)

type UserService struct {
	Users *repositories.Repository[models.User]
}

func NewUserService(database *mongo.Database) *UserService {
	return &UserService{
		Users: repositories.New[models.User](database.Collection("users"), "createdAt", false),
	}
}

// Register creates a new account. Uniqueness is enforced twice: a pre-check
// so the common case gets a clean message, and the unique index on email so
// two concurrent signups cannot both land.
func (s *UserService) Register(ctx context.Context, req models.SignupRequest, passwordHash string) (*models.User, error) {
	if existing, err := s.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
		CreatedAt:    time.Now().UTC(),
		LastLoginAt:  nil,
	}

	id, err := s.Users.Insert(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(errors.Unwrap(err)) || mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	user.ID = id
	return &user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.Users.Collection().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}
	return &user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Users.FindByID(ctx, id)
}

// StampLastLogin records a successful login. A failed stamp is logged but
// does not fail the login.
func (s *UserService) StampLastLogin(ctx context.Context, user *models.User) {
	now := time.Now().UTC()
	_, err := s.Users.Collection().UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"lastLoginAt": now}},
	)
	if err != nil {
		logging.Logger.Warnf("Failed to update last login for %s: %v", user.Email, err)
		return
	}
	user.LastLoginAt = &now
}
