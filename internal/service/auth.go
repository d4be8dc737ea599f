package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nuzair/recipebox/internal/models"
	"github.com/nuzair/recipebox/internal/repository"
	"github.com/nuzair/recipebox/internal/tokenstore"
)

// AuthService owns the current-session identity. It persists the user
// record in the main store and the session token in the secure token
// store, and restores the session across process restarts.
//
// AuthService is not safe for concurrent use; all calls are expected to
// come from a single caller at a time.
type AuthService struct {
	users   repository.Users
	recipes repository.Recipes
	tokens  tokenstore.Store
	log     *logrus.Logger

	recipeService *RecipeService
	currentUser   *models.User
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users repository.Users, recipes repository.Recipes, tokens tokenstore.Store, log *logrus.Logger) *AuthService {
	return &AuthService{
		users:   users,
		recipes: recipes,
		tokens:  tokens,
		log:     log,
	}
}

// SetRecipeService wires the back-reference used to move the recipe
// scope on login, session restore and logout. Called once by the
// composition root.
func (s *AuthService) SetRecipeService(rs *RecipeService) {
	s.recipeService = rs
}

// CurrentUser returns the in-memory projection of the authenticated
// user, or nil.
func (s *AuthService) CurrentUser() *models.User {
	return s.currentUser
}

// IsAuthenticated reports whether a user is currently signed in.
func (s *AuthService) IsAuthenticated() bool {
	return s.currentUser != nil
}

// generateToken returns a fresh opaque session token.
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// CheckForExistingSession restores the session from a token persisted
// in the secure token store. A token that no longer matches any user is
// deleted as stale.
func (s *AuthService) CheckForExistingSession(ctx context.Context) {
	token, err := s.tokens.Get()
	if err != nil {
		if !errors.Is(err, tokenstore.ErrNotFound) {
			s.log.Errorf("Error reading token store: %v", err)
		}
		s.dropSession(ctx)
		return
	}

	user, err := s.users.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if delErr := s.tokens.Delete(); delErr != nil {
				s.log.Errorf("Error removing stale token: %v", delErr)
			}
		} else {
			s.log.Errorf("Error checking session: %v", err)
		}
		s.dropSession(ctx)
		return
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.users.Save(ctx, user); err != nil {
		s.log.Errorf("Error updating last login: %v", err)
	}

	s.currentUser = user
	s.setScope(ctx, user)
	s.log.WithField("user_id", user.ID).Debug("session restored")
}

// Login authenticates by username and password. It issues a fresh
// session token, persists it on the user record and in the secure
// token store, and sets the current user.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return err
	}

	now := time.Now()
	user.Token = &token
	user.LastLogin = &now
	if err := s.users.Save(ctx, user); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	if err := s.tokens.Set(token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	s.currentUser = user
	s.setScope(ctx, user)
	s.log.WithField("user_id", user.ID).Info("user logged in")
	return nil
}

// Register creates a new user with a hashed password and a fresh
// session token, and signs the user in.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return ErrUserAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	token, err := generateToken()
	if err != nil {
		return err
	}

	now := time.Now()
	user := &models.User{
		Username:     username,
		PasswordHash: string(hashed),
		Token:        &token,
		LastLogin:    &now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.tokens.Set(token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	s.currentUser = user
	s.setScope(ctx, user)
	s.log.WithField("user_id", user.ID).Info("user registered")
	return nil
}

// Logout clears the user's stored token (best effort), removes the
// token from the secure token store, and drops the in-memory session.
func (s *AuthService) Logout(ctx context.Context) {
	if s.currentUser != nil {
		user, err := s.users.FindByID(ctx, s.currentUser.ID)
		if err == nil {
			user.Token = nil
			if err := s.users.Save(ctx, user); err != nil {
				s.log.Errorf("Error during logout: %v", err)
			}
		} else {
			s.log.Errorf("Error during logout: %v", err)
		}
	}

	s.clearSession(ctx)
}

// DeleteAccount removes the current user's record and recipes from the
// store (best effort), then clears the session unconditionally.
func (s *AuthService) DeleteAccount(ctx context.Context) {
	if s.currentUser != nil {
		id := s.currentUser.ID
		if err := s.recipes.DeleteByUser(ctx, id); err != nil {
			s.log.Errorf("Error deleting recipes for account: %v", err)
		}
		if err := s.users.Delete(ctx, id); err != nil {
			s.log.Errorf("Error deleting account: %v", err)
		} else {
			s.log.WithField("user_id", id).Info("account deleted")
		}
	}

	s.clearSession(ctx)
}

// UpdateProfileImage overwrites the current user's profile image and
// refreshes the in-memory projection. No-op when signed out or when
// the store record cannot be found.
func (s *AuthService) UpdateProfileImage(ctx context.Context, image []byte) {
	if s.currentUser == nil {
		return
	}

	user, err := s.users.FindByID(ctx, s.currentUser.ID)
	if err != nil {
		s.log.Errorf("Error updating profile image: %v", err)
		return
	}

	user.ProfileImage = image
	if err := s.users.Save(ctx, user); err != nil {
		s.log.Errorf("Error updating profile image: %v", err)
		return
	}
	s.currentUser = user
}

// clearSession removes the stored token and the in-memory session.
func (s *AuthService) clearSession(ctx context.Context) {
	if err := s.tokens.Delete(); err != nil {
		s.log.Errorf("Error removing token: %v", err)
	}
	s.dropSession(ctx)
}

// dropSession clears in-memory session state without touching the
// secure token store.
func (s *AuthService) dropSession(ctx context.Context) {
	s.currentUser = nil
	if s.recipeService != nil {
		s.recipeService.SetCurrentUser(ctx, nil)
	}
}

func (s *AuthService) setScope(ctx context.Context, user *models.User) {
	if s.recipeService != nil {
		id := user.ID
		s.recipeService.SetCurrentUser(ctx, &id)
	}
}
