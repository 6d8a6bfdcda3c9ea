package services

import (
	"fmt"
	"log"
	"time"

	"ecoshare/internal/models"
	"ecoshare/internal/storage"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Built-in test account. Logging in with these credentials works even on a
// fresh store, matching the original mock backend.
const (
	TestAccountEmail    = "test@eco.com"
	TestAccountPassword = "123"
)

// SessionService owns the single currently-authenticated account and its
// streak counter. The cached counter and the account's Streaks field always
// agree after any mutation, and every mutation re-persists the full record.
// It is not safe for concurrent use; the application is single-threaded by
// design.
type SessionService struct {
	store      storage.Store
	validate   *validator.Validate
	jwtSecret  []byte
	tokenDurat time.Duration

	current *models.UserAccount
	streaks int
}

// NewSessionService creates a new SessionService. Any previously persisted
// session is restored from the store.
func NewSessionService(store storage.Store, jwtSecret string) *SessionService {
	s := &SessionService{
		store:      store,
		validate:   validator.New(),
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
	s.restore()
	return s
}

// restore loads the persisted current-user record, if any.
func (s *SessionService) restore() {
	var user models.UserAccount
	ok, err := s.store.Get(storage.KeyCurrentUser, &user)
	if err != nil {
		log.Printf("Failed to restore session: %v", err)
		return
	}
	if ok {
		s.current = &user
		s.streaks = user.Streaks
	}
}

// Current returns the account of the active session, or nil when logged out.
func (s *SessionService) Current() *models.UserAccount {
	return s.current
}

// Streaks returns the cached streak counter of the active session.
func (s *SessionService) Streaks() int {
	return s.streaks
}

// Register creates a new account with zero streaks, persists it and makes it
// the current session. The username, email, password and contact fields are
// required; a missing one fails with ErrValidation. Registering an email that
// already has an account fails with ErrEmailRegistered.
func (s *SessionService) Register(profile models.UserAccount) (*models.UserAccount, error) {
	if err := s.validate.Struct(profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	accounts := s.loadAccounts()
	if _, exists := accounts[profile.Email]; exists {
		return nil, fmt.Errorf("%w: %s", ErrEmailRegistered, profile.Email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(profile.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := profile
	user.ID = uuid.New().String()
	user.Password = string(hashed)
	user.Streaks = 0

	accounts[user.Email] = user
	if err := s.store.Set(storage.KeyUserAccounts, accounts); err != nil {
		return nil, fmt.Errorf("failed to persist account: %w", err)
	}
	if err := s.store.Set(storage.KeyCurrentUser, user); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.current = &user
	s.streaks = 0
	return s.current, nil
}

// Login authenticates against the persisted account registry (or a leftover
// current-user record), falling back to the fixed built-in test pair. On
// success the matched account becomes the current session.
func (s *SessionService) Login(email, password string) (*models.UserAccount, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	if user, ok := s.lookupAccount(email); ok {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err == nil {
			return s.activate(user)
		}
	}

	if email == TestAccountEmail && password == TestAccountPassword {
		return s.activate(testAccount())
	}

	return nil, ErrAuth
}

// lookupAccount resolves email to a stored account, checking the registry
// first and then any persisted current-user record.
func (s *SessionService) lookupAccount(email string) (models.UserAccount, bool) {
	accounts := s.loadAccounts()
	if user, ok := accounts[email]; ok {
		return user, true
	}

	var user models.UserAccount
	ok, err := s.store.Get(storage.KeyCurrentUser, &user)
	if err != nil {
		log.Printf("Failed to read persisted session: %v", err)
		return models.UserAccount{}, false
	}
	if ok && user.Email == email {
		return user, true
	}
	return models.UserAccount{}, false
}

// activate persists user as the current session and syncs the cached counter.
func (s *SessionService) activate(user models.UserAccount) (*models.UserAccount, error) {
	if err := s.store.Set(storage.KeyCurrentUser, user); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	s.current = &user
	s.streaks = user.Streaks
	return s.current, nil
}

// Logout clears the persisted session pointer and the in-memory session. The
// underlying account record in the registry is kept. Logout is idempotent.
func (s *SessionService) Logout() error {
	if err := s.store.Remove(storage.KeyCurrentUser); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.current = nil
	s.streaks = 0
	return nil
}

// AwardStreaks adds delta to the session's streak counter and the account's
// Streaks field, re-persists the full record and returns the new total. It
// fails with ErrNotAuthenticated when no session is active, leaving all state
// unchanged.
func (s *SessionService) AwardStreaks(delta int) (int, error) {
	if s.current == nil {
		return 0, ErrNotAuthenticated
	}

	s.streaks += delta
	s.current.Streaks = s.streaks

	if err := s.store.Set(storage.KeyCurrentUser, *s.current); err != nil {
		return 0, fmt.Errorf("failed to persist session: %w", err)
	}
	accounts := s.loadAccounts()
	if _, ok := accounts[s.current.Email]; ok {
		accounts[s.current.Email] = *s.current
		if err := s.store.Set(storage.KeyUserAccounts, accounts); err != nil {
			return 0, fmt.Errorf("failed to persist account: %w", err)
		}
	}
	return s.streaks, nil
}

// loadAccounts reads the account registry, returning an empty map when the
// store has none.
func (s *SessionService) loadAccounts() map[string]models.UserAccount {
	accounts := make(map[string]models.UserAccount)
	if _, err := s.store.Get(storage.KeyUserAccounts, &accounts); err != nil {
		log.Printf("Failed to load account registry: %v", err)
	}
	if accounts == nil {
		accounts = make(map[string]models.UserAccount)
	}
	return accounts
}

// GenerateToken issues a signed JWT for user, used by the HTTP layer.
func (s *SessionService) GenerateToken(user *models.UserAccount) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"email":    user.Email,
		"exp":      time.Now().Add(s.tokenDurat).Unix(),
		"iat":      time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT, returning the claims if valid.
func (s *SessionService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// testAccount returns the built-in test user.
func testAccount() models.UserAccount {
	return models.UserAccount{
		ID:        uuid.NewSHA1(uuid.NameSpaceOID, []byte(TestAccountEmail)).String(),
		Username:  "EcoTestUser",
		Email:     TestAccountEmail,
		Contact:   "+91 9876543210",
		Age:       "30",
		Country:   "India",
		Location:  "Coimbatore",
		Address:   "123 Test St",
		Emergency: "911",
		Streaks:   50,
	}
}
