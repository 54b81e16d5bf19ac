package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/frahmantamala/document-management/internal"
	userDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/user"
	"github.com/frahmantamala/document-management/pkg/logger"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// Mock RepositoryAPI for testing
type mockUserRepository struct {
	users         map[int64]*userDatamodel.User
	nextID        int64
	returnError   bool
	errorToReturn error
}

func newMockUserRepository() *mockUserRepository {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.MinCost)

	return &mockUserRepository{
		users: map[int64]*userDatamodel.User{
			1: {ID: 1, Username: "alice", Email: "alice@example.com", PasswordHash: string(hashedPassword), Role: "member", IsActive: true},
			2: {ID: 2, Username: "carol", Email: "carol@example.com", PasswordHash: string(hashedPassword), Role: "staff", IsActive: true},
			3: {ID: 3, Username: "dave", Email: "dave@example.com", PasswordHash: string(hashedPassword), Role: "member", IsActive: false},
		},
		nextID: 4,
	}
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*userDatamodel.User, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID int64) (*userDatamodel.User, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	return m.users[userID], nil
}

func (m *mockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	u, err := m.GetByUsername(ctx, username)
	return u != nil, err
}

func (m *mockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.returnError {
		return false, m.errorToReturn
	}
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepository) Create(ctx context.Context, u *userDatamodel.User) error {
	if m.returnError {
		return m.errorToReturn
	}
	u.ID = m.nextID
	m.nextID++
	m.users[u.ID] = u
	return nil
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		ctx      context.Context
		service  *Service
		mockRepo *mockUserRepository
		tokenGen *JWTTokenGenerator
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		mockRepo = newMockUserRepository()
		tokenGen = NewJWTTokenGenerator("test-access-secret-0123456789abcdef", "test-refresh-secret-0123456789abcdef", 15*time.Minute, 24*time.Hour)
		service = NewService(mockRepo, tokenGen, bcrypt.MinCost, logger.Discard())
	})

	ginkgo.Describe("Login", func() {
		ginkgo.Context("when credentials are valid", func() {
			ginkgo.It("should return a token pair and the serialized user", func() {
				// When
				resp, err := service.Login(ctx, LoginDTO{Username: "alice", Password: "correct_password"})

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(resp.Token).ToNot(gomega.BeEmpty())
				gomega.Expect(resp.RefreshToken).ToNot(gomega.BeEmpty())
				gomega.Expect(resp.Token).ToNot(gomega.Equal(resp.RefreshToken))
				gomega.Expect(resp.User.Username).To(gomega.Equal("alice"))
				gomega.Expect(resp.User.IsStaff).To(gomega.BeFalse())
			})

			ginkgo.It("should bind the access token to the user", func() {
				resp, err := service.Login(ctx, LoginDTO{Username: "carol", Password: "correct_password"})
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				caller, err := service.Authenticate(ctx, resp.Token)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(caller.ID).To(gomega.Equal(int64(2)))
				gomega.Expect(caller.IsStaff()).To(gomega.BeTrue())
			})
		})

		ginkgo.Context("when input is incomplete", func() {
			ginkgo.It("should return a 400 validation error", func() {
				_, err := service.Login(ctx, LoginDTO{Username: "alice"})

				appErr, ok := internal.IsAppError(err)
				gomega.Expect(ok).To(gomega.BeTrue())
				gomega.Expect(appErr.StatusCode).To(gomega.Equal(400))
				gomega.Expect(appErr.Message).To(gomega.Equal("Please provide both username and password"))
			})
		})

		ginkgo.Context("when credentials are wrong", func() {
			ginkgo.It("should reject a wrong password", func() {
				resp, err := service.Login(ctx, LoginDTO{Username: "alice", Password: "wrong"})

				gomega.Expect(resp).To(gomega.BeNil())
				gomega.Expect(errors.Is(err, internal.ErrInvalidCredentials)).To(gomega.BeTrue())
			})

			ginkgo.It("should reject an unknown username", func() {
				_, err := service.Login(ctx, LoginDTO{Username: "nobody", Password: "correct_password"})

				gomega.Expect(errors.Is(err, internal.ErrInvalidCredentials)).To(gomega.BeTrue())
			})

			ginkgo.It("should reject an inactive user", func() {
				_, err := service.Login(ctx, LoginDTO{Username: "dave", Password: "correct_password"})

				gomega.Expect(errors.Is(err, internal.ErrUserInactive)).To(gomega.BeTrue())
			})
		})

		ginkgo.Context("when the repository fails", func() {
			ginkgo.It("should wrap the error", func() {
				mockRepo.returnError = true
				mockRepo.errorToReturn = errors.New("connection refused")

				_, err := service.Login(ctx, LoginDTO{Username: "alice", Password: "correct_password"})

				gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("connection refused")))
				_, isAppErr := internal.IsAppError(err)
				gomega.Expect(isAppErr).To(gomega.BeFalse())
			})
		})
	})

	ginkgo.Describe("Register", func() {
		ginkgo.It("should create a member account and log it in", func() {
			resp, err := service.Register(ctx, RegisterDTO{
				Username:  "bob",
				Email:     "bob@example.com",
				Password:  "s3cret-pass",
				FirstName: "Bob",
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(resp.Token).ToNot(gomega.BeEmpty())
			gomega.Expect(resp.User.Username).To(gomega.Equal("bob"))
			gomega.Expect(resp.User.FirstName).To(gomega.Equal("Bob"))

			stored := mockRepo.users[resp.User.ID]
			gomega.Expect(stored.Role).To(gomega.Equal("member"))
			gomega.Expect(bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass"))).To(gomega.Succeed())
		})

		ginkgo.It("should reject a duplicate username without creating an account", func() {
			before := len(mockRepo.users)

			_, err := service.Register(ctx, RegisterDTO{Username: "alice", Email: "new@example.com", Password: "pw"})

			gomega.Expect(errors.Is(err, ErrUsernameTaken)).To(gomega.BeTrue())
			gomega.Expect(mockRepo.users).To(gomega.HaveLen(before))
		})

		ginkgo.It("should reject a duplicate email", func() {
			_, err := service.Register(ctx, RegisterDTO{Username: "alice2", Email: "alice@example.com", Password: "pw"})

			gomega.Expect(errors.Is(err, ErrEmailTaken)).To(gomega.BeTrue())
		})

		ginkgo.It("should require username, email and password", func() {
			_, err := service.Register(ctx, RegisterDTO{Username: "erin"})

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Message).To(gomega.Equal("Please provide username, email and password"))
		})

		ginkgo.It("should reject a malformed email", func() {
			_, err := service.Register(ctx, RegisterDTO{Username: "erin", Email: "not-an-email", Password: "pw"})

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(400))
		})
	})

	ginkgo.Describe("Tokens", func() {
		ginkgo.It("should refresh a valid refresh token", func() {
			login, err := service.Login(ctx, LoginDTO{Username: "alice", Password: "correct_password"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			refreshed, err := service.RefreshTokens(ctx, login.RefreshToken)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(refreshed.Token).ToNot(gomega.Equal(login.Token))
			gomega.Expect(refreshed.User.ID).To(gomega.Equal(int64(1)))
		})

		ginkgo.It("should not accept an access token as a refresh token", func() {
			login, err := service.Login(ctx, LoginDTO{Username: "alice", Password: "correct_password"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.RefreshTokens(ctx, login.Token)

			gomega.Expect(errors.Is(err, internal.ErrInvalidToken)).To(gomega.BeTrue())
		})

		ginkgo.It("should not accept a refresh token as an access token", func() {
			login, err := service.Login(ctx, LoginDTO{Username: "alice", Password: "correct_password"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Authenticate(ctx, login.RefreshToken)

			gomega.Expect(errors.Is(err, internal.ErrInvalidToken)).To(gomega.BeTrue())
		})

		ginkgo.It("should report expired tokens", func() {
			expired := NewJWTTokenGenerator("test-access-secret-0123456789abcdef", "test-refresh-secret-0123456789abcdef", -time.Minute, time.Hour)
			token, err := expired.GenerateAccessToken(1, "alice")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Authenticate(ctx, token)

			gomega.Expect(errors.Is(err, internal.ErrTokenExpired)).To(gomega.BeTrue())
		})

		ginkgo.It("should reject tokens for deactivated users", func() {
			token, err := tokenGen.GenerateAccessToken(3, "dave")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Authenticate(ctx, token)

			gomega.Expect(errors.Is(err, internal.ErrUserInactive)).To(gomega.BeTrue())
		})

		ginkgo.It("should reject garbage", func() {
			_, err := service.Authenticate(ctx, "not-a-jwt")

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(401))
		})
	})
})
