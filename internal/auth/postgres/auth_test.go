package postgres_test

import (
	"context"
	"testing"

	authPostgres "github.com/frahmantamala/document-management/internal/auth/postgres"
	userDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/user"
	"github.com/frahmantamala/document-management/internal/testutil"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

func TestAuthPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Postgres Suite")
}

var _ = Describe("Auth Repository", func() {
	var (
		ctx  context.Context
		db   *gorm.DB
		repo *authPostgres.Repository
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		db, err = testutil.NewSQLiteDB()
		Expect(err).NotTo(HaveOccurred())
		repo = authPostgres.NewRepository(db)

		_, err = testutil.CreateUser(db, "alice", "member")
		Expect(err).NotTo(HaveOccurred())
	})

	It("should find users by username and id", func() {
		u, err := repo.GetByUsername(ctx, "alice")
		Expect(err).NotTo(HaveOccurred())
		Expect(u).NotTo(BeNil())
		Expect(u.Email).To(Equal("alice@example.com"))

		byID, err := repo.GetByID(ctx, u.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(byID.Username).To(Equal("alice"))
	})

	It("should return nil for unknown users", func() {
		u, err := repo.GetByUsername(ctx, "nobody")
		Expect(err).NotTo(HaveOccurred())
		Expect(u).To(BeNil())
	})

	It("should report existing usernames and emails", func() {
		exists, err := repo.UsernameExists(ctx, "alice")
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeTrue())

		exists, err = repo.EmailExists(ctx, "ALICE@example.com")
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeTrue())

		exists, err = repo.UsernameExists(ctx, "bob")
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeFalse())
	})

	It("should enforce unique usernames", func() {
		err := repo.Create(ctx, &userDatamodel.User{
			Username:     "alice",
			Email:        "other@example.com",
			PasswordHash: "x",
			Role:         "member",
			IsActive:     true,
		})
		Expect(err).To(MatchError(gorm.ErrDuplicatedKey))
	})
})
