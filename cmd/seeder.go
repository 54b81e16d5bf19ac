package cmd

import (
	"fmt"
	"log"

	"github.com/frahmantamala/document-management/internal"
	"github.com/frahmantamala/document-management/internal/catalog"
	borrowDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/borrow"
	documentDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/document"
	organizationDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/organization"
	userDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/user"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const seedPassword = "password123"

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample accounts and reference data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer sqlDB.Close()

		db, err := initGorm(sqlDB)
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			if err := clearSeedData(db); err != nil {
				log.Fatalf("failed to clear data: %v", err)
			}
			fmt.Println("Cleared existing data")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), cfg.Security.BCryptCost)
		if err != nil {
			log.Fatalf("failed to hash seed password: %v", err)
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			return seed(tx, string(hash))
		}); err != nil {
			log.Fatalf("failed to seed: %v", err)
		}

		fmt.Println("Seeding completed. Accounts use password:", seedPassword)
	},
}

func seed(tx *gorm.DB, passwordHash string) error {
	users := []userDatamodel.User{
		{Username: "admin", Email: "admin@example.com", FirstName: "Office", LastName: "Admin", Role: string(internal.RoleStaff)},
		{Username: "staff", Email: "staff@example.com", FirstName: "Records", LastName: "Clerk", Role: string(internal.RoleStaff)},
		{Username: "member", Email: "member@example.com", FirstName: "Regular", LastName: "Member", Role: string(internal.RoleMember)},
	}
	for i := range users {
		users[i].PasswordHash = passwordHash
		users[i].IsActive = true
		if err := tx.Where(userDatamodel.User{Username: users[i].Username}).FirstOrCreate(&users[i]).Error; err != nil {
			return fmt.Errorf("user %s: %w", users[i].Username, err)
		}
		fmt.Println("Seeded user:", users[i].Username, "role:", users[i].Role)
	}

	departments := []organizationDatamodel.Department{
		{Name: "Administration", Description: "Front office and records"},
		{Name: "Legal", Description: "Contracts and notarial deeds"},
		{Name: "Finance", Description: "Invoices and statements"},
	}
	for i := range departments {
		if err := tx.Where(organizationDatamodel.Department{Name: departments[i].Name}).FirstOrCreate(&departments[i]).Error; err != nil {
			return fmt.Errorf("department %s: %w", departments[i].Name, err)
		}
	}

	jobTitles := []organizationDatamodel.JobTitle{
		{Title: "Archivist", Description: "Keeps the physical archives"},
		{Title: "Clerk", Description: "Registers incoming and outgoing mail"},
		{Title: "Lawyer"},
	}
	for i := range jobTitles {
		if err := tx.Where(organizationDatamodel.JobTitle{Title: jobTitles[i].Title}).FirstOrCreate(&jobTitles[i]).Error; err != nil {
			return fmt.Errorf("job title %s: %w", jobTitles[i].Title, err)
		}
	}

	employees := []organizationDatamodel.Employee{
		{UserID: users[1].ID, DepartmentID: &departments[0].ID, JobTitleID: &jobTitles[0].ID, PhoneNumber: "+10000000001"},
		{UserID: users[2].ID, DepartmentID: &departments[1].ID, JobTitleID: &jobTitles[2].ID, PhoneNumber: "+10000000002"},
	}
	for i := range employees {
		if err := tx.Where(organizationDatamodel.Employee{UserID: employees[i].UserID}).FirstOrCreate(&employees[i]).Error; err != nil {
			return fmt.Errorf("employee for user %d: %w", employees[i].UserID, err)
		}
	}

	documentTypes := []documentDatamodel.DocumentType{
		{Name: "Notarial deed", Category: catalog.CategoryNotarized},
		{Name: "Certified copy", Category: catalog.CategoryCertified},
		{Name: "Sworn translation", Category: catalog.CategoryTranslated},
		{Name: "Outgoing letter", Category: catalog.CategoryOutgoing},
		{Name: "Incoming letter", Category: catalog.CategoryIncoming},
		{Name: "Internal memo", Category: catalog.CategoryInternal},
	}
	for i := range documentTypes {
		if err := tx.Where(documentDatamodel.DocumentType{Name: documentTypes[i].Name}).FirstOrCreate(&documentTypes[i]).Error; err != nil {
			return fmt.Errorf("document type %s: %w", documentTypes[i].Name, err)
		}
	}

	archives := []documentDatamodel.Archive{
		{Name: "Main archive", Location: "Basement, room B1"},
		{Name: "Legal vault", Location: "2nd floor, room 204", Description: "Originals of notarial deeds"},
	}
	for i := range archives {
		if err := tx.Where(documentDatamodel.Archive{Name: archives[i].Name}).FirstOrCreate(&archives[i]).Error; err != nil {
			return fmt.Errorf("archive %s: %w", archives[i].Name, err)
		}
	}

	fmt.Printf("Seeded %d departments, %d job titles, %d document types, %d archives\n",
		len(departments), len(jobTitles), len(documentTypes), len(archives))
	return nil
}

// clearSeedData empties every table, children first.
func clearSeedData(db *gorm.DB) error {
	models := []interface{}{
		&borrowDatamodel.BorrowRequest{},
		&documentDatamodel.DocumentShare{},
		&documentDatamodel.Document{},
		&documentDatamodel.Archive{},
		&documentDatamodel.DocumentType{},
		&organizationDatamodel.Employee{},
		&organizationDatamodel.JobTitle{},
		&organizationDatamodel.Department{},
		&userDatamodel.User{},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, m := range models {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
