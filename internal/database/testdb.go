package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "OpenHire-backend/internal/model"
	"OpenHire-backend/internal/utilities"
)

var testDBInstance *DB
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported test users, profiles and listings
var (
	TestUserSeeker1   m.User
	TestUserSeeker2   m.User
	TestUserEmployer1 m.User
	TestUserEmployer2 m.User
	TestEmployer1     m.Employer
	TestEmployer2     m.Employer
	TestCompany1      m.Company
	TestCompany2      m.Company
	TestCategoryTech  m.JobCategory
	TestCategoryArt   m.JobCategory

	// Shared plain password for every seeded account
	TestSeedPassword = "SeedPass123!"

	// Seeded listings: featured, urgent, plain, and one already expired
	TestJobFeatured m.Job
	TestJobUrgent   m.Job
	TestJobPlain    m.Job
	TestJobExpired  m.Job
)

// GetTestDB starts a PostgreSQL test container and returns a teardown
// function, the DB handle, and any error encountered during setup. The
// container is shared across tests of one binary.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DB, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &Config{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := New(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts the fixture accounts, companies, categories, and
// listings the controller tests rely on.
func seedTestData(db *DB) error {
	var userCount int64
	if err := db.Model(&m.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return fmt.Errorf("test database is not empty")
	}

	hashedPwd, err := utilities.HashPassword(TestSeedPassword)
	if err != nil {
		return err
	}

	users := []m.User{
		{ID: uuid.New(), Username: "seeker_1", Email: ptr("seeker1@example.com"), Role: m.RoleSeeker, Password: hashedPwd},
		{ID: uuid.New(), Username: "seeker_2", Email: ptr("seeker2@example.com"), Role: m.RoleSeeker, Password: hashedPwd},
		{ID: uuid.New(), Username: "employer_1", Email: ptr("hiring@technova.example"), Role: m.RoleEmployer, Password: hashedPwd},
		{ID: uuid.New(), Username: "employer_2", Email: ptr("jobs@dataforge.example"), Role: m.RoleEmployer, Password: hashedPwd},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}
	TestUserSeeker1, TestUserSeeker2 = users[0], users[1]
	TestUserEmployer1, TestUserEmployer2 = users[2], users[3]

	companies := []m.Company{
		{
			Name:               "TechNova",
			IsVerified:         true,
			VerificationStatus: m.StatusVerified,
			EditableCompanyInfo: m.EditableCompanyInfo{
				Description: "Innovative platform solutions",
				Industry:    "Software",
				LogoURL:     "https://cdn.example.com/technova.png",
				City:        "Cape Town",
				Province:    "Western Cape",
				Country:     "South Africa",
			},
		},
		{
			Name:               "DataForge",
			VerificationStatus: m.StatusPending,
			EditableCompanyInfo: m.EditableCompanyInfo{
				Description: "Data analytics consulting",
				Industry:    "Consulting",
				City:        "Johannesburg",
				Province:    "Gauteng",
				Country:     "South Africa",
			},
		},
	}
	if err := db.Create(&companies).Error; err != nil {
		return err
	}
	TestCompany1, TestCompany2 = companies[0], companies[1]

	employers := []m.Employer{
		{UserID: TestUserEmployer1.ID, FullName: "Thandi Mokoena", CompanyID: &TestCompany1.ID},
		{UserID: TestUserEmployer2.ID, FullName: "Pieter van Wyk", CompanyID: &TestCompany2.ID},
	}
	if err := db.Create(&employers).Error; err != nil {
		return err
	}
	TestEmployer1, TestEmployer2 = employers[0], employers[1]

	categories := []m.JobCategory{
		{Name: "Technology", Slug: "technology", Icon: "💻", Color: "bg-blue-100 text-blue-800"},
		{Name: "Design", Slug: "design", Icon: "🎨", Color: "bg-purple-100 text-purple-800"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}
	TestCategoryTech, TestCategoryArt = categories[0], categories[1]

	now := time.Now()
	futureExpiry := now.AddDate(0, 1, 0)
	pastExpiry := now.AddDate(0, 0, -1)

	jobs := []m.Job{
		{
			CompanyID:  TestCompany1.ID,
			EmployerID: TestEmployer1.UserID,
			PostedAt:   now.AddDate(0, 0, -3),
			EditableJobInfo: m.EditableJobInfo{
				Title:           "Senior Backend Engineer",
				Description:     "Own the Go services behind our hiring platform.",
				PositionType:    "full-time",
				RemotePolicy:    "hybrid",
				SalaryMin:       fptr(50000),
				SalaryMax:       fptr(70000),
				SalaryCurrency:  "ZAR",
				City:            "Cape Town",
				Province:        "Western Cape",
				Country:         "South Africa",
				ExperienceLevel: "senior",
				RequiredSkills:  pq.StringArray{"go", "postgresql"},
				PreferredSkills: pq.StringArray{"kubernetes"},
				ExpiresAt:       &futureExpiry,
				IsFeatured:      true,
				Status:          m.JobStatusActive,
				CategoryID:      &TestCategoryTech.ID,
			},
		},
		{
			CompanyID:  TestCompany2.ID,
			EmployerID: TestEmployer2.UserID,
			PostedAt:   now.AddDate(0, 0, -2),
			EditableJobInfo: m.EditableJobInfo{
				Title:           "Data Pipeline Engineer",
				Description:     "Build streaming ingestion for analytics dashboards.",
				PositionType:    "contract",
				RemotePolicy:    "remote",
				SalaryMin:       fptr(80000),
				SalaryMax:       fptr(100000),
				SalaryCurrency:  "ZAR",
				Country:         "South Africa",
				ExperienceLevel: "mid",
				RequiredSkills:  pq.StringArray{"python", "sql"},
				IsUrgent:        true,
				Status:          m.JobStatusActive,
				CategoryID:      &TestCategoryTech.ID,
			},
		},
		{
			CompanyID:  TestCompany1.ID,
			EmployerID: TestEmployer1.UserID,
			PostedAt:   now.AddDate(0, 0, -1),
			EditableJobInfo: m.EditableJobInfo{
				Title:           "Product Designer",
				Description:     "Design the seeker experience end to end.",
				PositionType:    "full-time",
				RemotePolicy:    "on-site",
				SalaryMin:       fptr(30000),
				SalaryMax:       fptr(40000),
				SalaryCurrency:  "ZAR",
				City:            "Durban",
				Province:        "KwaZulu-Natal",
				Country:         "South Africa",
				ExperienceLevel: "junior",
				RequiredSkills:  pq.StringArray{"figma"},
				Status:          m.JobStatusActive,
				CategoryID:      &TestCategoryArt.ID,
			},
		},
		{
			CompanyID:  TestCompany1.ID,
			EmployerID: TestEmployer1.UserID,
			PostedAt:   now.AddDate(0, -1, 0),
			EditableJobInfo: m.EditableJobInfo{
				Title:          "Expired Backend Role",
				Description:    "This listing ran out a day ago.",
				PositionType:   "full-time",
				RemotePolicy:   "hybrid",
				SalaryMin:      fptr(55000),
				SalaryMax:      fptr(65000),
				SalaryCurrency: "ZAR",
				City:           "Cape Town",
				Province:       "Western Cape",
				ExpiresAt:      &pastExpiry,
				Status:         m.JobStatusActive,
				CategoryID:     &TestCategoryTech.ID,
			},
		},
	}
	if err := db.Create(&jobs).Error; err != nil {
		return err
	}
	TestJobFeatured, TestJobUrgent, TestJobPlain, TestJobExpired = jobs[0], jobs[1], jobs[2], jobs[3]

	return nil
}

func ptr[T any](v T) *T { return &v }

func fptr(v float64) *float64 { return &v }
