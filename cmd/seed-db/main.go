// Command-line tool to seed the database with demo categories, companies,
// employer accounts and job listings. Safe to run repeatedly.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"

	_ "github.com/joho/godotenv/autoload"

	"OpenHire-backend/internal/database"
	"OpenHire-backend/internal/model"
	"OpenHire-backend/internal/utilities"
)

// DemoPassword is the login password for every seeded demo account.
const DemoPassword = "password123"

func ptr[T any](v T) *T { return &v }

func main() {
	cfg, err := database.FromEnv()
	if err != nil {
		log.Fatalf("Invalid database configuration: %v", err)
	}
	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}
	defer db.Close()

	fmt.Println("Seeding database...")

	categories := seedCategories(db)
	companies := seedCompanies(db)
	employers := seedEmployers(db, companies)
	jobs := seedJobs(db, categories, companies, employers)

	fmt.Println("Database seeded successfully!")
	fmt.Printf("Created %d categories\n", len(categories))
	fmt.Printf("Created %d companies\n", len(companies))
	fmt.Printf("Created %d employers\n", len(employers))
	fmt.Printf("Created %d jobs\n", len(jobs))
}

func seedCategories(db *database.DB) []model.JobCategory {
	categories := []model.JobCategory{
		{Name: "Technology", Slug: "technology", Icon: "💻", Color: "bg-blue-100 text-blue-800"},
		{Name: "Marketing", Slug: "marketing", Icon: "📈", Color: "bg-green-100 text-green-800"},
		{Name: "Design", Slug: "design", Icon: "🎨", Color: "bg-purple-100 text-purple-800"},
		{Name: "Sales", Slug: "sales", Icon: "💼", Color: "bg-orange-100 text-orange-800"},
		{Name: "Finance", Slug: "finance", Icon: "💰", Color: "bg-yellow-100 text-yellow-800"},
		{Name: "Healthcare", Slug: "healthcare", Icon: "🏥", Color: "bg-red-100 text-red-800"},
	}
	for i := range categories {
		if err := db.Where("name = ?", categories[i].Name).FirstOrCreate(&categories[i]).Error; err != nil {
			log.Fatalf("failed to seed category %q: %v", categories[i].Name, err)
		}
	}
	return categories
}

func seedCompanies(db *database.DB) []model.Company {
	companies := []model.Company{
		{
			Name: "Tech Solutions Inc",
			EditableCompanyInfo: model.EditableCompanyInfo{
				Description:   "Leading technology company specializing in innovative software solutions",
				Industry:      "Technology",
				City:          "Cape Town",
				Province:      "Western Cape",
				Country:       "South Africa",
				EmployeeCount: ptr(250),
				FoundedYear:   ptr(2015),
			},
			IsVerified:         true,
			VerificationStatus: model.StatusVerified,
		},
		{
			Name: "AI Innovations",
			EditableCompanyInfo: model.EditableCompanyInfo{
				Description:   "Cutting-edge AI and machine learning solutions for businesses",
				Industry:      "Technology",
				City:          "Johannesburg",
				Province:      "Gauteng",
				Country:       "South Africa",
				EmployeeCount: ptr(150),
				FoundedYear:   ptr(2018),
			},
			IsVerified:         true,
			VerificationStatus: model.StatusVerified,
		},
		{
			Name: "Startup Hub",
			EditableCompanyInfo: model.EditableCompanyInfo{
				Description:   "Accelerating startup growth through mentorship and funding",
				Industry:      "Venture Capital",
				City:          "Durban",
				Province:      "KwaZulu-Natal",
				Country:       "South Africa",
				EmployeeCount: ptr(50),
				FoundedYear:   ptr(2020),
			},
			VerificationStatus: model.StatusPending,
		},
		{
			Name: "Design Studio",
			EditableCompanyInfo: model.EditableCompanyInfo{
				Description:   "Creative design agency specializing in digital experiences",
				Industry:      "Design",
				City:          "Cape Town",
				Province:      "Western Cape",
				Country:       "South Africa",
				EmployeeCount: ptr(30),
				FoundedYear:   ptr(2019),
			},
			IsVerified:         true,
			VerificationStatus: model.StatusVerified,
		},
		{
			Name: "CloudTech",
			EditableCompanyInfo: model.EditableCompanyInfo{
				Description:   "Cloud infrastructure and DevOps solutions provider",
				Industry:      "Technology",
				City:          "Johannesburg",
				Province:      "Gauteng",
				Country:       "South Africa",
				EmployeeCount: ptr(80),
				FoundedYear:   ptr(2017),
			},
			IsVerified:         true,
			VerificationStatus: model.StatusVerified,
		},
		{
			Name: "Growth Agency",
			EditableCompanyInfo: model.EditableCompanyInfo{
				Description:   "Digital marketing and growth hacking agency",
				Industry:      "Marketing",
				City:          "Durban",
				Province:      "KwaZulu-Natal",
				Country:       "South Africa",
				EmployeeCount: ptr(40),
				FoundedYear:   ptr(2021),
			},
			VerificationStatus: model.StatusPending,
		},
	}
	for i := range companies {
		if err := db.Where("name = ?", companies[i].Name).FirstOrCreate(&companies[i]).Error; err != nil {
			log.Fatalf("failed to seed company %q: %v", companies[i].Name, err)
		}
	}
	return companies
}

func seedEmployers(db *database.DB, companies []model.Company) []model.Employer {
	hashed, err := utilities.HashPassword(DemoPassword)
	if err != nil {
		log.Fatalf("failed to hash demo password: %v", err)
	}

	seeds := []struct {
		username string
		email    string
		fullName string
		company  *model.Company
	}{
		{"john.smith", "employer@techsolutions.com", "John Smith", &companies[0]},
		{"sarah.johnson", "employer@aiinnovations.com", "Sarah Johnson", &companies[1]},
	}

	employers := make([]model.Employer, 0, len(seeds))
	for _, s := range seeds {
		user := model.User{
			Username: s.username,
			Email:    ptr(s.email),
			Password: hashed,
			Role:     model.RoleEmployer,
		}
		if err := db.Where("username = ?", s.username).FirstOrCreate(&user).Error; err != nil {
			log.Fatalf("failed to seed user %q: %v", s.username, err)
		}

		employer := model.Employer{
			UserID:    user.ID,
			FullName:  s.fullName,
			CompanyID: &s.company.ID,
		}
		if err := db.Where("user_id = ?", user.ID).FirstOrCreate(&employer).Error; err != nil {
			log.Fatalf("failed to seed employer %q: %v", s.fullName, err)
		}
		employers = append(employers, employer)
	}
	return employers
}

func seedJobs(db *database.DB, categories []model.JobCategory, companies []model.Company, employers []model.Employer) []model.Job {
	var count int64
	if err := db.Model(&model.Job{}).Count(&count).Error; err != nil {
		log.Fatalf("failed to count jobs: %v", err)
	}
	if count > 0 {
		fmt.Println("Jobs already present, skipping job seed.")
		return nil
	}

	now := time.Now()
	jobs := []model.Job{
		{
			CompanyID:  companies[0].ID,
			EmployerID: employers[0].UserID,
			EditableJobInfo: model.EditableJobInfo{
				Title:             "Senior Frontend Developer",
				Description:       "We are looking for an experienced frontend developer to join our dynamic team. You will be responsible for building responsive web applications using React, TypeScript, and modern CSS frameworks.",
				PositionType:      "full_time",
				RemotePolicy:      "hybrid",
				SalaryMin:         ptr(800000.0),
				SalaryMax:         ptr(1200000.0),
				SalaryCurrency:    "ZAR",
				City:              "Cape Town",
				Province:          "Western Cape",
				Country:           "South Africa",
				ExperienceLevel:   "senior",
				RequiredSkills:    pq.StringArray{"React", "TypeScript", "JavaScript", "CSS", "HTML", "Git"},
				PreferredSkills:   pq.StringArray{"Next.js", "Node.js", "GraphQL", "Docker"},
				RequiredDocuments: pq.StringArray{"CV", "Portfolio", "ID Document"},
				Status:            model.JobStatusActive,
				IsFeatured:        true,
				ExpiresAt:         ptr(now.AddDate(0, 2, 0)),
				CategoryID:        &categories[0].ID,
			},
		},
		{
			CompanyID:  companies[1].ID,
			EmployerID: employers[1].UserID,
			EditableJobInfo: model.EditableJobInfo{
				Title:             "Data Scientist",
				Description:       "Join our data science team to work on cutting-edge AI projects. We are seeking a talented data scientist with experience in machine learning, statistical analysis, and data visualization.",
				PositionType:      "full_time",
				RemotePolicy:      "remote",
				SalaryMin:         ptr(900000.0),
				SalaryMax:         ptr(1400000.0),
				SalaryCurrency:    "ZAR",
				City:              "Johannesburg",
				Province:          "Gauteng",
				Country:           "South Africa",
				ExperienceLevel:   "mid",
				RequiredSkills:    pq.StringArray{"Python", "Machine Learning", "Statistics", "SQL"},
				PreferredSkills:   pq.StringArray{"TensorFlow", "PyTorch", "Pandas"},
				RequiredDocuments: pq.StringArray{"CV", "Academic Transcripts", "References"},
				Status:            model.JobStatusActive,
				IsUrgent:          true,
				ExpiresAt:         ptr(now.AddDate(0, 1, 15)),
				CategoryID:        &categories[0].ID,
			},
		},
		{
			CompanyID:  companies[2].ID,
			EmployerID: employers[0].UserID,
			EditableJobInfo: model.EditableJobInfo{
				Title:             "Product Manager",
				Description:       "Lead product development for our innovative startup. We are looking for a product manager with experience in agile methodologies and a track record of launching successful digital products.",
				PositionType:      "full_time",
				RemotePolicy:      "onsite",
				SalaryMin:         ptr(700000.0),
				SalaryMax:         ptr(1000000.0),
				SalaryCurrency:    "ZAR",
				City:              "Durban",
				Province:          "KwaZulu-Natal",
				Country:           "South Africa",
				ExperienceLevel:   "mid",
				RequiredSkills:    pq.StringArray{"Product Management", "Agile", "Scrum", "Analytics"},
				PreferredSkills:   pq.StringArray{"JIRA", "Figma", "A/B Testing"},
				RequiredDocuments: pq.StringArray{"CV", "Portfolio", "Case Studies"},
				Status:            model.JobStatusActive,
				IsFeatured:        true,
				ExpiresAt:         ptr(now.AddDate(0, 1, 0)),
				CategoryID:        &categories[3].ID,
			},
		},
		{
			CompanyID:  companies[3].ID,
			EmployerID: employers[1].UserID,
			EditableJobInfo: model.EditableJobInfo{
				Title:             "UX Designer",
				Description:       "We are seeking a creative UX designer to join our design team. You will be responsible for creating user-centered designs for web and mobile applications.",
				PositionType:      "full_time",
				RemotePolicy:      "hybrid",
				SalaryMin:         ptr(600000.0),
				SalaryMax:         ptr(850000.0),
				SalaryCurrency:    "ZAR",
				City:              "Cape Town",
				Province:          "Western Cape",
				Country:           "South Africa",
				ExperienceLevel:   "mid",
				RequiredSkills:    pq.StringArray{"UX Design", "UI Design", "Figma", "Prototyping"},
				PreferredSkills:   pq.StringArray{"User Research", "Design Systems"},
				RequiredDocuments: pq.StringArray{"CV", "Portfolio"},
				Status:            model.JobStatusActive,
				ExpiresAt:         ptr(now.AddDate(0, 1, 0)),
				CategoryID:        &categories[2].ID,
			},
		},
		{
			CompanyID:  companies[4].ID,
			EmployerID: employers[0].UserID,
			EditableJobInfo: model.EditableJobInfo{
				Title:             "DevOps Engineer",
				Description:       "Looking for a DevOps engineer with experience in cloud infrastructure, CI/CD pipelines, and containerization.",
				PositionType:      "full_time",
				RemotePolicy:      "remote",
				SalaryMin:         ptr(750000.0),
				SalaryMax:         ptr(1100000.0),
				SalaryCurrency:    "ZAR",
				City:              "Johannesburg",
				Province:          "Gauteng",
				Country:           "South Africa",
				ExperienceLevel:   "mid",
				RequiredSkills:    pq.StringArray{"DevOps", "AWS", "Docker", "Kubernetes", "CI/CD"},
				PreferredSkills:   pq.StringArray{"Terraform", "Ansible", "Jenkins"},
				RequiredDocuments: pq.StringArray{"CV", "Certifications"},
				Status:            model.JobStatusActive,
				IsUrgent:          true,
				ExpiresAt:         ptr(now.AddDate(0, 1, 10)),
				CategoryID:        &categories[0].ID,
			},
		},
		{
			CompanyID:  companies[5].ID,
			EmployerID: employers[1].UserID,
			EditableJobInfo: model.EditableJobInfo{
				Title:             "Marketing Manager",
				Description:       "Join our marketing team to drive growth for our clients. We are looking for a marketing manager with experience in digital marketing, content strategy, and team leadership.",
				PositionType:      "full_time",
				RemotePolicy:      "hybrid",
				SalaryMin:         ptr(550000.0),
				SalaryMax:         ptr(800000.0),
				SalaryCurrency:    "ZAR",
				City:              "Durban",
				Province:          "KwaZulu-Natal",
				Country:           "South Africa",
				ExperienceLevel:   "mid",
				RequiredSkills:    pq.StringArray{"Digital Marketing", "Content Strategy", "SEO", "Analytics"},
				PreferredSkills:   pq.StringArray{"Google Ads", "Email Marketing"},
				RequiredDocuments: pq.StringArray{"CV", "Portfolio", "Case Studies"},
				Status:            model.JobStatusActive,
				ExpiresAt:         ptr(now.AddDate(0, 0, 20)),
				CategoryID:        &categories[1].ID,
			},
		},
	}

	for i := range jobs {
		if err := db.Create(&jobs[i]).Error; err != nil {
			log.Fatalf("failed to seed job %q: %v", jobs[i].Title, err)
		}
	}
	return jobs
}
