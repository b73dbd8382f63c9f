package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"sales-portal-backend/internal/config"
	"sales-portal-backend/internal/database"
	"sales-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// LeadData describes one explicit lead in the seed file
type LeadData struct {
	ID      string `yaml:"id,omitempty"`
	Name    string `yaml:"name"`
	Company string `yaml:"company"`
	Email   string `yaml:"email,omitempty"`
	Source  string `yaml:"source,omitempty"`
	Score   int    `yaml:"score"`
	Status  string `yaml:"status,omitempty"`
}

// SeedFile is the optional YAML seed configuration. Explicit leads are created
// as given; GeneratedCount additional leads are generated on top of them.
type SeedFile struct {
	GeneratedCount int        `yaml:"generated_count"`
	Leads          []LeadData `yaml:"leads"`
}

const defaultGeneratedCount = 100

var (
	firstNames = []string{"John", "Jane", "Mike", "Sarah", "David", "Lisa", "Chris", "Anna"}
	lastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis"}

	companyPrefixes   = []string{"Tech", "Digital", "Global", "Smart", "Future", "Next", "Pro", "Elite"}
	companyIndustries = []string{"Software", "Data", "Cloud", "AI", "Mobile", "Web", "Security", "Analytics"}
	companySuffixes   = []string{"Corp", "Inc", "LLC", "Solutions", "Systems", "Group", "Labs", "Works"}

	leadSources = []string{"Website", "Referral", "Cold Call", "LinkedIn", "Email Campaign", "Trade Show"}

	leadStatuses = []models.LeadStatus{
		models.LeadStatusNew,
		models.LeadStatusContacted,
		models.LeadStatusQualified,
		models.LeadStatusUnqualified,
	}
)

func main() {
	log.Println("Loading initial lead data...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seed, err := loadSeedFile("scripts/data/leads.yaml")
	if err != nil {
		log.Fatalf("Failed to load seed file: %v", err)
	}

	created, err := seedLeads(db, seed)
	if err != nil {
		log.Fatalf("Failed to seed leads: %v", err)
	}

	log.Printf("Leads: %d created", created)
	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadSeedFile reads the optional seed configuration. A missing file means
// "generate the default batch".
func loadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &SeedFile{GeneratedCount: defaultGeneratedCount}, nil
		}
		return nil, err
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if seed.GeneratedCount < 0 {
		seed.GeneratedCount = 0
	}
	return &seed, nil
}

func seedLeads(db *gorm.DB, seed *SeedFile) (int, error) {
	created := 0

	for _, leadData := range seed.Leads {
		lead, err := buildExplicitLead(leadData)
		if err != nil {
			return created, err
		}
		wasCreated, err := createLead(db, lead)
		if err != nil {
			return created, fmt.Errorf("failed to create lead %s: %w", lead.Name, err)
		}
		if wasCreated {
			created++
		}
	}

	for i := 0; i < seed.GeneratedCount; i++ {
		wasCreated, err := createLead(db, generateLead())
		if err != nil {
			return created, fmt.Errorf("failed to create generated lead: %w", err)
		}
		if wasCreated {
			created++
		}
	}

	return created, nil
}

func buildExplicitLead(data LeadData) (*models.Lead, error) {
	status := models.LeadStatusNew
	if data.Status != "" {
		status = models.LeadStatus(data.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("lead %s has unknown status %q", data.Name, data.Status)
		}
	}
	if data.Score < 0 || data.Score > 100 {
		return nil, fmt.Errorf("lead %s has out-of-range score %d", data.Name, data.Score)
	}

	lead := &models.Lead{
		ID:      data.ID,
		Name:    data.Name,
		Company: data.Company,
		Email:   data.Email,
		Source:  data.Source,
		Score:   data.Score,
		Status:  status,
	}
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	if lead.Email == "" {
		lead.Email = emailFor(lead.Name)
	}
	if lead.Source == "" {
		lead.Source = pick(leadSources)
	}
	return lead, nil
}

func generateLead() *models.Lead {
	first := pick(firstNames)
	last := pick(lastNames)
	name := first + " " + last

	return &models.Lead{
		ID:      uuid.NewString(),
		Name:    name,
		Company: pick(companyPrefixes) + " " + pick(companyIndustries) + " " + pick(companySuffixes),
		Email:   emailFor(name),
		Source:  pick(leadSources),
		Score:   rand.Intn(101),
		Status:  leadStatuses[rand.Intn(len(leadStatuses))],
	}
}

// createLead inserts the lead unless a lead with the same email already exists
func createLead(db *gorm.DB, lead *models.Lead) (bool, error) {
	var existing models.Lead
	if err := db.Where("email = ?", lead.Email).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(lead).Error; err != nil {
				return false, err
			}
			return true, nil
		}
		return false, err
	}
	return false, nil
}

func emailFor(name string) string {
	return fmt.Sprintf("%s%d@example.com",
		strings.ReplaceAll(strings.ToLower(name), " ", "."),
		rand.Intn(100),
	)
}

func pick(pool []string) string {
	return pool[rand.Intn(len(pool))]
}
