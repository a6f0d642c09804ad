package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"guard-ops-backend/internal/config"
	"guard-ops-backend/internal/database"
	"guard-ops-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML seed files
type ClientData struct {
	Name        string `yaml:"name"`
	ContactName string `yaml:"contact_name,omitempty"`
	Email       string `yaml:"email,omitempty"`
	Phone       string `yaml:"phone,omitempty"`
}

type ServiceRoleData struct {
	Name         string `yaml:"name"`
	WorkDays     int    `yaml:"work_days"`
	RestDays     int    `yaml:"rest_days"`
	WeekdaysOnly bool   `yaml:"weekdays_only"`
	StartTime    string `yaml:"start_time,omitempty"`
	EndTime      string `yaml:"end_time,omitempty"`
}

type InstallationData struct {
	Name          string   `yaml:"name"`
	ClientName    string   `yaml:"client_name"`
	Address       string   `yaml:"address,omitempty"`
	Latitude      *float64 `yaml:"latitude,omitempty"`
	Longitude     *float64 `yaml:"longitude,omitempty"`
	RequiredPosts int      `yaml:"required_posts"`
}

type GuardData struct {
	FirstName       string   `yaml:"first_name"`
	LastName        string   `yaml:"last_name"`
	Latitude        *float64 `yaml:"latitude,omitempty"`
	Longitude       *float64 `yaml:"longitude,omitempty"`
	ExperienceYears *int     `yaml:"experience_years,omitempty"`
	AvailableNow    bool     `yaml:"available_now"`
}

type PostData struct {
	InstallationName string `yaml:"installation_name"`
	ServiceRoleName  string `yaml:"service_role_name"`
	GuardName        string `yaml:"guard_name,omitempty"` // "First Last"
	Label            string `yaml:"label,omitempty"`
}

// File structures
type ClientsFile struct {
	Clients []ClientData `yaml:"clients"`
}

type ServiceRolesFile struct {
	ServiceRoles []ServiceRoleData `yaml:"service_roles"`
}

type InstallationsFile struct {
	Installations []InstallationData `yaml:"installations"`
}

type GuardsFile struct {
	Guards []GuardData `yaml:"guards"`
}

type PostsFile struct {
	Posts []PostData `yaml:"posts"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent, // suppress SQL noise during data loading
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var clientsFile ClientsFile
	if err := loadYAML(filepath.Join(dataDir, "clients.yaml"), &clientsFile); err != nil {
		return fmt.Errorf("failed to load clients: %w", err)
	}
	var rolesFile ServiceRolesFile
	if err := loadYAML(filepath.Join(dataDir, "service_roles.yaml"), &rolesFile); err != nil {
		return fmt.Errorf("failed to load service roles: %w", err)
	}
	var installationsFile InstallationsFile
	if err := loadYAML(filepath.Join(dataDir, "installations.yaml"), &installationsFile); err != nil {
		return fmt.Errorf("failed to load installations: %w", err)
	}
	var guardsFile GuardsFile
	if err := loadYAML(filepath.Join(dataDir, "guards.yaml"), &guardsFile); err != nil {
		return fmt.Errorf("failed to load guards: %w", err)
	}
	var postsFile PostsFile
	if err := loadYAML(filepath.Join(dataDir, "posts.yaml"), &postsFile); err != nil {
		return fmt.Errorf("failed to load posts: %w", err)
	}

	// Create clients first
	clientMap := make(map[string]*models.Client)
	clientCreated := 0
	for _, data := range clientsFile.Clients {
		client, created, err := createClient(db, data)
		if err != nil {
			return fmt.Errorf("failed to create client %s: %w", data.Name, err)
		}
		clientMap[data.Name] = client
		if created {
			clientCreated++
		}
	}
	log.Printf("Clients: %d created, %d total", clientCreated, len(clientsFile.Clients))

	// Create service roles
	roleMap := make(map[string]*models.ServiceRole)
	roleCreated := 0
	for _, data := range rolesFile.ServiceRoles {
		role, created, err := createServiceRole(db, data)
		if err != nil {
			return fmt.Errorf("failed to create service role %s: %w", data.Name, err)
		}
		roleMap[data.Name] = role
		if created {
			roleCreated++
		}
	}
	log.Printf("Service roles: %d created, %d total", roleCreated, len(rolesFile.ServiceRoles))

	// Create installations
	installationMap := make(map[string]*models.Installation)
	installationCreated := 0
	for _, data := range installationsFile.Installations {
		installation, created, err := createInstallation(db, data, clientMap)
		if err != nil {
			return fmt.Errorf("failed to create installation %s: %w", data.Name, err)
		}
		installationMap[data.Name] = installation
		if created {
			installationCreated++
		}
	}
	log.Printf("Installations: %d created, %d total", installationCreated, len(installationsFile.Installations))

	// Create guards
	guardMap := make(map[string]*models.Guard)
	guardCreated := 0
	for _, data := range guardsFile.Guards {
		guard, created, err := createGuard(db, data)
		if err != nil {
			return fmt.Errorf("failed to create guard %s %s: %w", data.FirstName, data.LastName, err)
		}
		guardMap[data.FirstName+" "+data.LastName] = guard
		if created {
			guardCreated++
		}
	}
	log.Printf("Guards: %d created, %d total", guardCreated, len(guardsFile.Guards))

	// Create posts last, they reference everything else
	postCreated := 0
	for _, data := range postsFile.Posts {
		_, created, err := createPost(db, data, installationMap, roleMap, guardMap)
		if err != nil {
			log.Printf("Warning: failed to create post %s/%s: %v", data.InstallationName, data.Label, err)
			continue
		}
		if created {
			postCreated++
		}
	}
	log.Printf("Posts: %d created, %d total", postCreated, len(postsFile.Posts))

	return nil
}

func loadYAML(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, target)
}

func createClient(db *gorm.DB, data ClientData) (*models.Client, bool, error) {
	var existing models.Client
	if err := db.Where("name = ?", data.Name).First(&existing).Error; err == nil {
		return &existing, false, nil
	}

	client := &models.Client{
		BaseModel:   models.BaseModel{CreatedBy: "seed", UpdatedBy: "seed"},
		Name:        data.Name,
		ContactName: data.ContactName,
		Email:       data.Email,
		Phone:       data.Phone,
		Active:      true,
	}
	if err := db.Create(client).Error; err != nil {
		return nil, false, err
	}
	return client, true, nil
}

func createServiceRole(db *gorm.DB, data ServiceRoleData) (*models.ServiceRole, bool, error) {
	var existing models.ServiceRole
	if err := db.Where("name = ?", data.Name).First(&existing).Error; err == nil {
		return &existing, false, nil
	}

	role := &models.ServiceRole{
		BaseModel:    models.BaseModel{CreatedBy: "seed", UpdatedBy: "seed"},
		Name:         data.Name,
		WorkDays:     data.WorkDays,
		RestDays:     data.RestDays,
		WeekdaysOnly: data.WeekdaysOnly,
		StartTime:    data.StartTime,
		EndTime:      data.EndTime,
		Active:       true,
	}
	if err := db.Create(role).Error; err != nil {
		return nil, false, err
	}
	return role, true, nil
}

func createInstallation(db *gorm.DB, data InstallationData, clients map[string]*models.Client) (*models.Installation, bool, error) {
	client, ok := clients[data.ClientName]
	if !ok {
		return nil, false, fmt.Errorf("unknown client %q", data.ClientName)
	}

	var existing models.Installation
	if err := db.Where("client_id = ? AND name = ?", client.ID, data.Name).First(&existing).Error; err == nil {
		return &existing, false, nil
	}

	installation := &models.Installation{
		BaseModel:     models.BaseModel{CreatedBy: "seed", UpdatedBy: "seed"},
		ClientID:      client.ID,
		Name:          data.Name,
		Address:       data.Address,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		RequiredPosts: data.RequiredPosts,
		Active:        true,
	}
	if err := db.Create(installation).Error; err != nil {
		return nil, false, err
	}
	return installation, true, nil
}

func createGuard(db *gorm.DB, data GuardData) (*models.Guard, bool, error) {
	var existing models.Guard
	if err := db.Where("first_name = ? AND last_name = ?", data.FirstName, data.LastName).First(&existing).Error; err == nil {
		return &existing, false, nil
	}

	guard := &models.Guard{
		BaseModel:       models.BaseModel{CreatedBy: "seed", UpdatedBy: "seed"},
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		ExperienceYears: data.ExperienceYears,
		AvailableNow:    data.AvailableNow,
		Active:          true,
	}
	if err := db.Create(guard).Error; err != nil {
		return nil, false, err
	}
	return guard, true, nil
}

func createPost(db *gorm.DB, data PostData, installations map[string]*models.Installation, roles map[string]*models.ServiceRole, guards map[string]*models.Guard) (*models.OperationalPost, bool, error) {
	installation, ok := installations[data.InstallationName]
	if !ok {
		return nil, false, fmt.Errorf("unknown installation %q", data.InstallationName)
	}
	role, ok := roles[data.ServiceRoleName]
	if !ok {
		return nil, false, fmt.Errorf("unknown service role %q", data.ServiceRoleName)
	}

	var existing models.OperationalPost
	if err := db.Where("installation_id = ? AND label = ?", installation.ID, data.Label).First(&existing).Error; err == nil {
		return &existing, false, nil
	}

	post := &models.OperationalPost{
		BaseModel:      models.BaseModel{CreatedBy: "seed", UpdatedBy: "seed"},
		InstallationID: installation.ID,
		ServiceRoleID:  role.ID,
		Label:          data.Label,
		Active:         true,
	}
	if data.GuardName != "" {
		guard, ok := guards[data.GuardName]
		if !ok {
			return nil, false, fmt.Errorf("unknown guard %q", data.GuardName)
		}
		post.GuardID = &guard.ID
	}
	post.IsPendingCoverage = post.GuardID == nil

	if err := db.Create(post).Error; err != nil {
		return nil, false, err
	}
	return post, true, nil
}
