package testutils

import (
	"time"

	"guard-ops-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles every factory for convenient test setup
type FactorySet struct {
	Client          *ClientFactory
	Installation    *InstallationFactory
	ServiceRole     *ServiceRoleFactory
	Guard           *GuardFactory
	OperationalPost *OperationalPostFactory
	ScheduleEntry   *ScheduleEntryFactory
	PendingCoverage *PendingCoverageFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Client:          NewClientFactory(),
		Installation:    NewInstallationFactory(),
		ServiceRole:     NewServiceRoleFactory(),
		Guard:           NewGuardFactory(),
		OperationalPost: NewOperationalPostFactory(),
		ScheduleEntry:   NewScheduleEntryFactory(),
		PendingCoverage: NewPendingCoverageFactory(),
	}
}

// ClientFactory provides methods to create test Client data
type ClientFactory struct{}

// NewClientFactory creates a new ClientFactory
func NewClientFactory() *ClientFactory {
	return &ClientFactory{}
}

// Create creates a test Client with default values
func (f *ClientFactory) Create() *models.Client {
	id := uuid.New()
	return &models.Client{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Client " + id.String()[:8],
		ContactName: "Jane Smith",
		Email:       "ops@testclient.com",
		Phone:       "+1-555-0100",
		Active:      true,
	}
}

// WithName sets a custom name for the client
func (f *ClientFactory) WithName(name string) *models.Client {
	client := f.Create()
	client.Name = name
	return client
}

// InstallationFactory provides methods to create test Installation data
type InstallationFactory struct{}

// NewInstallationFactory creates a new InstallationFactory
func NewInstallationFactory() *InstallationFactory {
	return &InstallationFactory{}
}

// Create creates a test Installation with default values and coordinates
func (f *InstallationFactory) Create(clientID uuid.UUID) *models.Installation {
	lat, lon := 32.0853, 34.7818
	return &models.Installation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClientID:      clientID,
		Name:          "Test Installation",
		Address:       "1 Harbor Road",
		Latitude:      &lat,
		Longitude:     &lon,
		RequiredPosts: 0,
		Active:        true,
	}
}

// WithCoordinates sets custom coordinates
func (f *InstallationFactory) WithCoordinates(clientID uuid.UUID, lat, lon float64) *models.Installation {
	inst := f.Create(clientID)
	inst.Latitude = &lat
	inst.Longitude = &lon
	return inst
}

// WithoutCoordinates clears the coordinates
func (f *InstallationFactory) WithoutCoordinates(clientID uuid.UUID) *models.Installation {
	inst := f.Create(clientID)
	inst.Latitude = nil
	inst.Longitude = nil
	return inst
}

// ServiceRoleFactory provides methods to create test ServiceRole data
type ServiceRoleFactory struct{}

// NewServiceRoleFactory creates a new ServiceRoleFactory
func NewServiceRoleFactory() *ServiceRoleFactory {
	return &ServiceRoleFactory{}
}

// Create creates a cyclic 4x4 role
func (f *ServiceRoleFactory) Create() *models.ServiceRole {
	id := uuid.New()
	return &models.ServiceRole{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:      "4x4 Rotation " + id.String()[:8],
		WorkDays:  4,
		RestDays:  4,
		StartTime: "07:00",
		EndTime:   "19:00",
		Active:    true,
	}
}

// WithPattern sets a custom work/rest cycle
func (f *ServiceRoleFactory) WithPattern(workDays, restDays int) *models.ServiceRole {
	role := f.Create()
	role.WorkDays = workDays
	role.RestDays = restDays
	return role
}

// WeekdaysOnly creates a weekdays-only role
func (f *ServiceRoleFactory) WeekdaysOnly() *models.ServiceRole {
	role := f.Create()
	role.WorkDays = 0
	role.RestDays = 0
	role.WeekdaysOnly = true
	return role
}

// GuardFactory provides methods to create test Guard data
type GuardFactory struct{}

// NewGuardFactory creates a new GuardFactory
func NewGuardFactory() *GuardFactory {
	return &GuardFactory{}
}

// Create creates an available guard with coordinates and some experience
func (f *GuardFactory) Create() *models.Guard {
	lat, lon := 32.0700, 34.7800
	years := 3
	return &models.Guard{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:       "Dana",
		LastName:        "Levi",
		Latitude:        &lat,
		Longitude:       &lon,
		ExperienceYears: &years,
		AvailableNow:    true,
		Active:          true,
	}
}

// WithCoordinates sets custom coordinates
func (f *GuardFactory) WithCoordinates(lat, lon float64) *models.Guard {
	guard := f.Create()
	guard.Latitude = &lat
	guard.Longitude = &lon
	return guard
}

// Unavailable creates a guard who is not currently available
func (f *GuardFactory) Unavailable() *models.Guard {
	guard := f.Create()
	guard.AvailableNow = false
	return guard
}

// OperationalPostFactory provides methods to create test OperationalPost data
type OperationalPostFactory struct{}

// NewOperationalPostFactory creates a new OperationalPostFactory
func NewOperationalPostFactory() *OperationalPostFactory {
	return &OperationalPostFactory{}
}

// Create creates an active post bound to a guard
func (f *OperationalPostFactory) Create(installationID, roleID uuid.UUID, guardID *uuid.UUID) *models.OperationalPost {
	return &models.OperationalPost{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		InstallationID:    installationID,
		ServiceRoleID:     roleID,
		GuardID:           guardID,
		Label:             "Main Gate",
		IsPendingCoverage: guardID == nil,
		Active:            true,
	}
}

// ScheduleEntryFactory provides methods to create test ScheduleEntry data
type ScheduleEntryFactory struct{}

// NewScheduleEntryFactory creates a new ScheduleEntryFactory
func NewScheduleEntryFactory() *ScheduleEntryFactory {
	return &ScheduleEntryFactory{}
}

// Create creates a planned entry for the given date
func (f *ScheduleEntryFactory) Create(postID uuid.UUID, year, month, day, phase int) *models.ScheduleEntry {
	return &models.ScheduleEntry{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PostID:     postID,
		Year:       year,
		Month:      month,
		Day:        day,
		State:      models.EntryStatePlanned,
		CyclePhase: phase,
	}
}

// PendingCoverageFactory provides methods to create test PendingCoverage data
type PendingCoverageFactory struct{}

// NewPendingCoverageFactory creates a new PendingCoverageFactory
func NewPendingCoverageFactory() *PendingCoverageFactory {
	return &PendingCoverageFactory{}
}

// Create creates a pending record detected now
func (f *PendingCoverageFactory) Create(postID uuid.UUID) *models.PendingCoverage {
	return &models.PendingCoverage{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PostID:     postID,
		Reason:     models.CoverageReasonUncovered,
		Priority:   models.CoveragePriorityNormal,
		State:      models.CoverageStatePending,
		DetectedAt: time.Now(),
	}
}
