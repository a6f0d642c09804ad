package repository

import (
	"guard-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleEntryRepository handles database operations for schedule entries
type ScheduleEntryRepository struct {
	db *gorm.DB
}

// NewScheduleEntryRepository creates a new schedule entry repository
func NewScheduleEntryRepository(db *gorm.DB) *ScheduleEntryRepository {
	return &ScheduleEntryRepository{db: db}
}

// Create creates a new schedule entry
func (r *ScheduleEntryRepository) Create(entry *models.ScheduleEntry) error {
	return r.db.Create(entry).Error
}

// GetByID retrieves a schedule entry by ID
func (r *ScheduleEntryRepository) GetByID(id uuid.UUID) (*models.ScheduleEntry, error) {
	var entry models.ScheduleEntry
	err := r.db.First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetByPostDate retrieves the single entry of a post for one calendar day
func (r *ScheduleEntryRepository) GetByPostDate(postID uuid.UUID, year, month, day int) (*models.ScheduleEntry, error) {
	var entry models.ScheduleEntry
	err := r.db.First(&entry,
		"post_id = ? AND year = ? AND month = ? AND day = ?",
		postID, year, month, day).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetMonth retrieves all entries of a post for a month, ordered by day
func (r *ScheduleEntryRepository) GetMonth(postID uuid.UUID, year, month int) ([]models.ScheduleEntry, error) {
	var entries []models.ScheduleEntry
	err := r.db.
		Where("post_id = ? AND year = ? AND month = ?", postID, year, month).
		Order("day ASC").
		Find(&entries).Error
	return entries, err
}

// GetLastOfMonth retrieves the entry with the highest day number of a post's
// month, used to carry the cycle phase across month boundaries.
func (r *ScheduleEntryRepository) GetLastOfMonth(postID uuid.UUID, year, month int) (*models.ScheduleEntry, error) {
	var entry models.ScheduleEntry
	err := r.db.
		Where("post_id = ? AND year = ? AND month = ?", postID, year, month).
		Order("day DESC").
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetForDate retrieves the entries of many posts for one calendar day
func (r *ScheduleEntryRepository) GetForDate(postIDs []uuid.UUID, year, month, day int) ([]models.ScheduleEntry, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var entries []models.ScheduleEntry
	err := r.db.
		Where("post_id IN ? AND year = ? AND month = ? AND day = ?", postIDs, year, month, day).
		Find(&entries).Error
	return entries, err
}

// Update updates a schedule entry
func (r *ScheduleEntryRepository) Update(entry *models.ScheduleEntry) error {
	return r.db.Save(entry).Error
}

// DeleteMonth removes all entries of a post for a month. Administrative
// reset only; normal operation never deletes entries.
func (r *ScheduleEntryRepository) DeleteMonth(postID uuid.UUID, year, month int) error {
	return r.db.
		Where("post_id = ? AND year = ? AND month = ?", postID, year, month).
		Delete(&models.ScheduleEntry{}).Error
}

// SaveMonth persists a full month of generated entries in one transaction.
// Existing rows are updated in place, new rows inserted, so regeneration is
// idempotent and safe to retry.
func (r *ScheduleEntryRepository) SaveMonth(entries []*models.ScheduleEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, entry := range entries {
			if entry.ID == uuid.Nil {
				if err := tx.Create(entry).Error; err != nil {
					return err
				}
			} else {
				if err := tx.Save(entry).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
