package repo

import (
	"errors"

	"gorm.io/gorm"

	"repair-tracker/internal/domain"
)

type RepairJobRepo struct{ db *gorm.DB }

func NewRepairJobRepo(db *gorm.DB) *RepairJobRepo { return &RepairJobRepo{db: db} }

// ListByOwner returns the caller's jobs newest first; id breaks timestamp ties
// so equal-timestamp rows come back in reverse insertion order.
func (r *RepairJobRepo) ListByOwner(ownerID uint) ([]domain.RepairJob, error) {
	jobs := []domain.RepairJob{}
	err := r.db.
		Where("user_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&jobs).Error
	return jobs, err
}

// FindOwned returns (nil, nil) when the job does not exist or belongs to a
// different owner; callers must not distinguish the two cases.
func (r *RepairJobRepo) FindOwned(ownerID, jobID uint) (*domain.RepairJob, error) {
	var j domain.RepairJob
	err := r.db.First(&j, "id = ? AND user_id = ?", jobID, ownerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &j, err
}

func (r *RepairJobRepo) Create(j *domain.RepairJob) error { return r.db.Create(j).Error }

// Update saves the full row; gorm refreshes updated_at even when no field
// value actually changed.
func (r *RepairJobRepo) Update(j *domain.RepairJob) error { return r.db.Save(j).Error }

func (r *RepairJobRepo) DeleteOwned(ownerID, jobID uint) error {
	res := r.db.Where("id = ? AND user_id = ?", jobID, ownerID).Delete(&domain.RepairJob{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
