package repository

import (
	"experimenthub/internal/models"

	"gorm.io/gorm"
)

type ExperimentRepository interface {
	Create(experiment *models.Experiment) error
	FindAll() ([]models.Experiment, error)
	FindByID(id uint) (*models.Experiment, error)
	Delete(id uint) error
}

type experimentRepository struct {
	db *gorm.DB
}

func NewExperimentRepository(db *gorm.DB) ExperimentRepository {
	return &experimentRepository{
		db: db,
	}
}

func (er *experimentRepository) Create(experiment *models.Experiment) error {
	return er.db.Create(experiment).Error
}

func (er *experimentRepository) FindAll() ([]models.Experiment, error) {
	var experiments []models.Experiment
	err := er.db.Order("uploaded_at DESC").Find(&experiments).Error
	return experiments, err
}

func (er *experimentRepository) FindByID(id uint) (*models.Experiment, error) {
	var experiment models.Experiment
	err := er.db.First(&experiment, id).Error
	if err != nil {
		return nil, err
	}
	return &experiment, nil
}

func (er *experimentRepository) Delete(id uint) error {
	return er.db.Delete(&models.Experiment{}, id).Error
}
