package repository

import "aspcranes/models"

type JobRepository interface {
	CreateJob(job *models.Job) error
	GetJobs(filters map[string]interface{}) ([]*models.Job, error)
	GetJobByID(id string) (*models.Job, error)
	UpdateJobStatus(id, status string) error
}
