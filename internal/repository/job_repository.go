package repository

import (
	"campus_link_backend/internal/model"

	"gorm.io/gorm"
)

type JobStore interface {
	CreatePosting(p *model.JobPosting) error
	FindPosting(id uint) (*model.JobPosting, error)
	UpdatePosting(p *model.JobPosting) error
	DeletePosting(id uint) error
	ListPostings(page, limit int, status model.PostingStatus, query string) ([]model.JobPosting, int64, error)
	ListPostingsByCompany(companyID uint) ([]model.JobPosting, error)
	CreateApplication(a *model.JobApplication) error
	FindApplication(id uint) (*model.JobApplication, error)
	HasApplied(postingID, studentID uint) (bool, error)
	ListApplicationsForPosting(postingID uint) ([]model.JobApplication, error)
	ListApplicationsByStudent(studentID uint) ([]model.JobApplication, error)
	UpdateApplicationStatus(id uint, status model.ApplicationStatus) error
	DeleteApplication(id uint) error
	CountOpenPostings() (int64, error)
	CountApplications() (int64, error)
}

type JobRepository struct {
	DB *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{DB: db}
}

func (r *JobRepository) CreatePosting(p *model.JobPosting) error {
	return r.DB.Create(p).Error
}

func (r *JobRepository) FindPosting(id uint) (*model.JobPosting, error) {
	var posting model.JobPosting
	err := r.DB.Preload("Company").First(&posting, id).Error
	return &posting, err
}

func (r *JobRepository) UpdatePosting(p *model.JobPosting) error {
	return r.DB.Save(p).Error
}

func (r *JobRepository) DeletePosting(id uint) error {
	return r.DB.Delete(&model.JobPosting{}, id).Error
}

func (r *JobRepository) ListPostings(page, limit int, status model.PostingStatus, query string) ([]model.JobPosting, int64, error) {
	var postings []model.JobPosting
	var total int64

	db := r.DB.Model(&model.JobPosting{})
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if query != "" {
		searchTerm := "%" + query + "%"
		db = db.Where("title LIKE ? OR location LIKE ?", searchTerm, searchTerm)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Company").
		Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&postings).Error
	return postings, total, err
}

func (r *JobRepository) ListPostingsByCompany(companyID uint) ([]model.JobPosting, error) {
	var postings []model.JobPosting
	err := r.DB.Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&postings).Error
	return postings, err
}

func (r *JobRepository) CreateApplication(a *model.JobApplication) error {
	return r.DB.Create(a).Error
}

func (r *JobRepository) FindApplication(id uint) (*model.JobApplication, error) {
	var app model.JobApplication
	err := r.DB.Preload("Posting").Preload("Student").First(&app, id).Error
	return &app, err
}

func (r *JobRepository) HasApplied(postingID, studentID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.JobApplication{}).
		Where("posting_id = ? AND student_id = ?", postingID, studentID).
		Count(&count).Error
	return count > 0, err
}

func (r *JobRepository) ListApplicationsForPosting(postingID uint) ([]model.JobApplication, error) {
	var apps []model.JobApplication
	err := r.DB.Preload("Student").
		Where("posting_id = ?", postingID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *JobRepository) ListApplicationsByStudent(studentID uint) ([]model.JobApplication, error) {
	var apps []model.JobApplication
	err := r.DB.Preload("Posting").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *JobRepository) UpdateApplicationStatus(id uint, status model.ApplicationStatus) error {
	return r.DB.Model(&model.JobApplication{}).Where("id = ?", id).Update("status", status).Error
}

func (r *JobRepository) DeleteApplication(id uint) error {
	return r.DB.Delete(&model.JobApplication{}, id).Error
}

func (r *JobRepository) CountOpenPostings() (int64, error) {
	var count int64
	err := r.DB.Model(&model.JobPosting{}).Where("status = ?", model.PostingOpen).Count(&count).Error
	return count, err
}

func (r *JobRepository) CountApplications() (int64, error) {
	var count int64
	err := r.DB.Model(&model.JobApplication{}).Count(&count).Error
	return count, err
}
