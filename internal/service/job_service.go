package service

import (
	"campus_link_backend/internal/model"
	"campus_link_backend/internal/repository"
	"campus_link_backend/internal/util"
	"campus_link_backend/pkg/logger"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type JobService struct {
	JobRepo repository.JobStore
	Storage *StorageService
}

func NewJobService(jobRepo repository.JobStore, storage *StorageService) *JobService {
	return &JobService{
		JobRepo: jobRepo,
		Storage: storage,
	}
}

type PostingRequest struct {
	Title          string     `json:"title" binding:"required,max=200"`
	Description    string     `json:"description" binding:"required"`
	Location       string     `json:"location" binding:"omitempty,max=100"`
	EmploymentType string     `json:"employment_type" binding:"omitempty,max=50"`
	SalaryMin      int        `json:"salary_min" binding:"omitempty,min=0"`
	SalaryMax      int        `json:"salary_max" binding:"omitempty,min=0"`
	Deadline       *time.Time `json:"deadline"`
}

// ApplicationUpload carries one uploaded file for an application.
type ApplicationUpload struct {
	Filename    string
	Reader      io.Reader
	Size        int64
	ContentType string
}

func (s *JobService) CreatePosting(companyID uint, req PostingRequest) (*model.JobPosting, error) {
	posting := &model.JobPosting{
		CompanyID:      companyID,
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		Status:         model.PostingOpen,
		Deadline:       req.Deadline,
	}
	if err := s.JobRepo.CreatePosting(posting); err != nil {
		return nil, err
	}
	return posting, nil
}

func (s *JobService) GetPosting(id uint) (*model.JobPosting, error) {
	posting, err := s.JobRepo.FindPosting(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPostingNotFound
		}
		return nil, err
	}
	return posting, nil
}

func (s *JobService) UpdatePosting(companyID, id uint, req PostingRequest, status model.PostingStatus) (*model.JobPosting, error) {
	posting, err := s.GetPosting(id)
	if err != nil {
		return nil, err
	}
	if posting.CompanyID != companyID {
		return nil, util.NewForbiddenError("posting belongs to another company")
	}

	posting.Title = req.Title
	posting.Description = req.Description
	posting.Location = req.Location
	posting.EmploymentType = req.EmploymentType
	posting.SalaryMin = req.SalaryMin
	posting.SalaryMax = req.SalaryMax
	posting.Deadline = req.Deadline
	if status != "" {
		posting.Status = status
	}
	if err := s.JobRepo.UpdatePosting(posting); err != nil {
		return nil, err
	}
	return posting, nil
}

func (s *JobService) DeletePosting(companyID, id uint) error {
	posting, err := s.GetPosting(id)
	if err != nil {
		return err
	}
	if posting.CompanyID != companyID {
		return util.NewForbiddenError("posting belongs to another company")
	}
	return s.JobRepo.DeletePosting(id)
}

func (s *JobService) ListPostings(page, limit int, status model.PostingStatus, query string) ([]model.JobPosting, int64, error) {
	return s.JobRepo.ListPostings(page, limit, status, query)
}

// Apply uploads resume and cover letter, then records the application. The
// files belong to the application record from this point on.
func (s *JobService) Apply(ctx context.Context, studentID, postingID uint, resume, coverLetter ApplicationUpload) (*model.JobApplication, error) {
	posting, err := s.GetPosting(postingID)
	if err != nil {
		return nil, err
	}
	if posting.Status != model.PostingOpen {
		return nil, util.ErrPostingClosed
	}
	if posting.Deadline != nil && time.Now().After(*posting.Deadline) {
		return nil, util.ErrPostingClosed
	}

	applied, err := s.JobRepo.HasApplied(postingID, studentID)
	if err != nil {
		return nil, err
	}
	if applied {
		return nil, util.ErrAlreadyApplied
	}

	resumePath := applicationObjectName(postingID, studentID, "resume", resume.Filename)
	if _, err := s.Storage.Upload(ctx, resumePath, resume.Reader, resume.Size, resume.ContentType); err != nil {
		return nil, err
	}

	coverPath := applicationObjectName(postingID, studentID, "cover", coverLetter.Filename)
	if _, err := s.Storage.Upload(ctx, coverPath, coverLetter.Reader, coverLetter.Size, coverLetter.ContentType); err != nil {
		// do not keep an orphaned resume behind a failed application
		if delErr := s.Storage.Delete(ctx, resumePath); delErr != nil {
			return nil, fmt.Errorf("cover letter upload failed: %w (resume cleanup also failed: %v)", err, delErr)
		}
		return nil, err
	}

	app := &model.JobApplication{
		PostingID:       postingID,
		StudentID:       studentID,
		Status:          model.ApplicationPending,
		ResumePath:      resumePath,
		CoverLetterPath: coverPath,
	}
	if err := s.JobRepo.CreateApplication(app); err != nil {
		for _, path := range []string{resumePath, coverPath} {
			if delErr := s.Storage.Delete(ctx, path); delErr != nil {
				logger.Log.Warn("orphaned application file left behind",
					zap.String("object", path), zap.Error(delErr))
			}
		}
		return nil, err
	}
	return app, nil
}

func (s *JobService) ListApplicationsForPosting(companyID, postingID uint) ([]model.JobApplication, error) {
	posting, err := s.GetPosting(postingID)
	if err != nil {
		return nil, err
	}
	if posting.CompanyID != companyID {
		return nil, util.NewForbiddenError("posting belongs to another company")
	}
	return s.JobRepo.ListApplicationsForPosting(postingID)
}

func (s *JobService) ListMyApplications(studentID uint) ([]model.JobApplication, error) {
	return s.JobRepo.ListApplicationsByStudent(studentID)
}

func (s *JobService) UpdateApplicationStatus(companyID, applicationID uint, status model.ApplicationStatus) error {
	app, err := s.JobRepo.FindApplication(applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrApplicationNotFound
		}
		return err
	}
	if app.Posting.CompanyID != companyID {
		return util.NewForbiddenError("application belongs to another company's posting")
	}
	return s.JobRepo.UpdateApplicationStatus(applicationID, status)
}

// WithdrawApplication deletes the row and both stored files. File deletion
// failures surface instead of being swallowed, so a half-released application
// is visible to the caller.
func (s *JobService) WithdrawApplication(ctx context.Context, studentID, applicationID uint) error {
	app, err := s.JobRepo.FindApplication(applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrApplicationNotFound
		}
		return err
	}
	if app.StudentID != studentID {
		return util.ErrApplicationNotFound
	}

	if app.ResumePath != "" {
		if err := s.Storage.Delete(ctx, app.ResumePath); err != nil {
			return fmt.Errorf("delete resume file: %w", err)
		}
	}
	if app.CoverLetterPath != "" {
		if err := s.Storage.Delete(ctx, app.CoverLetterPath); err != nil {
			return fmt.Errorf("delete cover letter file: %w", err)
		}
	}
	return s.JobRepo.DeleteApplication(applicationID)
}

func applicationObjectName(postingID, studentID uint, kind, filename string) string {
	return fmt.Sprintf("applications/%d/%d_%s_%d%s",
		postingID, studentID, kind, time.Now().Unix(), filepath.Ext(filename))
}
