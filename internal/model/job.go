package model

import "time"

type PostingStatus string

const (
	PostingOpen   PostingStatus = "open"
	PostingClosed PostingStatus = "closed"
)

// swagger:model JobPosting
type JobPosting struct {
	BaseModel
	CompanyID      uint          `gorm:"index;not null" json:"companyId"`
	Company        User          `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Title          string        `gorm:"size:200;not null" json:"title"`
	Description    string        `gorm:"type:text" json:"description"`
	Location       string        `gorm:"size:100" json:"location"`
	EmploymentType string        `gorm:"size:50" json:"employmentType"`
	SalaryMin      int           `gorm:"default:0" json:"salaryMin"`
	SalaryMax      int           `gorm:"default:0" json:"salaryMax"`
	Status         PostingStatus `gorm:"type:enum('open','closed');default:'open'" json:"status"`
	Deadline       *time.Time    `json:"deadline"`
}

func (JobPosting) TableName() string {
	return "job_postings"
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationReviewed ApplicationStatus = "reviewed"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// JobApplication owns its two uploaded files; deleting the application must
// release both stored objects.
type JobApplication struct {
	BaseModel
	PostingID       uint              `gorm:"uniqueIndex:idx_posting_student;not null" json:"postingId"`
	Posting         JobPosting        `gorm:"foreignKey:PostingID" json:"posting,omitempty"`
	StudentID       uint              `gorm:"uniqueIndex:idx_posting_student;index;not null" json:"studentId"`
	Student         User              `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Status          ApplicationStatus `gorm:"type:enum('pending','reviewed','accepted','rejected');default:'pending'" json:"status"`
	ResumePath      string            `gorm:"size:255" json:"resumePath"`
	CoverLetterPath string            `gorm:"size:255" json:"coverLetterPath"`
}

func (JobApplication) TableName() string {
	return "job_applications"
}
