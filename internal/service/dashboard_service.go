package service

import (
	"campus_link_backend/internal/model"
	"campus_link_backend/internal/repository"
	"campus_link_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

// DashboardService backs the admin dashboard with aggregate counts and user
// management.
type DashboardService struct {
	UserRepo    repository.UserStore
	JobRepo     repository.JobStore
	ContentRepo repository.ContentStore
}

func NewDashboardService(userRepo repository.UserStore, jobRepo repository.JobStore, contentRepo repository.ContentStore) *DashboardService {
	return &DashboardService{
		UserRepo:    userRepo,
		JobRepo:     jobRepo,
		ContentRepo: contentRepo,
	}
}

type DashboardStats struct {
	UsersByRole  map[string]int64 `json:"users_by_role"`
	OpenPostings int64            `json:"open_postings"`
	Applications int64            `json:"applications"`
	Posts        int64            `json:"posts"`
	Comments     int64            `json:"comments"`
}

func (s *DashboardService) GetStats() (*DashboardStats, error) {
	usersByRole, err := s.UserRepo.CountByRole()
	if err != nil {
		return nil, err
	}
	openPostings, err := s.JobRepo.CountOpenPostings()
	if err != nil {
		return nil, err
	}
	applications, err := s.JobRepo.CountApplications()
	if err != nil {
		return nil, err
	}
	posts, err := s.ContentRepo.CountPosts()
	if err != nil {
		return nil, err
	}
	comments, err := s.ContentRepo.CountComments()
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		UsersByRole:  usersByRole,
		OpenPostings: openPostings,
		Applications: applications,
		Posts:        posts,
		Comments:     comments,
	}, nil
}

func (s *DashboardService) ListUsers(page, limit int) ([]model.User, int64, error) {
	return s.UserRepo.List(page, limit)
}

// SetUserStatus marks a user active or suspended. Users are never physically
// deleted.
func (s *DashboardService) SetUserStatus(userID uint, status model.UserStatus) error {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}
	return s.UserRepo.UpdateStatus(userID, status)
}
