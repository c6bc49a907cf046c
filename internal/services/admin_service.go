package services

import (
	"time"

	"github.com/hafiz-app/hafiz/internal/models"
)

type AdminUserRepository interface {
	CountUsers() (int64, error)
	CountByRole(role string) (int64, error)
	CountCreatedSince(since time.Time) (int64, error)
	CountActiveSince(since time.Time) (int64, error)
	ListPage(search string, role string, limit int, offset int) ([]models.User, int64, error)
	FindByID(userID uint) (models.User, error)
	UpdateByID(userID uint, updates map[string]any) error
	DeleteAccountAndRelatedData(userID uint) error
}

type AdminJuzSource interface {
	CountCompletedAll() (int64, error)
	SumPagesAll() (int64, error)
}

type AdminLogSource interface {
	CountAll() (int64, error)
}

type AdminService struct {
	users AdminUserRepository
	juz   AdminJuzSource
	logs  AdminLogSource
	now   func() time.Time
}

func NewAdminService(users AdminUserRepository, juz AdminJuzSource, logs AdminLogSource) *AdminService {
	return &AdminService{
		users: users,
		juz:   juz,
		logs:  logs,
		now:   time.Now,
	}
}

type DashboardStats struct {
	TotalUsers          int64 `json:"totalUsers"`
	TotalAdmins         int64 `json:"totalAdmins"`
	TotalLogs           int64 `json:"totalLogs"`
	TotalPagesMemorized int64 `json:"totalPagesMemorized"`
	CompletedJuz        int64 `json:"completedJuz"`
	ActiveUsers         int64 `json:"activeUsers"`
	NewUsersThisWeek    int64 `json:"newUsersThisWeek"`
}

func (service *AdminService) Dashboard() (DashboardStats, error) {
	weekAgo := service.now().AddDate(0, 0, -7)

	stats := DashboardStats{}
	var err error
	if stats.TotalUsers, err = service.users.CountUsers(); err != nil {
		return DashboardStats{}, err
	}
	if stats.TotalAdmins, err = service.users.CountByRole(models.RoleAdmin); err != nil {
		return DashboardStats{}, err
	}
	if stats.TotalLogs, err = service.logs.CountAll(); err != nil {
		return DashboardStats{}, err
	}
	if stats.TotalPagesMemorized, err = service.juz.SumPagesAll(); err != nil {
		return DashboardStats{}, err
	}
	if stats.CompletedJuz, err = service.juz.CountCompletedAll(); err != nil {
		return DashboardStats{}, err
	}
	if stats.ActiveUsers, err = service.users.CountActiveSince(weekAgo); err != nil {
		return DashboardStats{}, err
	}
	if stats.NewUsersThisWeek, err = service.users.CountCreatedSince(weekAgo); err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}

type UserPage struct {
	Users       []models.User `json:"users"`
	CurrentPage int           `json:"currentPage"`
	TotalPages  int           `json:"totalPages"`
	TotalCount  int64         `json:"totalCount"`
	HasMore     bool          `json:"hasMore"`
}

func (service *AdminService) ListUsers(search string, role string, page int, limit int) (UserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if role != "" && role != models.RoleUser && role != models.RoleAdmin {
		return UserPage{}, NewValidationError("invalid role filter")
	}

	offset := (page - 1) * limit
	users, total, err := service.users.ListPage(search, role, limit, offset)
	if err != nil {
		return UserPage{}, err
	}

	pageCount := int((total + int64(limit) - 1) / int64(limit))
	return UserPage{
		Users:       users,
		CurrentPage: page,
		TotalPages:  pageCount,
		TotalCount:  total,
		HasMore:     int64(offset+len(users)) < total,
	}, nil
}

func (service *AdminService) GetUser(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

// UpdateUserRole changes a user's role, refusing to demote the last admin.
func (service *AdminService) UpdateUserRole(userID uint, role string) (models.User, error) {
	if role != models.RoleUser && role != models.RoleAdmin {
		return models.User{}, NewValidationError("role must be user or admin")
	}

	user, err := service.GetUser(userID)
	if err != nil {
		return models.User{}, err
	}

	if user.Role == models.RoleAdmin && role == models.RoleUser {
		admins, err := service.users.CountByRole(models.RoleAdmin)
		if err != nil {
			return models.User{}, err
		}
		if admins <= 1 {
			return models.User{}, NewValidationError("cannot demote the last admin")
		}
	}

	if err := service.users.UpdateByID(userID, map[string]any{"role": role}); err != nil {
		return models.User{}, err
	}
	user.Role = role
	return user, nil
}

func (service *AdminService) DeleteUser(userID uint) error {
	if _, err := service.GetUser(userID); err != nil {
		return err
	}
	return service.users.DeleteAccountAndRelatedData(userID)
}
