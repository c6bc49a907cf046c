package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Juz         *JuzRepository
	Logs        *LogRepository
	InviteCodes *InviteCodeRepository
	AppSettings *AppSettingsRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Juz:         NewJuzRepository(database),
		Logs:        NewLogRepository(database),
		InviteCodes: NewInviteCodeRepository(database),
		AppSettings: NewAppSettingsRepository(database),
	}
}
