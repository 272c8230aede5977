package mongodb

import (
	portsrepo "github.com/SscSPs/hrops_backend/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

func NewRepositoryProvider(db *mongo.Database) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:       newMongoUserRepository(db),
		ProjectRepo:    newMongoProjectRepository(db),
		TaskRepo:       newMongoTaskRepository(db),
		AttendanceRepo: newMongoAttendanceRepository(db),
		WorkReportRepo: newMongoWorkReportRepository(db),
		ReviewRepo:     newMongoReviewRepository(db),
		BonusRepo:      newMongoBonusRepository(db),
		PayrollRepo:    newMongoPayrollRepository(db),
		SettingRepo:    newMongoSettingRepository(db),
		TokenRepo:      newMongoTokenRepository(db),
		WorkplaceRepo:  newMongoWorkplaceRepository(db),
		ReportingRepo:  newReportingRepository(db),
	}
}
