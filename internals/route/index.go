// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	attendanceController "kampusku_backend/internals/features/academics/attendance/controller"
	attendanceRoute "kampusku_backend/internals/features/academics/attendance/route"
	attendanceService "kampusku_backend/internals/features/academics/attendance/service"
	examController "kampusku_backend/internals/features/academics/exams/controller"
	examRoute "kampusku_backend/internals/features/academics/exams/route"
	examService "kampusku_backend/internals/features/academics/exams/service"
	facultyController "kampusku_backend/internals/features/academics/faculty/controller"
	facultyRoute "kampusku_backend/internals/features/academics/faculty/route"
	studentController "kampusku_backend/internals/features/academics/students/controller"
	studentRoute "kampusku_backend/internals/features/academics/students/route"
	subjectController "kampusku_backend/internals/features/academics/subjects/controller"
	subjectRoute "kampusku_backend/internals/features/academics/subjects/route"
	feeController "kampusku_backend/internals/features/finance/fees/controller"
	feeRoute "kampusku_backend/internals/features/finance/fees/route"
	noticeController "kampusku_backend/internals/features/notices/controller"
	noticeRoute "kampusku_backend/internals/features/notices/route"
	authController "kampusku_backend/internals/features/users/auth/controller"
	authRepo "kampusku_backend/internals/features/users/auth/repository"
	authRoute "kampusku_backend/internals/features/users/auth/route"
	authService "kampusku_backend/internals/features/users/auth/service"
	userController "kampusku_backend/internals/features/users/user/controller"
	userRepo "kampusku_backend/internals/features/users/user/repository"
	userRoute "kampusku_backend/internals/features/users/user/route"
	"kampusku_backend/internals/mailer"
	authMw "kampusku_backend/internals/middlewares/auth"
)

/* =========================================================
   ROUTE INDEX
   Builds every repository, service and controller, then mounts
   all feature routes under /api.
========================================================= */

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	issuer := authService.NewTokenIssuerFromEnv()
	hasher := authService.BcryptHasher{}

	svc := &authService.AuthService{
		Users:    authRepo.NewUserRepository(db),
		Sessions: authRepo.NewSessionRepository(db),
		Resets:   authRepo.NewResetRepository(db),
		Hasher:   hasher,
		Tokens:   issuer,
		Mail:     mailer.LogMailer{},
		ResetTTL: configs.ResetTokenTTL,
	}

	authed := authMw.AuthMiddleware(issuer, authMw.EnsureUserActive(db))

	authRoute.AuthRoutes(api, authController.NewAuthController(svc), authed)
	userRoute.UserAdminRoutes(api, userController.NewUserController(userRepo.NewUserAdminRepository(db)), authed)

	studentRoute.StudentRoutes(api, studentController.NewStudentController(db, hasher), authed)
	facultyRoute.FacultyRoutes(api, facultyController.NewFacultyController(db, hasher), authed)
	subjectRoute.SubjectRoutes(api, subjectController.NewSubjectController(db), authed)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceService.NewAttendanceStore(db))
	attendanceRoute.AttendanceRoutes(api, attendanceController.NewAttendanceController(db, attendanceSvc), authed)

	examSvc := examService.NewExamService(examService.NewExamStore(db))
	examRoute.ExamRoutes(api, examController.NewExamController(db, examSvc), authed)

	noticeRoute.NoticeRoutes(api, noticeController.NewNoticeController(db), authed)
	feeRoute.FeeRoutes(api, feeController.NewFeeController(db), authed)
}
