package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"echomind_backend/internals/constants"
	classroomController "echomind_backend/internals/features/school/classrooms/controller"
	authMiddleware "echomind_backend/internals/middlewares/auth"
)

func ClassroomRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := classroomController.NewClassroomController(db)

	// 🏫 professor (pemilik) & admin
	profOrAdmin := authMiddleware.RequireRoles(
		constants.RoleErrorProfessor("mengelola kelas"),
		constants.ProfessorAndAbove,
	)
	api.Get("/classrooms", profOrAdmin, ctrl.List)
	api.Get("/classrooms-archived", profOrAdmin, ctrl.ListArchived)
	api.Post("/classrooms",
		authMiddleware.RequireRoles(constants.RoleErrorProfessor("membuat kelas"), constants.ProfessorOnly),
		ctrl.Create,
	)
	api.Get("/classrooms/:id", profOrAdmin, ctrl.GetOne)
	api.Put("/classrooms-update/:id", profOrAdmin, ctrl.Update)
	api.Put("/classrooms-activate/:id", profOrAdmin, ctrl.ToggleArchive)
	api.Delete("/classrooms/:id", profOrAdmin, ctrl.Delete)
	api.Get("/classrooms-students/:classroomId", profOrAdmin, ctrl.ListStudents)

	// 🎓 student
	studentOnly := authMiddleware.RequireRoles(
		constants.RoleErrorStudent("fitur kelas siswa"),
		constants.StudentOnly,
	)
	api.Post("/classrooms-self-enroll", studentOnly, ctrl.SelfEnroll)
	api.Get("/classrooms-student", studentOnly, ctrl.ListMine)
	api.Get("/check-if-enrolled/:classroomId", studentOnly, ctrl.CheckIfEnrolled)
}
