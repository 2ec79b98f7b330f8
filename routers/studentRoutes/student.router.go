package studentRoutes

import (
	studentControllers "educa/controllers/student"
	"educa/middleware"
	studentValidators "educa/validators/student"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentRoutes(app *fiber.App) {
	studentGroup := app.Group("/students", middleware.JWTMiddleware)

	studentGroup.Post("/enroll-course", studentValidators.Enroll(), studentControllers.EnrollCourse)
	studentGroup.Get("/courses", studentControllers.StudentCourses)
	studentGroup.Get("/course/:id", studentValidators.CourseDetail(), studentControllers.StudentCourseDetail)
	studentGroup.Get("/course/:id/:module_id", studentValidators.CourseDetail(), studentControllers.StudentCourseDetail)
}
