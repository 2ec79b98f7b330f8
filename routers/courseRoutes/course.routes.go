package courseRoutes

import (
	controllers "educa/controllers/course"
	"educa/middleware"
	validators "educa/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	courseGroup.Get("/list", controllers.CourseList)
	courseGroup.Get("/subject/:subject", controllers.CourseList)
	courseGroup.Get("/:slug", controllers.CourseDetail)
}

// SetupManageRoutes sets up the instructor routes; everything is scoped to the token's user
func SetupManageRoutes(app *fiber.App) {
	manageGroup := app.Group("/manage", middleware.JWTMiddleware)

	manageGroup.Get("/course/mine", controllers.ManageCourseList)
	manageGroup.Post("/course/create", validators.CourseForm(), controllers.CreateCourse)
	manageGroup.Put("/course/:id/edit", validators.CourseID(), validators.CourseForm(), controllers.UpdateCourse)
	manageGroup.Delete("/course/:id/delete", validators.CourseID(), controllers.DeleteCourse)

	// Module formset
	manageGroup.Get("/course/:id/module", validators.CourseID(), controllers.CourseModules)
	manageGroup.Put("/course/:id/module", validators.ModuleFormset(), controllers.SaveModules)

	// Contents
	manageGroup.Get("/module/:module_id", validators.ModuleID(), controllers.ModuleContents)
	manageGroup.Post("/module/:module_id/content/:model_name", validators.ContentTarget(), validators.ItemForm(), controllers.SaveItem)
	manageGroup.Get("/module/:module_id/content/:model_name/:id", validators.ContentTarget(), controllers.GetItem)
	manageGroup.Put("/module/:module_id/content/:model_name/:id", validators.ContentTarget(), validators.ItemForm(), controllers.SaveItem)
	manageGroup.Delete("/content/:id/delete", validators.ContentID(), controllers.DeleteContent)

	// Ordering
	manageGroup.Post("/module/order", validators.OrderMap(), controllers.ModuleOrder)
	manageGroup.Post("/content/order", validators.OrderMap(), controllers.ContentOrder)
}
