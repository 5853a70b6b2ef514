package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	genreRoute "disco_backend/internals/features/repertoire/genres/route"
	hallRoute "disco_backend/internals/features/repertoire/halls/route"
	hostRoute "disco_backend/internals/features/repertoire/hosts/route"
	scheduleRoute "disco_backend/internals/features/repertoire/schedule/route"
	trackRoute "disco_backend/internals/features/repertoire/tracks/route"
	weekdayRoute "disco_backend/internals/features/repertoire/weekdays/route"
)

// RepertoirePublicRoutes mounts the read-only list/detail views.
func RepertoirePublicRoutes(public fiber.Router, db *gorm.DB) {
	genreRoute.GenrePublicRoutes(public, db)
	trackRoute.TrackPublicRoutes(public, db)
	hallRoute.HallPublicRoutes(public, db)
	hostRoute.HostPublicRoutes(public, db)
	weekdayRoute.WeekDayPublicRoutes(public, db)
	scheduleRoute.SchedulePublicRoutes(public, db)
}

// RepertoireAdminRoutes mounts the CRUD surface.
func RepertoireAdminRoutes(admin fiber.Router, db *gorm.DB) {
	genreRoute.GenreAdminRoutes(admin, db)
	trackRoute.TrackAdminRoutes(admin, db)
	hallRoute.HallAdminRoutes(admin, db)
	hostRoute.HostAdminRoutes(admin, db)
	weekdayRoute.WeekDayAdminRoutes(admin, db)
	scheduleRoute.ScheduleAdminRoutes(admin, db)
}
