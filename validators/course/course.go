package courseValidator

import (
	"strconv"
	"strings"

	controllers "lewagon/controllers/course"
	"lewagon/middleware"
	"lewagon/models"

	"github.com/gofiber/fiber/v2"
)

func validateCourseFields(reqData *controllers.CourseRequest) map[string]string {
	errors := make(map[string]string)

	// Validate Title
	if strings.TrimSpace(reqData.Title) == "" {
		errors["title"] = "Title is required!"
	} else if len(strings.TrimSpace(reqData.Title)) < 3 {
		errors["title"] = "Title must be at least 3 characters long!"
	}

	// Validate Description
	if strings.TrimSpace(reqData.Description) == "" {
		errors["description"] = "Description is required!"
	} else if len(strings.TrimSpace(reqData.Description)) < 5 {
		errors["description"] = "Description must be at least 5 characters long!"
	}

	if reqData.Price < 0 {
		errors["price"] = "Price cannot be negative!"
	}

	if reqData.CourseType == "" {
		reqData.CourseType = models.CourseTypePaid
	}
	if reqData.CourseType != models.CourseTypeFree && reqData.CourseType != models.CourseTypePaid {
		errors["course_type"] = "Course type must be Free or Paid!"
	}
	if reqData.CourseType == models.CourseTypeFree && reqData.Price > 0 {
		errors["price"] = "Free courses cannot have a price!"
	}

	if reqData.Level == "" {
		reqData.Level = "Beginner"
	}
	switch reqData.Level {
	case "Beginner", "Intermediate", "Advanced":
	default:
		errors["level"] = "Level must be Beginner, Intermediate or Advanced!"
	}

	for i, video := range reqData.Videos {
		if strings.TrimSpace(video.LessonName) == "" {
			errors["videos"] = "Lesson name is required for lesson " + strconv.Itoa(i+1) + "!"
			break
		}
		if strings.TrimSpace(video.VideoURL) == "" {
			errors["videos"] = "Video URL is required for lesson " + strconv.Itoa(i+1) + "!"
			break
		}
	}

	return errors
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(controllers.CourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateCourseFields(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(controllers.CourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateCourseFields(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

func AddVideo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(controllers.VideoRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.LessonName) == "" {
			errors["lesson_name"] = "Lesson name is required!"
		}
		if strings.TrimSpace(reqData.VideoURL) == "" {
			errors["video_url"] = "Video URL is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVideo", reqData)
		return c.Next()
	}
}

// CourseID validates the :id path parameter.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		// Validate CourseID is a valid integer
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}
