package controllers_test

import (
	"fmt"
	"testing"

	"lewagon/database"
	"lewagon/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitReviewRequiresEnrollment(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createInstructor(t, "Ines Teacher", "ines@test.com")
	course := createCourse(t, instructor.ID, "Go Basics", 49.99)
	_, token := createStudent(t, "Sam Student", "sam@test.com")

	res := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/review", course.ID), token, fiber.Map{
		"rating":  5,
		"comment": "great course",
	})
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Review{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSubmitReview(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createInstructor(t, "Ines Teacher", "ines@test.com")
	course := createCourse(t, instructor.ID, "Go Basics", 49.99)
	student, token := createStudent(t, "Sam Student", "sam@test.com")

	res := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	require.Equal(t, fiber.StatusCreated, res.StatusCode)

	res = doRequest(t, app, "POST", fmt.Sprintf("/course/%d/review", course.ID), token, fiber.Map{
		"rating":  4,
		"comment": "solid intro",
	})
	require.Equal(t, fiber.StatusCreated, res.StatusCode)

	var review models.Review
	require.NoError(t, database.Database.Db.Where("student_id = ? AND course_id = ?", student.ID, course.ID).First(&review).Error)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "solid intro", review.Comment)
}

func TestSubmitReviewTwiceIsConflict(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createInstructor(t, "Ines Teacher", "ines@test.com")
	course := createCourse(t, instructor.ID, "Go Basics", 49.99)
	_, token := createStudent(t, "Sam Student", "sam@test.com")

	res := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	require.Equal(t, fiber.StatusCreated, res.StatusCode)

	res = doRequest(t, app, "POST", fmt.Sprintf("/course/%d/review", course.ID), token, fiber.Map{"rating": 5})
	require.Equal(t, fiber.StatusCreated, res.StatusCode)

	res = doRequest(t, app, "POST", fmt.Sprintf("/course/%d/review", course.ID), token, fiber.Map{"rating": 3})
	assert.Equal(t, fiber.StatusConflict, res.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Review{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSubmitReviewUniqueIndexConflict(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createInstructor(t, "Ines Teacher", "ines@test.com")
	course := createCourse(t, instructor.ID, "Go Basics", 49.99)
	student, token := createStudent(t, "Sam Student", "sam@test.com")

	res := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	require.Equal(t, fiber.StatusCreated, res.StatusCode)

	// A soft-deleted review still occupies the unique index but is
	// invisible to the pre-check, so the insert itself must conflict.
	seed := models.Review{
		StudentID: student.ID,
		CourseID:  course.ID,
		Rating:    3,
		IsDeleted: true,
	}
	require.NoError(t, database.Database.Db.Create(&seed).Error)

	res = doRequest(t, app, "POST", fmt.Sprintf("/course/%d/review", course.ID), token, fiber.Map{"rating": 5})
	assert.Equal(t, fiber.StatusConflict, res.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Review{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSubmitReviewRatingBounds(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createInstructor(t, "Ines Teacher", "ines@test.com")
	course := createCourse(t, instructor.ID, "Go Basics", 49.99)
	_, token := createStudent(t, "Sam Student", "sam@test.com")

	res := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	require.Equal(t, fiber.StatusCreated, res.StatusCode)

	for _, rating := range []int{0, 6, -2} {
		res = doRequest(t, app, "POST", fmt.Sprintf("/course/%d/review", course.ID), token, fiber.Map{"rating": rating})
		assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	}
}

func TestGetCourseReviews(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createInstructor(t, "Ines Teacher", "ines@test.com")
	course := createCourse(t, instructor.ID, "Go Basics", 49.99)
	_, token := createStudent(t, "Sam Student", "sam@test.com")

	res := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	require.Equal(t, fiber.StatusCreated, res.StatusCode)
	res = doRequest(t, app, "POST", fmt.Sprintf("/course/%d/review", course.ID), token, fiber.Map{"rating": 5, "comment": "loved it"})
	require.Equal(t, fiber.StatusCreated, res.StatusCode)

	// Reviews are public, no token needed
	res = doRequest(t, app, "GET", fmt.Sprintf("/course/%d/reviews", course.ID), "", nil)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	body := parseBody(t, res)
	data := body["data"].(map[string]interface{})
	reviews := data["reviews"].([]interface{})
	require.Len(t, reviews, 1)
	assert.Equal(t, "Sam Student", reviews[0].(map[string]interface{})["reviewer_name"])
}
