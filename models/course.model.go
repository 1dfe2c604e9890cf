package models

import (
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

const (
	CourseTypeFree = "Free"
	CourseTypePaid = "Paid"
)

type Course struct {
	gorm.Model
	Title            string  `json:"title"`
	Slug             string  `json:"slug" gorm:"uniqueIndex"`
	Description      string  `json:"description" gorm:"type:text"`
	Duration         int64   `json:"duration" gorm:"default:0"` // duration in hours
	Price            float64 `json:"price" gorm:"default:0"`
	CourseType       string  `json:"course_type" gorm:"default:'Paid'"`     // Free, Paid
	Level            string  `json:"level" gorm:"default:'Beginner'"`       // Beginner, Intermediate, Advanced
	Category         string  `json:"category" gorm:"default:'Programming'"` // Programming, Design, Marketing, Business, Data Science
	WhatYouWillLearn string  `json:"what_you_will_learn" gorm:"type:text;default:''"`
	Requirements     string  `json:"requirements" gorm:"type:text;default:''"`
	ImageURL         string  `json:"image_url" gorm:"default:''"`
	InstructorID     uint    `json:"instructor_id" gorm:"index;not null"`
	IsDeleted        bool    `json:"-" gorm:"default:false"`
	Instructor       User    `json:"-" gorm:"foreignKey:InstructorID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate derives the slug from the title once. Later title updates
// never touch the slug.
func (course *Course) BeforeCreate(tx *gorm.DB) error {
	if course.Slug == "" {
		course.Slug = slug.Make(course.Title)
	}
	return nil
}

type CourseVideo struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	LessonName string `json:"lesson_name"`
	VideoURL   string `json:"video_url"`
	Duration   int    `json:"duration" gorm:"default:0"` // duration in minutes
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `json:"-" gorm:"default:false"`
	Course     Course `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
