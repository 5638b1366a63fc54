package repository

import (
	"testing"

	"coursehub/cache"
	"coursehub/models"
	courseModels "coursehub/models/course"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDb opens a fresh in-memory database and resets the cache so
// probe entries from one test never leak into another
func setupTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductCourse{},
		&models.Purchase{},
		&courseModels.Course{},
		&courseModels.Section{},
		&courseModels.Lesson{},
	))

	cache.Init()
	return db
}

func createTestCourse(t *testing.T, db *gorm.DB, name string) *courseModels.Course {
	t.Helper()

	course, err := CreateCourse(db, CourseInput{Name: name, Description: "test course"})
	require.NoError(t, err)
	return course
}

func createTestSection(t *testing.T, db *gorm.DB, courseID, name string) *courseModels.Section {
	t.Helper()

	section, err := CreateSection(db, courseID, SectionInput{Name: name, Status: courseModels.SectionStatusPublic})
	require.NoError(t, err)
	return section
}

func createTestLesson(t *testing.T, db *gorm.DB, sectionID, name string) *courseModels.Lesson {
	t.Helper()

	lesson, err := CreateLesson(db, LessonInput{
		SectionID:      sectionID,
		Name:           name,
		YoutubeVideoID: "dQw4w9WgXcQ",
		Status:         courseModels.LessonStatusPublic,
	})
	require.NoError(t, err)
	return lesson
}

// seedCacheProbe plants a sentinel entry under the given tags; a later
// cache miss proves those tags were invalidated
func seedCacheProbe(key string, tags ...string) {
	cache.Set(key, "probe", tags...)
}

func probeEvicted(key string) bool {
	_, ok := cache.Get(key)
	return !ok
}
