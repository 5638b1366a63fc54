package ordering

import (
	"testing"

	courseModels "coursehub/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&courseModels.Course{}, &courseModels.Section{}, &courseModels.Lesson{}))
	return db
}

func TestNextIndexEmptyScope(t *testing.T) {
	db := setupTestDb(t)

	next, err := NextIndex(db, &courseModels.Section{}, "course_id", "11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)
	assert.Equal(t, 0, next)
}

func TestNextIndexAppends(t *testing.T) {
	db := setupTestDb(t)

	course := courseModels.Course{Name: "Go Basics"}
	require.NoError(t, db.Create(&course).Error)

	// Sequential inserts get a dense 0,1,2 sequence
	for want := 0; want < 3; want++ {
		err := db.Transaction(func(tx *gorm.DB) error {
			next, err := NextIndex(tx, &courseModels.Section{}, "course_id", course.ID)
			require.NoError(t, err)
			assert.Equal(t, want, next)

			section := courseModels.Section{CourseID: course.ID, Name: "Section", OrderIndex: next}
			return tx.Create(&section).Error
		})
		require.NoError(t, err)
	}
}

func TestNextIndexSkipsOtherScopes(t *testing.T) {
	db := setupTestDb(t)

	a := courseModels.Course{Name: "A"}
	b := courseModels.Course{Name: "B"}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&b).Error)

	require.NoError(t, db.Create(&courseModels.Section{CourseID: a.ID, Name: "S", OrderIndex: 7}).Error)

	next, err := NextIndex(db, &courseModels.Section{}, "course_id", b.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, next)

	next, err = NextIndex(db, &courseModels.Section{}, "course_id", a.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, next)
}

func TestReindexAll(t *testing.T) {
	db := setupTestDb(t)

	course := courseModels.Course{Name: "Go Basics"}
	require.NoError(t, db.Create(&course).Error)

	sections := make([]courseModels.Section, 3)
	for i := range sections {
		sections[i] = courseModels.Section{CourseID: course.ID, Name: "S", OrderIndex: i}
		require.NoError(t, db.Create(&sections[i]).Error)
	}

	// Reverse the display order
	ids := []string{sections[2].ID, sections[1].ID, sections[0].ID}
	updated, err := ReindexAll(db, &courseModels.Section{}, ids)
	require.NoError(t, err)
	assert.Equal(t, ids, updated)

	for idx, id := range ids {
		var section courseModels.Section
		require.NoError(t, db.Where("id = ?", id).First(&section).Error)
		assert.Equal(t, idx, section.OrderIndex)
	}
}

func TestReindexAllSkipsMissingIds(t *testing.T) {
	db := setupTestDb(t)

	course := courseModels.Course{Name: "Go Basics"}
	require.NoError(t, db.Create(&course).Error)

	section := courseModels.Section{CourseID: course.ID, Name: "S"}
	require.NoError(t, db.Create(&section).Error)

	updated, err := ReindexAll(db, &courseModels.Section{}, []string{"22222222-2222-2222-2222-222222222222", section.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{section.ID}, updated)

	var got courseModels.Section
	require.NoError(t, db.Where("id = ?", section.ID).First(&got).Error)
	assert.Equal(t, 1, got.OrderIndex)
}

func TestMoveToAppends(t *testing.T) {
	db := setupTestDb(t)

	course := courseModels.Course{Name: "Go Basics"}
	require.NoError(t, db.Create(&course).Error)

	src := courseModels.Section{CourseID: course.ID, Name: "Src"}
	dst := courseModels.Section{CourseID: course.ID, Name: "Dst", OrderIndex: 1}
	require.NoError(t, db.Create(&src).Error)
	require.NoError(t, db.Create(&dst).Error)

	lesson := courseModels.Lesson{SectionID: src.ID, Name: "L", OrderIndex: 0}
	require.NoError(t, db.Create(&lesson).Error)
	require.NoError(t, db.Create(&courseModels.Lesson{SectionID: dst.ID, Name: "Existing", OrderIndex: 4}).Error)

	idx, err := MoveTo(db, &courseModels.Lesson{}, "section_id", lesson.ID, dst.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, idx)

	var got courseModels.Lesson
	require.NoError(t, db.Where("id = ?", lesson.ID).First(&got).Error)
	assert.Equal(t, dst.ID, got.SectionID)
	assert.Equal(t, 5, got.OrderIndex)
}

func TestMoveToExplicitIndex(t *testing.T) {
	db := setupTestDb(t)

	course := courseModels.Course{Name: "Go Basics"}
	require.NoError(t, db.Create(&course).Error)

	src := courseModels.Section{CourseID: course.ID, Name: "Src"}
	dst := courseModels.Section{CourseID: course.ID, Name: "Dst", OrderIndex: 1}
	require.NoError(t, db.Create(&src).Error)
	require.NoError(t, db.Create(&dst).Error)

	lesson := courseModels.Lesson{SectionID: src.ID, Name: "L", OrderIndex: 3}
	require.NoError(t, db.Create(&lesson).Error)

	want := 2
	idx, err := MoveTo(db, &courseModels.Lesson{}, "section_id", lesson.ID, dst.ID, &want)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

func TestMoveToMissingItem(t *testing.T) {
	db := setupTestDb(t)

	_, err := MoveTo(db, &courseModels.Lesson{}, "section_id", "33333333-3333-3333-3333-333333333333", "44444444-4444-4444-4444-444444444444", nil)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
