package repository

import (
	"testing"

	"coursehub/cache"
	courseModels "coursehub/models/course"
	"coursehub/ordering"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateLessonAppends(t *testing.T) {
	db := setupTestDb(t)
	course := createTestCourse(t, db, "Go Basics")
	section := createTestSection(t, db, course.ID, "Intro")

	for want := 0; want < 3; want++ {
		lesson := createTestLesson(t, db, section.ID, "Lesson")
		assert.Equal(t, want, lesson.OrderIndex)
	}
}

func TestCreateLessonMissingSection(t *testing.T) {
	db := setupTestDb(t)

	_, err := CreateLesson(db, LessonInput{SectionID: "absent", Name: "L"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReorderLessons(t *testing.T) {
	db := setupTestDb(t)
	course := createTestCourse(t, db, "Go Basics")
	section := createTestSection(t, db, course.ID, "Intro")

	l1 := createTestLesson(t, db, section.ID, "A")
	l2 := createTestLesson(t, db, section.ID, "B")
	l3 := createTestLesson(t, db, section.ID, "C")

	ids := []string{l3.ID, l1.ID, l2.ID}
	require.NoError(t, ReorderLessons(db, ids))

	for idx, id := range ids {
		assert.Equal(t, idx, orderIndexOf(t, db, &courseModels.Lesson{}, id))
	}
}

func TestReorderLessonsAnyPermutationStaysDense(t *testing.T) {
	db := setupTestDb(t)
	course := createTestCourse(t, db, "Go Basics")
	section := createTestSection(t, db, course.ID, "Intro")

	l1 := createTestLesson(t, db, section.ID, "A")
	l2 := createTestLesson(t, db, section.ID, "B")
	l3 := createTestLesson(t, db, section.ID, "C")

	permutations := [][]string{
		{l1.ID, l2.ID, l3.ID},
		{l2.ID, l3.ID, l1.ID},
		{l3.ID, l2.ID, l1.ID},
	}
	for _, ids := range permutations {
		require.NoError(t, ReorderLessons(db, ids))

		// Every reorder leaves a dense 0..n-1 assignment following the
		// requested sequence, regardless of the previous arrangement
		for idx, id := range ids {
			assert.Equal(t, idx, orderIndexOf(t, db, &courseModels.Lesson{}, id))
		}
	}
}

func TestReorderLessonsRollbackOnMissingSection(t *testing.T) {
	db := setupTestDb(t)
	course := createTestCourse(t, db, "Go Basics")
	section := createTestSection(t, db, course.ID, "Intro")

	l1 := createTestLesson(t, db, section.ID, "A")
	l2 := createTestLesson(t, db, section.ID, "B")

	require.NoError(t, db.Exec("DELETE FROM sections WHERE id = ?", section.ID).Error)

	err := ReorderLessons(db, []string{l2.ID, l1.ID})
	assert.ErrorIs(t, err, ordering.ErrOrphaned)

	assert.Equal(t, 0, orderIndexOf(t, db, &courseModels.Lesson{}, l1.ID))
	assert.Equal(t, 1, orderIndexOf(t, db, &courseModels.Lesson{}, l2.ID))
}

func TestReorderLessonsInvalidatesOwnerChain(t *testing.T) {
	db := setupTestDb(t)
	course := createTestCourse(t, db, "Go Basics")
	section := createTestSection(t, db, course.ID, "Intro")

	l1 := createTestLesson(t, db, section.ID, "A")
	l2 := createTestLesson(t, db, section.ID, "B")
	l3 := createTestLesson(t, db, section.ID, "C")

	seedCacheProbe("probe-l1", cache.IdTag("lessons", l1.ID))
	seedCacheProbe("probe-l2", cache.IdTag("lessons", l2.ID))
	seedCacheProbe("probe-l3", cache.IdTag("lessons", l3.ID))
	seedCacheProbe("probe-scope", cache.ParentTag("lessons", section.ID))
	seedCacheProbe("probe-course", cache.IdTag("courses", course.ID))
	seedCacheProbe("probe-global", cache.GlobalTag("lessons"))

	require.NoError(t, ReorderLessons(db, []string{l3.ID, l1.ID, l2.ID}))

	assert.True(t, probeEvicted("probe-l1"))
	assert.True(t, probeEvicted("probe-l2"))
	assert.True(t, probeEvicted("probe-l3"))
	assert.True(t, probeEvicted("probe-scope"))
	assert.True(t, probeEvicted("probe-course"))
	assert.True(t, probeEvicted("probe-global"))
}

func TestMoveLessonAppendsToDestination(t *testing.T) {
	db := setupTestDb(t)
	course := createTestCourse(t, db, "Go Basics")
	src := createTestSection(t, db, course.ID, "Src")
	dst := createTestSection(t, db, course.ID, "Dst")

	moved := createTestLesson(t, db, src.ID, "Moves")
	createTestLesson(t, db, dst.ID, "D0")
	createTestLesson(t, db, dst.ID, "D1")

	lesson, err := UpdateLesson(db, moved.ID, LessonUpdate{SectionID: &dst.ID})
	require.NoError(t, err)

	assert.Equal(t, dst.ID, lesson.SectionID)
	assert.Equal(t, 2, lesson.OrderIndex)
}

func TestMoveLessonToEmptySection(t *testing.T) {
	db := setupTestDb(t)
	course := createTestCourse(t, db, "Go Basics")
	src := createTestSection(t, db, course.ID, "Src")
	dst := createTestSection(t, db, course.ID, "Dst")

	moved := createTestLesson(t, db, src.ID, "Moves")

	lesson, err := UpdateLesson(db, moved.ID, LessonUpdate{SectionID: &dst.ID})
	require.NoError(t, err)

	assert.Equal(t, dst.ID, lesson.SectionID)
	assert.Equal(t, 0, lesson.OrderIndex)
}

func TestMoveLessonExplicitIndex(t *testing.T) {
	db := setupTestDb(t)
	course := createTestCourse(t, db, "Go Basics")
	src := createTestSection(t, db, course.ID, "Src")
	dst := createTestSection(t, db, course.ID, "Dst")

	moved := createTestLesson(t, db, src.ID, "Moves")
	createTestLesson(t, db, dst.ID, "D0")

	at := 0
	lesson, err := UpdateLesson(db, moved.ID, LessonUpdate{SectionID: &dst.ID, OrderIndex: &at})
	require.NoError(t, err)

	assert.Equal(t, dst.ID, lesson.SectionID)
	assert.Equal(t, 0, lesson.OrderIndex)
}

func TestMoveLessonMissingDestination(t *testing.T) {
	db := setupTestDb(t)
	course := createTestCourse(t, db, "Go Basics")
	src := createTestSection(t, db, course.ID, "Src")
	moved := createTestLesson(t, db, src.ID, "Moves")

	absent := "absent"
	_, err := UpdateLesson(db, moved.ID, LessonUpdate{SectionID: &absent})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The move never happened
	assert.Equal(t, src.ID, mustLoadLesson(t, db, moved.ID).SectionID)
}

func TestMoveLessonInvalidatesBothScopes(t *testing.T) {
	db := setupTestDb(t)
	course := createTestCourse(t, db, "Go Basics")
	src := createTestSection(t, db, course.ID, "Src")
	dst := createTestSection(t, db, course.ID, "Dst")
	moved := createTestLesson(t, db, src.ID, "Moves")

	seedCacheProbe("probe-src", cache.ParentTag("lessons", src.ID))
	seedCacheProbe("probe-dst", cache.ParentTag("lessons", dst.ID))

	_, err := UpdateLesson(db, moved.ID, LessonUpdate{SectionID: &dst.ID})
	require.NoError(t, err)

	assert.True(t, probeEvicted("probe-src"))
	assert.True(t, probeEvicted("probe-dst"))
}

func TestDeleteLessonResolvesPreDeleteOwner(t *testing.T) {
	db := setupTestDb(t)
	course := createTestCourse(t, db, "Go Basics")
	section := createTestSection(t, db, course.ID, "Intro")
	lesson := createTestLesson(t, db, section.ID, "Doomed")

	seedCacheProbe("probe-lesson", cache.IdTag("lessons", lesson.ID))
	seedCacheProbe("probe-scope", cache.ParentTag("lessons", section.ID))
	seedCacheProbe("probe-course", cache.IdTag("courses", course.ID))

	deleted, err := DeleteLesson(db, lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, section.ID, deleted.SectionID)

	assert.True(t, probeEvicted("probe-lesson"))
	assert.True(t, probeEvicted("probe-scope"))
	assert.True(t, probeEvicted("probe-course"))
}

func TestListSectionLessonsOrdered(t *testing.T) {
	db := setupTestDb(t)
	course := createTestCourse(t, db, "Go Basics")
	section := createTestSection(t, db, course.ID, "Intro")

	l1 := createTestLesson(t, db, section.ID, "A")
	l2 := createTestLesson(t, db, section.ID, "B")
	l3 := createTestLesson(t, db, section.ID, "C")

	require.NoError(t, ReorderLessons(db, []string{l2.ID, l3.ID, l1.ID}))

	lessons, err := ListSectionLessons(db, section.ID)
	require.NoError(t, err)
	require.Len(t, lessons, 3)
	assert.Equal(t, []string{l2.ID, l3.ID, l1.ID}, []string{lessons[0].ID, lessons[1].ID, lessons[2].ID})
}

func mustLoadLesson(t *testing.T, db *gorm.DB, id string) *courseModels.Lesson {
	t.Helper()
	var lesson courseModels.Lesson
	require.NoError(t, db.Where("id = ?", id).First(&lesson).Error)
	return &lesson
}
