package cache

// Tag derivation. Tags are opaque strings; every cached query result is
// stored under the tags its contents depend on, and mutations invalidate
// by tag. Values are deterministic: the same kind/id always yields the same tag.

// GlobalTag covers "list all <kind>" style queries
func GlobalTag(kind string) string {
	return "global:" + kind
}

// IdTag covers queries for one entity by id
func IdTag(kind, id string) string {
	return kind + ":id:" + id
}

// ParentTag covers queries for all <kind> under one parent scope
func ParentTag(kind, parentID string) string {
	return kind + ":parent:" + parentID
}

// RevalidateCourseTags invalidates everything that renders a course row
func RevalidateCourseTags(courseID string) {
	Invalidate(
		GlobalTag("courses"),
		IdTag("courses", courseID),
	)
}

// RevalidateSectionTags invalidates the section, its course scope and the
// owning course page. The course id tag matters because the course page
// embeds the full nested section/lesson tree.
func RevalidateSectionTags(sectionID, courseID string) {
	Invalidate(
		GlobalTag("sections"),
		IdTag("sections", sectionID),
		ParentTag("sections", courseID),
		IdTag("courses", courseID),
	)
}

// RevalidateLessonTags invalidates the lesson, its section scope and the
// owning course page
func RevalidateLessonTags(lessonID, sectionID, courseID string) {
	Invalidate(
		GlobalTag("lessons"),
		IdTag("lessons", lessonID),
		ParentTag("lessons", sectionID),
		IdTag("courses", courseID),
	)
}

// RevalidateProductTags invalidates product listings and the product page
func RevalidateProductTags(productID string) {
	Invalidate(
		GlobalTag("products"),
		IdTag("products", productID),
	)
}

// RevalidatePurchaseTags invalidates the purchase and the user's purchase list
func RevalidatePurchaseTags(purchaseID, userID string) {
	Invalidate(
		GlobalTag("purchases"),
		IdTag("purchases", purchaseID),
		ParentTag("purchases", userID),
	)
}
