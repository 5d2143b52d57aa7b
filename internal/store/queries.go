package store

// SQL query constants. PostgresStore methods reference these; ad hoc
// filtered queries are built by FeedbackQuery.ToSQL.

// Feedback queries.
const (
	queryInsertFeedback = `
		INSERT INTO feedback (
			id, original_input, ai_response, user_correction,
			category, ad_type, format_pattern, created_at
		) VALUES (
			@id, @original_input, @ai_response, @user_correction,
			@category, @ad_type, @format_pattern, @created_at
		)`

	queryGetFeedback = baseFeedbackSelect + `
		WHERE id = $1`

	queryListFeedbackByCategory = baseFeedbackSelect + `
		WHERE category = $1
		ORDER BY ` + feedbackOrder + `
		LIMIT $2`

	queryListRecentFeedback = baseFeedbackSelect + `
		ORDER BY ` + feedbackOrder + `
		LIMIT $1`
)

// Catalog queries.
const (
	queryDeleteCatalogRows = `DELETE FROM catalog_rows`

	queryListCatalogRows = `
		SELECT name, description, type
		FROM catalog_rows
		ORDER BY position`
)

// catalogCopyColumns are the columns bulk-loaded by ReplaceCatalog.
var catalogCopyColumns = []string{"position", "name", "description", "type"}
