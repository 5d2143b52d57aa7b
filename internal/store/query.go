package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

const baseFeedbackSelect = `SELECT id, original_input, ai_response, user_correction,
	category, ad_type, format_pattern, created_at
FROM feedback`

const countFeedbackSelect = "SELECT COUNT(*) FROM feedback"

const feedbackOrder = "created_at DESC, id DESC"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT and OFFSET for a feedback
// query. It returns the data query, the count query and the positional
// parameters shared by both.
func (q *FeedbackQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", paramIdx))
		args = append(args, *q.Category)
		paramIdx++
	}

	if q.AdType != nil {
		conditions = append(conditions, fmt.Sprintf("ad_type = $%d", paramIdx))
		args = append(args, *q.AdType)
		paramIdx++
	}

	if q.FormatPattern != nil {
		conditions = append(conditions, fmt.Sprintf("format_pattern = $%d", paramIdx))
		args = append(args, *q.FormatPattern)
		paramIdx++
	}

	if q.Search != nil && strings.TrimSpace(*q.Search) != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(original_input ILIKE $%d OR user_correction ILIKE $%d)", paramIdx, paramIdx,
		))
		args = append(args, "%"+escapeLike(strings.TrimSpace(*q.Search))+"%")
		paramIdx++
	}

	if q.Since != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", paramIdx))
		args = append(args, *q.Since)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseFeedbackSelect, whereClause, feedbackOrder, clampLimit(q.Limit), max(q.Offset, 0),
	)
	countSQL = countFeedbackSelect + whereClause

	return dataSQL, countSQL, args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
