package triageRepository

const (
	queryCreateOutcome = `
		INSERT INTO triage_outcomes (
			id,
			session_id,
			trade_slug,
			city,
			route,
			message_count,
			created_at
		) VALUES (
			:id,
			:session_id,
			:trade_slug,
			:city,
			:route,
			:message_count,
			:created_at
		)
	`

	queryGetRecentOutcomes = `
		SELECT
			id,
			session_id,
			trade_slug,
			city,
			route,
			message_count,
			created_at
		FROM triage_outcomes
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountOutcomes = `
		SELECT COUNT(*)
		FROM triage_outcomes
	`
)
