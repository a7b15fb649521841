package voiceRepository

const (
	queryCreateLog = `
		INSERT INTO voice_command_logs (
			id,
			session_id,
			transcript,
			source,
			keyword,
			route,
			reply,
			created_at
		) VALUES (
			:id,
			:session_id,
			:transcript,
			:source,
			:keyword,
			:route,
			:reply,
			:created_at
		)
	`

	queryGetRecentLogs = `
		SELECT
			id,
			session_id,
			transcript,
			source,
			keyword,
			route,
			reply,
			created_at
		FROM voice_command_logs
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountLogs = `
		SELECT COUNT(*)
		FROM voice_command_logs
	`
)
