package postgres

// Document names in economy_documents
const (
	docMarket     = "market"
	docTournament = "tournament"

	emptyMarketDocument     = `[]`
	emptyTournamentDocument = `{"players": []}`
)

// Queries
const (
	selectPlayerSQL   = `SELECT document FROM players WHERE player_id = $1`
	selectDocumentSQL = `SELECT document FROM economy_documents WHERE name = $1`
	forUpdateClause   = ` FOR UPDATE`

	upsertPlayerSQL = `
		INSERT INTO players (player_id, document)
		VALUES ($1, $2::jsonb)
		ON CONFLICT (player_id) DO UPDATE
		SET document = EXCLUDED.document, updated_at = NOW()`

	upsertDocumentSQL = `
		INSERT INTO economy_documents (name, document)
		VALUES ($1, $2::jsonb)
		ON CONFLICT (name) DO UPDATE
		SET document = EXCLUDED.document, updated_at = NOW()`
)
