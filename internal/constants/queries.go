package constants

// Queries are written with ? placeholders and rebound by sqlx for the active driver.
const (
	GetCharacterByID = `
	SELECT id, name, corporation_id FROM "character" WHERE id = ?
	`

	// One hop: any character on either side of a link that touches the target.
	GetAltCharacters = `
	SELECT
		c.id, c.name, c.corporation_id
	FROM
		"character" c
	JOIN
		alt_character alt ON (alt.alt_id = c.id OR alt.account_id = c.id)
	WHERE
		(alt.alt_id = ? OR alt.account_id = ?) AND c.id != ?
	ORDER BY
		c.name ASC
	`

	GetFleetActivityByCharacter = `
	SELECT hull, first_seen, last_seen FROM fleet_activity WHERE character_id = ? ORDER BY first_seen DESC
	`
)
