package gorm

type Character struct {
	ID            int64  `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name          string `gorm:"column:name;index"`
	CorporationID int64  `gorm:"column:corporation_id"`
}

// TableName specifies the table name for GORM
func (Character) TableName() string {
	return "character"
}

// AltCharacter links two characters of the same account. The link is undirected.
type AltCharacter struct {
	AccountID int64 `gorm:"column:account_id;primaryKey;autoIncrement:false"`
	AltID     int64 `gorm:"column:alt_id;primaryKey;autoIncrement:false"`
}

// TableName specifies the table name for GORM
func (AltCharacter) TableName() string {
	return "alt_character"
}

// Admin holds the stored role of a character with admin rights. At most one row per character.
type Admin struct {
	CharacterID int64  `gorm:"column:character_id;primaryKey;autoIncrement:false"`
	Role        string `gorm:"column:role"`
	GrantedAt   int64  `gorm:"column:granted_at"`
	GrantedBy   *int64 `gorm:"column:granted_by_id"`
}

// TableName specifies the table name for GORM
func (Admin) TableName() string {
	return "admin"
}

type Badge struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;uniqueIndex"`
}

// TableName specifies the table name for GORM
func (Badge) TableName() string {
	return "badge"
}

type BadgeAssignment struct {
	ID          int64 `gorm:"column:id;primaryKey"`
	CharacterID int64 `gorm:"column:character_id;index"`
	BadgeID     int64 `gorm:"column:badge_id"`

	Badge Badge `gorm:"foreignKey:BadgeID"`
}

// TableName specifies the table name for GORM
func (BadgeAssignment) TableName() string {
	return "badge_assignment"
}

// FleetActivity is one fleet attendance interval; first_seen and last_seen are unix seconds.
type FleetActivity struct {
	ID          int64 `gorm:"column:id;primaryKey"`
	CharacterID int64 `gorm:"column:character_id;index"`
	FleetID     int64 `gorm:"column:fleet_id"`
	Hull        int64 `gorm:"column:hull"`
	FirstSeen   int64 `gorm:"column:first_seen"`
	LastSeen    int64 `gorm:"column:last_seen"`
	HasLeft     bool  `gorm:"column:has_left"`
}

// TableName specifies the table name for GORM
func (FleetActivity) TableName() string {
	return "fleet_activity"
}

// All lists the models owned by this package, in migration order.
func All() []any {
	return []any{
		&Character{},
		&AltCharacter{},
		&Admin{},
		&Badge{},
		&BadgeAssignment{},
		&FleetActivity{},
	}
}
