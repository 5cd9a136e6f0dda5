package entities

type Character struct {
	ID            int64  `db:"id"`
	Name          string `db:"name"`
	CorporationID int64  `db:"corporation_id"`
}

// FleetSession is one contiguous interval in fleet. Timestamps are unix seconds.
type FleetSession struct {
	Hull      int64 `db:"hull"`
	FirstSeen int64 `db:"first_seen"`
	LastSeen  int64 `db:"last_seen"`
}
